package model

import (
	"time"
)

// Blog represents a saved blog entry with its metadata.
// Author is a free display string, independent of the owning user; an empty
// string means no author was given.
type Blog struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Author    string    `db:"author" json:"author,omitempty"`
	URL       string    `db:"url" json:"url"`
	Likes     int       `db:"likes" json:"likes"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Owner is joined on listings (not a blogs table column).
	Owner *UserSummary `json:"user,omitempty"`
}

// CreateBlogRequest is the request body for creating a blog.
// Likes is a pointer so an omitted field can default to 0 while an explicit
// value, including 0, is kept as sent.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogRequest is the request body for updating a blog.
// Only the fields present in the body are changed.
type UpdateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}
