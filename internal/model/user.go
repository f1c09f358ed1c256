package model

import (
	"time"
)

// Minimum lengths enforced at registration, matching the schema constraints.
const (
	MinUsernameLength = 3
	MinPasswordLength = 3
)

// User represents a registered account.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Name         *string   `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"` // "-" keeps the hash out of every response
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`

	// Blogs is populated on user listings (not a users table column).
	Blogs []Blog `json:"blogs,omitempty"`
}

// UserSummary is the owner projection embedded in blog responses.
type UserSummary struct {
	ID       int64   `db:"id" json:"id"`
	Username string  `db:"username" json:"username"`
	Name     *string `db:"name" json:"name"`
}

// RegisterRequest is the body for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the body for obtaining a token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the successful login payload.
type LoginResponse struct {
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Name     *string `json:"name"`
}
