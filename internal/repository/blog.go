package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bloglist/internal/model"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts a new blog owned by blog.UserID.
func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query, blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID)
	if err := row.Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}

	return nil
}

// GetByID retrieves a single blog.
func (r *blogRepository) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	query := `
		SELECT id, title, author, url, likes, user_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var blog model.Blog
	err := r.db.GetContext(ctx, &blog, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}

	return &blog, nil
}

// List returns every blog with its owner summary attached. Two queries: the
// blogs, then a batched owner lookup grouped in memory.
func (r *blogRepository) List(ctx context.Context) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.SelectContext(ctx, &blogs, `
		SELECT id, title, author, url, likes, user_id, created_at, updated_at
		FROM blogs
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	if len(blogs) == 0 {
		return []model.Blog{}, nil
	}

	ownerIDs := make([]int64, 0, len(blogs))
	seen := make(map[int64]bool)
	for _, b := range blogs {
		if !seen[b.UserID] {
			seen[b.UserID] = true
			ownerIDs = append(ownerIDs, b.UserID)
		}
	}

	var owners []model.UserSummary
	err = r.db.SelectContext(ctx, &owners, `
		SELECT id, username, name
		FROM users
		WHERE id = ANY($1)
	`, pq.Array(ownerIDs))
	if err != nil {
		return nil, fmt.Errorf("list blog owners: %w", err)
	}

	byID := make(map[int64]model.UserSummary, len(owners))
	for _, o := range owners {
		byID[o.ID] = o
	}
	for i := range blogs {
		if owner, ok := byID[blogs[i].UserID]; ok {
			o := owner
			blogs[i].Owner = &o
		}
	}

	return blogs, nil
}

// Update changes only the fields present in req; nil pointers keep the
// stored value via COALESCE. Returns the updated row.
func (r *blogRepository) Update(ctx context.Context, id int64, req model.UpdateBlogRequest) (*model.Blog, error) {
	query := `
		UPDATE blogs SET
			title = COALESCE($1, title),
			author = COALESCE($2, author),
			url = COALESCE($3, url),
			likes = COALESCE($4, likes),
			updated_at = NOW()
		WHERE id = $5
		RETURNING id, title, author, url, likes, user_id, created_at, updated_at
	`

	var blog model.Blog
	err := r.db.GetContext(ctx, &blog, query, req.Title, req.Author, req.URL, req.Likes, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	return &blog, nil
}

// Delete removes a blog. Ownership is checked by the service before this is
// called; here a missing row is simply not found.
func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrBlogNotFound
	}

	return nil
}
