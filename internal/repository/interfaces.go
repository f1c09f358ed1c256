package repository

import (
	"context"

	"bloglist/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// List returns all users with their blogs attached.
	List(ctx context.Context) ([]model.User, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, id int64) (*model.Blog, error)
	// List returns all blogs with their owner summaries attached.
	List(ctx context.Context) ([]model.Blog, error)
	// Update changes only the fields present in req and returns the updated row.
	Update(ctx context.Context, id int64, req model.UpdateBlogRequest) (*model.Blog, error)
	Delete(ctx context.Context, id int64) error
}
