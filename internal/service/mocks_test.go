package service

import (
	"context"

	"bloglist/internal/model"
	"bloglist/internal/queue"
)

// mockUserRepository implements repository.UserRepository with per-test
// function fields.
type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *model.User) error
	GetByIDFunc       func(ctx context.Context, id int64) (*model.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	ListFunc          func(ctx context.Context) ([]model.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) List(ctx context.Context) ([]model.User, error) {
	return m.ListFunc(ctx)
}

type mockBlogRepository struct {
	CreateFunc  func(ctx context.Context, blog *model.Blog) error
	GetByIDFunc func(ctx context.Context, id int64) (*model.Blog, error)
	ListFunc    func(ctx context.Context) ([]model.Blog, error)
	UpdateFunc  func(ctx context.Context, id int64, req model.UpdateBlogRequest) (*model.Blog, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockBlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	return m.CreateFunc(ctx, blog)
}

func (m *mockBlogRepository) GetByID(ctx context.Context, id int64) (*model.Blog, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockBlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	return m.ListFunc(ctx)
}

func (m *mockBlogRepository) Update(ctx context.Context, id int64, req model.UpdateBlogRequest) (*model.Blog, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockBlogRepository) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

// mockPublisher records published events instead of touching Redis.
type mockPublisher struct {
	events []queue.BlogEvent
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, stream string, event queue.BlogEvent) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.events = append(m.events, event)
	return "0-1", nil
}
