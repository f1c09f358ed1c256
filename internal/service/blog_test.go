package service

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/model"
	"bloglist/internal/queue"
)

func intPtr(v int) *int { return &v }

func TestBlogService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       model.CreateBlogRequest
		wantErr   error
		wantLikes int
	}{
		{
			name:      "success",
			req:       model.CreateBlogRequest{Title: "Go Concurrency Patterns", Author: "Rob Pike", URL: "https://example.com/gcp", Likes: intPtr(12)},
			wantLikes: 12,
		},
		{
			name:      "likes defaults to zero",
			req:       model.CreateBlogRequest{Title: "Go Concurrency Patterns", URL: "https://example.com/gcp"},
			wantLikes: 0,
		},
		{
			name:    "missing title",
			req:     model.CreateBlogRequest{URL: "https://example.com/gcp"},
			wantErr: model.ErrTitleOrURLMissing,
		},
		{
			name:    "missing url",
			req:     model.CreateBlogRequest{Title: "Go Concurrency Patterns"},
			wantErr: model.ErrTitleOrURLMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogRepo := &mockBlogRepository{
				CreateFunc: func(ctx context.Context, blog *model.Blog) error {
					blog.ID = 1
					return nil
				},
			}
			userRepo := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id int64) (*model.User, error) {
					return &model.User{ID: id, Username: "root"}, nil
				},
			}
			pub := &mockPublisher{}
			svc := NewBlogService(blogRepo, userRepo, pub)

			blog, err := svc.Create(context.Background(), 7, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if len(pub.events) != 0 {
					t.Errorf("published %d events on failed create", len(pub.events))
				}
				return
			}
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if blog.Likes != tt.wantLikes {
				t.Errorf("likes = %d, want %d", blog.Likes, tt.wantLikes)
			}
			if blog.UserID != 7 {
				t.Errorf("user id = %d, want 7", blog.UserID)
			}
			if blog.Owner == nil || blog.Owner.Username != "root" {
				t.Errorf("owner = %+v, want summary for root", blog.Owner)
			}
			if len(pub.events) != 1 || pub.events[0].Type != queue.EventBlogCreated {
				t.Errorf("events = %+v, want one %s", pub.events, queue.EventBlogCreated)
			}
		})
	}
}

func TestBlogService_Create_NegativeLikes(t *testing.T) {
	svc := NewBlogService(&mockBlogRepository{}, &mockUserRepository{}, &mockPublisher{})

	_, err := svc.Create(context.Background(), 1, model.CreateBlogRequest{
		Title: "t", URL: "u", Likes: intPtr(-1),
	})
	var domainErr *model.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != model.KindValidation {
		t.Fatalf("error = %v, want validation error", err)
	}
}

func TestBlogService_Update(t *testing.T) {
	existing := &model.Blog{ID: 3, Title: "old", URL: "u", Likes: 1, UserID: 7}

	tests := []struct {
		name    string
		blogID  int64
		userID  int64
		req     model.UpdateBlogRequest
		wantErr error
	}{
		{name: "owner updates likes", blogID: 3, userID: 7, req: model.UpdateBlogRequest{Likes: intPtr(5)}},
		{name: "not found", blogID: 99, userID: 7, wantErr: model.ErrBlogNotFound},
		{name: "not owner", blogID: 3, userID: 8, wantErr: model.ErrNotBlogOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blogRepo := &mockBlogRepository{
				GetByIDFunc: func(ctx context.Context, id int64) (*model.Blog, error) {
					if id != existing.ID {
						return nil, model.ErrBlogNotFound
					}
					cp := *existing
					return &cp, nil
				},
				UpdateFunc: func(ctx context.Context, id int64, req model.UpdateBlogRequest) (*model.Blog, error) {
					cp := *existing
					if req.Likes != nil {
						cp.Likes = *req.Likes
					}
					return &cp, nil
				},
			}
			pub := &mockPublisher{}
			svc := NewBlogService(blogRepo, &mockUserRepository{}, pub)

			updated, err := svc.Update(context.Background(), tt.blogID, tt.userID, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if len(pub.events) != 0 {
					t.Errorf("published %d events on failed update", len(pub.events))
				}
				return
			}
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if updated.Likes != 5 {
				t.Errorf("likes = %d, want 5", updated.Likes)
			}
			if len(pub.events) != 1 || pub.events[0].Type != queue.EventBlogUpdated {
				t.Errorf("events = %+v, want one %s", pub.events, queue.EventBlogUpdated)
			}
		})
	}
}

func TestBlogService_Update_NegativeLikes(t *testing.T) {
	svc := NewBlogService(&mockBlogRepository{}, &mockUserRepository{}, &mockPublisher{})

	_, err := svc.Update(context.Background(), 3, 7, model.UpdateBlogRequest{Likes: intPtr(-2)})
	var domainErr *model.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != model.KindValidation {
		t.Fatalf("error = %v, want validation error", err)
	}
}

func TestBlogService_Delete(t *testing.T) {
	existing := &model.Blog{ID: 3, Title: "t", URL: "u", UserID: 7}

	tests := []struct {
		name    string
		blogID  int64
		userID  int64
		wantErr error
	}{
		{name: "owner deletes", blogID: 3, userID: 7},
		{name: "not found", blogID: 99, userID: 7, wantErr: model.ErrBlogNotFound},
		{name: "not owner", blogID: 3, userID: 8, wantErr: model.ErrNotBlogOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			blogRepo := &mockBlogRepository{
				GetByIDFunc: func(ctx context.Context, id int64) (*model.Blog, error) {
					if id != existing.ID {
						return nil, model.ErrBlogNotFound
					}
					return existing, nil
				},
				DeleteFunc: func(ctx context.Context, id int64) error {
					deleted = true
					return nil
				},
			}
			pub := &mockPublisher{}
			svc := NewBlogService(blogRepo, &mockUserRepository{}, pub)

			err := svc.Delete(context.Background(), tt.blogID, tt.userID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if deleted {
					t.Error("repository delete called despite failed check")
				}
				return
			}
			if err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if !deleted {
				t.Error("repository delete not called")
			}
			if len(pub.events) != 1 || pub.events[0].Type != queue.EventBlogDeleted {
				t.Errorf("events = %+v, want one %s", pub.events, queue.EventBlogDeleted)
			}
		})
	}
}

func TestBlogService_PublishFailureDoesNotFailMutation(t *testing.T) {
	blogRepo := &mockBlogRepository{
		CreateFunc: func(ctx context.Context, blog *model.Blog) error {
			blog.ID = 1
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Username: "root"}, nil
		},
	}
	pub := &mockPublisher{err: errors.New("stream unavailable")}
	svc := NewBlogService(blogRepo, userRepo, pub)

	if _, err := svc.Create(context.Background(), 1, model.CreateBlogRequest{Title: "t", URL: "u"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
}
