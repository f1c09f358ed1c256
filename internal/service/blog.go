package service

import (
	"context"
	"fmt"
	"log"

	"bloglist/internal/model"
	"bloglist/internal/queue"
	"bloglist/internal/repository"
)

// BlogService handles blog CRUD and ownership enforcement.
type BlogService struct {
	blogRepo  repository.BlogRepository
	userRepo  repository.UserRepository
	publisher queue.Publisher
}

func NewBlogService(
	blogRepo repository.BlogRepository,
	userRepo repository.UserRepository,
	publisher queue.Publisher,
) *BlogService {
	return &BlogService{
		blogRepo:  blogRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// List returns every blog with its owner summary.
func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	return s.blogRepo.List(ctx)
}

// Create stores a new blog owned by userID. Title and url are required;
// omitted likes default to 0.
func (s *BlogService) Create(ctx context.Context, userID int64, req model.CreateBlogRequest) (*model.Blog, error) {
	if req.Title == "" || req.URL == "" {
		return nil, model.ErrTitleOrURLMissing
	}

	likes := 0
	if req.Likes != nil {
		if *req.Likes < 0 {
			return nil, model.NewValidationError("likes must not be negative")
		}
		likes = *req.Likes
	}

	blog := &model.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		UserID: userID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	s.publish(ctx, queue.NewBlogCreatedEvent(blog.ID, userID))

	// Attach the owner summary so the response matches listings.
	if owner, err := s.userRepo.GetByID(ctx, userID); err == nil {
		blog.Owner = &model.UserSummary{
			ID:       owner.ID,
			Username: owner.Username,
			Name:     owner.Name,
		}
	}

	return blog, nil
}

// Update changes the fields present in req. Only the owner may update;
// the check precedes any write.
func (s *BlogService) Update(ctx context.Context, blogID, userID int64, req model.UpdateBlogRequest) (*model.Blog, error) {
	if req.Likes != nil && *req.Likes < 0 {
		return nil, model.NewValidationError("likes must not be negative")
	}

	existing, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, model.ErrNotBlogOwner
	}

	updated, err := s.blogRepo.Update(ctx, blogID, req)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, queue.NewBlogUpdatedEvent(blogID, userID))

	return updated, nil
}

// Delete removes a blog. The resolved caller must own it: a missing blog is
// NotFound, someone else's blog is Forbidden.
func (s *BlogService) Delete(ctx context.Context, blogID, userID int64) error {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if blog.UserID != userID {
		return model.ErrNotBlogOwner
	}

	if err := s.blogRepo.Delete(ctx, blogID); err != nil {
		return err
	}

	s.publish(ctx, queue.NewBlogDeletedEvent(blogID, userID))

	return nil
}

// publish sends a blog event for the stats worker. The mutation has already
// committed, so publish failures are logged and not surfaced; the snapshot
// cache TTL bounds the staleness window.
func (s *BlogService) publish(ctx context.Context, event queue.BlogEvent) {
	if s.publisher == nil {
		return
	}
	msgID, err := s.publisher.Publish(ctx, queue.StreamBlogs, event)
	if err != nil {
		log.Printf("[BlogService] publish %s failed: blog=%d err=%v", event.Type, event.BlogID, err)
		return
	}
	log.Printf("[BlogService] published %s: blog=%d msgID=%s", event.Type, event.BlogID, msgID)
}
