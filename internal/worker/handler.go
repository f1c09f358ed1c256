package worker

import (
	"context"
	"fmt"
	"log"

	"bloglist/internal/cache"
	"bloglist/internal/model"
	"bloglist/internal/queue"
	"bloglist/internal/stats"
)

// BlogLister abstracts the blog collection read so the worker does not
// depend on the repository package directly.
type BlogLister interface {
	List(ctx context.Context) ([]model.Blog, error)
}

// Handler reacts to blog events by refreshing the aggregation snapshot.
type Handler struct {
	statsCache cache.StatsCache
	blogs      BlogLister
}

func NewHandler(statsCache cache.StatsCache, blogs BlogLister) *Handler {
	return &Handler{
		statsCache: statsCache,
		blogs:      blogs,
	}
}

// HandleEvent routes an event by type. Every blog mutation invalidates the
// snapshot the same way: recompute from the full collection and overwrite.
func (h *Handler) HandleEvent(ctx context.Context, event queue.BlogEvent) error {
	switch event.Type {
	case queue.EventBlogCreated, queue.EventBlogUpdated, queue.EventBlogDeleted:
		return h.refreshSnapshot(ctx, event)
	default:
		return fmt.Errorf("unknown event type: %s", event.Type)
	}
}

// refreshSnapshot recomputes the stats snapshot and stores it. If the
// recompute fails the stale entry is dropped so readers fall back to
// synchronous computation instead of serving wrong numbers.
func (h *Handler) refreshSnapshot(ctx context.Context, event queue.BlogEvent) error {
	blogs, err := h.blogs.List(ctx)
	if err != nil {
		if invErr := h.statsCache.Invalidate(ctx); invErr != nil {
			log.Printf("[Worker] invalidate after failed refresh: %v", invErr)
		}
		return fmt.Errorf("list blogs: %w", err)
	}

	snap := stats.Compute(blogs)
	if err := h.statsCache.Set(ctx, snap); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}

	log.Printf("[Worker] snapshot refreshed: event=%s blog=%d blogs=%d totalLikes=%d",
		event.Type, event.BlogID, len(blogs), snap.TotalLikes)
	return nil
}
