package service

import (
	"context"
	"fmt"
	"log"

	"bloglist/internal/cache"
	"bloglist/internal/repository"
	"bloglist/internal/stats"
)

// StatsService serves the aggregation snapshot, cache-aside: the Redis
// snapshot is tried first, a miss recomputes from the blog collection and
// refills the cache. The worker does the same refresh asynchronously on
// blog events, so requests rarely see a miss.
type StatsService struct {
	blogRepo   repository.BlogRepository
	statsCache cache.StatsCache
}

func NewStatsService(blogRepo repository.BlogRepository, statsCache cache.StatsCache) *StatsService {
	return &StatsService{
		blogRepo:   blogRepo,
		statsCache: statsCache,
	}
}

// Get returns the current snapshot.
func (s *StatsService) Get(ctx context.Context) (*stats.Snapshot, error) {
	if s.statsCache != nil {
		snap, found, err := s.statsCache.Get(ctx)
		if err != nil {
			// Degrade to recomputing rather than failing the request.
			log.Printf("[StatsService] cache read failed: %v", err)
		} else if found {
			return snap, nil
		}
	}

	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs for stats: %w", err)
	}
	snap := stats.Compute(blogs)

	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, snap); err != nil {
			log.Printf("[StatsService] cache write failed: %v", err)
		}
	}

	return snap, nil
}
