// Package leaderboard serves the global ranking by total views. Rows
// come from the remote profile table; results are cached briefly so a
// screen refresh does not hammer the database.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/logger"
)

const (
	// DefaultLimit is how many rows a leaderboard request returns when
	// the caller does not ask for a specific count.
	DefaultLimit = 10
	// MaxLimit bounds a single request.
	MaxLimit = 100
)

// Repository reads ranked profiles from the remote store.
type Repository interface {
	// TopProfiles returns up to limit profiles ordered by total views
	// descending. Rank is assigned by the service.
	TopProfiles(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// Service answers leaderboard queries with short-lived caching.
type Service interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo  Repository
	cache *rankingCache
}

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		cache: newRankingCache(defaultCacheSize, defaultCacheTTL),
	}
}

func (s *service) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if entries, ok := s.cache.Get(limit); ok {
		return entries, nil
	}

	entries, err := s.repo.TopProfiles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	s.cache.Set(limit, entries)
	log.Debug("Leaderboard refreshed", "rows", len(entries))
	return entries, nil
}
