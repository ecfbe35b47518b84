package leaderboard

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

const (
	defaultCacheSize = 16
	defaultCacheTTL  = 30 * time.Second
)

// rankingCache holds recently computed rankings keyed by request limit.
// TTL expiry keeps the board fresh without a refresh job.
type rankingCache struct {
	lru *expirable.LRU[string, []domain.LeaderboardEntry]
}

func newRankingCache(size int, ttl time.Duration) *rankingCache {
	return &rankingCache{
		lru: expirable.NewLRU[string, []domain.LeaderboardEntry](size, nil, ttl),
	}
}

func (c *rankingCache) Get(limit int) ([]domain.LeaderboardEntry, bool) {
	return c.lru.Get(strconv.Itoa(limit))
}

func (c *rankingCache) Set(limit int, entries []domain.LeaderboardEntry) {
	c.lru.Add(strconv.Itoa(limit), entries)
}
