package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/leaderboard"
)

type leaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a leaderboard reader backed by PostgreSQL
func NewLeaderboardRepository(db *pgxpool.Pool) leaderboard.Repository {
	return &leaderboardRepository{db: db}
}

// TopProfiles returns the highest-viewed profiles. Ties break on
// username so the ordering is stable between refreshes.
func (r *leaderboardRepository) TopProfiles(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT user_id, username, total_views
		FROM user_profiles
		ORDER BY total_views DESC, username ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.TotalViews); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}
	return entries, nil
}
