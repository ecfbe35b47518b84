// Package postgres implements the remote persistence interfaces against
// PostgreSQL. All writes are idempotent upserts keyed by user id, so
// repeated pushes of the same state converge instead of conflicting.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	remote "github.com/hiperworks/HiperClicker_Go/internal/sync"
)

type syncRepository struct {
	db *pgxpool.Pool
}

// NewSyncRepository creates a sync bridge backed by PostgreSQL
func NewSyncRepository(db *pgxpool.Pool) remote.Bridge {
	return &syncRepository{db: db}
}

func (r *syncRepository) PushProgress(ctx context.Context, userID string, p domain.ProgressSummary) error {
	query := `
		INSERT INTO user_progress (user_id, views, click_value, passive_views, total_clicks, critical_taps, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			views = EXCLUDED.views,
			click_value = EXCLUDED.click_value,
			passive_views = EXCLUDED.passive_views,
			total_clicks = EXCLUDED.total_clicks,
			critical_taps = EXCLUDED.critical_taps,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, userID, p.Views, p.ClickValue, p.PassiveRate, p.TotalTaps, p.CriticalTaps)
	if err != nil {
		return fmt.Errorf("failed to push progress: %w", err)
	}
	return nil
}

func (r *syncRepository) PushUpgrades(ctx context.Context, userID string, levels map[domain.UpgradeKind]int) error {
	query := `
		INSERT INTO user_upgrades (user_id, upgrade_kind, level, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, upgrade_kind) DO UPDATE SET
			level = EXCLUDED.level,
			updated_at = NOW()
	`
	for kind, level := range levels {
		if _, err := r.db.Exec(ctx, query, userID, string(kind), level); err != nil {
			return fmt.Errorf("failed to push upgrade %s: %w", kind, err)
		}
	}
	return nil
}

func (r *syncRepository) PushBoosterInventory(ctx context.Context, userID string, counts map[domain.BoosterKind]int) error {
	query := `
		INSERT INTO user_boosters (user_id, booster_kind, quantity, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, booster_kind) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			updated_at = NOW()
	`
	for kind, count := range counts {
		if _, err := r.db.Exec(ctx, query, userID, string(kind), count); err != nil {
			return fmt.Errorf("failed to push booster count %s: %w", kind, err)
		}
	}
	return nil
}

func (r *syncRepository) PushProfile(ctx context.Context, userID, username string, totalViews float64) error {
	query := `
		INSERT INTO user_profiles (user_id, username, total_views, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			total_views = EXCLUDED.total_views,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, userID, username, totalViews)
	if err != nil {
		return fmt.Errorf("failed to push profile: %w", err)
	}
	return nil
}

func (r *syncRepository) PullProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	query := `
		SELECT views, click_value, passive_views, total_clicks, critical_taps
		FROM user_progress
		WHERE user_id = $1
	`
	var p domain.ProgressSummary
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.Views, &p.ClickValue, &p.PassiveRate, &p.TotalTaps, &p.CriticalTaps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pull progress: %w", err)
	}
	return &p, nil
}

func (r *syncRepository) PullUpgrades(ctx context.Context, userID string) (map[domain.UpgradeKind]int, error) {
	query := `
		SELECT upgrade_kind, level
		FROM user_upgrades
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to pull upgrades: %w", err)
	}
	defer rows.Close()

	levels := make(map[domain.UpgradeKind]int)
	for rows.Next() {
		var kind string
		var level int
		if err := rows.Scan(&kind, &level); err != nil {
			return nil, fmt.Errorf("failed to scan upgrade row: %w", err)
		}
		levels[domain.UpgradeKind(kind)] = level
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read upgrade rows: %w", err)
	}
	if len(levels) == 0 {
		return nil, nil
	}
	return levels, nil
}

func (r *syncRepository) PullBoosterInventory(ctx context.Context, userID string) (map[domain.BoosterKind]int, error) {
	query := `
		SELECT booster_kind, quantity
		FROM user_boosters
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to pull booster inventory: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.BoosterKind]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan booster row: %w", err)
		}
		counts[domain.BoosterKind(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read booster rows: %w", err)
	}
	if len(counts) == 0 {
		return nil, nil
	}
	return counts, nil
}
