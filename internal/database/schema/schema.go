package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Remote progression sync schema

-- 1. Flat progress counters, one row per player
CREATE TABLE IF NOT EXISTS user_progress (
    user_id TEXT PRIMARY KEY,
    views DOUBLE PRECISION NOT NULL DEFAULT 0,
    click_value DOUBLE PRECISION NOT NULL DEFAULT 1,
    passive_views DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_clicks BIGINT NOT NULL DEFAULT 0,
    critical_taps BIGINT NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- 2. Upgrade levels; values are rebuilt client-side from levels
CREATE TABLE IF NOT EXISTS user_upgrades (
    user_id TEXT NOT NULL,
    upgrade_kind TEXT NOT NULL,
    level INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, upgrade_kind)
);

-- 3. Booster inventory counts
CREATE TABLE IF NOT EXISTS user_boosters (
    user_id TEXT NOT NULL,
    booster_kind TEXT NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, booster_kind)
);

-- 4. Public profiles backing the leaderboard
CREATE TABLE IF NOT EXISTS user_profiles (
    user_id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    total_views DOUBLE PRECISION NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_user_profiles_total_views
    ON user_profiles (total_views DESC);
`
