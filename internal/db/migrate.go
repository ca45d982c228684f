package db

import (
	"context"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent and the
// whole list is re-run on each start, so the same list serves a fresh
// database and an existing one. Statements stay within the SQL that SQLite
// and Postgres share.
func Migrate(ctx context.Context, conn DBTX) error {
	for i, stmt := range migrations {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scenarios (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		planning_period   TEXT NOT NULL DEFAULT '',
		ux_designers      DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK(ux_designers >= 0),
		content_designers DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK(content_designers >= 0),
		weeks_per_period  DOUBLE PRECISION NOT NULL DEFAULT 13,
		status            TEXT NOT NULL DEFAULT 'active'
		                  CHECK(status IN ('active','archived')),
		archived_at       TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS scenario_sequences (
		scenario_id TEXT PRIMARY KEY REFERENCES scenarios(id) ON DELETE CASCADE,
		next_seq    INTEGER NOT NULL CHECK(next_seq > 0)
	)`,

	`CREATE TABLE IF NOT EXISTS roadmap_items (
		id                     TEXT PRIMARY KEY,
		scenario_id            TEXT NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
		seq                    INTEGER NOT NULL CHECK(seq > 0),
		name                   TEXT NOT NULL,
		initiative             TEXT NOT NULL DEFAULT '',
		priority               INTEGER NOT NULL DEFAULT 1 CHECK(priority >= 1),
		status                 TEXT NOT NULL DEFAULT 'proposed'
		                       CHECK(status IN ('proposed','committed','done','cut')),
		intake_source          TEXT NOT NULL DEFAULT 'designer'
		                       CHECK(intake_source IN ('designer','pm')),
		ux_scores              TEXT NOT NULL DEFAULT '{}',
		ux_focus_override      DOUBLE PRECISION,
		ux_size_band           TEXT NOT NULL DEFAULT '',
		ux_weighted_score      DOUBLE PRECISION NOT NULL DEFAULT 0,
		ux_focus_weeks         DOUBLE PRECISION,
		ux_work_weeks          DOUBLE PRECISION,
		content_scores         TEXT NOT NULL DEFAULT '{}',
		content_focus_override DOUBLE PRECISION,
		content_size_band      TEXT NOT NULL DEFAULT '',
		content_weighted_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		content_focus_weeks    DOUBLE PRECISION,
		content_work_weeks     DOUBLE PRECISION,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL,
		UNIQUE(scenario_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id         TEXT PRIMARY KEY,
		data       TEXT NOT NULL DEFAULT '{}',
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scenarios_status ON scenarios(status)`,
	`CREATE INDEX IF NOT EXISTS idx_roadmap_items_scenario ON roadmap_items(scenario_id, initiative, priority)`,

	// Seed the single settings row.
	`INSERT INTO settings (id, data, updated_at)
	 VALUES ('default', '{}', '1970-01-01T00:00:00Z')
	 ON CONFLICT (id) DO NOTHING`,
}
