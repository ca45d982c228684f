package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; should succeed without error.
	require.NoError(t, Migrate(context.Background(), db))

	// Third time for good measure.
	require.NoError(t, Migrate(context.Background(), db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"scenarios", "scenario_sequences", "roadmap_items", "settings"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_scenarios_status", "idx_roadmap_items_scenario"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_SeedsDefaultSettings(t *testing.T) {
	db := openTestDB(t)

	var data string
	err := db.QueryRow(`SELECT data FROM settings WHERE id = 'default'`).Scan(&data)
	require.NoError(t, err)
	assert.Equal(t, "{}", data)

	// Re-running the seed must not clobber stored values.
	_, err = db.Exec(`UPDATE settings SET data = '{"time_model.focusTimeRatio":0.6}' WHERE id = 'default'`)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, db.QueryRow(`SELECT data FROM settings WHERE id = 'default'`).Scan(&data))
	assert.Contains(t, data, "0.6")
}

func TestMigrate_RoadmapItemCheckConstraints(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO scenarios (id, name, created_at, updated_at) VALUES ('s1', 'Q1', 'now', 'now')`)
	require.NoError(t, err)

	insert := `INSERT INTO roadmap_items (id, scenario_id, seq, name, priority, status, created_at, updated_at)
		VALUES (?, 's1', ?, 'x', ?, ?, 'now', 'now')`

	_, err = db.ExecContext(ctx, insert, "i1", 1, 1, "proposed")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "i2", 2, 1, "shipped")
	assert.Error(t, err, "unknown status should be rejected")

	_, err = db.ExecContext(ctx, insert, "i3", 3, 0, "proposed")
	assert.Error(t, err, "priority below 1 should be rejected")

	_, err = db.ExecContext(ctx, insert, "i4", 1, 1, "proposed")
	assert.Error(t, err, "seq must be unique within a scenario")
}

func TestMigrate_ScenarioDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO scenarios (id, name, created_at, updated_at) VALUES ('s1', 'Q1', 'now', 'now')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO roadmap_items (id, scenario_id, seq, name, created_at, updated_at) VALUES ('i1', 's1', 1, 'x', 'now', 'now')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO scenario_sequences (scenario_id, next_seq) VALUES ('s1', 2)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roadmap_items`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenario_sequences`).Scan(&n))
	assert.Zero(t, n)
}
