package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/capplan/internal/db"
)

// SQLSequenceRepo allocates scenario-scoped item keys using the
// scenario_sequences table.
type SQLSequenceRepo struct {
	db db.DBTX
}

// NewSequenceRepo creates a new SQLSequenceRepo.
func NewSequenceRepo(conn db.DBTX) *SQLSequenceRepo {
	return &SQLSequenceRepo{db: conn}
}

// NextScenarioSeq returns the next available sequential key for a scenario.
// The first call seeds the allocator from any existing items. Allocation is
// a single UPDATE ... RETURNING and is safe under concurrent writes.
func (r *SQLSequenceRepo) NextScenarioSeq(ctx context.Context, scenarioID string) (int, error) {
	seedQuery := `INSERT INTO scenario_sequences (scenario_id, next_seq)
		SELECT ?, COALESCE(MAX(seq), 0) + 1
		FROM roadmap_items WHERE scenario_id = ?
		ON CONFLICT (scenario_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, seedQuery, scenarioID, scenarioID); err != nil {
		return 0, fmt.Errorf("seeding scenario sequence for %s: %w", scenarioID, err)
	}

	var next int
	allocQuery := `UPDATE scenario_sequences
		SET next_seq = next_seq + 1
		WHERE scenario_id = ?
		RETURNING next_seq - 1`
	if err := r.db.QueryRowContext(ctx, allocQuery, scenarioID).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next seq for scenario %s: %w", scenarioID, err)
	}
	return next, nil
}
