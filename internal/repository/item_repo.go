package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// SQLItemRepo implements ItemRepo over any db.DBTX.
type SQLItemRepo struct {
	db db.DBTX
}

// NewItemRepo creates a new SQLItemRepo.
func NewItemRepo(conn db.DBTX) *SQLItemRepo {
	return &SQLItemRepo{db: conn}
}

const itemColumns = `id, scenario_id, seq, name, initiative, priority, status, intake_source,
	ux_scores, ux_focus_override, ux_size_band, ux_weighted_score, ux_focus_weeks, ux_work_weeks,
	content_scores, content_focus_override, content_size_band, content_weighted_score, content_focus_weeks, content_work_weeks,
	created_at, updated_at`

func (r *SQLItemRepo) Create(ctx context.Context, item *domain.RoadmapItem) error {
	ux, err := estimateValues(&item.UX)
	if err != nil {
		return err
	}
	content, err := estimateValues(&item.Content)
	if err != nil {
		return err
	}

	query := `INSERT INTO roadmap_items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{item.ID, item.ScenarioID, item.Seq, item.Name, item.Initiative, item.Priority,
		string(item.Status), string(item.IntakeSource)}
	args = append(args, ux...)
	args = append(args, content...)
	args = append(args, item.CreatedAt.Format(time.RFC3339), item.UpdatedAt.Format(time.RFC3339))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting roadmap item: %w", err)
	}
	return nil
}

func (r *SQLItemRepo) GetByID(ctx context.Context, id string) (*domain.RoadmapItem, error) {
	query := `SELECT ` + itemColumns + ` FROM roadmap_items WHERE id = ?`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("roadmap item %s: %w", id, ErrNotFound)
	}
	return item, err
}

func (r *SQLItemRepo) ListByScenario(ctx context.Context, scenarioID string) ([]*domain.RoadmapItem, error) {
	query := `SELECT ` + itemColumns + ` FROM roadmap_items WHERE scenario_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("listing roadmap items: %w", err)
	}
	defer rows.Close()

	var items []*domain.RoadmapItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roadmap items: %w", err)
	}
	return items, nil
}

func (r *SQLItemRepo) Update(ctx context.Context, item *domain.RoadmapItem) error {
	ux, err := estimateValues(&item.UX)
	if err != nil {
		return err
	}
	content, err := estimateValues(&item.Content)
	if err != nil {
		return err
	}

	query := `UPDATE roadmap_items SET name = ?, initiative = ?, priority = ?, status = ?, intake_source = ?,
		ux_scores = ?, ux_focus_override = ?, ux_size_band = ?, ux_weighted_score = ?, ux_focus_weeks = ?, ux_work_weeks = ?,
		content_scores = ?, content_focus_override = ?, content_size_band = ?, content_weighted_score = ?, content_focus_weeks = ?, content_work_weeks = ?,
		updated_at = ?
		WHERE id = ?`
	args := []any{item.Name, item.Initiative, item.Priority, string(item.Status), string(item.IntakeSource)}
	args = append(args, ux...)
	args = append(args, content...)
	args = append(args, item.UpdatedAt.Format(time.RFC3339), item.ID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating roadmap item: %w", err)
	}
	return requireAffected(res, "roadmap item", item.ID)
}

func (r *SQLItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roadmap_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting roadmap item: %w", err)
	}
	return requireAffected(res, "roadmap item", id)
}

// estimateValues flattens a RoleEstimate into its six columns.
func estimateValues(e *domain.RoleEstimate) ([]any, error) {
	scores, err := encodeScores(e.Scores)
	if err != nil {
		return nil, err
	}
	return []any{
		scores,
		nullableFloatToValue(e.FocusOverride),
		string(e.SizeBand),
		e.WeightedScore,
		nullableFloatToValue(e.FocusWeeks),
		nullableFloatToValue(e.WorkWeeks),
	}, nil
}

type estimateColumns struct {
	scores        string
	override      sql.NullFloat64
	band          string
	weightedScore float64
	focus         sql.NullFloat64
	work          sql.NullFloat64
}

func (c *estimateColumns) dest() []any {
	return []any{&c.scores, &c.override, &c.band, &c.weightedScore, &c.focus, &c.work}
}

func (c *estimateColumns) estimate() (domain.RoleEstimate, error) {
	scores, err := decodeScores(c.scores)
	if err != nil {
		return domain.RoleEstimate{}, err
	}
	return domain.RoleEstimate{
		Scores:        scores,
		FocusOverride: nullFloatPtr(c.override),
		SizeBand:      domain.SizeBand(c.band),
		WeightedScore: c.weightedScore,
		FocusWeeks:    nullFloatPtr(c.focus),
		WorkWeeks:     nullFloatPtr(c.work),
	}, nil
}

func scanItem(row scanner) (*domain.RoadmapItem, error) {
	var item domain.RoadmapItem
	var statusStr, intakeStr, createdAtStr, updatedAtStr string
	var ux, content estimateColumns

	dest := []any{&item.ID, &item.ScenarioID, &item.Seq, &item.Name, &item.Initiative, &item.Priority,
		&statusStr, &intakeStr}
	dest = append(dest, ux.dest()...)
	dest = append(dest, content.dest()...)
	dest = append(dest, &createdAtStr, &updatedAtStr)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning roadmap item: %w", err)
	}

	item.Status = domain.ItemStatus(statusStr)
	item.IntakeSource = domain.IntakeSource(intakeStr)

	var err error
	if item.UX, err = ux.estimate(); err != nil {
		return nil, fmt.Errorf("item %s ux: %w", item.ID, err)
	}
	if item.Content, err = content.estimate(); err != nil {
		return nil, fmt.Errorf("item %s content: %w", item.ID, err)
	}
	item.CreatedAt, item.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
