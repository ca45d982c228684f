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

// SQLScenarioRepo implements ScenarioRepo over any db.DBTX.
type SQLScenarioRepo struct {
	db db.DBTX
}

// NewScenarioRepo creates a new SQLScenarioRepo.
func NewScenarioRepo(conn db.DBTX) *SQLScenarioRepo {
	return &SQLScenarioRepo{db: conn}
}

const scenarioColumns = `id, name, planning_period, ux_designers, content_designers, weeks_per_period,
	status, archived_at, created_at, updated_at`

func (r *SQLScenarioRepo) Create(ctx context.Context, s *domain.Scenario) error {
	query := `INSERT INTO scenarios (` + scenarioColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.PlanningPeriod,
		s.UXDesigners,
		s.ContentDesigners,
		s.WeeksPerPeriod,
		string(s.Status),
		nullableTimeToString(s.ArchivedAt, time.RFC3339),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scenario: %w", err)
	}
	return nil
}

func (r *SQLScenarioRepo) GetByID(ctx context.Context, id string) (*domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE id = ?`
	s, err := scanScenario(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLScenarioRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE archived_at IS NULL ORDER BY created_at, name`
	if includeArchived {
		query = `SELECT ` + scenarioColumns + ` FROM scenarios ORDER BY created_at, name`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []*domain.Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenarios: %w", err)
	}
	return scenarios, nil
}

func (r *SQLScenarioRepo) Update(ctx context.Context, s *domain.Scenario) error {
	query := `UPDATE scenarios SET name = ?, planning_period = ?, ux_designers = ?, content_designers = ?,
		weeks_per_period = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.PlanningPeriod,
		s.UXDesigners,
		s.ContentDesigners,
		s.WeeksPerPeriod,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating scenario: %w", err)
	}
	return requireAffected(res, "scenario", s.ID)
}

func (r *SQLScenarioRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE scenarios SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving scenario: %w", err)
	}
	return requireAffected(res, "scenario", id)
}

func (r *SQLScenarioRepo) Unarchive(ctx context.Context, id string) error {
	query := `UPDATE scenarios SET status = 'active', archived_at = NULL, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("unarchiving scenario: %w", err)
	}
	return requireAffected(res, "scenario", id)
}

// Delete removes the scenario; items and the sequence row cascade.
func (r *SQLScenarioRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	return requireAffected(res, "scenario", id)
}

func scanScenario(row scanner) (*domain.Scenario, error) {
	var s domain.Scenario
	var statusStr, createdAtStr, updatedAtStr string
	var archivedAtStr sql.NullString

	err := row.Scan(
		&s.ID, &s.Name, &s.PlanningPeriod,
		&s.UXDesigners, &s.ContentDesigners, &s.WeeksPerPeriod,
		&statusStr, &archivedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}

	s.Status = domain.ScenarioStatus(statusStr)
	s.ArchivedAt = parseNullableTime(archivedAtStr, time.RFC3339)
	s.CreatedAt, s.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// requireAffected turns a zero-row write into ErrNotFound.
func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}
