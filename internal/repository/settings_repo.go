package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
)

// SQLSettingsRepo stores the deployment's settings as one JSON blob.
type SQLSettingsRepo struct {
	db db.DBTX
}

// NewSettingsRepo creates a new SQLSettingsRepo.
func NewSettingsRepo(conn db.DBTX) *SQLSettingsRepo {
	return &SQLSettingsRepo{db: conn}
}

func (r *SQLSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT id, data, updated_at FROM settings WHERE id = ?`
	var s domain.Settings
	var data, updatedAt string
	err := r.db.QueryRowContext(ctx, query, domain.DefaultSettingsID).Scan(&s.ID, &data, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}

	s.Values = map[string]float64{}
	if data != "" {
		if err := json.Unmarshal([]byte(data), &s.Values); err != nil {
			return nil, fmt.Errorf("decoding settings: %w", err)
		}
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		s.UpdatedAt = t
	}
	return &s, nil
}

func (r *SQLSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	values := s.Values
	if values == nil {
		values = map[string]float64{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	id := domain.CoalesceStr(s.ID, domain.DefaultSettingsID)
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query := `INSERT INTO settings (id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, id, string(data), updatedAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
