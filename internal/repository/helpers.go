package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString returns nil (SQL NULL) for a nil pointer, otherwise
// the formatted string.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func parseTimestamps(createdAt, updatedAt string) (time.Time, time.Time, error) {
	c, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing created_at: %w", err)
	}
	u, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return c, u, nil
}

// encodeScores stores scores as a JSON object; nil encodes as {}.
func encodeScores(s domain.FactorScores) (string, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding scores: %w", err)
	}
	return string(b), nil
}

func decodeScores(raw string) (domain.FactorScores, error) {
	if raw == "" || raw == "{}" {
		return nil, nil
	}
	var s domain.FactorScores
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decoding scores: %w", err)
	}
	return s, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
