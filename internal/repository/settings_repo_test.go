package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_SeededEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)

	s, err := NewSettingsRepo(database).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettingsID, s.ID)
	assert.Empty(t, s.Values)
}

func TestSettingsRepo_UpsertReplacesBlob(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSettingsRepo(database)
	ctx := context.Background()

	s := domain.NewSettings()
	s.Set("effort_model.ux.productRisk", 1.5)
	s.Set("time_model.focusTimeRatio", 0.6)
	require.NoError(t, repo.Upsert(ctx, s))

	s.Unset("effort_model.ux.productRisk")
	require.NoError(t, repo.Upsert(ctx, s))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"time_model.focusTimeRatio": 0.6}, got.Values)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSettingsRepo_MissingRow(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, err := database.Exec(`DELETE FROM settings`)
	require.NoError(t, err)

	_, err = NewSettingsRepo(database).Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
