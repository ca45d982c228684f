package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := setupServices(t)

	view, err := svc.settings.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Values)
	assert.Empty(t, view.Warnings)
	assert.Equal(t, 0.75, view.Model.FocusTimeRatio)
	assert.Equal(t, 1.0, view.Model.PMIntakeMultiplier)
	assert.Equal(t, 4.5, view.Model.SizeBandBounds[domain.BandL])
}

func TestSettingsService_SetAndUnset(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	view, err := svc.settings.Set(ctx, "effort_model.ux.productRisk", 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, view.Values["effort_model.ux.productRisk"])
	assert.Equal(t, 2.0, view.Model.UXFactors[0].Weight)

	m, warnings, err := svc.settings.Model(ctx)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 2.0, m.UXFactors[0].Weight)

	view, err = svc.settings.Unset(ctx, "effort_model.ux.productRisk")
	require.NoError(t, err)
	assert.Empty(t, view.Values)
	assert.Equal(t, 1.2, view.Model.UXFactors[0].Weight)

	_, err = svc.settings.Unset(ctx, "effort_model.ux.productRisk")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsService_ClampedValueWarns(t *testing.T) {
	svc := setupServices(t)

	view, err := svc.settings.Set(context.Background(), "time_model.focusTimeRatio", 0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.9, view.Model.FocusTimeRatio)
	require.Len(t, view.Warnings, 1)
	assert.Contains(t, view.Warnings[0], "clamped")
}

func TestSettingsService_SetRejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value float64
	}{
		{"unknown key", "effort_model.ux.charisma", 1},
		{"unknown section", "colour", 1},
		{"non-positive weight", "effort_model.content.localizationScope", 0},
		{"bands out of order", "size_bands.s", 1.0},
		{"xl below l", "size_bands.xl", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupServices(t)
			_, err := svc.settings.Set(context.Background(), tt.key, tt.value)
			require.ErrorIs(t, err, ErrValidation)

			view, err := svc.settings.Get(context.Background())
			require.NoError(t, err)
			assert.Empty(t, view.Values)
		})
	}
}

func TestSettingsService_BandSetValidatedAsAWhole(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.settings.Set(ctx, "size_bands.l", 4.0)
	require.NoError(t, err)
	_, err = svc.settings.Set(ctx, "size_bands.m", 4.0)
	require.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, estimation.ErrInvalidSetting)

	m, _, err := svc.settings.Model(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.Thresholds.L)
	assert.Equal(t, 3.5, m.Thresholds.M)
}
