package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewSettingsService(settings repository.SettingsRepo, observers ...UseCaseObserver) SettingsService {
	return &settingsService{settings: settings, observer: useCaseObserverOrNoop(observers)}
}

// load returns the stored settings, or an empty record when none exist yet.
func (s *settingsService) load(ctx context.Context) (*domain.Settings, error) {
	st, err := s.settings.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *settingsService) Model(ctx context.Context) (estimation.EffortModel, []string, error) {
	st, err := s.load(ctx)
	if err != nil {
		return estimation.EffortModel{}, nil, err
	}
	m, warnings := estimation.ModelFromSettings(st.Values)
	return m, warnings, nil
}

func (s *settingsService) Get(ctx context.Context) (*contract.SettingsView, error) {
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return settingsView(st), nil
}

func (s *settingsService) Set(ctx context.Context, key string, value float64) (_ *contract.SettingsView, err error) {
	key = strings.TrimSpace(key)
	defer observe(ctx, s.observer, "SetSetting", time.Now(), map[string]any{"key": key, "value": value}, &err)

	if err := estimation.ValidateSetting(key, value); err != nil {
		return nil, validationError(err)
	}
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	st.Set(key, value)
	if _, _, err := estimation.ThresholdsFromSettings(st.Values); err != nil {
		return nil, validationError(fmt.Errorf("%s: %w", key, err))
	}
	st.UpdatedAt = time.Now().UTC()
	if err := s.settings.Upsert(ctx, st); err != nil {
		return nil, err
	}
	return settingsView(st), nil
}

func (s *settingsService) Unset(ctx context.Context, key string) (_ *contract.SettingsView, err error) {
	key = strings.TrimSpace(key)
	defer observe(ctx, s.observer, "UnsetSetting", time.Now(), map[string]any{"key": key}, &err)

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if !st.Unset(key) {
		return nil, fmt.Errorf("setting %s: %w", key, repository.ErrNotFound)
	}
	st.UpdatedAt = time.Now().UTC()
	if err := s.settings.Upsert(ctx, st); err != nil {
		return nil, err
	}
	return settingsView(st), nil
}

func settingsView(st *domain.Settings) *contract.SettingsView {
	m, warnings := estimation.ModelFromSettings(st.Values)
	values := make(map[string]float64, len(st.Values))
	for k, v := range st.Values {
		values[k] = v
	}
	return &contract.SettingsView{
		Values:   values,
		Model:    contract.NewModelView(m),
		Warnings: warnings,
	}
}
