package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type scenarioService struct {
	scenarios repository.ScenarioRepo
	observer  UseCaseObserver
}

func NewScenarioService(scenarios repository.ScenarioRepo, observers ...UseCaseObserver) ScenarioService {
	return &scenarioService{scenarios: scenarios, observer: useCaseObserverOrNoop(observers)}
}

func (s *scenarioService) Create(ctx context.Context, req contract.CreateScenarioRequest) (_ *domain.Scenario, err error) {
	fields := map[string]any{"name": req.Name}
	defer observe(ctx, s.observer, "CreateScenario", time.Now(), fields, &err)

	now := time.Now().UTC()
	sc := &domain.Scenario{
		ID:               uuid.New().String(),
		Name:             strings.TrimSpace(req.Name),
		PlanningPeriod:   strings.TrimSpace(req.PlanningPeriod),
		UXDesigners:      req.UXDesigners,
		ContentDesigners: req.ContentDesigners,
		WeeksPerPeriod:   domain.Float64FromPtrWithDefault(domain.DefaultWeeksPerPeriod, req.WeeksPerPeriod),
		Status:           domain.ScenarioActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := sc.Validate(); err != nil {
		return nil, validationError(err)
	}
	if err := s.scenarios.Create(ctx, sc); err != nil {
		return nil, err
	}
	fields["scenario_id"] = sc.ID
	return sc, nil
}

func (s *scenarioService) GetByID(ctx context.Context, id string) (*domain.Scenario, error) {
	return s.scenarios.GetByID(ctx, id)
}

func (s *scenarioService) List(ctx context.Context, includeArchived bool) ([]*domain.Scenario, error) {
	return s.scenarios.List(ctx, includeArchived)
}

func (s *scenarioService) Update(ctx context.Context, id string, req contract.UpdateScenarioRequest) (_ *domain.Scenario, err error) {
	defer observe(ctx, s.observer, "UpdateScenario", time.Now(), map[string]any{"scenario_id": id}, &err)

	sc, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		sc.Name = strings.TrimSpace(*req.Name)
	}
	if req.PlanningPeriod != nil {
		sc.PlanningPeriod = strings.TrimSpace(*req.PlanningPeriod)
	}
	sc.UXDesigners = domain.Float64FromPtrWithDefault(sc.UXDesigners, req.UXDesigners)
	sc.ContentDesigners = domain.Float64FromPtrWithDefault(sc.ContentDesigners, req.ContentDesigners)
	sc.WeeksPerPeriod = domain.Float64FromPtrWithDefault(sc.WeeksPerPeriod, req.WeeksPerPeriod)
	if err := sc.Validate(); err != nil {
		return nil, validationError(err)
	}
	sc.UpdatedAt = time.Now().UTC()
	if err := s.scenarios.Update(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *scenarioService) Archive(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "ArchiveScenario", time.Now(), map[string]any{"scenario_id": id}, &err)
	return s.scenarios.Archive(ctx, id)
}

func (s *scenarioService) Unarchive(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "UnarchiveScenario", time.Now(), map[string]any{"scenario_id": id}, &err)
	return s.scenarios.Unarchive(ctx, id)
}

func (s *scenarioService) Delete(ctx context.Context, id string, force bool) (err error) {
	defer observe(ctx, s.observer, "DeleteScenario", time.Now(), map[string]any{"scenario_id": id, "force": force}, &err)

	sc, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !force && sc.Status != domain.ScenarioArchived {
		return fmt.Errorf("scenario %q: %w", sc.Name, ErrNotArchived)
	}
	return s.scenarios.Delete(ctx, id)
}
