package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items     repository.ItemRepo
	scenarios repository.ScenarioRepo
	models    ModelSource
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewItemService(
	items repository.ItemRepo,
	scenarios repository.ScenarioRepo,
	models ModelSource,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ItemService {
	return &itemService{
		items:     items,
		scenarios: scenarios,
		models:    models,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *itemService) Create(ctx context.Context, scenarioID string, req contract.CreateItemRequest) (_ *domain.RoadmapItem, err error) {
	fields := map[string]any{"scenario_id": scenarioID, "name": req.Name}
	defer observe(ctx, s.observer, "CreateItem", time.Now(), fields, &err)

	status, err := parseItemStatus(req.Status)
	if err != nil {
		return nil, err
	}
	intake, err := parseIntakeSource(req.IntakeSource)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.RoadmapItem{
		ID:           uuid.New().String(),
		ScenarioID:   scenarioID,
		Name:         strings.TrimSpace(req.Name),
		Initiative:   strings.TrimSpace(req.Initiative),
		Priority:     req.Priority,
		Status:       status,
		IntakeSource: intake,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	item.UX.Scores = emptyToNil(req.UXScores)
	item.Content.Scores = emptyToNil(req.ContentScores)
	item.UX.FocusOverride = req.UXFocusOverride
	item.Content.FocusOverride = req.ContentFocusOverride

	if err := validateItem(item); err != nil {
		return nil, err
	}
	if _, err := s.scenarios.GetByID(ctx, scenarioID); err != nil {
		return nil, err
	}
	m, _, err := s.models.Model(ctx)
	if err != nil {
		return nil, err
	}
	applyModel(m, item)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		seq, err := repository.NewSequenceRepo(tx).NextScenarioSeq(ctx, scenarioID)
		if err != nil {
			return err
		}
		item.Seq = seq
		return repository.NewItemRepo(tx).Create(ctx, item)
	})
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	fields["item_id"] = item.ID
	fields["seq"] = item.Seq
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.RoadmapItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m, _, err := s.models.Model(ctx)
	if err != nil {
		return nil, err
	}
	applyModel(m, item)
	return item, nil
}

func (s *itemService) ListByScenario(ctx context.Context, scenarioID string) ([]*domain.RoadmapItem, error) {
	if _, err := s.scenarios.GetByID(ctx, scenarioID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}
	m, _, err := s.models.Model(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		applyModel(m, item)
	}
	sortItems(items)
	return items, nil
}

func (s *itemService) Update(ctx context.Context, id string, req contract.UpdateItemRequest) (_ *domain.RoadmapItem, err error) {
	defer observe(ctx, s.observer, "UpdateItem", time.Now(), map[string]any{"item_id": id}, &err)

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Initiative != nil {
		item.Initiative = strings.TrimSpace(*req.Initiative)
	}
	item.Priority = domain.IntFromPtrWithDefault(item.Priority, req.Priority)
	if req.Status != nil {
		if item.Status, err = parseItemStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.IntakeSource != nil {
		if item.IntakeSource, err = parseIntakeSource(*req.IntakeSource); err != nil {
			return nil, err
		}
	}
	if err := item.Validate(); err != nil {
		return nil, validationError(err)
	}
	return item, s.save(ctx, item)
}

func (s *itemService) Score(ctx context.Context, id string, role domain.Role, scores domain.FactorScores) (_ *domain.RoadmapItem, err error) {
	defer observe(ctx, s.observer, "ScoreItem", time.Now(), map[string]any{"item_id": id, "role": string(role)}, &err)

	if role, err = parseRole(string(role)); err != nil {
		return nil, err
	}
	if errs := scoreErrors(role, scores); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Estimate(role).Scores = emptyToNil(scores)
	return item, s.save(ctx, item)
}

func (s *itemService) SetFocusOverride(ctx context.Context, id string, role domain.Role, weeks *float64) (_ *domain.RoadmapItem, err error) {
	defer observe(ctx, s.observer, "SetFocusOverride", time.Now(), map[string]any{"item_id": id, "role": string(role)}, &err)

	if role, err = parseRole(string(role)); err != nil {
		return nil, err
	}
	if err := overrideError(role, weeks); err != nil {
		return nil, err
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if weeks != nil {
		w := *weeks
		weeks = &w
	}
	item.Estimate(role).FocusOverride = weeks
	return item, s.save(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "DeleteItem", time.Now(), map[string]any{"item_id": id}, &err)
	return s.items.Delete(ctx, id)
}

// save recomputes derived figures with the current model and persists.
func (s *itemService) save(ctx context.Context, item *domain.RoadmapItem) error {
	m, _, err := s.models.Model(ctx)
	if err != nil {
		return err
	}
	applyModel(m, item)
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

// validateItem checks descriptive fields and both roles' scores, reporting
// every problem at once.
func validateItem(item *domain.RoadmapItem) error {
	var errs []error
	if err := item.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, role := range domain.Roles {
		errs = append(errs, scoreErrors(role, item.Estimate(role).Scores)...)
	}
	if len(errs) > 0 {
		return formatValidationErrors(errs)
	}
	return nil
}
