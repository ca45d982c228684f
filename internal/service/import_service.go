package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/importer"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	scenarios repository.ScenarioRepo
	models    ModelSource
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewImportService(
	scenarios repository.ScenarioRepo,
	models ModelSource,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		scenarios: scenarios,
		models:    models,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportItems(ctx context.Context, scenarioID, filePath string) (*contract.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, validationError(fmt.Errorf("loading import file: %w", err))
	}
	return s.ImportItemsFromSchema(ctx, scenarioID, schema)
}

// ImportItemsFromSchema validates the whole document before writing. All
// rows, and the scenario when the document defines one, are created in a
// single transaction.
func (s *importService) ImportItemsFromSchema(ctx context.Context, scenarioID string, schema *importer.ImportSchema) (_ *contract.ImportResult, err error) {
	fields := map[string]any{"scenario_id": scenarioID, "items": len(schema.Items)}
	defer observe(ctx, s.observer, "ImportItems", time.Now(), fields, &err)

	errs := importer.ValidateImportSchema(schema)
	switch {
	case scenarioID == "" && schema.Scenario == nil:
		errs = append(errs, errors.New("a target scenario or a scenario block in the file is required"))
	case scenarioID != "" && schema.Scenario != nil:
		errs = append(errs, errors.New("the file defines a scenario; omit the target scenario to create it"))
	}
	if len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	if scenarioID != "" {
		if _, err := s.scenarios.GetByID(ctx, scenarioID); err != nil {
			return nil, err
		}
	}
	m, _, err := s.models.Model(ctx)
	if err != nil {
		return nil, err
	}

	gen := importer.Convert(schema)
	now := time.Now().UTC()
	if gen.Scenario != nil {
		gen.Scenario.ID = uuid.New().String()
		gen.Scenario.CreatedAt = now
		gen.Scenario.UpdatedAt = now
		scenarioID = gen.Scenario.ID
	}
	for _, item := range gen.Items {
		item.ID = uuid.New().String()
		item.ScenarioID = scenarioID
		item.CreatedAt = now
		item.UpdatedAt = now
		applyModel(m, item)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if gen.Scenario != nil {
			if err := repository.NewScenarioRepo(tx).Create(ctx, gen.Scenario); err != nil {
				return err
			}
		}
		seqRepo := repository.NewSequenceRepo(tx)
		itemRepo := repository.NewItemRepo(tx)
		for _, item := range gen.Items {
			seq, err := seqRepo.NextScenarioSeq(ctx, scenarioID)
			if err != nil {
				return err
			}
			item.Seq = seq
			if err := itemRepo.Create(ctx, item); err != nil {
				return fmt.Errorf("item %q: %w", item.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing items: %w", err)
	}

	fields["scenario_id"] = scenarioID
	return &contract.ImportResult{
		ScenarioID: scenarioID,
		ItemCount:  len(gen.Items),
		Items:      contract.NewItemViews(gen.Items),
	}, nil
}
