package service

import (
	"context"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/importer"
)

type ScenarioService interface {
	Create(ctx context.Context, req contract.CreateScenarioRequest) (*domain.Scenario, error)
	GetByID(ctx context.Context, id string) (*domain.Scenario, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Scenario, error)
	Update(ctx context.Context, id string, req contract.UpdateScenarioRequest) (*domain.Scenario, error)
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type ItemService interface {
	Create(ctx context.Context, scenarioID string, req contract.CreateItemRequest) (*domain.RoadmapItem, error)
	GetByID(ctx context.Context, id string) (*domain.RoadmapItem, error)
	// ListByScenario returns items ordered by initiative then priority, with
	// derived estimates computed from the current model.
	ListByScenario(ctx context.Context, scenarioID string) ([]*domain.RoadmapItem, error)
	Update(ctx context.Context, id string, req contract.UpdateItemRequest) (*domain.RoadmapItem, error)
	Score(ctx context.Context, id string, role domain.Role, scores domain.FactorScores) (*domain.RoadmapItem, error)
	SetFocusOverride(ctx context.Context, id string, role domain.Role, weeks *float64) (*domain.RoadmapItem, error)
	Delete(ctx context.Context, id string) error
}

// ModelSource yields the estimation model currently in effect, with any
// warnings produced while applying stored settings.
type ModelSource interface {
	Model(ctx context.Context) (estimation.EffortModel, []string, error)
}

type SettingsService interface {
	ModelSource
	Get(ctx context.Context) (*contract.SettingsView, error)
	Set(ctx context.Context, key string, value float64) (*contract.SettingsView, error)
	Unset(ctx context.Context, key string) (*contract.SettingsView, error)
}

type EstimateService interface {
	Estimate(ctx context.Context, req contract.EstimateRequest) (*contract.EstimateResponse, error)
}

type CapacityService interface {
	Summary(ctx context.Context, scenarioID string) (*contract.SummaryResponse, error)
}

type ImportService interface {
	// ImportItems reads a JSON import file. With an empty scenarioID the file
	// must carry a scenario block, which is created.
	ImportItems(ctx context.Context, scenarioID, filePath string) (*contract.ImportResult, error)
	ImportItemsFromSchema(ctx context.Context, scenarioID string, schema *importer.ImportSchema) (*contract.ImportResult, error)
}
