package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/capplan/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ScenarioRepo interface {
	Create(ctx context.Context, s *domain.Scenario) error
	GetByID(ctx context.Context, id string) (*domain.Scenario, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Scenario, error)
	Update(ctx context.Context, s *domain.Scenario) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type ItemRepo interface {
	Create(ctx context.Context, item *domain.RoadmapItem) error
	GetByID(ctx context.Context, id string) (*domain.RoadmapItem, error)
	// ListByScenario returns items in creation (seq) order; callers apply
	// the initiative/priority ordering.
	ListByScenario(ctx context.Context, scenarioID string) ([]*domain.RoadmapItem, error)
	Update(ctx context.Context, item *domain.RoadmapItem) error
	Delete(ctx context.Context, id string) error
}

type SequenceRepo interface {
	NextScenarioSeq(ctx context.Context, scenarioID string) (int, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
