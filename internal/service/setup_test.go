package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/capplan/internal/db"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/testutil"
)

type testServices struct {
	db        *db.DB
	scenarios ScenarioService
	items     ItemService
	settings  SettingsService
	estimate  EstimateService
	capacity  CapacityService
	imports   ImportService
	observer  *recordingObserver
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	obs := &recordingObserver{}

	scenarioRepo := repository.NewScenarioRepo(database)
	itemRepo := repository.NewItemRepo(database)
	settings := NewSettingsService(repository.NewSettingsRepo(database), obs)

	return &testServices{
		db:        database,
		scenarios: NewScenarioService(scenarioRepo, obs),
		items:     NewItemService(itemRepo, scenarioRepo, settings, uow, obs),
		settings:  settings,
		estimate:  NewEstimateService(settings),
		capacity:  NewCapacityService(scenarioRepo, itemRepo, settings, obs),
		imports:   NewImportService(scenarioRepo, settings, uow, obs),
		observer:  obs,
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return UseCaseEvent{}
	}
	return r.events[len(r.events)-1]
}

func ptr[T any](v T) *T { return &v }
