package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/alexanderramin/capplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityService_SummaryCutLine(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1) // 26 ux weeks, 13 content weeks

	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "A", Initiative: "Core", Priority: 1, UXScores: allFoursUX})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "B", Initiative: "Core", Priority: 2, UXScores: allFivesUX})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "C", Initiative: "Core", Priority: 3, UXScores: allThreesUX})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "D", Initiative: "Core", Priority: 4, UXScores: allFivesUX, Status: "cut"})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "E", Initiative: "Alpha", Priority: 1, ContentScores: allThreesCt})

	sum, err := svc.capacity.Summary(ctx, sc.ID)
	require.NoError(t, err)

	require.Len(t, sum.Rows, 4)
	names := []string{sum.Rows[0].Item.Name, sum.Rows[1].Item.Name, sum.Rows[2].Item.Name, sum.Rows[3].Item.Name}
	assert.Equal(t, []string{"E", "A", "B", "C"}, names)
	assert.Equal(t, 1, sum.ExcludedCut)

	assert.Equal(t, 0.0, sum.Rows[0].AccumulatedUX)
	assert.Equal(t, 8.0, sum.Rows[1].AccumulatedUX)
	assert.Equal(t, 24.0, sum.Rows[2].AccumulatedUX)
	assert.Equal(t, 28.0, sum.Rows[3].AccumulatedUX)
	assert.False(t, sum.Rows[2].AboveCutLineUX)
	assert.True(t, sum.Rows[3].AboveCutLineUX)
	assert.Equal(t, 3, sum.CutLineIndex)

	assert.Equal(t, 28.0, sum.UX.TotalWeeks)
	assert.Equal(t, 26.0, sum.UX.CapacityWeeks)
	assert.Equal(t, 2.0, sum.UX.SurplusDeficit)
	assert.Equal(t, 3, sum.UX.HeadcountNeeded)
	assert.True(t, sum.UX.Overcommitted())

	assert.Equal(t, 3.0, sum.Content.TotalWeeks)
	assert.Equal(t, -10.0, sum.Content.SurplusDeficit)
	assert.Equal(t, 1, sum.Content.HeadcountNeeded)
	assert.False(t, sum.Content.Overcommitted())
}

func TestCapacityService_ExactlyAtCapacityIsNotCut(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 1, 0) // 13 ux weeks

	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "A", Priority: 1, UXScores: allFoursUX})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "B", Priority: 2, UXFocusOverride: ptr(3.75)})

	sum, err := svc.capacity.Summary(ctx, sc.ID)
	require.NoError(t, err)
	require.Len(t, sum.Rows, 2)
	assert.Equal(t, 13.0, sum.Rows[1].AccumulatedUX)
	assert.False(t, sum.Rows[1].AboveCutLineUX)
	assert.Equal(t, -1, sum.CutLineIndex)
	assert.Equal(t, 0.0, sum.UX.SurplusDeficit)
	assert.Equal(t, 1, sum.UX.HeadcountNeeded)
}

func TestCapacityService_EmptyScenario(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)

	sum, err := svc.capacity.Summary(context.Background(), sc.ID)
	require.NoError(t, err)
	assert.Empty(t, sum.Rows)
	assert.Equal(t, -1, sum.CutLineIndex)
	assert.Equal(t, -26.0, sum.UX.SurplusDeficit)
	assert.Equal(t, 0, sum.UX.HeadcountNeeded)
}

func TestCapacityService_WarnsAboutUnscoredItems(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "A"})

	sum, err := svc.capacity.Summary(context.Background(), sc.ID)
	require.NoError(t, err)
	require.Len(t, sum.Warnings, 1)
	assert.Contains(t, sum.Warnings[0], "1 item(s)")
	assert.Equal(t, 0.0, sum.UX.TotalWeeks)
}

func TestCapacityService_ZeroWeeksPerPeriod(t *testing.T) {
	svc := setupServices(t)
	sc := testutil.NewTestScenario("broken", testutil.WithWeeksPerPeriod(0))
	require.NoError(t, repository.NewScenarioRepo(svc.db).Create(context.Background(), sc))

	_, err := svc.capacity.Summary(context.Background(), sc.ID)
	assert.ErrorIs(t, err, estimation.ErrDivisionByZero)
}

func TestCapacityService_MissingScenario(t *testing.T) {
	svc := setupServices(t)

	_, err := svc.capacity.Summary(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCapacityService_ObservesUseCase(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "A", UXScores: allThreesUX})

	_, err := svc.capacity.Summary(context.Background(), sc.ID)
	require.NoError(t, err)

	ev := svc.observer.last()
	assert.Equal(t, "CapacitySummary", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 1, ev.Fields["items"])
	assert.Equal(t, -1, ev.Fields["cut_line_index"])
	assert.GreaterOrEqual(t, ev.Duration, time.Duration(0))
}

func TestCapacityService_CutItemsOnlyAreExcluded(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 1, 1)
	for _, st := range []domain.ItemStatus{domain.ItemProposed, domain.ItemCommitted, domain.ItemDone, domain.ItemCut} {
		createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: string(st), Status: string(st), UXScores: allThreesUX})
	}

	sum, err := svc.capacity.Summary(context.Background(), sc.ID)
	require.NoError(t, err)
	assert.Len(t, sum.Rows, 3)
	assert.Equal(t, 1, sum.ExcludedCut)
	assert.Equal(t, 12.0, sum.UX.TotalWeeks)
}
