package service

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	allThreesUX = domain.FactorScores{"productRisk": 3, "problemAmbiguity": 3, "discoveryDepth": 3}
	allFoursUX  = domain.FactorScores{"productRisk": 4, "problemAmbiguity": 4, "discoveryDepth": 4}
	allFivesUX  = domain.FactorScores{"productRisk": 5, "problemAmbiguity": 5, "discoveryDepth": 5}
	allThreesCt = domain.FactorScores{"contentSurfaceArea": 3, "localizationScope": 3, "regulatoryReview": 3}
)

func createScenario(t *testing.T, svc *testServices, ux, content float64) *domain.Scenario {
	t.Helper()
	sc, err := svc.scenarios.Create(context.Background(), contract.CreateScenarioRequest{
		Name: "Q1", UXDesigners: ux, ContentDesigners: content,
	})
	require.NoError(t, err)
	return sc
}

func createItem(t *testing.T, svc *testServices, scenarioID string, req contract.CreateItemRequest) *domain.RoadmapItem {
	t.Helper()
	if req.Priority == 0 {
		req.Priority = 1
	}
	item, err := svc.items.Create(context.Background(), scenarioID, req)
	require.NoError(t, err)
	return item
}

func TestItemService_CreateAssignsSeqAndEstimates(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)

	first := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Checkout", Initiative: "Core", UXScores: allThreesUX})
	second := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Search", Initiative: "Core"})

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, domain.ItemProposed, first.Status)
	assert.Equal(t, domain.IntakeDesigner, first.IntakeSource)

	assert.Equal(t, domain.BandM, first.UX.SizeBand)
	require.NotNil(t, first.UX.WorkWeeks)
	assert.Equal(t, 4.0, *first.UX.WorkWeeks)
	assert.False(t, first.Content.Scored())
	assert.False(t, second.UX.Scored())

	got, err := svc.items.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, allThreesUX, got.UX.Scores)
	assert.Equal(t, 4.0, got.UX.DesignerWeeks())
}

func TestItemService_CreateReportsAllProblems(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)

	_, err := svc.items.Create(context.Background(), sc.ID, contract.CreateItemRequest{
		Name:          "",
		Priority:      1,
		UXScores:      domain.FactorScores{"productRisk": 7},
		ContentScores: domain.FactorScores{"productRisk": 3},
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "3 errors")
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "ux_scores.productRisk")
	assert.Contains(t, err.Error(), `unknown content factor "productRisk"`)
}

func TestItemService_CreateRejectsUnknownStatus(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)

	_, err := svc.items.Create(context.Background(), sc.ID, contract.CreateItemRequest{Name: "x", Priority: 1, Status: "maybe"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestItemService_CreateInMissingScenario(t *testing.T) {
	svc := setupServices(t)

	_, err := svc.items.Create(context.Background(), "nope", contract.CreateItemRequest{Name: "x", Priority: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItemService_ListSortsByInitiativeThenPriority(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)

	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "c2", Initiative: "Core", Priority: 2})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "a1", Initiative: "Alpha", Priority: 1})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "c1-first", Initiative: "Core", Priority: 1})
	createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "c1-second", Initiative: "Core", Priority: 1})

	items, err := svc.items.ListByScenario(context.Background(), sc.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"a1", "c1-first", "c1-second", "c2"}, names)
}

func TestItemService_ScoreRecomputes(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1)
	item := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Checkout", UXScores: allThreesUX})

	scored, err := svc.items.Score(ctx, item.ID, domain.RoleUX, allFivesUX)
	require.NoError(t, err)
	assert.Equal(t, domain.BandXL, scored.UX.SizeBand)
	assert.Equal(t, 16.0, scored.UX.DesignerWeeks())

	scored, err = svc.items.Score(ctx, item.ID, domain.RoleContent, allThreesCt)
	require.NoError(t, err)
	assert.Equal(t, domain.BandM, scored.Content.SizeBand)
	assert.Equal(t, 3.0, scored.Content.DesignerWeeks())

	got, err := svc.items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, allFivesUX, got.UX.Scores)
	assert.Equal(t, allThreesCt, got.Content.Scores)

	cleared, err := svc.items.Score(ctx, item.ID, domain.RoleUX, nil)
	require.NoError(t, err)
	assert.False(t, cleared.UX.Scored())
	assert.Empty(t, cleared.UX.SizeBand)
}

func TestItemService_ScoreRejectsInvalid(t *testing.T) {
	svc := setupServices(t)
	sc := createScenario(t, svc, 2, 1)
	item := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Checkout"})

	_, err := svc.items.Score(context.Background(), item.ID, domain.RoleUX, domain.FactorScores{"productRisk": 2.5})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.items.Score(context.Background(), item.ID, domain.Role("pm"), allThreesUX)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestItemService_FocusOverride(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1)
	item := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Checkout", UXScores: allThreesUX})

	got, err := svc.items.SetFocusOverride(ctx, item.ID, domain.RoleUX, ptr(3.0))
	require.NoError(t, err)
	require.NotNil(t, got.UX.FocusWeeks)
	assert.Equal(t, 3.0, *got.UX.FocusWeeks)
	assert.Equal(t, 4.0, got.UX.DesignerWeeks())
	assert.Equal(t, domain.BandM, got.UX.SizeBand)

	_, err = svc.items.SetFocusOverride(ctx, item.ID, domain.RoleUX, ptr(-1.0))
	assert.ErrorIs(t, err, ErrValidation)

	got, err = svc.items.SetFocusOverride(ctx, item.ID, domain.RoleUX, nil)
	require.NoError(t, err)
	assert.Nil(t, got.UX.FocusOverride)
	assert.Equal(t, 4.0, got.UX.DesignerWeeks())
}

func TestItemService_UpdateIntakeAppliesMultiplier(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1)
	item := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Checkout", UXScores: allThreesUX})

	_, err := svc.settings.Set(ctx, "effort_model.pmIntakeMultiplier", 1.5)
	require.NoError(t, err)

	got, err := svc.items.Update(ctx, item.ID, contract.UpdateItemRequest{IntakeSource: ptr("pm"), Priority: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, domain.IntakePM, got.IntakeSource)
	assert.Equal(t, 3, got.Priority)
	assert.Equal(t, 6.0, got.UX.DesignerWeeks())

	_, err = svc.items.Update(ctx, item.ID, contract.UpdateItemRequest{Priority: ptr(0)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestItemService_ListReflectsCurrentSettings(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1)
	item := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Checkout", UXScores: allThreesUX})
	require.Equal(t, domain.BandM, item.UX.SizeBand)

	_, err := svc.settings.Set(ctx, "size_bands.m", 2.9)
	require.NoError(t, err)

	items, err := svc.items.ListByScenario(ctx, sc.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.BandL, items[0].UX.SizeBand)
	assert.Equal(t, 8.0, items[0].UX.DesignerWeeks())
}

func TestItemService_Delete(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1)
	item := createItem(t, svc, sc.ID, contract.CreateItemRequest{Name: "Checkout"})

	require.NoError(t, svc.items.Delete(ctx, item.ID))
	_, err := svc.items.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.items.Delete(ctx, item.ID), repository.ErrNotFound)
}

func createReq(name string) contract.CreateItemRequest {
	return contract.CreateItemRequest{Name: name, Initiative: "Core", Priority: 1}
}

func TestItemService_ScoreNormalizesRole(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 2)
	item := createItem(t, svc, sc.ID, createReq("Glossary"))

	scored, err := svc.items.Score(ctx, item.ID, domain.Role(" Content "), allThreesCt)
	require.NoError(t, err)
	assert.Equal(t, domain.BandM, scored.Content.SizeBand)
	assert.False(t, scored.UX.Scored())

	_, err = svc.items.Score(ctx, item.ID, domain.Role("pm"), allThreesCt)
	require.ErrorIs(t, err, ErrValidation)
}

func TestItemService_RejectsUnboundedFocusOverride(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1)
	item := createItem(t, svc, sc.ID, createReq("Checkout"))

	_, err := svc.items.SetFocusOverride(ctx, item.ID, domain.RoleUX, ptr(1e308))
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.items.SetFocusOverride(ctx, item.ID, domain.RoleContent, ptr(domain.MaxFocusWeeks+1))
	assert.ErrorIs(t, err, ErrValidation)

	req := createReq("Search")
	req.UXFocusOverride = ptr(math.Inf(1))
	_, err = svc.items.Create(ctx, sc.ID, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestItemService_MaxFocusOverrideKeepsSummaryFinite(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	sc := createScenario(t, svc, 2, 1)

	_, err := svc.settings.Set(ctx, "effort_model.pmIntakeMultiplier", 2.0)
	require.NoError(t, err)
	req := createReq("Checkout")
	req.IntakeSource = "pm"
	req.UXFocusOverride = ptr(domain.MaxFocusWeeks)
	createItem(t, svc, sc.ID, req)

	sum, err := svc.capacity.Summary(ctx, sc.ID)
	require.NoError(t, err)
	assert.False(t, math.IsInf(sum.UX.TotalWeeks, 0))
	assert.Greater(t, sum.UX.TotalWeeks, domain.MaxFocusWeeks)
	assert.Positive(t, sum.UX.HeadcountNeeded)

	_, err = json.Marshal(sum)
	require.NoError(t, err)
}
