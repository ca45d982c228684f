package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/repository"
	"golang.org/x/sync/errgroup"
)

type capacityService struct {
	scenarios repository.ScenarioRepo
	items     repository.ItemRepo
	models    ModelSource
	observer  UseCaseObserver
}

func NewCapacityService(
	scenarios repository.ScenarioRepo,
	items repository.ItemRepo,
	models ModelSource,
	observers ...UseCaseObserver,
) CapacityService {
	return &capacityService{
		scenarios: scenarios,
		items:     items,
		models:    models,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Summary accumulates designer weeks over the scenario's items in
// initiative/priority order and marks where demand crosses capacity. Cut
// items are left out of the totals.
func (s *capacityService) Summary(ctx context.Context, scenarioID string) (_ *contract.SummaryResponse, err error) {
	fields := map[string]any{"scenario_id": scenarioID}
	defer observe(ctx, s.observer, "CapacitySummary", time.Now(), fields, &err)

	var (
		sc       *domain.Scenario
		items    []*domain.RoadmapItem
		model    estimation.EffortModel
		warnings []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sc, err = s.scenarios.GetByID(gctx, scenarioID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.items.ListByScenario(gctx, scenarioID)
		return err
	})
	g.Go(func() error {
		var err error
		model, warnings, err = s.models.Model(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counted := make([]*domain.RoadmapItem, 0, len(items))
	excluded := 0
	unscored := 0
	for _, item := range items {
		applyModel(model, item)
		if !item.CountsTowardCapacity() {
			excluded++
			continue
		}
		if !item.UX.Scored() && !item.Content.Scored() {
			unscored++
		}
		counted = append(counted, item)
	}
	sortItems(counted)

	ordered := make([]estimation.OrderedItem, 0, len(counted))
	for _, item := range counted {
		ordered = append(ordered, estimation.OrderedItem{
			ID:                   item.ID,
			Initiative:           item.Initiative,
			Priority:             item.Priority,
			UXDesignerWeeks:      item.UX.DesignerWeeks(),
			ContentDesignerWeeks: item.Content.DesignerWeeks(),
		})
	}
	if err := estimation.ValidateOrder(ordered); err != nil {
		return nil, err
	}
	sum := estimation.Summarize(ordered, sc.CapacityWeeks(domain.RoleUX), sc.CapacityWeeks(domain.RoleContent))

	uxHeadcount, err := estimation.HeadcountNeeded(sum.UX.TotalWeeks, sc.WeeksPerPeriod)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	contentHeadcount, err := estimation.HeadcountNeeded(sum.Content.TotalWeeks, sc.WeeksPerPeriod)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	rows := make([]contract.SummaryRow, 0, len(counted))
	for i, item := range counted {
		f := sum.Items[i]
		rows = append(rows, contract.SummaryRow{
			Item:                contract.NewItemView(item),
			UXWeeks:             item.UX.DesignerWeeks(),
			ContentWeeks:        item.Content.DesignerWeeks(),
			AccumulatedUX:       f.AccumulatedUX,
			AccumulatedContent:  f.AccumulatedContent,
			AboveCutLineUX:      f.AboveCutLineUX,
			AboveCutLineContent: f.AboveCutLineContent,
		})
	}

	if unscored > 0 {
		warnings = append(warnings, fmt.Sprintf("%d item(s) have no estimate for either role and add no demand", unscored))
	}
	fields["items"] = len(counted)
	fields["cut_line_index"] = sum.CutLineIndex()

	return &contract.SummaryResponse{
		Scenario:     contract.NewScenarioView(sc),
		UX:           roleSummary(sc.UXDesigners, sum.UX, uxHeadcount),
		Content:      roleSummary(sc.ContentDesigners, sum.Content, contentHeadcount),
		Rows:         rows,
		CutLineIndex: sum.CutLineIndex(),
		ExcludedCut:  excluded,
		Warnings:     warnings,
	}, nil
}

func roleSummary(designers float64, t estimation.RoleTotals, headcount int) contract.RoleSummary {
	return contract.RoleSummary{
		Designers:       designers,
		TotalWeeks:      t.TotalWeeks,
		CapacityWeeks:   t.CapacityWeeks,
		SurplusDeficit:  t.SurplusDeficit,
		HeadcountNeeded: headcount,
	}
}
