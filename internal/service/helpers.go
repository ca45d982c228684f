package service

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
	"github.com/alexanderramin/capplan/internal/importer"
)

// applyModel recomputes an item's derived figures for both roles.
func applyModel(m estimation.EffortModel, item *domain.RoadmapItem) {
	for _, role := range domain.Roles {
		e := item.Estimate(role)
		res, ok := m.Resolve(role, e.Scores, e.FocusOverride, item.IntakeSource)
		if !ok {
			e.SizeBand = ""
			e.WeightedScore = 0
			e.FocusWeeks = nil
			e.WorkWeeks = nil
			continue
		}
		focus, work := res.FocusWeeks, res.WorkWeeks
		e.SizeBand = res.SizeBand
		e.WeightedScore = res.WeightedScore
		e.FocusWeeks = &focus
		e.WorkWeeks = &work
	}
}

// sortItems orders items by initiative then priority. Input is expected in
// seq order so ties stay in creation order.
func sortItems(items []*domain.RoadmapItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return estimation.ItemLess(items[i].Initiative, items[i].Priority, items[j].Initiative, items[j].Priority)
	})
}

func scoreErrors(role domain.Role, scores domain.FactorScores) []error {
	return importer.ValidateScores(string(role)+"_scores", role, scores)
}

func overrideError(role domain.Role, weeks *float64) error {
	if weeks == nil || domain.ValidFocusOverride(*weeks) {
		return nil
	}
	return validationError(fmt.Errorf("%s focus override must be between 0 and %v weeks (got %v)", role, domain.MaxFocusWeeks, *weeks))
}

func parseRole(s string) (domain.Role, error) {
	role, err := domain.ParseRole(s)
	if err != nil {
		return "", validationError(err)
	}
	return role, nil
}

func parseItemStatus(s string) (domain.ItemStatus, error) {
	if s == "" {
		return domain.ItemProposed, nil
	}
	if !domain.ValidItemStatuses[s] {
		return "", validationError(fmt.Errorf("invalid status %q (expected proposed, committed, done or cut)", s))
	}
	return domain.ItemStatus(s), nil
}

func parseIntakeSource(s string) (domain.IntakeSource, error) {
	if s == "" {
		return domain.IntakeDesigner, nil
	}
	if !domain.ValidIntakeSources[s] {
		return "", validationError(fmt.Errorf("invalid intake source %q (expected designer or pm)", s))
	}
	return domain.IntakeSource(s), nil
}

// emptyToNil stores an empty score map as "unscored".
func emptyToNil(s domain.FactorScores) domain.FactorScores {
	if len(s) == 0 {
		return nil
	}
	return s.Clone()
}
