package importer

import (
	"github.com/alexanderramin/capplan/internal/domain"
)

// Generated holds the domain objects built from an import file. IDs,
// sequence keys and derived estimates are assigned by the caller when the
// items are persisted.
type Generated struct {
	Scenario *domain.Scenario
	Items    []*domain.RoadmapItem
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema) *Generated {
	out := &Generated{}

	if s := schema.Scenario; s != nil {
		out.Scenario = &domain.Scenario{
			Name:             s.Name,
			PlanningPeriod:   s.PlanningPeriod,
			UXDesigners:      s.UXDesigners,
			ContentDesigners: s.ContentDesigners,
			WeeksPerPeriod:   domain.Float64FromPtrWithDefault(domain.DefaultWeeksPerPeriod, s.WeeksPerPeriod),
			Status:           domain.ScenarioActive,
		}
	}

	var defaults DefaultsImport
	if schema.Defaults != nil {
		defaults = *schema.Defaults
	}

	out.Items = make([]*domain.RoadmapItem, 0, len(schema.Items))
	for _, it := range schema.Items {
		item := &domain.RoadmapItem{
			Name:         it.Name,
			Initiative:   domain.CoalesceStr(it.Initiative, defaults.Initiative),
			Priority:     domain.IntFromPtrWithDefault(1, it.Priority),
			Status:       domain.ItemStatus(domain.CoalesceStr(it.Status, defaults.Status, string(domain.ItemProposed))),
			IntakeSource: domain.IntakeSource(domain.CoalesceStr(it.IntakeSource, defaults.IntakeSource, string(domain.IntakeDesigner))),
		}
		item.UX.Scores = domain.FactorScores(it.UXScores).Clone()
		item.Content.Scores = domain.FactorScores(it.ContentScores).Clone()
		item.UX.FocusOverride = copyFloat(it.UXFocusOverride)
		item.Content.FocusOverride = copyFloat(it.ContentFocusOverride)
		out.Items = append(out.Items, item)
	}
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	return &f
}
