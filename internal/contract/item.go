package contract

import (
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
)

type CreateItemRequest struct {
	Name                 string              `json:"name"`
	Initiative           string              `json:"initiative"`
	Priority             int                 `json:"priority"`
	Status               string              `json:"status,omitempty"`        // default proposed
	IntakeSource         string              `json:"intake_source,omitempty"` // default designer
	UXScores             domain.FactorScores `json:"ux_scores,omitempty"`
	ContentScores        domain.FactorScores `json:"content_scores,omitempty"`
	UXFocusOverride      *float64            `json:"ux_focus_override,omitempty"`
	ContentFocusOverride *float64            `json:"content_focus_override,omitempty"`
}

// UpdateItemRequest is a partial update of the descriptive fields. Scores
// and overrides have their own operations.
type UpdateItemRequest struct {
	Name         *string `json:"name,omitempty"`
	Initiative   *string `json:"initiative,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
	Status       *string `json:"status,omitempty"`
	IntakeSource *string `json:"intake_source,omitempty"`
}

type ScoreRequest struct {
	Scores domain.FactorScores `json:"scores"`
}

// FocusOverrideRequest sets a role's focus-week override; nil clears it.
type FocusOverrideRequest struct {
	Weeks *float64 `json:"weeks"`
}

type RoleEstimateView struct {
	Scores        domain.FactorScores `json:"scores,omitempty"`
	FocusOverride *float64            `json:"focus_override,omitempty"`
	SizeBand      domain.SizeBand     `json:"size_band,omitempty"`
	WeightedScore float64             `json:"weighted_score"`
	FocusWeeks    *float64            `json:"focus_weeks,omitempty"`
	WorkWeeks     *float64            `json:"work_weeks,omitempty"`
}

func NewRoleEstimateView(e domain.RoleEstimate) RoleEstimateView {
	return RoleEstimateView{
		Scores:        e.Scores,
		FocusOverride: e.FocusOverride,
		SizeBand:      e.SizeBand,
		WeightedScore: e.WeightedScore,
		FocusWeeks:    e.FocusWeeks,
		WorkWeeks:     e.WorkWeeks,
	}
}

type ItemView struct {
	ID           string              `json:"id"`
	ScenarioID   string              `json:"scenario_id"`
	Key          string              `json:"key"`
	Seq          int                 `json:"seq"`
	Name         string              `json:"name"`
	Initiative   string              `json:"initiative"`
	Priority     int                 `json:"priority"`
	Status       domain.ItemStatus   `json:"status"`
	IntakeSource domain.IntakeSource `json:"intake_source"`
	UX           RoleEstimateView    `json:"ux"`
	Content      RoleEstimateView    `json:"content"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewItemView(i *domain.RoadmapItem) ItemView {
	return ItemView{
		ID:           i.ID,
		ScenarioID:   i.ScenarioID,
		Key:          i.DisplayKey(),
		Seq:          i.Seq,
		Name:         i.Name,
		Initiative:   i.Initiative,
		Priority:     i.Priority,
		Status:       i.Status,
		IntakeSource: i.IntakeSource,
		UX:           NewRoleEstimateView(i.UX),
		Content:      NewRoleEstimateView(i.Content),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func NewItemViews(items []*domain.RoadmapItem) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemView(it))
	}
	return out
}

type ImportResult struct {
	ScenarioID string     `json:"scenario_id"`
	ItemCount  int        `json:"item_count"`
	Items      []ItemView `json:"items"`
}
