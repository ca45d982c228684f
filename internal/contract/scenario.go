package contract

import (
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
)

type CreateScenarioRequest struct {
	Name             string   `json:"name"`
	PlanningPeriod   string   `json:"planning_period"`
	UXDesigners      float64  `json:"ux_designers"`
	ContentDesigners float64  `json:"content_designers"`
	WeeksPerPeriod   *float64 `json:"weeks_per_period,omitempty"` // nil means 13
}

// UpdateScenarioRequest is a partial update; nil fields are left alone.
type UpdateScenarioRequest struct {
	Name             *string  `json:"name,omitempty"`
	PlanningPeriod   *string  `json:"planning_period,omitempty"`
	UXDesigners      *float64 `json:"ux_designers,omitempty"`
	ContentDesigners *float64 `json:"content_designers,omitempty"`
	WeeksPerPeriod   *float64 `json:"weeks_per_period,omitempty"`
}

type ScenarioView struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"name"`
	PlanningPeriod       string                `json:"planning_period"`
	UXDesigners          float64               `json:"ux_designers"`
	ContentDesigners     float64               `json:"content_designers"`
	WeeksPerPeriod       float64               `json:"weeks_per_period"`
	UXCapacityWeeks      float64               `json:"ux_capacity_weeks"`
	ContentCapacityWeeks float64               `json:"content_capacity_weeks"`
	Status               domain.ScenarioStatus `json:"status"`
	ArchivedAt           *time.Time            `json:"archived_at,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

func NewScenarioView(s *domain.Scenario) ScenarioView {
	return ScenarioView{
		ID:                   s.ID,
		Name:                 s.Name,
		PlanningPeriod:       s.PlanningPeriod,
		UXDesigners:          s.UXDesigners,
		ContentDesigners:     s.ContentDesigners,
		WeeksPerPeriod:       s.WeeksPerPeriod,
		UXCapacityWeeks:      s.CapacityWeeks(domain.RoleUX),
		ContentCapacityWeeks: s.CapacityWeeks(domain.RoleContent),
		Status:               s.Status,
		ArchivedAt:           s.ArchivedAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
