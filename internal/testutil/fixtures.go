package testutil

import (
	"time"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/google/uuid"
)

// Timestamps are stored at second precision; fixtures match so a
// round-tripped value compares equal.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Scenario options
type ScenarioOption func(*domain.Scenario)

func WithDesigners(ux, content float64) ScenarioOption {
	return func(s *domain.Scenario) {
		s.UXDesigners = ux
		s.ContentDesigners = content
	}
}

func WithWeeksPerPeriod(w float64) ScenarioOption {
	return func(s *domain.Scenario) {
		s.WeeksPerPeriod = w
	}
}

func WithPlanningPeriod(p string) ScenarioOption {
	return func(s *domain.Scenario) {
		s.PlanningPeriod = p
	}
}

func WithScenarioStatus(st domain.ScenarioStatus) ScenarioOption {
	return func(s *domain.Scenario) {
		s.Status = st
		if st == domain.ScenarioArchived {
			t := now()
			s.ArchivedAt = &t
		}
	}
}

func NewTestScenario(name string, opts ...ScenarioOption) *domain.Scenario {
	ts := now()
	s := &domain.Scenario{
		ID:               uuid.New().String(),
		Name:             name,
		PlanningPeriod:   "2026-Q1",
		UXDesigners:      2,
		ContentDesigners: 1,
		WeeksPerPeriod:   domain.DefaultWeeksPerPeriod,
		Status:           domain.ScenarioActive,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RoadmapItem options
type ItemOption func(*domain.RoadmapItem)

func WithInitiative(i string) ItemOption {
	return func(it *domain.RoadmapItem) {
		it.Initiative = i
	}
}

func WithPriority(p int) ItemOption {
	return func(it *domain.RoadmapItem) {
		it.Priority = p
	}
}

func WithSeq(n int) ItemOption {
	return func(it *domain.RoadmapItem) {
		it.Seq = n
	}
}

func WithItemStatus(s domain.ItemStatus) ItemOption {
	return func(it *domain.RoadmapItem) {
		it.Status = s
	}
}

func WithIntakeSource(s domain.IntakeSource) ItemOption {
	return func(it *domain.RoadmapItem) {
		it.IntakeSource = s
	}
}

func WithScores(role domain.Role, scores domain.FactorScores) ItemOption {
	return func(it *domain.RoadmapItem) {
		it.Estimate(role).Scores = scores
	}
}

func WithFocusOverride(role domain.Role, weeks float64) ItemOption {
	return func(it *domain.RoadmapItem) {
		it.Estimate(role).FocusOverride = &weeks
	}
}

// WithWorkWeeks sets the derived figures directly, bypassing the model.
func WithWorkWeeks(role domain.Role, band domain.SizeBand, focus, work float64) ItemOption {
	return func(it *domain.RoadmapItem) {
		e := it.Estimate(role)
		e.SizeBand = band
		e.FocusWeeks = &focus
		e.WorkWeeks = &work
	}
}

func NewTestItem(scenarioID, name string, opts ...ItemOption) *domain.RoadmapItem {
	ts := now()
	it := &domain.RoadmapItem{
		ID:           uuid.New().String(),
		ScenarioID:   scenarioID,
		Seq:          1,
		Name:         name,
		Initiative:   "Core",
		Priority:     1,
		Status:       domain.ItemProposed,
		IntakeSource: domain.IntakeDesigner,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}
