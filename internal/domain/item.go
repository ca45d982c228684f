package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// FactorScores maps a complexity factor name to a 1–5 score. Absent factors
// are excluded from aggregation, not treated as zero.
type FactorScores map[string]float64

// Clone returns an independent copy.
func (f FactorScores) Clone() FactorScores {
	if f == nil {
		return nil
	}
	out := make(FactorScores, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Names returns the factor names in sorted order.
func (f FactorScores) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// MaxFocusWeeks bounds a focus-week override at ten years of one designer.
const MaxFocusWeeks = 520.0

// ValidFocusOverride reports whether v is in [0, MaxFocusWeeks]. NaN and
// infinities are rejected.
func ValidFocusOverride(v float64) bool {
	return v >= 0 && v <= MaxFocusWeeks
}

// ValidScore reports whether v is an integer in [1,5].
func ValidScore(v float64) bool {
	return v >= 1 && v <= 5 && v == math.Trunc(v)
}

// RoleEstimate holds one role's scoring inputs and the derived effort figures.
// The derived fields are duplicated for display; they are recomputed whenever
// the scores or the override change.
type RoleEstimate struct {
	Scores        FactorScores
	FocusOverride *float64

	SizeBand      SizeBand // empty when the role is unscored
	WeightedScore float64
	FocusWeeks    *float64
	WorkWeeks     *float64
}

// Scored reports whether derived figures are present.
func (e *RoleEstimate) Scored() bool {
	return e.WorkWeeks != nil
}

// DesignerWeeks is the demand this role places on capacity.
func (e *RoleEstimate) DesignerWeeks() float64 {
	if e.WorkWeeks == nil {
		return 0
	}
	return *e.WorkWeeks
}

// RoadmapItem is a unit of planned design work inside a scenario.
type RoadmapItem struct {
	ID           string
	ScenarioID   string
	Seq          int // scenario-scoped sequential key
	Name         string
	Initiative   string
	Priority     int
	Status       ItemStatus
	IntakeSource IntakeSource

	UX      RoleEstimate
	Content RoleEstimate

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Estimate returns the role's estimate for in-place editing.
func (i *RoadmapItem) Estimate(role Role) *RoleEstimate {
	if role == RoleContent {
		return &i.Content
	}
	return &i.UX
}

// Validate checks the user-editable fields.
func (i *RoadmapItem) Validate() error {
	var problems []string
	if strings.TrimSpace(i.Name) == "" {
		problems = append(problems, "name is required")
	}
	if i.Priority < 1 {
		problems = append(problems, fmt.Sprintf("priority must be >= 1 (got %d)", i.Priority))
	}
	if i.Status != "" && !ValidItemStatuses[string(i.Status)] {
		problems = append(problems, fmt.Sprintf("invalid status %q", i.Status))
	}
	if i.IntakeSource != "" && !ValidIntakeSources[string(i.IntakeSource)] {
		problems = append(problems, fmt.Sprintf("invalid intake source %q", i.IntakeSource))
	}
	for _, role := range Roles {
		est := i.Estimate(role)
		if est.FocusOverride != nil && !ValidFocusOverride(*est.FocusOverride) {
			problems = append(problems, fmt.Sprintf("%s focus override must be between 0 and %v weeks (got %v)", role, MaxFocusWeeks, *est.FocusOverride))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// CountsTowardCapacity is false for items that have been cut from the plan.
func (i *RoadmapItem) CountsTowardCapacity() bool {
	return i.Status != ItemCut
}

// DisplayKey returns the short "#n" form used in listings.
func (i *RoadmapItem) DisplayKey() string {
	if i.Seq > 0 {
		return fmt.Sprintf("#%d", i.Seq)
	}
	if len(i.ID) >= 8 {
		return i.ID[:8]
	}
	return i.ID
}
