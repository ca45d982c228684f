package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultWeeksPerPeriod is a quarter.
const DefaultWeeksPerPeriod = 13.0

// Upper bounds on scenario inputs. They keep designers × weeks and every
// figure derived from it well inside float64 and int range.
const (
	MaxDesigners      = 10000.0
	MaxWeeksPerPeriod = 520.0
)

// Scenario is a planning period with the design team sizes available in it.
type Scenario struct {
	ID               string
	Name             string
	PlanningPeriod   string
	UXDesigners      float64
	ContentDesigners float64
	WeeksPerPeriod   float64
	Status           ScenarioStatus
	ArchivedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks the fields a user can set.
func (s *Scenario) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !ValidDesigners(s.UXDesigners) {
		problems = append(problems, fmt.Sprintf("ux designers must be between 0 and %v (got %v)", MaxDesigners, s.UXDesigners))
	}
	if !ValidDesigners(s.ContentDesigners) {
		problems = append(problems, fmt.Sprintf("content designers must be between 0 and %v (got %v)", MaxDesigners, s.ContentDesigners))
	}
	if !ValidWeeksPerPeriod(s.WeeksPerPeriod) {
		problems = append(problems, fmt.Sprintf("weeks per period must be > 0 and <= %v (got %v)", MaxWeeksPerPeriod, s.WeeksPerPeriod))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// Designers returns the head count for a role.
func (s *Scenario) Designers(role Role) float64 {
	if role == RoleContent {
		return s.ContentDesigners
	}
	return s.UXDesigners
}

// CapacityWeeks is designers × weeks for the role.
func (s *Scenario) CapacityWeeks(role Role) float64 {
	return s.Designers(role) * s.WeeksPerPeriod
}

// DisplayID truncates ID to 8 characters.
func (s *Scenario) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// ValidDesigners reports whether v is a head count in [0, MaxDesigners].
// NaN is rejected.
func ValidDesigners(v float64) bool {
	return v >= 0 && v <= MaxDesigners
}

// ValidWeeksPerPeriod reports whether v is in (0, MaxWeeksPerPeriod].
func ValidWeeksPerPeriod(v float64) bool {
	return v > 0 && v <= MaxWeeksPerPeriod
}
