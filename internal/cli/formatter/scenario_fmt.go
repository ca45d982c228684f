package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
)

// FormatScenarioList renders scenarios with their per-role capacity.
func FormatScenarioList(scenarios []*domain.Scenario) string {
	headers := []string{"ID", "NAME", "PERIOD", "UX", "CONTENT", "WEEKS", "STATUS"}
	rows := make([][]string, 0, len(scenarios))
	for _, sc := range scenarios {
		period := sc.PlanningPeriod
		if period == "" {
			period = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(sc.ID),
			Bold(sc.Name),
			period,
			FormatNumber(sc.UXDesigners),
			FormatNumber(sc.ContentDesigners),
			FormatNumber(sc.WeeksPerPeriod),
			ScenarioStatusPill(sc.Status),
		})
	}
	return RenderBox("Scenarios", RenderTable(headers, rows, AlignRight(3, 4, 5)))
}

// FormatScenarioInspect renders a scenario card followed by its items.
func FormatScenarioInspect(sc *domain.Scenario, items []*domain.RoadmapItem) string {
	v := contract.NewScenarioView(sc)
	var b strings.Builder
	b.WriteString(Bold(v.Name))
	b.WriteString("  ")
	b.WriteString(ScenarioStatusPill(v.Status))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:      "), v.ID)
	if v.PlanningPeriod != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Period:  "), v.PlanningPeriod)
	}
	fmt.Fprintf(&b, "%s %s per period\n", Dim("Weeks:   "), FormatNumber(v.WeeksPerPeriod))
	fmt.Fprintf(&b, "%s %s designers, %s capacity\n", Dim("UX:      "), FormatNumber(v.UXDesigners), FormatWeeks(v.UXCapacityWeeks))
	fmt.Fprintf(&b, "%s %s designers, %s capacity\n", Dim("Content: "), FormatNumber(v.ContentDesigners), FormatWeeks(v.ContentCapacityWeeks))

	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(Dim("No roadmap items yet."))
	} else {
		b.WriteString(itemTable(items))
	}
	return RenderBox("", b.String())
}
