package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/contract"
)

const utilizationWidth = 24

// FormatSummary renders the capacity view: per-role totals followed by the
// ordered items with running totals and a marker where the cut line falls.
func FormatSummary(s *contract.SummaryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(s.Scenario.Name), Dim(s.Scenario.PlanningPeriod))

	b.WriteString(RenderTable(
		[]string{"ROLE", "DESIGNERS", "DEMAND", "CAPACITY", "BALANCE", "NEEDED", "UTILIZATION"},
		[][]string{
			roleRow("UX", s.UX),
			roleRow("Content", s.Content),
		},
		AlignRight(1, 2, 3, 4, 5),
	))

	b.WriteString("\n")
	if len(s.Rows) == 0 {
		b.WriteString(Dim("No items count toward capacity."))
		b.WriteString("\n")
	} else {
		b.WriteString(summaryItemTable(s))
	}

	if s.ExcludedCut > 0 {
		fmt.Fprintf(&b, "\n%s\n", Dim(fmt.Sprintf("%d cut item(s) excluded.", s.ExcludedCut)))
	}
	for _, w := range s.Warnings {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("!"), w)
	}
	return RenderBox("Capacity", strings.TrimRight(b.String(), "\n"))
}

func roleRow(label string, r contract.RoleSummary) []string {
	return []string{
		label,
		FormatNumber(r.Designers),
		FormatWeeks(r.TotalWeeks),
		FormatWeeks(r.CapacityWeeks),
		BalanceStyle(r.SurplusDeficit).Render(FormatSigned(r.SurplusDeficit)),
		fmt.Sprintf("%d", r.HeadcountNeeded),
		RenderUtilization(r.TotalWeeks, r.CapacityWeeks, utilizationWidth),
	}
}

func summaryItemTable(s *contract.SummaryResponse) string {
	headers := []string{"#", "NAME", "INITIATIVE", "PRI", "UX", "UX TOTAL", "CONTENT", "CONTENT TOTAL"}
	rows := make([][]string, 0, len(s.Rows)+1)
	for i, r := range s.Rows {
		if i == s.CutLineIndex {
			rows = append(rows, []string{"", StyleRed.Render("✂ cut line"), "", "", "", "", "", ""})
		}
		rows = append(rows, []string{
			Dim(r.Item.Key),
			r.Item.Name,
			r.Item.Initiative,
			fmt.Sprintf("%d", r.Item.Priority),
			FormatWeeks(r.UXWeeks),
			runningTotal(r.AccumulatedUX, r.AboveCutLineUX),
			FormatWeeks(r.ContentWeeks),
			runningTotal(r.AccumulatedContent, r.AboveCutLineContent),
		})
	}
	return RenderTable(headers, rows, AlignRight(3, 4, 5, 6, 7))
}

func runningTotal(v float64, over bool) string {
	if over {
		return StyleRed.Render(FormatWeeks(v))
	}
	return FormatWeeks(v)
}
