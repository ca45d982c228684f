package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/domain"
)

// FormatItemList renders items in the order given.
func FormatItemList(items []*domain.RoadmapItem) string {
	return RenderBox("Roadmap items", itemTable(items))
}

func itemTable(items []*domain.RoadmapItem) string {
	headers := []string{"#", "NAME", "INITIATIVE", "PRI", "STATUS", "UX", "UX WEEKS", "CONTENT", "CONTENT WEEKS"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		name := Bold(it.Name)
		if it.IntakeSource == domain.IntakePM {
			name += " " + StylePurple.Render("pm")
		}
		rows = append(rows, []string{
			Dim(it.DisplayKey()),
			name,
			it.Initiative,
			fmt.Sprintf("%d", it.Priority),
			ItemStatusPill(it.Status),
			BandBadge(it.UX.SizeBand),
			FormatWeeksPtr(it.UX.WorkWeeks),
			BandBadge(it.Content.SizeBand),
			FormatWeeksPtr(it.Content.WorkWeeks),
		})
	}
	return RenderTable(headers, rows, AlignRight(3, 6, 8))
}

// FormatItemDetail renders one item with both roles' inputs and results.
func FormatItemDetail(it *domain.RoadmapItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n", Dim(it.DisplayKey()), Bold(it.Name), ItemStatusPill(it.Status))
	fmt.Fprintf(&b, "%s %s, priority %d\n", Dim("Initiative:"), it.Initiative, it.Priority)
	fmt.Fprintf(&b, "%s %s\n", Dim("Intake:    "), it.IntakeSource)
	for _, role := range domain.Roles {
		e := it.Estimate(role)
		b.WriteString("\n")
		b.WriteString(Header(string(role)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n", Dim("Scores:  "), formatScores(e.Scores))
		if e.FocusOverride != nil {
			fmt.Fprintf(&b, "%s %s focus\n", Dim("Override:"), FormatWeeks(*e.FocusOverride))
		}
		if !e.Scored() {
			b.WriteString(Dim("No estimate."))
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "%s %s (score %s)\n", Dim("Band:    "), BandBadge(e.SizeBand), FormatNumber(e.WeightedScore))
		fmt.Fprintf(&b, "%s %s focus, %s work\n", Dim("Time:    "), FormatWeeksPtr(e.FocusWeeks), FormatWeeksPtr(e.WorkWeeks))
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
