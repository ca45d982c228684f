package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/contract"
)

// FormatEstimate renders a previewed estimate.
func FormatEstimate(e *contract.EstimateResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Role:  "), e.Role)
	if e.SizeBand != "" {
		fmt.Fprintf(&b, "%s %s (score %s)\n", Dim("Band:  "), BandBadge(e.SizeBand), FormatNumber(e.WeightedScore))
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Focus: "), FormatWeeks(e.FocusWeeks))
	fmt.Fprintf(&b, "%s %s", Dim("Work:  "), FormatWeeks(e.WorkWeeks))
	if !e.Scored {
		fmt.Fprintf(&b, "\n%s", StyleYellow.Render("No valid factor scores; showing the smallest band."))
	}
	return RenderBox("Estimate", b.String())
}
