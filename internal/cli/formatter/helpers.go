package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatNumber prints v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--"
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// FormatWeeks renders a week count such as "4w" or "0.5w".
func FormatWeeks(v float64) string {
	return FormatNumber(v) + "w"
}

// FormatWeeksPtr renders "--" for an unscored role.
func FormatWeeksPtr(v *float64) string {
	if v == nil {
		return Dim("--")
	}
	return FormatWeeks(*v)
}

// FormatSigned renders a surplus/deficit with an explicit sign.
func FormatSigned(v float64) string {
	if v > 0 {
		return "+" + FormatWeeks(v)
	}
	return FormatWeeks(v)
}

// BandBadge renders a size band, or a dim placeholder when unscored.
func BandBadge(band domain.SizeBand) string {
	if band == "" {
		return Dim("--")
	}
	return BandStyle(band).Render(string(band))
}

// ScenarioStatusPill returns a colored status indicator for a scenario.
func ScenarioStatusPill(status domain.ScenarioStatus) string {
	switch status {
	case domain.ScenarioActive:
		return StyleGreen.Render("● Active")
	case domain.ScenarioArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// ItemStatusPill returns a colored status indicator for a roadmap item.
func ItemStatusPill(status domain.ItemStatus) string {
	switch status {
	case domain.ItemProposed:
		return StyleBlue.Render("○ Proposed")
	case domain.ItemCommitted:
		return StyleGreen.Render("● Committed")
	case domain.ItemDone:
		return StyleDim.Render("✔ Done")
	case domain.ItemCut:
		return StyleDim.Render("✂ Cut")
	default:
		return StyleDim.Render(string(status))
	}
}

func formatScores(scores domain.FactorScores) string {
	if len(scores) == 0 {
		return Dim("unscored")
	}
	parts := make([]string, 0, len(scores))
	for _, name := range scores.Names() {
		parts = append(parts, fmt.Sprintf("%s=%s", name, FormatNumber(scores[name])))
	}
	return strings.Join(parts, " ")
}
