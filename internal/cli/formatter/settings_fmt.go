package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
)

// FormatSettings renders the stored overrides and the effective model.
func FormatSettings(v *contract.SettingsView) string {
	var b strings.Builder

	b.WriteString(Header("Overrides"))
	b.WriteString("\n")
	if len(v.Values) == 0 {
		b.WriteString(Dim("None; using built-in defaults."))
		b.WriteString("\n")
	} else {
		keys := make([]string, 0, len(v.Values))
		for k := range v.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s = %s\n", k, FormatNumber(v.Values[k]))
		}
	}

	b.WriteString("\n")
	b.WriteString(factorTable("UX factors", v.Model.UXFactors))
	b.WriteString("\n")
	b.WriteString(factorTable("Content factors", v.Model.ContentFactors))

	b.WriteString("\n")
	b.WriteString(Header("Size bands"))
	b.WriteString("\n")
	bandRows := make([][]string, 0, len(domain.SizeBands))
	for _, band := range domain.SizeBands {
		ux := v.Model.UXTimes[band]
		content := v.Model.ContentTimes[band]
		bandRows = append(bandRows, []string{
			BandBadge(band),
			bandRange(v.Model.SizeBandBounds, band),
			FormatWeeks(ux.FocusWeeks) + " / " + FormatWeeks(ux.WorkWeeks),
			FormatWeeks(content.FocusWeeks) + " / " + FormatWeeks(content.WorkWeeks),
		})
	}
	b.WriteString(RenderTable([]string{"BAND", "SCORE", "UX FOCUS/WORK", "CONTENT FOCUS/WORK"}, bandRows))

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Focus time ratio:    "), FormatNumber(v.Model.FocusTimeRatio))
	fmt.Fprintf(&b, "%s %s", Dim("PM intake multiplier:"), FormatNumber(v.Model.PMIntakeMultiplier))

	for _, w := range v.Warnings {
		fmt.Fprintf(&b, "\n%s %s", StyleYellow.Render("!"), w)
	}
	return RenderBox("Settings", b.String())
}

func factorTable(title string, factors []contract.FactorView) string {
	rows := make([][]string, 0, len(factors))
	for _, f := range factors {
		weight := FormatNumber(f.Weight)
		if f.Weight != f.DefaultWeight {
			weight = StyleYellow.Render(weight) + Dim(" (default "+FormatNumber(f.DefaultWeight)+")")
		}
		rows = append(rows, []string{f.Name, f.Label, weight})
	}
	return Header(title) + "\n" + RenderTable([]string{"KEY", "FACTOR", "WEIGHT"}, rows)
}

// bandRange shows a band's inclusive upper bound; XL is open-ended above L.
func bandRange(bounds map[domain.SizeBand]float64, band domain.SizeBand) string {
	if band == domain.BandXL {
		return "> " + FormatNumber(bounds[domain.BandL])
	}
	return "≤ " + FormatNumber(bounds[band])
}
