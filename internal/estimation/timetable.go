package estimation

import (
	"math"

	"github.com/alexanderramin/capplan/internal/domain"
)

const (
	DefaultFocusTimeRatio = 0.75
	MinFocusTimeRatio     = 0.4
	MaxFocusTimeRatio     = 0.9
)

// TimeEstimate is a (focus weeks, work weeks) pair.
type TimeEstimate struct {
	FocusWeeks float64 `json:"focus_weeks"`
	WorkWeeks  float64 `json:"work_weeks"`
}

// TimeTable maps a size band to its time estimate for one role.
type TimeTable map[domain.SizeBand]TimeEstimate

func defaultUXTimes() TimeTable {
	return TimeTable{
		domain.BandXS: {FocusWeeks: 0.5, WorkWeeks: 1},
		domain.BandS:  {FocusWeeks: 1, WorkWeeks: 2},
		domain.BandM:  {FocusWeeks: 2, WorkWeeks: 4},
		domain.BandL:  {FocusWeeks: 4, WorkWeeks: 8},
		domain.BandXL: {FocusWeeks: 8, WorkWeeks: 16},
	}
}

func defaultContentTimes() TimeTable {
	return TimeTable{
		domain.BandXS: {FocusWeeks: 0.25, WorkWeeks: 0.5},
		domain.BandS:  {FocusWeeks: 0.5, WorkWeeks: 1},
		domain.BandM:  {FocusWeeks: 1.5, WorkWeeks: 3},
		domain.BandL:  {FocusWeeks: 3, WorkWeeks: 6},
		domain.BandXL: {FocusWeeks: 6, WorkWeeks: 12},
	}
}

// DefaultTimeTable returns a fresh copy of the built-in table for role.
func DefaultTimeTable(role domain.Role) TimeTable {
	if role == domain.RoleContent {
		return defaultContentTimes()
	}
	return defaultUXTimes()
}

// MapBandToTime looks up the built-in table. Unknown bands yield zero weeks.
func MapBandToTime(band domain.SizeBand, role domain.Role) TimeEstimate {
	return DefaultTimeTable(role)[band]
}

// Lookup returns the tabulated estimate, deriving work weeks from focus
// weeks when the table only carries focus time.
func (t TimeTable) Lookup(band domain.SizeBand, focusTimeRatio float64) (TimeEstimate, bool) {
	te, ok := t[band]
	if !ok {
		return TimeEstimate{}, false
	}
	if te.WorkWeeks == 0 && te.FocusWeeks > 0 {
		te.WorkWeeks = DeriveWorkWeeks(te.FocusWeeks, focusTimeRatio)
	}
	return te, true
}

// DeriveWorkWeeks converts focus weeks into work weeks, rounded to one
// decimal. A non-positive ratio falls back to the default.
func DeriveWorkWeeks(focusWeeks, focusTimeRatio float64) float64 {
	if !(focusTimeRatio > 0) {
		focusTimeRatio = DefaultFocusTimeRatio
	}
	return round1(focusWeeks / focusTimeRatio)
}

// ClampFocusTimeRatio bounds a configured ratio to [0.4, 0.9].
func ClampFocusTimeRatio(r float64) float64 {
	if math.IsNaN(r) {
		return DefaultFocusTimeRatio
	}
	return math.Min(MaxFocusTimeRatio, math.Max(MinFocusTimeRatio, r))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
