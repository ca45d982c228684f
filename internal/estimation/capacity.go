package estimation

import (
	"fmt"
	"math"
	"sort"
)

// OrderedItem is an item's demand on each role, positioned by its
// initiative and priority.
type OrderedItem struct {
	ID                   string
	Initiative           string
	Priority             int
	UXDesignerWeeks      float64
	ContentDesignerWeeks float64
}

// ItemFlags records the running totals after an item and whether that item
// pushed demand past capacity.
type ItemFlags struct {
	ID                  string  `json:"id"`
	AccumulatedUX       float64 `json:"accumulated_ux_weeks"`
	AccumulatedContent  float64 `json:"accumulated_content_weeks"`
	AboveCutLineUX      bool    `json:"above_cut_line_ux"`
	AboveCutLineContent bool    `json:"above_cut_line_content"`
}

// RoleTotals summarizes demand against capacity for one role. A positive
// SurplusDeficit means demand exceeds capacity.
type RoleTotals struct {
	TotalWeeks     float64 `json:"total_weeks"`
	CapacityWeeks  float64 `json:"capacity_weeks"`
	SurplusDeficit float64 `json:"surplus_deficit"`
}

// Summary is the accumulator output.
type Summary struct {
	UX      RoleTotals  `json:"ux"`
	Content RoleTotals  `json:"content"`
	Items   []ItemFlags `json:"items"`
}

// ItemLess is the canonical ordering: initiative ascending (byte-wise,
// case-sensitive), then priority ascending.
func ItemLess(initiativeA string, priorityA int, initiativeB string, priorityB int) bool {
	if initiativeA != initiativeB {
		return initiativeA < initiativeB
	}
	return priorityA < priorityB
}

// SortItems orders items canonically. The sort is stable so equal keys keep
// their input order.
func SortItems(items []OrderedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return ItemLess(items[i].Initiative, items[i].Priority, items[j].Initiative, items[j].Priority)
	})
}

// ValidateOrder returns ErrPreconditionViolation if items are not in
// canonical order.
func ValidateOrder(items []OrderedItem) error {
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if ItemLess(cur.Initiative, cur.Priority, prev.Initiative, prev.Priority) {
			return fmt.Errorf("item %q (%s/%d) follows %q (%s/%d): %w",
				cur.ID, cur.Initiative, cur.Priority, prev.ID, prev.Initiative, prev.Priority, ErrPreconditionViolation)
		}
	}
	return nil
}

// Summarize accumulates designer weeks in input order and flags each item
// whose running total is strictly greater than the role's capacity. Items
// must already be sorted (see SortItems); Summarize does not re-sort.
func Summarize(items []OrderedItem, uxCapacity, contentCapacity float64) Summary {
	out := Summary{
		Items: make([]ItemFlags, 0, len(items)),
	}

	var accUX, accContent float64
	for _, item := range items {
		accUX += item.UXDesignerWeeks
		accContent += item.ContentDesignerWeeks
		out.Items = append(out.Items, ItemFlags{
			ID:                  item.ID,
			AccumulatedUX:       accUX,
			AccumulatedContent:  accContent,
			AboveCutLineUX:      accUX > uxCapacity,
			AboveCutLineContent: accContent > contentCapacity,
		})
	}

	out.UX = RoleTotals{
		TotalWeeks:     accUX,
		CapacityWeeks:  uxCapacity,
		SurplusDeficit: accUX - uxCapacity,
	}
	out.Content = RoleTotals{
		TotalWeeks:     accContent,
		CapacityWeeks:  contentCapacity,
		SurplusDeficit: accContent - contentCapacity,
	}
	return out
}

// HeadcountNeeded is the number of designers required to cover totalWeeks in
// one period: ceil(totalWeeks / weeksPerPeriod).
func HeadcountNeeded(totalWeeks, weeksPerPeriod float64) (int, error) {
	if !(weeksPerPeriod > 0) || math.IsInf(weeksPerPeriod, 0) {
		return 0, fmt.Errorf("headcount for %.1f weeks: %w", totalWeeks, ErrDivisionByZero)
	}
	if math.IsNaN(totalWeeks) || math.IsInf(totalWeeks, 0) {
		return 0, fmt.Errorf("headcount for %v weeks: %w", totalWeeks, ErrOutOfRange)
	}
	if totalWeeks <= 0 {
		return 0, nil
	}
	n := math.Ceil(totalWeeks / weeksPerPeriod)
	if n >= math.MaxInt {
		return 0, fmt.Errorf("headcount for %v weeks: %w", totalWeeks, ErrOutOfRange)
	}
	return int(n), nil
}

// CutLineIndex returns the position of the first item above the cut line for
// either role, or -1 when everything fits.
func (s Summary) CutLineIndex() int {
	for i, f := range s.Items {
		if f.AboveCutLineUX || f.AboveCutLineContent {
			return i
		}
	}
	return -1
}
