package contract

type RoleSummary struct {
	Designers       float64 `json:"designers"`
	TotalWeeks      float64 `json:"total_weeks"`
	CapacityWeeks   float64 `json:"capacity_weeks"`
	SurplusDeficit  float64 `json:"surplus_deficit"`
	HeadcountNeeded int     `json:"headcount_needed"`
}

// Overcommitted reports whether demand exceeds capacity.
func (r RoleSummary) Overcommitted() bool {
	return r.SurplusDeficit > 0
}

type SummaryRow struct {
	Item                ItemView `json:"item"`
	UXWeeks             float64  `json:"ux_weeks"`
	ContentWeeks        float64  `json:"content_weeks"`
	AccumulatedUX       float64  `json:"accumulated_ux_weeks"`
	AccumulatedContent  float64  `json:"accumulated_content_weeks"`
	AboveCutLineUX      bool     `json:"above_cut_line_ux"`
	AboveCutLineContent bool     `json:"above_cut_line_content"`
}

// SummaryResponse is the capacity view of one scenario. Rows are in
// initiative/priority order; items with status cut are not counted.
type SummaryResponse struct {
	Scenario     ScenarioView `json:"scenario"`
	UX           RoleSummary  `json:"ux"`
	Content      RoleSummary  `json:"content"`
	Rows         []SummaryRow `json:"rows"`
	CutLineIndex int          `json:"cut_line_index"` // -1 when everything fits
	ExcludedCut  int          `json:"excluded_cut"`
	Warnings     []string     `json:"warnings,omitempty"`
}
