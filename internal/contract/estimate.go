package contract

import (
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
)

// EstimateRequest previews an estimate without touching stored items.
type EstimateRequest struct {
	Role          string              `json:"role"`
	Scores        domain.FactorScores `json:"scores"`
	FocusOverride *float64            `json:"focus_override,omitempty"`
	IntakeSource  string              `json:"intake_source,omitempty"`
}

type EstimateResponse struct {
	Role domain.Role `json:"role"`
	estimation.EffortResult
	// Scored is false when no score was valid; the result is then the XS
	// fallback row (or the override, if one was given).
	Scored bool `json:"scored"`
}
