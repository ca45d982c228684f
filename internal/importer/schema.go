package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ImportSchema is the top-level JSON structure for a roadmap import.
type ImportSchema struct {
	// Scenario creates a new scenario for the items. Omit it when importing
	// into an existing scenario.
	Scenario *ScenarioImport `json:"scenario,omitempty"`
	Defaults *DefaultsImport `json:"defaults,omitempty"`
	Items    []ItemImport    `json:"items"`
}

// ScenarioImport defines the scenario-level fields in the import file.
type ScenarioImport struct {
	Name             string   `json:"name"`
	PlanningPeriod   string   `json:"planning_period,omitempty"`
	UXDesigners      float64  `json:"ux_designers"`
	ContentDesigners float64  `json:"content_designers"`
	WeeksPerPeriod   *float64 `json:"weeks_per_period,omitempty"`
}

// DefaultsImport defines values that cascade to items that leave them blank.
type DefaultsImport struct {
	Initiative   string `json:"initiative,omitempty"`
	Status       string `json:"status,omitempty"`
	IntakeSource string `json:"intake_source,omitempty"`
}

// ItemImport defines a roadmap item in the import file.
type ItemImport struct {
	Name                 string             `json:"name"`
	Initiative           string             `json:"initiative,omitempty"`
	Priority             *int               `json:"priority,omitempty"`
	Status               string             `json:"status,omitempty"`
	IntakeSource         string             `json:"intake_source,omitempty"`
	UXScores             map[string]float64 `json:"ux_scores,omitempty"`
	ContentScores        map[string]float64 `json:"content_scores,omitempty"`
	UXFocusOverride      *float64           `json:"ux_focus_override,omitempty"`
	ContentFocusOverride *float64           `json:"content_focus_override,omitempty"`
}

// LoadImportSchema reads and parses a roadmap import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeImportSchema(f)
}

// DecodeImportSchema parses an import document. Unknown fields are rejected
// so a misspelled factor block does not silently import as unscored.
func DecodeImportSchema(r io.Reader) (*ImportSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
