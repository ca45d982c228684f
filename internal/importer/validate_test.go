package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Items: []ItemImport{
			{Name: "Checkout redesign"},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Scenario: &ScenarioImport{Name: "FY26 H1", PlanningPeriod: "2026-H1", UXDesigners: 3, ContentDesigners: 1, WeeksPerPeriod: ptrFloat(26)},
		Defaults: &DefaultsImport{Initiative: "Payments", Status: "committed", IntakeSource: "pm"},
		Items: []ItemImport{
			{
				Name:            "Saved cards",
				Priority:        ptrInt(2),
				UXScores:        map[string]float64{"productRisk": 4, "problemAmbiguity": 3},
				ContentScores:   map[string]float64{"regulatoryReview": 5},
				UXFocusOverride: ptrFloat(2.5),
			},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_ReportsEveryProblem(t *testing.T) {
	schema := &ImportSchema{
		Scenario: &ScenarioImport{UXDesigners: -1, WeeksPerPeriod: ptrFloat(0)},
		Defaults: &DefaultsImport{Status: "someday"},
		Items: []ItemImport{
			{Name: "", Priority: ptrInt(0), IntakeSource: "sales"},
			{
				Name:                 "Bad scores",
				UXScores:             map[string]float64{"productRisk": 6, "vibes": 3},
				ContentScores:        map[string]float64{"localizationScope": 2.5},
				ContentFocusOverride: ptrFloat(-1),
			},
		},
	}

	errs := ValidateImportSchema(schema)
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")

	assert.Contains(t, joined, "scenario.name is required")
	assert.Contains(t, joined, "scenario.ux_designers must be >= 0")
	assert.Contains(t, joined, "scenario.weeks_per_period must be > 0")
	assert.Contains(t, joined, `defaults.status: invalid value "someday"`)
	assert.Contains(t, joined, "items[0].name is required")
	assert.Contains(t, joined, "items[0].priority must be >= 1")
	assert.Contains(t, joined, `items[0].intake_source: invalid value "sales"`)
	assert.Contains(t, joined, "items[1].ux_scores.productRisk: score must be an integer from 1 to 5")
	assert.Contains(t, joined, `unknown ux factor "vibes"`)
	assert.Contains(t, joined, "items[1].content_scores.localizationScope")
	assert.Contains(t, joined, "items[1].content_focus_override")
	assert.Len(t, errs, 11)
}

func TestValidateImportSchema_RejectsOversizedValues(t *testing.T) {
	schema := &ImportSchema{
		Scenario: &ScenarioImport{Name: "Huge", UXDesigners: 1e308, WeeksPerPeriod: ptrFloat(1e9)},
		Items: []ItemImport{
			{Name: "Forever", UXFocusOverride: ptrFloat(1e308)},
		},
	}

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "scenario.ux_designers")
	assert.Contains(t, errs[1].Error(), "scenario.weeks_per_period")
	assert.Contains(t, errs[2].Error(), "items[0].ux_focus_override")
}

func TestValidateImportSchema_NoItems(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one item")
}

func TestValidateScores_FactorsAreRoleSpecific(t *testing.T) {
	errs := ValidateScores("scores", "content", map[string]float64{"productRisk": 3})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `unknown content factor "productRisk"`)
}

func TestDecodeImportSchema_RejectsUnknownFields(t *testing.T) {
	_, err := DecodeImportSchema(strings.NewReader(`{"items":[{"name":"x","ux_score":{"productRisk":3}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}
