package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Scenario != nil {
		errs = append(errs, validateScenario(schema.Scenario)...)
	}
	errs = append(errs, validateDefaults(schema.Defaults)...)

	if len(schema.Items) == 0 {
		errs = append(errs, fmt.Errorf("items: at least one item is required"))
	}
	for i := range schema.Items {
		errs = append(errs, validateItem(fmt.Sprintf("items[%d]", i), &schema.Items[i])...)
	}
	return errs
}

func validateScenario(s *ScenarioImport) []error {
	var errs []error
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, fmt.Errorf("scenario.name is required"))
	}
	if !domain.ValidDesigners(s.UXDesigners) {
		errs = append(errs, fmt.Errorf("scenario.ux_designers must be >= 0 and <= %v", domain.MaxDesigners))
	}
	if !domain.ValidDesigners(s.ContentDesigners) {
		errs = append(errs, fmt.Errorf("scenario.content_designers must be >= 0 and <= %v", domain.MaxDesigners))
	}
	if s.WeeksPerPeriod != nil && !domain.ValidWeeksPerPeriod(*s.WeeksPerPeriod) {
		errs = append(errs, fmt.Errorf("scenario.weeks_per_period must be > 0 and <= %v", domain.MaxWeeksPerPeriod))
	}
	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.Status != "" && !domain.ValidItemStatuses[d.Status] {
		errs = append(errs, fmt.Errorf("defaults.status: invalid value %q", d.Status))
	}
	if d.IntakeSource != "" && !domain.ValidIntakeSources[d.IntakeSource] {
		errs = append(errs, fmt.Errorf("defaults.intake_source: invalid value %q", d.IntakeSource))
	}
	return errs
}

func validateItem(path string, it *ItemImport) []error {
	var errs []error
	if strings.TrimSpace(it.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", path))
	}
	if it.Priority != nil && *it.Priority < 1 {
		errs = append(errs, fmt.Errorf("%s.priority must be >= 1 (got %d)", path, *it.Priority))
	}
	if it.Status != "" && !domain.ValidItemStatuses[it.Status] {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", path, it.Status))
	}
	if it.IntakeSource != "" && !domain.ValidIntakeSources[it.IntakeSource] {
		errs = append(errs, fmt.Errorf("%s.intake_source: invalid value %q", path, it.IntakeSource))
	}
	errs = append(errs, ValidateScores(path+".ux_scores", domain.RoleUX, it.UXScores)...)
	errs = append(errs, ValidateScores(path+".content_scores", domain.RoleContent, it.ContentScores)...)
	errs = append(errs, validateOverride(path+".ux_focus_override", it.UXFocusOverride)...)
	errs = append(errs, validateOverride(path+".content_focus_override", it.ContentFocusOverride)...)
	return errs
}

// ValidateScores rejects factor names the role does not define and scores
// that are not integers in [1,5]. The estimation kernel would skip such
// entries; at an input boundary they are reported instead.
func ValidateScores(path string, role domain.Role, scores map[string]float64) []error {
	known := make(map[string]bool)
	for _, d := range estimation.DefaultFactors(role) {
		known[d.Name] = true
	}
	var errs []error
	for _, name := range domain.FactorScores(scores).Names() {
		if !known[name] {
			errs = append(errs, fmt.Errorf("%s: unknown %s factor %q", path, role, name))
			continue
		}
		if !domain.ValidScore(scores[name]) {
			errs = append(errs, fmt.Errorf("%s.%s: score must be an integer from 1 to 5 (got %v)", path, name, scores[name]))
		}
	}
	return errs
}

func validateOverride(path string, v *float64) []error {
	if v == nil {
		return nil
	}
	if !domain.ValidFocusOverride(*v) {
		return []error{fmt.Errorf("%s must be between 0 and %v weeks", path, domain.MaxFocusWeeks)}
	}
	return nil
}
