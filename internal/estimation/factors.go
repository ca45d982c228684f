package estimation

import "github.com/alexanderramin/capplan/internal/domain"

// FactorDefinition describes one complexity factor and its weight in the
// role's aggregate score.
type FactorDefinition struct {
	Name        string
	Weight      float64
	Label       string
	Description string
}

func defaultUXFactors() []FactorDefinition {
	return []FactorDefinition{
		{
			Name:        "productRisk",
			Weight:      1.2,
			Label:       "Product risk",
			Description: "How costly a wrong design decision would be for users or the business.",
		},
		{
			Name:        "problemAmbiguity",
			Weight:      1.0,
			Label:       "Problem ambiguity",
			Description: "How well understood the problem and its success criteria are.",
		},
		{
			Name:        "discoveryDepth",
			Weight:      0.9,
			Label:       "Discovery depth",
			Description: "How much research and exploration is needed before committing to a direction.",
		},
	}
}

func defaultContentFactors() []FactorDefinition {
	return []FactorDefinition{
		{
			Name:        "contentSurfaceArea",
			Weight:      1.3,
			Label:       "Content surface area",
			Description: "How many screens, messages and states need words.",
		},
		{
			Name:        "localizationScope",
			Weight:      1.0,
			Label:       "Localization scope",
			Description: "How many locales and markets the content ships to.",
		},
		{
			Name:        "regulatoryReview",
			Weight:      1.1,
			Label:       "Regulatory review",
			Description: "How much legal, compliance or policy review the content needs.",
		},
	}
}

// DefaultFactors returns a fresh copy of the built-in factor table for role.
func DefaultFactors(role domain.Role) []FactorDefinition {
	if role == domain.RoleContent {
		return defaultContentFactors()
	}
	return defaultUXFactors()
}

func findFactor(defs []FactorDefinition, name string) int {
	for i, d := range defs {
		if d.Name == name {
			return i
		}
	}
	return -1
}

func cloneFactors(defs []FactorDefinition) []FactorDefinition {
	out := make([]FactorDefinition, len(defs))
	copy(out, defs)
	return out
}
