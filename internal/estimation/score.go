package estimation

import "github.com/alexanderramin/capplan/internal/domain"

// WeightedScore returns the weight-averaged factor score.
//
// Scores for unknown factors, scores outside [1,5] and non-integer scores are
// skipped. When nothing valid remains the total weight is zero and the result
// is 0. Definitions are walked in table order so the result does not depend
// on map iteration order.
func WeightedScore(scores domain.FactorScores, defs []FactorDefinition) float64 {
	var numerator, denominator float64
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true

		s, ok := scores[d.Name]
		if !ok || !domain.ValidScore(s) || !(d.Weight > 0) {
			continue
		}
		numerator += s * d.Weight
		denominator += d.Weight
	}
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// HasValidScore reports whether at least one score would contribute to
// WeightedScore.
func HasValidScore(scores domain.FactorScores, defs []FactorDefinition) bool {
	for _, d := range defs {
		if s, ok := scores[d.Name]; ok && domain.ValidScore(s) && d.Weight > 0 {
			return true
		}
	}
	return false
}
