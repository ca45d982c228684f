package estimation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexanderramin/capplan/internal/domain"
)

// Recognized settings keys.
const (
	KeyPrefixUXFactor      = "effort_model.ux."
	KeyPrefixContentFactor = "effort_model.content."
	KeyPMIntakeMultiplier  = "effort_model.pmIntakeMultiplier"
	KeyFocusTimeRatio      = "time_model.focusTimeRatio"
	KeyPrefixSizeBand      = "size_bands."
)

const (
	DefaultPMIntakeMultiplier = 1.0
	MinPMIntakeMultiplier     = 0.5
	MaxPMIntakeMultiplier     = 2.0
)

// EffortResult is the derived estimate for one role of one item.
type EffortResult struct {
	SizeBand      domain.SizeBand `json:"size_band"`
	FocusWeeks    float64         `json:"focus_weeks"`
	WorkWeeks     float64         `json:"work_weeks"`
	WeightedScore float64         `json:"weighted_score"`
}

// EffortModel is the full configuration of the estimation pipeline. It is
// passed by value; nothing in this package keeps a process-wide copy.
type EffortModel struct {
	UXFactors          []FactorDefinition
	ContentFactors     []FactorDefinition
	Thresholds         Thresholds
	UXTimes            TimeTable
	ContentTimes       TimeTable
	FocusTimeRatio     float64
	PMIntakeMultiplier float64
}

// DefaultModel returns the built-in tables.
func DefaultModel() EffortModel {
	return EffortModel{
		UXFactors:          defaultUXFactors(),
		ContentFactors:     defaultContentFactors(),
		Thresholds:         DefaultThresholds(),
		UXTimes:            defaultUXTimes(),
		ContentTimes:       defaultContentTimes(),
		FocusTimeRatio:     DefaultFocusTimeRatio,
		PMIntakeMultiplier: DefaultPMIntakeMultiplier,
	}
}

func (m EffortModel) Factors(role domain.Role) []FactorDefinition {
	if role == domain.RoleContent {
		return m.ContentFactors
	}
	return m.UXFactors
}

func (m EffortModel) Times(role domain.Role) TimeTable {
	if role == domain.RoleContent {
		return m.ContentTimes
	}
	return m.UXTimes
}

// EffectiveFocusTimeRatio is the clamped ratio; zero means unset.
func (m EffortModel) EffectiveFocusTimeRatio() float64 {
	if m.FocusTimeRatio == 0 {
		return DefaultFocusTimeRatio
	}
	return ClampFocusTimeRatio(m.FocusTimeRatio)
}

// EffectivePMIntakeMultiplier is the clamped multiplier; zero means unset.
func (m EffortModel) EffectivePMIntakeMultiplier() float64 {
	if m.PMIntakeMultiplier == 0 || math.IsNaN(m.PMIntakeMultiplier) {
		return DefaultPMIntakeMultiplier
	}
	return math.Min(MaxPMIntakeMultiplier, math.Max(MinPMIntakeMultiplier, m.PMIntakeMultiplier))
}

// Estimate runs score → band → time for one role. With no valid scores the
// weighted score is 0 and the result is the XS row.
func (m EffortModel) Estimate(role domain.Role, scores domain.FactorScores) EffortResult {
	ws := WeightedScore(scores, m.Factors(role))
	band := m.Thresholds.Band(ws)
	te, _ := m.Times(role).Lookup(band, m.EffectiveFocusTimeRatio())
	return EffortResult{
		SizeBand:      band,
		FocusWeeks:    te.FocusWeeks,
		WorkWeeks:     te.WorkWeeks,
		WeightedScore: ws,
	}
}

// Resolve computes an item role's effort, applying a focus-week override and
// the PM intake multiplier. It reports false when the role has neither a
// valid score nor an override, in which case it places no demand on capacity.
func (m EffortModel) Resolve(role domain.Role, scores domain.FactorScores, focusOverride *float64, intake domain.IntakeSource) (EffortResult, bool) {
	scored := HasValidScore(scores, m.Factors(role))
	if !scored && focusOverride == nil {
		return EffortResult{}, false
	}

	var res EffortResult
	if scored {
		res = m.Estimate(role, scores)
	}

	multiplier := 1.0
	if intake == domain.IntakePM {
		multiplier = m.EffectivePMIntakeMultiplier()
	}

	switch {
	case focusOverride != nil:
		res.FocusWeeks = *focusOverride * multiplier
		res.WorkWeeks = DeriveWorkWeeks(res.FocusWeeks, m.EffectiveFocusTimeRatio())
	case multiplier != 1:
		res.FocusWeeks *= multiplier
		res.WorkWeeks = round1(res.WorkWeeks * multiplier)
	}
	return res, true
}

// ValidateSetting checks a single key/value pair against the keys the model
// understands.
func ValidateSetting(key string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: %w: must be finite", key, ErrInvalidSetting)
	}
	switch {
	case strings.HasPrefix(key, KeyPrefixUXFactor):
		return validateFactorSetting(key, strings.TrimPrefix(key, KeyPrefixUXFactor), defaultUXFactors(), value)
	case strings.HasPrefix(key, KeyPrefixContentFactor):
		return validateFactorSetting(key, strings.TrimPrefix(key, KeyPrefixContentFactor), defaultContentFactors(), value)
	case key == KeyPMIntakeMultiplier, key == KeyFocusTimeRatio:
		if value <= 0 {
			return fmt.Errorf("%s: %w: must be > 0", key, ErrInvalidSetting)
		}
		return nil
	case strings.HasPrefix(key, KeyPrefixSizeBand):
		if _, ok := sizeBandKeys[strings.TrimPrefix(key, KeyPrefixSizeBand)]; !ok {
			return fmt.Errorf("%s: %w", key, ErrUnknownSetting)
		}
		return nil
	}
	return fmt.Errorf("%s: %w", key, ErrUnknownSetting)
}

func validateFactorSetting(key, name string, defs []FactorDefinition, value float64) error {
	if findFactor(defs, name) < 0 {
		return fmt.Errorf("%s: %w: no factor named %q", key, ErrUnknownSetting, name)
	}
	if value <= 0 {
		return fmt.Errorf("%s: %w: weight must be > 0", key, ErrInvalidSetting)
	}
	return nil
}

var sizeBandKeys = map[string]func(*Thresholds) *float64{
	"xs": func(t *Thresholds) *float64 { return &t.XS },
	"s":  func(t *Thresholds) *float64 { return &t.S },
	"m":  func(t *Thresholds) *float64 { return &t.M },
	"l":  func(t *Thresholds) *float64 { return &t.L },
	"xl": func(t *Thresholds) *float64 { return &t.XL },
}

// ThresholdsFromSettings overlays any size_bands.* entries on the default
// thresholds and validates the result as a set. It reports false when no
// size-band key is present.
func ThresholdsFromSettings(values map[string]float64) (Thresholds, bool, error) {
	t := DefaultThresholds()
	touched := false
	for key, value := range values {
		if !strings.HasPrefix(key, KeyPrefixSizeBand) {
			continue
		}
		field, ok := sizeBandKeys[strings.TrimPrefix(key, KeyPrefixSizeBand)]
		if !ok {
			continue
		}
		*field(&t) = value
		touched = true
	}
	if !touched {
		return t, false, nil
	}
	if err := t.Validate(); err != nil {
		return DefaultThresholds(), true, fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	return t, true, nil
}

// ModelFromSettings applies stored overrides on top of DefaultModel. Unknown
// or unusable entries are skipped and described in the returned warnings; a
// size-band override that breaks ascending order is dropped as a whole.
func ModelFromSettings(values map[string]float64) (EffortModel, []string) {
	m := DefaultModel()
	m.UXFactors = cloneFactors(m.UXFactors)
	m.ContentFactors = cloneFactors(m.ContentFactors)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var warnings []string
	thresholds := m.Thresholds
	bandsTouched := false

	for _, key := range keys {
		value := values[key]
		if err := ValidateSetting(key, value); err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		switch {
		case strings.HasPrefix(key, KeyPrefixUXFactor):
			i := findFactor(m.UXFactors, strings.TrimPrefix(key, KeyPrefixUXFactor))
			m.UXFactors[i].Weight = value
		case strings.HasPrefix(key, KeyPrefixContentFactor):
			i := findFactor(m.ContentFactors, strings.TrimPrefix(key, KeyPrefixContentFactor))
			m.ContentFactors[i].Weight = value
		case key == KeyPMIntakeMultiplier:
			m.PMIntakeMultiplier = value
			if clamped := m.EffectivePMIntakeMultiplier(); clamped != value {
				warnings = append(warnings, fmt.Sprintf("%s: %v clamped to %v", key, value, clamped))
				m.PMIntakeMultiplier = clamped
			}
		case key == KeyFocusTimeRatio:
			clamped := ClampFocusTimeRatio(value)
			if clamped != value {
				warnings = append(warnings, fmt.Sprintf("%s: %v clamped to %v", key, value, clamped))
			}
			m.FocusTimeRatio = clamped
		case strings.HasPrefix(key, KeyPrefixSizeBand):
			*sizeBandKeys[strings.TrimPrefix(key, KeyPrefixSizeBand)](&thresholds) = value
			bandsTouched = true
		}
	}

	if bandsTouched {
		if err := thresholds.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("size_bands ignored: %v", err))
		} else {
			m.Thresholds = thresholds
		}
	}

	return m, warnings
}
