package contract

import (
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/estimation"
)

type SetSettingRequest struct {
	Value float64 `json:"value"`
}

type FactorView struct {
	Name          string  `json:"name"`
	Label         string  `json:"label"`
	Description   string  `json:"description"`
	Weight        float64 `json:"weight"`
	DefaultWeight float64 `json:"default_weight"`
}

// ModelView is the effective estimation configuration after settings are
// applied.
type ModelView struct {
	UXFactors          []FactorView                                `json:"ux_factors"`
	ContentFactors     []FactorView                                `json:"content_factors"`
	SizeBandBounds     map[domain.SizeBand]float64                 `json:"size_band_bounds"`
	UXTimes            map[domain.SizeBand]estimation.TimeEstimate `json:"ux_times"`
	ContentTimes       map[domain.SizeBand]estimation.TimeEstimate `json:"content_times"`
	FocusTimeRatio     float64                                     `json:"focus_time_ratio"`
	PMIntakeMultiplier float64                                     `json:"pm_intake_multiplier"`
}

func NewModelView(m estimation.EffortModel) ModelView {
	return ModelView{
		UXFactors:      factorViews(m.UXFactors, estimation.DefaultFactors(domain.RoleUX)),
		ContentFactors: factorViews(m.ContentFactors, estimation.DefaultFactors(domain.RoleContent)),
		SizeBandBounds: map[domain.SizeBand]float64{
			domain.BandXS: m.Thresholds.XS,
			domain.BandS:  m.Thresholds.S,
			domain.BandM:  m.Thresholds.M,
			domain.BandL:  m.Thresholds.L,
			domain.BandXL: m.Thresholds.XL,
		},
		UXTimes:            m.UXTimes,
		ContentTimes:       m.ContentTimes,
		FocusTimeRatio:     m.EffectiveFocusTimeRatio(),
		PMIntakeMultiplier: m.EffectivePMIntakeMultiplier(),
	}
}

func factorViews(defs, defaults []estimation.FactorDefinition) []FactorView {
	out := make([]FactorView, 0, len(defs))
	for i, d := range defs {
		v := FactorView{Name: d.Name, Label: d.Label, Description: d.Description, Weight: d.Weight}
		if i < len(defaults) && defaults[i].Name == d.Name {
			v.DefaultWeight = defaults[i].Weight
		}
		out = append(out, v)
	}
	return out
}

type SettingsView struct {
	Values   map[string]float64 `json:"values"`
	Model    ModelView          `json:"model"`
	Warnings []string           `json:"warnings,omitempty"`
}
