package domain

import (
	"sort"
	"time"
)

// DefaultSettingsID is the single settings record per deployment.
const DefaultSettingsID = "default"

// Settings holds per-deployment overrides keyed by dotted names such as
// "effort_model.ux.productRisk" or "time_model.focusTimeRatio".
type Settings struct {
	ID        string
	Values    map[string]float64
	UpdatedAt time.Time
}

// NewSettings returns an empty default settings record.
func NewSettings() *Settings {
	return &Settings{ID: DefaultSettingsID, Values: map[string]float64{}}
}

func (s *Settings) Get(key string) (float64, bool) {
	if s == nil || s.Values == nil {
		return 0, false
	}
	v, ok := s.Values[key]
	return v, ok
}

func (s *Settings) Set(key string, v float64) {
	if s.Values == nil {
		s.Values = map[string]float64{}
	}
	s.Values[key] = v
}

func (s *Settings) Unset(key string) bool {
	if _, ok := s.Values[key]; !ok {
		return false
	}
	delete(s.Values, key)
	return true
}

// Keys returns the stored keys in sorted order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.Values))
	for k := range s.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
