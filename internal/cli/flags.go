package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/capplan/internal/domain"
)

// scoresFlag collects repeated --score factor=value pairs.
type scoresFlag struct {
	scores domain.FactorScores
}

var _ pflag.Value = (*scoresFlag)(nil)

func (f *scoresFlag) String() string {
	if len(f.scores) == 0 {
		return ""
	}
	parts := make([]string, 0, len(f.scores))
	for _, name := range f.scores.Names() {
		parts = append(parts, name+"="+strconv.FormatFloat(f.scores[name], 'f', -1, 64))
	}
	return strings.Join(parts, ",")
}

// Set accepts "factor=value", optionally several separated by commas.
func (f *scoresFlag) Set(raw string) error {
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("expected factor=value, got %q", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("score for %s: %w", name, err)
		}
		if f.scores == nil {
			f.scores = domain.FactorScores{}
		}
		f.scores[strings.TrimSpace(name)] = v
	}
	return nil
}

func (f *scoresFlag) Type() string {
	return "factor=score"
}

// optionalFloat reports the value of a float flag only when it was set.
func optionalFloat(flags *pflag.FlagSet, name string) (*float64, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetFloat64(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}

func optionalInt(flags *pflag.FlagSet, name string) *int {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetInt(name)
	return &v
}
