package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/capplan/internal/cli/formatter"
	"github.com/alexanderramin/capplan/internal/domain"
)

// capplanHuhTheme returns a huh theme matching the CLI palette.
func capplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

const skipScore = ""

func scoreOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("skip", skipScore)}
	for v := 1; v <= 5; v++ {
		s := strconv.Itoa(v)
		opts = append(opts, huh.NewOption(s, s))
	}
	return opts
}

// promptScores asks for a 1-5 score per factor of the role. Factors left on
// "skip" are omitted from the result. current pre-selects existing scores.
func promptScores(ctx context.Context, app *App, role domain.Role, current domain.FactorScores) (domain.FactorScores, error) {
	model, _, err := app.Settings.Model(ctx)
	if err != nil {
		return nil, err
	}

	defs := model.Factors(role)
	values := make([]string, len(defs))
	fields := make([]huh.Field, 0, len(defs))
	for i, def := range defs {
		if v, ok := current[def.Name]; ok && domain.ValidScore(v) {
			values[i] = strconv.Itoa(int(v))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title(fmt.Sprintf("%s (weight %s)", def.Label, formatter.FormatNumber(def.Weight))).
			Description(def.Description).
			Options(scoreOptions()...).
			Value(&values[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(capplanHuhTheme()).
		WithShowHelp(false)
	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	scores := domain.FactorScores{}
	for i, def := range defs {
		if values[i] == skipScore {
			continue
		}
		v, err := strconv.Atoi(values[i])
		if err != nil {
			return nil, fmt.Errorf("score for %s: %w", def.Name, err)
		}
		scores[def.Name] = float64(v)
	}
	return scores, nil
}
