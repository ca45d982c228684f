package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// resolveScenarioID accepts a full ID, a unique ID prefix or an exact
// (case-insensitive) scenario name.
func resolveScenarioID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("scenario is required")
	}

	scenarios, err := app.Scenarios.List(ctx, true)
	if err != nil {
		return "", err
	}

	// 1. Exact ID match
	for _, sc := range scenarios {
		if sc.ID == input {
			return sc.ID, nil
		}
	}

	// 2. Exact name match
	var named []string
	for _, sc := range scenarios {
		if strings.EqualFold(sc.Name, input) {
			named = append(named, sc.ID)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}

	// 3. ID prefix match
	var matches []string
	for _, sc := range scenarios {
		if strings.HasPrefix(sc.ID, input) {
			matches = append(matches, sc.ID)
		}
	}

	switch len(matches) {
	case 0:
		if len(named) > 1 {
			return "", fmt.Errorf("scenario name %q is ambiguous (%d matches); use the ID", input, len(named))
		}
		return "", fmt.Errorf("scenario not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("scenario ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveItemID resolves an item reference, which can be:
//   - a short key "#3" or "3" (requires a scenario)
//   - an item ID (passed through directly)
func resolveItemID(ctx context.Context, app *App, input, scenarioRef string) (string, error) {
	key := strings.TrimPrefix(strings.TrimSpace(input), "#")
	seq, err := strconv.Atoi(key)
	if err != nil || seq <= 0 {
		return input, nil
	}
	if scenarioRef == "" {
		return "", fmt.Errorf("item #%d requires a scenario (use --scenario)", seq)
	}
	scenarioID, err := resolveScenarioID(ctx, app, scenarioRef)
	if err != nil {
		return "", err
	}
	items, err := app.Items.ListByScenario(ctx, scenarioID)
	if err != nil {
		return "", err
	}
	for _, it := range items {
		if it.Seq == seq {
			return it.ID, nil
		}
	}
	return "", fmt.Errorf("item #%d not found in scenario", seq)
}
