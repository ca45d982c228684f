package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUtilization renders demand against capacity as a bar like
// [████░░░░]  45%. The bar caps at full width; the percentage does not.
// Green up to 85%, yellow up to 100%, red beyond.
func RenderUtilization(demand, capacity float64, width int) string {
	if width < 2 {
		width = 2
	}
	if capacity <= 0 {
		if demand > 0 {
			return fmt.Sprintf("[%s]  %s", StyleRed.Render(strings.Repeat(filledBlock, width)), "no capacity")
		}
		return fmt.Sprintf("[%s]  %s", StyleDim.Render(strings.Repeat(emptyBlock, width)), "--")
	}

	pct := demand / capacity
	if pct < 0 {
		pct = 0
	}
	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct > 1:
		style = StyleRed
	case pct > 0.85:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %4.0f%%", style.Render(bar), pct*100)
}
