package estimation

import (
	"fmt"
	"math"

	"github.com/alexanderramin/capplan/internal/domain"
)

// Thresholds are the inclusive upper bounds of each size band. A score s
// belongs to the first band whose bound satisfies s <= bound; anything above
// L is XL. XL is the top of the scale and only validated.
type Thresholds struct {
	XS float64
	S  float64
	M  float64
	L  float64
	XL float64
}

// DefaultThresholds: (-inf,1.5]→XS, (1.5,2.5]→S, (2.5,3.5]→M, (3.5,4.5]→L, (4.5,+inf)→XL.
func DefaultThresholds() Thresholds {
	return Thresholds{XS: 1.5, S: 2.5, M: 3.5, L: 4.5, XL: 5}
}

// Band maps a score to its size band. NaN maps to XS, the same as an
// aggregate with no valid factors.
func (t Thresholds) Band(score float64) domain.SizeBand {
	switch {
	case math.IsNaN(score), score <= t.XS:
		return domain.BandXS
	case score <= t.S:
		return domain.BandS
	case score <= t.M:
		return domain.BandM
	case score <= t.L:
		return domain.BandL
	default:
		return domain.BandXL
	}
}

// Validate requires strictly ascending bounds with XL at or above L.
func (t Thresholds) Validate() error {
	bounds := []float64{t.XS, t.S, t.M, t.L}
	for i, b := range bounds {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("size band bound %d is not finite", i)
		}
		if i > 0 && !(b > bounds[i-1]) {
			return fmt.Errorf("size band bounds must be strictly ascending (%v <= %v)", b, bounds[i-1])
		}
	}
	if !(t.XL >= t.L) {
		return fmt.Errorf("xl bound %v must be >= l bound %v", t.XL, t.L)
	}
	return nil
}

// MapScoreToBand uses the default thresholds.
func MapScoreToBand(score float64) domain.SizeBand {
	return DefaultThresholds().Band(score)
}
