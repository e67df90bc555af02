// Package shrinkage shapes paired naive/Bayesian point estimates for display
// on two parallel axes, the usual way to show posterior estimates pulling
// noisy per-entity estimates toward the population mean.
package shrinkage

import (
	"math"

	"github.com/pkg/errors"
)

// Point is one entity's pair of estimates. Truth is the simulated latent
// value when the data came from a simulation (NaN when unknown). Valid is
// false when the naive estimate is missing or non-finite; such entities stay
// in the collection but are excluded from the paired display.
type Point struct {
	Truth float64
	Naive float64
	Bayes float64
	Valid bool
}

// Summarize pairs each entity's naive estimate with its Bayesian posterior
// estimate. truth may be nil. A non-finite naive estimate (e.g. a count
// divided by a zero exposure) flags that entity invalid rather than failing
// the whole batch. A non-finite Bayes estimate is a real error: those come
// from the inference engine and should never be missing.
func Summarize(naive []float64, bayes []float64, truth []float64) ([]Point, error) {
	if len(naive) < 1 {
		return nil, errors.Errorf("no estimates to summarize")
	}
	if len(naive) != len(bayes) {
		return nil, errors.Errorf("estimate count mismatch: %d naive != %d bayes", len(naive), len(bayes))
	}
	if truth != nil && len(truth) != len(naive) {
		return nil, errors.Errorf("true value count mismatch: %d != %d", len(truth), len(naive))
	}

	pts := make([]Point, len(naive))
	for i := range naive {
		b := bayes[i]
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, errors.Errorf("Bayes estimate %d is not finite (%v)", i, b)
		}

		pts[i] = Point{
			Truth: math.NaN(),
			Naive: naive[i],
			Bayes: b,
			Valid: !math.IsNaN(naive[i]) && !math.IsInf(naive[i], 0),
		}
		if truth != nil {
			pts[i].Truth = truth[i]
		}
	}

	return pts, nil
}

// Paired returns only the valid points, the ones a parallel-axes display
// can actually connect.
func Paired(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if p.Valid {
			out = append(out, p)
		}
	}
	return out
}
