package posterior

import (
	"math"

	"github.com/pkg/errors"

	"github.com/CraigKelly/gridpost/grid"
)

// CompareSuite represents the distance measures we use to judge how far
// apart two posterior PDFs on a shared grid are. Hellinger and JS are proper
// (bounded) divergences; the abs-diff measures are pointwise density
// comparisons, handy for a quick look at where two posteriors disagree.
type CompareSuite struct {
	Hellinger   float64
	JSDiverge   float64
	MaxAbsDiff  float64
	MeanAbsDiff float64
}

// NewCompareSuite returns a CompareSuite with all calculated distance
// measures. The two PDFs must be sampled on identical grids.
func NewCompareSuite(p1 *PDF, p2 *PDF) (*CompareSuite, error) {
	if err := checkSameGrid(p1, p2); err != nil {
		return nil, err
	}

	cs := &CompareSuite{
		Hellinger:   HellingerDist(p1, p2),
		JSDiverge:   JSDivergence(p1, p2),
		MaxAbsDiff:  MaxAbsDiff(p1, p2),
		MeanAbsDiff: MeanAbsDiff(p1, p2),
	}

	return cs, nil
}

func checkSameGrid(p1 *PDF, p2 *PDF) error {
	if p1 == nil || p2 == nil {
		return errors.Errorf("cannot compare nil PDFs")
	}
	if p1.Len() != p2.Len() {
		return errors.Errorf("grid length mismatch %d != %d", p1.Len(), p2.Len())
	}
	if p1.grid != p2.grid {
		for i := 0; i < p1.Len(); i++ {
			if p1.grid.At(i) != p2.grid.At(i) {
				return errors.Errorf("grids differ at point %d: %v != %v", i, p1.grid.At(i), p2.grid.At(i))
			}
		}
	}
	return nil
}

// MaxAbsDiff returns the maximum pointwise difference between the two PDFs.
func MaxAbsDiff(p1 *PDF, p2 *PDF) float64 {
	maxErr := float64(0.0)
	for i := 0; i < p1.Len(); i++ {
		err := math.Abs(p1.At(i) - p2.At(i))
		if i == 0 || err > maxErr {
			maxErr = err
		}
	}
	return maxErr
}

// MeanAbsDiff returns the mean pointwise difference between the two PDFs.
func MeanAbsDiff(p1 *PDF, p2 *PDF) float64 {
	if p1.Len() < 1 {
		return 0
	}

	errSum := float64(0.0)
	for i := 0; i < p1.Len(); i++ {
		errSum += math.Abs(p1.At(i) - p2.At(i))
	}
	return errSum / float64(p1.Len())
}

// HellingerDist returns the Hellinger distance between the two PDFs,
// sqrt(1 - BC) for the Bhattacharyya coefficient BC = integral sqrt(p*q).
// Ranges from 0 (identical) to 1 (disjoint support).
func HellingerDist(p1 *PDF, p2 *PDF) float64 {
	w := make([]float64, p1.Len())
	for i := range w {
		w[i] = math.Sqrt(p1.At(i) * p2.At(i))
	}
	bc, _ := p1.grid.Integrate(w) // aligned by construction

	// Quadrature noise can push BC a hair past 1
	if bc > 1.0 {
		bc = 1.0
	}
	return math.Sqrt(1.0 - bc)
}

// klDivergence returns the Kullback-Leibler divergence, which is
// non-symmetric! This is strictly a subroutine for JS Divergence: no error
// checking, densities assumed normalized over the grid.
// klDivergence(P, Q) <==> D_{KL}(P || Q)
func klDivergence(g *grid.Grid, d1 []float64, d2 []float64) float64 {
	const eps = 1e-12

	w := make([]float64, len(d1))
	for i, p := range d1 {
		if p < eps {
			continue // lim p->0 of p*log(p/q) is 0
		}
		q := d2[i]
		if q < eps {
			q = eps
		}
		w[i] = p * math.Log2(p/q)
	}

	kl, _ := g.Integrate(w)
	return kl
}

// JSDivergence returns the Jensen-Shannon divergence, a symmetric
// generalization of the KL divergence, in bits. Ranges from 0 to 1.
func JSDivergence(p1 *PDF, p2 *PDF) float64 {
	mid := make([]float64, p1.Len())
	for i := range mid {
		mid[i] = (p1.At(i) + p2.At(i)) * 0.5
	}

	return 0.5 * (klDivergence(p1.grid, p1.density, mid) + klDivergence(p2.grid, p2.density, mid))
}
