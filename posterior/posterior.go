package posterior

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/CraigKelly/gridpost/grid"
)

var (
	// ErrNonIntegrable indicates the prior-likelihood product has a zero,
	// negative, or non-finite normalizing constant. The usual cause is a
	// grid that does not bracket the likely parameter values: the caller
	// must widen or re-center the grid and try again.
	ErrNonIntegrable = errors.New("density is not integrable over the grid")

	// ErrNormalization indicates a supposedly normalized PDF whose
	// trapezoidal integral deviates from 1 beyond tolerance: either a
	// normalizer bug or a degenerate grid.
	ErrNormalization = errors.New("density does not integrate to one")
)

// PDF is a posterior density sampled on a Grid and normalized so its
// trapezoidal integral over the grid is 1. Never mutated after creation.
type PDF struct {
	grid    *grid.Grid
	density []float64
}

// Normalize combines a prior and a likelihood density vector (both aligned
// to g) into a normalized posterior PDF: elementwise product, trapezoidal
// normalizing constant, divide through. Pure and deterministic - the same
// inputs always produce bit-identical output.
func Normalize(g *grid.Grid, prior []float64, like []float64) (*PDF, error) {
	if g == nil {
		return nil, errors.Errorf("no grid to normalize over")
	}
	if len(prior) != g.Len() {
		return nil, errors.Errorf("prior vector length %d does not match grid length %d", len(prior), g.Len())
	}
	if len(like) != g.Len() {
		return nil, errors.Errorf("likelihood vector length %d does not match grid length %d", len(like), g.Len())
	}

	for i, p := range prior {
		if math.IsNaN(p) || p < 0 {
			return nil, errors.Wrapf(ErrNonIntegrable, "prior density at grid point %d is %v", i, p)
		}
		if l := like[i]; math.IsNaN(l) || l < 0 {
			return nil, errors.Wrapf(ErrNonIntegrable, "likelihood density at grid point %d is %v", i, l)
		}
	}

	post := make([]float64, g.Len())
	copy(post, prior)
	floats.Mul(post, like)

	z, err := g.Integrate(post)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute normalizing constant")
	}
	if math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		return nil, errors.Wrapf(ErrNonIntegrable, "normalizing constant Z=%v - widen or re-center the grid", z)
	}

	floats.Scale(1.0/z, post)

	return &PDF{grid: g, density: post}, nil
}

// Grid returns the grid this PDF is sampled on.
func (p *PDF) Grid() *grid.Grid {
	return p.grid
}

// Len returns the number of grid points.
func (p *PDF) Len() int {
	return len(p.density)
}

// At returns the normalized density at grid point i.
func (p *PDF) At(i int) float64 {
	return p.density[i]
}

// Density returns a copy of the normalized density vector.
func (p *PDF) Density() []float64 {
	d := make([]float64, len(p.density))
	copy(d, p.density)
	return d
}

// Mode returns the grid point with the highest posterior density.
func (p *PDF) Mode() float64 {
	return p.grid.At(floats.MaxIdx(p.density))
}

// Mean returns the posterior mean via quadrature of theta*pdf(theta).
func (p *PDF) Mean() float64 {
	w := make([]float64, len(p.density))
	for i, d := range p.density {
		w[i] = p.grid.At(i) * d
	}
	m, _ := p.grid.Integrate(w) // aligned by construction
	return m
}

// Variance returns the posterior variance via quadrature of
// (theta-mean)^2*pdf(theta).
func (p *PDF) Variance() float64 {
	mean := p.Mean()
	w := make([]float64, len(p.density))
	for i, d := range p.density {
		diff := p.grid.At(i) - mean
		w[i] = diff * diff * d
	}
	v, _ := p.grid.Integrate(w) // aligned by construction
	return v
}

// StdDev returns the posterior standard deviation.
func (p *PDF) StdDev() float64 {
	return math.Sqrt(p.Variance())
}

// Quantile returns the parameter value q of the posterior mass lies below,
// by inverting the cumulative trapezoidal integral with linear interpolation
// inside the bracketing cell.
func (p *PDF) Quantile(q float64) (float64, error) {
	if q <= 0 || q >= 1 {
		return 0, errors.Errorf("quantile %v must be in (0, 1)", q)
	}

	var cum float64
	for i := 1; i < len(p.density); i++ {
		step := (p.grid.At(i) - p.grid.At(i-1)) * (p.density[i] + p.density[i-1]) * 0.5
		if cum+step >= q {
			if step <= 0 {
				return p.grid.At(i - 1), nil
			}
			frac := (q - cum) / step
			return p.grid.At(i-1) + frac*(p.grid.At(i)-p.grid.At(i-1)), nil
		}
		cum += step
	}

	// Rounding can leave the last sliver short of q
	return p.grid.At(p.Len() - 1), nil
}

// Validate recomputes the trapezoidal integral of a density vector over g
// and returns ErrNormalization if it deviates from 1 beyond the relative
// tolerance. This is the engine's primary correctness oracle: run it after
// every posterior computation.
func Validate(g *grid.Grid, density []float64, relTol float64) error {
	if g == nil {
		return errors.Errorf("no grid to validate over")
	}
	if relTol <= 0 {
		return errors.Errorf("relative tolerance %v must be > 0", relTol)
	}

	z, err := g.Integrate(density)
	if err != nil {
		return errors.Wrap(err, "could not integrate density")
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return errors.Wrapf(ErrNormalization, "integral is %v", z)
	}
	if math.Abs(z-1.0) > relTol {
		return errors.Wrapf(ErrNormalization, "integral %v deviates from 1 beyond relative tolerance %v", z, relTol)
	}

	return nil
}

// Validate checks the PDF's own normalization against the given relative
// tolerance.
func (p *PDF) Validate(relTol float64) error {
	return Validate(p.grid, p.density, relTol)
}
