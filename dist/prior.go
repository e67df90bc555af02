package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Prior evaluates a prior log-density at a candidate parameter value.
// Priors may be improper over the real line but must be bounded on any grid
// they are evaluated over.
type Prior interface {
	LogDensity(theta float64) float64
}

// Flat is a bounded uniform prior over [lo, hi] with density 1/(hi-lo)
// inside the bound and 0 outside.
//
// The bound is part of the model, not of any one dataset: pick it before
// looking at the data and reuse the same bound across repeated inference
// runs. Keeping the grid inside the bound is the caller's job.
type Flat struct {
	lo, hi float64
}

// NewFlat returns a bounded uniform prior over [lo, hi].
func NewFlat(lo float64, hi float64) (*Flat, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "flat prior bound [%v, %v] must be finite", lo, hi)
	}
	if lo >= hi {
		return nil, errors.Wrapf(ErrInvalidParameter, "flat prior bound [%v, %v] is empty", lo, hi)
	}
	return &Flat{lo: lo, hi: hi}, nil
}

// Bounds returns the prior's [lo, hi] bound.
func (f *Flat) Bounds() (float64, float64) {
	return f.lo, f.hi
}

// LogDensity returns -log(hi-lo) inside the bound and -Inf outside.
func (f *Flat) LogDensity(theta float64) float64 {
	if theta < f.lo || theta > f.hi {
		return math.Inf(-1)
	}
	return -math.Log(f.hi - f.lo)
}

// GammaPrior is a Gamma(alpha, beta) prior (shape/rate parameterization),
// the conjugate prior for a Poisson rate.
type GammaPrior struct {
	dist distuv.Gamma
}

// NewGammaPrior returns a Gamma prior with the given shape and rate.
func NewGammaPrior(alpha float64, beta float64) (*GammaPrior, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "gamma shape %v must be > 0 and finite", alpha)
	}
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "gamma rate %v must be > 0 and finite", beta)
	}
	return &GammaPrior{dist: distuv.Gamma{Alpha: alpha, Beta: beta}}, nil
}

// LogDensity evaluates the closed-form Gamma log-PDF. Values at or below
// zero are outside the support.
func (g *GammaPrior) LogDensity(theta float64) float64 {
	if theta <= 0 {
		return math.Inf(-1)
	}
	return g.dist.LogProb(theta)
}

// ExpPrior is an Exponential(rate) prior for non-negative scale-like
// parameters.
type ExpPrior struct {
	dist distuv.Exponential
}

// NewExpPrior returns an Exponential prior with the given rate.
func NewExpPrior(rate float64) (*ExpPrior, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "exponential rate %v must be > 0 and finite", rate)
	}
	return &ExpPrior{dist: distuv.Exponential{Rate: rate}}, nil
}

// LogDensity evaluates the closed-form Exponential log-PDF.
func (e *ExpPrior) LogDensity(theta float64) float64 {
	if theta < 0 {
		return math.Inf(-1)
	}
	return e.dist.LogProb(theta)
}

// EvalPrior evaluates the prior density at every value in thetas and returns
// a density vector of matching length. Prior densities are tame (no long
// data products), so no log-space rescaling is needed here.
func EvalPrior(p Prior, thetas []float64) ([]float64, error) {
	if p == nil {
		return nil, errors.Errorf("no prior to evaluate")
	}
	if len(thetas) < 1 {
		return nil, errors.Errorf("no parameter values to evaluate")
	}

	out := make([]float64, len(thetas))
	for i, th := range thetas {
		d := math.Exp(p.LogDensity(th))
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, errors.Wrapf(ErrInvalidParameter, "prior density at grid point %d (theta=%v) is %v", i, th, d)
		}
		out[i] = d
	}

	return out, nil
}
