package dist

import (
	"math"

	"github.com/pkg/errors"
)

// A Likelihood evaluates the joint log-likelihood of a fixed dataset at a
// candidate parameter value. Implementations drop additive terms that do not
// depend on the parameter (factorials, normalizing constants): those cancel
// once the posterior is normalized, so computing them is wasted work.
type Likelihood interface {
	// LogLike returns the (unnormalized) joint log-likelihood at theta.
	// May return -Inf when the data are impossible at theta.
	LogLike(theta float64) float64

	// Support returns an error if theta is outside the parameter's support.
	Support(theta float64) error
}

// PoissonRate is the likelihood of a common event rate r given counts n_i
// observed over exposures T_i: proportional to prod (r*T_i)^n_i * exp(-r*T_i).
type PoissonRate struct {
	data *CountData
}

// NewPoissonRate returns the Poisson rate likelihood for the given counts.
func NewPoissonRate(d *CountData) (*PoissonRate, error) {
	if d == nil {
		return nil, errors.Errorf("PoissonRate needs count data")
	}
	return &PoissonRate{data: d}, nil
}

// Support requires a non-negative, finite rate.
func (p *PoissonRate) Support(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return errors.Wrapf(ErrInvalidParameter, "Poisson rate %v must be >= 0 and finite", r)
	}
	return nil
}

// LogLike returns sum_i [n_i*log(r*T_i) - r*T_i]. The rate r=0 is on the
// boundary of the support: any positive count makes the data impossible
// there, so we return -Inf rather than let 0*log(0) produce a NaN.
func (p *PoissonRate) LogLike(r float64) float64 {
	var ll float64
	for i := 0; i < p.data.Len(); i++ {
		lam := r * p.data.Exposure(i)
		n := float64(p.data.Count(i))
		if lam == 0 {
			if n > 0 {
				return math.Inf(-1)
			}
			continue
		}
		ll += n*math.Log(lam) - lam
	}
	return ll
}

// NormalLocation is the likelihood of a location mu given observations with a
// known standard deviation: proportional to exp(-0.5 * sum (x_i-mu)^2 / sigma^2).
type NormalLocation struct {
	data  *SampleData
	sigma float64
}

// NewNormalLocation returns the Normal location likelihood with known sigma.
func NewNormalLocation(d *SampleData, sigma float64) (*NormalLocation, error) {
	if d == nil {
		return nil, errors.Errorf("NormalLocation needs sample data")
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "Normal sigma %v must be > 0 and finite", sigma)
	}
	return &NormalLocation{data: d, sigma: sigma}, nil
}

// Support requires a finite location.
func (n *NormalLocation) Support(mu float64) error {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return errors.Wrapf(ErrInvalidParameter, "Normal location %v must be finite", mu)
	}
	return nil
}

// LogLike returns -0.5 * sum (x_i-mu)^2 / sigma^2.
func (n *NormalLocation) LogLike(mu float64) float64 {
	var ss float64
	for i := 0; i < n.data.Len(); i++ {
		d := n.data.Obs(i) - mu
		ss += d * d
	}
	return -0.5 * ss / (n.sigma * n.sigma)
}

// CauchyLocation is the likelihood of a location x0 given observations with a
// known scale gamma: proportional to prod 1 / (1 + ((x0-x_i)/gamma)^2).
type CauchyLocation struct {
	data  *SampleData
	gamma float64
}

// NewCauchyLocation returns the Cauchy location likelihood with known scale.
func NewCauchyLocation(d *SampleData, gamma float64) (*CauchyLocation, error) {
	if d == nil {
		return nil, errors.Errorf("CauchyLocation needs sample data")
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "Cauchy scale %v must be > 0 and finite", gamma)
	}
	return &CauchyLocation{data: d, gamma: gamma}, nil
}

// Support requires a finite location.
func (c *CauchyLocation) Support(x0 float64) error {
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return errors.Wrapf(ErrInvalidParameter, "Cauchy location %v must be finite", x0)
	}
	return nil
}

// LogLike returns -sum log(1 + ((x0-x_i)/gamma)^2).
func (c *CauchyLocation) LogLike(x0 float64) float64 {
	var ll float64
	for i := 0; i < c.data.Len(); i++ {
		z := (x0 - c.data.Obs(i)) / c.gamma
		ll -= math.Log1p(z * z)
	}
	return ll
}

// EvalLikelihood evaluates the likelihood at every value in thetas and
// returns a density vector of matching length. The scalar case is just a
// one-element slice: sequence in, sequence out, no shape branching.
//
// Every theta is checked against the family's support before any evaluation,
// so an invalid grid never reaches a log or divide.
//
// Evaluation happens in log space and the vector is rescaled by its max
// before exponentiating. Long datasets push joint log-likelihoods far below
// the exp underflow threshold; rescaling keeps the vector's shape while only
// changing a constant factor that normalization removes anyway.
func EvalLikelihood(l Likelihood, thetas []float64) ([]float64, error) {
	if l == nil {
		return nil, errors.Errorf("no likelihood to evaluate")
	}
	if len(thetas) < 1 {
		return nil, errors.Errorf("no parameter values to evaluate")
	}

	logs := make([]float64, len(thetas))
	for i, th := range thetas {
		if err := l.Support(th); err != nil {
			return nil, errors.Wrapf(err, "grid point %d", i)
		}
		logs[i] = l.LogLike(th)
	}

	return expRescaled(logs), nil
}

// expRescaled exponentiates log densities after subtracting the max entry.
// If every entry is -Inf the result is all zeros: the normalizer reports
// that case as non-integrable.
func expRescaled(logs []float64) []float64 {
	max := math.Inf(-1)
	for _, v := range logs {
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(logs))
	if math.IsInf(max, -1) {
		return out
	}
	for i, v := range logs {
		out[i] = math.Exp(v - max)
	}
	return out
}
