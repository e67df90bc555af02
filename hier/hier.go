// Package hier simulates a gamma-Poisson multilevel model: every entity in a
// population has a latent event rate drawn from a shared Gamma prior, and we
// observe a Poisson count for each over some exposure. With a Gamma prior the
// per-entity posterior is conjugate, so the Bayesian point estimates come in
// closed form and feed the shrinkage display directly.
package hier

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/CraigKelly/gridpost/shrinkage"
)

// Population is the shared Gamma(Alpha, Beta) prior over per-entity rates
// (shape/rate parameterization). Prior mean is Alpha/Beta.
type Population struct {
	Alpha float64
	Beta  float64
}

// NewPopulation validates the prior hyperparameters.
func NewPopulation(alpha float64, beta float64) (*Population, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return nil, errors.Errorf("population shape %v must be > 0 and finite", alpha)
	}
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta <= 0 {
		return nil, errors.Errorf("population rate %v must be > 0 and finite", beta)
	}
	return &Population{Alpha: alpha, Beta: beta}, nil
}

// PriorMean returns the population mean rate Alpha/Beta.
func (p *Population) PriorMean() float64 {
	return p.Alpha / p.Beta
}

// PosteriorMean returns the conjugate posterior mean rate for one entity
// with count n over exposure t: (Alpha+n)/(Beta+t). This is a weighted
// average of the prior mean and the naive estimate n/t, which is exactly
// what pulls noisy estimates toward the population mean.
func (p *Population) PosteriorMean(n int, t float64) float64 {
	return (p.Alpha + float64(n)) / (p.Beta + t)
}

// Sample is one simulated draw of a population: latent rates, the exposures
// used, and the observed counts. All three slices are aligned per entity.
type Sample struct {
	Rates     []float64
	Exposures []float64
	Counts    []int
}

// Simulate draws one latent rate per entity from the population prior and
// then a Poisson count over that entity's exposure. Exposures must be
// non-negative; a zero exposure means the entity was never observed (count
// 0, naive estimate undefined), which the shrinkage summarizer tolerates.
func (p *Population) Simulate(exposures []float64, src rand.Source) (*Sample, error) {
	if len(exposures) < 1 {
		return nil, errors.Errorf("no entities to simulate")
	}
	if src == nil {
		return nil, errors.Errorf("no random source for simulation")
	}
	for i, t := range exposures {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return nil, errors.Errorf("exposure %d must be >= 0 and finite (%v)", i, t)
		}
	}

	gam := distuv.Gamma{Alpha: p.Alpha, Beta: p.Beta, Src: src}

	s := &Sample{
		Rates:     make([]float64, len(exposures)),
		Exposures: make([]float64, len(exposures)),
		Counts:    make([]int, len(exposures)),
	}
	copy(s.Exposures, exposures)

	for i, t := range s.Exposures {
		rate := gam.Rand()
		s.Rates[i] = rate

		lam := rate * t
		if lam > 0 {
			pois := distuv.Poisson{Lambda: lam, Src: src}
			s.Counts[i] = int(pois.Rand())
		}
	}

	return s, nil
}

// NaiveRates returns the per-entity point estimates n/t. Entities with zero
// exposure get NaN: there is no data to estimate from.
func (s *Sample) NaiveRates() []float64 {
	out := make([]float64, len(s.Counts))
	for i, n := range s.Counts {
		if s.Exposures[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(n) / s.Exposures[i]
	}
	return out
}

// PosteriorMeans returns the per-entity conjugate posterior mean rates under
// the population prior.
func (p *Population) PosteriorMeans(s *Sample) []float64 {
	out := make([]float64, len(s.Counts))
	for i, n := range s.Counts {
		out[i] = p.PosteriorMean(n, s.Exposures[i])
	}
	return out
}

// ShrinkagePoints pairs every entity's naive and posterior-mean estimates
// (with the simulated latent rate as truth) for the shrinkage display.
func (p *Population) ShrinkagePoints(s *Sample) ([]shrinkage.Point, error) {
	pts, err := shrinkage.Summarize(s.NaiveRates(), p.PosteriorMeans(s), s.Rates)
	if err != nil {
		return nil, errors.Wrap(err, "could not summarize simulated population")
	}
	return pts, nil
}
