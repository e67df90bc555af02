package dist

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidParameter indicates a parameter value outside a distribution's
// support (negative rate, non-positive scale, etc). Use errors.Cause to test
// for it on a wrapped error.
var ErrInvalidParameter = errors.New("parameter outside distribution support")

// CountData is a set of event-count observations with per-observation
// exposures (observation times). Immutable once constructed: every likelihood
// evaluation over the same CountData sees the same data.
type CountData struct {
	counts    []int
	exposures []float64
}

// NewCountData validates and copies the observations. Counts must be
// non-negative and every exposure strictly positive and finite.
func NewCountData(counts []int, exposures []float64) (*CountData, error) {
	if len(counts) < 1 {
		return nil, errors.Errorf("CountData needs at least one observation")
	}
	if len(counts) != len(exposures) {
		return nil, errors.Errorf("CountData count/exposure mismatch %d != %d", len(counts), len(exposures))
	}

	for i, n := range counts {
		if n < 0 {
			return nil, errors.Wrapf(ErrInvalidParameter, "count %d is negative (%d)", i, n)
		}
	}
	for i, t := range exposures {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return nil, errors.Wrapf(ErrInvalidParameter, "exposure %d must be positive and finite (%v)", i, t)
		}
	}

	d := &CountData{
		counts:    make([]int, len(counts)),
		exposures: make([]float64, len(exposures)),
	}
	copy(d.counts, counts)
	copy(d.exposures, exposures)

	return d, nil
}

// Len returns the number of observations.
func (d *CountData) Len() int {
	return len(d.counts)
}

// Count returns the i'th observed count.
func (d *CountData) Count(i int) int {
	return d.counts[i]
}

// Exposure returns the i'th exposure.
func (d *CountData) Exposure(i int) float64 {
	return d.exposures[i]
}

// SampleData is a set of continuous scalar observations for the location
// families. Immutable once constructed.
type SampleData struct {
	obs []float64
}

// NewSampleData validates and copies the observations, which must all be
// finite.
func NewSampleData(obs []float64) (*SampleData, error) {
	if len(obs) < 1 {
		return nil, errors.Errorf("SampleData needs at least one observation")
	}
	for i, x := range obs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, errors.Errorf("observation %d is not finite (%v)", i, x)
		}
	}

	d := &SampleData{obs: make([]float64, len(obs))}
	copy(d.obs, obs)

	return d, nil
}

// Len returns the number of observations.
func (d *SampleData) Len() int {
	return len(d.obs)
}

// Obs returns the i'th observation.
func (d *SampleData) Obs(i int) float64 {
	return d.obs[i]
}

// Min returns the smallest observation.
func (d *SampleData) Min() float64 {
	m := d.obs[0]
	for _, x := range d.obs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest observation.
func (d *SampleData) Max() float64 {
	m := d.obs[0]
	for _, x := range d.obs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Mean returns the sample mean.
func (d *SampleData) Mean() float64 {
	var sum float64
	for _, x := range d.obs {
		sum += x
	}
	return sum / float64(len(d.obs))
}
