package dist

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCountData(t *testing.T) {
	assert := assert.New(t)

	counts := []int{16, 80}
	exposures := []float64{2.0, 10.0}

	d, err := NewCountData(counts, exposures)
	assert.NoError(err)
	assert.Equal(2, d.Len())
	assert.Equal(16, d.Count(0))
	assert.Equal(10.0, d.Exposure(1))

	// Dataset is independent of the caller's slices
	counts[0] = -99
	exposures[1] = 0.0
	assert.Equal(16, d.Count(0))
	assert.Equal(10.0, d.Exposure(1))
}

func TestCountDataErrors(t *testing.T) {
	assert := assert.New(t)

	var err error

	_, err = NewCountData([]int{}, []float64{})
	assert.Error(err)

	_, err = NewCountData([]int{1, 2}, []float64{1.0})
	assert.Error(err)

	_, err = NewCountData([]int{-1}, []float64{1.0})
	assert.Error(err)
	assert.Equal(ErrInvalidParameter, errors.Cause(err))

	_, err = NewCountData([]int{1}, []float64{0.0})
	assert.Error(err)
	assert.Equal(ErrInvalidParameter, errors.Cause(err))

	_, err = NewCountData([]int{1}, []float64{-2.0})
	assert.Error(err)

	_, err = NewCountData([]int{1}, []float64{math.NaN()})
	assert.Error(err)
}

func TestSampleData(t *testing.T) {
	assert := assert.New(t)

	obs := []float64{2.1, 4.8, 5.3, 5.9, 8.0}
	d, err := NewSampleData(obs)
	assert.NoError(err)
	assert.Equal(5, d.Len())
	assert.Equal(2.1, d.Min())
	assert.Equal(8.0, d.Max())
	assert.InDelta(5.22, d.Mean(), 1e-12)

	obs[0] = 1000.0
	assert.Equal(2.1, d.Obs(0))

	_, err = NewSampleData([]float64{})
	assert.Error(err)

	_, err = NewSampleData([]float64{1.0, math.Inf(1)})
	assert.Error(err)

	_, err = NewSampleData([]float64{math.NaN()})
	assert.Error(err)
}
