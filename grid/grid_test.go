package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLinear(t *testing.T) {
	assert := assert.New(t)

	g, err := NewLinear(0.0, 20.0, 201)
	assert.NoError(err)
	assert.Equal(201, g.Len())
	assert.Equal(0.0, g.At(0))
	assert.Equal(20.0, g.At(200))

	lo, hi := g.Bounds()
	assert.Equal(0.0, lo)
	assert.Equal(20.0, hi)

	// Even spacing
	const eps = 1e-12
	for i := 1; i < g.Len(); i++ {
		assert.InDelta(0.1, g.At(i)-g.At(i-1), eps)
	}

	assert.NoError(g.Check())
}

func TestNewLinearErrors(t *testing.T) {
	assert := assert.New(t)

	var err error

	_, err = NewLinear(0.0, 1.0, 1)
	assert.Error(err)

	_, err = NewLinear(1.0, 1.0, 10)
	assert.Error(err)

	_, err = NewLinear(2.0, 1.0, 10)
	assert.Error(err)

	_, err = NewLinear(math.NaN(), 1.0, 10)
	assert.Error(err)

	_, err = NewLinear(0.0, math.Inf(1), 10)
	assert.Error(err)
}

func TestNewFromPoints(t *testing.T) {
	assert := assert.New(t)

	// Uneven spacing is fine as long as it is strictly increasing
	src := []float64{0.0, 0.5, 0.75, 2.0}
	g, err := New(src)
	assert.NoError(err)
	assert.Equal(4, g.Len())

	// Grid must be independent of the caller's slice
	src[0] = 99.0
	assert.Equal(0.0, g.At(0))

	pts := g.Points()
	pts[1] = -1.0
	assert.Equal(0.5, g.At(1))

	_, err = New([]float64{1.0})
	assert.Error(err)

	_, err = New([]float64{0.0, 1.0, 1.0})
	assert.Error(err)

	_, err = New([]float64{0.0, 2.0, 1.0})
	assert.Error(err)

	_, err = New([]float64{0.0, math.NaN(), 1.0})
	assert.Error(err)
}

func TestIntegrate(t *testing.T) {
	assert := assert.New(t)

	g, err := NewLinear(0.0, 1.0, 101)
	assert.NoError(err)

	// Constant function integrates exactly
	ones := make([]float64, g.Len())
	for i := range ones {
		ones[i] = 1.0
	}
	z, err := g.Integrate(ones)
	assert.NoError(err)
	assert.InEpsilon(1.0, z, 1e-12)

	// Trapezoid is exact for linear functions, even on uneven grids
	ug, err := New([]float64{0.0, 0.25, 0.3, 0.8, 1.0})
	assert.NoError(err)
	f := make([]float64, ug.Len())
	for i := range f {
		f[i] = 3.0*ug.At(i) + 2.0
	}
	z, err = ug.Integrate(f)
	assert.NoError(err)
	assert.InEpsilon(3.5, z, 1e-12)

	// Misaligned vector
	_, err = g.Integrate([]float64{1.0, 2.0})
	assert.Error(err)
}
