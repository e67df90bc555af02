package grid

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/integrate"
)

// Grid is an ordered sequence of candidate parameter values that serves as the
// quadrature nodes for posterior normalization. Points are strictly increasing
// and may be unevenly spaced. A Grid is immutable once constructed.
type Grid struct {
	points []float64
}

// NewLinear returns a Grid of n evenly spaced points covering [lo, hi]
// inclusive. This matches the usual "linspace" construction.
func NewLinear(lo float64, hi float64, n int) (*Grid, error) {
	if n < 2 {
		return nil, errors.Errorf("Grid needs at least 2 points, requested %d", n)
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, errors.Errorf("Grid bounds [%v, %v] must be finite", lo, hi)
	}
	if lo >= hi {
		return nil, errors.Errorf("Grid lower bound %v must be < upper bound %v", lo, hi)
	}

	pts := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = lo + float64(i)*step
	}
	pts[n-1] = hi // avoid FP drift on the final node

	return &Grid{points: pts}, nil
}

// New returns a Grid over a caller-supplied sequence of points. The sequence
// is copied, so the caller's slice stays independent of the Grid.
func New(points []float64) (*Grid, error) {
	pts := make([]float64, len(points))
	copy(pts, points)

	g := &Grid{points: pts}
	if err := g.Check(); err != nil {
		return nil, err
	}

	return g, nil
}

// Check returns an error if any problem is found
func (g *Grid) Check() error {
	if len(g.points) < 2 {
		return errors.Errorf("Grid has %d points but needs at least 2", len(g.points))
	}

	for i, p := range g.points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return errors.Errorf("Grid point %d is not finite (%v)", i, p)
		}
		if i > 0 && p <= g.points[i-1] {
			return errors.Errorf("Grid points must be strictly increasing: point %d (%v) <= point %d (%v)", i, p, i-1, g.points[i-1])
		}
	}

	return nil
}

// Len returns the number of quadrature nodes.
func (g *Grid) Len() int {
	return len(g.points)
}

// At returns the i'th node.
func (g *Grid) At(i int) float64 {
	return g.points[i]
}

// Bounds returns the first and last node.
func (g *Grid) Bounds() (float64, float64) {
	return g.points[0], g.points[len(g.points)-1]
}

// Points returns a copy of the nodes, aligned index-for-index with any
// density vector evaluated on this Grid.
func (g *Grid) Points() []float64 {
	pts := make([]float64, len(g.points))
	copy(pts, g.points)
	return pts
}

// Integrate computes the composite trapezoidal integral of f over the Grid.
// f must be aligned index-for-index with the nodes. The trapezoidal rule is
// all we need at these resolutions (a few hundred points).
func (g *Grid) Integrate(f []float64) (float64, error) {
	if len(f) != len(g.points) {
		return 0, errors.Errorf("Cannot integrate %d values over a %d point grid", len(f), len(g.points))
	}
	return integrate.Trapezoidal(g.points, f), nil
}
