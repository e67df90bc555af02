package posterior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CraigKelly/gridpost/grid"
)

func TestCompareSuiteIdentical(t *testing.T) {
	assert := assert.New(t)

	g, err := grid.NewLinear(0.0, 20.0, 200)
	assert.NoError(err)

	p1 := poissonPosterior(t, g, 16, 2.0)
	p2 := poissonPosterior(t, g, 16, 2.0)

	suite, err := NewCompareSuite(p1, p2)
	assert.NoError(err)

	// Hellinger is sqrt(1-BC), so float noise in BC surfaces as ~1e-8
	const eps = 1e-6
	assert.InDelta(0.0, suite.Hellinger, eps)
	assert.InDelta(0.0, suite.JSDiverge, eps)
	assert.InDelta(0.0, suite.MaxAbsDiff, eps)
	assert.InDelta(0.0, suite.MeanAbsDiff, eps)
}

func TestCompareSuiteTightVsLoose(t *testing.T) {
	assert := assert.New(t)

	g, err := grid.NewLinear(0.0, 20.0, 200)
	assert.NoError(err)

	loose := poissonPosterior(t, g, 16, 2.0)
	tight := poissonPosterior(t, g, 80, 10.0)

	suite, err := NewCompareSuite(loose, tight)
	assert.NoError(err)

	// Same mode, different spread: clearly apart but far from disjoint
	assert.Greater(suite.Hellinger, 0.05)
	assert.Less(suite.Hellinger, 0.9)
	assert.Greater(suite.JSDiverge, 0.0)
	assert.Less(suite.JSDiverge, 1.0)
	assert.Greater(suite.MaxAbsDiff, 0.0)
	assert.Greater(suite.MeanAbsDiff, 0.0)

	// Symmetric measures
	rev, err := NewCompareSuite(tight, loose)
	assert.NoError(err)
	const eps = 1e-12
	assert.InDelta(suite.Hellinger, rev.Hellinger, eps)
	assert.InDelta(suite.JSDiverge, rev.JSDiverge, eps)
}

func TestCompareSuiteGridMismatch(t *testing.T) {
	assert := assert.New(t)

	g1, err := grid.NewLinear(0.0, 20.0, 200)
	assert.NoError(err)
	g2, err := grid.NewLinear(0.0, 20.0, 100)
	assert.NoError(err)
	g3, err := grid.NewLinear(0.0, 10.0, 200)
	assert.NoError(err)

	p1 := poissonPosterior(t, g1, 16, 2.0)
	p2 := poissonPosterior(t, g2, 16, 2.0)
	p3 := poissonPosterior(t, g3, 16, 2.0)

	_, err = NewCompareSuite(p1, p2)
	assert.Error(err)

	_, err = NewCompareSuite(p1, p3)
	assert.Error(err)

	_, err = NewCompareSuite(p1, nil)
	assert.Error(err)

	// Equal-valued grids compare fine even when they are distinct objects
	g4, err := grid.NewLinear(0.0, 20.0, 200)
	assert.NoError(err)
	p4 := poissonPosterior(t, g4, 16, 2.0)
	_, err = NewCompareSuite(p1, p4)
	assert.NoError(err)
}
