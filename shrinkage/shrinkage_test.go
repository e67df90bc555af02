package shrinkage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert := assert.New(t)

	naive := []float64{8.0, 2.5, 12.0}
	bayes := []float64{7.6, 3.1, 10.9}
	truth := []float64{7.8, 3.0, 11.2}

	pts, err := Summarize(naive, bayes, truth)
	assert.NoError(err)
	assert.Equal(3, len(pts))

	for i, p := range pts {
		assert.True(p.Valid)
		assert.Equal(naive[i], p.Naive)
		assert.Equal(bayes[i], p.Bayes)
		assert.Equal(truth[i], p.Truth)
	}
}

func TestSummarizeNoTruth(t *testing.T) {
	assert := assert.New(t)

	pts, err := Summarize([]float64{1.0, 2.0}, []float64{1.1, 1.9}, nil)
	assert.NoError(err)
	assert.Equal(2, len(pts))
	for _, p := range pts {
		assert.True(p.Valid)
		assert.True(math.IsNaN(p.Truth))
	}
}

func TestSummarizeMissingNaive(t *testing.T) {
	assert := assert.New(t)

	// A zero-exposure entity has naive estimate 0/0 = NaN: flagged, not
	// dropped, and the rest of the batch is unaffected
	naive := []float64{8.0, math.NaN(), 12.0, math.Inf(1)}
	bayes := []float64{7.6, 3.1, 10.9, 9.0}

	pts, err := Summarize(naive, bayes, nil)
	assert.NoError(err)
	assert.Equal(4, len(pts))
	assert.True(pts[0].Valid)
	assert.False(pts[1].Valid)
	assert.True(pts[2].Valid)
	assert.False(pts[3].Valid)

	// The invalid entities keep their Bayes estimates
	assert.Equal(3.1, pts[1].Bayes)

	paired := Paired(pts)
	assert.Equal(2, len(paired))
	assert.Equal(8.0, paired[0].Naive)
	assert.Equal(12.0, paired[1].Naive)
}

func TestSummarizeErrors(t *testing.T) {
	assert := assert.New(t)

	var err error

	_, err = Summarize([]float64{}, []float64{}, nil)
	assert.Error(err)

	_, err = Summarize([]float64{1.0, 2.0}, []float64{1.0}, nil)
	assert.Error(err)

	_, err = Summarize([]float64{1.0}, []float64{1.0}, []float64{1.0, 2.0})
	assert.Error(err)

	// Bayes estimates come from our own engine - NaN there is a bug
	_, err = Summarize([]float64{1.0}, []float64{math.NaN()}, nil)
	assert.Error(err)
}
