package moment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppgrid/moment"
)

// mustIndex builds an Index or fails the test.
func mustIndex(t *testing.T, mode moment.Mode, opts moment.Options) *moment.Index {
	t.Helper()
	ix, err := moment.New(mode, opts)
	require.NoError(t, err)

	return ix
}

// TestVariance_Population checks the raw second central moment against a
// hand-computed value.
func TestVariance_Population(t *testing.T) {
	ix := mustIndex(t, moment.Variance, moment.DefaultOptions())

	v, err := ix.Eval([]float64{1, 2, 3, 4, 5}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2, v, 1e-12, "population variance of 1..5")
}

// TestVariance_BiasCorrected checks the n/(n−1) correction.
func TestVariance_BiasCorrected(t *testing.T) {
	opts := moment.DefaultOptions()
	opts.BiasCorr = true
	ix := mustIndex(t, moment.Variance, opts)

	v, err := ix.Eval([]float64{1, 2, 3, 4, 5}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-12, "sample variance of 1..5")
}

// TestVariance_TrimmingDropsExtremes verifies the trimming contract:
// location on the full sample, largest absolute deviations dropped.
func TestVariance_TrimmingDropsExtremes(t *testing.T) {
	opts := moment.DefaultOptions()
	opts.Trimming = 0.2
	ix := mustIndex(t, moment.Variance, opts)

	// Full-sample mean 22; the outlier's deviation 78 is dropped, the
	// four remaining deviations average to 1526/4.
	v, err := ix.Eval([]float64{1, 2, 3, 4, 100}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 381.5, v, 1e-9)
}

// TestSkewness checks symmetry and a hand-computed asymmetric case.
func TestSkewness(t *testing.T) {
	ix := mustIndex(t, moment.Skewness, moment.DefaultOptions())

	v, err := ix.Eval([]float64{1, 2, 3, 4, 5}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-12, "symmetric sample has zero skewness")

	v, err = ix.Eval([]float64{0, 0, 0, 1}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2/math.Sqrt(3), v, 1e-12, "standardized third moment")
}

// TestKurtosis_Excess verifies the −3 excess convention on a two-point
// alternating sample (flattest possible distribution).
func TestKurtosis_Excess(t *testing.T) {
	ix := mustIndex(t, moment.Kurtosis, moment.DefaultOptions())

	v, err := ix.Eval([]float64{-1, 1, -1, 1}, nil)
	require.NoError(t, err)
	assert.InDelta(t, -2, v, 1e-12, "Bernoulli(±1) has excess kurtosis −2")
}

// TestMedianCenter checks the alternative location estimator.
func TestMedianCenter(t *testing.T) {
	opts := moment.DefaultOptions()
	opts.Center = "median"
	ix := mustIndex(t, moment.Variance, opts)

	// Median of {1,2,3,100} is 2.5; squared deviations sum to 9509.
	v, err := ix.Eval([]float64{1, 2, 3, 100}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 9509.0/4, v, 1e-9)
}

// TestCovariance checks the central cross-moment with and without bias
// correction.
func TestCovariance(t *testing.T) {
	score := []float64{1, 2, 3, 4}
	resp := []float64{2, 4, 6, 8}

	ix := mustIndex(t, moment.Covariance, moment.DefaultOptions())
	v, err := ix.Eval(score, resp)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-12)

	opts := moment.DefaultOptions()
	opts.BiasCorr = true
	ix = mustIndex(t, moment.Covariance, opts)
	v, err = ix.Eval(score, resp)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/3, v, 1e-12)
}

// TestCorrelation checks the ±1 bounds on exactly linear pairs.
func TestCorrelation(t *testing.T) {
	ix := mustIndex(t, moment.Correlation, moment.DefaultOptions())

	v, err := ix.Eval([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)

	v, err = ix.Eval([]float64{1, 2, 3, 4}, []float64{9, 7, 5, 3})
	require.NoError(t, err)
	assert.InDelta(t, -1, v, 1e-12)
}

// TestContinuum checks the α interpolation: α = 1 reduces to cov².
func TestContinuum(t *testing.T) {
	score := []float64{1, 2, 3, 4}
	resp := []float64{2, 4, 6, 8}

	ix := mustIndex(t, moment.Continuum, moment.DefaultOptions())
	v, err := ix.Eval(score, resp)
	require.NoError(t, err)
	assert.InDelta(t, 2.5*2.5, v, 1e-12, "α = 1 is squared covariance")

	opts := moment.DefaultOptions()
	opts.Alpha = 2
	ix = mustIndex(t, moment.Continuum, opts)
	v, err = ix.Eval(score, resp)
	require.NoError(t, err)
	assert.InDelta(t, 2.5*2.5*1.25, v, 1e-12, "α = 2 re-weights by var(score)")
}

// TestNew_Validation walks the construction sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := moment.New(moment.Mode(-1), moment.DefaultOptions())
	assert.ErrorIs(t, err, moment.ErrUnknownMode)

	opts := moment.DefaultOptions()
	opts.Center = "mode"
	_, err = moment.New(moment.Variance, opts)
	assert.ErrorIs(t, err, moment.ErrCenterEstimator)

	opts = moment.DefaultOptions()
	opts.Trimming = 0.5
	_, err = moment.New(moment.Variance, opts)
	assert.ErrorIs(t, err, moment.ErrBadTrimming)

	opts = moment.DefaultOptions()
	opts.Alpha = math.NaN()
	_, err = moment.New(moment.Continuum, opts)
	assert.ErrorIs(t, err, moment.ErrBadAlpha)

	opts = moment.DefaultOptions()
	opts.DMetric = "manhattan"
	_, err = moment.New(moment.Variance, opts)
	assert.ErrorIs(t, err, moment.ErrDistanceMetric)
}

// TestEval_Validation walks the evaluation sentinels.
func TestEval_Validation(t *testing.T) {
	oneBlock := mustIndex(t, moment.Variance, moment.DefaultOptions())
	twoBlock := mustIndex(t, moment.Covariance, moment.DefaultOptions())

	_, err := oneBlock.Eval(nil, nil)
	assert.ErrorIs(t, err, moment.ErrEmptyInput)

	_, err = twoBlock.Eval([]float64{1, 2, 3}, nil)
	assert.ErrorIs(t, err, moment.ErrResponseRequired)

	_, err = twoBlock.Eval([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, moment.ErrLengthMismatch)

	skew := mustIndex(t, moment.Skewness, moment.DefaultOptions())
	_, err = skew.Eval([]float64{5, 5, 5, 5}, nil)
	assert.ErrorIs(t, err, moment.ErrDegenerate)

	corr := mustIndex(t, moment.Correlation, moment.DefaultOptions())
	_, err = corr.Eval([]float64{1, 2, 3}, []float64{4, 4, 4})
	assert.ErrorIs(t, err, moment.ErrDegenerate)
}

// TestMode_Strings pins the Stringer labels used by the CLI.
func TestMode_Strings(t *testing.T) {
	assert.Equal(t, "variance", moment.Variance.String())
	assert.Equal(t, "kurtosis", moment.Kurtosis.String())
	assert.Equal(t, "continuum", moment.Continuum.String())
	assert.True(t, moment.Covariance.TwoBlock())
	assert.False(t, moment.Skewness.TwoBlock())
}
