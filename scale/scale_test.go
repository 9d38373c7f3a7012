package scale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ppgrid/scale"
)

// TestFit_MeanStd checks classical per-column standardization.
func TestFit_MeanStd(t *testing.T) {
	s, err := scale.New("mean", "std")
	require.NoError(t, err)

	x := mat.NewDense(5, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
		5, 50,
	})
	out, err := s.Fit(x, 0)
	require.NoError(t, err)

	assert.InDelta(t, 3, s.Loc[0], 1e-12)
	assert.InDelta(t, 30, s.Loc[1], 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.Sca[0], 1e-12, "sample std of 1..5")

	// Standardized columns have zero mean and unit sample variance.
	col := make([]float64, 5)
	for j := 0; j < 2; j++ {
		mat.Col(col, j, out)
		var sum, ss float64
		for _, v := range col {
			sum += v
		}
		assert.InDelta(t, 0, sum, 1e-12)
		for _, v := range col {
			ss += v * v
		}
		assert.InDelta(t, 4, ss, 1e-12, "sum of squares is n−1 after standardization")
	}
}

// TestFit_MedianMad checks the robust estimator pair.
func TestFit_MedianMad(t *testing.T) {
	s, err := scale.New("median", "mad")
	require.NoError(t, err)

	x := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 1000})
	_, err = s.Fit(x, 0)
	require.NoError(t, err)

	assert.InDelta(t, 3, s.Loc[0], 1e-12, "median ignores the outlier")
	// Absolute deviations {2,1,0,1,997}; their median is 1.
	assert.InDelta(t, 1.4826, s.Sca[0], 1e-12)
}

// TestFit_NoneLeavesScaleUnit verifies "none" centers without scaling.
func TestFit_NoneLeavesScaleUnit(t *testing.T) {
	s, err := scale.New("mean", "none")
	require.NoError(t, err)

	x := mat.NewDense(3, 1, []float64{2, 4, 6})
	out, err := s.Fit(x, 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.Sca[0])
	assert.InDelta(t, -2, out.At(0, 0), 1e-12)
	assert.InDelta(t, 2, out.At(2, 0), 1e-12)
}

// TestFit_ConstantColumnScaleFloor verifies constant columns get unit
// scale instead of a division by zero.
func TestFit_ConstantColumnScaleFloor(t *testing.T) {
	s, err := scale.New("mean", "std")
	require.NoError(t, err)

	x := mat.NewDense(4, 1, []float64{7, 7, 7, 7})
	out, err := s.Fit(x, 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.Sca[0])
	assert.InDelta(t, 0, out.At(0, 0), 1e-12, "constant column centers to zero")
}

// TestFit_DoesNotMutateInput pins the copy semantics.
func TestFit_DoesNotMutateInput(t *testing.T) {
	s, err := scale.New("mean", "std")
	require.NoError(t, err)

	x := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	before := mat.DenseCopyOf(x)
	_, err = s.Fit(x, 0)
	require.NoError(t, err)

	assert.True(t, mat.Equal(before, x))
}

// TestApply_ReplaysFit verifies Apply on the training data reproduces
// the Fit output exactly.
func TestApply_ReplaysFit(t *testing.T) {
	s, err := scale.New("mean", "std")
	require.NoError(t, err)

	x := mat.NewDense(4, 2, []float64{1, 8, 2, 6, 3, 4, 4, 2})
	fitted, err := s.Fit(x, 0)
	require.NoError(t, err)
	replayed, err := s.Apply(x)
	require.NoError(t, err)

	assert.True(t, mat.Equal(fitted, replayed))
}

// TestIdentity is a no-op transform of the requested width.
func TestIdentity(t *testing.T) {
	s := scale.Identity(3)

	x := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	out, err := s.Apply(x)
	require.NoError(t, err)

	assert.True(t, mat.Equal(x, out))
}

// TestTrimmedMean cuts symmetric tails before averaging.
func TestTrimmedMean(t *testing.T) {
	// 10 values, trim 0.1 cuts one order statistic per tail.
	x := []float64{-100, 1, 2, 3, 4, 5, 6, 7, 8, 1000}
	assert.InDelta(t, 4.5, scale.TrimmedMean(x, 0.1), 1e-12)
	assert.InDelta(t, 93.6, scale.TrimmedMean(x, 0), 1e-12)
}

// TestMedian averages the middle pair for even lengths.
func TestMedian(t *testing.T) {
	assert.InDelta(t, 2.5, scale.Median([]float64{4, 1, 3, 2}), 1e-12)
	assert.InDelta(t, 3, scale.Median([]float64{5, 1, 3}), 1e-12)
}

// TestErrors walks the sentinel surface.
func TestErrors(t *testing.T) {
	_, err := scale.New("mode", "std")
	assert.ErrorIs(t, err, scale.ErrCenterEstimator)

	_, err = scale.New("mean", "iqr")
	assert.ErrorIs(t, err, scale.ErrScaleEstimator)

	s, err := scale.New("mean", "std")
	require.NoError(t, err)

	_, err = s.Fit(nil, 0)
	assert.ErrorIs(t, err, scale.ErrNoData)

	_, err = s.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), 0.5)
	assert.ErrorIs(t, err, scale.ErrBadTrimming)

	_, err = s.Apply(mat.NewDense(3, 1, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, scale.ErrNotFitted)

	_, err = s.Fit(mat.NewDense(3, 2, nil), 0)
	require.NoError(t, err)
	_, err = s.Apply(mat.NewDense(3, 1, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, scale.ErrDimensionMismatch)
}
