package ppdire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestPseudoInverse_SquareInvertible matches the plain inverse on a
// well-conditioned matrix.
func TestPseudoInverse_SquareInvertible(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{4, 7, 2, 6})

	inv, err := pseudoInverse(a)
	require.NoError(t, err)

	var prod mat.Dense
	prod.Mul(inv, a)
	assert.InDelta(t, 1, prod.At(0, 0), 1e-12)
	assert.InDelta(t, 0, prod.At(0, 1), 1e-12)
	assert.InDelta(t, 0, prod.At(1, 0), 1e-12)
	assert.InDelta(t, 1, prod.At(1, 1), 1e-12)
}

// TestPseudoInverse_RankDeficient verifies the Moore-Penrose identity
// A·A⁺·A = A on a rank-one matrix, where plain inversion fails.
func TestPseudoInverse_RankDeficient(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{1, 2, 2, 4, 3, 6})

	inv, err := pseudoInverse(a)
	require.NoError(t, err)
	r, c := inv.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	var ai, aia mat.Dense
	ai.Mul(a, inv)
	aia.Mul(&ai, a)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, a.At(i, j), aia.At(i, j), 1e-10)
		}
	}
}

// TestThinSVD returns orthonormal left vectors and descending values.
func TestThinSVD(t *testing.T) {
	a := mat.NewDense(4, 2, []float64{2, 0, 0, 1, 0, 0, 0, 0})

	u, s, err := thinSVD(a)
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.InDelta(t, 2, s[0], 1e-12)
	assert.InDelta(t, 1, s[1], 1e-12)

	var utu mat.Dense
	utu.Mul(u.T(), u)
	assert.InDelta(t, 1, utu.At(0, 0), 1e-12)
	assert.InDelta(t, 0, utu.At(0, 1), 1e-12)
	assert.InDelta(t, 1, utu.At(1, 1), 1e-12)
}

// TestMulVecHelpers pins the hand-rolled matrix-vector products against
// hand-computed values.
func TestMulVecHelpers(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	dst := make([]float64, 2)
	mulVec(dst, a, []float64{1, 0, -1})
	assert.Equal(t, []float64{-2, -2}, dst)

	dstT := make([]float64, 3)
	mulVecT(dstT, a, []float64{1, 1})
	assert.Equal(t, []float64{5, 7, 9}, dstT)

	assert.Equal(t, 91.0, frobSq(a))

	u := unitOf([]float64{3, 4})
	assert.InDelta(t, 0.6, u[0], 1e-12)
	assert.InDelta(t, 0.8, u[1], 1e-12)
}
