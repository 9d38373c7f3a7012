package ppdire

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// svdEps is the relative singular-value cutoff for the pseudo-inverse.
const svdEps = 1e-15

// pseudoInverse computes the Moore-Penrose inverse through a thin SVD,
// zeroing singular values below max(r,c)·eps·σ_max. PᵀW is not
// guaranteed well-conditioned, so plain inversion is not an option.
func pseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrNumeric
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	r, c := a.Dims()
	maxDim := r
	if c > maxDim {
		maxDim = c
	}
	tol := float64(maxDim) * svdEps * s[0]

	// Scale the columns of V by the inverted singular values.
	vr, vc := v.Dims()
	scaled := mat.NewDense(vr, vc, nil)
	for j := 0; j < vc; j++ {
		inv := 0.0
		if s[j] > tol {
			inv = 1 / s[j]
		}
		for i := 0; i < vr; i++ {
			scaled.Set(i, j, v.At(i, j)*inv)
		}
	}

	out := mat.NewDense(c, r, nil)
	out.Mul(scaled, u.T())

	return out, nil
}

// thinSVD factorizes a and returns the left singular vectors and the
// singular values.
func thinSVD(a mat.Matrix) (*mat.Dense, []float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, ErrNumeric
	}
	var u mat.Dense
	svd.UTo(&u)

	return &u, svd.Values(nil), nil
}

// mulVec writes dst = a·x.
func mulVec(dst []float64, a *mat.Dense, x []float64) {
	n, p := a.Dims()
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < p; j++ {
			s += a.At(i, j) * x[j]
		}
		dst[i] = s
	}
}

// mulVecT writes dst = aᵀ·x.
func mulVecT(dst []float64, a *mat.Dense, x []float64) {
	n, p := a.Dims()
	for j := 0; j < p; j++ {
		s := 0.0
		for i := 0; i < n; i++ {
			s += a.At(i, j) * x[i]
		}
		dst[j] = s
	}
}

// frobSq returns the squared Frobenius norm of a.
func frobSq(a *mat.Dense) float64 {
	n, p := a.Dims()
	var s float64
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			v := a.At(i, j)
			s += v * v
		}
	}

	return s
}

// unitOf returns v/‖v‖₂ as a fresh slice.
func unitOf(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	if nrm := floats.Norm(out, 2); nrm > 0 {
		floats.Scale(1/nrm, out)
	}

	return out
}
