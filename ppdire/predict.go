package ppdire

import "gonum.org/v1/gonum/mat"

// Predict returns Xnew·coefficients + intercept: an n×h matrix whose
// column i is the prediction of the model truncated after i+1
// components; the last column is the full model's prediction.
//
// Errors: ErrNotFitted before Fit, ErrOneBlock when the model was
// fitted without a response, ErrColumnMismatch when Xnew's column count
// differs from the training data.
func (m *Model) Predict(xn *mat.Dense) (*mat.Dense, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if !m.twoBlock {
		return nil, ErrOneBlock
	}
	if xn == nil {
		return nil, ErrNoData
	}
	_, p := xn.Dims()
	if p != m.nVars {
		return nil, ErrColumnMismatch
	}

	out := &mat.Dense{}
	out.Mul(xn, m.Coef)
	out.Apply(func(_, _ int, v float64) float64 { return v + m.Intercept }, out)

	return out, nil
}

// Transform maps new data into the latent space: the fitted
// centering/scaling transform is replayed on Xnew, then the result is
// projected through the rotation matrix. On the training data this
// reproduces the score matrix up to scaling-object consistency.
//
// Errors: ErrNotFitted, ErrColumnMismatch.
func (m *Model) Transform(xn *mat.Dense) (*mat.Dense, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if xn == nil {
		return nil, ErrNoData
	}
	_, p := xn.Dims()
	if p != m.nVars {
		return nil, ErrColumnMismatch
	}

	xnc, err := m.Scaling.Apply(xn)
	if err != nil {
		return nil, err
	}
	out := &mat.Dense{}
	out.Mul(xnc, m.Rotations)

	return out, nil
}
