// Package ppdire: sentinel error set (unified, consistent).
// Configuration errors surface at New, shape errors at Fit/Predict/
// Transform before any numeric work, numeric failures wrap ErrNumeric.

package ppdire

import "errors"

var (
	// ErrNilIndex indicates construction without a projection index.
	ErrNilIndex = errors.New("ppdire: projection index is nil")

	// ErrCenterEstimator indicates a center option other than "mean" or
	// "median". Raised at New, before any data is touched.
	ErrCenterEstimator = errors.New(`ppdire: center must be "mean" or "median"`)

	// ErrBadTrimming indicates a trimming fraction outside [0, 0.5).
	ErrBadTrimming = errors.New("ppdire: trimming must be in [0, 0.5)")

	// ErrBadComponents indicates a non-positive component count.
	ErrBadComponents = errors.New("ppdire: component count must be at least 1")

	// ErrComponentsRange indicates a component count exceeding min(n, p).
	// Raised before any numeric work; the input is never mutated.
	ErrComponentsRange = errors.New("ppdire: component count cannot exceed min(rows, columns)")

	// ErrNoData indicates a nil or empty data matrix.
	ErrNoData = errors.New("ppdire: data matrix is empty")

	// ErrTooFewVariables indicates fewer than two predictor columns.
	ErrTooFewVariables = errors.New("ppdire: at least two variables required")

	// ErrRowMismatch indicates predictor and response row counts differ.
	ErrRowMismatch = errors.New("ppdire: X and y row counts must agree")

	// ErrColumnMismatch indicates prediction/transform data whose column
	// count differs from the training data.
	ErrColumnMismatch = errors.New("ppdire: new data must have the training column count")

	// ErrNotFitted indicates Predict/Transform before a successful Fit.
	ErrNotFitted = errors.New("ppdire: model has not been fitted")

	// ErrOneBlock indicates Predict on a model fitted without a response.
	ErrOneBlock = errors.New("ppdire: model was fitted without a response")

	// ErrWhitenShape indicates whitening requested on flat data (p > n),
	// where the whitening transform cannot be inverted consistently.
	ErrWhitenShape = errors.New("ppdire: whitening requires at least as many rows as columns")

	// ErrBadRegression indicates an unrecognized regression method.
	ErrBadRegression = errors.New("ppdire: unknown regression method")

	// ErrBadQuantile indicates a quantile level outside (0, 1).
	ErrBadQuantile = errors.New("ppdire: quantile level must be in (0, 1)")

	// ErrNumeric indicates an SVD or pseudo-inverse failure on
	// non-finite or degenerate input; the core does not recover beyond
	// what the linear-algebra layer provides.
	ErrNumeric = errors.New("ppdire: numeric failure in SVD/pseudo-inverse")
)
