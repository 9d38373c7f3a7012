// Package moment: sentinel error set. Tests match via errors.Is.

package moment

import "errors"

var (
	// ErrUnknownMode indicates an unrecognized index mode.
	ErrUnknownMode = errors.New("moment: unknown index mode")

	// ErrCenterEstimator indicates a center other than "mean" or "median".
	ErrCenterEstimator = errors.New(`moment: center must be "mean" or "median"`)

	// ErrBadTrimming indicates a trimming fraction outside [0, 0.5).
	ErrBadTrimming = errors.New("moment: trimming must be in [0, 0.5)")

	// ErrBadAlpha indicates a non-finite continuum coefficient.
	ErrBadAlpha = errors.New("moment: alpha must be finite")

	// ErrDistanceMetric indicates an unsupported distance metric; only
	// "euclidean" is implemented.
	ErrDistanceMetric = errors.New(`moment: only the "euclidean" distance metric is supported`)

	// ErrEmptyInput indicates an empty score vector.
	ErrEmptyInput = errors.New("moment: score vector is empty")

	// ErrResponseRequired indicates a two-block index evaluated without
	// a response vector.
	ErrResponseRequired = errors.New("moment: two-block index requires a response vector")

	// ErrLengthMismatch indicates score and response of different lengths.
	ErrLengthMismatch = errors.New("moment: score and response lengths differ")

	// ErrDegenerate indicates a zero-variance input where a standardized
	// moment or correlation is undefined.
	ErrDegenerate = errors.New("moment: zero variance, index undefined")
)
