// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the grid
// package. All entry points return these sentinels and tests check them via
// errors.Is. Errors produced by a user-supplied Index are forwarded as-is.

package grid

import "errors"

var (
	// ErrNilIndex indicates that a nil projection index was supplied.
	ErrNilIndex = errors.New("grid: projection index is nil")

	// ErrNoData indicates an empty data block (zero rows).
	ErrNoData = errors.New("grid: data block has no rows")

	// ErrTooFewVariables indicates a data block with fewer than two columns.
	// The plane search is defined on two variables; the reducer needs at
	// least two to fold.
	ErrTooFewVariables = errors.New("grid: at least two variables required")

	// ErrResponseLength indicates that the response vector length differs
	// from the number of observations in the data block.
	ErrResponseLength = errors.New("grid: response length does not match rows")

	// ErrBadDirections indicates a non-positive or degenerate candidate
	// count (NDir < 2).
	ErrBadDirections = errors.New("grid: NDir must be at least 2")

	// ErrBadMaxIter indicates a non-positive sweep cap.
	ErrBadMaxIter = errors.New("grid: MaxIter must be at least 1")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("grid: Tol must be positive")

	// ErrPlaneShape indicates that Plane received a block whose column
	// count differs from two.
	ErrPlaneShape = errors.New("grid: plane search requires exactly two columns")

	// ErrNoFiniteObjective indicates that every candidate direction
	// evaluated to NaN, so no maximizer exists.
	ErrNoFiniteObjective = errors.New("grid: no candidate produced a finite objective")
)
