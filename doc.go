// Package ppgrid is a toolkit for projection pursuit dimension
// reduction - finding the low-dimensional linear projections of a data
// matrix that maximize a statistical "interestingness" criterion, via
// the grid search algorithm.
//
// 🚀 What is ppgrid?
//
//	A modular, deterministic library that brings together:
//		• grid: the angular grid optimizer - plane search, iterative
//		  refinement, and the pairwise reducer for p > 2 variables
//		• moment: built-in projection indices (variance, skewness,
//		  kurtosis, covariance, correlation, continuum association)
//		• scale: robust centering and scaling (mean/std, median/MAD)
//		• regress: regression of a response on extracted scores
//		  (least squares, M-estimation, quantile)
//		• ppdire: the estimator - component extraction by deflation,
//		  with Fit / Predict / Transform
//
// ✨ Why choose ppgrid?
//
//   - Deterministic by construction - fixed candidate grids, stable
//     lowest-angle tie-breaking, no hidden randomness
//   - Pluggable objectives - any type satisfying grid.Index can drive
//     the search; the moment package covers the classical indices
//   - Robust options throughout - trimmed moments, median/MAD scaling,
//     M- and quantile regression for contaminated data
//   - Strict sentinels - configuration and shape errors surface as
//     package-level errors matched with errors.Is
//
// ⚙️ Quick start:
//
//	idx, _ := moment.New(moment.Variance, moment.DefaultOptions())
//	model, _ := ppdire.New(idx, ppdire.DefaultOptions())
//	scores, err := model.Fit(X, nil, ppdire.DefaultFitOptions())
//
// See each package's doc.go and example_test.go for details.
package ppgrid
