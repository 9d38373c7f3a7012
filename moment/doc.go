// Package moment provides the built-in projection indices for the grid
// search: scalar functionals scoring how interesting a one-dimensional
// projection of multivariate data is.
//
// 🚀 Available indices:
//
//	One-block (score only):
//	  • Variance - classical PCA-style spread
//	  • Skewness - third standardized moment
//	  • Kurtosis - EXCESS kurtosis (zero at the normal); squaring via
//	    the optimizer's SquarePI option finds both sub- and
//	    super-Gaussian directions, the ICA use case
//	Two-block (score and response):
//	  • Covariance  - PLS-style association
//	  • Correlation - scale-free association
//	  • Continuum   - cov²·var^(α−1), blending variance- and
//	    covariance-maximizing objectives through the continuum
//	    coefficient Alpha
//
// ✨ Robustness knobs:
//   - Trimming drops the fraction of observations with the largest
//     absolute deviation from the location estimate (for two-block
//     indices: the largest absolute cross-deviation products).
//   - Center selects the location estimate: mean or median.
//   - BiasCorr applies the finite-sample corrections (n−1 denominators,
//     G1/G2 adjustments) on top of the population moments.
//
// Sign conventions are this package's contract: kurtosis is reported as
// excess kurtosis, skewness and covariance keep their natural sign.
// Indices are pure and deterministic, as the grid optimizer requires.
//
// ⚙️ Usage:
//
//	opts := moment.DefaultOptions()
//	opts.Trimming = 0.1
//	idx, err := moment.New(moment.Variance, opts)
//	v, err := idx.Eval(score, nil)
package moment
