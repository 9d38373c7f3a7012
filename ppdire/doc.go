// Package ppdire implements projection pursuit dimension reduction:
// iterative extraction of latent components that maximize a plug-in
// projection index, with an optional regression of a response on the
// extracted scores.
//
// 🚀 How it works:
//
//	Each component is the direction maximizing the projection index on
//	the current residual matrix, found by the grid search (package
//	grid). The score and loading of the winning direction are stored,
//	the rank-one component is deflated from the residual, and the
//	rotation matrix is rebuilt through a pseudo-inverse so raw-space
//	regression coefficients stay available after every component.
//
// ✨ Key features:
//   - any grid.Index drives the search: variance reproduces PCA-style
//     components, covariance/continuum reproduce PLS and continuum
//     regression, kurtosis (with whitening) reproduces ICA
//   - robust preprocessing: median/MAD centering-scaling, trimming
//   - regression-on-scores: least squares, M-estimation or quantile
//   - SVD compression for flat tables (p > n) and data whitening
//   - silent non-convergence surfaced per component through
//     Model.SweepCounts and Model.Converged
//
// ⚙️ Usage:
//
//	idx, _ := moment.New(moment.Continuum, moment.DefaultOptions())
//	model, _ := ppdire.New(idx, ppdire.Options{Components: 2, Center: "mean",
//	    CenterData: true, ScaleData: true, KeepInput: true})
//	scores, err := model.Fit(X, y, ppdire.DefaultFitOptions())
//	yhat, err := model.Predict(Xnew)   // Xnew·coefficients + intercept
//	tnew, err := model.Transform(Xnew) // scaled Xnew · rotations
//
// All fitted attributes (weights, loadings, rotations, scores,
// coefficients, intercepts, residuals, fitted values, location/scale
// vectors, whitening and mixing matrices) are exported fields on Model.
package ppdire
