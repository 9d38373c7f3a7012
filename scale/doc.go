// Package scale implements the column-wise centering and scaling
// transform used to precondition data before a projection pursuit
// search, and to re-apply the fitted transform to new data at
// prediction time.
//
// ✨ Supported estimators:
//   - location: "mean" (optionally trimmed) or "median"
//   - scale:    "std" (optionally trimmed), "mad" (median absolute
//     deviation × 1.4826 for normal consistency) or "none"
//
// A Scaler is fitted once on the training matrix - retaining the
// per-column location and scale vectors - and applied forward to any
// matrix with the same column count. Fit never mutates its input.
//
// ⚙️ Usage:
//
//	s, err := scale.New("median", "mad")
//	Xs, err := s.Fit(X, 0.1)   // trimmed fit, scaled copy returned
//	Xn, err := s.Apply(Xnew)   // same transform, new data
package scale
