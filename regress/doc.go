// Package regress fits the per-component regression of a response on an
// extracted score vector. All three estimators share one contract:
// fit(score, response) → scalar coefficient through the origin (both
// inputs arrive centered from the deflation controller).
//
// ✨ Estimators:
//   - OLS      - closed-form least squares: Σty / Σt²
//   - Robust   - M-estimation by iteratively reweighted least squares
//     with Huber, Hampel or Fair weights; cutoffs derived from
//     standard-normal quantiles at three probability levels
//   - Quantile - pinball-loss regression at a configurable level,
//     solved exactly by scanning the breakpoint slopes y_i/t_i
//
// ⚙️ Usage:
//
//	c, err := regress.OLS(t, y)
//	c, err := regress.Robust(t, y, regress.DefaultRobustOptions())
//	c, err := regress.Quantile(t, y, 0.5)
package regress
