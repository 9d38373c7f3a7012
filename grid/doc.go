// Package grid implements the grid search algorithm for projection
// pursuit: a derivative-free optimizer that finds the direction in data
// space maximizing a plug-in projection index.
//
// 🚀 What is the grid algorithm?
//
//	The direction search is restricted to a sign-sector of the unit
//	circle and discretized into evenly spaced angular candidates. For
//	two variables a single plane search suffices; for p > 2 the
//	pairwise reducer folds one variable at a time into a running
//	optimal combination, then sweeps over all variables with a
//	reparametrized refinement search until the objective stabilizes.
//
// ✨ Key features:
//   - Plane: one-shot angular search on an n×2 block
//   - Reduce: the full pairwise reducer with outer convergence loop
//   - angle-domain search with a stabilizing q-divisor during
//     refinement, so near-collinear updates never divide by zero
//   - deterministic lowest-angle tie-breaking, also under parallel
//     candidate evaluation (Options.Workers)
//   - silent iteration cap: hitting MaxIter is a normal exit, surfaced
//     through Result.Sweeps / Result.Converged / Result.Trace
//
// ⚙️ Usage:
//
//	idx, _ := moment.New(moment.Variance, moment.DefaultOptions())
//	opts := grid.DefaultOptions()
//	opts.NDir = 250
//	res, err := grid.Reduce(X, nil, idx, opts)
//	// res.Direction: unit-norm optimal combination
//	// res.Objective: projection index at the optimum
//
// Complexity: Plane costs O(NDir) index evaluations; Reduce costs
// O(p·NDir) per sweep plus O(p) full-combination evaluations, with at
// most MaxIter+1 sweeps.
package grid
