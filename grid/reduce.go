// Package grid - entry points: Plane (two variables) and Reduce (the
// pairwise dimension reducer for p > 2).
//
// Design principles (matching the rest of the module):
//   - Deterministic: fixed candidate grids, stable ordering, no randomness.
//   - Strict sentinels: only errors from errors.go; index errors forwarded.
//   - Silent iteration cap: MaxIter exhaustion is a normal exit, visible
//     through Result.Sweeps / Result.Converged.
package grid

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// initialObjective seeds the outer loop far below any plausible index
// value so at least one full sweep always runs.
const initialObjective = -1000

// refineCap stops the subdivision schedule from growing past variable
// index 16; beyond it the maxiter-derived ceiling applies directly.
const refineCap = 16

// Plane finds the direction in a two-variable block maximizing the
// projection index, by a single coarse angular grid search.
//
// Contracts:
//   - block must be n×2 with n ≥ 1.
//   - resp may be nil (one-block mode); otherwise len(resp) == n.
//   - idx must be deterministic; ties break on the lowest angle.
//
// The returned Result has Sweeps == 0 and Converged == true: there is
// no iterative loop in the plane case.
func Plane(block *mat.Dense, resp []float64, idx Index, opts Options) (Result, error) {
	if idx == nil {
		return Result{}, ErrNilIndex
	}
	if block == nil {
		return Result{}, ErrNoData
	}
	n, p := block.Dims()
	if n == 0 {
		return Result{}, ErrNoData
	}
	if p != 2 {
		return Result{}, ErrPlaneShape
	}
	if resp != nil && len(resp) != n {
		return Result{}, ErrResponseLength
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	sec := newSector(opts.OptRange)
	w, obj, err := planeSearch(block, resp, idx, sec, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Direction: []float64{w[0], w[1]},
		Objective: obj,
		Converged: true,
	}, nil
}

// Reduce finds the direction in a p-variable data block maximizing the
// projection index. For p == 2 it delegates to exactly one Plane call;
// for p > 2 it runs the pairwise reduction:
//
//	Stage 1 - rank variables descending by univariate index value
//	          (squared under SquarePI) and permute the working copy; the
//	          ranking seeds a better start without constraining the search.
//	Stage 2 - plane-search the two top-ranked variables, then fold each
//	          remaining variable into the running combination Zopt,
//	          updating the combination vector afin.
//	Stage 3 - outer convergence loop: sweep all variables with the
//	          refinement search (q = afin[j]), re-evaluate the full
//	          combination after each sweep, track the normalized best,
//	          stop when the relative objective change drops below Tol or
//	          after MaxIter sweeps (silently; see Result.Converged).
//
// The returned Direction is in the caller's original variable order,
// unit Euclidean norm.
//
// Complexity: O(p·NDir) index evaluations per sweep; ≤ MaxIter+1 sweeps.
func Reduce(data *mat.Dense, resp []float64, idx Index, opts Options) (Result, error) {
	if idx == nil {
		return Result{}, ErrNilIndex
	}
	if data == nil {
		return Result{}, ErrNoData
	}
	n, p := data.Dims()
	if n == 0 {
		return Result{}, ErrNoData
	}
	if p < 2 {
		return Result{}, ErrTooFewVariables
	}
	if p == 2 {
		return Plane(data, resp, idx, opts)
	}
	if resp != nil && len(resp) != n {
		return Result{}, ErrResponseLength
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	sec := newSector(opts.OptRange)
	rstart, rstop := sec.refined()
	refCand := sec.directions(rstart, rstop, opts.NDir, true)

	// Stage 1 - univariate ranking.
	col := make([]float64, n)
	meas := make([]float64, p)
	for j := 0; j < p; j++ {
		mat.Col(col, j, data)
		v, err := idx.Eval(col, resp)
		if err != nil {
			return Result{}, err
		}
		if opts.SquarePI {
			v *= v
		}
		meas[j] = v
	}
	order := make([]int, p)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool { return meas[order[a]] > meas[order[b]] })

	zm := mat.NewDense(n, p, nil)
	for k, j := range order {
		mat.Col(col, j, data)
		zm.SetCol(k, col)
	}

	// Stage 2 - seed plane search plus sequential fold.
	afin := make([]float64, p)
	seed, ok := zm.Slice(0, n, 0, 2).(*mat.Dense)
	if !ok {
		return Result{}, ErrNoData
	}
	w, _, err := planeSearch(seed, resp, idx, sec, opts)
	if err != nil {
		return Result{}, err
	}
	zopt := make([]float64, n)
	zj := make([]float64, n)
	for i := 0; i < n; i++ {
		zopt[i] = w[0]*zm.At(i, 0) + w[1]*zm.At(i, 1)
	}
	afin[0], afin[1] = w[0], w[1]

	block := mat.NewDense(n, 2, nil)
	for j := 2; j < p; j++ {
		mat.Col(zj, j, zm)
		block.SetCol(0, zopt)
		block.SetCol(1, zj)
		w, _, err = planeSearch(block, resp, idx, sec, opts)
		if err != nil {
			return Result{}, err
		}
		for i := 0; i < n; i++ {
			zopt[i] = w[0]*zopt[i] + w[1]*zj[i]
		}
		for k := 0; k < j; k++ {
			afin[k] *= w[0]
		}
		afin[j] = w[1]
	}

	comb := make([]float64, n)
	combine(comb, zm, afin)
	objf, err := evalFull(idx, comb, resp, opts.SquarePI)
	if err != nil {
		return Result{}, err
	}

	// Subdivision schedule min(2^j, 2^round(log2 MaxIter)), recorded on
	// the Result for diagnostics; the refinement grid itself keeps NDir
	// candidates over the narrowed sector.
	ceiling := 1 << int(math.Round(math.Log2(float64(opts.MaxIter))))
	subdiv := make([]int, p)
	for j := range subdiv {
		if j > refineCap {
			subdiv[j] = ceiling
		} else {
			subdiv[j] = minInt(1<<j, ceiling)
		}
	}

	// Stage 3 - outer convergence loop.
	best := objf
	bestDir := unit(afin)
	objfold := objf
	objf = initialObjective
	sweeps := 0
	var trace []SweepStat

	for sweeps < opts.MaxIter+1 && math.Abs(objfold-objf)/math.Abs(objf) > opts.Tol {
		for j := 0; j < p; j++ {
			mat.Col(zj, j, zm)
			block.SetCol(0, zopt)
			block.SetCol(1, zj)
			w, _, err = planeRefine(block, resp, idx, refCand, afin[j], opts)
			if err != nil {
				return Result{}, err
			}
			for i := 0; i < n; i++ {
				zopt[i] = w[0]*zopt[i] + w[1]*zj[i]
			}
			floats.Scale(w[0], afin)
			afin[j] += w[1]
		}

		combine(comb, zm, afin)
		objfold = objf
		objf, err = evalFull(idx, comb, resp, opts.SquarePI)
		if err != nil {
			return Result{}, err
		}
		if objf > best {
			best = objf
			bestDir = unit(afin)
		}
		sweeps++
		trace = append(trace, SweepStat{Sweep: sweeps, Objective: objf, Best: best})
	}
	converged := math.Abs(objfold-objf)/math.Abs(objf) <= opts.Tol

	// Scatter the permuted combination back to original variable order.
	dir := make([]float64, p)
	for k, j := range order {
		dir[j] = bestDir[k]
	}

	return Result{
		Direction:    dir,
		Objective:    best,
		Sweeps:       sweeps,
		Converged:    converged,
		Trace:        trace,
		Subdivisions: subdiv,
	}, nil
}

// combine writes dst = Z·afin.
func combine(dst []float64, z *mat.Dense, afin []float64) {
	n, p := z.Dims()
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < p; j++ {
			s += afin[j] * z.At(i, j)
		}
		dst[i] = s
	}
}

// evalFull evaluates the index on a full-combination score vector.
func evalFull(idx Index, score, resp []float64, square bool) (float64, error) {
	v, err := idx.Eval(score, resp)
	if err != nil {
		return 0, err
	}
	if square {
		v *= v
	}

	return v, nil
}

// unit returns v / ‖v‖₂ as a fresh slice; a zero vector is returned as-is.
func unit(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	nrm := floats.Norm(out, 2)
	if nrm > 0 {
		floats.Scale(1/nrm, out)
	}

	return out
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
