package grid

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// searchCandidates projects the n×2 block onto every candidate
// direction, evaluates the index on each projection, and returns the
// winning direction with its objective value.
//
// Contracts:
//   - cand is in increasing-angle order; ties on the maximum are broken
//     by the first (lowest-angle) occurrence, also under parallel
//     evaluation: workers only fill the measurement slice, the argmax
//     scan is always sequential.
//   - div, when non-nil, holds the per-candidate stabilizing divisor of
//     the refinement search; candidates with a non-positive or NaN
//     divisor are skipped (their measurement is NaN).
//   - index errors abort the search and are forwarded as-is.
//
// Complexity: O(len(cand)) index evaluations, O(n) work per candidate.
func searchCandidates(block *mat.Dense, resp []float64, idx Index, cand [][2]float64, div []float64, square bool, workers int) ([2]float64, float64, error) {
	n, _ := block.Dims()
	meas := make([]float64, len(cand))
	errs := make([]error, len(cand))

	evalOne := func(c int, score []float64) {
		w0, w1 := cand[c][0], cand[c][1]
		if div != nil {
			d := div[c]
			if !(d > 0) {
				meas[c] = math.NaN()

				return
			}
			w0 /= d
			w1 /= d
		}
		for i := 0; i < n; i++ {
			score[i] = w0*block.At(i, 0) + w1*block.At(i, 1)
		}
		v, err := idx.Eval(score, resp)
		if err != nil {
			errs[c] = err

			return
		}
		if square {
			v *= v
		}
		meas[c] = v
	}

	if workers <= 1 {
		score := make([]float64, n)
		for c := range cand {
			evalOne(c, score)
		}
	} else {
		var wg sync.WaitGroup
		ch := make(chan int, len(cand))
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				score := make([]float64, n)
				for c := range ch {
					evalOne(c, score)
				}
			}()
		}
		for c := range cand {
			ch <- c
		}
		close(ch)
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return [2]float64{}, 0, err
		}
	}

	// Sequential argmax; strict > keeps the first maximizer and skips NaN.
	bestVal := math.Inf(-1)
	bestAt := -1
	for c, v := range meas {
		if v > bestVal {
			bestVal, bestAt = v, c
		}
	}
	if bestAt < 0 {
		return [2]float64{}, 0, ErrNoFiniteObjective
	}

	w := cand[bestAt]
	if div != nil {
		w[0] /= div[bestAt]
		w[1] /= div[bestAt]
	}

	return w, bestVal, nil
}

// planeSearch runs the coarse pass: an open sampling of the sector so
// the wrap-around point is not scanned twice.
func planeSearch(block *mat.Dense, resp []float64, idx Index, sec sector, o Options) ([2]float64, float64, error) {
	start, stop := sec.coarse()
	cand := sec.directions(start, stop, o.NDir, false)

	return searchCandidates(block, resp, idx, cand, nil, o.SquarePI, o.Workers)
}

// planeRefine runs a refinement pass over the narrowed, closed sector.
// Each candidate is re-expressed relative to the previously obtained
// suboptimal component q through the divisor sqrt(1 + 2·cosθ·sinθ·q),
// which keeps the search stable when the candidate is nearly collinear
// with the running combination. cand is the cached closed-sector grid.
func planeRefine(block *mat.Dense, resp []float64, idx Index, cand [][2]float64, q float64, o Options) ([2]float64, float64, error) {
	div := make([]float64, len(cand))
	for c := range cand {
		div[c] = math.Sqrt(1 + 2*cand[c][0]*cand[c][1]*q)
	}

	return searchCandidates(block, resp, idx, cand, div, o.SquarePI, o.Workers)
}
