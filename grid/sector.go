package grid

import "math"

// sector caches the trigonometric bounds of the angular search range.
// The bounds are derived once per search from the signed optimization
// range and reused by every plane search and refinement pass: the
// coarse pass uses the max-combination of the bounds, the refinement
// pass the min-combination (a monotonic sector intersection).
type sector struct {
	stop0c, stop0s float64
	stop1c, stop1s float64

	// optmax rescales all candidate directions uniformly, supporting
	// optimization over a sub-range of [-1, 1]-bounded indices.
	optmax float64
}

// newSector derives the cached bounds from the signed optimization range.
// Only the signs of the range enter the trigonometry; the upper bound
// itself becomes the uniform rescaling factor.
func newSector(optrange [2]float64) sector {
	lo := sign(optrange[0])
	hi := sign(optrange[1])

	return sector{
		stop0s: math.Asin(lo),
		stop1s: math.Asin(hi),
		stop1c: math.Acos(lo),
		stop0c: math.Acos(hi),
		optmax: optrange[1],
	}
}

// coarse returns the angular interval for the first pass. For the full
// range (-1, 1) this is [0, π), sampled open so the wrap-around point
// is not duplicated.
func (s sector) coarse() (start, stop float64) {
	return math.Max(s.stop0c, s.stop0s), math.Max(s.stop1c, s.stop1s)
}

// refined returns the narrowed interval for refinement passes. For the
// full range this is [-π/2, π/2], sampled closed so refinement can land
// exactly on the sector boundaries.
func (s sector) refined() (start, stop float64) {
	return math.Min(s.stop0c, s.stop0s), math.Min(s.stop1c, s.stop1s)
}

// directions materializes ndir unit candidates (cos θ, sin θ) with θ
// evenly spaced over [start, stop); closed sampling includes stop.
// Candidates are emitted in increasing-angle order - the argmax scan
// relies on this order for the lowest-angle tie-break.
func (s sector) directions(start, stop float64, ndir int, closed bool) [][2]float64 {
	var step float64
	if closed {
		step = (stop - start) / float64(ndir-1)
	} else {
		step = (stop - start) / float64(ndir)
	}

	cand := make([][2]float64, ndir)
	for i := 0; i < ndir; i++ {
		theta := start + float64(i)*step
		cand[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
		if s.optmax != 1 {
			cand[i][0] *= s.optmax
			cand[i][1] *= s.optmax
		}
	}

	return cand
}

// sign returns -1, 0 or 1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
