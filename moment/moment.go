package moment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Index is a configured projection index. It satisfies grid.Index and
// is safe for concurrent use: evaluation reads only the configuration.
type Index struct {
	mode Mode
	opts Options
}

// New validates the configuration and returns an Index.
//
// Errors: ErrUnknownMode, ErrCenterEstimator, ErrBadTrimming,
// ErrBadAlpha, ErrDistanceMetric.
func New(mode Mode, opts Options) (*Index, error) {
	if mode < Variance || mode > Continuum {
		return nil, ErrUnknownMode
	}
	if opts.DMetric == "" {
		opts.DMetric = DefaultDMetric
	}
	if opts.Center == "" {
		opts.Center = DefaultCenter
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Index{mode: mode, opts: opts}, nil
}

// Mode returns the configured statistical functional.
func (ix *Index) Mode() Mode { return ix.mode }

// Eval computes the index on a projected score vector. resp is required
// for two-block modes and ignored otherwise.
//
// Trimming contract: the location is estimated on the full sample;
// the ⌊Trimming·n⌋ observations with the largest absolute deviation
// (largest absolute cross-deviation product for two-block modes) are
// dropped; moments average the remaining deviations.
func (ix *Index) Eval(score, resp []float64) (float64, error) {
	n := len(score)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if ix.mode.TwoBlock() {
		if resp == nil {
			return 0, ErrResponseRequired
		}
		if len(resp) != n {
			return 0, ErrLengthMismatch
		}
	}

	dx := deviations(score, ix.opts.Center)
	if !ix.mode.TwoBlock() {
		kept := trimBy(dx, absKeys(dx), ix.opts.Trimming)

		return ix.oneBlock(kept)
	}

	dy := deviations(resp, ix.opts.Center)
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = math.Abs(dx[i] * dy[i])
	}
	keep := keepIndices(keys, ix.opts.Trimming)
	kx := make([]float64, len(keep))
	ky := make([]float64, len(keep))
	for i, j := range keep {
		kx[i] = dx[j]
		ky[i] = dy[j]
	}

	return ix.twoBlock(kx, ky)
}

// oneBlock computes variance, skewness or excess kurtosis from centered
// deviations.
func (ix *Index) oneBlock(d []float64) (float64, error) {
	n := float64(len(d))
	var m2, m3, m4 float64
	for _, v := range d {
		v2 := v * v
		m2 += v2
		m3 += v2 * v
		m4 += v2 * v2
	}
	m2 /= n
	m3 /= n
	m4 /= n

	switch ix.mode {
	case Variance:
		if ix.opts.BiasCorr && n > 1 {
			m2 *= n / (n - 1)
		}

		return m2, nil

	case Skewness:
		if m2 == 0 {
			return 0, ErrDegenerate
		}
		g1 := m3 / math.Pow(m2, 1.5)
		if ix.opts.BiasCorr && n > 2 {
			g1 *= math.Sqrt(n*(n-1)) / (n - 2)
		}

		return g1, nil

	case Kurtosis:
		if m2 == 0 {
			return 0, ErrDegenerate
		}
		g2 := m4/(m2*m2) - 3
		if ix.opts.BiasCorr && n > 3 {
			g2 = ((n - 1) / ((n - 2) * (n - 3))) * ((n+1)*g2 + 6)
		}

		return g2, nil

	default:
		return 0, ErrUnknownMode
	}
}

// twoBlock computes covariance, correlation or the continuum objective
// from centered deviation pairs.
func (ix *Index) twoBlock(dx, dy []float64) (float64, error) {
	n := float64(len(dx))
	var cov, vx, vy float64
	for i := range dx {
		cov += dx[i] * dy[i]
		vx += dx[i] * dx[i]
		vy += dy[i] * dy[i]
	}
	cov /= n
	vx /= n
	vy /= n
	if ix.opts.BiasCorr && n > 1 {
		cov *= n / (n - 1)
		vx *= n / (n - 1)
	}

	switch ix.mode {
	case Covariance:
		return cov, nil

	case Correlation:
		if vx == 0 || vy == 0 {
			return 0, ErrDegenerate
		}

		return cov / math.Sqrt(vx*vy), nil

	case Continuum:
		if vx == 0 && ix.opts.Alpha != 1 {
			return 0, ErrDegenerate
		}

		return cov * cov * math.Pow(vx, ix.opts.Alpha-1), nil

	default:
		return 0, ErrUnknownMode
	}
}

// deviations returns x − location(x) for the configured center.
func deviations(x []float64, center string) []float64 {
	var loc float64
	if center == "median" {
		loc = median(x)
	} else {
		loc = stat.Mean(x, nil)
	}
	d := make([]float64, len(x))
	for i, v := range x {
		d[i] = v - loc
	}

	return d
}

// absKeys returns |d_i| as trimming keys.
func absKeys(d []float64) []float64 {
	k := make([]float64, len(d))
	for i, v := range d {
		k[i] = math.Abs(v)
	}

	return k
}

// keepIndices returns the indices of the n − ⌊trim·n⌋ observations with
// the smallest keys, in stable original order.
func keepIndices(keys []float64, trim float64) []int {
	n := len(keys)
	drop := int(trim * float64(n))
	if drop == 0 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return all
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	kept := idx[:n-drop]
	sort.Ints(kept)

	return kept
}

// trimBy filters d down to the kept observations.
func trimBy(d, keys []float64, trim float64) []float64 {
	keep := keepIndices(keys, trim)
	out := make([]float64, len(keep))
	for i, j := range keep {
		out[i] = d[j]
	}

	return out
}

// median returns the sample median of x without modifying it; even
// lengths average the two middle order statistics.
func median(x []float64) float64 {
	tmp := make([]float64, len(x))
	copy(tmp, x)
	sort.Float64s(tmp)
	n := len(tmp)
	if n%2 == 1 {
		return tmp[n/2]
	}

	return (tmp[n/2-1] + tmp[n/2]) / 2
}
