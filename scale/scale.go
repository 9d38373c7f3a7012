package scale

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// madConsistency rescales the median absolute deviation so it estimates
// the standard deviation at the normal distribution.
const madConsistency = 1.4826

// minScale floors degenerate column scales to 1 so constant columns
// pass through unscaled instead of dividing by zero.
const minScale = 1e-12

var (
	// ErrCenterEstimator indicates a location estimator other than
	// "mean" or "median".
	ErrCenterEstimator = errors.New(`scale: center must be "mean" or "median"`)

	// ErrScaleEstimator indicates a scale estimator other than "std",
	// "mad" or "none".
	ErrScaleEstimator = errors.New(`scale: scale must be "std", "mad" or "none"`)

	// ErrBadTrimming indicates a trimming fraction outside [0, 0.5).
	ErrBadTrimming = errors.New("scale: trimming must be in [0, 0.5)")

	// ErrNoData indicates a nil or empty input matrix.
	ErrNoData = errors.New("scale: input matrix is empty")

	// ErrNotFitted indicates Apply before Fit.
	ErrNotFitted = errors.New("scale: scaler has not been fitted")

	// ErrDimensionMismatch indicates a column count differing from the
	// fitted one.
	ErrDimensionMismatch = errors.New("scale: column count differs from fitted data")
)

// Scaler centers and scales matrix columns. Fit estimates and retains
// the per-column location and scale; Apply replays the transform.
type Scaler struct {
	// Center is the location estimator: "mean" or "median".
	Center string

	// Scale is the scale estimator: "std", "mad" or "none".
	Scale string

	// Loc and Sca are the fitted per-column location and scale vectors.
	Loc, Sca []float64
}

// New validates the estimator names and returns an unfitted Scaler.
func New(center, scaleKind string) (*Scaler, error) {
	if center != "mean" && center != "median" {
		return nil, ErrCenterEstimator
	}
	if scaleKind != "std" && scaleKind != "mad" && scaleKind != "none" {
		return nil, ErrScaleEstimator
	}

	return &Scaler{Center: center, Scale: scaleKind}, nil
}

// Identity returns a fitted no-op Scaler for p columns (zero locations,
// unit scales), used when centering is disabled but downstream code
// still needs a transform object.
func Identity(p int) *Scaler {
	s := &Scaler{Center: "mean", Scale: "none", Loc: make([]float64, p), Sca: make([]float64, p)}
	for j := range s.Sca {
		s.Sca[j] = 1
	}

	return s
}

// Fit estimates location and scale per column (with the given trimming
// fraction) and returns the transformed copy of x. x is not mutated.
func (s *Scaler) Fit(x *mat.Dense, trimming float64) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNoData
	}
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return nil, ErrNoData
	}
	if trimming < 0 || trimming >= 0.5 {
		return nil, ErrBadTrimming
	}

	s.Loc = make([]float64, p)
	s.Sca = make([]float64, p)
	out := mat.NewDense(n, p, nil)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		loc, sca := s.estimate(col, trimming)
		s.Loc[j] = loc
		s.Sca[j] = sca
		for i := 0; i < n; i++ {
			out.Set(i, j, (col[i]-loc)/sca)
		}
	}

	return out, nil
}

// Apply replays the fitted transform on new data.
func (s *Scaler) Apply(x *mat.Dense) (*mat.Dense, error) {
	if s.Loc == nil {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrNoData
	}
	n, p := x.Dims()
	if p != len(s.Loc) {
		return nil, ErrDimensionMismatch
	}

	out := mat.NewDense(n, p, nil)
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			out.Set(i, j, (x.At(i, j)-s.Loc[j])/s.Sca[j])
		}
	}

	return out, nil
}

// estimate computes one column's location and scale.
func (s *Scaler) estimate(col []float64, trimming float64) (loc, sca float64) {
	if s.Center == "median" {
		loc = median(col)
	} else {
		loc = TrimmedMean(col, trimming)
	}

	switch s.Scale {
	case "mad":
		dev := make([]float64, len(col))
		for i, v := range col {
			dev[i] = math.Abs(v - loc)
		}
		sca = madConsistency * median(dev)
	case "std":
		sca = trimmedStd(col, loc, trimming)
	default:
		sca = 1
	}
	if sca < minScale {
		sca = 1
	}

	return loc, sca
}

// TrimmedMean cuts ⌊trim·n⌋ order statistics from each tail and
// averages the rest. Exported because the deflation controller also
// uses it for the model intercept.
func TrimmedMean(x []float64, trim float64) float64 {
	tmp := make([]float64, len(x))
	copy(tmp, x)
	sort.Float64s(tmp)
	cut := int(trim * float64(len(tmp)))
	kept := tmp[cut : len(tmp)-cut]

	return stat.Mean(kept, nil)
}

// Median returns the sample median (middle order statistics averaged
// for even lengths).
func Median(x []float64) float64 { return median(x) }

// trimmedStd is the sample standard deviation around loc after cutting
// ⌊trim·n⌋ of the largest absolute deviations.
func trimmedStd(x []float64, loc, trim float64) float64 {
	dev := make([]float64, len(x))
	for i, v := range x {
		dev[i] = math.Abs(v - loc)
	}
	sort.Float64s(dev)
	kept := dev[:len(dev)-int(trim*float64(len(dev)))]
	var ss float64
	for _, d := range kept {
		ss += d * d
	}
	if len(kept) < 2 {
		return 0
	}

	return math.Sqrt(ss / float64(len(kept)-1))
}

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
