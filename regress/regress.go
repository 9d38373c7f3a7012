package regress

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrEmptyInput indicates empty score or response vectors.
	ErrEmptyInput = errors.New("regress: empty input")

	// ErrLengthMismatch indicates score and response of different lengths.
	ErrLengthMismatch = errors.New("regress: score and response lengths differ")

	// ErrDegenerate indicates an all-zero score vector; no slope exists.
	ErrDegenerate = errors.New("regress: score vector has zero norm")

	// ErrUnknownFunction indicates an unrecognized robustness function.
	ErrUnknownFunction = errors.New(`regress: robust function must be "Huber", "Hampel" or "Fair"`)

	// ErrBadCutoffs indicates probability cutoffs outside (0, 1) or not
	// strictly increasing.
	ErrBadCutoffs = errors.New("regress: probability cutoffs must be increasing in (0, 1)")

	// ErrBadQuantile indicates a quantile level outside (0, 1).
	ErrBadQuantile = errors.New("regress: quantile level must be in (0, 1)")
)

// Robust defaults.
const (
	DefaultRobustFun = "Hampel"
	DefaultProbP1    = 0.95
	DefaultProbP2    = 0.975
	DefaultProbP3    = 0.99
	DefaultMaxIter   = 100
	DefaultTol       = 1e-10
)

// RobustOptions configures the M-estimation regression.
//
// Fields:
//   - Fun              - weight function: "Huber", "Hampel" or "Fair".
//   - ProbP1..ProbP3   - probability levels turned into standard-normal
//     quantile cutoffs; Hampel uses all three, Huber and Fair only the
//     first.
//   - Center, Scale    - residual standardization: "median"/"mad" for a
//     robust scale, "mean"/"std" for the classical one.
//   - MaxIter, Tol     - IRLS iteration cap and coefficient tolerance.
type RobustOptions struct {
	Fun                    string
	ProbP1, ProbP2, ProbP3 float64
	Center, Scale          string
	MaxIter                int
	Tol                    float64
}

// DefaultRobustOptions returns the documented defaults with a robust
// median/MAD residual scale.
func DefaultRobustOptions() RobustOptions {
	return RobustOptions{
		Fun:     DefaultRobustFun,
		ProbP1:  DefaultProbP1,
		ProbP2:  DefaultProbP2,
		ProbP3:  DefaultProbP3,
		Center:  "median",
		Scale:   "mad",
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
	}
}

// OLS returns the least-squares slope of resp on score through the
// origin: Σty / Σt².
func OLS(score, resp []float64) (float64, error) {
	if err := checkPair(score, resp); err != nil {
		return 0, err
	}
	den := floats.Dot(score, score)
	if den == 0 {
		return 0, ErrDegenerate
	}

	return floats.Dot(score, resp) / den, nil
}

// Robust returns the M-estimated slope of resp on score through the
// origin. Starting from the OLS fit, residuals are standardized by the
// configured scale estimate and downweighted by the chosen function;
// the weighted slope is re-fitted until it stabilizes.
func Robust(score, resp []float64, o RobustOptions) (float64, error) {
	if err := checkPair(score, resp); err != nil {
		return 0, err
	}
	if !(o.ProbP1 > 0 && o.ProbP1 < 1 && o.ProbP2 > o.ProbP1 && o.ProbP2 < 1 && o.ProbP3 > o.ProbP2 && o.ProbP3 < 1) {
		return 0, ErrBadCutoffs
	}
	weightFn, err := weightFunction(o.Fun)
	if err != nil {
		return 0, err
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	if o.Tol <= 0 {
		o.Tol = DefaultTol
	}

	norm := distuv.UnitNormal
	c1 := norm.Quantile(o.ProbP1)
	c2 := norm.Quantile(o.ProbP2)
	c3 := norm.Quantile(o.ProbP3)

	b, err := OLS(score, resp)
	if err != nil {
		return 0, err
	}

	n := len(score)
	res := make([]float64, n)
	for iter := 0; iter < o.MaxIter; iter++ {
		for i := range res {
			res[i] = resp[i] - b*score[i]
		}
		sigma := residualScale(res, o.Center, o.Scale)
		if sigma == 0 {
			// Perfect fit; nothing left to downweight.
			return b, nil
		}

		var num, den float64
		for i := range res {
			w := weightFn(math.Abs(res[i])/sigma, c1, c2, c3)
			num += w * score[i] * resp[i]
			den += w * score[i] * score[i]
		}
		if den == 0 {
			return b, nil
		}
		next := num / den
		if math.Abs(next-b) <= o.Tol*math.Max(1, math.Abs(b)) {
			return next, nil
		}
		b = next
	}

	return b, nil
}

// Quantile returns the slope minimizing the pinball loss
// Σ ρ_tau(resp − b·score) through the origin. The loss is piecewise
// linear in b with breakpoints at resp_i/score_i, so the exact optimum
// is found by scanning the breakpoints; ties prefer the smallest slope.
func Quantile(score, resp []float64, tau float64) (float64, error) {
	if err := checkPair(score, resp); err != nil {
		return 0, err
	}
	if tau <= 0 || tau >= 1 {
		return 0, ErrBadQuantile
	}

	cand := make([]float64, 0, len(score))
	for i := range score {
		if score[i] != 0 {
			cand = append(cand, resp[i]/score[i])
		}
	}
	if len(cand) == 0 {
		return 0, ErrDegenerate
	}
	sort.Float64s(cand)

	best := cand[0]
	bestLoss := math.Inf(1)
	for _, b := range cand {
		var loss float64
		for i := range score {
			r := resp[i] - b*score[i]
			if r >= 0 {
				loss += tau * r
			} else {
				loss += (tau - 1) * r
			}
		}
		if loss < bestLoss {
			bestLoss = loss
			best = b
		}
	}

	return best, nil
}

// weightFunction resolves the robustness weight w(a) for standardized
// absolute residual a and cutoffs c1 ≤ c2 ≤ c3.
func weightFunction(name string) (func(a, c1, c2, c3 float64) float64, error) {
	switch name {
	case "Huber":
		return func(a, c1, _, _ float64) float64 {
			if a <= c1 {
				return 1
			}

			return c1 / a
		}, nil
	case "Hampel":
		return func(a, c1, c2, c3 float64) float64 {
			switch {
			case a <= c1:
				return 1
			case a <= c2:
				return c1 / a
			case a <= c3:
				return c1 * (c3 - a) / ((c3 - c2) * a)
			default:
				return 0
			}
		}, nil
	case "Fair":
		return func(a, c1, _, _ float64) float64 {
			t := 1 + a/c1

			return 1 / (t * t)
		}, nil
	default:
		return nil, ErrUnknownFunction
	}
}

// residualScale estimates the residual spread for standardization.
func residualScale(res []float64, center, scaleKind string) float64 {
	var loc float64
	if center == "median" {
		loc = medianOf(res)
	} else {
		loc = floats.Sum(res) / float64(len(res))
	}

	if scaleKind == "mad" {
		dev := make([]float64, len(res))
		for i, v := range res {
			dev[i] = math.Abs(v - loc)
		}

		return 1.4826 * medianOf(dev)
	}

	var ss float64
	for _, v := range res {
		d := v - loc
		ss += d * d
	}
	if len(res) < 2 {
		return 0
	}

	return math.Sqrt(ss / float64(len(res)-1))
}

func medianOf(x []float64) float64 {
	tmp := make([]float64, len(x))
	copy(tmp, x)
	sort.Float64s(tmp)
	n := len(tmp)
	if n%2 == 1 {
		return tmp[n/2]
	}

	return (tmp[n/2-1] + tmp[n/2]) / 2
}

func checkPair(score, resp []float64) error {
	if len(score) == 0 || len(resp) == 0 {
		return ErrEmptyInput
	}
	if len(score) != len(resp) {
		return ErrLengthMismatch
	}

	return nil
}
