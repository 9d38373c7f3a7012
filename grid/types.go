package grid

// Index is the projection-index contract: a scalar functional scoring
// how interesting a one-dimensional projection of the data is.
//
// Eval receives the projected score vector and, for two-block indices,
// the response vector (nil in one-block mode). Implementations MUST be
// deterministic and side-effect-free for identical inputs; the
// optimizer's tie-breaking and convergence guarantees depend on it.
// All built-in indices live in the moment package; any user type
// satisfying this interface can drive the search.
type Index interface {
	Eval(score, resp []float64) (float64, error)
}

// IndexFunc adapts a plain function to the Index interface.
type IndexFunc func(score, resp []float64) (float64, error)

// Eval calls f.
func (f IndexFunc) Eval(score, resp []float64) (float64, error) { return f(score, resp) }

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultNDir is the number of angular candidates scanned per plane
	// search when the caller does not specify a resolution.
	DefaultNDir = 100

	// DefaultMaxIter caps the number of full variable sweeps in the
	// outer convergence loop of Reduce.
	DefaultMaxIter = 10000

	// DefaultTol is the relative objective change below which the
	// outer loop is declared converged.
	DefaultTol = 1e-4

	// DefaultWorkers evaluates candidates sequentially. Values > 1
	// parallelize candidate evaluation inside one plane search;
	// successive folds stay sequential.
	DefaultWorkers = 1
)

// Options configures a grid search.
//
// Fields:
//   - NDir     - angular grid resolution (candidates per plane search).
//   - MaxIter  - outer-loop sweep cap for Reduce. Exceeding it is NOT
//     an error: the best combination found so far is returned and
//     Result.Converged reports false.
//   - Tol      - relative objective-change tolerance for convergence.
//   - SquarePI - square the index value before comparison. Changes the
//     optimum when the index can be negative (e.g. excess kurtosis).
//   - OptRange - signed bounds of the optimization range on the unit
//     circle. The default (-1, 1) spans the full sign-sector; narrower
//     ranges support correlation-like indices bounded away from ±1.
//   - Workers  - parallel candidate evaluators per plane search.
type Options struct {
	NDir     int
	MaxIter  int
	Tol      float64
	SquarePI bool
	OptRange [2]float64
	Workers  int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NDir:     DefaultNDir,
		MaxIter:  DefaultMaxIter,
		Tol:      DefaultTol,
		SquarePI: false,
		OptRange: [2]float64{-1, 1},
		Workers:  DefaultWorkers,
	}
}

// SweepStat records one outer-loop sweep of Reduce.
type SweepStat struct {
	// Sweep is the 1-based sweep number.
	Sweep int

	// Objective is the index value of the full combination after the sweep.
	Objective float64

	// Best is the best objective tracked so far (non-decreasing).
	Best float64
}

// Result holds the outcome of a grid search.
type Result struct {
	// Direction is the optimal combination vector, unit Euclidean norm
	// under the default norm constraint.
	Direction []float64

	// Objective is the projection index value attained by Direction
	// (squared when Options.SquarePI is set).
	Objective float64

	// Sweeps is the number of outer-loop sweeps performed (0 for a
	// plane search on two variables).
	Sweeps int

	// Converged reports whether the outer loop met the relative
	// tolerance before hitting MaxIter. Always true for p == 2.
	Converged bool

	// Trace is the per-sweep objective record, in sweep order.
	Trace []SweepStat

	// Subdivisions is the per-variable refinement subdivision schedule
	// min(2^j, 2^round(log2 MaxIter)), recorded for diagnostics.
	// Nil for p == 2.
	Subdivisions []int
}

// validate checks Options against the sentinel set.
func (o Options) validate() error {
	if o.NDir < 2 {
		return ErrBadDirections
	}
	if o.MaxIter < 1 {
		return ErrBadMaxIter
	}
	if o.Tol <= 0 {
		return ErrBadTolerance
	}

	return nil
}
