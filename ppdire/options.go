package ppdire

// RegMethod selects the regression-on-scores estimator.
type RegMethod int

const (
	// RegOLS is the closed-form least-squares fit of the response on a
	// score vector.
	RegOLS RegMethod = iota

	// RegRobust is M-estimation with a robustness weight function and
	// three probability cutoffs.
	RegRobust

	// RegQuantile is quantile regression at FitOptions.Quantile.
	RegQuantile
)

// Estimator defaults.
const (
	// DefaultComponents extracts a single latent component.
	DefaultComponents = 1

	// DefaultCenter locates data at the column means.
	DefaultCenter = "mean"

	// DefaultNDir is the angular grid resolution used by Fit.
	DefaultNDir = 1000

	// DefaultMaxIter caps the outer-loop sweeps per component.
	DefaultMaxIter = 10000

	// DefaultQuantile is the median for quantile regression.
	DefaultQuantile = 0.5
)

// Options configures the estimator lifecycle. Validated by New.
//
// Fields:
//   - Components - number of latent components h; must not exceed
//     min(n, p) at fit time.
//   - Trimming   - fraction of extreme observations downweighted in the
//     preprocessing location/scale estimates, in [0, 0.5).
//   - Center     - "mean" or "median"; the matching scale estimate
//     (std or MAD) is used when ScaleData is set.
//   - CenterData / ScaleData / WhitenData - preprocessing pipeline
//     switches. Whitening forces centering on, scaling off and disables
//     compression. Disabling scaling is legal but warned about:
//     convergence to the correct optimum is no longer guaranteed.
//   - SquarePI   - square the projection index before comparison;
//     changes the optimum when the index can be negative.
//   - KeepInput  - retain copies of the training inputs on the model.
type Options struct {
	Components int
	Trimming   float64
	Center     string
	CenterData bool
	ScaleData  bool
	WhitenData bool
	SquarePI   bool
	KeepInput  bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Components: DefaultComponents,
		Trimming:   0,
		Center:     DefaultCenter,
		CenterData: true,
		ScaleData:  true,
		WhitenData: false,
		SquarePI:   false,
		KeepInput:  true,
	}
}

// FitOptions configures a single Fit call.
//
// Fields:
//   - NDir        - angular candidates per plane search (default 1000).
//   - MaxIter     - outer-loop sweep cap per component (default 10000);
//     exceeding it is silent, see Model.Converged.
//   - Compression - SVD compression for flat tables (p > n).
//   - Mixing      - also estimate the mixing matrix pinv(W) (ICA).
//   - Regression  - regression-on-scores method when y is present.
//   - Quantile    - level for RegQuantile, in (0, 1).
//   - RobustFun / ProbP1..ProbP3 - M-estimation weight function and
//     probability cutoffs for RegRobust.
//   - Workers     - parallel candidate evaluators inside plane searches.
type FitOptions struct {
	NDir        int
	MaxIter     int
	Compression bool
	Mixing      bool
	Regression  RegMethod
	Quantile    float64
	RobustFun   string
	ProbP1      float64
	ProbP2      float64
	ProbP3      float64
	Workers     int
}

// DefaultFitOptions returns the documented defaults.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		NDir:       DefaultNDir,
		MaxIter:    DefaultMaxIter,
		Regression: RegOLS,
		Quantile:   DefaultQuantile,
		RobustFun:  "Hampel",
		ProbP1:     0.95,
		ProbP2:     0.975,
		ProbP3:     0.99,
		Workers:    1,
	}
}

// withDefaults fills zero values so a literal FitOptions{} behaves like
// DefaultFitOptions().
func (fo FitOptions) withDefaults() FitOptions {
	if fo.NDir == 0 {
		fo.NDir = DefaultNDir
	}
	if fo.MaxIter == 0 {
		fo.MaxIter = DefaultMaxIter
	}
	if fo.Quantile == 0 {
		fo.Quantile = DefaultQuantile
	}
	if fo.RobustFun == "" {
		fo.RobustFun = "Hampel"
	}
	if fo.ProbP1 == 0 {
		fo.ProbP1 = 0.95
	}
	if fo.ProbP2 == 0 {
		fo.ProbP2 = 0.975
	}
	if fo.ProbP3 == 0 {
		fo.ProbP3 = 0.99
	}
	if fo.Workers == 0 {
		fo.Workers = 1
	}

	return fo
}

// validate checks FitOptions against the sentinel set.
func (fo FitOptions) validate() error {
	if fo.Regression < RegOLS || fo.Regression > RegQuantile {
		return ErrBadRegression
	}
	if fo.Quantile <= 0 || fo.Quantile >= 1 {
		return ErrBadQuantile
	}

	return nil
}
