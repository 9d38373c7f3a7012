package moment

import "math"

// Mode selects the statistical functional computed by an Index.
type Mode int

const (
	// Variance is the (optionally trimmed) second central moment.
	Variance Mode = iota

	// Skewness is the third standardized moment.
	Skewness

	// Kurtosis is the EXCESS kurtosis (fourth standardized moment − 3).
	Kurtosis

	// Covariance is the central cross-moment of score and response.
	Covariance

	// Correlation is the Pearson correlation of score and response.
	Correlation

	// Continuum is cov(score,resp)² · var(score)^(Alpha−1), the
	// continuum-regression objective.
	Continuum
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Variance:
		return "variance"
	case Skewness:
		return "skewness"
	case Kurtosis:
		return "kurtosis"
	case Covariance:
		return "covariance"
	case Correlation:
		return "correlation"
	case Continuum:
		return "continuum"
	default:
		return "unknown"
	}
}

// TwoBlock reports whether the mode needs a response vector.
func (m Mode) TwoBlock() bool {
	return m == Covariance || m == Correlation || m == Continuum
}

// Default configuration values.
const (
	// DefaultCenter locates moments at the mean.
	DefaultCenter = "mean"

	// DefaultTrimming keeps every observation.
	DefaultTrimming = 0.0

	// DefaultAlpha is the neutral continuum coefficient.
	DefaultAlpha = 1.0

	// DefaultDMetric is the only supported distance metric.
	DefaultDMetric = "euclidean"
)

// Options configures an Index.
//
// Fields:
//   - Center   - location estimate: "mean" or "median".
//   - Trimming - fraction (in [0, 0.5)) of extreme observations dropped
//     before the moments are computed.
//   - Alpha    - continuum coefficient; only the Continuum mode reads it.
//   - BiasCorr - apply finite-sample bias corrections.
//   - DMetric  - internal distance metric; "euclidean" only.
type Options struct {
	Center   string
	Trimming float64
	Alpha    float64
	BiasCorr bool
	DMetric  string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Center:   DefaultCenter,
		Trimming: DefaultTrimming,
		Alpha:    DefaultAlpha,
		BiasCorr: false,
		DMetric:  DefaultDMetric,
	}
}

// validate checks Options against the sentinel set.
func (o Options) validate() error {
	if o.Center != "mean" && o.Center != "median" {
		return ErrCenterEstimator
	}
	if o.Trimming < 0 || o.Trimming >= 0.5 {
		return ErrBadTrimming
	}
	if math.IsNaN(o.Alpha) || math.IsInf(o.Alpha, 0) {
		return ErrBadAlpha
	}
	if o.DMetric != "" && o.DMetric != DefaultDMetric {
		return ErrDistanceMetric
	}

	return nil
}
