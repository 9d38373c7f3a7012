// Package ppdire - estimator core: Model, New and the deflation loop.
//
// Design principles:
//   - Deterministic: all randomness-free; identical inputs and options
//     give identical models.
//   - Fail fast: configuration errors at New, shape errors before any
//     numeric work; the caller's matrices are never mutated.
//   - Silent iteration caps: non-convergence of the grid search is a
//     property (SweepCounts/Converged), never an error.
package ppdire

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ppgrid/grid"
	"github.com/katalvlaran/ppgrid/moment"
	"github.com/katalvlaran/ppgrid/regress"
	"github.com/katalvlaran/ppgrid/scale"
)

// The built-in indices satisfy the optimizer contract.
var _ grid.Index = (*moment.Index)(nil)

// Model is a projection pursuit dimension reduction estimator. Fields
// suffixed with matrices/vectors are populated by Fit; a Model is not
// safe for concurrent Fit calls, but fitted models may be shared for
// Predict/Transform.
type Model struct {
	opts  Options
	index grid.Index

	fitted   bool
	twoBlock bool
	nVars    int

	// Weights (W, p×h), Loadings (P, p×h), Rotations (R, p×h) and
	// Scores (T, n×h) of the extracted components.
	Weights   *mat.Dense
	Loadings  *mat.Dense
	Rotations *mat.Dense
	Scores    *mat.Dense

	// Coef (raw-scale, p×h) and CoefScaled hold the regression
	// coefficients after each component count 1..h; Intercept and
	// InterceptScaled complete the linear model. Present only after a
	// two-block fit.
	Coef            *mat.Dense
	CoefScaled      *mat.Dense
	Intercept       float64
	InterceptScaled float64
	YLoadings       []float64
	Fitted          []float64
	Residuals       []float64

	// MaxObjective is the projection index optimum per component;
	// CritValues the per-component association with the response;
	// ExplainedVar the per-component share of the preprocessed data's
	// squared Frobenius norm.
	MaxObjective []float64
	CritValues   []float64
	ExplainedVar []float64

	// SweepCounts and Converged surface the outer-loop behavior of the
	// grid search per component: hitting the sweep cap is silent by
	// design and visible only here.
	SweepCounts []int
	Converged   []bool

	// Location/scale vectors of the fitted preprocessing transform.
	XLoc, XSca []float64
	YLoc, YSca float64

	// Scaling is the fitted preprocessing transform, reused by Transform.
	Scaling *scale.Scaler

	// Whitening holds the retained whitening matrix K when
	// Options.WhitenData is set; Mixing holds pinv(W) when
	// FitOptions.Mixing is set.
	Whitening *mat.Dense
	Mixing    *mat.Dense

	// X0 and Y0 are copies of the training inputs (Options.KeepInput).
	X0 *mat.Dense
	Y0 []float64

	// Warnings collects non-fatal diagnostics from the last Fit
	// (scaling disabled, kurtosis without whitening).
	Warnings []string
}

// New validates the configuration and returns an unfitted Model.
//
// Errors: ErrNilIndex, ErrCenterEstimator, ErrBadTrimming,
// ErrBadComponents.
func New(index grid.Index, opts Options) (*Model, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	if opts.Center == "" {
		opts.Center = DefaultCenter
	}
	if opts.Center != "mean" && opts.Center != "median" {
		return nil, ErrCenterEstimator
	}
	if opts.Trimming < 0 || opts.Trimming >= 0.5 {
		return nil, ErrBadTrimming
	}
	if opts.Components == 0 {
		opts.Components = DefaultComponents
	}
	if opts.Components < 1 {
		return nil, ErrBadComponents
	}

	return &Model{opts: opts, index: index}, nil
}

// Options returns the validated configuration.
func (m *Model) Options() Options { return m.opts }

// Fit extracts Options.Components latent components from X and, when y
// is non-nil (two-block mode), regresses y on the running scores.
// Returns the score matrix T (n×h). X and y are never mutated;
// deflation runs on a private copy.
//
// Stage overview:
//
//	Stage 1 - shape checks, SVD compression for flat tables,
//	          centering/scaling, optional whitening, y preprocessing.
//	Stage 2 - per component: grid search on the residual, score/loading
//	          computation, deflation, rotation rebuild, regression step.
//	Stage 3 - back-mapping of compressed estimates, intercepts, fitted
//	          values and residuals on the raw scale, mixing matrix.
func (m *Model) Fit(x *mat.Dense, y []float64, fo FitOptions) (*mat.Dense, error) {
	// Stage 1 - validation before any numeric work.
	if x == nil {
		return nil, ErrNoData
	}
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return nil, ErrNoData
	}
	if p < 2 {
		return nil, ErrTooFewVariables
	}
	h := m.opts.Components
	if h > n || h > p {
		return nil, ErrComponentsRange
	}
	m.twoBlock = y != nil
	if m.twoBlock && len(y) != n {
		return nil, ErrRowMismatch
	}
	fo = fo.withDefaults()
	if err := fo.validate(); err != nil {
		return nil, err
	}

	centerData := m.opts.CenterData
	scaleData := m.opts.ScaleData
	whiten := m.opts.WhitenData
	compress := fo.Compression

	m.Warnings = nil
	if whiten {
		if p > n {
			return nil, ErrWhitenShape
		}
		// Whitening is only meaningful on centered, unscaled data.
		centerData, scaleData, compress = true, false, false
	}
	scaleKind := "none"
	if scaleData {
		scaleKind = "std"
		if m.opts.Center == "median" {
			scaleKind = "mad"
		}
	} else {
		m.warn("scaling disabled: convergence to the correct optimum is not guaranteed")
	}
	if mi, ok := m.index.(interface{ Mode() moment.Mode }); ok {
		if mi.Mode() == moment.Kurtosis && !whiten {
			m.warn("kurtosis index without whitening: results may be unreliable, consider Options.WhitenData")
		}
	}

	if m.opts.KeepInput {
		m.X0 = mat.DenseCopyOf(x)
		if m.twoBlock {
			m.Y0 = append([]float64(nil), y...)
		}
	}

	// Private working copy; deflation never touches the caller's data.
	work := mat.DenseCopyOf(x)
	pw := p

	var compressBack *mat.Dense
	compressed := false
	if p > n && compress {
		u, _, err := thinSVD(work.T())
		if err != nil {
			return nil, err
		}
		var cw mat.Dense
		cw.Mul(work, u)
		work = mat.DenseCopyOf(&cw)
		compressBack = u
		_, pw = work.Dims()
		compressed = true
	}

	// Centering and scaling on the working (possibly compressed) data.
	var xs *mat.Dense
	if centerData {
		sc, err := scale.New(m.opts.Center, scaleKind)
		if err != nil {
			return nil, err
		}
		xs, err = sc.Fit(work, m.opts.Trimming)
		if err != nil {
			return nil, err
		}
		m.Scaling = sc
	} else {
		xs = work
		m.Scaling = scale.Identity(pw)
	}
	m.XLoc = m.Scaling.Loc
	m.XSca = m.Scaling.Sca

	// Whitening: K = U/S from the thin SVD of the centered data.
	var whitenK *mat.Dense
	if whiten {
		u, s, err := thinSVD(xs.T())
		if err != nil {
			return nil, err
		}
		ur, uc := u.Dims()
		whitenK = mat.NewDense(ur, uc, nil)
		for j := 0; j < uc; j++ {
			if s[j] == 0 {
				return nil, ErrNumeric
			}
			for i := 0; i < ur; i++ {
				whitenK.Set(i, j, u.At(i, j)/s[j])
			}
		}
		var wh mat.Dense
		wh.Mul(xs, whitenK)
		wh.Scale(math.Sqrt(float64(pw)), &wh)
		xs = mat.DenseCopyOf(&wh)
		m.Whitening = whitenK
	}

	// Response preprocessing.
	var ys []float64
	if m.twoBlock {
		if centerData {
			ysc, err := scale.New(m.opts.Center, scaleKind)
			if err != nil {
				return nil, err
			}
			ymat := mat.NewDense(n, 1, nil)
			ymat.SetCol(0, y)
			ysm, err := ysc.Fit(ymat, m.opts.Trimming)
			if err != nil {
				return nil, err
			}
			ys = make([]float64, n)
			mat.Col(ys, 0, ysm)
			m.YLoc, m.YSca = ysc.Loc[0], ysc.Sca[0]
		} else {
			ys = append([]float64(nil), y...)
			m.YLoc, m.YSca = 0, 1
		}
	}

	// Stage 2 - component extraction by deflation.
	weights := mat.NewDense(pw, h, nil)
	loadings := mat.NewDense(pw, h, nil)
	scores := mat.NewDense(n, h, nil)
	coefs := mat.NewDense(pw, h, nil)
	coefsScaled := mat.NewDense(pw, h, nil)
	yLoadings := make([]float64, h)
	maxObj := make([]float64, h)
	critVals := make([]float64, h)
	explained := make([]float64, h)
	sweepCounts := make([]int, h)
	converged := make([]bool, h)

	gopts := grid.Options{
		NDir:     fo.NDir,
		MaxIter:  fo.MaxIter,
		Tol:      grid.DefaultTol,
		SquarePI: m.opts.SquarePI,
		OptRange: [2]float64{-1, 1},
		Workers:  fo.Workers,
	}

	e := mat.DenseCopyOf(xs)
	xsNormSq := frobSq(xs)
	var rot *mat.Dense

	ti := make([]float64, n)
	pi := make([]float64, pw)
	for i := 0; i < h; i++ {
		res, err := grid.Reduce(e, ys, m.index, gopts)
		if err != nil {
			return nil, err
		}
		wi := res.Direction
		maxObj[i] = res.Objective
		sweepCounts[i] = res.Sweeps
		converged[i] = res.Converged

		// Score t = E·w, loading p = Eᵀt/‖t‖².
		mulVec(ti, e, wi)
		nti2 := floats.Dot(ti, ti)
		if nti2 == 0 {
			return nil, ErrNumeric
		}
		mulVecT(pi, e, ti)
		floats.Scale(1/nti2, pi)

		// Association of the component with the response, evaluated in
		// the current search space before deflation.
		if m.twoBlock {
			v, err := m.index.Eval(ti, ys)
			if err != nil {
				return nil, err
			}
			if m.opts.SquarePI {
				v *= v
			}
			critVals[i] = v
		}

		// Un-whiten the weight before storing: renormalize, then map
		// back through the retained whitening transform.
		wstore := wi
		if whiten {
			wn := unitOf(wi)
			wstore = make([]float64, pw)
			mulVec(wstore, whitenK, wn)
		}
		weights.SetCol(i, wstore)
		scores.SetCol(i, ti)
		loadings.SetCol(i, pi)
		explained[i] = nti2 / xsNormSq

		// Deflate the rank-one component from the residual.
		var rankOne mat.Dense
		rankOne.Outer(1, mat.NewVecDense(n, ti), mat.NewVecDense(pw, pi))
		e.Sub(e, &rankOne)

		// Rebuild rotations R = W·pinv(PᵀW) over components 1..i+1.
		wSub := weights.Slice(0, pw, 0, i+1)
		pSub := loadings.Slice(0, pw, 0, i+1)
		var ptw mat.Dense
		ptw.Mul(pSub.T(), wSub)
		inv, err := pseudoInverse(&ptw)
		if err != nil {
			return nil, err
		}
		rot = mat.NewDense(pw, i+1, nil)
		rot.Mul(wSub, inv)

		// Regression of the response on the running score.
		if m.twoBlock {
			var ci float64
			switch fo.Regression {
			case RegOLS:
				ci = floats.Dot(ti, ys) / nti2
			case RegRobust:
				ci, err = regress.Robust(ti, ys, regress.RobustOptions{
					Fun:    fo.RobustFun,
					ProbP1: fo.ProbP1,
					ProbP2: fo.ProbP2,
					ProbP3: fo.ProbP3,
					Center: m.opts.Center,
					Scale:  scaleKind,
				})
			case RegQuantile:
				// The quantile fit regresses the raw response.
				ci, err = regress.Quantile(ti, y, fo.Quantile)
			}
			if err != nil {
				return nil, err
			}
			yLoadings[i] = ci

			bvec := make([]float64, pw)
			mulVec(bvec, rot, yLoadings[:i+1])
			coefsScaled.SetCol(i, bvec)
			braw := make([]float64, pw)
			for j := range braw {
				braw[j] = bvec[j] * m.YSca / m.XSca[j]
			}
			coefs.SetCol(i, braw)
		}
	}

	// Stage 3 - re-adjust estimates to original dimensions after
	// compression, then finalize the linear model.
	xsFinal := xs
	if compressed {
		weights = backMap(compressBack, weights)
		loadings = backMap(compressBack, loadings)
		rot = backMap(compressBack, rot)
		coefs = backMap(compressBack, coefs)
		coefsScaled = backMap(compressBack, coefsScaled)
		if centerData {
			sc, err := scale.New(m.opts.Center, scaleKind)
			if err != nil {
				return nil, err
			}
			xsFinal, err = sc.Fit(x, m.opts.Trimming)
			if err != nil {
				return nil, err
			}
			m.Scaling = sc
			m.XLoc, m.XSca = sc.Loc, sc.Sca
		} else {
			m.Scaling = scale.Identity(p)
			m.XLoc, m.XSca = m.Scaling.Loc, m.Scaling.Sca
			xsFinal = x
		}
	}

	m.Weights = weights
	m.Loadings = loadings
	m.Rotations = rot
	m.Scores = scores
	m.MaxObjective = maxObj
	m.CritValues = critVals
	m.ExplainedVar = explained
	m.SweepCounts = sweepCounts
	m.Converged = converged

	if fo.Mixing {
		mix, err := pseudoInverse(weights)
		if err != nil {
			return nil, err
		}
		m.Mixing = mix
	}

	if m.twoBlock {
		if err := m.finalizeRegression(x, y, ys, xsFinal, coefs, coefsScaled, yLoadings, scaleKind); err != nil {
			return nil, err
		}
	}

	m.nVars = p
	m.fitted = true

	return mat.DenseCopyOf(scores), nil
}

// finalizeRegression computes intercepts, fitted values and residuals
// on the raw scale from the final-component coefficient vector.
func (m *Model) finalizeRegression(x *mat.Dense, y, ys []float64, xsFinal, coefs, coefsScaled *mat.Dense, yLoadings []float64, scaleKind string) error {
	n, _ := x.Dims()
	pOut, h := coefs.Dims()

	bi := make([]float64, pOut)
	mat.Col(bi, h-1, coefs)

	resid0 := make([]float64, n)
	mulVec(resid0, x, bi)
	for i := range resid0 {
		resid0[i] = y[i] - resid0[i]
	}
	var intercept float64
	if m.opts.Center == "median" {
		intercept = scale.Median(resid0)
	} else {
		intercept = scale.TrimmedMean(resid0, m.opts.Trimming)
	}

	yfit := make([]float64, n)
	mulVec(yfit, x, bi)
	floats.AddConst(intercept, yfit)
	resid := make([]float64, n)
	for i := range resid {
		resid[i] = y[i] - yfit[i]
	}

	b0 := intercept
	if scaleKind != "none" {
		sv := make([]float64, n)
		mulVec(sv, xsFinal, bi)
		for i := range sv {
			sv[i] = ys[i] - sv[i]
		}
		if m.opts.Center == "median" {
			b0 = scale.Median(sv)
		} else {
			b0 = scale.TrimmedMean(sv, 0)
		}
	}

	m.Coef = coefs
	m.CoefScaled = coefsScaled
	m.Intercept = intercept
	m.InterceptScaled = b0
	m.YLoadings = yLoadings
	m.Fitted = yfit
	m.Residuals = resid

	return nil
}

// backMap lifts a compressed-space matrix back to original dimensions.
func backMap(v, a *mat.Dense) *mat.Dense {
	vr, _ := v.Dims()
	_, ac := a.Dims()
	out := mat.NewDense(vr, ac, nil)
	out.Mul(v, a)

	return out
}

// warn records a non-fatal diagnostic on the model.
func (m *Model) warn(msg string) { m.Warnings = append(m.Warnings, msg) }
