package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ppgrid/moment"
	"github.com/katalvlaran/ppgrid/ppdire"
)

// fitConfig mirrors the flag surface so runs can also be driven by a
// YAML file (--config); flags win over file values.
type fitConfig struct {
	Input       string  `yaml:"input"`
	ResponseCol int     `yaml:"response_col"`
	Index       string  `yaml:"index"`
	Components  int     `yaml:"components"`
	NDir        int     `yaml:"ndir"`
	MaxIter     int     `yaml:"maxiter"`
	Trimming    float64 `yaml:"trimming"`
	Alpha       float64 `yaml:"alpha"`
	Center      string  `yaml:"center"`
	ScaleData   bool    `yaml:"scale_data"`
	Whiten      bool    `yaml:"whiten"`
	SquarePI    bool    `yaml:"square_pi"`
	Regression  string  `yaml:"regression"`
	Quantile    float64 `yaml:"quantile"`
	Workers     int     `yaml:"workers"`
}

var (
	fitCfg     fitConfig
	configPath string
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a projection pursuit model to a CSV file",
	Long: `Fit reads a headerless numeric CSV file, optionally treats one column
as the response (two-block mode), and extracts the requested number of
latent components.

Example usage:
  ppgrid fit --input data.csv --index variance --components 2
  ppgrid fit --input data.csv --response-col 0 --index continuum --alpha 0.5
  ppgrid fit --config run.yaml`,
	RunE: runFit,
}

func init() {
	f := fitCmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML config file (flags override)")
	f.StringVar(&fitCfg.Input, "input", "", "input CSV file (required unless set in config)")
	f.IntVar(&fitCfg.ResponseCol, "response-col", -1, "response column index, -1 for one-block mode")
	f.StringVar(&fitCfg.Index, "index", "variance", "projection index: variance|skewness|kurtosis|covariance|correlation|continuum")
	f.IntVar(&fitCfg.Components, "components", 1, "number of components to extract")
	f.IntVar(&fitCfg.NDir, "ndir", ppdire.DefaultNDir, "angular grid resolution")
	f.IntVar(&fitCfg.MaxIter, "maxiter", ppdire.DefaultMaxIter, "outer-loop sweep cap")
	f.Float64Var(&fitCfg.Trimming, "trimming", 0, "trimming fraction in [0, 0.5)")
	f.Float64Var(&fitCfg.Alpha, "alpha", 1, "continuum coefficient")
	f.StringVar(&fitCfg.Center, "center", "mean", "location estimator: mean|median")
	f.BoolVar(&fitCfg.ScaleData, "scale", true, "scale columns (std or MAD, matching center)")
	f.BoolVar(&fitCfg.Whiten, "whiten", false, "whiten data before the search (ICA)")
	f.BoolVar(&fitCfg.SquarePI, "square-pi", false, "square the index before comparison")
	f.StringVar(&fitCfg.Regression, "regression", "ols", "regression on scores: ols|robust|quantile")
	f.Float64Var(&fitCfg.Quantile, "quantile", 0.5, "quantile level for --regression=quantile")
	f.IntVar(&fitCfg.Workers, "workers", 1, "parallel candidate evaluators")
}

func runFit(cmd *cobra.Command, _ []string) error {
	if configPath != "" {
		if err := loadConfig(cmd, configPath, &fitCfg); err != nil {
			return err
		}
	}
	if fitCfg.Input == "" {
		return fmt.Errorf("no input file: pass --input or set input in --config")
	}

	x, y, err := readCSV(fitCfg.Input, fitCfg.ResponseCol)
	if err != nil {
		return err
	}
	n, p := x.Dims()
	log.Info().Str("input", fitCfg.Input).Int("rows", n).Int("cols", p).
		Bool("two_block", y != nil).Msg("data loaded")

	mode, err := parseMode(fitCfg.Index)
	if err != nil {
		return err
	}
	mopts := moment.DefaultOptions()
	mopts.Center = fitCfg.Center
	mopts.Trimming = fitCfg.Trimming
	mopts.Alpha = fitCfg.Alpha
	idx, err := moment.New(mode, mopts)
	if err != nil {
		return err
	}

	model, err := ppdire.New(idx, ppdire.Options{
		Components: fitCfg.Components,
		Trimming:   fitCfg.Trimming,
		Center:     fitCfg.Center,
		CenterData: true,
		ScaleData:  fitCfg.ScaleData,
		WhitenData: fitCfg.Whiten,
		SquarePI:   fitCfg.SquarePI,
		KeepInput:  false,
	})
	if err != nil {
		return err
	}

	fo := ppdire.DefaultFitOptions()
	fo.NDir = fitCfg.NDir
	fo.MaxIter = fitCfg.MaxIter
	fo.Quantile = fitCfg.Quantile
	fo.Workers = fitCfg.Workers
	switch fitCfg.Regression {
	case "ols":
		fo.Regression = ppdire.RegOLS
	case "robust":
		fo.Regression = ppdire.RegRobust
	case "quantile":
		fo.Regression = ppdire.RegQuantile
	default:
		return fmt.Errorf("unknown regression method %q", fitCfg.Regression)
	}

	if _, err = model.Fit(x, y, fo); err != nil {
		return err
	}
	for _, w := range model.Warnings {
		log.Warn().Msg(w)
	}
	report(model)

	return nil
}

// report logs the fitted attributes at a glance.
func report(m *ppdire.Model) {
	h := len(m.MaxObjective)
	for i := 0; i < h; i++ {
		ev := log.Info().Int("component", i+1).
			Float64("objective", m.MaxObjective[i]).
			Float64("explained_var", m.ExplainedVar[i]).
			Int("sweeps", m.SweepCounts[i]).
			Bool("converged", m.Converged[i])
		w := mat.Col(nil, i, m.Weights)
		ev.Floats64("weights", w).Msg("component extracted")
	}
	if m.Coef != nil {
		p, _ := m.Coef.Dims()
		b := mat.Col(nil, h-1, m.Coef)
		log.Info().Floats64("coef", b).Float64("intercept", m.Intercept).
			Int("predictors", p).Msg("regression model")
	}
}

// loadConfig merges YAML values under explicitly set flags.
func loadConfig(cmd *cobra.Command, path string, cfg *fitConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fileCfg fitConfig
	if err = yaml.Unmarshal(raw, &fileCfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Flags set on the command line keep priority over the file.
	merged := fileCfg
	if cmd.Flags().Changed("input") {
		merged.Input = cfg.Input
	}
	if cmd.Flags().Changed("response-col") {
		merged.ResponseCol = cfg.ResponseCol
	} else if fileCfg.ResponseCol == 0 && !hasKey(raw, "response_col") {
		merged.ResponseCol = -1
	}
	if cmd.Flags().Changed("index") {
		merged.Index = cfg.Index
	} else if merged.Index == "" {
		merged.Index = "variance"
	}
	if cmd.Flags().Changed("components") {
		merged.Components = cfg.Components
	} else if merged.Components == 0 {
		merged.Components = 1
	}
	if cmd.Flags().Changed("ndir") {
		merged.NDir = cfg.NDir
	}
	if cmd.Flags().Changed("maxiter") {
		merged.MaxIter = cfg.MaxIter
	}
	if cmd.Flags().Changed("trimming") {
		merged.Trimming = cfg.Trimming
	}
	if cmd.Flags().Changed("alpha") {
		merged.Alpha = cfg.Alpha
	} else if merged.Alpha == 0 {
		merged.Alpha = 1
	}
	if cmd.Flags().Changed("center") {
		merged.Center = cfg.Center
	} else if merged.Center == "" {
		merged.Center = "mean"
	}
	if cmd.Flags().Changed("scale") {
		merged.ScaleData = cfg.ScaleData
	}
	if cmd.Flags().Changed("whiten") {
		merged.Whiten = cfg.Whiten
	}
	if cmd.Flags().Changed("square-pi") {
		merged.SquarePI = cfg.SquarePI
	}
	if cmd.Flags().Changed("regression") {
		merged.Regression = cfg.Regression
	} else if merged.Regression == "" {
		merged.Regression = "ols"
	}
	if cmd.Flags().Changed("quantile") {
		merged.Quantile = cfg.Quantile
	} else if merged.Quantile == 0 {
		merged.Quantile = 0.5
	}
	if cmd.Flags().Changed("workers") {
		merged.Workers = cfg.Workers
	}
	*cfg = merged

	return nil
}

// hasKey reports whether the raw YAML document mentions the key at all,
// distinguishing "response_col: 0" from an absent key.
func hasKey(raw []byte, key string) bool {
	var probe map[string]any
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return false
	}
	_, ok := probe[key]

	return ok
}

// parseMode maps the CLI spelling to a moment.Mode.
func parseMode(name string) (moment.Mode, error) {
	switch name {
	case "variance":
		return moment.Variance, nil
	case "skewness":
		return moment.Skewness, nil
	case "kurtosis":
		return moment.Kurtosis, nil
	case "covariance":
		return moment.Covariance, nil
	case "correlation":
		return moment.Correlation, nil
	case "continuum":
		return moment.Continuum, nil
	default:
		return 0, fmt.Errorf("unknown projection index %q", name)
	}
}

// readCSV loads a headerless numeric CSV; responseCol ≥ 0 splits that
// column off as the response vector.
func readCSV(path string, responseCol int) (*mat.Dense, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file", path)
	}

	cols := len(records[0])
	if responseCol >= cols {
		return nil, nil, fmt.Errorf("response column %d out of range (%d columns)", responseCol, cols)
	}
	pCols := cols
	if responseCol >= 0 {
		pCols--
	}

	x := mat.NewDense(len(records), pCols, nil)
	var y []float64
	if responseCol >= 0 {
		y = make([]float64, len(records))
	}
	for i, rec := range records {
		if len(rec) != cols {
			return nil, nil, fmt.Errorf("%s: row %d has %d fields, want %d", path, i+1, len(rec), cols)
		}
		jx := 0
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: row %d col %d: %w", path, i+1, j+1, err)
			}
			if j == responseCol {
				y[i] = v

				continue
			}
			x.Set(i, jx, v)
			jx++
		}
	}

	return x, y, nil
}
