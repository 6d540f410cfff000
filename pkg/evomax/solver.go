package evomax

import (
	"context"
	"errors"
	"fmt"

	"evomax/internal/evo"
	"evomax/internal/model"
	"evomax/internal/stats"
)

// ErrInvalidConfig is returned by New when Validation carries codes.
var ErrInvalidConfig = errors.New("invalid solver configuration")

// Result is the outcome of one run, with coordinates mapped back into the
// caller's physical bounds.
type Result struct {
	BestX            []float64
	BestF            float64
	StopReason       string
	Generations      int
	BestByGeneration []float64
	Diagnostics      []model.GenerationDiagnostics
}

// Solver runs the genetic engine over one objective. Construct with New;
// a Solver is good for one Solve call per seed-deterministic run.
type Solver struct {
	cfg Config
}

// New validates cfg and returns a Solver for it. The Validation is returned
// even on success so callers can surface warnings.
func New(cfg Config) (*Solver, Validation, error) {
	cfg = cfg.withDefaults()

	if cfg.Objective == nil {
		return nil, Validation{}, fmt.Errorf("objective function is required")
	}
	n := len(cfg.LowerBounds)
	if n == 0 || n != len(cfg.UpperBounds) {
		return nil, Validation{}, fmt.Errorf("bounds must be non-empty and of equal length: lower=%d upper=%d", n, len(cfg.UpperBounds))
	}
	for k := 0; k < n; k++ {
		if !(cfg.LowerBounds[k] < cfg.UpperBounds[k]) {
			return nil, Validation{}, fmt.Errorf("lower bound %d must be below its upper bound", k)
		}
	}

	validation := cfg.validate()
	if !validation.OK() {
		return nil, validation, fmt.Errorf("%w: codes %v", ErrInvalidConfig, validation.Codes)
	}
	return &Solver{cfg: cfg}, validation, nil
}

// Solve maximizes the objective starting from the given physical-coordinate
// guess. The guess is rescaled into the unit box and clamped; a nil guess
// starts from the center of the bounds.
func (s *Solver) Solve(ctx context.Context, initial []float64) (Result, error) {
	cfg := s.cfg
	n := len(cfg.LowerBounds)

	if initial == nil {
		initial = make([]float64, n)
		for k := 0; k < n; k++ {
			initial[k] = (cfg.LowerBounds[k] + cfg.UpperBounds[k]) / 2
		}
	}
	if len(initial) != n {
		return Result{}, fmt.Errorf("initial guess dimension mismatch: got=%d want=%d", len(initial), n)
	}

	unitGuess := make([]float64, n)
	for k := 0; k < n; k++ {
		unitGuess[k] = (initial[k] - cfg.LowerBounds[k]) / (cfg.UpperBounds[k] - cfg.LowerBounds[k])
	}

	toPhysical := func(u []float64) []float64 {
		x := make([]float64, n)
		for k := 0; k < n; k++ {
			x[k] = cfg.LowerBounds[k] + u[k]*(cfg.UpperBounds[k]-cfg.LowerBounds[k])
		}
		return x
	}

	window := cfg.Window
	if window < 0 {
		window = 0
	}

	driverCfg := evo.DriverConfig{
		Fitness: func(u []float64) float64 {
			return cfg.Objective(toPhysical(u))
		},
		N:                   n,
		PopulationSize:      cfg.PopulationSize,
		Generations:         cfg.Generations,
		Digits:              cfg.Digits,
		CrossoverProb:       cfg.CrossoverProb,
		MutationMode:        evo.MutationMode(cfg.MutationMode),
		MutationRate:        cfg.MutationRate,
		MutationRateMin:     cfg.MutationRateMin,
		MutationRateMax:     cfg.MutationRateMax,
		FitnessDifferential: cfg.FitnessDifferential,
		Plan:                evo.ReplacementPlan(cfg.ReplacementPlan),
		Elitism:             *cfg.Elitism,
		Tolerance:           cfg.Tolerance,
		Window:              window,
		Seed:                cfg.Seed,
	}
	if cfg.Callback != nil {
		driverCfg.Callback = func(generation int, bestX []float64, bestF float64) {
			cfg.Callback(generation, toPhysical(bestX), bestF)
		}
	}
	if cfg.Verbosity > 0 && cfg.ReportWriter != nil {
		driverCfg.Reporter = &stats.GenerationReporter{
			W:         cfg.ReportWriter,
			Verbosity: cfg.Verbosity,
			Digits:    cfg.Digits,
		}
	}

	driver, err := evo.NewDriver(driverCfg)
	if err != nil {
		return Result{}, err
	}
	res, err := driver.Run(ctx, unitGuess)
	if err != nil {
		return Result{}, err
	}

	return Result{
		BestX:            toPhysical(res.BestX),
		BestF:            res.BestF,
		StopReason:       string(res.StopReason),
		Generations:      res.Generations,
		BestByGeneration: res.BestByGeneration,
		Diagnostics:      res.Diagnostics,
	}, nil
}
