package evomax

import "io"

// StatusCode identifies a specific configuration defect or advisory.
type StatusCode int

const (
	CodeOddPopulation StatusCode = iota + 1
	CodeBadDigits
	CodeBadCrossoverProb
	CodeBadMutationMode
	CodeBadMutationRate
	CodeBadFitnessDifferential
	CodeBadReplacementPlan
	CodeBadElitism
	CodeBadTolerance
	CodeBadWindow
	CodeBadSeed
)

// Advisory warnings; they never block a run.
const (
	WarnHighMutationRate       StatusCode = 101
	WarnLowFitnessDifferential StatusCode = 102
)

// Validation is the outcome of checking a Config. Any entry in Codes means
// the configuration is rejected; Warnings flag legal but dubious settings.
type Validation struct {
	Codes    []StatusCode
	Warnings []StatusCode
}

func (v Validation) OK() bool {
	return len(v.Codes) == 0
}

func (v Validation) HasCode(code StatusCode) bool {
	for _, c := range v.Codes {
		if c == code {
			return true
		}
	}
	return false
}

func (v Validation) HasWarning(code StatusCode) bool {
	for _, w := range v.Warnings {
		if w == code {
			return true
		}
	}
	return false
}

// Config describes one maximization problem and the engine settings for it.
// Zero-valued engine fields take the documented defaults; bounds and the
// objective are always required.
type Config struct {
	// LowerBounds and UpperBounds define the physical search box, one entry
	// per variable. The objective is called with physical coordinates.
	LowerBounds []float64
	UpperBounds []float64
	Objective   func(x []float64) float64

	PopulationSize      int     // default 100, must be even
	Generations         int     // default 500
	Digits              int     // default 5, decimal digits per variable, 1..9
	CrossoverProb       float64 // default 0.85
	MutationMode        int     // default 2, one of the six engine modes
	MutationRate        float64 // default 0.005
	MutationRateMin     float64 // default 0.0005
	MutationRateMax     float64 // default 0.25
	FitnessDifferential float64 // default 1.0, selection pressure in [0,1]
	ReplacementPlan     int     // default 1 (generational); 2/3 steady-state
	Elitism             *bool   // default true
	Tolerance           float64 // default 1e-4
	Window              int     // default 20; negative disables convergence stopping
	Seed                int64   // default 999, must be > 0

	// Verbosity 0 is silent, 1 prints changed generations, 2 prints all;
	// output goes to ReportWriter.
	Verbosity    int
	ReportWriter io.Writer

	// Callback observes the best individual each generation, in physical
	// coordinates.
	Callback func(generation int, bestX []float64, bestF float64)
}

func (c Config) withDefaults() Config {
	if c.PopulationSize == 0 {
		c.PopulationSize = 100
	}
	if c.Generations == 0 {
		c.Generations = 500
	}
	if c.Digits == 0 {
		c.Digits = 5
	}
	if c.CrossoverProb == 0 {
		c.CrossoverProb = 0.85
	}
	if c.MutationMode == 0 {
		c.MutationMode = 2
	}
	if c.MutationRate == 0 {
		c.MutationRate = 0.005
	}
	if c.MutationRateMin == 0 {
		c.MutationRateMin = 0.0005
	}
	if c.MutationRateMax == 0 {
		c.MutationRateMax = 0.25
	}
	if c.FitnessDifferential == 0 {
		c.FitnessDifferential = 1.0
	}
	if c.ReplacementPlan == 0 {
		c.ReplacementPlan = 1
	}
	if c.Elitism == nil {
		on := true
		c.Elitism = &on
	}
	if c.Tolerance == 0 {
		c.Tolerance = 1e-4
	}
	if c.Window == 0 {
		c.Window = 20
	}
	if c.Seed == 0 {
		c.Seed = 999
	}
	return c
}

// validate checks the engine knobs of an already-defaulted Config.
func (c Config) validate() Validation {
	var v Validation

	if c.PopulationSize < 2 || c.PopulationSize%2 != 0 {
		v.Codes = append(v.Codes, CodeOddPopulation)
	}
	if c.Digits < 1 || c.Digits > 9 {
		v.Codes = append(v.Codes, CodeBadDigits)
	}
	if c.CrossoverProb < 0 || c.CrossoverProb > 1 {
		v.Codes = append(v.Codes, CodeBadCrossoverProb)
	}
	if c.MutationMode < 1 || c.MutationMode > 6 {
		v.Codes = append(v.Codes, CodeBadMutationMode)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 ||
		c.MutationRateMin < 0 || c.MutationRateMax > 1 ||
		c.MutationRateMin > c.MutationRateMax {
		v.Codes = append(v.Codes, CodeBadMutationRate)
	}
	if c.FitnessDifferential < 0 || c.FitnessDifferential > 1 {
		v.Codes = append(v.Codes, CodeBadFitnessDifferential)
	}
	if c.ReplacementPlan < 1 || c.ReplacementPlan > 3 {
		v.Codes = append(v.Codes, CodeBadReplacementPlan)
	}
	if c.Tolerance <= 0 {
		v.Codes = append(v.Codes, CodeBadTolerance)
	}
	if c.Window < -1 {
		v.Codes = append(v.Codes, CodeBadWindow)
	}
	if c.Seed <= 0 {
		v.Codes = append(v.Codes, CodeBadSeed)
	}

	elitism := c.Elitism != nil && *c.Elitism
	if c.MutationRate > 0.5 && c.ReplacementPlan == 1 && !elitism {
		v.Warnings = append(v.Warnings, WarnHighMutationRate)
	}
	if c.FitnessDifferential < 0.33 && c.ReplacementPlan != 3 {
		v.Warnings = append(v.Warnings, WarnLowFitnessDifferential)
	}
	return v
}
