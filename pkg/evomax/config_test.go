package evomax

import "testing"

func validConfig() Config {
	return Config{
		LowerBounds: []float64{0, 0},
		UpperBounds: []float64{1, 1},
		Objective: func(x []float64) float64 {
			s := 0.0
			for _, v := range x {
				d := v - 0.5
				s -= d * d
			}
			return s
		},
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := validConfig().withDefaults()
	if cfg.PopulationSize != 100 || cfg.Generations != 500 || cfg.Digits != 5 {
		t.Fatalf("unexpected size defaults: %+v", cfg)
	}
	if cfg.CrossoverProb != 0.85 || cfg.MutationMode != 2 || cfg.MutationRate != 0.005 {
		t.Fatalf("unexpected operator defaults: %+v", cfg)
	}
	if cfg.MutationRateMin != 0.0005 || cfg.MutationRateMax != 0.25 {
		t.Fatalf("unexpected rate bound defaults: %+v", cfg)
	}
	if cfg.FitnessDifferential != 1.0 || cfg.ReplacementPlan != 1 {
		t.Fatalf("unexpected selection defaults: %+v", cfg)
	}
	if cfg.Elitism == nil || !*cfg.Elitism {
		t.Fatal("elitism should default on")
	}
	if cfg.Tolerance != 1e-4 || cfg.Window != 20 || cfg.Seed != 999 {
		t.Fatalf("unexpected convergence defaults: %+v", cfg)
	}
}

func TestValidationCodes(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
		code StatusCode
	}{
		{"odd population", func(c *Config) { c.PopulationSize = 99 }, CodeOddPopulation},
		{"negative population", func(c *Config) { c.PopulationSize = -2 }, CodeOddPopulation},
		{"digits too large", func(c *Config) { c.Digits = 10 }, CodeBadDigits},
		{"crossover above one", func(c *Config) { c.CrossoverProb = 1.5 }, CodeBadCrossoverProb},
		{"unknown mutation mode", func(c *Config) { c.MutationMode = 7 }, CodeBadMutationMode},
		{"rate bounds inverted", func(c *Config) { c.MutationRateMin = 0.5; c.MutationRateMax = 0.1 }, CodeBadMutationRate},
		{"differential above one", func(c *Config) { c.FitnessDifferential = 2 }, CodeBadFitnessDifferential},
		{"unknown plan", func(c *Config) { c.ReplacementPlan = 4 }, CodeBadReplacementPlan},
		{"negative tolerance", func(c *Config) { c.Tolerance = -1 }, CodeBadTolerance},
		{"window below disable sentinel", func(c *Config) { c.Window = -2 }, CodeBadWindow},
		{"negative seed", func(c *Config) { c.Seed = -5 }, CodeBadSeed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.edit(&cfg)
			solver, validation, err := New(cfg)
			if err == nil || solver != nil {
				t.Fatal("expected rejection")
			}
			if !validation.HasCode(tc.code) {
				t.Fatalf("codes = %v, want %v", validation.Codes, tc.code)
			}
		})
	}
}

func TestValidationWarnings(t *testing.T) {
	off := false

	cfg := validConfig()
	cfg.MutationRate = 0.6
	cfg.ReplacementPlan = 1
	cfg.Elitism = &off
	solver, validation, err := New(cfg)
	if err != nil || solver == nil {
		t.Fatalf("warnings must not block: %v", err)
	}
	if !validation.HasWarning(WarnHighMutationRate) {
		t.Fatalf("warnings = %v, want high mutation rate advisory", validation.Warnings)
	}

	cfg = validConfig()
	cfg.FitnessDifferential = 0.2
	cfg.ReplacementPlan = 2
	_, validation, err = New(cfg)
	if err != nil {
		t.Fatalf("warnings must not block: %v", err)
	}
	if !validation.HasWarning(WarnLowFitnessDifferential) {
		t.Fatalf("warnings = %v, want low differential advisory", validation.Warnings)
	}

	// Plan 3 tolerates a soft differential without comment.
	cfg = validConfig()
	cfg.FitnessDifferential = 0.2
	cfg.ReplacementPlan = 3
	_, validation, err = New(cfg)
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if validation.HasWarning(WarnLowFitnessDifferential) {
		t.Fatal("plan 3 should not warn on a low differential")
	}
}

func TestNewRejectsMissingBoundsAndObjective(t *testing.T) {
	cfg := validConfig()
	cfg.Objective = nil
	if _, _, err := New(cfg); err == nil {
		t.Fatal("expected an error for a missing objective")
	}

	cfg = validConfig()
	cfg.UpperBounds = []float64{1}
	if _, _, err := New(cfg); err == nil {
		t.Fatal("expected an error for mismatched bounds")
	}

	cfg = validConfig()
	cfg.LowerBounds = []float64{0, 2}
	if _, _, err := New(cfg); err == nil {
		t.Fatal("expected an error for inverted bounds")
	}
}
