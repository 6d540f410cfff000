package evo

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"evomax/internal/genotype"
	"evomax/internal/model"
)

// StopReason reports why a run ended.
type StopReason string

const (
	StopConverged       StopReason = "converged"
	StopGenerationLimit StopReason = "generation_limit"
)

// FitnessFn evaluates a normalized phenotype in [0,1]^n; higher is better.
// It must be deterministic for runs to be reproducible across seeds.
type FitnessFn func(x []float64) float64

// Callback observes the best individual once per generation. The slice is
// only valid for the duration of the call.
type Callback func(generation int, bestX []float64, bestF float64)

// ReportSnapshot carries the observational values a reporter prints: fitness
// and phenotypes at ranks np (best), np-1 and np/2 (median).
type ReportSnapshot struct {
	Best, Second, Median    float64
	BestX, SecondX, MedianX []float64
}

// Reporter consumes per-generation population summaries. Purely
// observational; the algorithm never reads anything back.
type Reporter interface {
	Report(generation, admitted int, pmut float64, snap ReportSnapshot)
}

type DriverConfig struct {
	Fitness             FitnessFn
	N                   int
	PopulationSize      int
	Generations         int
	Digits              int
	CrossoverProb       float64
	MutationMode        MutationMode
	MutationRate        float64
	MutationRateMin     float64
	MutationRateMax     float64
	FitnessDifferential float64
	Plan                ReplacementPlan
	Elitism             bool
	Tolerance           float64
	Window              int
	Seed                int64
	Callback            Callback
	Reporter            Reporter
}

type DriverResult struct {
	BestX            []float64
	BestF            float64
	StopReason       StopReason
	Generations      int
	BestByGeneration []float64
	Diagnostics      []model.GenerationDiagnostics
}

// Driver owns all mutable run state: population, rank table, mutation rate
// and the random stream. One Driver instance serves one Run at a time; every
// stochastic decision draws from the single seeded source in a fixed order,
// so equal seeds give bit-identical runs.
type Driver struct {
	cfg DriverConfig
	rng *rand.Rand
}

func NewDriver(cfg DriverConfig) (*Driver, error) {
	if cfg.Fitness == nil {
		return nil, fmt.Errorf("fitness function is required")
	}
	if cfg.N <= 0 {
		return nil, fmt.Errorf("dimension must be > 0")
	}
	if cfg.PopulationSize < 2 || cfg.PopulationSize%2 != 0 {
		return nil, fmt.Errorf("population size must be even and >= 2")
	}
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("generations must be > 0")
	}
	if cfg.Digits < 1 || cfg.Digits > 9 {
		return nil, fmt.Errorf("digits per variable must be in [1,9]")
	}
	if cfg.CrossoverProb < 0 || cfg.CrossoverProb > 1 {
		return nil, fmt.Errorf("crossover probability must be in [0,1]")
	}
	if !cfg.MutationMode.Valid() {
		return nil, fmt.Errorf("invalid mutation mode: %d", cfg.MutationMode)
	}
	if cfg.FitnessDifferential < 0 || cfg.FitnessDifferential > 1 {
		return nil, fmt.Errorf("fitness differential must be in [0,1]")
	}
	if !cfg.Plan.Valid() {
		return nil, fmt.Errorf("invalid replacement plan: %d", cfg.Plan)
	}
	if cfg.Tolerance <= 0 {
		return nil, fmt.Errorf("convergence tolerance must be > 0")
	}
	if cfg.Window < 0 {
		return nil, fmt.Errorf("convergence window must be >= 0")
	}
	if cfg.Seed <= 0 {
		return nil, fmt.Errorf("seed must be > 0")
	}

	return &Driver{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run evolves the population until convergence or the generation budget.
// The initial guess, clamped into [0,1]^n, seeds individual 0; the remaining
// np-1 individuals are drawn uniformly.
func (d *Driver) Run(ctx context.Context, initial []float64) (DriverResult, error) {
	if len(initial) != d.cfg.N {
		return DriverResult{}, fmt.Errorf("initial guess dimension mismatch: got=%d want=%d", len(initial), d.cfg.N)
	}

	np, n := d.cfg.PopulationSize, d.cfg.N
	pop := NewPopulation(np, n)
	for k, v := range initial {
		pop.Phenotypes[0][k] = clamp01(v)
	}
	for i := 1; i < np; i++ {
		for k := 0; k < n; k++ {
			pop.Phenotypes[i][k] = d.rng.Float64()
		}
	}
	for i := 0; i < np; i++ {
		pop.Fitness[i] = d.cfg.Fitness(pop.Phenotypes[i])
	}
	pop.Rank()

	selector := RankRouletteSelector{FitnessDifferential: d.cfg.FitnessDifferential}
	crossover := Crossover{Probability: d.cfg.CrossoverProb}
	mutator := Mutator{Mode: d.cfg.MutationMode, Digits: d.cfg.Digits}
	controller := MutationController{
		Mode: d.cfg.MutationMode,
		Min:  d.cfg.MutationRateMin,
		Max:  d.cfg.MutationRateMax,
	}

	gn1 := genotype.New(n, d.cfg.Digits)
	gn2 := genotype.New(n, d.cfg.Digits)
	off1 := make([]float64, n)
	off2 := make([]float64, n)
	var buf *GenerationalBuffer
	if d.cfg.Plan == PlanGenerational {
		buf = NewGenerationalBuffer(np, n)
	}

	pmut := d.cfg.MutationRate
	_, prevBest := pop.Best()
	streak := 0
	stop := StopGenerationLimit

	bestHistory := make([]float64, 0, d.cfg.Generations)
	diagnostics := make([]model.GenerationDiagnostics, 0, d.cfg.Generations)
	generations := 0

	for gen := 1; gen <= d.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return DriverResult{}, err
		}

		admitted := 0
		for ev := 0; ev < np/2; ev++ {
			p1, err := selector.PickParent(d.rng, pop.Ranks)
			if err != nil {
				return DriverResult{}, err
			}
			p2 := p1
			for p2 == p1 {
				p2, err = selector.PickParent(d.rng, pop.Ranks)
				if err != nil {
					return DriverResult{}, err
				}
			}

			genotype.Encode(pop.Phenotypes[p1], d.cfg.Digits, gn1)
			genotype.Encode(pop.Phenotypes[p2], d.cfg.Digits, gn2)
			crossover.Apply(d.rng, gn1, gn2)
			mutator.Apply(d.rng, gn1, pmut)
			mutator.Apply(d.rng, gn2, pmut)
			genotype.Decode(gn1, d.cfg.Digits, off1)
			genotype.Decode(gn2, d.cfg.Digits, off2)

			if d.cfg.Plan == PlanGenerational {
				buf.Stage(ev, off1, off2)
				continue
			}
			if InsertSteadyState(d.rng, pop, d.cfg.Plan, d.cfg.Elitism, off1, d.cfg.Fitness(off1)) {
				admitted++
			}
			if InsertSteadyState(d.rng, pop, d.cfg.Plan, d.cfg.Elitism, off2, d.cfg.Fitness(off2)) {
				admitted++
			}
		}
		if d.cfg.Plan == PlanGenerational {
			admitted = SwapGenerational(pop, buf, d.cfg.Elitism, d.cfg.Fitness)
		}

		pmut = controller.Adjust(pmut, pop.Phenotypes, pop.Fitness, pop.Ranks)

		bestX, bestF := pop.Best()
		bestHistory = append(bestHistory, bestF)
		diagnostics = append(diagnostics, summarizeGeneration(gen, admitted, pmut, pop))
		if d.cfg.Reporter != nil {
			d.cfg.Reporter.Report(gen, admitted, pmut, snapshot(pop))
		}
		if d.cfg.Callback != nil {
			d.cfg.Callback(gen, bestX, bestF)
		}

		generations = gen
		if d.cfg.Window > 0 {
			if math.Abs(bestF-prevBest) <= d.cfg.Tolerance {
				streak++
			} else {
				streak = 0
			}
			if streak >= d.cfg.Window {
				prevBest = bestF
				stop = StopConverged
				break
			}
		}
		prevBest = bestF
	}

	bestX, bestF := pop.Best()
	return DriverResult{
		BestX:            append([]float64(nil), bestX...),
		BestF:            bestF,
		StopReason:       stop,
		Generations:      generations,
		BestByGeneration: bestHistory,
		Diagnostics:      diagnostics,
	}, nil
}

func summarizeGeneration(gen, admitted int, pmut float64, pop *Population) model.GenerationDiagnostics {
	np := pop.Size()
	mean, stddev := stat.MeanStdDev(pop.Fitness, nil)
	if np < 2 {
		stddev = 0
	}
	return model.GenerationDiagnostics{
		Generation:    gen,
		NewMembers:    admitted,
		MutationRate:  pmut,
		BestFitness:   pop.Fitness[pop.Ranks.AtRank(np)],
		SecondFitness: pop.Fitness[pop.Ranks.AtRank(np-1)],
		MedianFitness: pop.Fitness[pop.Ranks.AtRank(np/2)],
		MeanFitness:   mean,
		StdDevFitness: stddev,
	}
}

func snapshot(pop *Population) ReportSnapshot {
	np := pop.Size()
	best := pop.Ranks.AtRank(np)
	second := pop.Ranks.AtRank(np - 1)
	median := pop.Ranks.AtRank(np / 2)
	return ReportSnapshot{
		Best:    pop.Fitness[best],
		Second:  pop.Fitness[second],
		Median:  pop.Fitness[median],
		BestX:   pop.Phenotypes[best],
		SecondX: pop.Phenotypes[second],
		MedianX: pop.Phenotypes[median],
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
