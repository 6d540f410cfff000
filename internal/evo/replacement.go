package evo

import "math/rand"

// ReplacementPlan selects how offspring re-enter the population.
type ReplacementPlan int

const (
	PlanGenerational ReplacementPlan = 1 // full generational replacement
	PlanSteadyRandom ReplacementPlan = 2 // steady-state, replace random
	PlanSteadyWorst  ReplacementPlan = 3 // steady-state, replace worst
)

func (p ReplacementPlan) Valid() bool {
	return p == PlanGenerational || p == PlanSteadyRandom || p == PlanSteadyWorst
}

// SteadyState reports whether offspring are admitted into the live
// population as they are bred.
func (p ReplacementPlan) SteadyState() bool {
	return p == PlanSteadyRandom || p == PlanSteadyWorst
}

// GenerationalBuffer stages offspring pairs until a full generation has been
// bred (plan 1). Slot positions are determined by the breeding-event index.
type GenerationalBuffer struct {
	Phenotypes [][]float64
}

func NewGenerationalBuffer(np, n int) *GenerationalBuffer {
	phenotypes := make([][]float64, np)
	for i := range phenotypes {
		phenotypes[i] = make([]float64, n)
	}
	return &GenerationalBuffer{Phenotypes: phenotypes}
}

// Stage copies the offspring of breeding event ev into slots 2ev and 2ev+1.
func (b *GenerationalBuffer) Stage(ev int, off1, off2 []float64) {
	copy(b.Phenotypes[2*ev], off1)
	copy(b.Phenotypes[2*ev+1], off2)
}

// SwapGenerational replaces the whole population with the staged offspring,
// re-evaluates every individual and rebuilds the rank table. With elitism,
// the old best individual is substituted into slot 0 when its fitness is
// strictly higher than the offspring staged there (one extra evaluation).
// Returns the number of new individuals admitted.
func SwapGenerational(pop *Population, buf *GenerationalBuffer, elitism bool, eval func([]float64) float64) int {
	np := pop.Size()
	admitted := np
	if elitism {
		bestIdx := pop.Ranks.Best()
		if eval(buf.Phenotypes[0]) < pop.Fitness[bestIdx] {
			copy(buf.Phenotypes[0], pop.Phenotypes[bestIdx])
			admitted--
		}
	}

	for i := range buf.Phenotypes {
		copy(pop.Phenotypes[i], buf.Phenotypes[i])
		pop.Fitness[i] = eval(pop.Phenotypes[i])
	}
	pop.Rank()
	return admitted
}

// InsertSteadyState attempts to admit one already-evaluated offspring into
// the live population (plans 2 and 3). The offspring must beat at least one
// current member; a bit-exact match with the phenotype immediately above the
// insertion rank is rejected to preserve diversity (deliberately not a
// full-population duplicate check). The vacated slot is rank 1 for
// replace-worst, or a uniformly random rank for replace-random, excluding the
// best under elitism unless the offspring itself beats the best. Returns true
// when the offspring was admitted.
func InsertSteadyState(rng *rand.Rand, pop *Population, plan ReplacementPlan, elitism bool, off []float64, fit float64) bool {
	np := pop.Size()

	// Highest rank whose fitness the offspring exceeds.
	insert := 0
	for r := np; r >= 1; r-- {
		if fit > pop.Fitness[pop.Ranks.AtRank(r)] {
			insert = r
			break
		}
	}
	if insert == 0 {
		return false
	}
	if insert < np && equalPhenotype(pop.Phenotypes[pop.Ranks.AtRank(insert+1)], off) {
		return false
	}

	var victim int
	switch {
	case plan == PlanSteadyWorst:
		victim = 1
	case !elitism || insert == np:
		victim = rng.Intn(np) + 1
	default:
		victim = rng.Intn(np-1) + 1
	}

	idx := pop.Ranks.AtRank(victim)
	copy(pop.Phenotypes[idx], off)
	pop.Fitness[idx] = fit
	pop.Ranks.shift(victim, insert, idx)
	return true
}
