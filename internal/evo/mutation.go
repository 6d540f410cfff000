package evo

import (
	"math/rand"

	"evomax/internal/genotype"
)

// MutationMode combines the operator family with the rate policy.
type MutationMode int

const (
	MutateUniformFixed    MutationMode = 1 // uniform digit replacement, fixed rate
	MutateUniformFitness  MutationMode = 2 // uniform, rate adapted on fitness spread
	MutateUniformDistance MutationMode = 3 // uniform, rate adapted on phenotype distance
	MutateMixedFixed      MutationMode = 4 // uniform or creep per call, fixed rate
	MutateMixedFitness    MutationMode = 5 // uniform or creep, fitness-adaptive rate
	MutateMixedDistance   MutationMode = 6 // uniform or creep, distance-adaptive rate
)

func (m MutationMode) Valid() bool {
	return m >= MutateUniformFixed && m <= MutateMixedDistance
}

// Adaptive reports whether the mutation rate is controller-driven.
func (m MutationMode) Adaptive() bool {
	return m == MutateUniformFitness || m == MutateUniformDistance ||
		m == MutateMixedFitness || m == MutateMixedDistance
}

// FitnessAdaptive reports whether the diversity signal is fitness-based.
func (m MutationMode) FitnessAdaptive() bool {
	return m == MutateUniformFitness || m == MutateMixedFitness
}

// Mixed reports whether creep mutation participates.
func (m MutationMode) Mixed() bool {
	return m >= MutateMixedFixed
}

// Mutator applies per-digit mutation to a genotype in place.
type Mutator struct {
	Mode   MutationMode
	Digits int
}

// Apply mutates each digit independently with probability pmut. Mixed modes
// draw one coin per call to choose between the creep and uniform operators.
func (mu Mutator) Apply(rng *rand.Rand, gn genotype.Genotype, pmut float64) {
	if mu.Mode.Mixed() && rng.Float64() <= 0.5 {
		mu.creep(rng, gn, pmut)
		return
	}
	mu.uniform(rng, gn, pmut)
}

// uniform replaces mutated digits with a fresh draw from 0-9.
func (mu Mutator) uniform(rng *rand.Rand, gn genotype.Genotype, pmut float64) {
	for i := range gn {
		if rng.Float64() < pmut {
			gn[i] = uint8(rng.Intn(10))
		}
	}
}

// creep perturbs mutated digits by +/-1 with decimal carry inside the
// owning variable's digit group.
func (mu Mutator) creep(rng *rand.Rand, gn genotype.Genotype, pmut float64) {
	for pos := range gn {
		if rng.Float64() < pmut {
			inc := rng.Intn(2)*2 - 1
			creepAt(gn, pos-pos%mu.Digits, pos, inc)
		}
	}
}

// creepAt adds inc (+1 or -1) to the digit at pos and propagates the carry
// toward the more significant digits of the group starting at varStart.
// An under/overflowing most-significant digit clamps alone; a carry that
// escapes the group clamps the affected digits to all-0 (underflow) or
// all-9 (overflow). Carry never crosses into a neighboring variable.
func creepAt(gn genotype.Genotype, varStart, pos, inc int) {
	v := int(gn[pos]) + inc
	if v >= 0 && v <= 9 {
		gn[pos] = uint8(v)
		return
	}
	if pos == varStart {
		if v < 0 {
			gn[pos] = 0
		} else {
			gn[pos] = 9
		}
		return
	}

	if v < 0 {
		gn[pos] = 9
		for k := pos - 1; k > varStart; k-- {
			if gn[k] > 0 {
				gn[k]--
				return
			}
			gn[k] = 9
		}
		if gn[varStart] > 0 {
			gn[varStart]--
			return
		}
		for l := varStart; l <= pos; l++ {
			gn[l] = 0
		}
		return
	}

	gn[pos] = 0
	for k := pos - 1; k > varStart; k-- {
		if gn[k] < 9 {
			gn[k]++
			return
		}
		gn[k] = 0
	}
	if gn[varStart] < 9 {
		gn[varStart]++
		return
	}
	for l := varStart; l <= pos; l++ {
		gn[l] = 9
	}
}
