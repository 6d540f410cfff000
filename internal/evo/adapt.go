package evo

import "math"

// Diversity thresholds and the multiplicative step for rate adaptation.
const (
	rdifLow  = 0.05
	rdifHigh = 0.25
	rateStep = 1.5
)

// MutationController adjusts the mutation probability between generations
// from a population diversity signal. Fitness-based control compares the
// best and median fitness and assumes positive fitness values; distance-based
// control compares the best and median phenotypes.
type MutationController struct {
	Mode MutationMode
	Min  float64
	Max  float64
}

// Adjust returns the mutation rate for the next generation. Low diversity
// (rdif <= 0.05) multiplies the rate by 1.5 capped at Max; high diversity
// (rdif >= 0.25) divides it by 1.5 floored at Min.
func (c MutationController) Adjust(rate float64, phenotypes [][]float64, fitness []float64, ranks RankTable) float64 {
	if !c.Mode.Adaptive() {
		return rate
	}

	np := ranks.Size()
	best := ranks.AtRank(np)
	median := ranks.AtRank(np / 2)

	var rdif float64
	if c.Mode.FitnessAdaptive() {
		denom := fitness[best] + fitness[median]
		if denom == 0 {
			return rate
		}
		rdif = math.Abs(fitness[best]-fitness[median]) / denom
	} else {
		sum := 0.0
		for k := range phenotypes[best] {
			d := phenotypes[best][k] - phenotypes[median][k]
			sum += d * d
		}
		rdif = math.Sqrt(sum) / float64(len(phenotypes[best]))
	}

	switch {
	case rdif <= rdifLow:
		rate = math.Min(c.Max, rate*rateStep)
	case rdif >= rdifHigh:
		rate = math.Max(c.Min, rate/rateStep)
	}
	return rate
}
