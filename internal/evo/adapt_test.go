package evo

import (
	"math"
	"testing"
)

func adaptFixture(fitness []float64, phenotypes [][]float64) ([][]float64, []float64, RankTable) {
	table := NewRankTable(len(fitness))
	table.Rebuild(fitness)
	return phenotypes, fitness, table
}

func TestAdjustIgnoresFixedRateModes(t *testing.T) {
	phen, fit, ranks := adaptFixture([]float64{1, 1, 1, 1}, [][]float64{{0}, {0}, {0}, {0}})
	c := MutationController{Mode: MutateUniformFixed, Min: 0.0005, Max: 0.25}
	if got := c.Adjust(0.005, phen, fit, ranks); got != 0.005 {
		t.Fatalf("fixed-rate mode changed the rate: %v", got)
	}
}

func TestAdjustRaisesRateOnLowFitnessSpread(t *testing.T) {
	// Best and median nearly equal: rdif well below the low threshold.
	phen, fit, ranks := adaptFixture([]float64{10, 10.0001, 10.0002, 10.0003},
		[][]float64{{0}, {0}, {0}, {0}})
	c := MutationController{Mode: MutateUniformFitness, Min: 0.0005, Max: 0.25}

	if got := c.Adjust(0.01, phen, fit, ranks); math.Abs(got-0.015) > 1e-12 {
		t.Fatalf("rate = %v, want 0.015", got)
	}
	if got := c.Adjust(0.2, phen, fit, ranks); got != 0.25 {
		t.Fatalf("rate = %v, want the 0.25 cap", got)
	}
}

func TestAdjustLowersRateOnHighFitnessSpread(t *testing.T) {
	phen, fit, ranks := adaptFixture([]float64{0.1, 0.2, 0.3, 10},
		[][]float64{{0}, {0}, {0}, {0}})
	c := MutationController{Mode: MutateUniformFitness, Min: 0.0005, Max: 0.25}

	if got := c.Adjust(0.015, phen, fit, ranks); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("rate = %v, want 0.01", got)
	}
	if got := c.Adjust(0.0006, phen, fit, ranks); got != 0.0005 {
		t.Fatalf("rate = %v, want the 0.0005 floor", got)
	}
}

func TestAdjustKeepsRateInTheDeadBand(t *testing.T) {
	// rdif = (0.6-0.4)/(0.6+0.4) = 0.2, between the thresholds.
	phen, fit, ranks := adaptFixture([]float64{0.1, 0.4, 0.5, 0.6},
		[][]float64{{0}, {0}, {0}, {0}})
	c := MutationController{Mode: MutateUniformFitness, Min: 0.0005, Max: 0.25}
	if got := c.Adjust(0.02, phen, fit, ranks); got != 0.02 {
		t.Fatalf("rate = %v, want unchanged 0.02", got)
	}
}

func TestAdjustGuardsZeroFitnessSum(t *testing.T) {
	phen, fit, ranks := adaptFixture([]float64{-1, -0.5, 0.25, 0.5},
		[][]float64{{0}, {0}, {0}, {0}})
	c := MutationController{Mode: MutateUniformFitness, Min: 0.0005, Max: 0.25}
	if got := c.Adjust(0.02, phen, fit, ranks); got != 0.02 {
		t.Fatalf("rate = %v, want unchanged when best+median is zero", got)
	}
}

func TestAdjustUsesPhenotypeDistance(t *testing.T) {
	// Rank order is 1, 0, 2, 3: the median slot (rank 2) is index 0 and the
	// best is index 3. Sharing a phenotype means distance zero, rate goes up.
	phen := [][]float64{{0.5, 0.5}, {0.1, 0.1}, {0.9, 0.9}, {0.5, 0.5}}
	fit := []float64{0.2, 0.1, 0.3, 0.9}
	_, _, ranks := adaptFixture(fit, phen)
	c := MutationController{Mode: MutateUniformDistance, Min: 0.0005, Max: 0.25}
	if got := c.Adjust(0.01, phen, fit, ranks); math.Abs(got-0.015) > 1e-12 {
		t.Fatalf("rate = %v, want 0.015", got)
	}

	// Best and median far apart: rate goes down.
	phen[3] = []float64{0.99, 0.99}
	phen[0] = []float64{0.01, 0.01}
	if got := c.Adjust(0.015, phen, fit, ranks); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("rate = %v, want 0.01", got)
	}
}
