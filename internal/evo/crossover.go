package evo

import (
	"math/rand"

	"evomax/internal/genotype"
)

// Crossover swaps digit segments between two genotypes in place.
type Crossover struct {
	Probability float64
}

// Apply breeds the pair with the configured probability. On crossover a
// first split point is drawn uniformly; a coin then picks one-point (swap
// from the split to the end) or two-point (second split drawn, points
// ordered, the segment between them swapped). Draw order: decision, first
// split, point-count coin, second split (two-point only).
func (c Crossover) Apply(rng *rand.Rand, a, b genotype.Genotype) {
	if rng.Float64() >= c.Probability {
		return
	}

	ngene := len(a)
	spl := rng.Intn(ngene)
	spl2 := ngene - 1
	if rng.Float64() >= 0.5 {
		spl2 = rng.Intn(ngene)
		if spl2 < spl {
			spl, spl2 = spl2, spl
		}
	}
	for i := spl; i <= spl2; i++ {
		a[i], b[i] = b[i], a[i]
	}
}
