package evo

// Population is the driver-owned set of normalized phenotypes with one
// fitness value per individual and a rank table kept consistent with them.
type Population struct {
	Phenotypes [][]float64
	Fitness    []float64
	Ranks      RankTable
}

func NewPopulation(np, n int) *Population {
	phenotypes := make([][]float64, np)
	for i := range phenotypes {
		phenotypes[i] = make([]float64, n)
	}
	return &Population{
		Phenotypes: phenotypes,
		Fitness:    make([]float64, np),
		Ranks:      NewRankTable(np),
	}
}

func (p *Population) Size() int {
	return len(p.Fitness)
}

// Rank rebuilds the rank table from the current fitness values.
func (p *Population) Rank() {
	p.Ranks.Rebuild(p.Fitness)
}

// Best returns the fittest individual's phenotype and fitness. The slice
// aliases population storage; callers needing a stable copy must clone it.
func (p *Population) Best() ([]float64, float64) {
	idx := p.Ranks.Best()
	return p.Phenotypes[idx], p.Fitness[idx]
}

func equalPhenotype(a, b []float64) bool {
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}
