package evo

import (
	"math/rand"
	"testing"
)

func TestRankTableMutualInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		np := 2 + 2*rng.Intn(30)
		fitness := make([]float64, np)
		for i := range fitness {
			fitness[i] = rng.NormFloat64()
		}
		table := NewRankTable(np)
		table.Rebuild(fitness)

		for r := 1; r <= np; r++ {
			if got := table.RankOf(table.AtRank(r)); got != r {
				t.Fatalf("rank_by_index[index_by_rank[%d]] = %d", r, got)
			}
		}
	}
}

func TestRankTableOrdersAscending(t *testing.T) {
	fitness := []float64{0.3, 0.9, 0.1, 0.7}
	table := NewRankTable(len(fitness))
	table.Rebuild(fitness)

	if table.Worst() != 2 {
		t.Fatalf("worst index = %d, want 2", table.Worst())
	}
	if table.Best() != 1 {
		t.Fatalf("best index = %d, want 1", table.Best())
	}
	prev := fitness[table.AtRank(1)]
	for r := 2; r <= len(fitness); r++ {
		cur := fitness[table.AtRank(r)]
		if cur < prev {
			t.Fatalf("fitness not ascending at rank %d: %v < %v", r, cur, prev)
		}
		prev = cur
	}
}

func TestRankTableStableTies(t *testing.T) {
	fitness := []float64{0.5, 0.5, 0.5}
	table := NewRankTable(3)
	table.Rebuild(fitness)
	for r := 1; r <= 3; r++ {
		if table.AtRank(r) != r-1 {
			t.Fatalf("tie broke stability: rank %d holds index %d", r, table.AtRank(r))
		}
	}
}
