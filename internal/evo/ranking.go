package evo

import "sort"

// RankTable keeps two mutually inverse views of the population's fitness
// order. Ranks run 1 (worst) .. np (best); rank np always identifies the
// individual with the current best fitness.
type RankTable struct {
	indexByRank []int // indexByRank[r-1] = population index holding rank r
	rankByIndex []int // rankByIndex[i] = rank of population index i
}

func NewRankTable(np int) RankTable {
	return RankTable{
		indexByRank: make([]int, np),
		rankByIndex: make([]int, np),
	}
}

// Size returns the population size the table was built for.
func (t RankTable) Size() int {
	return len(t.rankByIndex)
}

// AtRank returns the population index holding rank r (1-based).
func (t RankTable) AtRank(r int) int {
	return t.indexByRank[r-1]
}

// RankOf returns the rank of population index i.
func (t RankTable) RankOf(i int) int {
	return t.rankByIndex[i]
}

// Best returns the population index of the fittest individual.
func (t RankTable) Best() int {
	return t.indexByRank[len(t.indexByRank)-1]
}

// Worst returns the population index of the least fit individual.
func (t RankTable) Worst() int {
	return t.indexByRank[0]
}

// Rebuild recomputes both views from scratch by stable-sorting fitness
// ascending. Ties keep lower population indices at lower ranks.
func (t RankTable) Rebuild(fitness []float64) {
	for i := range t.indexByRank {
		t.indexByRank[i] = i
	}
	sort.SliceStable(t.indexByRank, func(a, b int) bool {
		return fitness[t.indexByRank[a]] < fitness[t.indexByRank[b]]
	})
	for r, idx := range t.indexByRank {
		t.rankByIndex[idx] = r + 1
	}
}

// setRank places population index idx at rank r, updating both views.
func (t RankTable) setRank(r, idx int) {
	t.indexByRank[r-1] = idx
	t.rankByIndex[idx] = r
}

// shift moves the admitted individual idx into the rank order after the
// individual previously holding rank victim was overwritten. insert is the
// highest rank the newcomer's fitness beats. When the vacated slot sits at or
// below the insertion point the ranks in between slide down one position and
// the newcomer takes rank insert; when it sits above, they slide up and the
// newcomer takes rank insert+1.
func (t RankTable) shift(victim, insert, idx int) {
	if victim <= insert {
		for r := victim; r < insert; r++ {
			t.setRank(r, t.AtRank(r+1))
		}
		t.setRank(insert, idx)
		return
	}
	for r := victim; r > insert+1; r-- {
		t.setRank(r, t.AtRank(r-1))
	}
	t.setRank(insert+1, idx)
}
