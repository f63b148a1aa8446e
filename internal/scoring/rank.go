package scoring

import "slices"

// TopPopulation is the nominal size of a benchmark population and the cap
// of the points scale: rank 1 earns TopPopulation points, rank
// TopPopulation earns 1, anything past it earns 0. The scale stays pinned
// to this constant even when a population holds fewer entries.
const TopPopulation = 40

// RankResult is the outcome of placing one score against a benchmark
// population. It is derived on every query and never stored.
type RankResult struct {
	BeatenCount int `json:"beaten_count"`
	Rank        int `json:"rank"`
	Points      int `json:"points"`
}

// BeatenCount counts the benchmark entries the user's score strictly
// outperforms. Entries tied with the user are not beaten.
func BeatenCount(d Discipline, user Score, benchmark []Score) int {
	n := 0
	for _, entry := range benchmark {
		if Compare(d, user, entry) < 0 {
			n++
		}
	}
	return n
}

// taggedScore carries an origin mark through the merged sort so the user's
// entry is found by identity, not by value equality with a benchmark entry.
type taggedScore struct {
	score Score
	user  bool
}

// MergedRank returns the 1-based position of the user's score in the
// combined, sorted sequence of user plus benchmark entries. The result is
// in [1, N+1] for a benchmark of N entries. The user's entry is placed
// ahead of the benchmark before the stable sort, so a user tying a
// benchmark score takes the earlier position.
func MergedRank(d Discipline, user Score, benchmark []Score) int {
	merged := make([]taggedScore, 0, len(benchmark)+1)
	merged = append(merged, taggedScore{score: user, user: true})
	for _, entry := range benchmark {
		merged = append(merged, taggedScore{score: entry})
	}
	slices.SortStableFunc(merged, func(a, b taggedScore) int {
		return Compare(d, a.score, b.score)
	})
	for i, e := range merged {
		if e.user {
			return i + 1
		}
	}
	// Worst possible position; the tagged entry is always present, so this
	// only guards against the sort losing it.
	return len(benchmark) + 1
}

// PointsFromRank maps a merged rank to points on the fixed linear scale
// 41-rank inside [1, TopPopulation] and zero outside it. A rank of 41
// (beaten by the whole population) earns exactly zero, never negative.
func PointsFromRank(rank int) int {
	if rank < 1 || rank > TopPopulation {
		return 0
	}
	return TopPopulation + 1 - rank
}

// Rank computes the full placement of user against benchmark: beaten
// count, merged rank, and the points that rank earns. An empty benchmark
// yields rank 1 and full points.
func Rank(d Discipline, user Score, benchmark []Score) RankResult {
	rank := MergedRank(d, user, benchmark)
	return RankResult{
		BeatenCount: BeatenCount(d, user, benchmark),
		Rank:        rank,
		Points:      PointsFromRank(rank),
	}
}
