package scoring

import (
	"math"
	"testing"
)

// timeBenchmark builds n TIME scores evenly spaced from first to last
// seconds, rank 1 first.
func timeBenchmark(n, first, last int) []Score {
	scores := make([]Score, n)
	for i := range scores {
		secs := first + int(math.Round(float64(i)*float64(last-first)/float64(n-1)))
		scores[i] = Score{TimeSeconds: intPtr(secs)}
	}
	return scores
}

// repsBenchmark builds n REPS scores evenly spaced from first down to last,
// rank 1 first.
func repsBenchmark(n, first, last int) []Score {
	scores := make([]Score, n)
	for i := range scores {
		reps := first + int(math.Round(float64(i)*float64(last-first)/float64(n-1)))
		scores[i] = Score{Reps: intPtr(reps)}
	}
	return scores
}

// TestBeatenCountStrictWinsOnly verifies that entries tied with the user are
// not counted as beaten.
func TestBeatenCountStrictWinsOnly(t *testing.T) {
	benchmark := []Score{
		{Reps: intPtr(350)},
		{Reps: intPtr(330)}, // ties the user
		{Reps: intPtr(310)},
		{Reps: intPtr(290)},
	}
	got := BeatenCount(DisciplineReps, Score{Reps: intPtr(330)}, benchmark)
	if got != 2 {
		t.Errorf("BeatenCount = %d, want 2", got)
	}
}

// TestBeatenCountMonotonic verifies that improving the user's score never
// lowers the beaten count against a fixed benchmark.
func TestBeatenCountMonotonic(t *testing.T) {
	benchmark := timeBenchmark(40, 600, 1000)
	prev := -1
	for secs := 1100; secs >= 550; secs -= 25 {
		got := BeatenCount(DisciplineTime, Score{TimeSeconds: intPtr(secs)}, benchmark)
		if got < prev {
			t.Fatalf("BeatenCount at %ds = %d, below %d at the slower time", secs, got, prev)
		}
		prev = got
	}
}

// TestMergedRankBounds verifies 1 <= rank <= N+1 for users ranging from
// better than the whole benchmark to worse than all of it.
func TestMergedRankBounds(t *testing.T) {
	benchmark := timeBenchmark(40, 600, 1000)
	for secs := 500; secs <= 1100; secs += 50 {
		rank := MergedRank(DisciplineTime, Score{TimeSeconds: intPtr(secs)}, benchmark)
		if rank < 1 || rank > len(benchmark)+1 {
			t.Errorf("MergedRank at %ds = %d, want within [1, %d]", secs, rank, len(benchmark)+1)
		}
	}
}

// TestMergedRankUserBeforeTies verifies that a user tying a benchmark entry
// takes the earlier position.
func TestMergedRankUserBeforeTies(t *testing.T) {
	benchmark := []Score{
		{Reps: intPtr(350)},
		{Reps: intPtr(330)},
		{Reps: intPtr(310)},
	}
	rank := MergedRank(DisciplineReps, Score{Reps: intPtr(330)}, benchmark)
	if rank != 2 {
		t.Errorf("MergedRank on tie = %d, want 2", rank)
	}
}

// TestMergedRankEmptyBenchmark verifies rank 1 against no benchmark entries.
func TestMergedRankEmptyBenchmark(t *testing.T) {
	rank := MergedRank(DisciplineTime, Score{TimeSeconds: intPtr(750)}, nil)
	if rank != 1 {
		t.Errorf("MergedRank against empty benchmark = %d, want 1", rank)
	}
}

// TestPointsFromRank verifies the 41-rank scale and its zero saturation
// outside [1, 40].
func TestPointsFromRank(t *testing.T) {
	cases := []struct {
		rank, want int
	}{
		{1, 40},
		{2, 39},
		{20, 21},
		{40, 1},
		{41, 0},
		{0, 0},
		{-3, 0},
		{100, 0},
	}
	for _, tc := range cases {
		if got := PointsFromRank(tc.rank); got != tc.want {
			t.Errorf("PointsFromRank(%d) = %d, want %d", tc.rank, got, tc.want)
		}
	}
}

// TestRankTimeScenario ranks a 750s time against the canonical seed shape,
// 40 benchmark times evenly spaced from 600s to 1000s. Fifteen benchmark
// times land below 750 (ranks 1..15, up to 744s), so the user sits at rank
// 16 and beats the remaining 25 entries.
func TestRankTimeScenario(t *testing.T) {
	benchmark := timeBenchmark(40, 600, 1000)
	got := Rank(DisciplineTime, Score{TimeSeconds: intPtr(750)}, benchmark)
	if got.BeatenCount != 25 {
		t.Errorf("BeatenCount = %d, want 25", got.BeatenCount)
	}
	if got.Rank != 16 {
		t.Errorf("Rank = %d, want 16", got.Rank)
	}
	if got.Points != 25 {
		t.Errorf("Points = %d, want 25", got.Points)
	}
}

// TestRankRepsScenario ranks 330 reps against 40 benchmark entries evenly
// spaced from 420 down to 260 reps. Entries at ranks 1..22 hold more than
// 330, rank 23 holds exactly 330 (a tie, not beaten), and the last 17 fall
// below; the user lands at rank 23, ahead of the tied entry.
func TestRankRepsScenario(t *testing.T) {
	benchmark := repsBenchmark(40, 420, 260)
	got := Rank(DisciplineReps, Score{Reps: intPtr(330)}, benchmark)
	if got.BeatenCount != 17 {
		t.Errorf("BeatenCount = %d, want 17", got.BeatenCount)
	}
	if got.Rank != 23 {
		t.Errorf("Rank = %d, want 23", got.Rank)
	}
	if got.Points != 18 {
		t.Errorf("Points = %d, want 18", got.Points)
	}
}

// TestRankWorstCase verifies that a user beaten by the whole population
// earns rank N+1 and zero points.
func TestRankWorstCase(t *testing.T) {
	benchmark := timeBenchmark(40, 600, 1000)
	got := Rank(DisciplineTime, Score{TimeSeconds: intPtr(2000)}, benchmark)
	if got.BeatenCount != 0 {
		t.Errorf("BeatenCount = %d, want 0", got.BeatenCount)
	}
	if got.Rank != 41 {
		t.Errorf("Rank = %d, want 41", got.Rank)
	}
	if got.Points != 0 {
		t.Errorf("Points = %d, want 0", got.Points)
	}
}

// TestRankEmptyBenchmark verifies the degenerate population: a lone user
// score ranks first and takes full points.
func TestRankEmptyBenchmark(t *testing.T) {
	got := Rank(DisciplineReps, Score{Reps: intPtr(1)}, nil)
	if got.BeatenCount != 0 || got.Rank != 1 || got.Points != 40 {
		t.Errorf("Rank against empty benchmark = %+v, want beaten 0, rank 1, points 40", got)
	}
}
