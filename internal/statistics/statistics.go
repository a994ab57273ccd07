package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one autoplayed game.
type GameResult struct {
	Seed        int64 // RNG seed for this game (for replay)
	Won         bool
	Turns       int // moves applied before the game ended
	Score       int // sum of options left on the board; 0 on a win
	OptionsLeft int
	LostOn      int // target of the roll that ended a lost game
}

// Statistics aggregates game results.
type Statistics struct {
	Games  int
	Wins   int
	Losses int

	SumTurns  int
	SumScore  int
	SumScore2 float64   // sum of squares for variance calculation
	Values    []float64 // scores, for median/percentile

	// LossTargets[t] counts losses ended by a roll summing to t.
	LossTargets [13]int
}

// Add incorporates a game result.
func (s *Statistics) Add(r GameResult) {
	s.Games++
	s.SumTurns += r.Turns
	s.SumScore += r.Score
	s.SumScore2 += float64(r.Score * r.Score)
	s.Values = append(s.Values, float64(r.Score))

	if r.Won {
		s.Wins++
		return
	}
	s.Losses++
	if r.LostOn >= 2 && r.LostOn <= 12 {
		s.LossTargets[r.LostOn]++
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.SumTurns += other.SumTurns
	s.SumScore += other.SumScore
	s.SumScore2 += other.SumScore2
	s.Values = append(s.Values, other.Values...)
	for i := range s.LossTargets {
		s.LossTargets[i] += other.LossTargets[i]
	}
}

// WinRate returns the fraction of games won.
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// WinRateCI95 returns the Wilson score 95% interval for the win rate.
func (s *Statistics) WinRateCI95() (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	const z = 1.96
	n := float64(s.Games)
	p := s.WinRate()
	denom := 1 + z*z/n
	centre := (p + z*z/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

// MeanTurns returns the average number of moves per game.
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumTurns) / float64(s.Games)
}

// MeanScore returns the average remaining score.
func (s *Statistics) MeanScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumScore) / float64(s.Games)
}

// Variance returns the sample variance of the remaining score.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanScore()
	return (s.SumScore2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the remaining score.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(0, s.Variance()))
}

// Median returns the median remaining score.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the remaining score at percentile p (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the counters are internally consistent.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if s.Wins+s.Losses != s.Games {
		return fmt.Errorf("wins (%d) + losses (%d) does not match games (%d)", s.Wins, s.Losses, s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)", len(s.Values), s.Games)
	}
	total := 0
	for _, n := range s.LossTargets {
		total += n
	}
	if total != s.Losses {
		return fmt.Errorf("loss targets total (%d) does not match losses (%d)", total, s.Losses)
	}
	return nil
}
