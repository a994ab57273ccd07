package simulator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report is the serialisable summary of a simulation run.
type Report struct {
	RunID     string     `yaml:"run_id"`
	Strategy  string     `yaml:"strategy"`
	Size      int        `yaml:"size"`
	Seed      int64      `yaml:"seed"`
	Workers   int        `yaml:"workers"`
	Elapsed   string     `yaml:"elapsed"`
	Games     int        `yaml:"games"`
	Wins      int        `yaml:"wins"`
	Losses    int        `yaml:"losses"`
	WinRate   float64    `yaml:"win_rate"`
	WinRateCI [2]float64 `yaml:"win_rate_ci95,flow"`

	MeanTurns   float64 `yaml:"mean_turns"`
	MeanScore   float64 `yaml:"mean_score"`
	ScoreStdDev float64 `yaml:"score_stddev"`
	MedianScore float64 `yaml:"median_score"`
	P90Score    float64 `yaml:"p90_score"`

	// LossTargets maps a roll total to the number of games it ended.
	LossTargets map[int]int `yaml:"loss_targets"`
}

// NewReport summarises r under runID.
func NewReport(runID string, r *Result) Report {
	s := r.Stats
	lo, hi := s.WinRateCI95()

	losses := make(map[int]int)
	for target, n := range s.LossTargets {
		if n > 0 {
			losses[target] = n
		}
	}

	return Report{
		RunID:       runID,
		Strategy:    r.Strategy,
		Size:        r.Size,
		Seed:        r.Seed,
		Workers:     r.Workers,
		Elapsed:     r.Elapsed.String(),
		Games:       s.Games,
		Wins:        s.Wins,
		Losses:      s.Losses,
		WinRate:     s.WinRate(),
		WinRateCI:   [2]float64{lo, hi},
		MeanTurns:   s.MeanTurns(),
		MeanScore:   s.MeanScore(),
		ScoreStdDev: s.StdDev(),
		MedianScore: s.Median(),
		P90Score:    s.Percentile(0.9),
		LossTargets: losses,
	}
}

var (
	summaryHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Width(16)
	summaryValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)
)

// Summary renders the report for the console.
func (r Report) Summary() string {
	var sb strings.Builder
	sb.WriteString(summaryHeader.Render(fmt.Sprintf("Simulation %s", r.RunID)))
	sb.WriteString("\n")

	row := func(label, value string) {
		sb.WriteString(summaryLabel.Render(label))
		sb.WriteString(summaryValue.Render(value))
		sb.WriteString("\n")
	}

	row("Strategy", r.Strategy)
	row("Board", fmt.Sprintf("1..%d", r.Size-1))
	row("Games", fmt.Sprintf("%d (%d workers, %s)", r.Games, r.Workers, r.Elapsed))
	row("Win rate", fmt.Sprintf("%.2f%% [%.2f%%, %.2f%%]", r.WinRate*100, r.WinRateCI[0]*100, r.WinRateCI[1]*100))
	row("Mean turns", fmt.Sprintf("%.2f", r.MeanTurns))
	row("Mean score", fmt.Sprintf("%.2f ± %.2f", r.MeanScore, r.ScoreStdDev))
	row("Median score", fmt.Sprintf("%.1f (p90 %.1f)", r.MedianScore, r.P90Score))

	for target := 2; target <= 12; target++ {
		if n, ok := r.LossTargets[target]; ok {
			row(fmt.Sprintf("Lost on %d", target), fmt.Sprintf("%d", n))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
