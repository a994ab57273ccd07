// Package simulator autoplays many games with a bot strategy and aggregates
// the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/dicegame/internal/bot"
	"github.com/lox/dicegame/internal/game"
	"github.com/lox/dicegame/internal/randutil"
	"github.com/lox/dicegame/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Size     int
	Strategy string
	Workers  int
	Seed     int64
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Result is the outcome of a simulation run.
type Result struct {
	Strategy string
	Size     int
	Seed     int64
	Workers  int
	Elapsed  time.Duration
	Stats    *statistics.Statistics
}

// Simulator runs batches of autoplayed games.
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New validates config and creates a simulator.
func New(config Config) (*Simulator, error) {
	if config.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d", config.Games)
	}
	if config.Size < 2 {
		return nil, fmt.Errorf("%w: got %d", game.ErrInvalidSize, config.Size)
	}
	if err := bot.ValidateName(config.Strategy); err != nil {
		return nil, err
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Workers > config.Games {
		config.Workers = config.Games
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Simulator{
		config: config,
		logger: logger.WithPrefix("sim"),
		clock:  clock,
	}, nil
}

// Run plays every game and returns the merged statistics. Game i always uses
// the seed randutil.Derive(Seed, i), so results do not depend on how games
// are spread across workers.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	start := s.clock.Now()
	workers := s.config.Workers

	s.logger.Info("Starting simulation",
		"games", s.config.Games,
		"strategy", s.config.Strategy,
		"size", s.config.Size,
		"workers", workers,
		"seed", s.config.Seed)

	perWorker := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		perWorker[w] = &statistics.Statistics{}
		stats := perWorker[w]

		g.Go(func() error {
			for i := w; i < s.config.Games; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := PlayGame(s.config.Size, s.config.Strategy, randutil.Derive(s.config.Seed, i))
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
				stats.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range perWorker {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.clock.Since(start)
	s.logger.Info("Simulation complete",
		"games", total.Games,
		"wins", total.Wins,
		"winRate", fmt.Sprintf("%.4f", total.WinRate()),
		"elapsed", elapsed)

	return &Result{
		Strategy: s.config.Strategy,
		Size:     s.config.Size,
		Seed:     s.config.Seed,
		Workers:  workers,
		Elapsed:  elapsed,
		Stats:    total,
	}, nil
}

// PlayGame autoplays one game to completion.
func PlayGame(size int, strategy string, seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)
	g, err := game.New(size, game.NewDiceRoller(rng))
	if err != nil {
		return statistics.GameResult{}, err
	}
	b, err := bot.New(strategy, rng)
	if err != nil {
		return statistics.GameResult{}, err
	}

	result := statistics.GameResult{Seed: seed}
	for {
		roll := g.Roll()
		moves := g.Moves()
		if len(moves) == 0 {
			result.Score = g.Score()
			result.OptionsLeft = len(g.Board().Remaining())
			result.LostOn = roll.Sum()
			return result, nil
		}

		d := b.ChooseMove(g.Board(), roll.Sum(), moves)
		if err := g.ApplyMove(d.Move); err != nil {
			return result, fmt.Errorf("strategy %s: %w", b.Name(), err)
		}
		result.Turns++

		if g.HasWon() {
			result.Won = true
			return result, nil
		}
	}
}
