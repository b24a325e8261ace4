package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"slimesurvivors/game"
)

// tickDuration is the simulated wall time of one frame
const tickDuration = time.Second / 60

// Outcome is how a headless run ended
type Outcome string

const (
	OutcomeDied    Outcome = "died"
	OutcomeTimeout Outcome = "timeout"
)

// RunSummary is the result of one headless run
type RunSummary struct {
	Run      int           `yaml:"run"`
	Seed     int64         `yaml:"seed"`
	Outcome  Outcome       `yaml:"outcome"`
	Score    int           `yaml:"score"`
	Level    int           `yaml:"level"`
	Survived time.Duration `yaml:"survived"`
	Rewards  []string      `yaml:"rewards,omitempty"`
	Stats    game.Stats    `yaml:"stats"`
}

// Summary aggregates a batch of runs
type Summary struct {
	Runs         []RunSummary  `yaml:"runs"`
	MeanScore    float64       `yaml:"mean_score"`
	BestScore    int           `yaml:"best_score"`
	MeanSurvived time.Duration `yaml:"mean_survived"`
	Deaths       int           `yaml:"deaths"`
}

// runner plays batches of games with the autopilot on a simulated clock
type runner struct {
	cfg      game.Config
	maxTicks int
	parallel int
	log      zerolog.Logger
}

// playOne runs a single game to death or maxTicks
func (r *runner) playOne(ctx context.Context, run int, seed int64) (RunSummary, error) {
	clock := game.NewManualClock(time.Unix(0, 0).UTC())
	log := r.log.With().Int("run", run).Logger()

	sim, err := game.NewSimulation(r.cfg, game.Options{
		Clock:  clock,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: &log,
	})
	if err != nil {
		return RunSummary{}, err
	}

	pilot := game.NewAutopilot()
	summary := RunSummary{Run: run, Seed: seed, Outcome: OutcomeTimeout}

	for tick := 0; tick < r.maxTicks; tick++ {
		if tick%600 == 0 {
			if err := ctx.Err(); err != nil {
				return RunSummary{}, err
			}
		}

		// The first offered reward is always taken
		if sim.RewardPending() {
			reward, err := sim.ChooseReward(0)
			if err != nil {
				return RunSummary{}, err
			}
			summary.Rewards = append(summary.Rewards, string(reward.ID))
		}

		report := sim.Tick(pilot.Intent(sim))
		clock.Advance(tickDuration)
		if report.GameOver {
			summary.Outcome = OutcomeDied
			break
		}
	}

	summary.Score = sim.Score()
	summary.Level = sim.Player().Level
	summary.Survived = sim.Survived()
	summary.Stats = sim.Stats()
	return summary, nil
}

// playAll runs `runs` games with seeds derived from baseSeed, at most
// r.parallel at a time, and aggregates them in run order
func (r *runner) playAll(ctx context.Context, runs int, baseSeed int64) (Summary, error) {
	results := make([]RunSummary, runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.parallel))
	for i := range runs {
		seed := baseSeed + int64(i)
		g.Go(func() error {
			res, err := r.playOne(ctx, i+1, seed)
			if err != nil {
				return err
			}
			results[i] = res
			r.log.Info().
				Int("run", res.Run).
				Str("outcome", string(res.Outcome)).
				Int("score", res.Score).
				Dur("survived", res.Survived).
				Msg("run finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return summarize(results), nil
}

// summarize computes the aggregate fields
func summarize(runs []RunSummary) Summary {
	s := Summary{Runs: runs}
	if len(runs) == 0 {
		return s
	}

	var totalScore int
	var totalSurvived time.Duration
	for _, r := range runs {
		totalScore += r.Score
		totalSurvived += r.Survived
		s.BestScore = max(s.BestScore, r.Score)
		if r.Outcome == OutcomeDied {
			s.Deaths++
		}
	}
	s.MeanScore = float64(totalScore) / float64(len(runs))
	s.MeanSurvived = totalSurvived / time.Duration(len(runs))
	return s
}
