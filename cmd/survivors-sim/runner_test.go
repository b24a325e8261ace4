package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"slimesurvivors/game"
)

func newTestRunner(maxTicks int) *runner {
	return &runner{cfg: game.DefaultConfig(), maxTicks: maxTicks, parallel: 2, log: zerolog.Nop()}
}

func TestPlayOneIsDeterministic(t *testing.T) {
	r := newTestRunner(1200)

	a, err := r.playOne(context.Background(), 1, 42)
	require.NoError(t, err)
	b, err := r.playOne(context.Background(), 1, 42)
	require.NoError(t, err)

	// Run IDs are random, everything else follows the seed
	a.Stats.RunID, b.Stats.RunID = [16]byte{}, [16]byte{}
	assert.Equal(t, a, b)
}

func TestPlayOneStopsAtTickLimit(t *testing.T) {
	r := newTestRunner(120)
	res, err := r.playOne(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, OutcomeTimeout, res.Outcome)
	assert.Equal(t, 120, res.Stats.Ticks)
	assert.Equal(t, 120*tickDuration, res.Survived)
}

func TestPlayOneHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRunner(1000).playOne(ctx, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayAllKeepsRunOrder(t *testing.T) {
	summary, err := newTestRunner(300).playAll(context.Background(), 4, 100)
	require.NoError(t, err)

	require.Len(t, summary.Runs, 4)
	for i, run := range summary.Runs {
		assert.Equal(t, i+1, run.Run)
		assert.Equal(t, int64(100+i), run.Seed)
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]RunSummary{
		{Score: 100, Survived: 10 * time.Second, Outcome: OutcomeDied},
		{Score: 300, Survived: 30 * time.Second, Outcome: OutcomeTimeout},
	})
	assert.Equal(t, 200.0, s.MeanScore)
	assert.Equal(t, 300, s.BestScore)
	assert.Equal(t, 20*time.Second, s.MeanSurvived)
	assert.Equal(t, 1, s.Deaths)

	assert.Zero(t, summarize(nil).MeanScore)
}

func TestWriteSummaryYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.yaml")
	err := writeSummary(path, summarize([]RunSummary{{Run: 1, Seed: 9, Score: 50, Outcome: OutcomeDied}}))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 50, decoded["best_score"])

	runs, ok := decoded["runs"].([]any)
	require.True(t, ok)
	first := runs[0].(map[string]any)
	assert.Equal(t, "died", first["outcome"])
	assert.Equal(t, 9, first["seed"])
}
