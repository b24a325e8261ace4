package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpThreshold(t *testing.T) {
	pc := DefaultConfig().Progress
	assert.Equal(t, 100, expThreshold(pc, 1))
	assert.Equal(t, 150, expThreshold(pc, 2))
	assert.Equal(t, 225, expThreshold(pc, 3))
	assert.Equal(t, 337, expThreshold(pc, 4))
}

func TestGainExperienceOneLevelPerAward(t *testing.T) {
	cfg := DefaultConfig()
	pr := NewProgression(&cfg, testRNG())
	p := newPlayer(&cfg)
	var stats Stats

	assert.True(t, pr.GainExperience(&p, &stats, 300))
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 200, p.Experience)
	assert.Equal(t, 150, p.ExpToNext)

	// Surplus carries into the next award
	assert.True(t, pr.GainExperience(&p, &stats, 1))
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 51, p.Experience)
	assert.Equal(t, 225, p.ExpToNext)

	assert.False(t, pr.GainExperience(&p, &stats, 0))
	assert.False(t, pr.GainExperience(&p, &stats, -5))
	assert.Equal(t, 301, stats.TotalExperience)
}

func TestOfferDrawsDistinctRewards(t *testing.T) {
	cfg := DefaultConfig()
	pr := NewProgression(&cfg, testRNG())
	require.False(t, pr.Pending())
	assert.Nil(t, pr.Options())

	for i := 0; i < 50; i++ {
		opts := pr.Offer()
		require.Len(t, opts, cfg.Progress.RewardChoices)

		seen := map[RewardID]bool{}
		for _, r := range opts {
			assert.False(t, seen[r.ID], "duplicate %s", r.ID)
			seen[r.ID] = true
		}
	}
	assert.True(t, pr.Pending())
}

func TestChooseValidatesAndApplies(t *testing.T) {
	cfg := DefaultConfig()
	pr := NewProgression(&cfg, &stubRand{})
	p := newPlayer(&cfg)
	var stats Stats

	_, err := pr.Choose(0, &p, &stats)
	assert.ErrorIs(t, err, ErrNoPendingReward)

	// Identity permutation offers heal, moreBullets, fasterAttack
	pr.Offer()
	before := p
	_, err = pr.Choose(3, &p, &stats)
	assert.ErrorIs(t, err, ErrInvalidReward)
	_, err = pr.Choose(-1, &p, &stats)
	assert.ErrorIs(t, err, ErrInvalidReward)
	assert.Equal(t, before, p)
	assert.True(t, pr.Pending())

	reward, err := pr.Choose(1, &p, &stats)
	require.NoError(t, err)
	assert.Equal(t, RewardMoreBullets, reward.ID)
	assert.Equal(t, 2, p.BulletsPerShot)
	assert.Equal(t, 1, stats.RewardsChosen)
	assert.Equal(t, 2, stats.MaxBulletsPerShot)
	assert.False(t, pr.Pending())
}
