package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyReward(t *testing.T, id RewardID, p *Player, cfg *Config) {
	t.Helper()
	r, ok := LookupReward(id)
	require.True(t, ok, id)
	r.Apply(p, cfg)
}

func TestLookupReward(t *testing.T) {
	require.Len(t, rewardCatalog, 6)
	for _, want := range rewardCatalog {
		got, ok := LookupReward(want.ID)
		require.True(t, ok, want.ID)
		assert.Equal(t, want.Name, got.Name)
	}

	_, ok := LookupReward("nope")
	assert.False(t, ok)
}

func TestRewardEffects(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("heal caps at max", func(t *testing.T) {
		p := newPlayer(&cfg)
		p.Health = 30
		applyReward(t, RewardHeal, &p, &cfg)
		assert.Equal(t, 80, p.Health)
		applyReward(t, RewardHeal, &p, &cfg)
		assert.Equal(t, 100, p.Health)
	})

	t.Run("more health heals to full", func(t *testing.T) {
		p := newPlayer(&cfg)
		p.Health = 10
		applyReward(t, RewardMoreHealth, &p, &cfg)
		assert.Equal(t, 125, p.MaxHealth)
		assert.Equal(t, 125, p.Health)
	})

	t.Run("faster attack", func(t *testing.T) {
		p := newPlayer(&cfg)
		applyReward(t, RewardFasterAttack, &p, &cfg)
		assert.Equal(t, 1.25, p.AttackSpeedMultiplier)
	})

	t.Run("bigger pickup floors", func(t *testing.T) {
		p := newPlayer(&cfg)
		applyReward(t, RewardBiggerPickup, &p, &cfg)
		assert.Equal(t, 225.0, p.PickupRadius)
		applyReward(t, RewardBiggerPickup, &p, &cfg)
		assert.Equal(t, 337.0, p.PickupRadius)
	})

	t.Run("movement speed clamps", func(t *testing.T) {
		p := newPlayer(&cfg)
		applyReward(t, RewardMovementSpeed, &p, &cfg)
		assert.Equal(t, 3.0, p.Speed)
		applyReward(t, RewardMovementSpeed, &p, &cfg)
		assert.Equal(t, 3.0, p.Speed)
	})
}
