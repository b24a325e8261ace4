package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinalScore(t *testing.T) {
	stats := Stats{
		TotalExperience: 100,
		EnemiesKilled:   4,
		BulletsFired:    8,
		DamageTaken:     50,
	}
	p := Player{Level: 3, Health: 50}

	// 1000 exp + 200 kills + 90 seconds + 200 levels + 500 accuracy + 25 health
	assert.Equal(t, 2015, FinalScore(stats, p, 90*time.Second+900*time.Millisecond))
}

func TestFinalScoreWithoutShots(t *testing.T) {
	p := Player{Level: 1, Health: 100}
	assert.Equal(t, 50, FinalScore(Stats{}, p, 0))
}

func TestFinalScoreHeavyDamage(t *testing.T) {
	stats := Stats{DamageTaken: 1500}
	p := Player{Level: 1, Health: 500}

	// 500 / 2000 * 500
	assert.Equal(t, 125, FinalScore(stats, p, 0))
}

func TestStatsWatermarks(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(&cfg)
	s := newStats(&p, time.Unix(0, 0))
	assert.Equal(t, 100, s.MaxHealthReached)
	assert.Equal(t, 1, s.MaxBulletsPerShot)

	p.MaxHealth = 150
	p.BulletsPerShot = 3
	s.observe(&p)
	p.MaxHealth = 120
	s.observe(&p)
	assert.Equal(t, 150, s.MaxHealthReached)
	assert.Equal(t, 3, s.MaxBulletsPerShot)

	assert.Zero(t, s.Accuracy())
	s.BulletsFired, s.EnemiesKilled = 4, 1
	assert.Equal(t, 0.25, s.Accuracy())
}
