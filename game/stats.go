package game

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Stats holds the run statistics read by the scoring and summary collaborators.
// Counters only ever grow; the Max fields are watermarks.
type Stats struct {
	RunID     uuid.UUID `yaml:"run_id"`
	StartedAt time.Time `yaml:"started_at"`
	Ticks     int       `yaml:"ticks"`

	EnemiesKilled   int `yaml:"enemies_killed"`
	BulletsFired    int `yaml:"bullets_fired"`
	DamageTaken     int `yaml:"damage_taken"`
	TotalExperience int `yaml:"total_experience"`
	RewardsChosen   int `yaml:"rewards_chosen"`

	MaxHealthReached  int `yaml:"max_health_reached"`
	MaxBulletsPerShot int `yaml:"max_bullets_per_shot"`
}

// newStats creates zeroed counters with watermarks seeded from the player
func newStats(p *Player, now time.Time) Stats {
	return Stats{
		RunID:             uuid.New(),
		StartedAt:         now,
		MaxHealthReached:  p.MaxHealth,
		MaxBulletsPerShot: p.BulletsPerShot,
	}
}

// observe raises the watermarks to the player's current values
func (s *Stats) observe(p *Player) {
	s.MaxHealthReached = max(s.MaxHealthReached, p.MaxHealth)
	s.MaxBulletsPerShot = max(s.MaxBulletsPerShot, p.BulletsPerShot)
}

// Accuracy returns kills per bullet fired, or zero before the first shot
func (s Stats) Accuracy() float64 {
	if s.BulletsFired == 0 {
		return 0
	}
	return float64(s.EnemiesKilled) / float64(s.BulletsFired)
}

// FinalScore computes the end-of-run score from final statistics and player state
func FinalScore(s Stats, p Player, survived time.Duration) int {
	score := 0

	// Experience is worth 10 points each
	score += s.TotalExperience * 10

	// Enemies killed are worth 50 points each
	score += s.EnemiesKilled * 50

	// Survival time bonus (1 point per whole second)
	score += int(survived / time.Second)

	// Level bonus (100 points per level above 1)
	score += (p.Level - 1) * 100

	// Efficiency bonus
	if s.BulletsFired > 0 {
		score += int(math.Floor(s.Accuracy() * 1000))
	}

	// Health conservation bonus
	health := max(p.Health, 0)
	maxPossibleDamage := max(1000, s.DamageTaken+health)
	score += int(math.Floor(float64(health) / float64(maxPossibleDamage) * 500))

	return score
}
