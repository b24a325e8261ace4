package game

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoPendingReward is returned when a reward is chosen outside a level-up
	ErrNoPendingReward = errors.New("no reward choice pending")
	// ErrInvalidReward is returned for an index outside the offered options
	ErrInvalidReward = errors.New("invalid reward index")
)

// Rand is the subset of *math/rand.Rand the simulation draws from
type Rand interface {
	Intn(n int) int
	Float64() float64
	Perm(n int) []int
}

// expThreshold returns the experience needed to leave the given level:
// floor(base * growth^(level-1))
func expThreshold(pc ProgressConfig, level int) int {
	return int(math.Floor(pc.ExpBase * math.Pow(pc.ExpGrowth, float64(level-1))))
}

// Progression owns the experience curve and the pending reward gate
type Progression struct {
	cfg     *Config
	rng     Rand
	pending []Reward
}

// NewProgression creates a progression engine with no pending choice
func NewProgression(cfg *Config, rng Rand) *Progression {
	return &Progression{cfg: cfg, rng: rng}
}

// GainExperience adds experience and reports whether the player leveled up.
// At most one level is gained per call even when the award crosses several
// thresholds; the surplus stays in Experience for the next award.
func (pr *Progression) GainExperience(p *Player, stats *Stats, amount int) bool {
	if amount <= 0 {
		return false
	}
	p.Experience += amount
	stats.TotalExperience += amount

	if p.Experience >= p.ExpToNext {
		p.Experience -= p.ExpToNext
		p.Level++
		p.ExpToNext = expThreshold(pr.cfg.Progress, p.Level)
		return true
	}
	return false
}

// Pending reports whether a reward choice is waiting for the player
func (pr *Progression) Pending() bool {
	return len(pr.pending) > 0
}

// Options returns a copy of the currently offered rewards
func (pr *Progression) Options() []Reward {
	if len(pr.pending) == 0 {
		return nil
	}
	out := make([]Reward, len(pr.pending))
	copy(out, pr.pending)
	return out
}

// Offer draws distinct rewards from the catalog without replacement and
// opens the reward gate
func (pr *Progression) Offer() []Reward {
	n := min(pr.cfg.Progress.RewardChoices, len(rewardCatalog))
	perm := pr.rng.Perm(len(rewardCatalog))
	pr.pending = make([]Reward, n)
	for i := 0; i < n; i++ {
		pr.pending[i] = rewardCatalog[perm[i]]
	}
	return pr.Options()
}

// Choose applies the reward at index and closes the gate.
// An invalid call leaves every piece of state untouched.
func (pr *Progression) Choose(index int, p *Player, stats *Stats) (Reward, error) {
	if !pr.Pending() {
		return Reward{}, ErrNoPendingReward
	}
	if index < 0 || index >= len(pr.pending) {
		return Reward{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidReward, index, len(pr.pending))
	}

	reward := pr.pending[index]
	reward.Apply(p, pr.cfg)
	stats.RewardsChosen++
	stats.observe(p)
	pr.pending = nil
	return reward, nil
}
