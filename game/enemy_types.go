package game

// EnemyKind defines different types of enemies
type EnemyKind int

const (
	EnemyKindBasic  EnemyKind = iota // Fast, fragile slime
	EnemyKindRanged                  // Slower slime, more experience
	EnemyKindTank                    // Slow, heavy slime with several hit points
	enemyKindCount
)

// EnemyKinds returns every enemy kind in declaration order
func EnemyKinds() []EnemyKind {
	return []EnemyKind{EnemyKindBasic, EnemyKindRanged, EnemyKindTank}
}

// String returns the kind name used in logs and config errors
func (k EnemyKind) String() string {
	switch k {
	case EnemyKindBasic:
		return "basic"
	case EnemyKindRanged:
		return "ranged"
	case EnemyKindTank:
		return "tank"
	default:
		return "unknown"
	}
}

// EnemyStats holds the immutable stat record for one enemy kind
type EnemyStats struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
	Exp    int     `yaml:"exp"`
	// Health is the number of hits the kind survives; zero means one-hit kill
	Health int `yaml:"health"`
}

// Stats returns the stat record for a kind
func (c EnemyConfig) Stats(kind EnemyKind) EnemyStats {
	switch kind {
	case EnemyKindRanged:
		return c.Ranged
	case EnemyKindTank:
		return c.Tank
	default:
		return c.Basic
	}
}

// KindForRoll maps a uniform roll in [0, 1) to an enemy kind using the
// configured weights (40% basic, 30% ranged, 30% tank by default)
func (c EnemyConfig) KindForRoll(roll float64) EnemyKind {
	switch {
	case roll < c.BasicWeight:
		return EnemyKindBasic
	case roll < c.BasicWeight+c.RangedWeight:
		return EnemyKindRanged
	default:
		return EnemyKindTank
	}
}
