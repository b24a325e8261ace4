package game

// EntityID identifies an enemy for the lifetime of a run.
// IDs are handed out by the simulation so collaborators can track
// per-enemy presentation state across ticks.
type EntityID uint64

// Player is the single player-controlled character of a run
type Player struct {
	Pos    Vec2
	Radius float64
	Speed  float64

	Health    int
	MaxHealth int

	// InvulnerableTicks counts down after a hit; no damage is taken while > 0
	InvulnerableTicks int
	// HurtTicks drives the hurt animation only
	HurtTicks int

	Level      int
	Experience int
	ExpToNext  int

	// Upgrade stats
	BulletsPerShot        int
	AttackSpeedMultiplier float64
	PickupRadius          float64

	// Animation hooks
	Moving bool
	Facing Vec2
}

// newPlayer creates the player at the center of the play area
func newPlayer(cfg *Config) Player {
	pc := cfg.Player
	return Player{
		Pos:                   Vec2{cfg.Width / 2, cfg.Height / 2},
		Radius:                pc.Radius,
		Speed:                 clamp(pc.Speed, pc.SpeedMin, pc.SpeedMax),
		Health:                pc.Health,
		MaxHealth:             pc.Health,
		Level:                 1,
		ExpToNext:             expThreshold(cfg.Progress, 1),
		BulletsPerShot:        1,
		AttackSpeedMultiplier: 1,
		PickupRadius:          cfg.Pickup.AttractRadius,
		Facing:                Vec2{0, 1},
	}
}

// Alive reports whether the player still has health left
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Invulnerable reports whether the player is inside the post-hit window
func (p *Player) Invulnerable() bool {
	return p.InvulnerableTicks > 0
}

// move applies the movement intent and keeps the player inside the bounds.
// Diagonal input is not normalized.
func (p *Player) move(in Intent, width, height float64) {
	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}

	p.Moving = in.Left || in.Right || in.Up || in.Down
	if p.Moving {
		p.Facing = Vec2{dx, dy}
	}

	p.Pos.X = clamp(p.Pos.X+dx*p.Speed, p.Radius, width-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y+dy*p.Speed, p.Radius, height-p.Radius)
}

// updateTimers counts the hurt and invulnerability windows down
func (p *Player) updateTimers() {
	if p.HurtTicks > 0 {
		p.HurtTicks--
	}
	if p.InvulnerableTicks > 0 {
		p.InvulnerableTicks--
	}
}

// EnemyState is the lifecycle stage of an enemy
type EnemyState int

const (
	EnemyAlive EnemyState = iota
	EnemyDying
)

// Enemy is a hostile slime pursuing the player
type Enemy struct {
	ID   EntityID
	Kind EnemyKind
	Pos  Vec2

	Radius float64
	Speed  float64
	Damage int
	Exp    int

	// Health is zero for kinds without hit points
	Health    int
	MaxHealth int

	State EnemyState
	// HurtTicks counts down after each hit, lethal or not
	HurtTicks int
	// DeathTicks counts down while dying; the enemy is removed at zero
	DeathTicks int

	Moving bool
	Facing Vec2
}

// newEnemy creates an enemy with the kind's stat record copied in
func newEnemy(id EntityID, kind EnemyKind, pos Vec2, stats EnemyStats) *Enemy {
	return &Enemy{
		ID:        id,
		Kind:      kind,
		Pos:       pos,
		Radius:    stats.Radius,
		Speed:     stats.Speed,
		Damage:    stats.Damage,
		Exp:       stats.Exp,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		State:     EnemyAlive,
	}
}

// Alive reports whether the enemy still participates in movement and combat
func (e *Enemy) Alive() bool {
	return e.State == EnemyAlive
}

// Hurt reports whether the hurt animation is playing
func (e *Enemy) Hurt() bool {
	return e.HurtTicks > 0
}

// HasHealth reports whether the kind takes several hits to kill
func (e *Enemy) HasHealth() bool {
	return e.MaxHealth > 0
}

// Projectile is a straight-flying bullet fired by the player
type Projectile struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// outOfBounds reports whether the projectile left the play area
func (p *Projectile) outOfBounds(width, height float64) bool {
	return p.Pos.X < 0 || p.Pos.X > width || p.Pos.Y < 0 || p.Pos.Y > height
}

// Pickup is an experience orb dropped by a removed enemy
type Pickup struct {
	Pos    Vec2
	Value  int
	Radius float64
	// Attracted never reverts once set
	Attracted bool
}
