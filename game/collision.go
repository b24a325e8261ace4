package game

// CollisionSystem handles hit detection and damage application between
// the player, enemies and projectiles
type CollisionSystem struct {
	cfg *Config
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *Config) *CollisionSystem {
	return &CollisionSystem{cfg: cfg}
}

// ProjectileHits checks a projectile against one enemy.
// Dying enemies cannot be hit.
func (c *CollisionSystem) ProjectileHits(p *Projectile, e *Enemy) bool {
	if !e.Alive() {
		return false
	}
	wc := c.cfg.Weapon
	reach := (e.Radius+p.Radius)*wc.HitRadiusScale + wc.HitFudge
	return Distance(p.Pos, e.Pos) < reach
}

// FirstHit returns the enemy a projectile strikes, scanning newest first,
// or nil when it hits nothing
func (c *CollisionSystem) FirstHit(p *Projectile, enemies []*Enemy) *Enemy {
	for i := len(enemies) - 1; i >= 0; i-- {
		if c.ProjectileHits(p, enemies[i]) {
			return enemies[i]
		}
	}
	return nil
}

// DamageEnemy applies one damage tick and reports whether it was lethal.
// Every hit starts the hurt countdown; a lethal hit starts the death
// countdown. Kinds without health die on the first hit.
func (c *CollisionSystem) DamageEnemy(e *Enemy) bool {
	if !e.Alive() {
		return false
	}
	e.HurtTicks = c.cfg.Enemy.HurtTicks

	if e.HasHealth() {
		e.Health--
		if e.Health > 0 {
			return false
		}
		e.Health = 0
	}

	e.State = EnemyDying
	e.DeathTicks = c.cfg.Enemy.DeathTicks
	e.Moving = false
	return true
}

// Touching checks if a living enemy is in contact with the player.
// Both circles are shrunk by the contact scale.
func (c *CollisionSystem) Touching(p *Player, e *Enemy) bool {
	if !e.Alive() {
		return false
	}
	scale := c.cfg.Player.ContactScale
	return circlesOverlap(p.Pos, p.Radius*scale, e.Pos, e.Radius*scale)
}

// DamagePlayer applies contact damage unless the player is invulnerable.
// It reports whether the damage landed. Health is clamped at zero while
// the full amount is recorded in the statistics.
func (c *CollisionSystem) DamagePlayer(p *Player, stats *Stats, damage int) bool {
	if p.Invulnerable() || !p.Alive() {
		return false
	}
	p.Health = max(0, p.Health-damage)
	p.InvulnerableTicks = c.cfg.Player.InvulnerableTicks
	p.HurtTicks = c.cfg.Player.HurtTicks
	stats.DamageTaken += damage
	return true
}
