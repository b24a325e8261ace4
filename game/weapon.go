package game

import "time"

// WeaponConfig holds the player's auto-fire tuning
type WeaponConfig struct {
	// FireInterval is the base time between volleys at attack speed 1
	FireInterval time.Duration `yaml:"fire_interval"`

	// BulletSpeed is the projectile speed in units per tick
	BulletSpeed float64 `yaml:"bullet_speed"`

	// BulletRadius is the projectile collision radius
	BulletRadius float64 `yaml:"bullet_radius"`

	// SpreadStep is the angle in radians between adjacent bullets of a volley
	SpreadStep float64 `yaml:"spread_step"`

	// HitRadiusScale and HitFudge shape the projectile hit test:
	// dist < (enemy radius + bullet radius) * HitRadiusScale + HitFudge
	HitRadiusScale float64 `yaml:"hit_radius_scale"`
	HitFudge       float64 `yaml:"hit_fudge"`
}

// Cooldown returns the volley interval scaled by the attack speed multiplier
func (wc WeaponConfig) Cooldown(attackSpeedMultiplier float64) time.Duration {
	if attackSpeedMultiplier <= 0 {
		attackSpeedMultiplier = 1
	}
	return time.Duration(float64(wc.FireInterval) / attackSpeedMultiplier)
}

// CanShoot checks if the weapon is ready to fire based on time since last shot.
// A weapon that has never fired is always ready.
func (wc WeaponConfig) CanShoot(sinceLastShot time.Duration, hasFired bool, attackSpeedMultiplier float64) bool {
	if !hasFired {
		return true
	}
	return sinceLastShot >= wc.Cooldown(attackSpeedMultiplier)
}

// SpreadOffsets returns the angular offset of each bullet in a volley of n.
// Offsets are symmetric around the center index (n-1)/2.
func (wc WeaponConfig) SpreadOffsets(n int) []float64 {
	offsets := make([]float64, n)
	center := float64(n-1) / 2
	for i := range offsets {
		offsets[i] = (float64(i) - center) * wc.SpreadStep
	}
	return offsets
}
