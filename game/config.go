package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants.
// A Config is built once at startup and never mutated afterwards; every
// component receives a pointer to the simulation's private copy.
type Config struct {
	// Width is the play area width in world units
	Width float64 `yaml:"width"`

	// Height is the play area height in world units
	Height float64 `yaml:"height"`

	// SpawnInterval is the number of ticks between spawn attempts
	SpawnInterval int `yaml:"spawn_interval"`

	// GridCellSize is the size of each spatial partition cell in world units
	GridCellSize float64 `yaml:"grid_cell_size"`

	Player   PlayerConfig   `yaml:"player"`
	Weapon   WeaponConfig   `yaml:"weapon"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Pickup   PickupConfig   `yaml:"pickup"`
	Progress ProgressConfig `yaml:"progression"`
}

// PlayerConfig holds the player's starting stats
type PlayerConfig struct {
	Radius            float64 `yaml:"radius"`
	Health            int     `yaml:"health"`
	Speed             float64 `yaml:"speed"`
	SpeedMin          float64 `yaml:"speed_min"`
	SpeedMax          float64 `yaml:"speed_max"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
	HurtTicks         int     `yaml:"hurt_ticks"`
	// ContactScale shrinks both circles for enemy contact tests
	ContactScale float64 `yaml:"contact_scale"`
}

// EnemyConfig holds per-kind stat records and shared enemy timers
type EnemyConfig struct {
	HurtTicks  int `yaml:"hurt_ticks"`
	DeathTicks int `yaml:"death_ticks"`

	// Kind roll thresholds: roll < BasicWeight is Basic,
	// roll < BasicWeight+RangedWeight is Ranged, anything else is Tank
	BasicWeight  float64 `yaml:"basic_weight"`
	RangedWeight float64 `yaml:"ranged_weight"`

	Basic  EnemyStats `yaml:"basic"`
	Ranged EnemyStats `yaml:"ranged"`
	Tank   EnemyStats `yaml:"tank"`
}

// PickupConfig holds experience orb tuning
type PickupConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	// AttractRadius is the player's starting pickup radius
	AttractRadius float64 `yaml:"attract_radius"`
}

// ProgressConfig holds the leveling curve and reward draw size
type ProgressConfig struct {
	ExpBase       float64 `yaml:"exp_base"`
	ExpGrowth     float64 `yaml:"exp_growth"`
	RewardChoices int     `yaml:"reward_choices"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:         720,
		Height:        720,
		SpawnInterval: 35,
		GridCellSize:  64,
		Player: PlayerConfig{
			Radius:            64,
			Health:            100,
			Speed:             2.5,
			SpeedMin:          2,
			SpeedMax:          3,
			InvulnerableTicks: 60,
			HurtTicks:         15,
			ContactScale:      0.8,
		},
		Weapon: WeaponConfig{
			FireInterval:   500 * time.Millisecond,
			BulletSpeed:    10,
			BulletRadius:   5,
			SpreadStep:     0.2,
			HitRadiusScale: 0.9,
			HitFudge:       3,
		},
		Enemy: EnemyConfig{
			HurtTicks:    10,
			DeathTicks:   60,
			BasicWeight:  0.4,
			RangedWeight: 0.3,
			Basic:        EnemyStats{Radius: 10, Speed: 2, Damage: 25, Exp: 20},
			Ranged:       EnemyStats{Radius: 10, Speed: 1.5, Damage: 20, Exp: 30},
			Tank:         EnemyStats{Radius: 17, Speed: 1, Damage: 40, Exp: 50, Health: 5},
		},
		Pickup: PickupConfig{
			Radius:        8,
			Speed:         5,
			AttractRadius: 150,
		},
		Progress: ProgressConfig{
			ExpBase:       100,
			ExpGrowth:     1.5,
			RewardChoices: 3,
		},
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the simulation relies on
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: play area %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalidConfig)
	case c.Player.Radius <= 0 || 2*c.Player.Radius > min(c.Width, c.Height):
		return fmt.Errorf("%w: player radius %g does not fit the play area", ErrInvalidConfig, c.Player.Radius)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalidConfig)
	case c.Player.SpeedMin > c.Player.SpeedMax:
		return fmt.Errorf("%w: speed_min %g exceeds speed_max %g", ErrInvalidConfig, c.Player.SpeedMin, c.Player.SpeedMax)
	case c.Player.ContactScale <= 0:
		return fmt.Errorf("%w: contact_scale must be positive", ErrInvalidConfig)
	case c.Weapon.FireInterval <= 0:
		return fmt.Errorf("%w: fire_interval must be positive", ErrInvalidConfig)
	case c.Weapon.BulletSpeed <= 0 || c.Weapon.BulletRadius <= 0:
		return fmt.Errorf("%w: bullet speed %g and radius %g must be positive", ErrInvalidConfig, c.Weapon.BulletSpeed, c.Weapon.BulletRadius)
	case c.Weapon.HitRadiusScale <= 0:
		return fmt.Errorf("%w: hit_radius_scale must be positive", ErrInvalidConfig)
	case c.Pickup.Speed <= 0 || c.Pickup.Radius <= 0:
		return fmt.Errorf("%w: pickup speed %g and radius %g must be positive", ErrInvalidConfig, c.Pickup.Speed, c.Pickup.Radius)
	case c.Enemy.DeathTicks <= 0:
		return fmt.Errorf("%w: death_ticks must be positive", ErrInvalidConfig)
	case c.Enemy.BasicWeight < 0 || c.Enemy.RangedWeight < 0 || c.Enemy.BasicWeight+c.Enemy.RangedWeight > 1:
		return fmt.Errorf("%w: enemy kind weights must be non-negative and sum to at most 1", ErrInvalidConfig)
	case c.Progress.ExpBase <= 0 || c.Progress.ExpGrowth < 1:
		return fmt.Errorf("%w: experience curve must have base > 0 and growth >= 1", ErrInvalidConfig)
	case c.Progress.RewardChoices <= 0 || c.Progress.RewardChoices > len(rewardCatalog):
		return fmt.Errorf("%w: reward_choices must be in [1, %d]", ErrInvalidConfig, len(rewardCatalog))
	}

	for _, kind := range EnemyKinds() {
		stats := c.Enemy.Stats(kind)
		if stats.Radius <= 0 || stats.Speed < 0 || stats.Health < 0 {
			return fmt.Errorf("%w: %s stats are out of range", ErrInvalidConfig, kind)
		}
		// The grid only inspects neighboring cells, so any overlapping pair
		// must be within one cell of each other
		if c.GridCellSize < 2*stats.Radius {
			return fmt.Errorf("%w: grid_cell_size %g is smaller than a %s diameter", ErrInvalidConfig, c.GridCellSize, kind)
		}
	}
	return nil
}

// CellCountX returns the number of grid cells in the X direction
func (c Config) CellCountX() int {
	return int(c.Width/c.GridCellSize) + 1
}

// CellCountY returns the number of grid cells in the Y direction
func (c Config) CellCountY() int {
	return int(c.Height/c.GridCellSize) + 1
}
