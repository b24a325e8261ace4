package game

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// TickReport tells the frontend what happened during one Tick call
type TickReport struct {
	// GameOver is set on the tick the player's health reached zero and on
	// every call after that
	GameOver bool
	// LevelUpTriggered is set on the tick that opened the reward gate
	LevelUpTriggered bool
	// RewardPending is set while the simulation waits for ChooseReward
	RewardPending bool
}

// Options holds the collaborators a simulation is wired to.
// Every field is optional.
type Options struct {
	// Clock drives auto-fire cadence and survival time; defaults to SystemClock
	Clock Clock
	// Rand drives spawning and reward draws; defaults to a time-seeded source
	Rand Rand
	// Sink receives fire-and-forget events
	Sink EventSink
	// Logger receives run lifecycle logs; defaults to a disabled logger
	Logger *zerolog.Logger
}

// Simulation owns every entity collection of a run and advances them one
// tick at a time. It is not safe for concurrent use: the frontend calls it
// from its frame callback only.
type Simulation struct {
	cfg   Config
	clock Clock
	rng   Rand
	base  zerolog.Logger
	log   zerolog.Logger

	events      dispatcher
	collisions  *CollisionSystem
	progression *Progression
	spawner     *Spawner
	grid        *Grid

	player      Player
	enemies     []*Enemy
	projectiles []Projectile
	pickups     []Pickup
	stats       Stats

	spawnCounter int
	lastShot     time.Time
	hasFired     bool
	gameOver     bool
	endedAt      time.Time
}

// NewSimulation validates the configuration and starts a fresh run
func NewSimulation(cfg Config, opts Options) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:   cfg,
		clock: opts.Clock,
		rng:   opts.Rand,
		base:  zerolog.Nop(),
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger != nil {
		s.base = *opts.Logger
	}
	s.events = dispatcher{sink: opts.Sink}

	s.Restart()
	return s, nil
}

// Restart throws away every entity and statistic and starts a new run
// with the same configuration and collaborators
func (s *Simulation) Restart() {
	cfg := &s.cfg

	s.collisions = NewCollisionSystem(cfg)
	s.progression = NewProgression(cfg, s.rng)
	s.spawner = NewSpawner(cfg, s.rng)
	s.grid = NewGrid(cfg)

	s.player = newPlayer(cfg)
	s.enemies = make([]*Enemy, 0, 64)
	s.projectiles = make([]Projectile, 0, 64)
	s.pickups = make([]Pickup, 0, 64)
	s.stats = newStats(&s.player, s.clock.Now())

	s.spawnCounter = 0
	s.lastShot = time.Time{}
	s.hasFired = false
	s.gameOver = false
	s.endedAt = time.Time{}

	s.log = s.base.With().Str("run", s.stats.RunID.String()).Logger()
	s.events.log = s.log
	s.log.Info().Float64("width", cfg.Width).Float64("height", cfg.Height).Msg("run started")
}

// Tick advances the simulation by exactly one frame. While a reward choice
// is pending or after the game ended it changes nothing and only reports
// the current state.
func (s *Simulation) Tick(in Intent) TickReport {
	if s.gameOver {
		return TickReport{GameOver: true}
	}
	if s.progression.Pending() {
		return TickReport{RewardPending: true}
	}

	now := s.clock.Now()
	s.stats.Ticks++

	s.updatePlayer(in)
	s.updateAutoFire(now)
	s.updateProjectiles()
	s.updateEnemies()
	s.resolveDeaths()
	if s.resolveContacts(now) {
		return TickReport{GameOver: true}
	}
	leveled := s.updatePickups()
	s.updateSpawning()

	return TickReport{
		LevelUpTriggered: leveled,
		RewardPending:    s.progression.Pending(),
	}
}

// updatePlayer applies movement and ticks the player's countdowns
func (s *Simulation) updatePlayer(in Intent) {
	s.player.move(in, s.cfg.Width, s.cfg.Height)
	s.player.updateTimers()
}

// nearestEnemy returns the closest living enemy to the player, or nil
func (s *Simulation) nearestEnemy() *Enemy {
	var nearest *Enemy
	best := 0.0
	for _, e := range s.enemies {
		if !e.Alive() {
			continue
		}
		d := Distance(e.Pos, s.player.Pos)
		if nearest == nil || d < best {
			nearest = e
			best = d
		}
	}
	return nearest
}

// updateAutoFire fires a volley at the nearest enemy once the cooldown elapsed
func (s *Simulation) updateAutoFire(now time.Time) {
	wc := s.cfg.Weapon
	if !wc.CanShoot(now.Sub(s.lastShot), s.hasFired, s.player.AttackSpeedMultiplier) {
		return
	}
	target := s.nearestEnemy()
	if target == nil {
		return
	}

	bearing := Bearing(s.player.Pos, target.Pos)
	offsets := wc.SpreadOffsets(s.player.BulletsPerShot)
	for _, offset := range offsets {
		s.projectiles = append(s.projectiles, Projectile{
			Pos:    s.player.Pos,
			Vel:    FromAngle(bearing+offset, wc.BulletSpeed),
			Radius: wc.BulletRadius,
		})
	}

	s.stats.BulletsFired += len(offsets)
	s.lastShot = now
	s.hasFired = true
	s.events.emit(Event{Kind: EventShotFired, Pos: s.player.Pos, Amount: len(offsets)})
}

// updateProjectiles advances every projectile, drops the ones that left the
// play area and resolves at most one hit per projectile
func (s *Simulation) updateProjectiles() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		if p.outOfBounds(s.cfg.Width, s.cfg.Height) {
			continue
		}

		target := s.collisions.FirstHit(&p, s.enemies)
		if target == nil {
			kept = append(kept, p)
			continue
		}

		// The projectile is consumed by its first hit
		killed := s.collisions.DamageEnemy(target)
		s.events.emit(Event{Kind: EventEnemyHit, Pos: target.Pos, Enemy: target.Kind, Amount: 1})
		if killed {
			s.events.emit(Event{Kind: EventEnemyKilled, Pos: target.Pos, Enemy: target.Kind})
		}
	}
	clear(s.projectiles[len(kept):])
	s.projectiles = kept
}

// updateEnemies moves every living enemy straight at the player. A move
// that would overlap another living enemy is rejected and the enemy stays.
func (s *Simulation) updateEnemies() {
	s.grid.Rebuild(s.enemies)

	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := s.enemies[i]
		if e.HurtTicks > 0 {
			e.HurtTicks--
		}
		if !e.Alive() {
			continue
		}

		dir := Direction(e.Pos, s.player.Pos)
		if dir == (Vec2{}) {
			e.Moving = false
			continue
		}

		next := e.Pos.Add(dir.Scale(e.Speed))
		if s.grid.Overlaps(next, e.Radius, e) {
			e.Moving = false
			continue
		}

		from := e.Pos
		e.Pos = next
		s.grid.Move(e, from)
		e.Moving = true
		e.Facing = dir
	}
}

// resolveDeaths counts dying enemies down and removes the finished ones,
// dropping exactly one experience orb per removed enemy
func (s *Simulation) resolveDeaths() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.State == EnemyDying {
			e.DeathTicks--
			if e.DeathTicks <= 0 {
				s.pickups = append(s.pickups, Pickup{
					Pos:    e.Pos,
					Value:  e.Exp,
					Radius: s.cfg.Pickup.Radius,
				})
				s.stats.EnemiesKilled++
				s.events.emit(Event{Kind: EventEnemyRemoved, Pos: e.Pos, Enemy: e.Kind, Amount: e.Exp})
				continue
			}
		}
		kept = append(kept, e)
	}
	clear(s.enemies[len(kept):])
	s.enemies = kept
}

// resolveContacts applies contact damage and reports whether the run ended
func (s *Simulation) resolveContacts(now time.Time) bool {
	for i := len(s.enemies) - 1; i >= 0; i-- {
		e := s.enemies[i]
		if !s.collisions.Touching(&s.player, e) {
			continue
		}
		if !s.collisions.DamagePlayer(&s.player, &s.stats, e.Damage) {
			continue
		}
		s.events.emit(Event{Kind: EventPlayerHurt, Pos: s.player.Pos, Enemy: e.Kind, Amount: e.Damage})

		if !s.player.Alive() {
			s.gameOver = true
			s.endedAt = now
			s.events.emit(Event{Kind: EventPlayerDied, Pos: s.player.Pos})
			s.log.Info().
				Int("level", s.player.Level).
				Int("kills", s.stats.EnemiesKilled).
				Int("score", s.Score()).
				Dur("survived", s.Survived()).
				Msg("game over")
			return true
		}
	}
	return false
}

// updatePickups attracts, moves and collects experience orbs. Once a
// collection opens the reward gate the remaining orbs wait for the next tick.
func (s *Simulation) updatePickups() bool {
	leveled := false
	kept := s.pickups[:0]
	for i := range s.pickups {
		pk := s.pickups[i]
		if leveled {
			kept = append(kept, pk)
			continue
		}

		dist := Distance(pk.Pos, s.player.Pos)
		if dist <= s.player.PickupRadius {
			pk.Attracted = true
		}
		if pk.Attracted {
			pk.Pos = StepToward(pk.Pos, s.player.Pos, s.cfg.Pickup.Speed)
		}

		if dist > s.player.Radius+pk.Radius {
			kept = append(kept, pk)
			continue
		}

		s.events.emit(Event{Kind: EventPickupCollected, Pos: pk.Pos, Amount: pk.Value})
		if s.progression.GainExperience(&s.player, &s.stats, pk.Value) {
			leveled = true
			s.openRewardGate()
		}
	}
	clear(s.pickups[len(kept):])
	s.pickups = kept
	return leveled
}

// openRewardGate draws reward options and pauses the simulation
func (s *Simulation) openRewardGate() {
	options := s.progression.Offer()
	s.events.emit(Event{Kind: EventLevelUp, Pos: s.player.Pos, Amount: s.player.Level})

	ids := make([]string, len(options))
	for i, r := range options {
		ids[i] = string(r.ID)
	}
	s.log.Debug().Int("level", s.player.Level).Strs("options", ids).Msg("level up")
}

// updateSpawning attempts one spawn every SpawnInterval ticks
func (s *Simulation) updateSpawning() {
	s.spawnCounter++
	if s.spawnCounter < s.cfg.SpawnInterval {
		return
	}
	s.spawnCounter = 0

	s.grid.Rebuild(s.enemies)
	if e := s.spawner.Spawn(s.grid); e != nil {
		s.enemies = append(s.enemies, e)
	}
}

// ChooseReward applies one of the offered rewards and resumes the simulation.
// It fails without side effects when no choice is pending or the index is
// out of range.
func (s *Simulation) ChooseReward(index int) (Reward, error) {
	reward, err := s.progression.Choose(index, &s.player, &s.stats)
	if err != nil {
		return Reward{}, fmt.Errorf("choose reward: %w", err)
	}
	s.events.emit(Event{Kind: EventRewardChosen, Pos: s.player.Pos, Reward: reward.ID})
	s.log.Debug().Str("reward", string(reward.ID)).Int("level", s.player.Level).Msg("reward chosen")
	return reward, nil
}

// Player returns a copy of the player
func (s *Simulation) Player() Player {
	return s.player
}

// Enemies returns a copy of every enemy still present, dying ones included
func (s *Simulation) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = *e
	}
	return out
}

// Projectiles returns a copy of every projectile in flight
func (s *Simulation) Projectiles() []Projectile {
	return slices.Clone(s.projectiles)
}

// Pickups returns a copy of every uncollected orb
func (s *Simulation) Pickups() []Pickup {
	return slices.Clone(s.pickups)
}

// Stats returns a copy of the run statistics
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Bounds returns the play area size
func (s *Simulation) Bounds() Vec2 {
	return Vec2{s.cfg.Width, s.cfg.Height}
}

// Config returns the configuration the run was built with
func (s *Simulation) Config() Config {
	return s.cfg
}

// PendingRewards returns the offered rewards, or nil when none are pending
func (s *Simulation) PendingRewards() []Reward {
	return s.progression.Options()
}

// RewardPending reports whether the simulation waits for ChooseReward
func (s *Simulation) RewardPending() bool {
	return s.progression.Pending()
}

// GameOver reports whether the run has ended
func (s *Simulation) GameOver() bool {
	return s.gameOver
}

// Survived returns the run duration, frozen at the moment of death
func (s *Simulation) Survived() time.Duration {
	end := s.clock.Now()
	if s.gameOver {
		end = s.endedAt
	}
	return end.Sub(s.stats.StartedAt)
}

// Score returns the final score formula applied to the current state
func (s *Simulation) Score() int {
	return FinalScore(s.stats, s.player, s.Survived())
}
