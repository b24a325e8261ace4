package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = -1
	_, err := NewSimulation(cfg, Options{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewSimulationInitialState(t *testing.T) {
	sim, _, _ := newTestSim(t, DefaultConfig())

	p := sim.Player()
	assert.Equal(t, Vec2{360, 360}, p.Pos)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.ExpToNext)
	assert.Empty(t, sim.Enemies())
	assert.Empty(t, sim.Projectiles())
	assert.Empty(t, sim.Pickups())
	assert.False(t, sim.GameOver())
	assert.False(t, sim.RewardPending())
	assert.Equal(t, Vec2{720, 720}, sim.Bounds())
}

func TestPlayerMovementIsClamped(t *testing.T) {
	sim, _, _ := newTestSim(t, quietConfig())

	sim.Tick(Intent{Right: true, Down: true})
	p := sim.Player()
	assert.Equal(t, Vec2{362.5, 362.5}, p.Pos)
	assert.True(t, p.Moving)

	for i := 0; i < 400; i++ {
		sim.Tick(Intent{Left: true, Up: true})
	}
	assert.Equal(t, Vec2{64, 64}, sim.Player().Pos)
}

func TestAutoFireCadence(t *testing.T) {
	sim, clock, rec := newTestSim(t, quietConfig())

	// Nothing to aim at
	sim.Tick(Intent{})
	assert.Empty(t, sim.Projectiles())

	placeEnemy(sim, EnemyKindBasic, Vec2{660, 360})
	sim.Tick(Intent{})
	assert.Len(t, sim.Projectiles(), 1)
	assert.Equal(t, 1, sim.Stats().BulletsFired)

	clock.Advance(499 * time.Millisecond)
	sim.Tick(Intent{})
	assert.Len(t, sim.Projectiles(), 1)

	clock.Advance(time.Millisecond)
	sim.Tick(Intent{})
	assert.Len(t, sim.Projectiles(), 2)
	assert.Equal(t, 2, rec.count(EventShotFired))
}

func TestAutoFireAimsAtNearestLivingEnemy(t *testing.T) {
	sim, _, _ := newTestSim(t, quietConfig())
	dead := placeEnemy(sim, EnemyKindBasic, Vec2{360, 260})
	dead.State = EnemyDying
	dead.DeathTicks = 100
	placeEnemy(sim, EnemyKindBasic, Vec2{660, 360})
	placeEnemy(sim, EnemyKindBasic, Vec2{60, 360})

	sim.Tick(Intent{})
	shots := sim.Projectiles()
	require.Len(t, shots, 1)

	// Both living enemies are 300 away; the first found wins the tie
	assert.InDelta(t, 0, math.Atan2(shots[0].Vel.Y, shots[0].Vel.X), 1e-9)
}

func TestMoreBulletsSpread(t *testing.T) {
	sim, _, _ := newTestSim(t, quietConfig())
	sim.player.BulletsPerShot = 2
	placeEnemy(sim, EnemyKindBasic, Vec2{560, 360})

	sim.Tick(Intent{})
	shots := sim.Projectiles()
	require.Len(t, shots, 2)
	assert.Equal(t, 2, sim.Stats().BulletsFired)

	assert.InDelta(t, -0.1, math.Atan2(shots[0].Vel.Y, shots[0].Vel.X), 1e-9)
	assert.InDelta(t, 0.1, math.Atan2(shots[1].Vel.Y, shots[1].Vel.X), 1e-9)
	for _, s := range shots {
		assert.InDelta(t, 10, s.Vel.Len(), 1e-9)
	}
}

func TestProjectileHitsAtMostOneEnemy(t *testing.T) {
	sim, _, rec := newTestSim(t, quietConfig())
	holdFire(sim)
	first := placeEnemy(sim, EnemyKindBasic, Vec2{100, 100})
	second := placeEnemy(sim, EnemyKindBasic, Vec2{121, 100})
	sim.projectiles = append(sim.projectiles, Projectile{Pos: Vec2{110.5, 100}, Radius: 5})

	sim.Tick(Intent{})

	assert.Empty(t, sim.Projectiles())
	assert.Equal(t, 1, rec.count(EventEnemyHit))
	assert.Equal(t, 1, rec.count(EventEnemyKilled))
	assert.True(t, first.Alive())
	assert.Equal(t, EnemyDying, second.State)
}

func TestProjectileLeavesArena(t *testing.T) {
	sim, _, _ := newTestSim(t, quietConfig())
	sim.projectiles = append(sim.projectiles, Projectile{Pos: Vec2{715, 360}, Vel: Vec2{10, 0}, Radius: 5})

	sim.Tick(Intent{})
	assert.Empty(t, sim.Projectiles())
}

func TestTankDeathDropsOnePickup(t *testing.T) {
	sim, _, rec := newTestSim(t, quietConfig())
	holdFire(sim)
	tank := placeEnemy(sim, EnemyKindTank, Vec2{100, 100})

	for i := 0; i < 4; i++ {
		require.False(t, sim.collisions.DamageEnemy(tank))
	}
	require.True(t, sim.collisions.DamageEnemy(tank))

	for i := 0; i < 59; i++ {
		sim.Tick(Intent{})
	}
	enemies := sim.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, EnemyDying, enemies[0].State)
	assert.Equal(t, 1, enemies[0].DeathTicks)
	assert.Empty(t, sim.Pickups())

	sim.Tick(Intent{})
	assert.Empty(t, sim.Enemies())
	pickups := sim.Pickups()
	require.Len(t, pickups, 1)
	assert.Equal(t, 50, pickups[0].Value)
	assert.Equal(t, Vec2{100, 100}, pickups[0].Pos)
	assert.Equal(t, 1, sim.Stats().EnemiesKilled)
	assert.Equal(t, 1, rec.count(EventEnemyRemoved))

	sim.Tick(Intent{})
	assert.Len(t, sim.Pickups(), 1)
	assert.Equal(t, 1, sim.Stats().EnemiesKilled)
}

func TestEnemiesPursueWithoutOverlapping(t *testing.T) {
	sim, _, _ := newTestSim(t, quietConfig())
	holdFire(sim)
	lead := placeEnemy(sim, EnemyKindBasic, Vec2{100, 360})
	follower := placeEnemy(sim, EnemyKindBasic, Vec2{79.5, 360})

	sim.Tick(Intent{})

	// Newest moves first: the follower is blocked by the lead
	assert.Equal(t, Vec2{102, 360}, lead.Pos)
	assert.Equal(t, Vec2{79.5, 360}, follower.Pos)
	assert.False(t, follower.Moving)
	assert.True(t, lead.Moving)

	sim.Tick(Intent{})
	assert.Equal(t, Vec2{81.5, 360}, follower.Pos)
}

func TestContactDamageAndInvulnerability(t *testing.T) {
	sim, _, rec := newTestSim(t, quietConfig())
	holdFire(sim)
	placeEnemy(sim, EnemyKindBasic, Vec2{410, 360})

	sim.Tick(Intent{})
	assert.Equal(t, 75, sim.Player().Health)
	assert.Equal(t, 60, sim.Player().InvulnerableTicks)

	for i := 0; i < 59; i++ {
		sim.Tick(Intent{})
	}
	assert.Equal(t, 75, sim.Player().Health)

	sim.Tick(Intent{})
	assert.Equal(t, 50, sim.Player().Health)
	assert.Equal(t, 50, sim.Stats().DamageTaken)
	assert.Equal(t, 2, rec.count(EventPlayerHurt))
}

func TestGameOverStopsTheRun(t *testing.T) {
	sim, clock, rec := newTestSim(t, quietConfig())
	clock.Advance(90 * time.Second)
	holdFire(sim)
	sim.player.Health = 10
	placeEnemy(sim, EnemyKindBasic, Vec2{400, 360})
	sim.pickups = append(sim.pickups, Pickup{Pos: sim.player.Pos, Value: 10, Radius: 8})

	report := sim.Tick(Intent{})
	assert.True(t, report.GameOver)
	assert.True(t, sim.GameOver())
	assert.Equal(t, 0, sim.Player().Health)
	assert.Equal(t, 25, sim.Stats().DamageTaken)
	assert.Equal(t, 1, rec.count(EventPlayerDied))

	// Remaining steps were skipped
	assert.Len(t, sim.Pickups(), 1)
	assert.Zero(t, sim.Stats().TotalExperience)

	score := sim.Score()
	clock.Advance(time.Hour)
	assert.Equal(t, 90*time.Second, sim.Survived())
	assert.Equal(t, score, sim.Score())

	ticks := sim.Stats().Ticks
	assert.Equal(t, TickReport{GameOver: true}, sim.Tick(Intent{Right: true}))
	assert.Equal(t, ticks, sim.Stats().Ticks)
	assert.Equal(t, 1, rec.count(EventPlayerDied))
}

func TestPickupAttractionIsPermanent(t *testing.T) {
	sim, _, _ := newTestSim(t, quietConfig())
	sim.pickups = append(sim.pickups,
		Pickup{Pos: Vec2{500, 360}, Value: 20, Radius: 8},
		Pickup{Pos: Vec2{360, 660}, Value: 20, Radius: 8},
	)

	sim.Tick(Intent{})
	pickups := sim.Pickups()
	require.Len(t, pickups, 2)
	assert.True(t, pickups[0].Attracted)
	assert.Equal(t, Vec2{495, 360}, pickups[0].Pos)
	assert.False(t, pickups[1].Attracted)
	assert.Equal(t, Vec2{360, 660}, pickups[1].Pos)

	// Shrinking the radius does not release an attracted orb
	sim.player.PickupRadius = 10
	sim.Tick(Intent{})
	pickups = sim.Pickups()
	assert.True(t, pickups[0].Attracted)
	assert.Equal(t, Vec2{490, 360}, pickups[0].Pos)
}

func TestLevelUpGatesTheSimulation(t *testing.T) {
	sim, _, rec := newTestSim(t, quietConfig())
	pos := sim.player.Pos
	sim.pickups = append(sim.pickups,
		Pickup{Pos: pos, Value: 100, Radius: 8},
		Pickup{Pos: pos, Value: 20, Radius: 8},
	)

	report := sim.Tick(Intent{})
	assert.True(t, report.LevelUpTriggered)
	assert.True(t, report.RewardPending)
	assert.Equal(t, 2, sim.Player().Level)
	assert.Equal(t, 0, sim.Player().Experience)
	assert.Len(t, sim.Pickups(), 1)
	assert.Len(t, sim.PendingRewards(), 3)
	assert.Equal(t, 1, rec.count(EventLevelUp))

	// Frozen until a reward is chosen
	ticks := sim.Stats().Ticks
	assert.Equal(t, TickReport{RewardPending: true}, sim.Tick(Intent{Left: true}))
	assert.Equal(t, ticks, sim.Stats().Ticks)
	assert.Equal(t, Vec2{360, 360}, sim.Player().Pos)

	_, err := sim.ChooseReward(5)
	assert.ErrorIs(t, err, ErrInvalidReward)
	assert.True(t, sim.RewardPending())

	_, err = sim.ChooseReward(0)
	require.NoError(t, err)
	assert.False(t, sim.RewardPending())
	assert.Equal(t, 1, rec.count(EventRewardChosen))

	_, err = sim.ChooseReward(0)
	assert.ErrorIs(t, err, ErrNoPendingReward)

	sim.Tick(Intent{})
	assert.Empty(t, sim.Pickups())
	assert.Equal(t, 20, sim.Player().Experience)
	assert.Equal(t, 120, sim.Stats().TotalExperience)
}

func TestSpawnCadence(t *testing.T) {
	sim, _, _ := newTestSim(t, DefaultConfig())

	for i := 0; i < 34; i++ {
		sim.Tick(Intent{})
	}
	assert.Empty(t, sim.Enemies())

	sim.Tick(Intent{})
	enemies := sim.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, EntityID(1), enemies[0].ID)
}

func TestLivingEnemiesNeverOverlap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnInterval = 3
	sim, clock, _ := newTestSim(t, cfg)
	pilot := NewAutopilot()

	for tick := 0; tick < 3000 && !sim.GameOver(); tick++ {
		if sim.RewardPending() {
			_, err := sim.ChooseReward(0)
			require.NoError(t, err)
		}
		sim.Tick(pilot.Intent(sim))
		clock.Advance(time.Second / 60)

		living := make([]Enemy, 0, len(sim.enemies))
		for _, e := range sim.Enemies() {
			if e.Alive() {
				living = append(living, e)
			}
		}
		for i := range living {
			for j := i + 1; j < len(living); j++ {
				require.False(t, circlesOverlap(living[i].Pos, living[i].Radius, living[j].Pos, living[j].Radius),
					"tick %d: enemies %d and %d overlap", tick, living[i].ID, living[j].ID)
			}
		}
	}
	assert.Positive(t, sim.Stats().Ticks)
}

func TestPanickingSinkIsContained(t *testing.T) {
	cfg := quietConfig()
	sim, err := NewSimulation(cfg, Options{
		Clock: NewManualClock(time.Unix(0, 0)),
		Rand:  testRNG(),
		Sink:  EventSinkFunc(func(Event) { panic("boom") }),
	})
	require.NoError(t, err)
	placeEnemy(sim, EnemyKindBasic, Vec2{660, 360})

	assert.NotPanics(t, func() { sim.Tick(Intent{}) })
	assert.Len(t, sim.Projectiles(), 1)
}

func TestRestartRebuildsState(t *testing.T) {
	sim, _, _ := newTestSim(t, DefaultConfig())
	for i := 0; i < 100; i++ {
		sim.Tick(Intent{Up: true})
	}
	runID := sim.Stats().RunID
	require.NotEmpty(t, sim.Enemies())

	sim.Restart()
	assert.Empty(t, sim.Enemies())
	assert.Empty(t, sim.Projectiles())
	assert.Zero(t, sim.Stats().Ticks)
	assert.NotEqual(t, runID, sim.Stats().RunID)
	assert.Equal(t, Vec2{360, 360}, sim.Player().Pos)
}

func TestAccessorsReturnCopies(t *testing.T) {
	sim, _, _ := newTestSim(t, quietConfig())
	placeEnemy(sim, EnemyKindBasic, Vec2{100, 100})

	enemies := sim.Enemies()
	enemies[0].Pos = Vec2{1, 1}
	p := sim.Player()
	p.Health = 1

	assert.Equal(t, Vec2{100, 100}, sim.Enemies()[0].Pos)
	assert.Equal(t, 100, sim.Player().Health)
}

func TestPauseDoesNotAddSurvivalTime(t *testing.T) {
	wall := NewManualClock(time.Unix(1000, 0))
	clock := NewPausableClock(wall)
	sim, err := NewSimulation(quietConfig(), Options{Clock: clock, Rand: testRNG()})
	require.NoError(t, err)

	sim.Tick(Intent{})
	wall.Advance(10 * time.Second)
	score := sim.Score()
	require.Equal(t, 10*time.Second, sim.Survived())

	clock.Pause()
	wall.Advance(time.Hour)
	assert.Equal(t, score, sim.Score())
	assert.Equal(t, 10*time.Second, sim.Survived())

	clock.Resume()
	wall.Advance(time.Second)
	assert.Equal(t, 11*time.Second, sim.Survived())
	assert.Equal(t, score+1, sim.Score())

	// Waiting on a reward choice is not a pause
	sim.pickups = append(sim.pickups, Pickup{Pos: sim.player.Pos, Value: 100, Radius: 8})
	sim.Tick(Intent{})
	require.True(t, sim.RewardPending())
	wall.Advance(5 * time.Second)
	assert.Equal(t, 16*time.Second, sim.Survived())
}

func TestSpawnedEnemyChasesAndHitsOnce(t *testing.T) {
	sim, _, rec := newTestSim(t, quietConfig())
	holdFire(sim)

	// West edge, halfway down, basic roll
	sim.spawner = NewSpawner(&sim.cfg, &stubRand{ints: []int{int(EdgeLeft)}, floats: []float64{0.5, 0.1}})
	sim.spawnCounter = sim.cfg.SpawnInterval - 1
	sim.Tick(Intent{})

	enemies := sim.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, EnemyKindBasic, enemies[0].Kind)
	assert.Equal(t, Vec2{0, 360}, enemies[0].Pos)

	// 2 units per tick; contact once the gap is under (64+10)*0.8
	moves := 0
	for sim.Player().Health == 100 {
		require.Less(t, moves, 200, "enemy never reached the player")
		sim.Tick(Intent{})
		moves++
	}
	e := sim.Enemies()[0]
	assert.Equal(t, 151, moves)
	assert.InDelta(t, 302, e.Pos.X, 1e-9)
	assert.Equal(t, 360.0, e.Pos.Y)
	assert.Equal(t, 75, sim.Player().Health)
	assert.Equal(t, 1, rec.count(EventPlayerHurt))

	// Still touching for the whole invulnerability window
	for i := 0; i < 59; i++ {
		sim.Tick(Intent{})
	}
	assert.Equal(t, 75, sim.Player().Health)
	assert.Equal(t, 25, sim.Stats().DamageTaken)
	assert.Equal(t, 1, rec.count(EventPlayerHurt))
}
