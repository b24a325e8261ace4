package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// stubRand replays scripted draws; Perm returns the identity permutation
type stubRand struct {
	ints   []int
	floats []float64
}

func (s *stubRand) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *stubRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *stubRand) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// recorder collects every emitted event
type recorder struct {
	events []Event
}

func (r *recorder) Notify(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// quietConfig disables spawning so tests control every enemy
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.SpawnInterval = 1 << 30
	return cfg
}

func newTestSim(t *testing.T, cfg Config) (*Simulation, *ManualClock, *recorder) {
	t.Helper()
	clock := NewManualClock(time.Unix(1000, 0))
	rec := &recorder{}
	sim, err := NewSimulation(cfg, Options{Clock: clock, Rand: testRNG(), Sink: rec})
	require.NoError(t, err)
	return sim, clock, rec
}

// holdFire puts the weapon on cooldown until the clock advances
func holdFire(s *Simulation) {
	s.hasFired = true
	s.lastShot = s.clock.Now()
}

// placeEnemy adds an enemy at an exact position
func placeEnemy(s *Simulation, kind EnemyKind, pos Vec2) *Enemy {
	s.spawner.nextID++
	e := newEnemy(s.spawner.nextID, kind, pos, s.cfg.Enemy.Stats(kind))
	s.enemies = append(s.enemies, e)
	return e
}
