package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeView is a fixed snapshot for steering tests
type fakeView struct {
	player  Player
	enemies []Enemy
	pickups []Pickup
}

func (f fakeView) Player() Player            { return f.player }
func (f fakeView) Enemies() []Enemy          { return f.enemies }
func (f fakeView) Projectiles() []Projectile { return nil }
func (f fakeView) Pickups() []Pickup         { return f.pickups }
func (f fakeView) Bounds() Vec2              { return Vec2{720, 720} }

func viewAt(pos Vec2) fakeView {
	cfg := DefaultConfig()
	p := newPlayer(&cfg)
	p.Pos = pos
	return fakeView{player: p}
}

func TestAutopilotFleesNearbyEnemy(t *testing.T) {
	v := viewAt(Vec2{360, 360})
	v.enemies = []Enemy{{Pos: Vec2{460, 360}, Radius: 10, State: EnemyAlive}}

	assert.Equal(t, Intent{Left: true}, NewAutopilot().Intent(v))
}

func TestAutopilotIgnoresDyingEnemies(t *testing.T) {
	v := viewAt(Vec2{360, 360})
	v.enemies = []Enemy{{Pos: Vec2{460, 360}, Radius: 10, State: EnemyDying}}

	assert.Equal(t, Intent{}, NewAutopilot().Intent(v))
}

func TestAutopilotCollectsLooseOrbs(t *testing.T) {
	v := viewAt(Vec2{360, 360})
	v.pickups = []Pickup{
		{Pos: Vec2{360, 100}},
		{Pos: Vec2{380, 360}, Attracted: true},
	}

	assert.Equal(t, Intent{Up: true}, NewAutopilot().Intent(v))

	center := NewAutopilot()
	center.Behavior = AutopilotCenter
	assert.Equal(t, Intent{}, center.Intent(v))
}

func TestAutopilotReturnsToCenter(t *testing.T) {
	pilot := NewAutopilot()

	assert.Equal(t, Intent{Right: true, Down: true}, pilot.Intent(viewAt(Vec2{100, 100})))
	assert.Equal(t, Intent{}, pilot.Intent(viewAt(Vec2{370, 360})))
}

func TestAutopilotIdle(t *testing.T) {
	v := viewAt(Vec2{100, 100})
	v.enemies = []Enemy{{Pos: Vec2{150, 100}, Radius: 10, State: EnemyAlive}}

	pilot := NewAutopilot()
	pilot.Behavior = AutopilotIdle
	assert.Equal(t, Intent{}, pilot.Intent(v))
}
