package game

import "math"

// AutopilotBehavior selects what the autopilot steers toward
type AutopilotBehavior int

const (
	// AutopilotKite flees nearby enemies and collects orbs when safe
	AutopilotKite AutopilotBehavior = iota
	// AutopilotCenter holds the middle of the arena and only dodges
	AutopilotCenter
	// AutopilotIdle never moves
	AutopilotIdle
)

// Autopilot is an IntentProvider that plays the game on its own. It drives
// the headless runner and the demo mode of the frontends.
type Autopilot struct {
	Behavior AutopilotBehavior

	// DangerRadius is the clearance, measured between circle edges, under
	// which the autopilot runs from an enemy
	DangerRadius float64

	// DeadZone suppresses an axis whose steering component is smaller than this
	DeadZone float64
}

// NewAutopilot creates a kiting autopilot with default tuning
func NewAutopilot() *Autopilot {
	return &Autopilot{
		Behavior:     AutopilotKite,
		DangerRadius: 120,
		DeadZone:     0.3,
	}
}

// Intent computes the next movement intent from the current state
func (a *Autopilot) Intent(v View) Intent {
	if a.Behavior == AutopilotIdle {
		return Intent{}
	}

	p := v.Player()
	bounds := v.Bounds()
	center := bounds.Scale(0.5)

	// Threats push away with a weight that grows as they close in
	var steer Vec2
	threatened := false
	for _, e := range v.Enemies() {
		if e.State != EnemyAlive {
			continue
		}
		gap := Distance(p.Pos, e.Pos) - p.Radius - e.Radius
		if gap >= a.DangerRadius {
			continue
		}
		threatened = true
		weight := 1 - math.Max(gap, 0)/a.DangerRadius
		steer = steer.Add(Direction(e.Pos, p.Pos).Scale(1 + 2*weight))
	}

	switch {
	case threatened:
		// Pull toward the center so fleeing does not pin the player to a wall
		steer = steer.Add(Direction(p.Pos, center).Scale(0.5))
	case a.Behavior == AutopilotKite:
		if target, ok := nearestLooseOrb(p, v.Pickups()); ok {
			steer = Direction(p.Pos, target)
		} else {
			steer = a.homeStep(p.Pos, center)
		}
	default:
		steer = a.homeStep(p.Pos, center)
	}

	return a.toIntent(steer)
}

// homeStep steers toward the center once the player drifted away from it
func (a *Autopilot) homeStep(pos, center Vec2) Vec2 {
	if Distance(pos, center) < a.DangerRadius/2 {
		return Vec2{}
	}
	return Direction(pos, center)
}

// toIntent turns a steering vector into digital key presses
func (a *Autopilot) toIntent(steer Vec2) Intent {
	if steer.Len() == 0 {
		return Intent{}
	}
	dir := steer.Scale(1 / steer.Len())
	return Intent{
		Left:  dir.X < -a.DeadZone,
		Right: dir.X > a.DeadZone,
		Up:    dir.Y < -a.DeadZone,
		Down:  dir.Y > a.DeadZone,
	}
}

// nearestLooseOrb returns the closest orb that is not yet flying to the player
func nearestLooseOrb(p Player, pickups []Pickup) (Vec2, bool) {
	var best Vec2
	bestDist := math.Inf(1)
	for _, pk := range pickups {
		if pk.Attracted {
			continue
		}
		if d := Distance(p.Pos, pk.Pos); d < bestDist {
			best, bestDist = pk.Pos, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
