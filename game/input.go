package game

// Intent is the per-tick movement request from the input collaborator
type Intent struct {
	Up, Down, Left, Right bool
}

// IntentProvider defines the interface for anything that steers the player
// (keyboard polling in a frontend, or the autopilot)
type IntentProvider interface {
	// Intent returns the movement intent for the next tick given the current state
	Intent(v View) Intent
}

// View is the read-only state surface exposed to collaborators
type View interface {
	Player() Player
	Enemies() []Enemy
	Projectiles() []Projectile
	Pickups() []Pickup
	Bounds() Vec2
}

// IntentFunc adapts a plain function to IntentProvider
type IntentFunc func(v View) Intent

// Intent calls f(v)
func (f IntentFunc) Intent(v View) Intent {
	return f(v)
}
