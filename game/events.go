package game

import "github.com/rs/zerolog"

// EventKind identifies a discrete simulation event
type EventKind int

const (
	EventShotFired EventKind = iota
	EventEnemyHit
	EventEnemyKilled
	EventEnemyRemoved
	EventPlayerHurt
	EventPlayerDied
	EventPickupCollected
	EventLevelUp
	EventRewardChosen
)

var eventKindNames = [...]string{
	EventShotFired:       "shot_fired",
	EventEnemyHit:        "enemy_hit",
	EventEnemyKilled:     "enemy_killed",
	EventEnemyRemoved:    "enemy_removed",
	EventPlayerHurt:      "player_hurt",
	EventPlayerDied:      "player_died",
	EventPickupCollected: "pickup_collected",
	EventLevelUp:         "level_up",
	EventRewardChosen:    "reward_chosen",
}

func (k EventKind) String() string {
	if int(k) < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is a fire-and-forget notification for audio and effects collaborators
type Event struct {
	Kind EventKind
	Pos  Vec2
	// Kind-specific payload: bullets fired, damage dealt, experience gained, new level
	Amount int
	// Enemy is set for enemy events
	Enemy EnemyKind
	// Reward is set for EventRewardChosen
	Reward RewardID
}

// EventSink receives simulation events. Implementations may read the
// simulation but must not mutate it.
type EventSink interface {
	Notify(ev Event)
}

// EventSinkFunc adapts a plain function to EventSink
type EventSinkFunc func(ev Event)

// Notify calls f(ev)
func (f EventSinkFunc) Notify(ev Event) {
	f(ev)
}

// MultiSink fans events out to several sinks in order
type MultiSink []EventSink

// Notify forwards the event to every sink
func (m MultiSink) Notify(ev Event) {
	for _, s := range m {
		if s != nil {
			s.Notify(ev)
		}
	}
}

// dispatcher shields the simulation from misbehaving sinks
type dispatcher struct {
	sink EventSink
	log  zerolog.Logger
}

// emit delivers one event; a panicking sink is logged and ignored
func (d *dispatcher) emit(ev Event) {
	if d.sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			d.log.Warn().Interface("panic", r).Stringer("event", ev.Kind).Msg("event sink failed")
		}
	}()
	d.sink.Notify(ev)
}
