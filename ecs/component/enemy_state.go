package component

import "github.com/jakecoffman/cp"

// StateID identifies an enemy FSM state.
type StateID string

// EventID identifies an enemy FSM trigger event.
type EventID string

const (
	StatePatrol      StateID = "patrol"
	StateInvestigate StateID = "investigate"
	StateChase       StateID = "chase"
	StateSearch      StateID = "search"
)

const (
	// EventTargetClose fires when the target is within chase distance. It is
	// evaluated before every other trigger, regardless of state.
	EventTargetClose EventID = "target_close"
	// EventTargetNoticed fires when the target is within notice distance but
	// outside chase distance.
	EventTargetNoticed EventID = "target_noticed"
	// EventTargetLost fires when the target is beyond notice distance, and
	// also as the forced far signal when investigate reaches the last known
	// point without reacquiring the target.
	EventTargetLost EventID = "target_lost"
	// EventSearchExpired fires when the search countdown crosses zero.
	EventSearchExpired EventID = "search_expired"
)

// EnemyState is the per-entity FSM runtime. LastKnown is only refreshed
// while the target is visible (chase ticks and chase/investigate entry); it
// deliberately stays stale through search and patrol, so the enemy
// "forgets" the target until it is seen again.
type EnemyState struct {
	Current      StateID
	PatrolCenter cp.Vector
	PatrolAngle  float64
	LastKnown    cp.Vector
	SearchTimer  float64

	// Disabled is set after the missing-body error has been reported once;
	// the controller runs no further per-tick logic for this entity.
	Disabled bool
}

var EnemyStateComponent = NewComponent[EnemyState]()

// EnemyTransition is the event payload pushed on the world queue whenever an
// enemy changes state.
type EnemyTransition struct {
	Entity   int
	From     StateID
	To       StateID
	Trigger  EventID
	Distance float64
}

const EnemyTransitionEvent = "enemy_transition"
