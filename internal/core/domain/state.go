package domain

import "time"

// State is the lifecycle state of a campaign. It is exposed as a small
// integer so callers can treat it as a 3-value enumeration.
type State uint8

const (
	StateActive State = iota
	StateSuccessful
	StateFailed
)

// Terminal reports whether no further state transition can occur.
func (s State) Terminal() bool {
	return s == StateSuccessful || s == StateFailed
}

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSuccessful:
		return "successful"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// evaluate derives the campaign state from the stored state, the held
// balance, the goal and the deadline. Terminal states are sticky. Reaching
// the goal flips the campaign to Successful even before the deadline;
// failure is only recognized once the deadline has passed, so an
// under-goal campaign stays Active until time runs out.
//
// This is the single place the transition rule lives. Mutating operations
// persist its result into the stored state; Status applies it without
// persisting.
func evaluate(stored State, balance, goal uint64, deadline, now time.Time) State {
	if stored != StateActive {
		return stored
	}
	if balance >= goal {
		return StateSuccessful
	}
	if !now.Before(deadline) {
		return StateFailed
	}
	return StateActive
}
