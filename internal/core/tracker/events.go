package tracker

import "time"

// State represents whether elapsed time is currently accruing.
type State string

const (
	StateActive   State = "active"
	StateInactive State = "inactive"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange  EventType = "state_change"
	EventLedgerUpdate EventType = "ledger_update"
	EventGoalReached  EventType = "goal_reached"
	EventAddResult    EventType = "add_result"
	EventRemoveResult EventType = "remove_result"
	EventIdleError    EventType = "idle_error"
)

// AddResult signals the outcome of an add command.
type AddResult string

const (
	Added          AddResult = "added"
	AlreadyPresent AddResult = "already_present"
)

// RemoveResult signals the outcome of a remove command.
type RemoveResult string

const (
	Removed    RemoveResult = "removed"
	NotPresent RemoveResult = "not_present"
)

// Event represents an engine update for observers.
type Event struct {
	Type    EventType
	State   State
	Total   time.Duration
	Program string
	Add     AddResult
	Remove  RemoveResult
	Message string
	At      time.Time
}
