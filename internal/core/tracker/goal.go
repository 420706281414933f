package tracker

import "time"

// GoalMonitor fires once per upward crossing of the configured goal.
// After firing it re-arms only when the observed value drops below the
// goal again, e.g. after a ledger reset.
type GoalMonitor struct {
	goal  time.Duration
	fired bool
}

// NewGoalMonitor creates a monitor. A goal of zero or less means no
// goal is configured and Check never fires.
func NewGoalMonitor(goal time.Duration) *GoalMonitor {
	return &GoalMonitor{goal: goal}
}

// SetGoal replaces the target and re-evaluates arming against the
// current ledger value.
func (monitor *GoalMonitor) SetGoal(goal time.Duration, current time.Duration) {
	monitor.goal = goal
	monitor.fired = goal > 0 && current >= goal
}

// Goal returns the configured target.
func (monitor *GoalMonitor) Goal() time.Duration {
	return monitor.goal
}

// Check observes the ledger value and reports whether the goal was
// crossed on this observation.
func (monitor *GoalMonitor) Check(value time.Duration) bool {
	if monitor.goal <= 0 {
		return false
	}
	if value < monitor.goal {
		monitor.fired = false
		return false
	}
	if monitor.fired {
		return false
	}
	monitor.fired = true
	return true
}
