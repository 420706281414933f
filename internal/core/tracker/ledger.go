package tracker

import "time"

// Ledger accumulates accrued working time. The total never decreases
// except through Reset, Resume or ManualSet.
type Ledger struct {
	total time.Duration
}

// NewLedger creates a ledger starting at the given total. Negative
// values load as zero.
func NewLedger(total time.Duration) *Ledger {
	if total < 0 {
		total = 0
	}
	return &Ledger{total: total}
}

// Accrue adds elapsed active time. Negative durations, such as a tick
// observed across a backward clock adjustment, add nothing.
func (ledger *Ledger) Accrue(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	ledger.total += elapsed
}

// Reset sets the total to zero.
func (ledger *Ledger) Reset() {
	ledger.total = 0
}

// Resume replaces the total with a previously saved value.
func (ledger *Ledger) Resume(prior time.Duration) {
	if prior < 0 {
		prior = 0
	}
	ledger.total = prior
}

// ManualSet overrides the total with an arbitrary non-negative value.
func (ledger *Ledger) ManualSet(total time.Duration) {
	if total < 0 {
		return
	}
	ledger.total = total
}

// Total returns the accrued duration.
func (ledger *Ledger) Total() time.Duration {
	return ledger.total
}
