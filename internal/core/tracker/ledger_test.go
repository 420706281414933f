package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerAccrue(t *testing.T) {
	ledger := NewLedger(0)

	ledger.Accrue(time.Second)
	ledger.Accrue(2 * time.Second)

	assert.Equal(t, 3*time.Second, ledger.Total())
}

func TestLedgerNegativeAccrualClamps(t *testing.T) {
	ledger := NewLedger(5 * time.Second)

	ledger.Accrue(-time.Second)

	assert.Equal(t, 5*time.Second, ledger.Total())
}

func TestLedgerMonotonicUnderAccrual(t *testing.T) {
	ledger := NewLedger(0)
	deltas := []time.Duration{time.Second, 0, 250 * time.Millisecond, -time.Hour, time.Second}

	previous := ledger.Total()
	for _, delta := range deltas {
		ledger.Accrue(delta)
		assert.GreaterOrEqual(t, ledger.Total(), previous)
		previous = ledger.Total()
	}
}

func TestLedgerReset(t *testing.T) {
	ledger := NewLedger(time.Hour)

	ledger.Reset()

	assert.Equal(t, time.Duration(0), ledger.Total())
}

func TestLedgerResume(t *testing.T) {
	ledger := NewLedger(0)

	ledger.Resume(90 * time.Minute)
	assert.Equal(t, 90*time.Minute, ledger.Total())

	ledger.Resume(-time.Minute)
	assert.Equal(t, time.Duration(0), ledger.Total())
}

func TestLedgerManualSet(t *testing.T) {
	ledger := NewLedger(time.Hour)

	ledger.ManualSet(10 * time.Minute)
	assert.Equal(t, 10*time.Minute, ledger.Total())

	ledger.ManualSet(-time.Minute)
	assert.Equal(t, 10*time.Minute, ledger.Total(), "negative override must be ignored")
}

func TestNewLedgerNegativeStartsAtZero(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewLedger(-time.Hour).Total())
}
