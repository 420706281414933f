package config

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreSnapshotReflectsUpdate(t *testing.T) {
	store := NewStore(Default())

	updated := store.Update(func(current Config) Config {
		current.ShowBorderWhenInactive = true
		current.IdleTimeout = 2 * time.Minute
		return current
	})

	assert.True(t, updated.ShowBorderWhenInactive)
	assert.Equal(t, updated, store.Snapshot())
}

// Mirrors the runtime shape: one goroutine saving preference edits
// while another reads flags on every engine event. Run with -race.
func TestStoreConcurrentEditAndRead(t *testing.T) {
	store := NewStore(Default())

	const iterations = 1000
	var waitGroup sync.WaitGroup
	waitGroup.Add(2)

	go func() {
		defer waitGroup.Done()
		for i := 0; i < iterations; i++ {
			store.Update(func(current Config) Config {
				current.PlaySoundOnIdle = !current.PlaySoundOnIdle
				current.ShowBorderWhenInactive = !current.ShowBorderWhenInactive
				current.Goal = time.Duration(i) * time.Minute
				return current
			})
		}
	}()

	go func() {
		defer waitGroup.Done()
		for i := 0; i < iterations; i++ {
			snapshot := store.Snapshot()
			// The two flags are flipped together, so any snapshot
			// must observe them in agreement.
			assert.Equal(t, snapshot.PlaySoundOnIdle, snapshot.ShowBorderWhenInactive)
		}
	}()

	waitGroup.Wait()
}
