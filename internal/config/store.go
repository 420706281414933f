package config

import "sync"

// Store guards the mutable runtime configuration that the UI goroutine
// edits and the engine event observer reads concurrently. All access
// goes through Snapshot and Update so neither side sees a torn struct.
type Store struct {
	mu      sync.Mutex
	current Config
}

// NewStore creates a store seeded with the startup configuration.
func NewStore(current Config) *Store {
	return &Store{current: current}
}

// Snapshot returns a copy of the current configuration.
func (store *Store) Snapshot() Config {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.current
}

// Update applies mutate to the current configuration under the lock and
// returns the result.
func (store *Store) Update(mutate func(Config) Config) Config {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current = mutate(store.current)
	return store.current
}
