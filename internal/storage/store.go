package storage

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store bundles the tracked-program file and the ledger database
// behind the engine's persistence contract.
// A per-resource mutex keeps writes to the same file from interleaving.
type Store struct {
	dir    string
	ledger *LedgerDB
	logger *zap.Logger

	programsMu sync.Mutex
}

// NewStore creates a store rooted at dir. ledger may be nil when the
// database could not be opened; ledger operations then degrade to
// no-ops so the engine keeps running on in-memory state.
func NewStore(dir string, ledger *LedgerDB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, ledger: ledger, logger: logger}
}

// SavePrograms serializes the full tracked set.
func (store *Store) SavePrograms(paths []string) error {
	store.programsMu.Lock()
	defer store.programsMu.Unlock()
	return SavePrograms(store.dir, paths)
}

// SaveLedger writes the running total snapshot.
func (store *Store) SaveLedger(total time.Duration) error {
	if store.ledger == nil {
		return nil
	}
	return store.ledger.Save(total)
}

// RecordSession appends a finished total to the resume history.
func (store *Store) RecordSession(total time.Duration) error {
	if store.ledger == nil {
		return nil
	}
	return store.ledger.RecordSession(total)
}

// LastSession returns the most recent recorded total.
func (store *Store) LastSession() (time.Duration, error) {
	if store.ledger == nil {
		return 0, nil
	}
	return store.ledger.LastSession()
}
