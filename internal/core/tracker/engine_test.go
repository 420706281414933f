package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktick/internal/core/model"
)

type fakeResolver struct {
	path string
	err  error
}

func (resolver *fakeResolver) Resolve() (string, error) {
	return resolver.path, resolver.err
}

type fakeIdle struct {
	idle time.Duration
	err  error
}

func (sensor *fakeIdle) IdleDuration() (time.Duration, error) {
	return sensor.idle, sensor.err
}

type fakeStore struct {
	programs    []string
	ledger      time.Duration
	ledgerSaves int
	sessions    []time.Duration
	failWrites  bool
}

func (store *fakeStore) SavePrograms(paths []string) error {
	if store.failWrites {
		return errors.New("disk full")
	}
	store.programs = append([]string(nil), paths...)
	return nil
}

func (store *fakeStore) SaveLedger(total time.Duration) error {
	if store.failWrites {
		return errors.New("disk full")
	}
	store.ledger = total
	store.ledgerSaves++
	return nil
}

func (store *fakeStore) RecordSession(total time.Duration) error {
	if store.failWrites {
		return errors.New("disk full")
	}
	store.sessions = append(store.sessions, total)
	return nil
}

func (store *fakeStore) LastSession() (time.Duration, error) {
	if len(store.sessions) == 0 {
		return 0, nil
	}
	return store.sessions[len(store.sessions)-1], nil
}

func newTestEngine(resolver *fakeResolver, idle *fakeIdle, store *fakeStore) *Engine {
	engine := New(model.TrackerConfig{
		PollInterval: time.Second,
		IdleTimeout:  300 * time.Second,
	}, nil, 0, Options{
		Resolver: resolver,
		Idle:     idle,
		Store:    store,
	})
	// Drive ticks directly instead of running the ticker goroutine.
	engine.running = true
	return engine
}

func drain(events <-chan Event) []Event {
	var collected []Event
	for {
		select {
		case event := <-events:
			collected = append(collected, event)
		default:
			return collected
		}
	}
}

func countType(events []Event, eventType EventType) int {
	count := 0
	for _, event := range events {
		if event.Type == eventType {
			count++
		}
	}
	return count
}

func TestTickScenarioActiveThenIdle(t *testing.T) {
	resolver := &fakeResolver{path: `C:\Work\app.exe`}
	idle := &fakeIdle{}
	store := &fakeStore{}
	engine := newTestEngine(resolver, idle, store)
	events := engine.Subscribe(64)

	engine.Enqueue(Command{Type: CmdAddProgram, Program: `C:\Work\app.exe`})

	start := time.Now()
	for i := 0; i <= 10; i++ {
		engine.tick(start.Add(time.Duration(i) * time.Second))
		assert.Equal(t, StateActive, engine.State(), "tick %d", i)
	}
	// First tick has no prior timestamp, so 11 ticks accrue 10s.
	assert.Equal(t, 10*time.Second, engine.Total())

	idle.idle = 400 * time.Second
	engine.tick(start.Add(11 * time.Second))
	assert.Equal(t, StateInactive, engine.State())
	assert.Equal(t, 10*time.Second, engine.Total(), "idle tick accrues nothing")

	engine.tick(start.Add(12 * time.Second))
	assert.Equal(t, 10*time.Second, engine.Total(), "no accrual while idle")

	collected := drain(events)
	// Inactive -> active -> inactive: two transitions, not one per tick.
	assert.Equal(t, 2, countType(collected, EventStateChange))
	assert.Equal(t, store.ledger, engine.Total())
}

func TestIdleDominatesTrackedProgram(t *testing.T) {
	resolver := &fakeResolver{path: "/usr/bin/code"}
	idle := &fakeIdle{idle: 600 * time.Second}
	engine := newTestEngine(resolver, idle, &fakeStore{})
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/usr/bin/code"})

	start := time.Now()
	engine.tick(start)
	engine.tick(start.Add(time.Second))

	assert.Equal(t, StateInactive, engine.State())
	assert.Zero(t, engine.Total())
}

func TestUnresolvableForegroundIsUntracked(t *testing.T) {
	resolver := &fakeResolver{err: ErrNotResolvable}
	engine := newTestEngine(resolver, &fakeIdle{}, &fakeStore{})
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/usr/bin/code"})

	start := time.Now()
	engine.tick(start)
	engine.tick(start.Add(time.Second))

	assert.Equal(t, StateInactive, engine.State())
	assert.Zero(t, engine.Total())
}

func TestClockRegressionAccruesNothing(t *testing.T) {
	resolver := &fakeResolver{path: "/usr/bin/code"}
	engine := newTestEngine(resolver, &fakeIdle{}, &fakeStore{})
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/usr/bin/code"})

	start := time.Now()
	engine.tick(start)
	engine.tick(start.Add(time.Second))
	require.Equal(t, time.Second, engine.Total())

	// Wall clock moved backward between ticks.
	engine.tick(start.Add(-time.Minute))
	assert.Equal(t, time.Second, engine.Total())

	// The next forward tick measures from the adjusted clock.
	engine.tick(start.Add(-time.Minute + time.Second))
	assert.Equal(t, 2*time.Second, engine.Total())
}

func TestFirstTickAccruesNothing(t *testing.T) {
	resolver := &fakeResolver{path: "/usr/bin/code"}
	engine := newTestEngine(resolver, &fakeIdle{}, &fakeStore{})
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/usr/bin/code"})

	engine.tick(time.Now())

	assert.Equal(t, StateActive, engine.State())
	assert.Zero(t, engine.Total(), "no retroactive accrual before the engine started")
}

func TestAddRemoveCommandsPersistAndSignal(t *testing.T) {
	store := &fakeStore{}
	engine := newTestEngine(&fakeResolver{err: ErrNotResolvable}, &fakeIdle{}, store)
	events := engine.Subscribe(16)

	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/a"})
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/a"})
	engine.Enqueue(Command{Type: CmdRemoveProgram, Program: "/b"})
	engine.tick(time.Now())

	collected := drain(events)
	require.Len(t, collected, 3)
	assert.Equal(t, Added, collected[0].Add)
	assert.Equal(t, AlreadyPresent, collected[1].Add)
	assert.Equal(t, NotPresent, collected[2].Remove)
	assert.Equal(t, []string{"/a"}, store.programs)
}

func TestResetRecordsSessionAndResumeRestores(t *testing.T) {
	store := &fakeStore{}
	engine := newTestEngine(&fakeResolver{path: "/a"}, &fakeIdle{}, store)
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/a"})

	start := time.Now()
	for i := 0; i <= 5; i++ {
		engine.tick(start.Add(time.Duration(i) * time.Second))
	}
	require.Equal(t, 5*time.Second, engine.Total())

	engine.Enqueue(Command{Type: CmdResetLedger})
	engine.tick(start.Add(6 * time.Second))
	assert.Equal(t, time.Second, engine.Total(), "reset applies before the tick accrues")
	assert.Equal(t, []time.Duration{5 * time.Second}, store.sessions)

	engine.Enqueue(Command{Type: CmdManualSetLedger, Duration: 0})
	engine.Enqueue(Command{Type: CmdResumeLedger})
	engine.tick(start.Add(6 * time.Second))
	assert.Equal(t, 5*time.Second, engine.Total())
}

func TestGoalReachedEmittedOnce(t *testing.T) {
	resolver := &fakeResolver{path: "/a"}
	engine := newTestEngine(resolver, &fakeIdle{}, &fakeStore{})
	events := engine.Subscribe(64)
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/a"})
	engine.Enqueue(Command{Type: CmdSetGoal, Duration: 3 * time.Second})

	start := time.Now()
	for i := 0; i <= 6; i++ {
		engine.tick(start.Add(time.Duration(i) * time.Second))
	}

	assert.Equal(t, 1, countType(drain(events), EventGoalReached))
}

func TestPersistenceFailureIsNonFatal(t *testing.T) {
	store := &fakeStore{failWrites: true}
	engine := newTestEngine(&fakeResolver{path: "/a"}, &fakeIdle{}, store)
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/a"})

	start := time.Now()
	engine.tick(start)
	engine.tick(start.Add(time.Second))

	// In-memory state stays authoritative even when every write fails.
	assert.Equal(t, StateActive, engine.State())
	assert.Equal(t, time.Second, engine.Total())
	assert.True(t, engine.set.Contains("/a"))
}

func TestForegroundCommandSkipsOwnExecutable(t *testing.T) {
	resolver := &fakeResolver{path: "/opt/worktick/worktick"}
	engine := New(model.TrackerConfig{PollInterval: time.Second}, nil, 0, Options{
		Resolver: resolver,
		Idle:     &fakeIdle{},
		Store:    &fakeStore{},
		OwnPath:  "/opt/worktick/worktick",
	})
	engine.running = true

	engine.Enqueue(Command{Type: CmdAddForeground})
	engine.tick(time.Now())

	assert.Zero(t, engine.set.Len())

	resolver.path = "/usr/bin/code"
	engine.Enqueue(Command{Type: CmdAddForeground})
	engine.tick(time.Now())

	assert.Equal(t, []string{"/usr/bin/code"}, engine.Programs())
}

func TestIdleUnsupportedDisablesIdleChecks(t *testing.T) {
	idle := &fakeIdle{err: ErrIdleUnsupported}
	engine := newTestEngine(&fakeResolver{path: "/a"}, idle, &fakeStore{})
	events := engine.Subscribe(16)
	engine.Enqueue(Command{Type: CmdAddProgram, Program: "/a"})

	start := time.Now()
	engine.tick(start)
	engine.tick(start.Add(time.Second))

	// Unsupported idle degrades to "never idle" and keeps tracking.
	assert.Equal(t, StateActive, engine.State())
	assert.Equal(t, 1, countType(drain(events), EventIdleError), "reported once, then silenced")
}

func TestStopFlushesLedger(t *testing.T) {
	store := &fakeStore{}
	engine := New(model.TrackerConfig{PollInterval: time.Second}, []string{"/a"}, 42*time.Second, Options{
		Resolver: &fakeResolver{path: "/a"},
		Idle:     &fakeIdle{},
		Store:    store,
	})

	engine.Start()
	engine.Stop()

	assert.Equal(t, 42*time.Second, store.ledger)
}
