package tracker

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"worktick/internal/core/model"
)

// ErrNotResolvable indicates the foreground program identity could not
// be determined. Callers treat it the same as an untracked program.
var ErrNotResolvable = errors.New("foreground program not resolvable")

// ErrIdleUnsupported indicates idle detection is not available on this
// system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// ForegroundResolver maps the current foreground window to the absolute
// path of its owning executable.
type ForegroundResolver interface {
	Resolve() (string, error)
}

// IdleSensor reports the duration of user inactivity.
type IdleSensor interface {
	IdleDuration() (time.Duration, error)
}

// Store persists the tracked set and the ledger. Implementations must
// serialize writes per resource.
type Store interface {
	SavePrograms(paths []string) error
	SaveLedger(total time.Duration) error
	RecordSession(total time.Duration) error
	LastSession() (time.Duration, error)
}

// Options contains the engine's collaborators.
type Options struct {
	Resolver ForegroundResolver
	Idle     IdleSensor
	Store    Store
	Logger   *zap.Logger

	// OwnPath is the running binary's executable path. Foreground
	// add/remove commands ignore it so a hotkey pressed while this
	// app is focused does not track the tracker.
	OwnPath string

	// QueueSize bounds the command queue. Commands enqueued beyond it
	// are dropped with a warning rather than blocking the caller.
	QueueSize int
}

// Engine is the tracking state machine. A single goroutine owns the
// tracked set, the ledger and the current state; collaborators interact
// through the command queue and subscriber channels.
type Engine struct {
	mu       sync.Mutex
	config   model.TrackerConfig
	set      *TrackedSet
	ledger   *Ledger
	goal     *GoalMonitor
	state    State
	lastTick time.Time

	resolver ForegroundResolver
	idle     IdleSensor
	store    Store
	logger   *zap.Logger
	ownPath  string

	idleSupported bool

	commands chan Command
	events   []chan Event
	stopCh   chan struct{}
	running  bool
}

// New creates an Engine seeded with previously persisted state.
func New(config model.TrackerConfig, programs []string, prior time.Duration, options Options) *Engine {
	config = config.Normalized()
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.QueueSize <= 0 {
		options.QueueSize = 16
	}

	engine := &Engine{
		config:        config,
		set:           NewTrackedSet(programs),
		ledger:        NewLedger(prior),
		goal:          NewGoalMonitor(config.Goal),
		state:         StateInactive,
		resolver:      options.Resolver,
		idle:          options.Idle,
		store:         options.Store,
		logger:        options.Logger,
		ownPath:       options.OwnPath,
		idleSupported: true,
		commands:      make(chan Command, options.QueueSize),
		stopCh:        make(chan struct{}),
	}
	return engine
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.running {
		engine.mu.Unlock()
		return
	}
	engine.running = true
	engine.state = StateInactive
	engine.lastTick = time.Time{}
	engine.mu.Unlock()

	engine.emit(Event{
		Type:  EventStateChange,
		State: StateInactive,
		At:    time.Now(),
	})

	go engine.run()
}

// Stop terminates the ticking loop, flushes the ledger and closes
// observer channels.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	close(engine.stopCh)
	engine.running = false
	total := engine.ledger.Total()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	if engine.store != nil {
		if err := engine.store.SaveLedger(total); err != nil {
			engine.logger.Warn("flush ledger on stop", zap.Error(err))
		}
	}

	for _, ch := range events {
		close(ch)
	}
}

// Enqueue submits a command for processing on the next tick boundary.
// It never blocks; a full queue drops the command.
func (engine *Engine) Enqueue(command Command) {
	select {
	case engine.commands <- command:
	default:
		engine.logger.Warn("command queue full, dropping",
			zap.String("command", string(command.Type)))
	}
}

// State returns the current tracking state.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// Total returns the accrued working duration.
func (engine *Engine) Total() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.ledger.Total()
}

// Programs returns the tracked executable paths in insertion order.
func (engine *Engine) Programs() []string {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.set.List()
}

// Config returns the current runtime configuration.
func (engine *Engine) Config() model.TrackerConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

func (engine *Engine) run() {
	ticker := time.NewTicker(engine.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-engine.stopCh:
			return
		case tickTime := <-ticker.C:
			engine.tick(tickTime)
		}
	}
}

// tick executes one read-decide-write cycle. Commands queued since the
// previous tick are applied first so mutations never interleave with
// the decision.
func (engine *Engine) tick(tickTime time.Time) {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}

	engine.drainCommandsLocked(tickTime)

	elapsed := time.Duration(0)
	if !engine.lastTick.IsZero() {
		elapsed = tickTime.Sub(engine.lastTick)
		if elapsed < 0 {
			elapsed = 0
		}
	}
	engine.lastTick = tickTime

	tracked := false
	if engine.resolver != nil {
		if path, err := engine.resolver.Resolve(); err == nil {
			tracked = engine.set.Contains(path)
		}
	}

	next := StateInactive
	if tracked && !engine.isIdleLocked(tickTime) {
		next = StateActive
	}

	if next == StateActive && elapsed > 0 {
		engine.ledger.Accrue(elapsed)
		engine.saveLedgerLocked()
		engine.emitLedgerLocked(tickTime)
	}

	if next != engine.state {
		engine.state = next
		engine.emitLocked(Event{
			Type:  EventStateChange,
			State: next,
			Total: engine.ledger.Total(),
			At:    tickTime,
		})
	}
	engine.mu.Unlock()
}

func (engine *Engine) isIdleLocked(now time.Time) bool {
	if engine.idle == nil || !engine.idleSupported {
		return false
	}
	idleFor, err := engine.idle.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			engine.idleSupported = false
			engine.emitLocked(Event{
				Type:    EventIdleError,
				State:   engine.state,
				Message: err.Error(),
				At:      now,
			})
			return false
		}
		// Degraded default: treat a failed idle query as "never
		// idle" so tracking keeps accruing instead of silently
		// undercounting.
		engine.logger.Debug("idle query failed", zap.Error(err))
		return false
	}
	return idleFor >= engine.config.IdleTimeout
}

func (engine *Engine) drainCommandsLocked(now time.Time) {
	for {
		select {
		case command := <-engine.commands:
			engine.applyCommandLocked(command, now)
		default:
			return
		}
	}
}

func (engine *Engine) applyCommandLocked(command Command, now time.Time) {
	switch command.Type {
	case CmdAddProgram:
		engine.addProgramLocked(command.Program, now)

	case CmdRemoveProgram:
		engine.removeProgramLocked(command.Program, now)

	case CmdAddForeground:
		if path, ok := engine.resolveForCommandLocked(); ok {
			engine.addProgramLocked(path, now)
		}

	case CmdRemoveForeground:
		if path, ok := engine.resolveForCommandLocked(); ok {
			engine.removeProgramLocked(path, now)
		}

	case CmdSetIdleTimeout:
		if command.Duration > 0 {
			engine.config.IdleTimeout = command.Duration
		}

	case CmdSetGoal:
		engine.config.Goal = command.Duration
		engine.goal.SetGoal(command.Duration, engine.ledger.Total())

	case CmdResetLedger:
		if total := engine.ledger.Total(); total > 0 && engine.store != nil {
			if err := engine.store.RecordSession(total); err != nil {
				engine.logger.Warn("record session", zap.Error(err))
			}
		}
		engine.ledger.Reset()
		engine.saveLedgerLocked()
		engine.emitLedgerLocked(now)

	case CmdResumeLedger:
		if engine.store == nil {
			return
		}
		prior, err := engine.store.LastSession()
		if err != nil {
			engine.logger.Warn("load previous session", zap.Error(err))
			return
		}
		engine.ledger.Resume(prior)
		engine.saveLedgerLocked()
		engine.emitLedgerLocked(now)

	case CmdManualSetLedger:
		if command.Duration < 0 {
			return
		}
		engine.ledger.ManualSet(command.Duration)
		engine.saveLedgerLocked()
		engine.emitLedgerLocked(now)

	default:
		engine.logger.Warn("unknown command", zap.String("command", string(command.Type)))
	}
}

// resolveForCommandLocked resolves the foreground program for a hotkey
// command, skipping this application's own window.
func (engine *Engine) resolveForCommandLocked() (string, bool) {
	if engine.resolver == nil {
		return "", false
	}
	path, err := engine.resolver.Resolve()
	if err != nil {
		engine.logger.Debug("resolve for command", zap.Error(err))
		return "", false
	}
	if engine.ownPath != "" && path == engine.ownPath {
		return "", false
	}
	return path, true
}

func (engine *Engine) addProgramLocked(path string, now time.Time) {
	result := engine.set.Add(path)
	if result == Added {
		engine.savePrograms()
	}
	engine.emitLocked(Event{
		Type:    EventAddResult,
		State:   engine.state,
		Program: path,
		Add:     result,
		At:      now,
	})
}

func (engine *Engine) removeProgramLocked(path string, now time.Time) {
	result := engine.set.Remove(path)
	if result == Removed {
		engine.savePrograms()
	}
	engine.emitLocked(Event{
		Type:    EventRemoveResult,
		State:   engine.state,
		Program: path,
		Remove:  result,
		At:      now,
	})
}

func (engine *Engine) savePrograms() {
	if engine.store == nil {
		return
	}
	if err := engine.store.SavePrograms(engine.set.List()); err != nil {
		// In-memory state stays authoritative until the next
		// successful write.
		engine.logger.Warn("save tracked programs", zap.Error(err))
	}
}

func (engine *Engine) saveLedgerLocked() {
	if engine.store == nil {
		return
	}
	if err := engine.store.SaveLedger(engine.ledger.Total()); err != nil {
		engine.logger.Warn("save ledger", zap.Error(err))
	}
}

// emitLedgerLocked publishes the new total and fires the goal monitor
// on the first crossing.
func (engine *Engine) emitLedgerLocked(now time.Time) {
	total := engine.ledger.Total()
	engine.emitLocked(Event{
		Type:  EventLedgerUpdate,
		State: engine.state,
		Total: total,
		At:    now,
	})
	if engine.goal.Check(total) {
		engine.emitLocked(Event{
			Type:  EventGoalReached,
			State: engine.state,
			Total: total,
			At:    now,
		})
	}
}

func (engine *Engine) emit(event Event) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.emitLocked(event)
}

func (engine *Engine) emitLocked(event Event) {
	events := append([]chan Event(nil), engine.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
