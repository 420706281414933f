package tracker

import "time"

// CommandType identifies a mutation request for the engine.
type CommandType string

const (
	// CmdAddProgram and CmdRemoveProgram mutate the tracked set by
	// explicit path.
	CmdAddProgram    CommandType = "add_program"
	CmdRemoveProgram CommandType = "remove_program"

	// CmdAddForeground and CmdRemoveForeground resolve the current
	// foreground program when the command is processed. Hotkeys use
	// these so the user can tag whatever is focused.
	CmdAddForeground    CommandType = "add_foreground"
	CmdRemoveForeground CommandType = "remove_foreground"

	CmdSetIdleTimeout CommandType = "set_idle_timeout"
	CmdSetGoal        CommandType = "set_goal"

	CmdResetLedger     CommandType = "reset_ledger"
	CmdResumeLedger    CommandType = "resume_ledger"
	CmdManualSetLedger CommandType = "manual_set_ledger"
)

// Command is a mutation request enqueued by collaborators (GUI, hotkey
// listener) and consumed by the tick loop. Funneling every mutation
// through the queue keeps a single writer on the tracked set and the
// ledger.
type Command struct {
	Type     CommandType
	Program  string
	Duration time.Duration
}
