package histfsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// State represents a named state of the machine.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// Observer is notified after every successful change of the machine's position.
	// It runs synchronously and must not call back into the machine.
	Observer func(Change)

	// ChangeKind identifies the operation that produced a Change.
	ChangeKind int

	// Change describes a single successful mutation of the machine.
	// Depth is the length of the position stack and Pending the length of
	// the redo stack, both measured after the change.
	Change struct {
		Kind    ChangeKind
		From    State
		To      State
		Event   Event
		Depth   int
		Pending int
	}

	// Config is the static description of a machine: its initial state and,
	// for every declared state, the event -> target transition table.
	// States keep the order in which they were declared.
	Config struct {
		initial State
		order   g.Slice[State]
		states  g.Map[State, g.Map[Event, State]]
	}

	// FSM is the state machine engine.
	FSM struct {
		config    *Config
		position  g.Slice[State]
		future    g.Slice[State]
		observers g.Slice[Observer]
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It serializes every operation with a sync.RWMutex; transitions are still
	// applied one at a time.
	SyncFSM struct {
		fsm *FSM
		mu  sync.RWMutex
	}
)

const (
	ChangeTrigger ChangeKind = iota
	ChangeUndo
	ChangeRedo
	ChangeSetState
	ChangeReset
	ChangeClear
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeTrigger:
		return "trigger"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	case ChangeSetState:
		return "set_state"
	case ChangeReset:
		return "reset"
	case ChangeClear:
		return "clear"
	default:
		return "unknown"
	}
}
