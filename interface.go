package histfsm

import "github.com/enetx/g"

// StateMachine is the surface shared by FSM and SyncFSM.
type StateMachine interface {
	Current() State
	History() g.Slice[State]
	Future() g.Slice[State]
	States() g.Slice[State]
	StatesFor(Event) g.Slice[State]
	Trigger(Event) error
	SetState(State) error
	Reset()
	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool
	ClearHistory()
	ToDOT() g.String
}

// Interface compliance checks.
var (
	_ StateMachine = (*FSM)(nil)
	_ StateMachine = (*SyncFSM)(nil)
)
