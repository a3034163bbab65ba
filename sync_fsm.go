package histfsm

import "github.com/enetx/g"

// Sync wraps the machine in a SyncFSM. The machine must not be used directly afterwards.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Current is the thread-safe version of FSM.Current.
func (sf *SyncFSM) Current() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// History is the thread-safe version of FSM.History.
// It returns a copy of the position stack.
func (sf *SyncFSM) History() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.History()
}

// Future is the thread-safe version of FSM.Future.
// It returns a copy of the redo stack.
func (sf *SyncFSM) Future() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Future()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM) States() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States()
}

// StatesFor is the thread-safe version of FSM.StatesFor.
func (sf *SyncFSM) StatesFor(event Event) g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.StatesFor(event)
}

// Trigger is the thread-safe version of FSM.Trigger.
// It atomically applies a transition in response to an event.
func (sf *SyncFSM) Trigger(event Event) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Trigger(event)
}

// SetState is the thread-safe version of FSM.SetState.
func (sf *SyncFSM) SetState(s State) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.SetState(s)
}

// Reset is the thread-safe version of FSM.Reset.
func (sf *SyncFSM) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// Undo is the thread-safe version of FSM.Undo.
func (sf *SyncFSM) Undo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Undo()
}

// Redo is the thread-safe version of FSM.Redo.
func (sf *SyncFSM) Redo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Redo()
}

// CanUndo is the thread-safe version of FSM.CanUndo.
func (sf *SyncFSM) CanUndo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanUndo()
}

// CanRedo is the thread-safe version of FSM.CanRedo.
func (sf *SyncFSM) CanRedo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanRedo()
}

// ClearHistory is the thread-safe version of FSM.ClearHistory.
func (sf *SyncFSM) ClearHistory() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.ClearHistory()
}

// ToDOT is the thread-safe version of FSM.ToDOT.
func (sf *SyncFSM) ToDOT() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToDOT()
}

// Do runs fn with exclusive access to the machine, so a mutation and the
// reads that follow it see the same state. fn must not keep the machine.
func (sf *SyncFSM) Do(fn func(*FSM) error) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return fn(sf.fsm)
}
