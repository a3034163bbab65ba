// Package histfsm provides a small finite state machine engine with a linear
// undo/redo history. A machine is described by a Config (an initial state and
// per-state event -> target transition tables) and tracks a position stack of
// visited states together with a future stack of states available for redo.
// It is built with types and utilities from the github.com/enetx/g library.
package histfsm

import "github.com/enetx/g"

// New creates a machine positioned at the configuration's initial state.
// The configuration is stored by reference and must not be modified afterwards.
func New(config *Config) (*FSM, error) {
	if config == nil {
		return nil, &ErrConfiguration{Reason: "configuration is required"}
	}

	return &FSM{
		config:    config,
		position:  g.Slice[State]{config.initial},
		future:    g.NewSlice[State](),
		observers: g.NewSlice[Observer](),
	}, nil
}

// Clone creates a new machine with the same configuration and observers but a fresh history.
func (f *FSM) Clone() *FSM {
	return &FSM{
		config:    f.config,
		position:  g.Slice[State]{f.config.initial},
		future:    g.NewSlice[State](),
		observers: f.observers.Clone(),
	}
}

// Config returns the machine's configuration.
func (f *FSM) Config() *Config { return f.config }

// Current returns the current state.
func (f *FSM) Current() State { return f.position[len(f.position)-1] }

// History returns a copy of the position stack, oldest first. The last element is the current state.
func (f *FSM) History() g.Slice[State] { return f.position.Clone() }

// Future returns a copy of the redo stack. The last element is the state the next Redo moves to.
func (f *FSM) Future() g.Slice[State] { return f.future.Clone() }

// OnChange registers an observer called after every successful change.
func (f *FSM) OnChange(o Observer) *FSM {
	f.observers.Push(o)
	return f
}

// SetState moves the machine to s, discarding the position history.
// The redo stack is left untouched.
func (f *FSM) SetState(s State) error {
	if !f.config.Has(s) {
		return &ErrUnknownState{State: s}
	}

	from := f.Current()
	f.position = g.Slice[State]{s}
	f.notify(ChangeSetState, from, "")

	return nil
}

// Trigger follows the transition registered for event in the current state.
// A successful transition invalidates the redo stack. The target is not
// checked against the configuration; a machine in an undeclared state has
// no transitions.
func (f *FSM) Trigger(event Event) error {
	from := f.Current()

	to, ok := f.config.Target(from, event)
	if !ok {
		return &ErrInvalidTransition{From: from, Event: event}
	}

	f.position.Push(to)
	f.future = g.NewSlice[State]()
	f.notify(ChangeTrigger, from, event)

	return nil
}

// Reset moves the machine back to the initial state, discarding the position history.
// The redo stack is left untouched.
func (f *FSM) Reset() {
	from := f.Current()
	f.position = g.Slice[State]{f.config.initial}
	f.notify(ChangeReset, from, "")
}

// States returns all configured states in configuration order.
func (f *FSM) States() g.Slice[State] { return f.config.States() }

// StatesFor returns the configured states that have a transition for event,
// in configuration order. An empty event returns all states.
func (f *FSM) StatesFor(event Event) g.Slice[State] {
	if event == "" {
		return f.States()
	}

	return f.config.order.Iter().
		Exclude(func(s State) bool {
			_, ok := f.config.Target(s, event)
			return !ok
		}).
		Collect()
}

// CanUndo reports whether Undo would change the machine.
func (f *FSM) CanUndo() bool {
	return len(f.position) > 1 || f.position[0] != f.config.initial
}

// CanRedo reports whether Redo would change the machine.
func (f *FSM) CanRedo() bool { return f.future.NotEmpty() }

// Undo steps back to the previous state, keeping the current one for Redo.
// With no previous state it falls back to the initial state; that fallback
// is not recorded for Redo. It returns false when there is nothing to undo.
func (f *FSM) Undo() bool {
	from := f.Current()

	switch {
	case len(f.position) > 1:
		last := len(f.position) - 1
		f.future.Push(f.position[last])
		f.position = f.position[:last]
	case from != f.config.initial:
		f.position[0] = f.config.initial
	default:
		return false
	}

	f.notify(ChangeUndo, from, "")

	return true
}

// Redo moves forward to the most recently undone state.
// It returns false when the redo stack is empty.
func (f *FSM) Redo() bool {
	if f.future.Empty() {
		return false
	}

	from := f.Current()
	last := len(f.future) - 1
	f.position.Push(f.future[last])
	f.future = f.future[:last]
	f.notify(ChangeRedo, from, "")

	return true
}

// ClearHistory empties the redo stack and moves the machine back to the initial state.
func (f *FSM) ClearHistory() {
	from := f.Current()
	f.future = g.NewSlice[State]()
	f.position = g.Slice[State]{f.config.initial}
	f.notify(ChangeClear, from, "")
}

func (f *FSM) notify(kind ChangeKind, from State, event Event) {
	if f.observers.Empty() {
		return
	}

	change := Change{
		Kind:    kind,
		From:    from,
		To:      f.Current(),
		Event:   event,
		Depth:   len(f.position),
		Pending: len(f.future),
	}

	for o := range f.observers.Iter() {
		o(change)
	}
}
