package histfsm

import (
	"fmt"

	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// NewConfig creates an empty configuration with the given initial state.
// The initial state is not declared implicitly; declare it with State or Transition.
func NewConfig(initial State) *Config {
	return &Config{
		initial: initial,
		states:  g.NewMap[State, g.Map[Event, State]](),
	}
}

// State declares a state. Declaring an existing state is a no-op and keeps
// its original position in the declaration order.
func (c *Config) State(s State) *Config {
	if !c.states.Contains(s) {
		c.order.Push(s)
		c.states[s] = g.NewMap[Event, State]()
	}

	return c
}

// Transition declares from (if needed) and registers from -> event -> to.
// The target is not declared: entering an undeclared state is allowed,
// use Validate to reject such configurations up front.
func (c *Config) Transition(from State, event Event, to State) *Config {
	c.State(from)
	c.states[from][event] = to

	return c
}

// Initial returns the initial state.
func (c *Config) Initial() State { return c.initial }

// States returns all declared states in declaration order.
func (c *Config) States() g.Slice[State] { return c.order.Clone() }

// Has reports whether s is a declared state.
func (c *Config) Has(s State) bool { return c.states.Contains(s) }

// Target resolves the transition registered for event in state from.
// A transition registered with an empty target does not resolve.
func (c *Config) Target(from State, event Event) (State, bool) {
	table := c.states.Get(from)
	if table.IsNone() {
		return "", false
	}

	to, ok := table.Some()[event]
	if !ok || to == "" {
		return "", false
	}

	return to, true
}

// Events returns the events with a transition out of s, sorted by name.
func (c *Config) Events(s State) g.Slice[Event] {
	events := g.NewSlice[Event]()

	table := c.states.Get(s)
	if table.IsNone() {
		return events
	}

	for event, to := range table.Some() {
		if to != "" {
			events.Push(event)
		}
	}

	events.SortBy(cmp.Cmp)

	return events
}

// Validate checks that the initial state and every transition target are
// declared states. New does not call it; configurations are otherwise
// checked lazily, when an operation needs a state.
func (c *Config) Validate() error {
	if c.initial == "" {
		return &ErrConfiguration{Reason: "initial state is empty"}
	}

	if !c.Has(c.initial) {
		return &ErrConfiguration{Reason: "initial state is not declared", Err: &ErrUnknownState{State: c.initial}}
	}

	for from := range c.order.Iter() {
		for event := range c.Events(from).Iter() {
			to := c.states[from][event]
			if !c.Has(to) {
				return &ErrConfiguration{
					Reason: fmt.Sprintf("transition from %q on %q targets an undeclared state", from, event),
					Err:    &ErrUnknownState{State: to},
				}
			}
		}
	}

	return nil
}
