package histfsm

import "fmt"

// ErrConfiguration is returned when a machine cannot be built from the supplied
// configuration: the configuration is missing, cannot be decoded, or fails Validate.
type ErrConfiguration struct {
	// Reason is a short description of what is wrong.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ErrConfiguration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("histfsm: invalid configuration: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("histfsm: invalid configuration: %s", e.Reason)
}

// Unwrap allows errors.Is and errors.As to reach the underlying cause.
func (e *ErrConfiguration) Unwrap() error { return e.Err }

// ErrInvalidTransition is returned when the current state has no transition
// registered for the given event.
type ErrInvalidTransition struct {
	From  State
	Event Event
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("histfsm: no transition for event %q from state %q", e.Event, e.From)
}

// ErrUnknownState is returned when a state that is not declared in the
// configuration is requested.
type ErrUnknownState struct {
	State State
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("histfsm: unknown state %q", e.State)
}
