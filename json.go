package histfsm

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// stateBody is the serialized form of a single state.
type stateBody struct {
	Transitions map[Event]State `json:"transitions" yaml:"transitions"`
}

// MarshalJSON implements the json.Marshaler interface.
// States are written in declaration order. The value receiver lets both
// Config and *Config marshal.
func (c Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	initial, err := json.Marshal(c.initial)
	if err != nil {
		return nil, err
	}

	buf.WriteString(`{"initial":`)
	buf.Write(initial)
	buf.WriteString(`,"states":{`)

	for i, state := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(state)
		if err != nil {
			return nil, err
		}

		body, err := json.Marshal(stateBody{Transitions: c.states[state]})
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)
	}

	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The order of the "states" object is kept as the declaration order.
// A null document leaves the configuration untouched.
func (c *Config) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw struct {
		Initial State           `json:"initial"`
		States  json.RawMessage `json:"states"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal fsm config: %w", err)
	}

	config := NewConfig(raw.Initial)

	if len(raw.States) > 0 && !bytes.Equal(raw.States, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(raw.States))

		if err := expectDelim(dec, '{'); err != nil {
			return err
		}

		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("failed to unmarshal fsm states: %w", err)
			}

			var body stateBody
			if err := dec.Decode(&body); err != nil {
				return fmt.Errorf("failed to unmarshal fsm state %q: %w", tok, err)
			}

			config.declare(State(tok.(string)), body)
		}

		if err := expectDelim(dec, '}'); err != nil {
			return err
		}
	}

	*c = *config

	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to unmarshal fsm states: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("failed to unmarshal fsm states: expected %q, got %v", want, tok)
	}

	return nil
}

// declare adds a decoded state and its transitions.
func (c *Config) declare(s State, body stateBody) {
	c.State(s)

	for event, to := range body.Transitions {
		c.Transition(s, event, to)
	}
}
