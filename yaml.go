package histfsm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements the yaml.Marshaler interface.
// States are written in declaration order. The value receiver lets both
// Config and *Config marshal.
func (c Config) MarshalYAML() (any, error) {
	states := &yaml.Node{Kind: yaml.MappingNode}

	for state := range c.order.Iter() {
		body := new(yaml.Node)
		if err := body.Encode(stateBody{Transitions: c.states[state]}); err != nil {
			return nil, fmt.Errorf("failed to marshal fsm state %q: %w", state, err)
		}

		states.Content = append(states.Content, scalar(string(state)), body)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("initial"), scalar(string(c.initial)),
			scalar("states"), states,
		},
	}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
// The order of the "states" mapping is kept as the declaration order.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Initial State     `yaml:"initial"`
		States  yaml.Node `yaml:"states"`
	}

	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("failed to unmarshal fsm config: %w", err)
	}

	config := NewConfig(raw.Initial)

	switch {
	case raw.States.Kind == 0, raw.States.Kind == yaml.ScalarNode && raw.States.Tag == "!!null":
	case raw.States.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(raw.States.Content); i += 2 {
			key, node := raw.States.Content[i], raw.States.Content[i+1]

			var body stateBody
			if err := node.Decode(&body); err != nil {
				return fmt.Errorf("failed to unmarshal fsm state %q: %w", key.Value, err)
			}

			config.declare(State(key.Value), body)
		}
	default:
		return fmt.Errorf("failed to unmarshal fsm states: line %d: expected a mapping", raw.States.Line)
	}

	*c = *config

	return nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
