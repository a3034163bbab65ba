// Package fsmlog logs histfsm changes with zerolog.
package fsmlog

import (
	"github.com/rs/zerolog"

	"github.com/enetx/histfsm"
)

// Observer returns a histfsm.Observer that writes one debug event per change.
func Observer(logger zerolog.Logger) histfsm.Observer {
	return func(c histfsm.Change) {
		e := logger.Debug().
			Str("kind", c.Kind.String()).
			Str("from", string(c.From)).
			Str("to", string(c.To)).
			Int("depth", c.Depth).
			Int("pending", c.Pending)

		if c.Event != "" {
			e = e.Str("event", string(c.Event))
		}

		e.Msg("state changed")
	}
}

// Attach registers the logging observer on m and returns m.
func Attach(m *histfsm.FSM, logger zerolog.Logger) *histfsm.FSM {
	return m.OnChange(Observer(logger))
}
