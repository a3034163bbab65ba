package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enetx/histfsm"
)

func (a *app) statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states [event]",
		Short: "List configured states, or only those accepting an event",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			config, err := a.loadConfig()
			if err != nil {
				return err
			}

			m, err := histfsm.New(config)
			if err != nil {
				return err
			}

			states := m.States()
			if len(args) == 1 {
				states = m.StatesFor(histfsm.Event(args[0]))
			}

			for state := range states.Iter() {
				fmt.Fprintln(a.out, state)
			}

			return nil
		},
	}
}
