package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the initial state and every transition target are declared",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			config, err := a.loadConfig()
			if err != nil {
				return err
			}

			if err := config.Validate(); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "ok: %d states, initial %q\n", len(config.States()), config.Initial())

			return nil
		},
	}
}
