package main

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
)

func (a *app) dotCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render the configuration as a Graphviz DOT graph",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			config, err := a.loadConfig()
			if err != nil {
				return err
			}

			dot := string(config.ToDOT())

			if out == "" {
				_, err := io.WriteString(a.out, dot)
				return err
			}

			return writeAtomic(out, dot)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the graph to this file instead of stdout")

	return cmd
}

// writeAtomic replaces path with data, so readers never see a partial graph.
func writeAtomic(path, data string) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := io.WriteString(pending, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
