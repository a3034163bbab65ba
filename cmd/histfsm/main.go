// Command histfsm loads a state machine configuration and drives it from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/enetx/histfsm"
)

// settings holds the environment defaults for the global flags.
type settings struct {
	Config   string `env:"HISTFSM_CONFIG"`
	LogLevel string `env:"HISTFSM_LOG_LEVEL" envDefault:"info"`
}

func loadSettings() (settings, error) {
	var s settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse environment: %w", err)
	}

	return s, nil
}

type app struct {
	settings settings
	out      io.Writer
	logger   zerolog.Logger
}

func newRootCmd(s settings, out, errOut io.Writer) *cobra.Command {
	a := &app{settings: s, out: out, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "histfsm",
		Short:         "Drive a finite state machine with undo/redo history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			level, err := zerolog.ParseLevel(a.settings.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", a.settings.LogLevel, err)
			}

			a.logger = zerolog.New(errOut).With().Timestamp().Str("component", "histfsm").Logger().Level(level)

			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.settings.Config, "config", "c", s.Config, "machine configuration file (.json, .yaml, .yml)")
	root.PersistentFlags().StringVar(&a.settings.LogLevel, "log-level", s.LogLevel, "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		a.validateCmd(),
		a.statesCmd(),
		a.runCmd(),
		a.dotCmd(),
	)

	return root
}

func (a *app) loadConfig() (*histfsm.Config, error) {
	if a.settings.Config == "" {
		return nil, fmt.Errorf("no configuration file: set --config or HISTFSM_CONFIG")
	}

	config, err := histfsm.LoadConfig(a.settings.Config)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("path", a.settings.Config).
		Str("initial", string(config.Initial())).
		Int("states", len(config.States())).
		Msg("configuration loaded")

	return config, nil
}

func main() {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "histfsm:", err)
		os.Exit(2)
	}

	if err := newRootCmd(s, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "histfsm:", err)
		os.Exit(1)
	}
}
