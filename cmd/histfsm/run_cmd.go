package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/enetx/histfsm"
	"github.com/enetx/histfsm/fsmlog"
)

type stepKind int

const (
	stepTrigger stepKind = iota
	stepUndo
	stepRedo
	stepReset
	stepClear
	stepGoto
)

// step is one parsed command line step. Plain words are events; words with a
// leading colon are machine operations.
type step struct {
	raw  string
	kind stepKind
	arg  string
}

func parseStep(raw string) (step, error) {
	if !strings.HasPrefix(raw, ":") {
		if raw == "" {
			return step{}, fmt.Errorf("empty step")
		}

		return step{raw: raw, kind: stepTrigger, arg: raw}, nil
	}

	switch op, arg, _ := strings.Cut(raw[1:], "="); op {
	case "undo":
		return step{raw: raw, kind: stepUndo}, nil
	case "redo":
		return step{raw: raw, kind: stepRedo}, nil
	case "reset":
		return step{raw: raw, kind: stepReset}, nil
	case "clear":
		return step{raw: raw, kind: stepClear}, nil
	case "goto":
		if arg == "" {
			return step{}, fmt.Errorf("step %q: missing state, use :goto=<state>", raw)
		}

		return step{raw: raw, kind: stepGoto, arg: arg}, nil
	default:
		return step{}, fmt.Errorf("unknown operation %q", raw)
	}
}

// apply runs s against m. The returned note is empty unless the step was a no-op.
func (s step) apply(m *histfsm.FSM) (note string, err error) {
	switch s.kind {
	case stepTrigger:
		return "", m.Trigger(histfsm.Event(s.arg))
	case stepUndo:
		if !m.Undo() {
			return "nothing to undo", nil
		}
	case stepRedo:
		if !m.Redo() {
			return "nothing to redo", nil
		}
	case stepReset:
		m.Reset()
	case stepClear:
		m.ClearHistory()
	case stepGoto:
		return "", m.SetState(histfsm.State(s.arg))
	}

	return "", nil
}

func (a *app) runCmd() *cobra.Command {
	var (
		keepGoing bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "run STEP...",
		Short: "Apply events and history operations, printing the state after each step",
		Long: `Apply steps in order and print "<step>\t<state>" after each one.

A step is an event name, or one of the operations
  :undo  :redo  :reset  :clear  :goto=<state>`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			steps := make([]step, 0, len(args))
			for _, raw := range args {
				s, err := parseStep(raw)
				if err != nil {
					return err
				}
				steps = append(steps, s)
			}

			config, err := a.loadConfig()
			if err != nil {
				return err
			}

			m, err := histfsm.New(config)
			if err != nil {
				return err
			}

			if verbose {
				fsmlog.Attach(m, a.logger.Level(zerolog.DebugLevel))
			}

			return runSteps(m, steps, keepGoing, a.out, a.logger)
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "report failing steps and continue")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every state change")

	return cmd
}

func runSteps(m *histfsm.FSM, steps []step, keepGoing bool, out io.Writer, logger zerolog.Logger) error {
	fmt.Fprintf(out, "%s\t%s\n", "(start)", m.Current())

	failed := 0

	for i, s := range steps {
		note, err := s.apply(m)
		if err != nil {
			if !keepGoing {
				return fmt.Errorf("step %d (%s): %w", i+1, s.raw, err)
			}

			failed++
			logger.Error().Err(err).Int("step", i+1).Str("op", s.raw).Msg("step failed")
			fmt.Fprintf(out, "%s\t%s\terror: %v\n", s.raw, m.Current(), err)

			continue
		}

		if note != "" {
			fmt.Fprintf(out, "%s\t%s\t(%s)\n", s.raw, m.Current(), note)
			continue
		}

		fmt.Fprintf(out, "%s\t%s\n", s.raw, m.Current())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d steps failed", failed, len(steps))
	}

	return nil
}
