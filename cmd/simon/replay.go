package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/simon/game"
	"github.com/lixenwraith/simon/journal"
)

var replayTail int

var replayCmd = &cobra.Command{
	Use:   "replay <session.yaml>",
	Short: "Re-run a recorded session and print the effects it produces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if logFile := setupLogging(opts.debug); logFile != nil {
			defer logFile.Close()
		}

		s, err := journal.LoadFile(args[0])
		if err != nil {
			return err
		}
		return replaySession(cmd.OutOrStdout(), s, replayTail)
	},
}

// replaySession prints the effect trace of s, limited to the last tail
// entries when tail is positive, followed by the final state
func replaySession(w io.Writer, s *journal.Session, tail int) error {
	trace, snap, err := journal.Replay(s, game.WithLogger(logrus.WithField("session", s.ID)))
	if err != nil {
		return fmt.Errorf("replay %s: %w", s.ID, err)
	}

	effects := trace.Effects()
	if tail > 0 {
		effects = trace.Last(tail)
	}

	fmt.Fprintf(w, "session %s seed %d inputs %d\n", s.ID, s.Seed, len(s.Inputs))
	for _, e := range effects {
		fmt.Fprintf(w, "%8dms  %s\n", e.At.Milliseconds(), e)
	}
	fmt.Fprintf(w, "final: phase=%s score=%s strict=%t sequence=%v\n",
		snap.Phase, snap.Score, snap.StrictMode, snap.Sequence)
	return nil
}

func init() {
	replayCmd.Flags().IntVarP(&replayTail, "tail", "n", 0, "Only print the last n effects")
}
