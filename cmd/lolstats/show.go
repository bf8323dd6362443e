package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/decker502/lolgame/pkg/stats"
	"github.com/decker502/lolgame/pkg/utils"
)

func newShowCmd(d deps, root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [game-type]",
		Short: "Show statistics for one or all game types",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := root.tracker(d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				s, ok := tracker.Fetch(args[0])
				if !ok {
					fmt.Fprintf(out, "%s: no data\n", args[0])
					return nil
				}
				return writeTable(out, []string{args[0]}, map[string]stats.GameStats{args[0]: s})
			}

			all, err := tracker.All()
			if err != nil {
				return err
			}
			types, err := tracker.GameTypes()
			if err != nil {
				return err
			}
			if len(types) == 0 {
				fmt.Fprintln(out, "no games recorded")
				return nil
			}
			return writeTable(out, types, all)
		},
	}
}

func writeTable(out io.Writer, types []string, all map[string]stats.GameStats) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GAME\tPLAYED\tWON\tWIN RATE\tAVG ATTEMPTS\tLAST PLAYED")
	for _, gameType := range types {
		s := all[gameType]
		last := "-"
		if s.LastPlayed != nil {
			last = utils.FormatTime(s.LastPlayed.Local())
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%.1f\t%s\n",
			gameType, s.Played, s.Won, s.WinRate()*100, s.AverageAttempts(), last)
	}
	return w.Flush()
}
