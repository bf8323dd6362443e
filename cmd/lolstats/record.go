package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecordCmd(d deps, root *rootOptions) *cobra.Command {
	var (
		won      bool
		attempts int
	)

	cmd := &cobra.Command{
		Use:   "record <game-type>",
		Short: "Record one finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := root.tracker(d)
			if err != nil {
				return err
			}

			gameType := args[0]
			if err := tracker.Record(gameType, won, attempts); err != nil {
				return err
			}

			s, _ := tracker.Fetch(gameType)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: played %d, won %d, total attempts %d\n",
				gameType, s.Played, s.Won, s.TotalAttempts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&won, "won", false, "the game was won")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "number of attempts used")
	return cmd
}
