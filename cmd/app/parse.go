package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"gezi/internal/itinerary"
)

func newParseCmd() *cobra.Command {
	var noFallback bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a plan and print the schedule as JSON",
		Long: `Parse a plan file, or stdin, into a day-by-day schedule. JSON strings and
arrays are decoded as backend plans, anything else is read as plan text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			res := itinerary.ParseInput(data)
			days := res.Days
			if noFallback && res.Fallback {
				days = []itinerary.ScheduleDay{}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(days)
		},
	}
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "print [] instead of the example schedule when nothing is recognized")
	return cmd
}
