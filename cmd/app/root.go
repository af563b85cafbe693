package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gezi",
		Short: "Travel itinerary service",
		Long: `Gezi turns travel plans from the planner backend into editable day-by-day
itineraries and exports them as spreadsheets, print pages or calendar links.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newParseCmd(), newExportCmd())
	return root
}

// readInput reads the file named by args, or stdin when there is none or it
// is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}
