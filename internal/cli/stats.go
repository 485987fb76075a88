package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatsCmd prints the aggregate statistics derived from the history.
func NewStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate quiz statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, closeStore, err := openGateway(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer closeStore()

			stats, err := gateway.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total attempts: %d\n", stats.TotalAttempts)
			fmt.Fprintf(out, "Highest score:  %d%%\n", stats.HighestScore)
			fmt.Fprintf(out, "Last score:     %d%%\n", stats.LastAttemptScore)
			return nil
		},
	}
}
