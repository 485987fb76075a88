package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

// NewResetCmd wipes the saved name and the whole attempt history.
func NewResetCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the saved name and all attempt history",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, "This removes your saved name and every attempt. Type 'yes' to confirm: ")

			reader := bufio.NewReader(cmd.InOrStdin())
			line, ok := readLine(reader)
			if !ok || line != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			gateway, closeStore, err := openGateway(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := gateway.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "All data cleared.")
			return nil
		},
	}
}
