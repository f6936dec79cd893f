package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lexorank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "lexorank %s\n", version)

			return err
		},
	}
}
