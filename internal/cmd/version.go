package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tapsmith version %s\n", buildVersion)
			if detailed {
				fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", buildCommit)
				fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", buildDate)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "Include commit and build date")

	return cmd
}
