package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	outputFormat string
)

// Build metadata, injected via ldflags and passed through Execute.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	rootCmd := &cobra.Command{
		Use:   "tapsmith",
		Short: "Homebrew tap release automation",
		Long: `tapsmith patches a Homebrew formula after a release is cut.

It rewrites the version declaration, download URLs, and per-platform
sha256 checksums in place, computes artifact checksums, scaffolds new
formulas, and verifies a formula's structure before and after editing.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")

	// Add subcommands
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newChecksumCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Register completion function for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd.Execute()
}
