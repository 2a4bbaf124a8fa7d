package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adamancini/tapsmith/internal/formula"
	"github.com/adamancini/tapsmith/internal/release"
)

func newInitCmd() *cobra.Command {
	var data formula.TemplateData
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Scaffold a new formula from the built-in template",
		Long: `Init writes a new formula with the expected block layout. The sha256
declarations carry placeholder values; run 'tapsmith update' after the
first release to fill them in.

PATH defaults to <name>.rb in the current directory.

Examples:
  tapsmith init --name mytool --repo me/mytool
  tapsmith init Formula/mytool.rb --name mytool --repo me/mytool --version 0.2.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cmd.OutOrStdout(), path, data, force)
		},
	}

	cmd.Flags().StringVar(&data.Name, "name", "", "Binary name (required)")
	cmd.Flags().StringVar(&data.Desc, "desc", "", "One-line formula description")
	cmd.Flags().StringVar(&data.Homepage, "homepage", "", "Project homepage (defaults to the GitHub repo)")
	cmd.Flags().StringVar(&data.Repo, "repo", "", "GitHub owner/repo the release artifacts live under (required)")
	cmd.Flags().StringVar(&data.Version, "version", "0.1.0", "Initial version")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("repo")

	return cmd
}

// runInit renders the template and writes the formula file.
func runInit(stdout io.Writer, path string, data formula.TemplateData, force bool) error {
	if err := release.ValidateVersion(release.NormalizeVersion(data.Version)); err != nil {
		return err
	}
	data.Version = release.NormalizeVersion(data.Version)

	if data.Homepage == "" {
		data.Homepage = "https://github.com/" + data.Repo
	}
	if data.Desc == "" {
		data.Desc = data.Name
	}
	if path == "" {
		path = data.Name + ".rb"
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	content, err := formula.Render(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write formula: %w", err)
	}

	fmt.Fprintf(stdout, "Created %s\n", path)
	fmt.Fprintln(stdout, "\nNext steps:")
	fmt.Fprintln(stdout, "  1. Review the generated formula")
	fmt.Fprintf(stdout, "  2. Cut a release and run: tapsmith update %s VERSION SHA_DARWIN_X86 SHA_DARWIN_ARM SHA_LINUX_X86\n", path)
	return nil
}
