package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamancini/tapsmith/internal/formula"
	"github.com/adamancini/tapsmith/internal/git"
	"github.com/adamancini/tapsmith/internal/interactive"
	"github.com/adamancini/tapsmith/internal/output"
	"github.com/adamancini/tapsmith/internal/release"
)

// updateOptions carries the update command's flags.
type updateOptions struct {
	manifestPath string
	dryRun       bool
	backup       bool
	commit       bool
	assumeYes    bool
	format       output.Format
}

func newUpdateCmd() *cobra.Command {
	var opts updateOptions

	cmd := &cobra.Command{
		Use:   "update FORMULA [VERSION SHA_DARWIN_X86 SHA_DARWIN_ARM SHA_LINUX_X86]",
		Short: "Rewrite a formula's version, download URLs, and checksums",
		Long: `Update patches a Homebrew formula in place after a release is cut.

The version declaration, download URL version fragments, and the three
supported platform sha256 declarations (macOS x86_64, macOS ARM64,
Linux x86_64) are rewritten; everything else is left untouched. The
Linux ARM branch, if present, is never modified.

Examples:
  tapsmith update Formula/tool.rb 1.3.0 SHA_X86 SHA_ARM SHA_LINUX
  tapsmith update Formula/tool.rb --manifest release.yaml
  tapsmith update Formula/tool.rb --manifest release.yaml --dry-run
  tapsmith update Formula/tool.rb 1.3.0 SHA_X86 SHA_ARM SHA_LINUX --commit --yes`,
		Args: cobra.RangeArgs(1, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(outputFormat)
			if err != nil {
				return err
			}
			opts.format = format
			return runUpdate(cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.manifestPath, "manifest", "", "Read version and checksums from a release manifest")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&opts.backup, "backup", false, "Write <formula>.bak before overwriting")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "Commit the updated formula in its git repository")
	cmd.Flags().BoolVar(&opts.assumeYes, "yes", false, "Skip the commit confirmation prompt")

	return cmd
}

// updateSummary is the confirmation printed after a successful update.
type updateSummary struct {
	Formula     string `json:"formula" yaml:"formula"`
	Version     string `json:"version" yaml:"version"`
	DarwinAmd64 string `json:"darwin_amd64" yaml:"darwin_amd64"`
	DarwinArm64 string `json:"darwin_arm64" yaml:"darwin_arm64"`
	LinuxAmd64  string `json:"linux_amd64" yaml:"linux_amd64"`
}

func (s updateSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Updated formula with version %s\n", s.Version)
	fmt.Fprintf(&b, "  macOS x86_64 SHA: %s\n", s.DarwinAmd64)
	fmt.Fprintf(&b, "  macOS ARM64 SHA: %s\n", s.DarwinArm64)
	fmt.Fprintf(&b, "  Linux x86_64 SHA: %s", s.LinuxAmd64)
	return b.String()
}

// runUpdate executes the update workflow.
func runUpdate(stdout io.Writer, args []string, opts updateOptions) error {
	desc, err := resolveDescriptor(args, opts.manifestPath)
	if err != nil {
		return err
	}

	doc, err := formula.Load(args[0])
	if err != nil {
		return err
	}

	changes := doc.Apply(desc.Version, desc.Checksums)

	if opts.dryRun {
		printChanges(stdout, doc.Path(), changes)
		return nil
	}

	if opts.backup {
		if _, err := doc.SaveWithBackup(); err != nil {
			return err
		}
	} else if err := doc.Save(); err != nil {
		return err
	}

	summary := updateSummary{
		Formula:     doc.Path(),
		Version:     desc.Version,
		DarwinAmd64: desc.Checksums.DarwinAmd64,
		DarwinArm64: desc.Checksums.DarwinArm64,
		LinuxAmd64:  desc.Checksums.LinuxAmd64,
	}
	if err := output.NewWriter(stdout, opts.format).Write(summary); err != nil {
		return err
	}

	if opts.commit {
		return commitFormula(stdout, doc.Path(), desc.Version, opts.assumeYes)
	}
	return nil
}

// resolveDescriptor builds the release descriptor from either the five
// positional arguments or a manifest.
func resolveDescriptor(args []string, manifestPath string) (*release.Descriptor, error) {
	if manifestPath != "" {
		if len(args) != 1 {
			return nil, fmt.Errorf("with --manifest only the formula path is expected, got %d arguments", len(args))
		}
		manifest, err := release.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		return manifest.Resolve()
	}

	if len(args) != 5 {
		return nil, fmt.Errorf("expected FORMULA VERSION SHA_DARWIN_X86 SHA_DARWIN_ARM SHA_LINUX_X86, got %d arguments", len(args))
	}
	return &release.Descriptor{
		Version: release.NormalizeVersion(args[1]),
		Checksums: formula.Checksums{
			DarwinAmd64: args[2],
			DarwinArm64: args[3],
			LinuxAmd64:  args[4],
		},
	}, nil
}

func printChanges(w io.Writer, path string, changes []formula.Change) {
	if len(changes) == 0 {
		fmt.Fprintf(w, "%s is already up to date\n", path)
		return
	}
	fmt.Fprintf(w, "Would rewrite %d line(s) in %s:\n", len(changes), path)
	for _, c := range changes {
		fmt.Fprintf(w, "  ~ %d: %s\n", c.Line, strings.TrimSpace(c.New))
	}
}

func commitFormula(stdout io.Writer, path, version string, assumeYes bool) error {
	message := fmt.Sprintf("formula: update to v%s", version)

	// The prompt only fires on a real terminal, so it talks to the
	// terminal directly.
	if !assumeYes && interactive.IsTerminal() {
		if !interactive.NewPrompter().Confirm("Commit %s with message %q?", path, message) {
			fmt.Fprintln(stdout, "Commit skipped.")
			return nil
		}
	}

	if err := git.NewClient().CommitFile(path, message); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Committed %s\n", path)
	return nil
}
