package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/adamancini/tapsmith/internal/formula"
	"github.com/adamancini/tapsmith/internal/output"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FORMULA",
		Short: "Check a formula's structure against the expected layout",
		Long: `Verify checks that a formula conforms to the layout update relies on:
exactly one version declaration, at least one versioned download URL,
a macOS block and a Linux block each carrying the architecture
conditional with a sha256 declaration in both branches, and no
unterminated block.

Exits non-zero when any check fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(outputFormat)
			if err != nil {
				return err
			}
			return runVerify(cmd.OutOrStdout(), args[0], format)
		},
	}
}

// runVerify loads the formula, prints each finding, and fails when any
// check does.
func runVerify(w io.Writer, path string, format output.Format) error {
	doc, err := formula.Load(path)
	if err != nil {
		return err
	}

	findings := doc.Verify()

	failed := 0
	for _, f := range findings {
		if !f.OK {
			failed++
		}
	}

	if format == output.FormatText {
		fmt.Fprintf(w, "%s:\n", path)
		for _, f := range findings {
			if f.Detail != "" {
				fmt.Fprintf(w, "  %s %s: %s\n", output.Mark(f.OK), f.Check, f.Detail)
			} else {
				fmt.Fprintf(w, "  %s %s\n", output.Mark(f.OK), f.Check)
			}
		}
	} else {
		if err := output.NewWriter(w, format).Write(findings); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("formula failed %d of %d checks", failed, len(findings))
	}
	return nil
}
