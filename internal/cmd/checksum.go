package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamancini/tapsmith/internal/output"
	"github.com/adamancini/tapsmith/internal/release"
)

func newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum FILE...",
		Short: "Compute SHA-256 digests of release artifacts",
		Long: `Checksum prints the SHA-256 digest of each artifact in sha256sum
format (digest, two spaces, filename), or as a list with --output json
or --output yaml.

Examples:
  tapsmith checksum dist/tool-darwin-arm64.tar.gz
  tapsmith checksum dist/*.tar.gz --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(outputFormat)
			if err != nil {
				return err
			}
			return runChecksum(cmd.OutOrStdout(), args, format)
		},
	}
}

// checksumEntry pairs one artifact with its digest.
type checksumEntry struct {
	File   string `json:"file" yaml:"file"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// checksumList renders in sha256sum format as text.
type checksumList []checksumEntry

func (l checksumList) String() string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = fmt.Sprintf("%s  %s", e.SHA256, e.File)
	}
	return strings.Join(lines, "\n")
}

// runChecksum hashes each file and writes the result.
func runChecksum(w io.Writer, files []string, format output.Format) error {
	list := make(checksumList, 0, len(files))
	for _, file := range files {
		digest, err := release.FileSHA256(file)
		if err != nil {
			return err
		}
		list = append(list, checksumEntry{File: file, SHA256: digest})
	}
	return output.NewWriter(w, format).Write(list)
}
