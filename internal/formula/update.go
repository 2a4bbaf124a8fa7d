package formula

import (
	"regexp"
	"strings"
)

var (
	versionRe  = regexp.MustCompile(`version "[^"]*"`)
	downloadRe = regexp.MustCompile(`download/v[\d.]+`)
	sha256Re   = regexp.MustCompile(`sha256 "[^"]*"`)
)

// Checksums holds the per-platform artifact digests for one release.
// There is no LinuxArm64 field: the Linux ARM branch of a formula is
// never rewritten.
type Checksums struct {
	DarwinAmd64 string `json:"darwin_amd64" yaml:"darwin_amd64" toml:"darwin_amd64"`
	DarwinArm64 string `json:"darwin_arm64" yaml:"darwin_arm64" toml:"darwin_arm64"`
	LinuxAmd64  string `json:"linux_amd64" yaml:"linux_amd64" toml:"linux_amd64"`
}

// Change records one line rewritten during an update pass.
type Change struct {
	Line int    `json:"line" yaml:"line"` // 1-based line number
	Old  string `json:"old" yaml:"old"`
	New  string `json:"new" yaml:"new"`
}

// Apply rewrites the version declaration, download URL fragments, and
// per-platform sha256 declarations in place and returns the lines that
// changed. All other content is left byte-for-byte unchanged, and
// re-applying the same inputs is a no-op.
func (d *Document) Apply(version string, sums Checksums) []Change {
	before := strings.Split(d.content, "\n")

	// The version declaration appears exactly once in a conforming
	// formula; only the first match is replaced. URL fragments are
	// rewritten wherever they occur.
	content := replaceFirst(versionRe, d.content, `version "`+version+`"`)
	content = downloadRe.ReplaceAllLiteralString(content, "download/v"+version)

	lines := strings.Split(content, "\n")
	var scan scanner
	for i, line := range lines {
		scan.advance(line)

		if !strings.Contains(line, "sha256") {
			continue
		}
		digest := scan.checksumFor(sums)
		if digest == "" {
			continue
		}
		lines[i] = sha256Re.ReplaceAllLiteralString(line, `sha256 "`+digest+`"`)
	}
	d.content = strings.Join(lines, "\n")

	// Inserted values are opaque and may themselves carry newlines, so
	// the two sides can disagree on line count. Compare the shared
	// prefix positionally and report the remainder on either side.
	var changes []Change
	shared := len(lines)
	if len(before) < shared {
		shared = len(before)
	}
	for i := 0; i < shared; i++ {
		if lines[i] != before[i] {
			changes = append(changes, Change{Line: i + 1, Old: before[i], New: lines[i]})
		}
	}
	for i := shared; i < len(lines); i++ {
		changes = append(changes, Change{Line: i + 1, New: lines[i]})
	}
	for i := shared; i < len(before); i++ {
		changes = append(changes, Change{Line: i + 1, Old: before[i]})
	}
	return changes
}

// replaceFirst replaces only the first match of re in s.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
