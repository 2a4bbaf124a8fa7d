package formula

import (
	"fmt"
	"strings"
)

// Finding is the result of one structural conformance check.
type Finding struct {
	Check  string `json:"check" yaml:"check"`
	OK     bool   `json:"ok" yaml:"ok"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// blockStats accumulates what the scanner saw inside one platform block.
type blockStats struct {
	present  bool
	armCond  bool
	elseSeen bool
	shaARM   int
	shaX86   int
}

func (b blockStats) problems() []string {
	var ps []string
	if !b.armCond {
		ps = append(ps, "missing architecture conditional")
	}
	if !b.elseSeen {
		ps = append(ps, "missing else branch")
	}
	if b.shaARM == 0 {
		ps = append(ps, "no sha256 in ARM branch")
	}
	if b.shaX86 == 0 {
		ps = append(ps, "no sha256 in x86 branch")
	}
	return ps
}

// Verify checks the document against the expected formula layout:
// exactly one version declaration, at least one versioned download
// URL, a macOS and a Linux block each carrying the architecture
// conditional with a sha256 declaration in both branches, and no
// unterminated block. It reports findings; it never modifies the
// document.
func (d *Document) Verify() []Finding {
	var findings []Finding

	versionCount := len(versionRe.FindAllString(d.content, -1))
	findings = append(findings, Finding{
		Check:  "version declaration",
		OK:     versionCount == 1,
		Detail: detailUnless(versionCount == 1, "found %d, want exactly 1", versionCount),
	})

	urlCount := len(downloadRe.FindAllString(d.content, -1))
	findings = append(findings, Finding{
		Check:  "versioned download URLs",
		OK:     urlCount >= 1,
		Detail: detailUnless(urlCount >= 1, "no download/v<version> fragment found"),
	})

	stats := map[osContext]*blockStats{
		osMacOS: {},
		osLinux: {},
	}

	var scan scanner
	for _, line := range strings.Split(d.content, "\n") {
		scan.advance(line)
		if scan.os == osNone {
			continue
		}
		b := stats[scan.os]
		b.present = true
		if strings.Contains(line, armMarker) {
			b.armCond = true
		}
		if strings.TrimSpace(line) == elseMarker {
			b.elseSeen = true
		}
		if sha256Re.MatchString(line) {
			switch scan.arch {
			case archARM:
				b.shaARM++
			case archX86:
				b.shaX86++
			}
		}
	}

	findings = append(findings, blockFinding("macOS block", stats[osMacOS]))
	findings = append(findings, blockFinding("Linux block", stats[osLinux]))

	findings = append(findings, Finding{
		Check:  "terminated blocks",
		OK:     scan.os == osNone,
		Detail: detailUnless(scan.os == osNone, "a platform block is missing its closing end"),
	})

	return findings
}

func blockFinding(name string, b *blockStats) Finding {
	if !b.present {
		return Finding{Check: name, Detail: "block not found"}
	}
	if ps := b.problems(); len(ps) > 0 {
		return Finding{Check: name, Detail: strings.Join(ps, "; ")}
	}
	return Finding{Check: name, OK: true}
}

func detailUnless(ok bool, format string, args ...interface{}) string {
	if ok {
		return ""
	}
	return fmt.Sprintf(format, args...)
}
