package formula

import "strings"

// Block and branch markers recognized while scanning a formula.
const (
	macosMarker = "on_macos do"
	linuxMarker = "on_linux do"
	armMarker   = "if Hardware::CPU.arm?"
	elseMarker  = "else"
	endMarker   = "end"
)

// osContext identifies which platform block the scanner is inside.
type osContext int

const (
	osNone osContext = iota
	osMacOS
	osLinux
)

// archContext identifies which branch of the architecture conditional
// the scanner is inside.
type archContext int

const (
	archNone archContext = iota
	archARM
	archX86
)

// scanner is the finite-state machine that tracks platform and
// architecture context line by line. The OS markers are mutually
// exclusive; a bare "end" or "else" is only recognized while an OS
// block is active. Architecture context deliberately survives block
// entry, and a missing "end" leaks context onto subsequent lines.
type scanner struct {
	os   osContext
	arch archContext
}

// advance updates the context for one line. It must be called before
// checksumFor so that a marker line establishes context for the lines
// that follow it.
func (s *scanner) advance(line string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.Contains(line, macosMarker):
		s.os = osMacOS
	case strings.Contains(line, linuxMarker):
		s.os = osLinux
	case trimmed == endMarker && s.os != osNone:
		s.os = osNone
		s.arch = archNone
	case strings.Contains(line, armMarker):
		s.arch = archARM
	case trimmed == elseMarker && s.os != osNone:
		s.arch = archX86
	}
}

// checksumFor returns the digest that replaces a sha256 declaration in
// the current context, or "" when the context has no mapped digest.
// (Linux, ARM) is intentionally unmapped: no Linux ARM binary ships,
// so that branch is never rewritten.
func (s *scanner) checksumFor(sums Checksums) string {
	switch {
	case s.os == osMacOS && s.arch == archARM:
		return sums.DarwinArm64
	case s.os == osMacOS && s.arch == archX86:
		return sums.DarwinAmd64
	case s.os == osLinux && s.arch == archX86:
		return sums.LinuxAmd64
	}
	return ""
}
