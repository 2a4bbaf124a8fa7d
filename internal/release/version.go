package release

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NormalizeVersion strips a single leading 'v' if present. Formula
// text and download URLs carry their own 'v' conventions, so the
// version is always handled without the prefix.
func NormalizeVersion(s string) string {
	return strings.TrimPrefix(s, "v")
}

// ValidateVersion reports whether s parses as a semantic version.
func ValidateVersion(s string) error {
	if _, err := semver.NewVersion(s); err != nil {
		return fmt.Errorf("invalid version %q: %w", s, err)
	}
	return nil
}
