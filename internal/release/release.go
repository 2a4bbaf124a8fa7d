// Package release describes a cut release: the version and the
// per-platform artifact checksums that go into the tap formula.
package release

import (
	"github.com/adamancini/tapsmith/internal/formula"
)

// Descriptor is the input for one formula update: a version plus the
// three supported platform digests. All fields are required.
type Descriptor struct {
	Version   string
	Checksums formula.Checksums
}
