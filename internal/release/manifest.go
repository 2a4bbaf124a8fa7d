package release

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Platform keys recognized in a manifest. There is intentionally no
// linux_arm64 key: no Linux ARM binary ships, and the corresponding
// formula branch is never rewritten.
const (
	PlatformDarwinAmd64 = "darwin_amd64"
	PlatformDarwinArm64 = "darwin_arm64"
	PlatformLinuxAmd64  = "linux_amd64"
)

// Format represents the file format of a manifest.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
	FormatJSON
)

// Manifest is the release document CI hands to tapsmith instead of
// positional arguments. Checksums carry digests directly; Artifacts
// name files to hash. A digest wins over an artifact for the same key.
type Manifest struct {
	Version   string            `yaml:"version" toml:"version" json:"version"`
	Checksums map[string]string `yaml:"checksums,omitempty" toml:"checksums,omitempty" json:"checksums,omitempty"`
	Artifacts map[string]string `yaml:"artifacts,omitempty" toml:"artifacts,omitempty" json:"artifacts,omitempty"`

	// dir is the manifest's directory; artifact paths resolve against it.
	dir string
}

// LoadManifest reads and parses a release manifest. The format is
// determined by extension, falling back to content sniffing for
// extensionless files.
func LoadManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	switch detectFormat(path, content) {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &m); err != nil {
			return nil, fmt.Errorf("failed to parse YAML manifest: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML manifest: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &m); err != nil {
			return nil, fmt.Errorf("failed to parse JSON manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to determine manifest format for %s", path)
	}

	m.dir = filepath.Dir(path)
	return &m, nil
}

// Resolve validates the manifest and produces a Descriptor, hashing
// artifacts for any platform without a direct digest.
func (m *Manifest) Resolve() (*Descriptor, error) {
	if m.Version == "" {
		return nil, fmt.Errorf("manifest is missing a version")
	}
	version := NormalizeVersion(m.Version)
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}

	desc := &Descriptor{Version: version}
	targets := map[string]*string{
		PlatformDarwinAmd64: &desc.Checksums.DarwinAmd64,
		PlatformDarwinArm64: &desc.Checksums.DarwinArm64,
		PlatformLinuxAmd64:  &desc.Checksums.LinuxAmd64,
	}

	for platform, dst := range targets {
		digest, err := m.digestFor(platform)
		if err != nil {
			return nil, err
		}
		*dst = digest
	}
	return desc, nil
}

// digestFor returns the digest for one platform, hashing the artifact
// file when no direct checksum is given.
func (m *Manifest) digestFor(platform string) (string, error) {
	if digest := m.Checksums[platform]; digest != "" {
		return digest, nil
	}

	artifact := m.Artifacts[platform]
	if artifact == "" {
		return "", fmt.Errorf("manifest has no checksum or artifact for %s", platform)
	}
	if !filepath.IsAbs(artifact) {
		artifact = filepath.Join(m.dir, artifact)
	}

	digest, err := FileSHA256(artifact)
	if err != nil {
		return "", fmt.Errorf("failed to checksum %s artifact: %w", platform, err)
	}
	return digest, nil
}

// detectFormat determines the manifest format based on extension or content.
func detectFormat(path string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}

	return sniffFormat(content)
}

// sniffFormat attempts to detect the format from content.
func sniffFormat(content []byte) Format {
	trimmed := strings.TrimSpace(string(content))

	// JSON starts with { or [
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}

	// TOML uses key = value or [sections]; YAML uses key: value
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, " = ") || strings.HasPrefix(line, "[") {
			return FormatTOML
		}
		if strings.Contains(line, ":") && !strings.Contains(line, "=") {
			return FormatYAML
		}
	}

	if strings.Contains(trimmed, ":") {
		return FormatYAML
	}
	return FormatUnknown
}
