package release

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// FileSHA256 returns the hex SHA-256 digest of the file at path. The
// file is streamed, so large release artifacts are fine.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
