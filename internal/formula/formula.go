// Package formula reads, rewrites, and verifies Homebrew formula files.
package formula

import (
	"fmt"
	"os"
)

// Document holds the full text of a formula file. It is read once,
// mutated in memory, and written back once.
type Document struct {
	path    string
	content string
}

// Load reads the formula file at path into memory.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read formula: %w", err)
	}
	return &Document{path: path, content: string(data)}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Content returns the current in-memory text of the formula.
func (d *Document) Content() string {
	return d.content
}

// Save overwrites the formula file with the current content.
func (d *Document) Save() error {
	if err := os.WriteFile(d.path, []byte(d.content), 0644); err != nil {
		return fmt.Errorf("failed to write formula: %w", err)
	}
	return nil
}

// SaveWithBackup writes the original file content to <path>.bak before
// overwriting, and returns the backup path.
func (d *Document) SaveWithBackup() (string, error) {
	backupPath := d.path + ".bak"

	original, err := os.ReadFile(d.path)
	if err != nil {
		return "", fmt.Errorf("failed to read formula for backup: %w", err)
	}
	if err := os.WriteFile(backupPath, original, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := d.Save(); err != nil {
		return backupPath, err
	}
	return backupPath, nil
}
