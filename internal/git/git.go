// Package git commits formula changes into the tap repository.
package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandRunner is an interface for running external commands.
// This allows for mocking in tests.
type CommandRunner interface {
	RunInDir(dir, name string, args ...string) ([]byte, error)
}

// DefaultCommandRunner uses os/exec to run commands.
type DefaultCommandRunner struct{}

// RunInDir executes a command in the specified directory.
func (r *DefaultCommandRunner) RunInDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Client runs git operations against the repository containing a file.
type Client struct {
	runner CommandRunner
}

// NewClient creates a Client with the default command runner.
func NewClient() *Client {
	return &Client{runner: &DefaultCommandRunner{}}
}

// NewClientWithRunner creates a Client with a custom command runner (for testing).
func NewClientWithRunner(runner CommandRunner) *Client {
	return &Client{runner: runner}
}

// IsRepo reports whether dir is inside a git work tree.
func (c *Client) IsRepo(dir string) bool {
	out, err := c.runner.RunInDir(dir, "git", "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// CommitFile stages the file at path and commits it with the given
// message, running git inside the file's directory.
func (c *Client) CommitFile(path, message string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	dir := filepath.Dir(abs)

	if !c.IsRepo(dir) {
		return fmt.Errorf("%s is not inside a git repository", dir)
	}

	if out, err := c.runner.RunInDir(dir, "git", "add", "--", abs); err != nil {
		return fmt.Errorf("git add failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	if out, err := c.runner.RunInDir(dir, "git", "commit", "-m", message, "--", abs); err != nil {
		return fmt.Errorf("git commit failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}
