package git

import (
	"fmt"
	"strings"
	"testing"
)

// mockRunner records commands and returns scripted results.
type mockRunner struct {
	calls   []string
	outputs map[string]string
	fails   map[string]error
}

func newMockRunner() *mockRunner {
	return &mockRunner{
		outputs: make(map[string]string),
		fails:   make(map[string]error),
	}
}

func (r *mockRunner) RunInDir(dir, name string, args ...string) ([]byte, error) {
	call := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, call)

	for prefix, err := range r.fails {
		if strings.HasPrefix(call, prefix) {
			return []byte("scripted failure"), err
		}
	}
	for prefix, out := range r.outputs {
		if strings.HasPrefix(call, prefix) {
			return []byte(out), nil
		}
	}
	return nil, nil
}

func TestIsRepo(t *testing.T) {
	runner := newMockRunner()
	runner.outputs["git rev-parse"] = "true\n"

	c := NewClientWithRunner(runner)
	if !c.IsRepo("/some/dir") {
		t.Errorf("IsRepo = false, want true")
	}

	runner.outputs["git rev-parse"] = "false\n"
	if c.IsRepo("/some/dir") {
		t.Errorf("IsRepo = true, want false")
	}
}

func TestCommitFile(t *testing.T) {
	runner := newMockRunner()
	runner.outputs["git rev-parse"] = "true\n"

	c := NewClientWithRunner(runner)
	if err := c.CommitFile("/tap/Formula/tool.rb", "formula: update to v1.3.0"); err != nil {
		t.Fatalf("CommitFile failed: %v", err)
	}

	if len(runner.calls) != 3 {
		t.Fatalf("ran %d commands, want 3: %v", len(runner.calls), runner.calls)
	}
	if !strings.HasPrefix(runner.calls[1], "git add -- ") {
		t.Errorf("second command = %q, want git add", runner.calls[1])
	}
	if !strings.HasPrefix(runner.calls[2], "git commit -m formula: update to v1.3.0 -- ") {
		t.Errorf("third command = %q, want git commit", runner.calls[2])
	}
}

func TestCommitFile_NotARepo(t *testing.T) {
	runner := newMockRunner()
	runner.fails["git rev-parse"] = fmt.Errorf("exit status 128")

	c := NewClientWithRunner(runner)
	err := c.CommitFile("/tmp/tool.rb", "msg")
	if err == nil {
		t.Fatalf("expected error outside a git repository")
	}
	if !strings.Contains(err.Error(), "not inside a git repository") {
		t.Errorf("error = %v", err)
	}
}

func TestCommitFile_CommitFails(t *testing.T) {
	runner := newMockRunner()
	runner.outputs["git rev-parse"] = "true\n"
	runner.fails["git commit"] = fmt.Errorf("exit status 1")

	c := NewClientWithRunner(runner)
	err := c.CommitFile("/tap/Formula/tool.rb", "msg")
	if err == nil {
		t.Fatalf("expected commit failure")
	}
	if !strings.Contains(err.Error(), "git commit failed") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(err.Error(), "scripted failure") {
		t.Errorf("error should carry the command output: %v", err)
	}
}
