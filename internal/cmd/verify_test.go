package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamancini/tapsmith/internal/output"
)

func TestRunVerify_Conforming(t *testing.T) {
	path := writeTestFormula(t)

	var stdout bytes.Buffer
	if err := runVerify(&stdout, path, output.FormatText); err != nil {
		t.Fatalf("runVerify failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "macOS block") {
		t.Errorf("stdout = %q, want check listing", stdout.String())
	}
}

func TestRunVerify_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.rb")
	content := strings.Replace(testFormula, `version "1.2.0"`, "", 1)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var stdout bytes.Buffer
	err := runVerify(&stdout, path, output.FormatText)
	if err == nil {
		t.Fatalf("expected verification failure")
	}
	if !strings.Contains(err.Error(), "formula failed") {
		t.Errorf("error = %v", err)
	}
}

func TestRunVerify_JSON(t *testing.T) {
	path := writeTestFormula(t)

	var stdout bytes.Buffer
	if err := runVerify(&stdout, path, output.FormatJSON); err != nil {
		t.Fatalf("runVerify failed: %v", err)
	}
	if !strings.Contains(stdout.String(), `"check"`) {
		t.Errorf("JSON output = %q", stdout.String())
	}
}
