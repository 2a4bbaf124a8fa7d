package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamancini/tapsmith/internal/formula"
	"github.com/adamancini/tapsmith/internal/output"
)

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mytool.rb")

	var stdout bytes.Buffer
	data := formula.TemplateData{Name: "mytool", Repo: "me/mytool", Version: "0.1.0"}
	if err := runInit(&stdout, path, data, false); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("formula not created: %v", err)
	}
	if !strings.Contains(string(content), "class Mytool < Formula") {
		t.Errorf("generated formula missing class declaration")
	}
	if !strings.Contains(string(content), `homepage "https://github.com/me/mytool"`) {
		t.Errorf("homepage not defaulted from repo")
	}
	if !strings.Contains(stdout.String(), "Created") {
		t.Errorf("stdout missing 'Created' message")
	}
	if !strings.Contains(stdout.String(), "Next steps:") {
		t.Errorf("stdout missing 'Next steps' guidance")
	}

	// The scaffold must pass its own structural checks.
	var verifyOut bytes.Buffer
	if err := runVerify(&verifyOut, path, output.FormatText); err != nil {
		t.Errorf("generated formula fails verify: %v\n%s", err, verifyOut.String())
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mytool.rb")
	if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var stdout bytes.Buffer
	data := formula.TemplateData{Name: "mytool", Repo: "me/mytool", Version: "0.1.0"}
	err := runInit(&stdout, path, data, false)
	if err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v", err)
	}

	// With force it proceeds.
	if err := runInit(&stdout, path, data, true); err != nil {
		t.Fatalf("runInit --force failed: %v", err)
	}
}

func TestRunInit_InvalidVersion(t *testing.T) {
	var stdout bytes.Buffer
	data := formula.TemplateData{Name: "mytool", Repo: "me/mytool", Version: "latest"}
	if err := runInit(&stdout, filepath.Join(t.TempDir(), "x.rb"), data, false); err == nil {
		t.Errorf("expected an invalid version error")
	}
}
