package formula

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tapsmith.rb")
	if err := os.WriteFile(path, []byte(testFormula), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Path() != path {
		t.Errorf("Path = %q, want %q", doc.Path(), path)
	}
	if doc.Content() != testFormula {
		t.Errorf("loaded content differs from fixture")
	}

	doc.Apply("1.3.0", testChecksums)
	if err := doc.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(written) != doc.Content() {
		t.Errorf("file content differs from document")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.rb"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read formula") {
		t.Errorf("error = %v, want read failure", err)
	}
}

func TestSaveWithBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tapsmith.rb")
	if err := os.WriteFile(path, []byte(testFormula), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	doc.Apply("1.3.0", testChecksums)

	backupPath, err := doc.SaveWithBackup()
	if err != nil {
		t.Fatalf("SaveWithBackup failed: %v", err)
	}
	if backupPath != path+".bak" {
		t.Errorf("backup path = %q, want %q", backupPath, path+".bak")
	}

	backup, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(backup) != testFormula {
		t.Errorf("backup does not hold the original content")
	}

	written, _ := os.ReadFile(path)
	if !strings.Contains(string(written), `version "1.3.0"`) {
		t.Errorf("formula file was not updated")
	}
}
