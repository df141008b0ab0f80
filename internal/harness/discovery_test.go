package harness

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mkdir(path string) error {
	return os.MkdirAll(path, 0755)
}

func TestDiscoverScripts(t *testing.T) {
	tempDir := t.TempDir()
	writeScript(t, tempDir, "b.slo", "print(2);\n")
	writeScript(t, tempDir, "a.slo", "print(1);\n")
	writeScript(t, tempDir, "a.out", "1\n")
	writeScript(t, tempDir, "readme.md", "docs\n")
	nested := filepath.Join(tempDir, "nested", "deep")
	if err := mkdir(nested); err != nil {
		t.Fatalf("Failed to create nested directory: %v", err)
	}
	writeScript(t, nested, "c.slo", "print(3);\n")

	scripts, err := DiscoverScripts(tempDir, ".slo", nil)
	if err != nil {
		t.Fatalf("DiscoverScripts failed: %v", err)
	}

	// WalkDir is lexical, so the order is stable across runs.
	want := []string{
		filepath.Join(tempDir, "a.slo"),
		filepath.Join(tempDir, "b.slo"),
		filepath.Join(tempDir, "nested", "deep", "c.slo"),
	}
	if !reflect.DeepEqual(scripts, want) {
		t.Errorf("Expected %v, got %v", want, scripts)
	}
}

func TestDiscoverScriptsWithFilter(t *testing.T) {
	tempDir := t.TempDir()
	writeScript(t, tempDir, "keep.slo", "print(1);\n")
	writeScript(t, tempDir, "skip.slo", "print(2);\n")

	filter, err := NewCaseFilter([]string{`name.startsWith("keep")`})
	if err != nil {
		t.Fatalf("NewCaseFilter failed: %v", err)
	}

	scripts, err := DiscoverScripts(tempDir, ".slo", filter)
	if err != nil {
		t.Fatalf("DiscoverScripts failed: %v", err)
	}
	want := []string{filepath.Join(tempDir, "keep.slo")}
	if !reflect.DeepEqual(scripts, want) {
		t.Errorf("Expected %v, got %v", want, scripts)
	}
}

func TestDiscoverScriptsMissingRoot(t *testing.T) {
	_, err := DiscoverScripts(filepath.Join(t.TempDir(), "missing"), ".slo", nil)
	if err == nil {
		t.Error("Expected an error for a missing root directory, got nil")
	}
}
