package harness

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write script %s: %v", name, err)
	}
	return path
}

func TestClassifierMarker(t *testing.T) {
	tempDir := t.TempDir()
	classifier := NewClassifier("", nil)

	testCases := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "marker on first line",
			content:  "# slo: exp error\nprint(1);\n",
			expected: true,
		},
		{
			name:     "marker on fifth line",
			content:  "# a\n# b\n# c\n# d\n# slo: exp error\nprint(1);\n",
			expected: true,
		},
		{
			name:     "marker beyond window",
			content:  "# a\n# b\n# c\n# d\n# e\n# slo: exp error\n",
			expected: false,
		},
		{
			name:     "no marker",
			content:  "print(1);\n",
			expected: false,
		},
		{
			name:     "marker must match the whole line",
			content:  "# slo: exp error maybe\n",
			expected: false,
		},
		{
			name:     "empty file",
			content:  "",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeScript(t, tempDir, "case.slo", tc.content)
			got, err := classifier.IsExpectedError(path)
			if err != nil {
				t.Fatalf("IsExpectedError failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestClassifierAllowList(t *testing.T) {
	tempDir := t.TempDir()
	classifier := NewClassifier("", []string{"exit.slo", "errors.slo"})

	listed := writeScript(t, tempDir, "exit.slo", "print(1);\n")
	unlisted := writeScript(t, tempDir, "ok.slo", "print(1);\n")

	got, err := classifier.IsExpectedError(listed)
	if err != nil {
		t.Fatalf("IsExpectedError failed: %v", err)
	}
	if !got {
		t.Error("Expected allow-listed file to be classified as expected error")
	}

	got, err = classifier.IsExpectedError(unlisted)
	if err != nil {
		t.Fatalf("IsExpectedError failed: %v", err)
	}
	if got {
		t.Error("Expected unlisted file without marker to not be an expected error")
	}
}

func TestClassifierCustomMarker(t *testing.T) {
	tempDir := t.TempDir()
	classifier := NewClassifier("-- expect failure", nil)

	path := writeScript(t, tempDir, "case.slo", "-- expect failure\n")
	got, err := classifier.IsExpectedError(path)
	if err != nil {
		t.Fatalf("IsExpectedError failed: %v", err)
	}
	if !got {
		t.Error("Expected custom marker to be honored")
	}
}

func TestClassifierUnreadableFile(t *testing.T) {
	classifier := NewClassifier("", nil)

	_, err := classifier.IsExpectedError(filepath.Join(t.TempDir(), "missing.slo"))
	if err == nil {
		t.Error("Expected an error for an unreadable file, got nil")
	}
}
