package harness

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Default extensions for scripts and their golden output files.
const (
	DefaultScriptExt = ".slo"
	DefaultGoldenExt = ".out"
)

// GoldenChecker compares captured interpreter output against a golden file
// colocated with the script (same stem, GoldenExt instead of ScriptExt).
type GoldenChecker struct {
	ScriptExt string
	GoldenExt string
}

// NewGoldenChecker builds a checker; empty extensions fall back to the
// defaults.
func NewGoldenChecker(scriptExt, goldenExt string) *GoldenChecker {
	if scriptExt == "" {
		scriptExt = DefaultScriptExt
	}
	if goldenExt == "" {
		goldenExt = DefaultGoldenExt
	}
	return &GoldenChecker{ScriptExt: scriptExt, GoldenExt: goldenExt}
}

// GoldenPath derives the golden file path for a script path.
func (g *GoldenChecker) GoldenPath(scriptPath string) string {
	return strings.TrimSuffix(scriptPath, g.ScriptExt) + g.GoldenExt
}

// Matches reports whether actual equals the golden file's content exactly.
// A script with no golden file passes: no verification was requested for it.
// Comparison is byte-for-byte, no trimming or normalization.
func (g *GoldenChecker) Matches(scriptPath string, actual []byte) (bool, error) {
	expected, err := os.ReadFile(g.GoldenPath(scriptPath))
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("could not read expected output: %w", err)
	}
	return bytes.Equal(actual, expected), nil
}
