package harness

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMarker is the in-file sentinel that marks a script as expected to
// exit non-zero. It must appear as an exact line within the first
// markerWindow lines of the script.
const DefaultMarker = "# slo: exp error"

// markerWindow is how many leading lines are inspected for the marker.
const markerWindow = 5

// Classifier decides whether a script is expected to fail. Two mechanisms
// are supported and OR-combined: the in-file marker line, and an explicit
// allow-list of base filenames kept for compatibility with older suites.
type Classifier struct {
	Marker    string
	AllowList map[string]struct{}
}

// NewClassifier builds a classifier for the given marker and allow-listed
// filenames. An empty marker falls back to DefaultMarker.
func NewClassifier(marker string, allowList []string) *Classifier {
	if marker == "" {
		marker = DefaultMarker
	}
	allowed := make(map[string]struct{}, len(allowList))
	for _, name := range allowList {
		allowed[name] = struct{}{}
	}
	return &Classifier{Marker: marker, AllowList: allowed}
}

// IsExpectedError reports whether the script at path is expected to fail.
// Files shorter than the marker window simply report false; an unreadable
// file is an error, not a silent false.
func (c *Classifier) IsExpectedError(path string) (bool, error) {
	if _, ok := c.AllowList[filepath.Base(path)]; ok {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("could not read script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; i < markerWindow && scanner.Scan(); i++ {
		if scanner.Text() == c.Marker {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("could not read script: %w", err)
	}
	return false, nil
}
