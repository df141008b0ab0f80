package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Report is the partition of one run's discovered scripts into passed and
// failed. A completed run places every discovered script in exactly one
// list; an interrupted run holds whatever accumulated before the abort.
type Report struct {
	Root        string    `json:"root"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Interrupted bool      `json:"interrupted,omitempty"`
	Passed      []string  `json:"passed"`
	Failed      []string  `json:"failed"`
}

// Total returns the number of scripts that produced a result.
func (r *Report) Total() int {
	return len(r.Passed) + len(r.Failed)
}

// Summary renders a one-line account of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d passed, %d failed", len(r.Passed), len(r.Failed))
}

// Save writes the report as JSON to path.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}

// LoadReport reads a report previously written by Save.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read report file: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("could not unmarshal report: %w", err)
	}
	return &report, nil
}
