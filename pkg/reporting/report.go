/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Reports for synthesis runs. Writes a timestamped JSON report holding the
example set, the winning pattern and the candidate trace, and renders a short text
summary for terminals.
*/

package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/regsynth/pkg/synth"
)

// Version is stamped into every report
const Version = "1.0.0"

// Report is the persisted form of a synthesis run
type Report struct {
	Version     string           `json:"version"`
	GeneratedAt time.Time        `json:"generated_at"`
	Examples    synth.ExampleSet `json:"examples"`
	Result      *synth.Result    `json:"result"`
	Diagnosis   *synth.Diagnosis `json:"diagnosis,omitempty"`
	Stats       map[string]int   `json:"stats"`
}

// NewReport builds a report and tallies candidate outcomes
func NewReport(set synth.ExampleSet, result *synth.Result) *Report {
	stats := map[string]int{"candidates": len(result.Candidates)}
	for _, o := range result.Candidates {
		stats[string(o.Outcome)]++
	}

	report := &Report{
		Version:     Version,
		GeneratedAt: time.Now(),
		Examples:    set,
		Result:      result,
		Stats:       stats,
	}
	// the universal fallback is the only result worth diagnosing
	if !result.Discriminating() {
		report.Diagnosis, _ = synth.Diagnose(result.Pattern, set.Valid, set.Invalid)
	}
	return report
}

// WriteReport writes <timestamp>_<run id>.json into dir and returns the file path
func WriteReport(dir string, set synth.ExampleSet, result *synth.Result) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	report := NewReport(set, result)
	filename := fmt.Sprintf("%s_%s.json", report.GeneratedAt.Format("2006-01-02_15-04-05"), result.ID)
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// Summary renders a result for humans
func Summary(result *synth.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pattern:    %s\n", result.Pattern)
	fmt.Fprintf(&b, "Kind:       %s\n", result.Kind)
	fmt.Fprintf(&b, "Source:     %s\n", result.Source)
	fmt.Fprintf(&b, "Candidates: %d tried\n", len(result.Candidates))
	fmt.Fprintf(&b, "Run:        %s (%v)\n", result.ID, result.Duration)
	if !result.Discriminating() {
		b.WriteString("Warning:    no discriminating pattern found; the pattern accepts everything\n")
	}
	return b.String()
}

// Trace renders the candidate trace, one candidate per line
func Trace(result *synth.Result) string {
	var b strings.Builder
	for i, o := range result.Candidates {
		fmt.Fprintf(&b, "%3d. %-11s %-12s %s\n", i+1, o.Outcome, o.Generator, o.Pattern)
	}
	return b.String()
}
