/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for JSON reports, summaries and candidate traces.
*/

package reporting_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/regsynth/pkg/reporting"
	"github.com/kleascm/regsynth/pkg/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synthesize(t *testing.T, set synth.ExampleSet) *synth.Result {
	t.Helper()
	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)
	return s.Synthesize(set.Valid, set.Invalid)
}

func TestWriteReport(t *testing.T) {
	set := synth.ExampleSet{
		Valid:   []string{"aaa", "abb", "acc"},
		Invalid: []string{"bbb", "bcc", "bca"},
	}
	result := synthesize(t, set)
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := reporting.WriteReport(dir, set, result)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, result.ID+".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report reporting.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, reporting.Version, report.Version)
	assert.Equal(t, set, report.Examples)
	assert.Equal(t, `^[a].+$`, report.Result.Pattern)
	assert.Equal(t, 2, report.Stats["candidates"])
	assert.Equal(t, 1, report.Stats["rejected"])
	assert.Equal(t, 1, report.Stats["accepted"])
	assert.Nil(t, report.Diagnosis)
}

func TestReportDiagnosesUniversalFallback(t *testing.T) {
	set := synth.ExampleSet{Valid: []string{"ab", "cd"}, Invalid: []string{"ab"}}
	report := reporting.NewReport(set, synthesize(t, set))

	require.NotNil(t, report.Diagnosis)
	assert.Equal(t, []string{"ab"}, report.Diagnosis.MatchedInvalid)
	assert.Empty(t, report.Diagnosis.MissedValid)
}

func TestSummaryAndTrace(t *testing.T) {
	result := synthesize(t, synth.ExampleSet{Valid: []string{"abc1", "bbb1"}, Invalid: []string{"abc", "bbb"}})

	summary := reporting.Summary(result)
	assert.Contains(t, summary, "Pattern:    ^.+[1]$")
	assert.Contains(t, summary, "Source:     position")
	assert.NotContains(t, summary, "Warning")

	trace := reporting.Trace(result)
	lines := strings.Split(strings.TrimSpace(trace), "\n")
	require.Len(t, lines, len(result.Candidates))
	assert.Contains(t, lines[len(lines)-1], "accepted")

	universal := synthesize(t, synth.ExampleSet{Valid: []string{"a", "b"}})
	assert.Contains(t, reporting.Summary(universal), "Warning")
}
