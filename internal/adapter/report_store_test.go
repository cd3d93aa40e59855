package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scorespec/internal/model"
)

func sampleReport(runID, source string) m.Report {
	return m.Report{
		RunID:    runID,
		Source:   m.Path(source),
		Hash:     "abc123",
		Score:    "Grouped Rhythmic Staves Score",
		Template: "grouped_rhythmic_staves",
		Duration: "9/8",
		Segments: []m.SegmentReport{
			{Name: "red", Timespan: "[0, 7/8)", TimeSignatures: []string{"(4, 8)", "(3, 8)"}},
			{Name: "blue", Timespan: "[7/8, 9/8)", TimeSignatures: []string{"(2, 8)"}},
		},
		Voices: []m.VoiceReport{
			{
				Name:            "Voice 1",
				State:           m.VoiceRhythmResolved,
				DivisionRegions: []string{"[0, 9/8) [(3, 16)]"},
				Segments: []m.VoiceSegmentReport{
					{Segment: "red", Divisions: "[(3, 16), (3, 16)]"},
				},
				RhythmRegions: []string{"[0, 9/8) note_filled"},
				Containers:    6,
				Notes:         12,
			},
		},
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	dir := filepath.Join(t.TempDir(), "reports")

	reports := []m.Report{sampleReport("run-1", "a.yaml"), sampleReport("run-1", "b.yaml")}

	require.NoError(t, store.SaveReports(m.Path(dir), reports))

	info, err := os.Stat(filepath.Join(dir, "run-1.yaml"))
	require.NoError(t, err, "reports should be written to a file named after the run")
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.LoadReports(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, reports, loaded)
}

func TestLocalReportStore_LoadsRunsOldestFirst(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	require.NoError(t, store.SaveReports(m.Path(dir), []m.Report{sampleReport("zeta", "new.yaml")}))
	require.NoError(t, store.SaveReports(m.Path(dir), []m.Report{sampleReport("alpha", "old.yaml")}))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "alpha.yaml"), past, past))

	writeTestFile(t, filepath.Join(dir, "notes.txt"), "not a report\n")

	loaded, err := store.LoadReports(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "alpha", loaded[0].RunID)
	assert.Equal(t, "zeta", loaded[1].RunID)
}

func TestLocalReportStore_SaveNothing(t *testing.T) {
	store := NewReportStore()
	dir := filepath.Join(t.TempDir(), "never-created")

	require.NoError(t, store.SaveReports(m.Path(dir), nil))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "saving no reports should not create the directory")
}

func TestLocalReportStore_SaveErrors(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	err := store.SaveReports(m.Path(dir), []m.Report{sampleReport("", "a.yaml")})
	assert.ErrorIs(t, err, m.ErrConfiguration)

	err = store.SaveReports(m.Path(dir), []m.Report{sampleReport("run-1", "a.yaml"), sampleReport("run-2", "b.yaml")})
	assert.ErrorIs(t, err, m.ErrConsistency)
}

func TestLocalReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorIs(t, err, m.ErrLookup)

	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "broken.yaml"), "run_id: [unterminated\n")

	_, err = store.LoadReports(m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report broken.yaml")
}
