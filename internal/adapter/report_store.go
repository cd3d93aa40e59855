package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/scorespec/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves interpretation reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
}

// LocalReportStore keeps one YAML file per run, named after the run ID.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReports writes reports to <path>/<run id>.yaml. All reports must share
// one run ID.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if len(reports) == 0 {
		return nil
	}

	runID := reports[0].RunID
	if runID == "" {
		return fmt.Errorf("%w: reports carry no run id", m.ErrConfiguration)
	}

	for _, r := range reports[1:] {
		if r.RunID != runID {
			return fmt.Errorf("%w: reports of runs %s and %s mixed", m.ErrConsistency, runID, r.RunID)
		}
	}

	if err := os.MkdirAll(string(path), 0o755); err != nil {
		return fmt.Errorf("create reports directory %s: %w", path, err)
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	file := filepath.Join(string(path), runID+reportExt)
	if err := os.WriteFile(file, data, 0o600); err != nil {
		return fmt.Errorf("write reports %s: %w", file, err)
	}

	return nil
}

// LoadReports reads every run file under path, oldest first.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no reports at %s", m.ErrLookup, path)
		}

		return nil, fmt.Errorf("read reports directory %s: %w", path, err)
	}

	type runFile struct {
		name    string
		modTime int64
	}

	files := make([]runFile, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat report %s: %w", entry.Name(), err)
		}

		files = append(files, runFile{name: entry.Name(), modTime: info.ModTime().UnixNano()})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].modTime != files[j].modTime {
			return files[i].modTime < files[j].modTime
		}

		return files[i].name < files[j].name
	})

	var reports []m.Report

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(string(path), f.name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", f.name, err)
		}

		var run []m.Report
		if err := yaml.Unmarshal(data, &run); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", f.name, err)
		}

		reports = append(reports, run...)
	}

	return reports, nil
}
