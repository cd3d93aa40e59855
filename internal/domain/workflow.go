package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/scorespec/internal/adapter"
	"github.com/mouse-blink/scorespec/internal/controller"
	m "github.com/mouse-blink/scorespec/internal/model"
)

const midiExt = ".mid"

// InterpretArgs selects the specification files of an interpretation run.
type InterpretArgs struct {
	Paths []m.Path
	// Reports is the directory run reports are saved to; empty skips saving.
	Reports m.Path
	// MIDI is the directory scores are exported to; empty skips export.
	MIDI    m.Path
	Threads int
}

// ViewArgs selects stored reports and an optional text template.
type ViewArgs struct {
	Reports  m.Path
	Template m.Path
}

// InspectArgs selects one voice of one specification.
type InspectArgs struct {
	Path  m.Path
	Voice string
}

// Workflow defines the interface for score interpretation operations.
type Workflow interface {
	Interpret(args InterpretArgs) error
	View(args ViewArgs) error
	Inspect(args InspectArgs) error
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithWorkflowLogger sets the logger the workflow and its interpreters use.
func WithWorkflowLogger(logger *slog.Logger) WorkflowOption {
	return func(w *workflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithInterpreterFactory replaces the interpreter built for each file.
func WithInterpreterFactory(factory func(*slog.Logger) Interpreter) WorkflowOption {
	return func(w *workflow) {
		if factory != nil {
			w.newInterpreter = factory
		}
	}
}

type workflow struct {
	fs             adapter.SourceFSAdapter
	loader         adapter.SpecLoader
	store          adapter.ReportStore
	exporter       adapter.MIDIExporter
	ui             controller.UI
	logger         *slog.Logger
	newInterpreter func(*slog.Logger) Interpreter
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	loader adapter.SpecLoader,
	store adapter.ReportStore,
	exporter adapter.MIDIExporter,
	ui controller.UI,
	opts ...WorkflowOption,
) Workflow {
	w := &workflow{
		fs:       fs,
		loader:   loader,
		store:    store,
		exporter: exporter,
		ui:       ui,
		logger:   slog.New(slog.DiscardHandler),
		newInterpreter: func(logger *slog.Logger) Interpreter {
			return NewConcreteInterpreter(WithLogger(logger))
		},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Interpret expands Paths into specification files and interprets them with
// at most Threads files in flight. The first failure cancels the run and
// nothing is saved.
func (w *workflow) Interpret(args InterpretArgs) error {
	if len(args.Paths) == 0 {
		return fmt.Errorf("%w: no specification files given", m.ErrConfiguration)
	}

	paths, err := w.fs.Find(args.Paths)
	if err != nil {
		return fmt.Errorf("find specifications: %w", err)
	}

	if len(paths) == 0 {
		return fmt.Errorf("%w: no specification files found", m.ErrConfiguration)
	}

	if args.MIDI != "" {
		if err := checkMIDITargets(args.MIDI, paths); err != nil {
			return err
		}
	}

	threads := max(args.Threads, 1)
	runID := uuid.New().String()
	logger := w.logger.With("run", runID)

	if err := w.ui.Start(controller.WithInterpretMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports := make([]m.Report, len(paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			report, err := w.interpretFile(path, args.MIDI, logger)
			if err != nil {
				return fmt.Errorf("interpret %s: %w", path, err)
			}

			report.RunID = runID
			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("run complete", "files", len(reports), "threads", threads)

	if args.Reports != "" {
		if err := w.store.SaveReports(args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
	}

	return w.ui.DisplayReports(reports)
}

// View shows stored reports, through a template when one is given.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if args.Template == "" {
		return w.ui.DisplayReports(reports)
	}

	text, err := w.loader.ReadTemplate(args.Template)
	if err != nil {
		return err
	}

	return w.ui.DisplayTemplate(text, reports)
}

// Inspect interprets one file and shows a single voice of it.
func (w *workflow) Inspect(args InspectArgs) error {
	report, err := w.interpretFile(args.Path, "", w.logger)
	if err != nil {
		return fmt.Errorf("interpret %s: %w", args.Path, err)
	}

	voice, ok := report.Voice(args.Voice)
	if !ok {
		return fmt.Errorf("%w: %s has no voice named %q", m.ErrLookup, args.Path, args.Voice)
	}

	if err := w.ui.Start(controller.WithInspectMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	return w.ui.DisplayVoice(report, voice)
}

func (w *workflow) interpretFile(path, midiDir m.Path, logger *slog.Logger) (m.Report, error) {
	spec, err := w.loader.LoadSpecification(path)
	if err != nil {
		return m.Report{}, err
	}

	score, err := w.newInterpreter(logger.With("file", string(path))).Interpret(spec)
	if err != nil {
		return m.Report{}, err
	}

	if midiDir != "" {
		if err := w.exporter.Export(midiPath(midiDir, path), score); err != nil {
			return m.Report{}, err
		}
	}

	report := BuildReport(path, spec, score)

	report.Hash, err = w.fs.HashFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("hash: %w", err)
	}

	return report, nil
}

// midiPath names the export of path inside dir after the specification file.
func midiPath(dir, path m.Path) m.Path {
	base := filepath.Base(string(path))
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return m.Path(filepath.Join(string(dir), base+midiExt))
}

// checkMIDITargets rejects runs where two specifications would export to the
// same file.
func checkMIDITargets(dir m.Path, paths []m.Path) error {
	targets := make(map[m.Path]m.Path, len(paths))

	for _, path := range paths {
		target := midiPath(dir, path)
		if other, ok := targets[target]; ok {
			return fmt.Errorf("%w: %s and %s both export to %s", m.ErrConfiguration, other, path, target)
		}

		targets[target] = path
	}

	return nil
}
