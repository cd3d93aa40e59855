// Package cmd provides the root command and CLI setup for scorespec.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scorespec/internal/adapter"
	"github.com/mouse-blink/scorespec/internal/controller"
	"github.com/mouse-blink/scorespec/internal/domain"
	m "github.com/mouse-blink/scorespec/internal/model"
)

const defaultReportsDir = ".scorespec-reports"

var fsAdapter adapter.SourceFSAdapter
var specLoader adapter.SpecLoader
var reportStore adapter.ReportStore
var midiExporter adapter.MIDIExporter
var workflow domain.Workflow
var ui controller.UI
var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelWarn)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	specLoader = adapter.NewLocalSpecLoader()
	reportStore = adapter.NewReportStore()
	midiExporter = adapter.NewMIDIExporter(adapter.DefaultTempo)
	workflow = domain.NewWorkflow(
		fsAdapter,
		specLoader,
		reportStore,
		midiExporter,
		ui,
		domain.WithWorkflowLogger(logger),
	)
}

var reportsOutputDirFlag string
var verboseFlag bool
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scorespec [files...]",
		Short: "Score specification interpreter",
		Long: `Scorespec interprets score specifications: segments of time signatures,
divisions, rhythm makers and pitch classes declared against the contexts of
a score template. Each specification is resolved into a populated score,
summarised in a report and optionally exported as a MIDI file.

Arguments may be files or directories; a directory followed by /... is
searched recursively for .yaml and .yml files. Running scorespec with
files is the same as "scorespec interpret".`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Interpret(domain.InterpretArgs{
				Paths:   parsePaths(args),
				Reports: m.Path(reportsOutputDirFlag),
				Threads: parallelFlag,
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "output", "o", defaultReportsDir, "directory interpretation reports are written to and read from")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every interpretation stage to stderr")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of specification files interpreted at once")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
