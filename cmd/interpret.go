package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scorespec/internal/domain"
	m "github.com/mouse-blink/scorespec/internal/model"
)

const interpretLongDescription = `Interpret score specification files.

Every file is loaded, interpreted against its score template and summarised.
Reports of the run are saved under the output directory in a file named after
the run id. With --midi each score is also written as a standard MIDI file.`

var interpretParallelFlag int
var interpretMIDIFlag string

// interpretCmd represents the interpret command.
var interpretCmd = newInterpretCmd()

func newInterpretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpret [files...]",
		Short: "Interpret score specifications",
		Long:  interpretLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Interpret(domain.InterpretArgs{
				Paths:   parsePaths(args),
				Reports: m.Path(reportsOutputDirFlag),
				MIDI:    m.Path(interpretMIDIFlag),
				Threads: interpretParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&interpretParallelFlag, "parallel", "p", 1, "number of specification files interpreted at once")
	cmd.Flags().StringVarP(&interpretMIDIFlag, "midi", "m", "", "directory MIDI exports are written to")

	return cmd
}

func init() {
	rootCmd.AddCommand(interpretCmd)
}
