package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scorespec/internal/domain"
	m "github.com/mouse-blink/scorespec/internal/model"
)

var inspectVoiceFlag string

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect file",
		Short: "Show how one voice of a specification was interpreted",
		Long:  "Interpret a single specification and print the division regions, segment division lists and rhythm regions of one voice.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Inspect(domain.InspectArgs{
				Path:  m.Path(args[0]),
				Voice: inspectVoiceFlag,
			})
		},
	}
	cmd.Flags().StringVar(&inspectVoiceFlag, "voice", "Voice 1", "name of the voice to inspect")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
