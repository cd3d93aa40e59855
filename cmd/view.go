package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scorespec/internal/domain"
	m "github.com/mouse-blink/scorespec/internal/model"
)

var viewTemplateFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated interpretation reports",
		Long: `View previously generated interpretation reports from a reports directory.

With --template the reports are rendered through a Go text template instead;
sprig functions and "label" are available.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{
				Reports:  m.Path(reportsOutputDirFlag),
				Template: m.Path(viewTemplateFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&viewTemplateFlag, "template", "t", "", "text template file to render reports with")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
