package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/scorespec/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options...).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayReports prints one table per report listing its voices.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("no reports\n")

		return nil
	}

	for _, report := range reports {
		s.printf("\n%s (%s, %s)\n", report.Source, report.Score, report.Duration)

		for _, segment := range report.Segments {
			s.printf("  segment %s %s %s\n", segment.Name, segment.Timespan, strings.Join(segment.TimeSignatures, " "))
		}

		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Voice", "State", "Containers", "Notes", "Rests", "Beams"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		})

		var notes, rests int

		for _, voice := range report.Voices {
			table.Append([]string{
				voice.Name,
				string(voice.State),
				fmt.Sprintf("%d", voice.Containers),
				fmt.Sprintf("%d", voice.Notes),
				fmt.Sprintf("%d", voice.Rests),
				fmt.Sprintf("%d", voice.Beams),
			})

			notes += voice.Notes
			rests += voice.Rests
		}

		table.SetFooter([]string{
			fmt.Sprintf("Voices %d", len(report.Voices)),
			"", "",
			fmt.Sprintf("%d", notes),
			fmt.Sprintf("%d", rests),
			"",
		})

		table.Render()
		s.printf("\n%s", tableBuffer.String())
	}

	if s.mode == ModeInterpret && reports[0].RunID != "" {
		s.printf("\nrun %s: %d specification(s) interpreted\n", reports[0].RunID, len(reports))
	}

	return nil
}

// DisplayVoice prints the division and rhythm regions of one voice.
func (s *SimpleUI) DisplayVoice(report m.Report, voice m.VoiceReport) error {
	s.printf("%s / %s [%s]\n", report.Source, voice.Name, voice.State)

	s.printf("\ndivision regions:\n")

	for _, region := range voice.DivisionRegions {
		s.printf("  %s\n", region)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Segment", "Divisions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, segment := range voice.Segments {
		table.Append([]string{segment.Segment, segment.Divisions})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	s.printf("\nrhythm regions:\n")

	for _, region := range voice.RhythmRegions {
		s.printf("  %s\n", region)
	}

	s.printf("\n%d containers, %d notes, %d rests, %d beams\n", voice.Containers, voice.Notes, voice.Rests, voice.Beams)

	return nil
}

// DisplayTemplate renders reports through a text template.
func (s *SimpleUI) DisplayTemplate(text string, reports []m.Report) error {
	out, err := RenderTemplate(text, reports)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
