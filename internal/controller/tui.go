package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/scorespec/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TUI implements UI using lipgloss styling, and Bubble Tea for browsing
// stored reports.
type TUI struct {
	input  io.Reader
	output io.Writer
	mode   StartMode
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = newStartConfig(options...).mode

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {

}

// DisplayReports browses reports interactively in view mode and prints a
// styled summary otherwise.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if t.mode == ModeView {
		return t.run(reportsMsg{reports: reports})
	}

	_, _ = fmt.Fprintln(t.output, summarizeReports(reports))

	return nil
}

// DisplayVoice prints the regions of one voice.
func (t *TUI) DisplayVoice(report m.Report, voice m.VoiceReport) error {
	_, _ = fmt.Fprintln(t.output, boxStyle().Render(voiceDetail(string(report.Source), voice)))

	return nil
}

// DisplayTemplate renders reports through a text template.
func (t *TUI) DisplayTemplate(text string, reports []m.Report) error {
	out, err := RenderTemplate(text, reports)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(t.output, out)

	return nil
}

func (t *TUI) run(msg reportsMsg) error {
	model := newReportModel().handleReportsMsg(msg)

	program := tea.NewProgram(model, tea.WithInput(t.input), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("report viewer: %w", err)
	}

	return nil
}

func summarizeReports(reports []m.Report) string {
	var b strings.Builder

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(headingStyle.Render(string(report.Source)))
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(report.Score + " • " + report.Duration))

		for _, voice := range report.Voices {
			fmt.Fprintf(&b, "\n  %s %s %s",
				lipgloss.NewStyle().Foreground(stateColor(string(voice.State))).Width(stateWidth).Render(string(voice.State)),
				voice.Name,
				labelStyle.Render(fmt.Sprintf("%d notes, %d rests", voice.Notes, voice.Rests)))
		}
	}

	if len(reports) > 0 && reports[0].RunID != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("run ") + valueStyle.Render(reports[0].RunID))
	}

	return b.String()
}

func voiceDetail(source string, voice m.VoiceReport) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(voice.Name))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render(source + " • " + string(voice.State)))

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}

		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render(title))

		for _, line := range lines {
			b.WriteString("\n  ")
			b.WriteString(line)
		}
	}

	section("division regions", voice.DivisionRegions)

	segments := make([]string, 0, len(voice.Segments))
	for _, s := range voice.Segments {
		segments = append(segments, valueStyle.Render(s.Segment)+"  "+s.Divisions)
	}

	section("segments", segments)
	section("rhythm regions", voice.RhythmRegions)

	fmt.Fprintf(&b, "\n\n%d containers • %d notes • %d rests • %d beams",
		voice.Containers, voice.Notes, voice.Rests, voice.Beams)

	return b.String()
}
