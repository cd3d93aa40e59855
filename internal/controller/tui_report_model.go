package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const stateWidth = 16

// voiceDelegate renders one voice per line.
type voiceDelegate struct {
	offset int
}

func (d voiceDelegate) Height() int  { return 1 }
func (d voiceDelegate) Spacing() int { return 0 }
func (d voiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d voiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	v, ok := item.(voiceItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var nameStyle, stateStyle lipgloss.Style

	var displayName string

	width := m.Width() - stateWidth - 2
	name := v.source + " " + v.voice.Name

	if isSelected {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(stateWidth)

		displayName = animateScroll(name, width, d.offset)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		stateStyle = lipgloss.NewStyle().
			Foreground(stateColor(string(v.voice.State))).
			Width(stateWidth)

		displayName = truncateToWidth(name, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", stateStyle.Render(string(v.voice.State)), nameStyle.Render(displayName))
}

func stateColor(state string) lipgloss.Color {
	switch state {
	case "RHYTHM_RESOLVED":
		return lipgloss.Color("10")
	case "UNSET":
		return lipgloss.Color("8")
	default:
		return lipgloss.Color("11")
	}
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)

	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportModel browses the voices of stored reports.
type reportModel struct {
	width        int
	height       int
	voiceList    list.Model
	delegate     voiceDelegate
	reports      int
	voices       int
	rendered     bool
	detail       bool
	animOffset   int
	lastSelected int
}

func newReportModel() reportModel {
	delegate := voiceDelegate{}
	voiceList := list.New([]list.Item{}, delegate, 80, 20)
	voiceList.SetShowPagination(false)
	voiceList.SetShowFilter(true)
	voiceList.SetShowHelp(false)
	voiceList.SetShowTitle(false)
	voiceList.SetShowStatusBar(false)
	voiceList.FilterInput.Placeholder = "Filter by voice…"

	return reportModel{
		width:        80,
		height:       24,
		voiceList:    voiceList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m reportModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.voiceList.SetWidth(m.width)

	case tickMsg:
		if m.voiceList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.voiceList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.voiceList.FilterState() != list.Filtering {
				m.detail = !m.detail

				return m, nil
			}
		case "esc":
			if m.detail {
				m.detail = false

				return m, nil
			}
		}

		m.voiceList, cmd = m.voiceList.Update(msg)

		if m.voiceList.Index() != m.lastSelected {
			m.lastSelected = m.voiceList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.voiceList.SetDelegate(m.delegate)
		}

		return m, cmd

	case reportsMsg:
		m = m.handleReportsMsg(msg)
	}

	return m, cmd
}

func (m reportModel) handleReportsMsg(msg reportsMsg) reportModel {
	var items []list.Item

	for _, report := range msg.reports {
		for _, voice := range report.Voices {
			items = append(items, voiceItem{source: string(report.Source), voice: voice})
		}
	}

	m.voiceList.SetItems(items)
	m.reports = len(msg.reports)
	m.voices = len(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m reportModel) View() string {
	if !m.rendered {
		return "Loading reports…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("♪ Score Interpretation Reports")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Reports: %s   Voices: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.reports)),
		accentStyle.Render(fmt.Sprintf("%d", m.voices)),
	))

	body := m.renderTable()
	if m.detail {
		body = m.renderDetail()
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • enter details • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		body,
		footer,
	)
}

func (m reportModel) renderTable() string {
	listHeight := max(m.height-9, 5)
	listWidth := m.width - 6

	m.voiceList.SetHeight(listHeight)
	m.voiceList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", stateWidth, "State", "Voice"))

	return boxStyle().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.voiceList.View(),
		),
	)
}

func (m reportModel) renderDetail() string {
	item, ok := m.voiceList.SelectedItem().(voiceItem)
	if !ok {
		return boxStyle().Render("no voice selected")
	}

	return boxStyle().Width(max(m.width-4, 20)).Render(voiceDetail(item.source, item.voice))
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)
}
