package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/watfreq/analyzer"
	"github.com/wippyai/watfreq/config"
	"github.com/wippyai/watfreq/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	shareStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err       error
	filename  string
	cfg       config.Config
	validate  bool
	report    *analyzer.Report
	ranked    []analyzer.Entry // descending by count for browsing
	visible   []analyzer.Entry
	filter    textinput.Model
	filtering bool
	cursor    int
	offset    int
	height    int
}

type analyzedMsg struct {
	err    error
	report *analyzer.Report
}

func newInteractiveModel(filename string, cfg config.Config, validate bool) *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "filter sequences"
	filter.Prompt = "/ "
	filter.Width = 40

	return &interactiveModel{
		filename: filename,
		cfg:      cfg,
		validate: validate,
		filter:   filter,
		height:   24,
	}
}

func runInteractive(filename string, cfg config.Config, validate bool) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.InvalidInput(errors.PhaseRender, "interactive mode requires a terminal")
	}

	p := tea.NewProgram(newInteractiveModel(filename, cfg, validate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.analyzeFile
}

func (m *interactiveModel) analyzeFile() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return analyzedMsg{err: errors.ReadFailed(m.filename, err)}
	}
	report, err := analyze(data, m.cfg, m.validate)
	if err != nil {
		return analyzedMsg{err: err}
	}
	return analyzedMsg{report: report}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.clampCursor()

	case analyzedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.report = msg.report
		m.ranked = make([]analyzer.Entry, len(msg.report.Entries))
		copy(m.ranked, msg.report.Entries)
		sort.SliceStable(m.ranked, func(i, j int) bool {
			return m.ranked[i].Count > m.ranked[j].Count
		})
		m.applyFilter()

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.filter.Blur()
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "/":
			m.filtering = true
			m.filter.Focus()

		case "esc":
			m.filter.SetValue("")
			m.applyFilter()

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampCursor()

		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			m.clampCursor()

		case "g":
			m.cursor = 0
			m.clampCursor()

		case "G":
			m.cursor = len(m.visible) - 1
			m.clampCursor()
		}
	}

	return m, nil
}

func (m *interactiveModel) applyFilter() {
	needle := m.filter.Value()
	if needle == "" {
		m.visible = m.ranked
	} else {
		m.visible = nil
		for _, e := range m.ranked {
			if strings.Contains(e.Sequence, needle) {
				m.visible = append(m.visible, e)
			}
		}
	}
	m.cursor = 0
	m.offset = 0
}

// clampCursor keeps the cursor inside the visible slice and scrolls the
// window so the cursor stays on screen.
func (m *interactiveModel) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// listRows is the number of entry lines that fit between the header block
// and the help line.
func (m *interactiveModel) listRows() int {
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.report == nil {
		return "Analyzing " + m.filename + "..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("watfreq"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d tokens, %d windows, %d distinct sequences (n=%d)\n\n",
		m.report.TokenCount, m.report.WindowCount, len(m.report.Entries), m.cfg.Length))

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("no sequences"))
		b.WriteString("\n")
	}

	rows := m.listRows()
	end := m.offset + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		e := m.visible[i]
		share := ""
		if m.report.WindowCount > 0 {
			share = fmt.Sprintf("%5.1f%%", 100*float64(e.Count)/float64(m.report.WindowCount))
		}
		line := fmt.Sprintf("%s %s  %s",
			countStyle.Render(fmt.Sprintf("%6d", e.Count)),
			shareStyle.Render(share),
			e.Sequence)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("%6d %s  %s", e.Count, share, e.Sequence))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.filtering {
		b.WriteString(helpStyle.Render("enter apply • esc clear"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ move • / filter • g/G top/bottom • q quit"))
	}

	return b.String()
}
