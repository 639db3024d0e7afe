package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/cil-codec/internal/listing"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseState int

const (
	stateBrowse browseState = iota
	stateGoto
)

const defaultPageSize = 20

type browseModel struct {
	err      error
	app      *app
	in       *input
	listing  *listing.Listing
	encoded  []byte
	status   string
	goTo     textinput.Model
	styles   listing.Styles
	selected int
	top      int
	page     int
	state    browseState
}

func newBrowseModel(a *app, in *input) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "IL_0010, 0x10 or 16"
	ti.Prompt = "goto: "
	ti.Width = 24

	m := &browseModel{
		app:    a,
		in:     in,
		goTo:   ti,
		styles: listing.NewStyles(a.out, a.color()),
		page:   defaultPageSize,
		state:  stateBrowse,
	}
	m.refresh()
	return m
}

// refresh rebuilds the listing and the encoded bytes after an edit.
func (m *browseModel) refresh() {
	l, err := listing.Build(m.in.body, m.app.table)
	if err != nil {
		m.err = err
		return
	}
	m.listing = l
	m.encoded, m.err = m.app.encode(m.in)
	m.selected = min(m.selected, max(len(l.Instructions)-1, 0))
	m.scroll()
}

func (m *browseModel) scroll() {
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+m.page {
		m.top = m.selected - m.page + 1
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.page = max(msg.Height-10, 1)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateGoto {
			return m.updateGoto(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.listing.Instructions)-1 {
				m.selected++
			}

		case "pgup":
			m.selected = max(m.selected-m.page, 0)

		case "pgdown":
			m.selected = min(m.selected+m.page, max(len(m.listing.Instructions)-1, 0))

		case "e":
			m.in.body.Instructions.ExpandMacros()
			m.refresh()
			m.status = fmt.Sprintf("expanded, code is %d bytes", m.listing.Header.CodeSize)

		case "o":
			passes := m.in.body.Instructions.OptimizeMacrosFixedPoint()
			m.refresh()
			m.status = fmt.Sprintf("optimized in %d passes, code is %d bytes", passes, m.listing.Header.CodeSize)

		case "s":
			if n, err := m.in.body.ComputeMaxStack(); err != nil {
				m.status = ""
				m.err = err
			} else {
				m.status = fmt.Sprintf("max stack %d, header declares %d", n, m.in.body.MaxStack)
			}

		case "g":
			m.state = stateGoto
			m.goTo.SetValue("")
			m.goTo.Focus()
			return m, textinput.Blink
		}
		m.scroll()
	}
	return m, nil
}

func (m *browseModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateBrowse
		m.goTo.Blur()
		return m, nil

	case "enter":
		m.state = stateBrowse
		m.goTo.Blur()
		offset, err := parseOffset(m.goTo.Value())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		index := m.in.body.Instructions.GetIndexByOffset(offset)
		if index < 0 {
			m.status = fmt.Sprintf("no instruction starts at IL_%04X", offset)
			return m, nil
		}
		m.selected = index
		m.status = ""
		m.scroll()
		return m, nil
	}

	var cmd tea.Cmd
	m.goTo, cmd = m.goTo.Update(msg)
	return m, cmd
}

// parseOffset accepts IL_xxxx and 0x prefixed hex, or a decimal offset.
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "IL_"); ok {
		v, err := strconv.ParseUint(rest, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad label %q", s)
		}
		return int(v), nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad offset %q", s)
	}
	return int(v), nil
}

func (m *browseModel) View() string {
	if m.listing == nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder
	h := m.listing.Header
	b.WriteString(titleStyle.Render("CIL Browser"))
	fmt.Fprintf(&b, " %s body, code %d bytes, max stack %d, %d handlers\n\n",
		h.Format, h.CodeSize, h.MaxStack, len(m.listing.Handlers))

	width := 0
	for _, line := range m.listing.Instructions {
		width = max(width, len(line.Bytes))
	}
	end := min(m.top+m.page, len(m.listing.Instructions))
	for i := m.top; i < end; i++ {
		line := m.listing.Instructions[i]
		if i == m.selected {
			text := fmt.Sprintf("> %s: %-*s  %s %s", line.Label, width, line.Bytes, line.OpCode, line.Operand)
			b.WriteString(selectedStyle.Render(text))
		} else {
			b.WriteString("  ")
			var row strings.Builder
			listing.RenderLine(&row, m.styles, line, width)
			b.WriteString(row.String())
		}
		b.WriteByte('\n')
	}
	for _, hd := range m.listing.Handlers {
		b.WriteString(m.styles.Handler.Render(listing.FormatHandler(hd)))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	if m.encoded != nil {
		fmt.Fprintf(&b, "encoded %d bytes\n", len(m.encoded))
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}

	if m.state == stateGoto {
		b.WriteString(m.goTo.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ move • e expand • o optimize • s max stack • g goto • q quit"))
	}
	return b.String()
}

func runBrowser(a *app, in *input) error {
	p := tea.NewProgram(newBrowseModel(a, in), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
