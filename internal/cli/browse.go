package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/menttor/menttor-cli/internal/cli/formatter"
	"github.com/menttor/menttor-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse roadmaps and their schedules interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse needs an interactive terminal; try `menttor roadmap list`")
			}
			return RunBrowse(app)
		},
	}
}

// RunBrowse starts the two-pane browser.
func RunBrowse(app *App) error {
	p := tea.NewProgram(newBrowseModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// browseFocus tracks which pane receives key input.
type browseFocus int

const (
	focusList browseFocus = iota
	focusSchedule
)

type roadmapsLoadedMsg struct {
	roadmaps []*domain.Roadmap
	err      error
}

type scheduleLoadedMsg struct {
	roadmap *domain.Roadmap
	entries []domain.ScheduleEntry
	err     error
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "schedule")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is the top-level model for the browse command: a roadmap list
// on the left and a scrollable schedule preview on the right.
type browseModel struct {
	app  *App
	keys browseKeyMap

	roadmaps []*domain.Roadmap
	cursor   int
	loading  bool
	err      error

	focus    browseFocus
	schedule viewport.Model
	selected *domain.Roadmap

	width  int
	height int
}

func newBrowseModel(app *App) *browseModel {
	vp := viewport.New(0, 0)
	return &browseModel{
		app:      app,
		keys:     newBrowseKeyMap(),
		loading:  true,
		schedule: vp,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadRoadmaps()
}

func (m *browseModel) loadRoadmaps() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		roadmaps, err := app.Roadmaps.List(context.Background(), false)
		return roadmapsLoadedMsg{roadmaps: roadmaps, err: err}
	}
}

func (m *browseModel) loadSchedule(ref string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		start, _ := parseStartFlag("")
		r, entries, err := app.Schedules.BuildSchedule(context.Background(), ref, start)
		return scheduleLoadedMsg{roadmap: r, entries: entries, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.schedule.Width = m.scheduleWidth()
		m.schedule.Height = max(msg.Height-4, 1)
		return m, nil

	case roadmapsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.roadmaps = msg.roadmaps
		return m, nil

	case scheduleLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.selected = msg.roadmap
		m.schedule.SetContent(formatter.FormatSchedule(msg.roadmap, msg.entries))
		m.schedule.GotoTop()
		m.focus = focusSchedule
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.focus == focusSchedule {
		if key.Matches(msg, m.keys.Back) {
			m.focus = focusList
			m.selected = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.schedule, cmd = m.schedule.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.roadmaps)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.roadmaps) {
			return m, m.loadSchedule(m.roadmaps[m.cursor].Slug)
		}
	}
	return m, nil
}

func (m *browseModel) listWidth() int {
	w := m.width / 3
	if w < 28 {
		w = 28
	}
	return w
}

func (m *browseModel) scheduleWidth() int {
	w := m.width - m.listWidth() - 4
	if w < 20 {
		w = 20
	}
	return w
}

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1)
	paneFocusStyle = paneStyle.
			BorderForeground(formatter.ColorAccent)
)

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading roadmaps...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) +
			"\n  " + formatter.Dim("Press q to quit.")
	}

	left := m.renderList()
	right := m.renderSchedule()

	listStyle, schedStyle := paneFocusStyle, paneStyle
	if m.focus == focusSchedule {
		listStyle, schedStyle = paneStyle, paneFocusStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Width(m.listWidth()).Render(left),
		schedStyle.Width(m.scheduleWidth()).Render(right),
	)

	help := formatter.Dim("↑/↓ move · enter schedule · esc back · q quit")
	return body + "\n " + help
}

func (m *browseModel) renderList() string {
	if len(m.roadmaps) == 0 {
		return formatter.Dim("No roadmaps imported yet.")
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Roadmaps") + "\n")
	for i, r := range m.roadmaps {
		cursor := "  "
		style := formatter.StyleFg
		if i == m.cursor && m.focus == focusList {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		modules, _, subs := r.NodeCount()
		meta := formatter.Dim(fmt.Sprintf("%d modules · %d sessions", modules, subs))
		b.WriteString(fmt.Sprintf("%s%s\n   %s\n", cursor, style.Render(r.Title), meta))
	}
	return b.String()
}

func (m *browseModel) renderSchedule() string {
	if m.selected == nil {
		return formatter.Dim("Select a roadmap and press enter to preview its schedule.")
	}
	view := m.schedule.View()
	if m.schedule.TotalLineCount() > m.schedule.Height {
		view += "\n" + formatter.Dim(fmt.Sprintf("%3.0f%%", m.schedule.ScrollPercent()*100))
	}
	return view
}

