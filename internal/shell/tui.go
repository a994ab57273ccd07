package shell

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/dicegame/internal/game"
)

var (
	logPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)
	inputPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// TUIModel is a Bubble Tea front end over a Shell. Each submitted line is
// run through Shell.Execute and its output appended to a scrolling log.
type TUIModel struct {
	shell  *Shell
	output *bytes.Buffer
	styles *Styles

	logViewport viewport.Model
	input       textinput.Model

	gameLog  []string
	quitting bool

	width  int
	height int
}

// NewTUIModel creates a TUI driving g.
func NewTUIModel(g *game.Game, logger *log.Logger, styles *Styles) *TUIModel {
	if styles == nil {
		styles = DefaultStyles()
	}
	output := &bytes.Buffer{}
	sh := New(g, Options{Out: output, Logger: logger, Styles: styles})

	vp := viewport.New(80, 20)

	ti := textinput.New()
	ti.Placeholder = "roll, move <a> [b], board, reset, help, exit"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 60
	ti.PromptStyle = styles.Prompt
	ti.Prompt = "> "

	m := &TUIModel{
		shell:       sh,
		output:      output,
		styles:      styles,
		logViewport: vp,
		input:       ti,
	}
	sh.Intro()
	m.drainOutput()
	return m
}

// Shell returns the underlying shell.
func (m *TUIModel) Shell() *Shell {
	return m.shell
}

// Log returns the lines written to the log pane so far.
func (m *TUIModel) Log() []string {
	return m.gameLog
}

// Init implements tea.Model.
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if m.Submit(line) {
				return m, tea.Quit
			}
			return m, nil
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit runs line through the shell and reports whether the TUI should quit.
func (m *TUIModel) Submit(line string) bool {
	if line == "" {
		return false
	}
	m.gameLog = append(m.gameLog, m.styles.Prompt.Render("> "+line))
	cont := m.shell.Execute(line)
	m.drainOutput()
	if !cont {
		m.quitting = true
	}
	return m.quitting
}

func (m *TUIModel) drainOutput() {
	text := strings.TrimRight(m.output.String(), "\n")
	m.output.Reset()
	if text != "" {
		m.gameLog = append(m.gameLog, strings.Split(text, "\n")...)
	}
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

func (m *TUIModel) resize() {
	// borders, padding, header, input pane
	m.logViewport.Width = max(m.width-4, 20)
	m.logViewport.Height = max(m.height-10, 5)
	m.input.Width = max(m.width-10, 20)
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		logPaneStyle.Render(m.logViewport.View()),
		inputPaneStyle.Render(m.input.View()+"\n"+
			helpStyle.Render("Enter to submit • PgUp/PgDn to scroll • Ctrl+C to quit")),
	)
}

func (m *TUIModel) renderHeader() string {
	g := m.shell.Game()
	status := fmt.Sprintf(" Board: %s   State: %s", RenderBoardCells(g.Board(), m.styles), m.shell.State())
	if target, ok := g.Target(); ok && m.shell.State() == AwaitingMove {
		status += fmt.Sprintf("   Target: %s", m.styles.Target.Render(fmt.Sprint(target)))
	}
	return m.styles.Title.Render("Dice Game") + status
}

// RunTUI runs the model until the player exits.
func RunTUI(m *TUIModel) error {
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
