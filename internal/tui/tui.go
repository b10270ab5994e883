// Package tui is the console frontend: the same run core as the graphical
// game, driven from a terminal. There is no spatial world here — terminals
// are opened by name with /open — but the session rules, the countdown and
// the puzzle tracker are identical.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JihunPark03/Gemini3Hackathon/internal/game"
	"github.com/JihunPark03/Gemini3Hackathon/internal/models"
)

var (
	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	shipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	brokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6A5E"))
	fixedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EE8FF"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	ctx       context.Context
	run       *game.Run
	textInput textinput.Model
	viewport  viewport.Model
	width     int
	height    int
	shown     int // transcript entries already rendered
	log       string
}

func NewModel(ctx context.Context, run *game.Run) model {
	ti := textinput.New()
	ti.Placeholder = "Press Enter to begin..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return model{ctx: ctx, run: run, textInput: ti}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.72)
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.log)

	case tickMsg:
		m.run.Pump()
		m.syncTranscript()
		return m, tick()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()

	switch m.run.Phase() {
	case models.PhaseNotStarted:
		m.startRun()
		return m, nil
	case models.PhaseWon, models.PhaseLost:
		if line == "/restart" {
			m.startRun()
			return m, nil
		}
		if line == "/quit" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case line == "":
		return m, nil
	case line == "/quit":
		return m, tea.Quit
	case line == "/restart":
		m.startRun()
		return m, nil
	case line == "/close":
		m.run.CloseTerminal()
		return m, nil
	case strings.HasPrefix(line, "/open "):
		id := models.SystemID(strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, "/open "))))
		if !m.run.OpenTerminalByID(m.ctx, id) {
			m.appendLine(helpStyle.Render("No such machine (or a terminal is already open)."))
		}
		return m, nil
	default:
		if !m.run.TerminalOpen() {
			m.appendLine(helpStyle.Render("Open a terminal first: /open power, /open engine, /open life support"))
			return m, nil
		}
		m.run.Submit(m.ctx, line)
		return m, nil
	}
}

func (m *model) startRun() {
	m.run.Start(m.ctx)
	m.log = ""
	m.shown = 0
	m.textInput.Placeholder = "What do you do?"
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(int(float64(m.width)*0.72), m.height-6)
	}
	m.viewport.SetContent(m.log)
}

// syncTranscript appends any transcript entries that arrived since the last
// frame to the scrollback. The transcript itself is append-only, so an index
// is all the bookkeeping needed.
func (m *model) syncTranscript() {
	transcript := m.run.Transcript()
	for ; m.shown < len(transcript); m.shown++ {
		msg := transcript[m.shown]
		if msg.Role == models.RolePlayer {
			m.appendLine(playerStyle.Render("> " + msg.Content))
		} else {
			m.appendLine(shipStyle.Render(msg.Content))
		}
	}
}

func (m *model) appendLine(s string) {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	m.log += lipgloss.NewStyle().Width(width).Render(s) + "\n\n"
	m.viewport.SetContent(m.log)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	switch m.run.Phase() {
	case models.PhaseNotStarted:
		return fmt.Sprintf(
			"\n%s\n\nThree ship systems are down. You have %s.\n\n%s\n",
			titleStyle.Render("KESTREL // EMERGENCY REPAIR PROTOCOL"),
			models.FormatClock(models.TotalSeconds),
			m.textInput.View(),
		)
	case models.PhaseWon:
		return "\n" + titleStyle.Render("MISSION SUCCESS") + "\n\n/restart to play again, /quit to leave.\n\n" + m.textInput.View() + "\n"
	case models.PhaseLost:
		return "\n" + titleStyle.Render("OUT OF TIME") + "\n\n/restart to retry, /quit to leave.\n\n" + m.textInput.View() + "\n"
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), m.sidebar())

	input := m.textInput.View()
	if m.run.Pending() {
		input = helpStyle.Render("... awaiting ship computer ...")
	}

	help := helpStyle.Render("Commands: /open <system>, /close, /restart, /quit — anything else goes to the terminal.")

	return lipgloss.JoinVertical(lipgloss.Left, main, "\n"+input, "\n"+help)
}

func (m model) sidebar() string {
	clock := titleStyle.Render("COUNTDOWN") + "\n" + models.FormatClock(m.run.SecondsLeft()) + "\n\n"

	systems := titleStyle.Render("SYSTEMS") + "\n"
	if t := m.run.Tracker(); t != nil {
		for _, id := range t.Order() {
			status := t.Status(id)
			line := fmt.Sprintf("%s: %s", id, status)
			if status == models.StatusFixed {
				systems += fixedStyle.Render(line) + "\n"
			} else {
				systems += brokenStyle.Render(line) + "\n"
			}
		}
	}

	terminal := "\n" + titleStyle.Render("TERMINAL") + "\n"
	if m.run.TerminalOpen() {
		terminal += string(m.run.TerminalMachine())
	} else {
		terminal += "(closed)"
	}

	width := int(float64(m.width) * 0.24)
	return sidebarStyle.Width(width).Height(m.viewport.Height).Render(clock + systems + terminal)
}

// Run starts the console frontend and blocks until the player quits.
func Run(ctx context.Context, r *game.Run) error {
	p := tea.NewProgram(NewModel(ctx, r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
