package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vancomm/sweeper/internal/mines"
)

type tickMsg struct {
	gameID uuid.UUID
}

func tick(gameID uuid.UUID) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gameID: gameID}
	})
}

// Model is the terminal front end of a [mines.Session]. It translates keys and
// mouse clicks into session input and renders the session after every event.
type Model struct {
	session  *mines.Session
	logger   *slog.Logger
	names    []string
	choice   int
	menu     bool
	cursor   mines.Point
	elapsed  int
	errMsg   string
	quitting bool
}

func New(session *mines.Session, logger *slog.Logger) Model {
	return Model{
		session: session,
		logger:  logger,
		names:   session.Presets().Names(),
		menu:    session.State() == mines.StateChoosingDifficulty,
	}
}

func (m Model) Session() *mines.Session { return m.session }

func (m Model) Init() tea.Cmd {
	if m.session.State() == mines.StateInProgress {
		return tick(m.session.GameID())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gameID == m.session.GameID() && m.session.State() == mines.StateInProgress {
			m.elapsed++
			return m, tick(msg.gameID)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
		if m.menu {
			return m.updateMenu(msg)
		}
		return m.updateBoard(msg)
	case tea.MouseMsg:
		if m.menu || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		// off-grid clicks map to out-of-bounds cells, which the board ignores
		p := mines.Point{Row: msg.Y - boardTop, Col: msg.X / cellWidth}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.reveal(p)
		case tea.MouseButtonRight:
			m.flag(p)
		}
		if m.session.Board().InBounds(p.Row, p.Col) {
			m.cursor = p
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.choice > 0 {
			m.choice--
		}
	case "down", "j":
		if m.choice < len(m.names)-1 {
			m.choice++
		}
	case "enter", " ", "space":
		if len(m.names) == 0 {
			return m, nil
		}
		name := m.names[m.choice]
		if err := m.session.SelectDifficulty(name); err != nil {
			m.errMsg = err.Error()
			m.logger.Warn("unable to start game", slog.String("difficulty", name), slog.Any("error", err))
			return m, nil
		}
		m.errMsg = ""
		m.menu = false
		m.elapsed = 0
		size := m.session.Board().Size()
		m.cursor = mines.Point{Row: size / 2, Col: size / 2}
		m.logger.Info("new game",
			slog.String("game_id", m.session.GameID().String()),
			slog.String("difficulty", name),
		)
		return m, tick(m.session.GameID())
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	size := m.session.Board().Size()
	switch msg.String() {
	case "up", "k":
		m.cursor.Row = max(0, m.cursor.Row-1)
	case "down", "j":
		m.cursor.Row = min(size-1, m.cursor.Row+1)
	case "left", "h":
		m.cursor.Col = max(0, m.cursor.Col-1)
	case "right", "l":
		m.cursor.Col = min(size-1, m.cursor.Col+1)
	case "enter", " ", "space":
		if m.session.State().Terminal() {
			m.menu = true
			return m, nil
		}
		m.reveal(m.cursor)
	case "f":
		m.flag(m.cursor)
	case "n", "esc":
		m.menu = true
	}
	return m, nil
}

func (m *Model) reveal(p mines.Point) {
	opened := m.session.HandleReveal(p.Row, p.Col)
	if len(opened) == 0 {
		return
	}
	m.logger.Debug("reveal",
		slog.Int("row", p.Row), slog.Int("col", p.Col),
		slog.Int("opened", len(opened)),
	)
	if state := m.session.State(); state.Terminal() {
		m.logger.Info("game finished",
			slog.String("game_id", m.session.GameID().String()),
			slog.String("state", state.String()),
			slog.Int("seconds", m.elapsed),
		)
	}
}

func (m *Model) flag(p mines.Point) {
	if m.session.State() != mines.StateInProgress {
		return
	}
	flagged := m.session.HandleFlag(p.Row, p.Col)
	m.logger.Debug("flag",
		slog.Int("row", p.Row), slog.Int("col", p.Col),
		slog.Bool("flagged", flagged),
	)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.menu {
		return m.menuView()
	}
	return m.boardView()
}

func (m Model) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Minesweeper"))
	b.WriteString("\n\n")
	presets := m.session.Presets()
	for i, name := range m.names {
		label := fmt.Sprintf("%-8s %s", name, presets[name])
		if i == m.choice {
			label = buttonStyle.Render(label)
		} else {
			label = " " + label
		}
		b.WriteString(label + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ choose · enter start · q quit"))
	return b.String()
}

func (m Model) boardView() string {
	board := m.session.Board()
	state := m.session.State()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  mines left: %d  time: %ds\n\n",
		titleStyle.Render(m.session.Difficulty()), board.MinesLeft(), m.elapsed)

	for row := range board.Size() {
		for col := range board.Size() {
			c, _ := board.Cell(row, col)
			s := cellView(c, state)
			if (mines.Point{Row: row, Col: col}) == m.cursor && !state.Terminal() {
				s = cursorStyle.Render(s)
			}
			b.WriteString(s)
			if col < board.Size()-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	switch state {
	case mines.StateWon:
		b.WriteString(wonStyle.Render("Congratulations! You won!") + "\n")
		b.WriteString(helpStyle.Render("enter new game · q quit"))
	case mines.StateLost:
		b.WriteString(lostStyle.Render("Game over! You lost.") + "\n")
		b.WriteString(helpStyle.Render("enter new game · q quit"))
	default:
		b.WriteString(helpStyle.Render("arrows move · space reveal · f flag · n menu · q quit"))
	}
	return b.String()
}
