package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/sweeper/internal/mines"
)

// cellWidth is the number of terminal columns a cell occupies.
const cellWidth = 2

// boardTop is the terminal row of the first board row.
const boardTop = 2

var numberColors = [...]lipgloss.Color{
	"#00ff00", "#0000ff", "#ff0000", "#ff00ff",
	"#00ffff", "#ffff00", "#808080", "#ffffff", "#ff8000",
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#646464"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	mineStyle    = lipgloss.NewStyle().Bold(true)
	explodeStyle = lipgloss.NewStyle().Background(lipgloss.Color("#ff0000")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	wonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")).Bold(true)
	lostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8000"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("#c0c0c0")).Foreground(lipgloss.Color("#000000"))
)

func valueStyle(v int8) lipgloss.Style {
	if v < 0 || int(v) >= len(numberColors) {
		return mineStyle
	}
	return lipgloss.NewStyle().Foreground(numberColors[v])
}

// cellView renders one cell. Once the game is lost every mine is shown;
// once it is won every mine is shown flagged.
func cellView(c mines.Cell, state mines.State) string {
	switch {
	case c.State == mines.Revealed && c.Mine:
		return explodeStyle.Render("*")
	case c.State == mines.Revealed:
		if c.Value == 0 {
			return hiddenStyle.Render(".")
		}
		return valueStyle(c.Value).Render(c.Symbol())
	case c.Mine && state == mines.StateLost:
		if c.State == mines.Flagged {
			return flagStyle.Render("F")
		}
		return mineStyle.Render("*")
	case c.Mine && state == mines.StateWon, c.State == mines.Flagged:
		return flagStyle.Render("F")
	default:
		return hiddenStyle.Render("#")
	}
}
