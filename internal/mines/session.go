package mines

import (
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

var Log *slog.Logger = slog.Default()

type State uint8

const (
	StateChoosingDifficulty State = iota
	StateInProgress
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateChoosingDifficulty:
		return "choosing difficulty"
	case StateInProgress:
		return "in progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Session is one player's game: the difficulty menu, the current board and
// the outcome. A Session is not safe for concurrent use.
type Session struct {
	presets    Presets
	rnd        *rand.Rand
	state      State
	board      *Board
	difficulty string
	gameID     uuid.UUID
}

func NewSession(presets Presets, rnd *rand.Rand) *Session {
	return &Session{
		presets: presets,
		rnd:     rnd,
		state:   StateChoosingDifficulty,
	}
}

func (s *Session) State() State       { return s.state }
func (s *Session) Board() *Board      { return s.board }
func (s *Session) Difficulty() string { return s.difficulty }
func (s *Session) GameID() uuid.UUID  { return s.gameID }
func (s *Session) Presets() Presets   { return s.presets }

func (s *Session) logger() *slog.Logger {
	return Log.With(
		slog.String("game_id", s.gameID.String()),
		slog.String("difficulty", s.difficulty),
	)
}

// Status reports the outcome of the current game. While no board exists the
// game counts as in progress.
func (s *Session) Status() Status {
	switch s.state {
	case StateWon:
		return Won
	case StateLost:
		return Lost
	default:
		return InProgress
	}
}

// CellState returns what the player knows about a cell. Cells outside the
// board, or any cell before a board exists, read as hidden.
func (s *Session) CellState(row, col int) Cell {
	if s.board == nil {
		return Cell{}
	}
	c, _ := s.board.Cell(row, col)
	return c
}

// SelectDifficulty starts a new game on a freshly generated board. It may be
// called in any state; on error the session is left untouched.
func (s *Session) SelectDifficulty(name string) error {
	preset, err := s.presets.Lookup(name)
	if err != nil {
		return err
	}
	board, err := Generate(preset.GridSize, preset.MineCount, s.rnd)
	if err != nil {
		return err
	}
	s.board = board
	s.difficulty = name
	s.gameID = uuid.New()
	s.state = StateInProgress
	s.logger().Debug("new game", slog.String("preset", preset.String()))
	return nil
}

// HandleReveal opens a cell and settles the game if that won or lost it.
// Input is ignored unless a game is in progress.
func (s *Session) HandleReveal(row, col int) []Point {
	if s.state != StateInProgress {
		return nil
	}
	opened := s.board.Reveal(row, col)
	switch s.board.Status() {
	case Won:
		s.state = StateWon
	case Lost:
		s.state = StateLost
	}
	if s.state.Terminal() {
		s.logger().Info("game over",
			slog.String("state", s.state.String()),
			slog.Int("row", row), slog.Int("col", col),
		)
	}
	return opened
}

// HandleFlag toggles a flag and reports whether the cell is now flagged.
// Input is ignored unless a game is in progress.
func (s *Session) HandleFlag(row, col int) bool {
	if s.state != StateInProgress {
		return false
	}
	return s.board.ToggleFlag(row, col)
}
