// Package events carries player input to a [mines.Session]: the event types,
// their one-line text form and an executor that replays a stream of them.
package events

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/vancomm/sweeper/internal/mines"
)

type Event interface {
	Apply(s *mines.Session) error
}

type NewGame struct {
	Difficulty string `schema:"difficulty,required"`
}

func (e NewGame) Apply(s *mines.Session) error {
	return s.SelectDifficulty(e.Difficulty)
}

func (e NewGame) String() string {
	return "new " + url.Values{"difficulty": {e.Difficulty}}.Encode()
}

type RevealAt struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func (e RevealAt) Apply(s *mines.Session) error {
	s.HandleReveal(e.Row, e.Col)
	return nil
}

func (e RevealAt) String() string {
	return fmt.Sprintf("reveal row=%d&col=%d", e.Row, e.Col)
}

type FlagAt struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func (e FlagAt) Apply(s *mines.Session) error {
	s.HandleFlag(e.Row, e.Col)
	return nil
}

func (e FlagAt) String() string {
	return fmt.Sprintf("flag row=%d&col=%d", e.Row, e.Col)
}

func parseRowCol(args []string) (row int, col int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("expected row and col, got %d args", len(args))
		return
	}
	if row, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("row must be an int")
		return
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("col must be an int")
		return
	}
	return
}
