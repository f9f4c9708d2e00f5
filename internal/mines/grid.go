package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Mine is the value of a mined cell.
const Mine int8 = -1

type CellState int8

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Cell is a single square of the board. Value is the number of mined
// neighbours, or [Mine].
type Cell struct {
	Mine  bool
	Value int8
	State CellState
}

// Symbol renders a cell the way the player currently sees it.
func (c Cell) Symbol() string {
	switch c.State {
	case Flagged:
		return "F"
	case Revealed:
		if c.Mine {
			return "*"
		}
		if c.Value == 0 {
			return "."
		}
		return strconv.Itoa(int(c.Value))
	default:
		return "#"
	}
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Grid []Cell

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[i].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
