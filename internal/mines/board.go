package mines

import "strconv"

type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Board is a square minefield together with the player's knowledge of it.
// Cells are stored row-major; mine values are fixed once the board is built.
type Board struct {
	size      int
	mineCount int
	cells     Grid
	flags     int
	revealed  int /* safe cells only */
	exploded  bool
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.size, Col: i % b.size}
}

func (b *Board) Size() int      { return b.size }
func (b *Board) MineCount() int { return b.mineCount }
func (b *Board) FlagCount() int { return b.flags }

// MinesLeft is the mine count minus the flags placed. It goes negative when
// the player over-flags.
func (b *Board) MinesLeft() int { return b.mineCount - b.flags }

func (b *Board) RevealedCount() int {
	if b.exploded {
		return b.revealed + 1
	}
	return b.revealed
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.size && 0 <= col && col < b.size
}

func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.index(row, col)], true
}

// Mines lists the mined cells in row-major order.
func (b *Board) Mines() []Point {
	points := make([]Point, 0, b.mineCount)
	for i, c := range b.cells {
		if c.Mine {
			points = append(points, b.point(i))
		}
	}
	return points
}

// Reveal opens the cell at row, col and returns every cell it uncovered, in
// the order they were opened. Out-of-bounds, flagged and already revealed
// cells are left alone. Opening a cell with no mined neighbours opens its
// neighbours as well, spreading until it reaches numbered cells.
func (b *Board) Reveal(row, col int) []Point {
	if !b.InBounds(row, col) {
		return nil
	}
	start := b.index(row, col)
	if b.cells[start].State != Hidden {
		return nil
	}

	var opened []Point
	queue := []int{start}
	for qi := 0; qi < len(queue); qi++ {
		i := queue[qi]
		cell := &b.cells[i]
		// a cell may be queued by several neighbours
		if cell.State != Hidden {
			continue
		}
		cell.State = Revealed
		p := b.point(i)
		opened = append(opened, p)

		if cell.Mine {
			b.exploded = true
			continue
		}
		b.revealed++

		if cell.Value == 0 {
			neighbours(b.size, p.Row, p.Col, func(r, c int) {
				if j := b.index(r, c); b.cells[j].State == Hidden {
					queue = append(queue, j)
				}
			})
		}
	}
	return opened
}

// ToggleFlag flags a hidden cell or unflags a flagged one, and reports
// whether the cell is flagged afterwards.
func (b *Board) ToggleFlag(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	cell := &b.cells[b.index(row, col)]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		b.flags++
		return true
	case Flagged:
		cell.State = Hidden
		b.flags--
	}
	return false
}

func (b *Board) Status() Status {
	/* If the player has already lost, don't let them win as well. */
	if b.exploded {
		return Lost
	}
	if b.revealed == len(b.cells)-b.mineCount {
		return Won
	}
	return InProgress
}

func (b *Board) String() string {
	return b.cells.ToString(b.size)
}
