package mines

import (
	"fmt"
	"math/rand/v2"
)

func validateParams(size, mineCount int) error {
	if size < 1 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidConfiguration, size)
	}
	if mineCount < 0 || mineCount >= size*size {
		return fmt.Errorf(
			"%w: mine count %d must be in [0, %d)",
			ErrInvalidConfiguration, mineCount, size*size,
		)
	}
	return nil
}

func newBoard(size, mineCount int) *Board {
	return &Board{
		size:      size,
		mineCount: mineCount,
		cells:     make(Grid, size*size),
	}
}

// Generate builds a size x size board with mineCount mines placed uniformly
// at random. mineCount must leave at least one safe cell.
func Generate(size, mineCount int, r *rand.Rand) (*Board, error) {
	if err := validateParams(size, mineCount); err != nil {
		return nil, err
	}
	b := newBoard(size, mineCount)

	/*
	 * Write down the list of possible mine locations, then pick
	 * mineCount off the list at random.
	 */
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		b.cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}

	b.countNeighbours()
	return b, nil
}

// FromMines builds a board with mines at exactly the given points.
func FromMines(size int, mines []Point) (*Board, error) {
	if err := validateParams(size, len(mines)); err != nil {
		return nil, err
	}
	b := newBoard(size, len(mines))
	for _, p := range mines {
		if !b.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: mine %s out of bounds", ErrInvalidConfiguration, p)
		}
		i := b.index(p.Row, p.Col)
		if b.cells[i].Mine {
			return nil, fmt.Errorf("%w: duplicate mine %s", ErrInvalidConfiguration, p)
		}
		b.cells[i].Mine = true
	}
	b.countNeighbours()
	return b, nil
}

func (b *Board) countNeighbours() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].Value = Mine
			continue
		}
		p := b.point(i)
		var v int8
		neighbours(b.size, p.Row, p.Col, func(r, c int) {
			if b.cells[b.index(r, c)].Mine {
				v++
			}
		})
		b.cells[i].Value = v
	}
}
