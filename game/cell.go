package game

import "fmt"

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

type Cell struct {
	row, col int

	// Adjacent mines. Only meaningful for non-mine cells.
	numMines int

	isMine, isRevealed, isFlagged bool
}

func (cell *Cell) coord() Coord {
	return Coord{cell.row, cell.col}
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		if cell.isFlagged {
			return "F"
		}
		return "*"
	case cell.isFlagged:
		return "f"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

// deserialize reads a single layout character, reporting whether it was
// understood.
func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case '*', 'O':
		cell.isMine = true
	case '.', '#':
		cell.isMine = false
	default:
		return false
	}
	return true
}

// eachNeighbor calls visit for every in-bounds cell within Chebyshev
// distance 1, excluding cell itself.
func (board *Board) eachNeighbor(cell *Cell, visit func(*Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if neighbor := board.cellAt(cell.row+dr, cell.col+dc); neighbor != nil {
				visit(neighbor)
			}
		}
	}
}

func (board *Board) countNeighbors(cell *Cell, match func(*Cell) bool) int {
	count := 0
	board.eachNeighbor(cell, func(neighbor *Cell) {
		if match(neighbor) {
			count++
		}
	})
	return count
}
