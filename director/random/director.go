package random

import (
	"math/rand"

	"github.com/they4kman/gosweep/game"
)

// Director reveals hidden, unflagged cells in a random order.
type Director struct {
	// Source of the reveal order; derived from the board's generator if nil
	Rand *rand.Rand

	board *game.Board
	order []game.Coord
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	if director.Rand == nil {
		director.Rand = rand.New(rand.NewSource(board.Rand().Int63()))
	}

	director.order = make([]game.Coord, 0, board.Rows()*board.Cols())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			director.order = append(director.order, game.Coord{Row: row, Col: col})
		}
	}

	director.Rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() bool {
	for len(director.order) > 0 {
		cell := director.order[0]
		director.order = director.order[1:]

		if !director.board.IsRevealed(cell.Row, cell.Col) && !director.board.IsFlagged(cell.Row, cell.Col) {
			director.board.Reveal(cell.Row, cell.Col)
			return true
		}
	}
	return false
}
