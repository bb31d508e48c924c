package constraint

import (
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

// Director plays deliberate moves read off revealed numbers, and guesses at
// random only when no number gives anything away.
type Director struct {
	board *game.Board

	// Revealed cells with no hidden, unflagged neighbours left
	settled collections.Set[game.Coord]

	fallback random.Director
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.settled = make(collections.Set[game.Coord])
	director.fallback = random.Director{}
	director.fallback.Init(board)
}

func (director *Director) Act() bool {
	if director.actDeliberate() {
		return true
	}

	game.Log.WithField("settled", director.settled.Len()).Debug("No deliberate move, guessing")
	return director.fallback.Act()
}

func (director *Director) actDeliberate() bool {
	board := director.board

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			origin := game.Coord{Row: row, Col: col}
			if !board.IsRevealed(row, col) || director.settled.Contains(origin) {
				continue
			}

			numMines := board.AdjacentMineCount(row, col)
			numFlagged := 0
			hidden := make([]game.Coord, 0, 8)
			for _, neighbor := range board.Neighbors(row, col) {
				switch {
				case board.IsFlagged(neighbor.Row, neighbor.Col):
					numFlagged++
				case !board.IsRevealed(neighbor.Row, neighbor.Col):
					hidden = append(hidden, neighbor)
				}
			}

			if len(hidden) == 0 {
				director.settled.Add(origin)
				continue
			}

			if numMines-numFlagged == len(hidden) {
				for _, cell := range hidden {
					board.ToggleFlag(cell.Row, cell.Col)
				}
				game.Log.WithFields(logrus.Fields{
					"origin":  origin,
					"flagged": len(hidden),
				}).Debug("Flagged certain mines")
				return true
			}

			if numFlagged == numMines {
				board.Chord(row, col)
				game.Log.WithFields(logrus.Fields{
					"origin":   origin,
					"revealed": len(hidden),
				}).Debug("Cleared certain cells")
				return true
			}
		}
	}

	return false
}
