package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// flood reveals outwards from an already-revealed, zero-count origin. Every
// neighbour goes through the same checks as a direct reveal, so the fill
// stops at the board edge and at flagged or revealed cells, and only expands
// from cells with no adjacent mines.
func (board *Board) flood(origin *Cell) Outcome {
	var queue deque.Deque[*Cell]
	queue.PushBack(origin)

	outcome := Continue
	numRevealed := 1

	for queue.Len() > 0 {
		cell := queue.PopFront()

		board.eachNeighbor(cell, func(neighbor *Cell) {
			result, changed := board.uncover(neighbor)
			if !changed {
				return
			}
			numRevealed++

			if result == Loss {
				outcome = Loss
				return
			}
			if neighbor.numMines == 0 {
				queue.PushBack(neighbor)
			}
		})
	}

	Log.WithFields(logrus.Fields{
		"origin":   origin.coord(),
		"revealed": numRevealed,
	}).Debug("Flood fill finished")
	return outcome
}
