package game

import "github.com/sirupsen/logrus"

// Director plays a board on the player's behalf.
type Director interface {
	// Init binds the director to a freshly dealt board
	Init(*Board)

	// Act performs a single move, reporting false when it has nothing to do
	Act() bool
}

// Autoplay lets director act until the game ends, the director stalls, or
// maxSteps moves have been made. A non-positive maxSteps means no limit.
func Autoplay(board *Board, director Director, maxSteps int) BoardState {
	director.Init(board)

	steps := 0
	for board.State() == Playing {
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
		if !director.Act() {
			Log.WithField("steps", steps).Debug("Director stalled")
			break
		}
		steps++
	}

	Log.WithFields(logrus.Fields{
		"steps": steps,
		"state": board.State(),
	}).Debug("Autoplay finished")
	return board.State()
}
