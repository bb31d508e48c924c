package game

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// initializeFromLayout deals a fixed game from a layout with one line per
// row, '*' or 'O' marking mines and '.' or '#' marking safe cells.
func (board *Board) initializeFromLayout(layout string) error {
	lines := strings.Split(strings.TrimSpace(layout), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	rows, cols := len(lines), len(lines[0])
	if cols == 0 {
		return errors.Wrap(ErrInvalidLayout, "empty layout")
	}

	cells := newCells(rows, cols)
	numMines := 0

	for row, line := range lines {
		if len(line) != cols {
			return errors.Wrapf(ErrInvalidLayout, "row %d has %d cells, expected %d", row, len(line), cols)
		}

		for col, c := range line {
			cell := &cells[row][col]
			if !cell.deserialize(c) {
				return errors.Wrapf(ErrInvalidLayout, "unknown cell %q at %v", c, cell.coord())
			}
			if cell.isMine {
				numMines++
			}
		}
	}

	if err := validateDimensions(rows, cols, numMines); err != nil {
		return err
	}

	board.install(cells, numMines)

	Log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": numMines,
	}).Debug("Initialized board from layout")
	return nil
}
