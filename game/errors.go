package game

import "github.com/pkg/errors"

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines      = errors.New("mine count must be in [0, rows*cols)")
	ErrInvalidLayout     = errors.New("invalid board layout")
)

func validateDimensions(rows, cols, numMines int) error {
	if rows < 1 || cols < 1 {
		return errors.Wrapf(ErrInvalidDimensions, "got %dx%d", rows, cols)
	}
	if numMines < 0 || numMines >= rows*cols {
		return errors.Wrapf(ErrTooManyMines, "got %d mines on a %dx%d board", numMines, rows, cols)
	}
	return nil
}
