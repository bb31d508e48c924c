package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/they4kman/gosweep/game"
)

// renderBoard draws the board as a player sees it. Mines are shown once the
// game is lost.
func renderBoard(out io.Writer, board *game.Board) {
	var buf strings.Builder

	fmt.Fprintf(&buf, "mines: %03d   %s\n", board.RemainingMines(), board.State())

	buf.WriteString("   ")
	for col := 0; col < board.Cols(); col++ {
		fmt.Fprintf(&buf, "%2d", col%100)
	}
	buf.WriteByte('\n')

	for row := 0; row < board.Rows(); row++ {
		fmt.Fprintf(&buf, "%2d ", row%100)
		for col := 0; col < board.Cols(); col++ {
			buf.WriteByte(' ')
			buf.WriteString(cellGlyph(board, row, col))
		}
		buf.WriteByte('\n')
	}

	io.WriteString(out, buf.String())
}

func cellGlyph(board *game.Board, row, col int) string {
	lost := board.IsGameOver()

	switch {
	case board.IsFlagged(row, col):
		if lost && !board.IsMine(row, col) {
			return "x"
		}
		return "F"
	case board.IsRevealed(row, col) && board.IsMine(row, col):
		return "X"
	case board.IsRevealed(row, col):
		if count := board.AdjacentMineCount(row, col); count > 0 {
			return strconv.Itoa(count)
		}
		return "."
	case lost && board.IsMine(row, col):
		return "*"
	default:
		return "#"
	}
}
