package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/game"
)

const playHelp = `commands:
  r ROW COL   reveal a cell
  f ROW COL   toggle a flag
  c ROW COL   reveal around a satisfied number
  n           new game
  h           show this help
  q           quit`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := game.NewBoard(gameConfig)
		if err != nil {
			return err
		}
		return play(board, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

type action struct {
	kind     string
	row, col int
}

func parseAction(line string) (action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return action{}, errors.New("empty command")
	}

	act := action{kind: fields[0]}
	switch act.kind {
	case "n", "q", "h":
		if len(fields) != 1 {
			return act, errors.Errorf("%s takes no arguments", act.kind)
		}
		return act, nil
	case "r", "f", "c":
		if len(fields) != 3 {
			return act, errors.Errorf("%s takes ROW COL", act.kind)
		}
		var err error
		if act.row, err = strconv.Atoi(fields[1]); err != nil {
			return act, errors.Wrap(err, "invalid row")
		}
		if act.col, err = strconv.Atoi(fields[2]); err != nil {
			return act, errors.Wrap(err, "invalid column")
		}
		return act, nil
	default:
		return act, errors.Errorf("unknown command %q", act.kind)
	}
}

// play drives board from line commands until input ends or the player quits.
// Win is polled after every move, since the board only records losses.
func play(board *game.Board, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, playHelp)
	renderBoard(out, board)

	won := false
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		act, err := parseAction(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch act.kind {
		case "q":
			return nil
		case "h":
			fmt.Fprintln(out, playHelp)
			continue
		case "n":
			if err := board.Reset(); err != nil {
				return err
			}
			won = false
		default:
			if won || board.IsGameOver() {
				fmt.Fprintln(out, "game over, press n for a new game")
				continue
			}
			switch act.kind {
			case "r":
				board.Reveal(act.row, act.col)
			case "f":
				board.ToggleFlag(act.row, act.col)
			case "c":
				board.Chord(act.row, act.col)
			}
		}

		renderBoard(out, board)

		if board.IsGameOver() {
			fmt.Fprintln(out, "BOOM! You lose :(")
		} else if !won && board.CheckWin() {
			won = true
			fmt.Fprintln(out, "WIN!")
		}
	}

	return scanner.Err()
}
