package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

var directorName string
var numGames int
var maxSteps int

var directors = map[string]func() game.Director{
	"constraint": func() game.Director { return &constraint.Director{} },
	"random":     func() game.Director { return &random.Director{} },
}

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let the computer play",
	RunE: func(cmd *cobra.Command, args []string) error {
		newDirector, ok := directors[directorName]
		if !ok {
			return errors.Errorf("unknown director %q", directorName)
		}

		board, err := game.NewBoard(gameConfig)
		if err != nil {
			return err
		}

		tally, err := autoplay(board, newDirector, numGames)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "won %d, lost %d, stalled %d\n",
			tally[game.Won], tally[game.Lost], tally[game.Playing])
		return nil
	},
}

func autoplay(board *game.Board, newDirector func() game.Director, games int) (map[game.BoardState]int, error) {
	tally := make(map[game.BoardState]int)

	for i := 0; i < games; i++ {
		if i > 0 {
			if err := board.Reset(); err != nil {
				return nil, err
			}
		}

		state := game.Autoplay(board, newDirector(), maxSteps)
		tally[state]++

		game.Log.WithFields(logrus.Fields{
			"game":  i + 1,
			"state": state,
		}).Info("Game finished")
	}

	return tally, nil
}

func init() {
	autoCmd.Flags().StringVarP(&directorName, "director", "d", "constraint", "Computer player to use (constraint, random)")
	autoCmd.Flags().IntVarP(&numGames, "games", "g", 1, "Number of games to play")
	autoCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Give up a game after this many moves (0 for no limit)")
}
