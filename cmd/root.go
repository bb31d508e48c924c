package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/game"
)

var gameConfig = game.NewGameConfig()
var configPath string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Play in the terminal
	gosweep play

Make the computer play for you
	gosweep auto --director constraint
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "invalid --log-level")
		}
		game.Log.SetLevel(level)
		game.Log.SetOutput(cmd.ErrOrStderr())

		return loadConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers the config file under any flags set explicitly.
func loadConfig(cmd *cobra.Command) error {
	if configPath != "" {
		fileConfig, err := game.LoadGameConfig(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("rows") {
			fileConfig.Rows = gameConfig.Rows
		}
		if flags.Changed("cols") {
			fileConfig.Cols = gameConfig.Cols
		}
		if flags.Changed("mines") {
			fileConfig.NumMines = gameConfig.NumMines
		}
		if flags.Changed("seed") {
			fileConfig.Seed = gameConfig.Seed
		}
		gameConfig = fileConfig
	}

	if gameConfig.Seed == 0 {
		gameConfig.Seed = time.Now().UnixNano()
	}

	game.Log.WithFields(logrus.Fields{
		"rows":  gameConfig.Rows,
		"cols":  gameConfig.Cols,
		"mines": gameConfig.NumMines,
		"seed":  gameConfig.Seed,
	}).Debug("Loaded game config")

	return gameConfig.Validate()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&gameConfig.Rows, "rows", "r", game.DefaultRows, "Number of rows on the game board")
	flags.IntVarP(&gameConfig.Cols, "cols", "c", game.DefaultCols, "Number of columns on the game board")
	flags.IntVarP(&gameConfig.NumMines, "mines", "m", game.DefaultNumMines, "Number of mines to place in the game board")
	flags.Int64Var(&gameConfig.Seed, "seed", 0, "Random seed for mine placement (0 picks one from the clock)")
	flags.StringVar(&configPath, "config", "", "YAML file with rows, cols, mines, seed and an optional fixed layout")
	flags.StringVar(&logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")

	rootCmd.AddCommand(playCmd, autoCmd)
}
