package random

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep/game"
)

func newBoard(t *testing.T, config game.GameConfig) *game.Board {
	t.Helper()
	board, err := game.NewBoard(config)
	require.NoError(t, err)
	return board
}

func TestActSkipsRevealedAndFlagged(t *testing.T) {
	board := newBoard(t, game.GameConfig{Layout: ".*.\n..."})
	board.ToggleFlag(0, 1)
	board.Reveal(0, 0)

	director := &Director{Rand: rand.New(rand.NewSource(1))}
	director.Init(board)

	for director.Act() {
	}

	assert.False(t, board.IsRevealed(0, 1))
	assert.True(t, board.CheckWin())
	assert.False(t, board.IsGameOver())
}

func TestAutoplayEnds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		board := newBoard(t, game.GameConfig{Rows: 9, Cols: 9, NumMines: 10, Seed: seed})
		state := game.Autoplay(board, &Director{}, 0)
		assert.NotEqual(t, game.Playing, state, "seed %d", seed)
	}
}

func TestAutoplayNoMines(t *testing.T) {
	board := newBoard(t, game.GameConfig{Rows: 5, Cols: 5, NumMines: 0, Seed: 1})
	assert.Equal(t, game.Won, game.Autoplay(board, &Director{}, 0))
}
