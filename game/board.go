package game

import (
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board owns the grid and every game rule. It is not safe for concurrent use.
type Board struct {
	rows, cols int // in number of cells
	numMines   int
	cells      [][]Cell

	gameOver    bool
	numFlags    int
	numRevealed int

	rand *rand.Rand
}

// NewBoard creates a board from config and deals the first game. A config
// carrying a Layout plays that fixed layout first; later resets are random.
func NewBoard(config GameConfig) (*Board, error) {
	board := &Board{
		rand: rand.New(rand.NewSource(config.Seed)),
	}

	var err error
	if config.Layout != "" {
		err = board.initializeFromLayout(config.Layout)
	} else {
		err = board.Initialize(config.Rows, config.Cols, config.NumMines)
	}
	if err != nil {
		return nil, err
	}
	return board, nil
}

// Initialize discards the current grid and deals a new one with the given
// dimensions. Invalid dimensions leave the board untouched.
func (board *Board) Initialize(rows, cols, numMines int) error {
	if err := validateDimensions(rows, cols, numMines); err != nil {
		return err
	}

	cells := newCells(rows, cols)
	board.placeMines(cells, numMines)
	board.install(cells, numMines)

	Log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"mines": numMines,
	}).Debug("Initialized board")
	return nil
}

// Reset starts a new game with the same dimensions and mine count.
func (board *Board) Reset() error {
	return board.Initialize(board.rows, board.cols, board.numMines)
}

func newCells(rows, cols int) [][]Cell {
	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, cols)
		for col := range cells[row] {
			cells[row][col] = Cell{row: row, col: col}
		}
	}
	return cells
}

// placeMines draws random coordinates until numMines distinct cells are
// mined. numMines must be below the number of cells.
func (board *Board) placeMines(cells [][]Cell, numMines int) {
	rows, cols := len(cells), len(cells[0])
	for placed := 0; placed < numMines; {
		cell := &cells[board.rand.Intn(rows)][board.rand.Intn(cols)]
		if !cell.isMine {
			cell.isMine = true
			placed++
		}
	}
}

func (board *Board) install(cells [][]Cell, numMines int) {
	board.cells = cells
	board.rows, board.cols = len(cells), len(cells[0])
	board.numMines = numMines
	board.gameOver = false
	board.numFlags = 0
	board.numRevealed = 0

	board.computeAdjacency()
}

func (board *Board) computeAdjacency() {
	isMine := func(cell *Cell) bool { return cell.isMine }

	for row := range board.cells {
		for col := range board.cells[row] {
			cell := &board.cells[row][col]
			if cell.isMine {
				cell.numMines = 0
			} else {
				cell.numMines = board.countNeighbors(cell, isMine)
			}
		}
	}
}

func (board *Board) cellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.rows && col < board.cols {
		return &board.cells[row][col]
	}
	return nil
}

// uncover applies the reveal rules to a single cell, reporting whether the
// cell changed.
func (board *Board) uncover(cell *Cell) (Outcome, bool) {
	if board.gameOver || cell.isFlagged || cell.isRevealed {
		return Continue, false
	}

	cell.isRevealed = true
	board.numRevealed++

	if cell.isMine {
		board.gameOver = true
		Log.WithField("cell", cell.coord()).Debug("Mine revealed, game over")
		return Loss, true
	}
	return Continue, true
}

// Reveal uncovers the cell at (row, col), flooding outwards from cells with
// no adjacent mines. Moves that are out of bounds, on a flagged or revealed
// cell, or after a loss are ignored and report Continue.
func (board *Board) Reveal(row, col int) Outcome {
	cell := board.cellAt(row, col)
	if cell == nil {
		return Continue
	}

	outcome, changed := board.uncover(cell)
	if !changed || outcome == Loss {
		return outcome
	}

	if cell.numMines == 0 {
		return board.flood(cell)
	}
	return Continue
}

// ToggleFlag flips the flag on an unrevealed cell while the game is on.
func (board *Board) ToggleFlag(row, col int) {
	cell := board.cellAt(row, col)
	if cell == nil || board.gameOver || cell.isRevealed {
		return
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
}

// Chord reveals every neighbour of a revealed number once the player has
// placed as many flags around it as it has adjacent mines.
func (board *Board) Chord(row, col int) Outcome {
	cell := board.cellAt(row, col)
	if cell == nil || board.gameOver || !cell.isRevealed || cell.isMine {
		return Continue
	}

	numFlagged := board.countNeighbors(cell, func(neighbor *Cell) bool {
		return neighbor.isFlagged
	})
	if numFlagged != cell.numMines {
		return Continue
	}

	outcome := Continue
	board.eachNeighbor(cell, func(neighbor *Cell) {
		if board.Reveal(neighbor.row, neighbor.col) == Loss {
			outcome = Loss
		}
	})
	return outcome
}

// CheckWin reports whether every non-mine cell is revealed. It never ends the
// game; IsGameOver only reflects a loss.
func (board *Board) CheckWin() bool {
	return board.numRevealed == board.rows*board.cols-board.numMines
}

func (board *Board) State() BoardState {
	switch {
	case board.gameOver:
		return Lost
	case board.CheckWin():
		return Won
	default:
		return Playing
	}
}

func (board *Board) IsGameOver() bool {
	return board.gameOver
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// RemainingMines is the mine counter shown to players. Over-flagging drives
// it negative.
func (board *Board) RemainingMines() int {
	return board.numMines - board.numFlags
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) IsMine(row, col int) bool {
	if cell := board.cellAt(row, col); cell != nil {
		return cell.isMine
	}
	return false
}

func (board *Board) IsRevealed(row, col int) bool {
	if cell := board.cellAt(row, col); cell != nil {
		return cell.isRevealed
	}
	return false
}

func (board *Board) IsFlagged(row, col int) bool {
	if cell := board.cellAt(row, col); cell != nil {
		return cell.isFlagged
	}
	return false
}

// AdjacentMineCount returns -1 for coordinates off the board.
func (board *Board) AdjacentMineCount(row, col int) int {
	if cell := board.cellAt(row, col); cell != nil {
		return cell.numMines
	}
	return -1
}

// Neighbors lists the in-bounds coordinates around (row, col).
func (board *Board) Neighbors(row, col int) []Coord {
	cell := board.cellAt(row, col)
	if cell == nil {
		return nil
	}

	neighbors := make([]Coord, 0, 8)
	board.eachNeighbor(cell, func(neighbor *Cell) {
		neighbors = append(neighbors, neighbor.coord())
	})
	return neighbors
}

// String dumps the full board, mines included, one character per cell.
func (board *Board) String() string {
	var out strings.Builder
	for row := range board.cells {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range board.cells[row] {
			out.WriteString(board.cells[row][col].serialize())
		}
	}
	return out.String()
}
