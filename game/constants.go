package game

// Outcome is the result of a reveal. Ignored moves report Continue, the same
// as a genuine safe reveal.
type Outcome int

const (
	Continue Outcome = iota
	Loss
)

func (outcome Outcome) String() string {
	switch outcome {
	case Continue:
		return "continue"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

type BoardState int

const (
	Playing BoardState = iota
	Lost
	Won
)

func (state BoardState) String() string {
	switch state {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

const (
	DefaultRows     = 9
	DefaultCols     = 9
	DefaultNumMines = 10
)
