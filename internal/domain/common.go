package domain

// Direction is the side a trade was taken on.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Long || d == Short
}

// Sign returns +1 for long trades and -1 for short trades.
func (d Direction) Sign() int64 {
	if d == Short {
		return -1
	}
	return 1
}

// Outcome classifies a trade by the sign of its profit.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeAll  Outcome = "all"
)
