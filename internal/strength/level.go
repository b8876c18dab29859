package strength

// Level is the ordinal strength tier of a classified lift.
// Beginner < Intermediate < Advanced < Elite; LevelNA means the lift could
// not be classified (unknown exercise or missing profile data) and ranks
// below everything.
type Level string

const (
	LevelNA           Level = "N/A"
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelElite        Level = "Elite"
)

func (l Level) Rank() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	case LevelElite:
		return 3
	default:
		return -1
	}
}

func (l Level) Known() bool {
	return l.Rank() >= 0
}

// Next returns the tier above l, or LevelNA when there is none
// (Elite has no next tier, and N/A cannot progress).
func (l Level) Next() Level {
	switch l {
	case LevelBeginner:
		return LevelIntermediate
	case LevelIntermediate:
		return LevelAdvanced
	case LevelAdvanced:
		return LevelElite
	default:
		return LevelNA
	}
}

// WeakerOf returns the lower-ranked of the two levels.
// If either level is N/A, the result is N/A.
func WeakerOf(a, b Level) Level {
	if a.Rank() <= b.Rank() {
		return a
	}
	return b
}
