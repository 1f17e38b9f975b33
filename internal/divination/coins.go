package divination

import "math/rand"

// LineType names a line produced by one throw of three coins.
type LineType string

const (
	OldYang   LineType = "老阳" // three heads, changing
	OldYin    LineType = "老阴" // three tails, changing
	YoungYang LineType = "少阳"
	YoungYin  LineType = "少阴"
)

// Throw is one throw of three coins.
type Throw struct {
	Heads [3]bool  `json:"heads"`
	Line  LineType `json:"line"`
}

// Classify maps a heads count to its line type.
func Classify(heads int) LineType {
	switch heads {
	case 3:
		return OldYang
	case 0:
		return OldYin
	case 2:
		return YoungYang
	default:
		return YoungYin
	}
}

// Changing reports whether the line is a changing line.
func (l LineType) Changing() bool {
	return l == OldYang || l == OldYin
}

// ThrowCoins tosses three fair coins.
func ThrowCoins(rng *rand.Rand) Throw {
	var t Throw
	heads := 0
	for i := range t.Heads {
		t.Heads[i] = rng.Float64() > 0.5
		if t.Heads[i] {
			heads++
		}
	}
	t.Line = Classify(heads)
	return t
}

// ThrowSix performs the six throws of a coin divination, bottom line first.
func ThrowSix(rng *rand.Rand) []Throw {
	throws := make([]Throw, 6)
	for i := range throws {
		throws[i] = ThrowCoins(rng)
	}
	return throws
}
