package core

const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50

	// UpperBonusThreshold is the upper section total that earns UpperBonus.
	UpperBonusThreshold = 63
	UpperBonus          = 35
)

// faceCounts tallies each face; index 0 is unused.
type faceCounts [Faces + 1]int

func countFaces(values [HandSize]int) (faceCounts, int) {
	var counts faceCounts
	sum := 0
	for _, v := range values {
		if ValidFace(v) {
			counts[v]++
			sum += v
		}
	}
	return counts, sum
}

func (fc faceCounts) hasCountAtLeast(n int) bool {
	for face := 1; face <= Faces; face++ {
		if fc[face] >= n {
			return true
		}
	}
	return false
}

func (fc faceCounts) hasCountExactly(n int) bool {
	for face := 1; face <= Faces; face++ {
		if fc[face] == n {
			return true
		}
	}
	return false
}

// hasRun reports whether faces from..from+length-1 each appear at least
// lo times and at most hi times.
func (fc faceCounts) hasRun(from, length, lo, hi int) bool {
	for face := from; face < from+length; face++ {
		if fc[face] < lo || fc[face] > hi {
			return false
		}
	}
	return true
}

// Score returns the points values would earn in category c. It never
// mutates anything and never returns a negative number.
func Score(values [HandSize]int, c Category) int {
	counts, sum := countFaces(values)

	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		face := c.Face()
		return counts[face] * face

	case ThreeOfKind:
		if counts.hasCountAtLeast(3) {
			return sum
		}

	case FourOfKind:
		if counts.hasCountAtLeast(4) {
			return sum
		}

	case FullHouse:
		// Five of a kind has no pair, so it is not a full house.
		if counts.hasCountExactly(2) && counts.hasCountExactly(3) {
			return FullHouseScore
		}

	case SmallStraight:
		for from := 1; from <= 3; from++ {
			if counts.hasRun(from, 4, 1, HandSize) {
				return SmallStraightScore
			}
		}

	case LargeStraight:
		if counts.hasRun(1, 5, 1, 1) || counts.hasRun(2, 5, 1, 1) {
			return LargeStraightScore
		}

	case Chance:
		return sum

	case Yahtzee:
		if counts.hasCountExactly(HandSize) {
			return YahtzeeScore
		}
	}

	return 0
}
