package core

// slot is a single row of the board.
type slot struct {
	score  int
	filled bool
}

// Row is a read-only view of one board row.
type Row struct {
	Category Category
	Score    int
	Filled   bool
}

// Scoreboard tracks the thirteen categories of a single game. A filled row
// never changes again.
type Scoreboard struct {
	slots  [NumCategories]slot
	filled int
}

// NewScoreboard creates an empty scoreboard
func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// Record scores values into c and marks it filled. Recording into a filled
// row leaves the board untouched and returns ErrCategoryFilled.
func (s *Scoreboard) Record(c Category, values [HandSize]int) (int, error) {
	if !c.Valid() {
		return 0, WrapCategoryError(c, ErrInvalidCategory)
	}
	if s.slots[c].filled {
		return s.slots[c].score, WrapCategoryError(c, ErrCategoryFilled)
	}

	score := Score(values, c)
	s.slots[c] = slot{score: score, filled: true}
	s.filled++
	return score, nil
}

// IsFilled reports whether c has been played.
func (s *Scoreboard) IsFilled(c Category) bool {
	return c.Valid() && s.slots[c].filled
}

// ScoreOf returns the recorded score of c and whether it has been played.
func (s *Scoreboard) ScoreOf(c Category) (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	return s.slots[c].score, s.slots[c].filled
}

// IsComplete reports whether every category has been played.
func (s *Scoreboard) IsComplete() bool {
	return s.filled == NumCategories
}

// FilledCount returns how many categories have been played.
func (s *Scoreboard) FilledCount() int {
	return s.filled
}

// Available returns the unplayed categories in board order.
func (s *Scoreboard) Available() []Category {
	out := make([]Category, 0, NumCategories-s.filled)
	for _, c := range AllCategories() {
		if !s.slots[c].filled {
			out = append(out, c)
		}
	}
	return out
}

// UpperTotal sums the played upper-section rows.
func (s *Scoreboard) UpperTotal() int {
	total := 0
	for c := Ones; c <= Sixes; c++ {
		total += s.slots[c].score
	}
	return total
}

// LowerTotal sums the played lower-section rows.
func (s *Scoreboard) LowerTotal() int {
	total := 0
	for c := ThreeOfKind; c <= Yahtzee; c++ {
		total += s.slots[c].score
	}
	return total
}

// Bonus returns UpperBonus once the upper section reaches the threshold.
func (s *Scoreboard) Bonus() int {
	if s.UpperTotal() >= UpperBonusThreshold {
		return UpperBonus
	}
	return 0
}

// GrandTotal is upper + lower + bonus.
func (s *Scoreboard) GrandTotal() int {
	return s.UpperTotal() + s.LowerTotal() + s.Bonus()
}

// Rows returns a snapshot of every row in board order.
func (s *Scoreboard) Rows() []Row {
	rows := make([]Row, NumCategories)
	for i, sl := range s.slots {
		rows[i] = Row{Category: Category(i), Score: sl.score, Filled: sl.filled}
	}
	return rows
}

// Preview returns what values would score in every unplayed category.
func (s *Scoreboard) Preview(values [HandSize]int) map[Category]int {
	out := make(map[Category]int, NumCategories-s.filled)
	for _, c := range s.Available() {
		out[c] = Score(values, c)
	}
	return out
}
