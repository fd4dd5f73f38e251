package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is one of the thirteen scoring rows on the board.
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfKind
	FourOfKind
	FullHouse
	SmallStraight
	LargeStraight
	Chance
	Yahtzee

	// NumCategories is the number of rows on a board.
	NumCategories = int(Yahtzee) + 1
)

var categoryNames = [NumCategories]string{
	"Ones", "Twos", "Threes", "Fours", "Fives", "Sixes",
	"Three of a Kind", "Four of a Kind", "Full House",
	"Small Straight", "Large Straight", "Chance", "Yahtzee",
}

// String returns the display name of a Category
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the thirteen categories.
func (c Category) Valid() bool {
	return c >= Ones && c <= Yahtzee
}

// IsUpper reports whether c belongs to the upper section (Ones through Sixes).
func (c Category) IsUpper() bool {
	return c >= Ones && c <= Sixes
}

// Face returns the die face an upper category counts, or 0 for lower rows.
func (c Category) Face() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c) + 1
}

// AllCategories returns every category in board order.
func AllCategories() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory converts a row index typed by the player into a Category.
func ParseCategory(s string) (Category, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a row number: %w", s, ErrInvalidCategory)
	}
	c := Category(n)
	if !c.Valid() {
		return 0, fmt.Errorf("row %d out of range 0-%d: %w", n, NumCategories-1, ErrInvalidCategory)
	}
	return c, nil
}
