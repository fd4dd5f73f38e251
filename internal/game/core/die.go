package core

import (
	"math/rand"
	"time"
)

const (
	// Faces is the number of sides on a die.
	Faces = 6
	// HandSize is the number of dice in a hand.
	HandSize = 5
)

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewTimeSource returns a math/rand source seeded from the wall clock.
func NewTimeSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Die holds a single face value. The zero value is an unrolled die.
type Die struct {
	value int
}

// Roll sets the die to a uniformly random face using src.
func (d *Die) Roll(src Source) {
	d.value = src.Intn(Faces) + 1
}

// Reveal returns the current face value.
func (d Die) Reveal() (int, error) {
	if d.value == 0 {
		return 0, ErrDieNotRolled
	}
	return d.value, nil
}

// Set fixes the die to v.
func (d *Die) Set(v int) error {
	if !ValidFace(v) {
		return ErrInvalidFace
	}
	d.value = v
	return nil
}

// ValidFace reports whether v is a face of a six-sided die.
func ValidFace(v int) bool {
	return v >= 1 && v <= Faces
}
