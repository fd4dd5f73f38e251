package core

import (
	"fmt"
	"sort"
)

// Hand owns five dice and the retention mask chosen for the next roll.
// Positions are 1-indexed, matching what the player types.
type Hand struct {
	dice [HandSize]Die
	kept [HandSize]bool
	src  Source
}

// NewHand creates a hand of unrolled dice. A nil src falls back to a
// time-seeded generator.
func NewHand(src Source) *Hand {
	if src == nil {
		src = NewTimeSource()
	}
	return &Hand{src: src}
}

// NewHandOf creates a hand with fixed face values and no random source.
func NewHandOf(values [HandSize]int) (*Hand, error) {
	h := &Hand{}
	for i, v := range values {
		if err := h.dice[i].Set(v); err != nil {
			return nil, fmt.Errorf("die %d: %w", i+1, err)
		}
	}
	return h, nil
}

// SetRetention records the positions to keep on the next roll. Duplicates
// and positions outside 1..5 are ignored.
func (h *Hand) SetRetention(positions []int) {
	h.ClearRetention()
	for _, p := range positions {
		if p >= 1 && p <= HandSize {
			h.kept[p-1] = true
		}
	}
}

// ClearRetention marks every position for re-rolling.
func (h *Hand) ClearRetention() {
	h.kept = [HandSize]bool{}
}

// Kept returns the retained positions in ascending order.
func (h *Hand) Kept() []int {
	var out []int
	for i, k := range h.kept {
		if k {
			out = append(out, i+1)
		}
	}
	return out
}

// RollUnkept rolls every die not in the retention mask.
func (h *Hand) RollUnkept() {
	if h.src == nil {
		h.src = NewTimeSource()
	}
	for i := range h.dice {
		if !h.kept[i] {
			h.dice[i].Roll(h.src)
		}
	}
}

// Values returns a snapshot of the face values in position order. Unrolled
// dice report 0.
func (h *Hand) Values() [HandSize]int {
	var out [HandSize]int
	for i, d := range h.dice {
		out[i], _ = d.Reveal()
	}
	return out
}

// Rolled reports whether every die has a face value.
func (h *Hand) Rolled() bool {
	for _, d := range h.dice {
		if _, err := d.Reveal(); err != nil {
			return false
		}
	}
	return true
}

// ParseRetention extracts keep positions from a player token. Every digit
// 1-5 in the token means "keep that position"; anything else is ignored.
func ParseRetention(token string) []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range token {
		if r < '1' || r > '0'+HandSize {
			continue
		}
		p := int(r - '0')
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out
}
