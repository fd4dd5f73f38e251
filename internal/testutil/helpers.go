package testutil

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// FaceSource is a dice source that yields a fixed script of faces (1-6)
// in order and wraps around when exhausted.
type FaceSource struct {
	faces []int
	next  int
	calls int
}

// NewFaceSource returns a source that rolls faces in the given order.
func NewFaceSource(faces ...int) *FaceSource {
	return &FaceSource{faces: faces}
}

// Intn returns the next scripted face as a zero-based index, clamped to [0, n).
func (s *FaceSource) Intn(n int) int {
	s.calls++
	if len(s.faces) == 0 {
		return 0
	}
	face := s.faces[s.next%len(s.faces)]
	s.next++
	v := face - 1
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// Calls returns how many times Intn has been called.
func (s *FaceSource) Calls() int {
	return s.calls
}
