package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseInitializing - Game object creation
	PhaseInitializing GamePhase = iota

	// PhaseRolling - Dice are being rolled and kept
	PhaseRolling

	// PhaseScoring - Waiting for the player to pick a category
	PhaseScoring

	// PhaseComplete - Every category is filled
	PhaseComplete
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseRolling:
		return "Rolling"
	case PhaseScoring:
		return "Scoring"
	case PhaseComplete:
		return "Complete"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseComplete
}

// CanRoll returns true if dice may be rolled in this phase
func (p GamePhase) CanRoll() bool {
	return p == PhaseRolling
}

// CanScore returns true if a category may be recorded in this phase
func (p GamePhase) CanScore() bool {
	return p == PhaseRolling || p == PhaseScoring
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInitializing:
		return []GamePhase{PhaseRolling}
	case PhaseRolling:
		return []GamePhase{PhaseScoring}
	case PhaseScoring:
		return []GamePhase{PhaseRolling, PhaseComplete}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
