package events

import (
	"time"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeTurnStarted     = "turn.started"
	TypeTurnEnded       = "turn.ended"
	TypeDiceRolled      = "dice.rolled"
	TypeCategoryScored  = "category.scored"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string) *GameStartedEvent {
	return &GameStartedEvent{BaseEvent: newBase(TypeGameStarted, gameID, 0)}
}

// GameEndedEvent is published once every category is filled
type GameEndedEvent struct {
	BaseEvent
	FinalScore int
	Bonus      int
	Duration   time.Duration
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, turn, finalScore, bonus int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:  newBase(TypeGameEnded, gameID, turn),
		FinalScore: finalScore,
		Bonus:      bonus,
		Duration:   duration,
	}
}

// TurnStartedEvent is published at the beginning of each turn
type TurnStartedEvent struct {
	BaseEvent
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(gameID string, turn int) *TurnStartedEvent {
	return &TurnStartedEvent{BaseEvent: newBase(TypeTurnStarted, gameID, turn)}
}

// TurnEndedEvent is published after a category has been scored
type TurnEndedEvent struct {
	BaseEvent
	RunningTotal int
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, turn, runningTotal int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:    newBase(TypeTurnEnded, gameID, turn),
		RunningTotal: runningTotal,
	}
}

// DiceRolledEvent is published after every roll phase
type DiceRolledEvent struct {
	BaseEvent
	Roll   int
	Values [5]int
	Kept   []int
}

// NewDiceRolledEvent creates a new DiceRolledEvent
func NewDiceRolledEvent(gameID string, turn, roll int, values [5]int, kept []int) *DiceRolledEvent {
	return &DiceRolledEvent{
		BaseEvent: newBase(TypeDiceRolled, gameID, turn),
		Roll:      roll,
		Values:    values,
		Kept:      kept,
	}
}

// CategoryScoredEvent is published when a hand is recorded on the board
type CategoryScoredEvent struct {
	BaseEvent
	Category string
	Score    int
	Values   [5]int
}

// NewCategoryScoredEvent creates a new CategoryScoredEvent
func NewCategoryScoredEvent(gameID string, turn int, category string, score int, values [5]int) *CategoryScoredEvent {
	return &CategoryScoredEvent{
		BaseEvent: newBase(TypeCategoryScored, gameID, turn),
		Category:  category,
		Score:     score,
		Values:    values,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID, 0),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
