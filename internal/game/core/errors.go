package core

import (
	"errors"
	"fmt"
)

var (
	ErrDieNotRolled    = errors.New("die has not been rolled")
	ErrInvalidFace     = errors.New("face value must be between 1 and 6")
	ErrInvalidCategory = errors.New("invalid category")
	ErrCategoryFilled  = errors.New("category already played")
	ErrNoRollsLeft     = errors.New("no rolls left this turn")
	ErrTurnNotStarted  = errors.New("turn has not started")
	ErrTurnInProgress  = errors.New("turn already in progress")
	ErrGameOver        = errors.New("game is over")
)

// GameError carries the turn and operation an error happened in.
type GameError struct {
	Turn      int
	Operation string
	Err       error
}

// NewGameError creates a new GameError
func NewGameError(turn int, operation string, err error) *GameError {
	return &GameError{Turn: turn, Operation: operation, Err: err}
}

func (e *GameError) Error() string {
	return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// WrapCategoryError adds the category name to err. Returns nil for a nil err.
func WrapCategoryError(c Category, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("category %s: %w", c, err)
}

// WrapTurnError adds turn and phase context to err. Returns nil for a nil err.
func WrapTurnError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game turn %d [%s]: %w", turn, phase, err)
}
