package states

import (
	"errors"
	"time"
)

// InitializingState represents a freshly created game
type InitializingState struct{}

func NewInitializingState() State {
	return &InitializingState{}
}

func (s *InitializingState) Phase() GamePhase {
	return PhaseInitializing
}

func (s *InitializingState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

func (s *InitializingState) Validate(ctx *GameContext) error {
	return nil
}

// RollingState is entered at the start of every turn
type RollingState struct{}

func NewRollingState() State {
	return &RollingState{}
}

func (s *RollingState) Phase() GamePhase {
	return PhaseRolling
}

func (s *RollingState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
	}
	ctx.Logger.Debug().Int("turn", ctx.Turn).Msg("Rolling")
	return nil
}

func (s *RollingState) Exit(ctx *GameContext) error {
	return nil
}

func (s *RollingState) Validate(ctx *GameContext) error {
	if ctx.Board == nil || ctx.Hand == nil {
		return errors.New("game has no board or hand")
	}
	if ctx.Board.IsComplete() {
		return errors.New("cannot start a turn on a complete board")
	}
	return nil
}

// ScoringState waits for the player to choose a category
type ScoringState struct{}

func NewScoringState() State {
	return &ScoringState{}
}

func (s *ScoringState) Phase() GamePhase {
	return PhaseScoring
}

func (s *ScoringState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("turn", ctx.Turn).
		Ints("values", valuesOf(ctx)).
		Msg("Waiting for category")
	return nil
}

func (s *ScoringState) Exit(ctx *GameContext) error {
	return nil
}

func (s *ScoringState) Validate(ctx *GameContext) error {
	if ctx.Hand == nil || !ctx.Hand.Rolled() {
		return errors.New("cannot score before the dice are rolled")
	}
	return nil
}

// CompleteState is the terminal state once the board is full
type CompleteState struct{}

func NewCompleteState() State {
	return &CompleteState{}
}

func (s *CompleteState) Phase() GamePhase {
	return PhaseComplete
}

func (s *CompleteState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Int("final_score", ctx.Board.GrandTotal()).
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Game complete")
	return nil
}

func (s *CompleteState) Exit(ctx *GameContext) error {
	return nil
}

func (s *CompleteState) Validate(ctx *GameContext) error {
	if ctx.Board == nil || !ctx.Board.IsComplete() {
		return errors.New("board still has unplayed categories")
	}
	return nil
}

func valuesOf(ctx *GameContext) []int {
	if ctx.Hand == nil {
		return nil
	}
	v := ctx.Hand.Values()
	return v[:]
}
