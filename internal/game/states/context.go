package states

import (
	"time"

	"github.com/mitchelldurbincs/yahtzee/internal/game/core"
	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Board is the scoreboard of the game being played
	Board *core.Scoreboard

	// Hand is the dice being played
	Hand *core.Hand

	// Turn is the 1-based turn number, 0 before the first roll
	Turn int

	// StartTime is when the first turn started
	StartTime time.Time

	// EndTime is when the game completed
	EndTime time.Time
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, board *core.Scoreboard, hand *core.Hand, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
		Board:  board,
		Hand:   hand,
	}
}

// GetElapsedTime returns the play time so far, or the total once complete
func (ctx *GameContext) GetElapsedTime() time.Duration {
	if ctx.StartTime.IsZero() {
		return 0
	}
	if !ctx.EndTime.IsZero() {
		return ctx.EndTime.Sub(ctx.StartTime)
	}
	return time.Since(ctx.StartTime)
}
