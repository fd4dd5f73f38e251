package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/yahtzee/internal/game/core"
	"github.com/mitchelldurbincs/yahtzee/internal/game/events"
	"github.com/mitchelldurbincs/yahtzee/internal/game/states"
	"github.com/rs/zerolog"
)

// RollsPerTurn is the number of roll phases in a turn, the opening roll included.
const RollsPerTurn = 3

// GameConfig holds everything needed to start a game
type GameConfig struct {
	// Rng drives the dice. Nil means a time-seeded generator.
	Rng core.Source
	// Logger is the parent logger for the engine and its state machine.
	Logger zerolog.Logger
	// GameID defaults to a random UUID.
	GameID string
	// EventBus receives game events. Nil means a private bus.
	EventBus events.Bus
}

// Engine runs a single-player game: turns of up to three rolls followed by
// scoring one category, until the board is full.
type Engine struct {
	gameID    string
	hand      *core.Hand
	board     *core.Scoreboard
	gctx      *states.GameContext
	sm        *states.StateMachine
	eventBus  events.Bus
	logger    zerolog.Logger
	turn      int
	rollsUsed int
}

// NewEngine creates a game engine in the Initializing phase
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if cfg.Rng == nil {
		cfg.Rng = core.NewTimeSource()
	}
	if cfg.GameID == "" {
		cfg.GameID = uuid.New().String()
	}
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBusWithLogger(cfg.Logger)
	}

	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	hand := core.NewHand(cfg.Rng)
	board := core.NewScoreboard()
	gctx := states.NewGameContext(cfg.GameID, board, hand, logger)

	e := &Engine{
		gameID:   cfg.GameID,
		hand:     hand,
		board:    board,
		gctx:     gctx,
		sm:       states.NewStateMachine(gctx, cfg.EventBus),
		eventBus: cfg.EventBus,
		logger:   gctx.Logger,
	}

	e.eventBus.Publish(events.NewGameStartedEvent(e.gameID))
	e.logger.Info().Msg("Engine created successfully")
	return e, nil
}

// StartTurn begins a new turn: nothing is kept and all five dice are rolled.
func (e *Engine) StartTurn() error {
	if e.IsGameOver() {
		return core.ErrGameOver
	}

	switch phase := e.sm.CurrentPhase(); {
	case phase == states.PhaseInitializing:
		if err := e.sm.TransitionTo(states.PhaseRolling, "first turn"); err != nil {
			return core.WrapTurnError(e.turn+1, phase.String(), err)
		}
	case phase != states.PhaseRolling || e.rollsUsed > 0:
		return core.WrapTurnError(e.turn, phase.String(), core.ErrTurnInProgress)
	}

	e.turn++
	e.gctx.Turn = e.turn
	e.eventBus.Publish(events.NewTurnStartedEvent(e.gameID, e.turn))

	e.hand.ClearRetention()
	return e.roll()
}

// Keep sets the positions (1-5) to hold on the next roll.
func (e *Engine) Keep(positions []int) error {
	if err := e.checkCanRoll(); err != nil {
		return err
	}
	e.hand.SetRetention(positions)
	return nil
}

// Reroll rolls the dice that are not kept. After the last roll the engine
// moves to the Scoring phase.
func (e *Engine) Reroll() error {
	if err := e.checkCanRoll(); err != nil {
		return err
	}
	return e.roll()
}

func (e *Engine) checkCanRoll() error {
	if e.IsGameOver() {
		return core.ErrGameOver
	}
	phase := e.sm.CurrentPhase()
	if e.rollsUsed == 0 {
		return core.WrapTurnError(e.turn, phase.String(), core.ErrTurnNotStarted)
	}
	if !phase.CanRoll() || e.rollsUsed >= RollsPerTurn {
		return core.WrapTurnError(e.turn, phase.String(), core.ErrNoRollsLeft)
	}
	return nil
}

func (e *Engine) roll() error {
	e.hand.RollUnkept()
	e.rollsUsed++

	values := e.hand.Values()
	e.eventBus.Publish(events.NewDiceRolledEvent(e.gameID, e.turn, e.rollsUsed, values, e.hand.Kept()))
	e.logger.Debug().
		Int("turn", e.turn).
		Int("roll", e.rollsUsed).
		Ints("values", values[:]).
		Msg("Dice rolled")

	if e.rollsUsed == RollsPerTurn {
		if err := e.sm.TransitionTo(states.PhaseScoring, "no rolls left"); err != nil {
			return core.WrapTurnError(e.turn, states.PhaseRolling.String(), err)
		}
	}
	return nil
}

// ScoreCategory records the current dice into c and ends the turn. It may be
// called after any roll; it does not have to wait for the third. A filled or
// unknown category returns an error and the turn stays open.
func (e *Engine) ScoreCategory(c core.Category) (int, error) {
	if e.IsGameOver() {
		return 0, core.ErrGameOver
	}
	phase := e.sm.CurrentPhase()
	if !phase.CanScore() || e.rollsUsed == 0 {
		return 0, core.WrapTurnError(e.turn, phase.String(), core.ErrTurnNotStarted)
	}

	values := e.hand.Values()
	score, err := e.board.Record(c, values)
	if err != nil {
		return 0, core.NewGameError(e.turn, "score category", err)
	}

	if phase == states.PhaseRolling {
		if err := e.sm.TransitionTo(states.PhaseScoring, "player stopped rolling"); err != nil {
			return score, core.WrapTurnError(e.turn, phase.String(), err)
		}
	}

	e.logger.Info().
		Int("turn", e.turn).
		Str("category", c.String()).
		Int("score", score).
		Int("total", e.board.GrandTotal()).
		Msg("Category scored")
	e.eventBus.Publish(events.NewCategoryScoredEvent(e.gameID, e.turn, c.String(), score, values))
	e.eventBus.Publish(events.NewTurnEndedEvent(e.gameID, e.turn, e.board.GrandTotal()))

	e.rollsUsed = 0
	if e.board.IsComplete() {
		if err := e.sm.TransitionTo(states.PhaseComplete, "all categories filled"); err != nil {
			return score, core.WrapTurnError(e.turn, states.PhaseScoring.String(), err)
		}
		e.eventBus.Publish(events.NewGameEndedEvent(
			e.gameID, e.turn, e.board.GrandTotal(), e.board.Bonus(), e.gctx.GetElapsedTime(),
		))
		return score, nil
	}

	if err := e.sm.TransitionTo(states.PhaseRolling, "next turn"); err != nil {
		return score, core.WrapTurnError(e.turn, states.PhaseScoring.String(), err)
	}
	return score, nil
}

// Public accessors
func (e *Engine) GameID() string               { return e.gameID }
func (e *Engine) Turn() int                    { return e.turn }
func (e *Engine) Phase() states.GamePhase      { return e.sm.CurrentPhase() }
func (e *Engine) IsGameOver() bool             { return e.sm.CurrentPhase().IsTerminal() }
func (e *Engine) Dice() [core.HandSize]int     { return e.hand.Values() }
func (e *Engine) Kept() []int                  { return e.hand.Kept() }
func (e *Engine) History() []states.Transition { return e.sm.GetHistory() }

// RollsLeft returns how many rolls remain in the current turn.
func (e *Engine) RollsLeft() int {
	if e.rollsUsed == 0 {
		return 0
	}
	return RollsPerTurn - e.rollsUsed
}

// Board returns a copy of the scoreboard.
func (e *Engine) Board() *core.Scoreboard {
	b := *e.board
	return &b
}

// Preview returns what the current dice would score in each open category.
func (e *Engine) Preview() map[core.Category]int {
	if !e.hand.Rolled() {
		return map[core.Category]int{}
	}
	return e.board.Preview(e.hand.Values())
}

// FinalScore returns the grand total, or an error while the game is running.
func (e *Engine) FinalScore() (int, error) {
	if !e.IsGameOver() {
		return 0, fmt.Errorf("game %s: %d of %d categories played", e.gameID, e.board.FilledCount(), core.NumCategories)
	}
	return e.board.GrandTotal(), nil
}
