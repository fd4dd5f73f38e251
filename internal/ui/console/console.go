package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchelldurbincs/yahtzee/internal/game"
	"github.com/mitchelldurbincs/yahtzee/internal/game/core"
	"github.com/rs/zerolog"
)

// ErrTooManyInvalidInputs is returned when the player exceeds the configured
// number of consecutive invalid row selections.
var ErrTooManyInvalidInputs = errors.New("too many invalid inputs")

// Options tunes the console; none of it changes the rules.
type Options struct {
	// ShowPreview lists the open rows and their potential scores before
	// asking for a row.
	ShowPreview bool
	// MaxInvalidInputs caps consecutive invalid row selections. 0 is unlimited.
	MaxInvalidInputs int
}

// Console plays a game over a line-oriented text stream. Each input line is
// one token; an empty keep line keeps nothing.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	opts   Options
	logger zerolog.Logger
}

// NewConsole creates a console reading from in and writing to out
func NewConsole(in io.Reader, out io.Writer, opts Options, logger zerolog.Logger) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		opts:   opts,
		logger: logger.With().Str("component", "console").Logger(),
	}
}

// Play runs turns until the board is full. Closing the input ends the game
// early without an error.
func (c *Console) Play(ctx context.Context, e *game.Engine) error {
	for !e.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.playTurn(e)
		if errors.Is(err, io.EOF) {
			c.logger.Info().
				Int("turn", e.Turn()).
				Int("score", e.Board().GrandTotal()).
				Msg("Input closed, ending game")
			return nil
		}
		if err != nil {
			return err
		}
	}

	final, err := e.FinalScore()
	if err != nil {
		return err
	}
	c.printf("Game Over!\nFinal Score: %d\n", final)
	return nil
}

func (c *Console) playTurn(e *game.Engine) error {
	c.printf("Rolling the dice...\n")
	if err := e.StartTurn(); err != nil {
		return err
	}

	for phase := 1; phase <= game.RollsPerTurn; phase++ {
		if phase > 1 {
			c.printf("Rolling again...\n")
			if err := e.Reroll(); err != nil {
				return err
			}
		}
		if err := RenderDice(c.out, e.Dice()); err != nil {
			return err
		}

		prompt := "Enter the dice numbers to keep: "
		if phase == 1 {
			prompt = "Enter the dice numbers to keep (e.g., '12345' to keep all): "
		}
		token, err := c.readLine(prompt)
		if err != nil {
			return err
		}
		// The selection after the last roll has nothing left to re-roll.
		if phase < game.RollsPerTurn {
			if err := e.Keep(core.ParseRetention(token)); err != nil {
				return err
			}
		}
	}

	if err := c.scoreTurn(e); err != nil {
		return err
	}

	board := e.Board()
	if err := RenderBoard(c.out, board); err != nil {
		return err
	}
	c.printf("Total Score: %d\n\n", board.GrandTotal())
	return nil
}

func (c *Console) scoreTurn(e *game.Engine) error {
	if c.opts.ShowPreview {
		if err := RenderPreview(c.out, e.Preview()); err != nil {
			return err
		}
	}

	invalid := 0
	for {
		line, err := c.readLine("Select a row to play: ")
		if err != nil {
			return err
		}

		reason := ""
		category, err := core.ParseCategory(line)
		if err == nil {
			_, err = e.ScoreCategory(category)
		}
		switch {
		case err == nil:
			return nil
		case errors.Is(err, core.ErrCategoryFilled):
			reason = fmt.Sprintf("Row %d (%s) has already been played.", int(category), category)
		case errors.Is(err, core.ErrInvalidCategory):
			reason = fmt.Sprintf("Please enter a row number between 0 and %d.", core.NumCategories-1)
		default:
			return err
		}

		invalid++
		c.logger.Debug().Str("input", line).Err(err).Int("attempt", invalid).Msg("Rejected row selection")
		c.printf("%s\n", reason)
		if c.opts.MaxInvalidInputs > 0 && invalid >= c.opts.MaxInvalidInputs {
			return fmt.Errorf("turn %d: %w", e.Turn(), ErrTooManyInvalidInputs)
		}
	}
}

// readLine reads one line of any length. A final line without a newline
// still counts; io.EOF is returned only once nothing is left.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", io.EOF
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
