package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/yahtzee/internal/config"
	"github.com/mitchelldurbincs/yahtzee/internal/game"
	"github.com/mitchelldurbincs/yahtzee/internal/game/events"
	"github.com/mitchelldurbincs/yahtzee/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/yahtzee/internal/ui/console"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error, disabled) (empty to use config default)")
	seed := flag.Int64("seed", -1, "Dice seed (-1 to use config default, 0 for clock)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	if *seed == -1 {
		*seed = cfg.Game.Seed
	}

	setupLogging(*logLevel, cfg.Log.Format)
	// Only the level follows the file; the format and the loggers handed to
	// the game are fixed at startup.
	config.WatchConfig(func(e fsnotify.Event, c *config.Config) {
		zerolog.SetGlobalLevel(parseLevel(c.Log.Level))
		log.Info().Str("file", e.Name).Str("log_level", c.Log.Level).Msg("Config reloaded")
	})

	if err := run(context.Background(), cfg, *seed); err != nil {
		log.Error().Err(err).Msg("Game aborted")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bus := events.NewEventBusWithLogger(log.Logger)
	if cfg.Log.Events {
		logSub := subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.InfoLevel)
		logSub.SetDevMode(cfg.Log.EventDump)
		bus.Subscribe(logSub)
	}

	engine, err := game.NewEngine(ctx, game.GameConfig{
		Rng:      rng,
		Logger:   log.Logger,
		EventBus: bus,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	log.Debug().Str("game_id", engine.GameID()).Int64("seed", seed).Msg("Starting game")

	c := console.NewConsole(os.Stdin, os.Stdout, console.Options{
		ShowPreview:      cfg.Console.ShowPreview,
		MaxInvalidInputs: cfg.Console.MaxInvalidInputs,
	}, log.Logger)
	return c.Play(ctx, engine)
}

func parseLevel(level string) zerolog.Level {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return logLevel
}

func setupLogging(level, format string) {
	zerolog.SetGlobalLevel(parseLevel(level))

	// stderr keeps logs out of the game transcript on stdout.
	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
