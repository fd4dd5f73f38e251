package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Events    bool   `mapstructure:"events"`
	EventDump bool   `mapstructure:"event_dump"`
}

// GameConfig holds game session settings
type GameConfig struct {
	// Seed for the dice; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// ConsoleConfig holds console presentation settings
type ConsoleConfig struct {
	ShowPreview      bool `mapstructure:"show_preview"`
	MaxInvalidInputs int  `mapstructure:"max_invalid_inputs"`
}

var (
	// Global config instance; replaced whole on reload.
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex

	// loadedFile is empty when only defaults and env were used.
	loadedFile string
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "disabled": true}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.events", false)
	v.SetDefault("log.event_dump", false)

	v.SetDefault("game.seed", 0)

	v.SetDefault("console.show_preview", true)
	v.SetDefault("console.max_invalid_inputs", 0)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	loadedFile = ""
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.yahtzee")
	}

	v.SetEnvPrefix("YTZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, both for an explicit path and the default
		// locations; a file that exists but does not parse is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		loadedFile = v.ConfigFileUsed()
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(loaded); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	cfg = loaded
	mu.Unlock()
	return nil
}

// Get returns the global config instance. The returned value is not
// modified by later reloads.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	return Get()
}

// ConfigFilePath returns the path of the loaded config file, or "" when no
// file was found
func ConfigFilePath() string {
	return loadedFile
}

// WatchConfig enables hot-reloading of the config file. onChange runs on the
// watcher goroutine with the file event and the re-read config; it is skipped
// when the new contents fail to decode or validate.
func WatchConfig(onChange func(fsnotify.Event, *Config)) {
	watched := v
	if watched == nil || loadedFile == "" {
		return
	}
	watched.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := watched.Unmarshal(next); err != nil || Validate(next) != nil {
			return
		}
		mu.Lock()
		cfg = next
		mu.Unlock()
		if onChange != nil {
			onChange(e, next)
		}
	})
	watched.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, disabled; got %q", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be console or json; got %q", c.Log.Format)
	}
	if c.Game.Seed < 0 {
		return fmt.Errorf("game.seed must be non-negative")
	}
	if c.Console.MaxInvalidInputs < 0 {
		return fmt.Errorf("console.max_invalid_inputs must be non-negative")
	}
	return nil
}
