// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/assistant/internal/bot"
	"github.com/smileynet/assistant/internal/logging"
	"github.com/smileynet/assistant/internal/reminder"
	"github.com/smileynet/assistant/internal/ui"
)

// Config holds all assistant configuration.
type Config struct {
	Bot      Bot      `yaml:"bot"`
	Reminder Reminder `yaml:"reminder"`
	Log      Log      `yaml:"log"`
}

// Bot holds settings for the interactive loop.
type Bot struct {
	Prompt string `yaml:"prompt"`
	Color  string `yaml:"color"` // "auto" | "always" | "never"
}

// Reminder holds birthday report settings.
type Reminder struct {
	WindowDays  int  `yaml:"window_days"`
	ShiftSunday bool `yaml:"shift_sunday"` // Report Sunday birthdays under Monday
}

// Log holds diagnostic logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Bot: Bot{
			Prompt: bot.DefaultPrompt,
			Color:  string(ui.ColorAuto),
		},
		Reminder: Reminder{
			WindowDays:  reminder.DefaultWindowDays,
			ShiftSunday: true,
		},
		Log: Log{
			Level: logging.DefaultLevel,
		},
	}
}

// ReminderOptions converts the reminder settings for reminder.Upcoming.
func (c *Config) ReminderOptions() reminder.Options {
	return reminder.Options{
		WindowDays:  c.Reminder.WindowDays,
		ShiftSunday: c.Reminder.ShiftSunday,
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable and reports every problem found.
func (c *Config) Validate() error {
	var err error
	if c.Bot.Prompt == "" {
		err = multierr.Append(err, errors.New("config: bot.prompt cannot be empty"))
	}
	if _, cerr := ui.ParseColorMode(c.Bot.Color); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("config: bot.color: %w", cerr))
	}
	if c.Reminder.WindowDays < 1 || c.Reminder.WindowDays > 366 {
		err = multierr.Append(err, fmt.Errorf("config: reminder.window_days must be between 1 and 366, got %d", c.Reminder.WindowDays))
	}
	if _, lerr := logging.ParseLevel(c.Log.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("config: log.level: %w", lerr))
	}
	return err
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ASSISTANT_PROMPT, ASSISTANT_COLOR, ASSISTANT_WINDOW_DAYS,
// ASSISTANT_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ASSISTANT_PROMPT"); v != "" {
		c.Bot.Prompt = v
	}
	if v := os.Getenv("ASSISTANT_COLOR"); v != "" {
		c.Bot.Color = v
	}
	if v := os.Getenv("ASSISTANT_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ASSISTANT_WINDOW_DAYS %q: %w", v, err)
		}
		c.Reminder.WindowDays = n
	}
	if v := os.Getenv("ASSISTANT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Bot      *rawBot      `yaml:"bot"`
	Reminder *rawReminder `yaml:"reminder"`
	Log      *rawLog      `yaml:"log"`
}

type rawBot struct {
	Prompt *string `yaml:"prompt"`
	Color  *string `yaml:"color"`
}

type rawReminder struct {
	WindowDays  *int  `yaml:"window_days"`
	ShiftSunday *bool `yaml:"shift_sunday"`
}

type rawLog struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Bot != nil {
		if layer.Bot.Prompt != nil {
			c.Bot.Prompt = *layer.Bot.Prompt
		}
		if layer.Bot.Color != nil {
			c.Bot.Color = *layer.Bot.Color
		}
	}
	if layer.Reminder != nil {
		if layer.Reminder.WindowDays != nil {
			c.Reminder.WindowDays = *layer.Reminder.WindowDays
		}
		if layer.Reminder.ShiftSunday != nil {
			c.Reminder.ShiftSunday = *layer.Reminder.ShiftSunday
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
