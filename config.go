package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config holds all configuration from config.json. It is loaded once
// at startup and never mutated afterwards; components receive it
// through the AppContext.
type Config struct {
	BotToken           string  `json:"bot_token"`
	MandatoryChannels  []int64 `json:"mandatory_channels"`
	AdminIDs           []int64 `json:"admin_ids"`
	DatabasePath       string  `json:"database_path"`
	LogFile            string  `json:"log_file"`
	PollTimeoutSeconds int     `json:"poll_timeout_seconds"`
}

// loadConfig reads configuration from the given file with sensible
// defaults. BOT_TOKEN in the environment overrides the file value.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if token := os.Getenv("BOT_TOKEN"); token != "" {
		cfg.BotToken = token
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = "videos.db"
	}
	if c.LogFile == "" {
		c.LogFile = "kinobot.log"
	}
	if c.PollTimeoutSeconds <= 0 {
		c.PollTimeoutSeconds = 60
	}
}

func (c *Config) validate() error {
	if c.BotToken == "" {
		return errors.New("bot_token empty: set it in config.json or the BOT_TOKEN environment variable")
	}
	if len(c.MandatoryChannels) == 0 {
		return errors.New("mandatory_channels empty: list at least one channel ID")
	}
	for _, id := range c.MandatoryChannels {
		if id >= 0 {
			return fmt.Errorf("mandatory channel ID %d invalid: channel IDs are negative", id)
		}
	}
	return nil
}

// IsAdmin reports whether the user is in the configured admin list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
