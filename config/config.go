// Package config loads the game settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"chess-bot/rules"
)

var ErrInvalidConfig = errors.New("invalid config")

// Search depth in plies for each difficulty level.
var difficultyDepth = map[string]int{
	"easy":   1,
	"medium": 3,
	"hard":   4,
}

type Config struct {
	HumanSide  string `yaml:"human_side"`
	Difficulty string `yaml:"difficulty"`
	// Depth overrides Difficulty when positive
	Depth         int    `yaml:"depth"`
	Repetition    string `yaml:"repetition"`
	MoveTimeoutMS int    `yaml:"move_timeout_ms"`
}

// Default returns a human playing White against a medium bot.
func Default() Config {
	return Config{
		HumanSide:  "white",
		Difficulty: "medium",
		Repetition: "strict",
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := rules.ParseSide(c.HumanSide); err != nil {
		return fmt.Errorf("%w: human_side: %v", ErrInvalidConfig, err)
	}
	if _, ok := difficultyDepth[strings.ToLower(c.Difficulty)]; !ok && c.Depth <= 0 {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrInvalidConfig, c.Depth)
	}
	if _, err := rules.ParseRepetitionPolicy(c.Repetition); err != nil {
		return fmt.Errorf("%w: repetition: %v", ErrInvalidConfig, err)
	}
	if c.MoveTimeoutMS < 0 {
		return fmt.Errorf("%w: negative move_timeout_ms %d", ErrInvalidConfig, c.MoveTimeoutMS)
	}
	return nil
}

// Side returns the side the human plays. Call Validate first.
func (c Config) Side() rules.Side {
	side, _ := rules.ParseSide(c.HumanSide)
	return side
}

// SearchDepth resolves Depth and Difficulty into plies.
func (c Config) SearchDepth() int {
	if c.Depth > 0 {
		return c.Depth
	}
	return difficultyDepth[strings.ToLower(c.Difficulty)]
}

// Policy returns the repetition policy. Call Validate first.
func (c Config) Policy() rules.RepetitionPolicy {
	p, _ := rules.ParseRepetitionPolicy(c.Repetition)
	return p
}

// MoveTimeout returns the bot's time limit per move, 0 when unbounded.
func (c Config) MoveTimeout() time.Duration {
	return time.Duration(c.MoveTimeoutMS) * time.Millisecond
}
