// Package config loads application settings from a YAML file and
// environment variables, with hardcoded defaults underneath.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BUMPQUIZ_"

// Config is the aggregate application configuration.
type Config struct {
	Store      StoreConfig      `koanf:"store"`
	Generation GenerationConfig `koanf:"generation"`
	Embedding  EmbeddingConfig  `koanf:"embedding"`
	Session    SessionConfig    `koanf:"session"`
	Limits     LimitsConfig     `koanf:"limits"`
	Flashcards FlashcardsConfig `koanf:"flashcards"`
}

// StoreConfig locates the local database.
type StoreConfig struct {
	// Path is the SQLite database file. Empty means the default under
	// the user's home directory.
	Path string `koanf:"path"`
}

// GenerationConfig tunes the content generation pipeline.
type GenerationConfig struct {
	MaxAttempts         int     `koanf:"max_attempts" validate:"min=1,max=10"`
	SimilarityThreshold float64 `koanf:"similarity_threshold" validate:"gt=0,lt=1"`
	RetentionKeep       int     `koanf:"retention_keep" validate:"min=1"`
	MaxTokens           int     `koanf:"max_tokens" validate:"min=256"`
	Temperature         float32 `koanf:"temperature" validate:"gte=0,lte=2"`
}

// EmbeddingConfig selects the embedding model.
type EmbeddingConfig struct {
	Model           string `koanf:"model" validate:"oneof=small large ada"`
	CacheTTLMinutes int    `koanf:"cache_ttl_minutes" validate:"min=0"`
}

// SessionConfig shapes quiz sessions.
type SessionConfig struct {
	Minutes             int `koanf:"minutes" validate:"min=1,max=120"`
	QuestionsPerSession int `koanf:"questions_per_session" validate:"min=1,max=20"`
}

// LimitsConfig sets the daily caps and point values.
type LimitsConfig struct {
	MaxSessionsPerDay int `koanf:"max_sessions_per_day" validate:"min=1"`
	FlipPointCeiling  int `koanf:"flip_point_ceiling" validate:"min=0"`
	PointsPerFlip     int `koanf:"points_per_flip" validate:"min=0"`
	PointsPerQuestion int `koanf:"points_per_question" validate:"min=1"`
}

// FlashcardsConfig shapes the weekly deck.
type FlashcardsConfig struct {
	CardsPerWeek int `koanf:"cards_per_week" validate:"min=1,max=30"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Generation: GenerationConfig{
			MaxAttempts:         3,
			SimilarityThreshold: 0.92,
			RetentionKeep:       200,
			MaxTokens:           2048,
			Temperature:         0.8,
		},
		Embedding: EmbeddingConfig{
			Model:           "small",
			CacheTTLMinutes: 15,
		},
		Session: SessionConfig{
			Minutes:             10,
			QuestionsPerSession: 5,
		},
		Limits: LimitsConfig{
			MaxSessionsPerDay: 5,
			FlipPointCeiling:  50,
			PointsPerFlip:     5,
			PointsPerQuestion: 10,
		},
		Flashcards: FlashcardsConfig{
			CardsPerWeek: 7,
		},
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/bumpquiz/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "bumpquiz", "config.yaml"), nil
}

// Load builds the configuration with the usual precedence: environment
// variables override the YAML file, which overrides the defaults. A
// missing file is not an error; an unreadable or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, err
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("stat config file %s: %w", path, err)
	}

	// BUMPQUIZ_SESSION_MINUTES -> session.minutes
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return cfg, fmt.Errorf("load environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings against their declared ranges.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// envTransform maps BUMPQUIZ_SECTION_FIELD_NAME to section.field_name.
// The first underscore after the prefix separates the section; the rest
// stay as part of the field name.
func envTransform(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}
