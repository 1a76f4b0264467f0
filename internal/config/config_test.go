package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
session:
  minutes: 15
limits:
  max_sessions_per_day: 3
generation:
  similarity_threshold: 0.95
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Session.Minutes)
	assert.Equal(t, 3, cfg.Limits.MaxSessionsPerDay)
	assert.Equal(t, 0.95, cfg.Generation.SimilarityThreshold)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Flashcards, cfg.Flashcards)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  minutes: 15\n"), 0o600))

	t.Setenv("BUMPQUIZ_SESSION_MINUTES", "20")
	t.Setenv("BUMPQUIZ_LIMITS_MAX_SESSIONS_PER_DAY", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Session.Minutes)
	assert.Equal(t, 2, cfg.Limits.MaxSessionsPerDay)
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation:\n  similarity_threshold: 1.5\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::\n  - not yaml: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvTransform(t *testing.T) {
	cases := map[string]string{
		"BUMPQUIZ_SESSION_MINUTES":              "session.minutes",
		"BUMPQUIZ_LIMITS_MAX_SESSIONS_PER_DAY":  "limits.max_sessions_per_day",
		"BUMPQUIZ_GENERATION_MAX_ATTEMPTS":      "generation.max_attempts",
		"BUMPQUIZ_EMBEDDING_CACHE_TTL_MINUTES":  "embedding.cache_ttl_minutes",
		"BUMPQUIZ_FLASHCARDS_CARDS_PER_WEEK":    "flashcards.cards_per_week",
		"BUMPQUIZ_STORE_PATH":                   "store.path",
	}
	for in, want := range cases {
		assert.Equal(t, want, envTransform(in), in)
	}
}
