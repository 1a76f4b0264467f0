package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bumpwise/bumpquiz/internal/config"
	"github.com/bumpwise/bumpquiz/internal/embedding"
	"github.com/bumpwise/bumpquiz/internal/flashcards"
	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/llm"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/quiz"
	"github.com/bumpwise/bumpquiz/internal/quizgen"
	"github.com/bumpwise/bumpquiz/internal/similarity"
	"github.com/bumpwise/bumpquiz/internal/store"
	"github.com/bumpwise/bumpquiz/internal/streaks"
)

// services bundles everything a command needs. Close the store when
// done.
type services struct {
	store      *store.Store
	config     config.Config
	events     store.EventRepo
	provider   llm.Provider
	loop       *quizgen.Loop
	limits     *limits.Service
	streaks    *streaks.Service
	profiles   *profile.Resolver
	quiz       *quiz.Service
	flashcards *flashcards.Service
}

func (s *services) Close() {
	_ = s.store.Close()
}

// openStore opens the database without the LLM stack, for commands
// that only read or reset local state.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, cfg, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open database: %w", err)
	}
	return st, cfg, nil
}

// buildServices wires the full stack: store, LLM provider, embedder,
// generation loop, and the gameplay services.
func buildServices(ctx context.Context, cmd *cobra.Command) (*services, error) {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	events := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("no LLM provider configured: %w\n\nSet OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY", err)
	}

	embedder, err := newEmbedder(cfg.Embedding)
	if err != nil {
		st.Close()
		return nil, err
	}

	index := similarity.NewIndex(st.SimilarityRepo(), embedder.Dimension())

	genCfg := quizgen.DefaultConfig()
	genCfg.MaxAttempts = cfg.Generation.MaxAttempts
	genCfg.Threshold = float32(cfg.Generation.SimilarityThreshold)
	genCfg.RetentionKeep = cfg.Generation.RetentionKeep
	genCfg.MaxTokens = cfg.Generation.MaxTokens
	genCfg.Temperature = float64(cfg.Generation.Temperature)
	loop := quizgen.New(provider, embedder, index, st.ContentItemRepo(), events, genCfg)

	limSvc := limits.NewService(st.LimitsRepo(), limits.Config{
		MaxSessionsPerDay: cfg.Limits.MaxSessionsPerDay,
		FlipPointCeiling:  cfg.Limits.FlipPointCeiling,
		PointsPerFlip:     cfg.Limits.PointsPerFlip,
		PointsPerQuestion: cfg.Limits.PointsPerQuestion,
	})
	strSvc := streaks.NewService(st.StreakRepo(), events)
	resolver := profile.NewResolver(st.ProfileRepo())

	quizSvc := quiz.NewService(st.SessionRepo(), st.ContentItemRepo(), loop, limSvc, strSvc, resolver, quiz.Config{
		SessionMinutes:      cfg.Session.Minutes,
		QuestionsPerSession: cfg.Session.QuestionsPerSession,
	})
	flashSvc := flashcards.NewService(st.ContentItemRepo(), loop, limSvc, resolver, flashcards.Config{
		CardsPerWeek: cfg.Flashcards.CardsPerWeek,
	})

	return &services{
		store:      st,
		config:     cfg,
		events:     events,
		provider:   provider,
		loop:       loop,
		limits:     limSvc,
		streaks:    strSvc,
		profiles:   resolver,
		quiz:       quizSvc,
		flashcards: flashSvc,
	}, nil
}

// newEmbedder builds the embedding client. The mock provider pairs
// with a deterministic mock embedder so offline runs work end to end.
func newEmbedder(cfg config.EmbeddingConfig) (embedding.Embedder, error) {
	key := os.Getenv("BUMPQUIZ_OPENAI_API_KEY")
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		if os.Getenv("BUMPQUIZ_LLM_PROVIDER") == "mock" {
			return embedding.NewMockEmbedder(1536), nil
		}
		return nil, fmt.Errorf("no embedding API key: set OPENAI_API_KEY")
	}

	embedder, err := embedding.NewOpenAIEmbedder(embedding.OpenAIConfig{
		APIKey:  key,
		Model:   cfg.Model,
		BaseURL: os.Getenv("BUMPQUIZ_OPENAI_BASE_URL"),
	})
	if err != nil {
		return nil, fmt.Errorf("build embedder: %w", err)
	}
	if cfg.CacheTTLMinutes > 0 {
		return embedding.WithCache(embedder, time.Duration(cfg.CacheTTLMinutes)*time.Minute), nil
	}
	return embedder, nil
}

func currentUser(cmd *cobra.Command) string {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = "default"
	}
	return user
}
