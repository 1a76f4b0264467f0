package quizgen

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bumpwise/bumpquiz/internal/embedding"
	"github.com/bumpwise/bumpquiz/internal/llm"
	"github.com/bumpwise/bumpquiz/internal/similarity"
	"github.com/bumpwise/bumpquiz/internal/store"
)

// Loop is the bounded generation pipeline: generate, parse, validate,
// embed, deduplicate, and persist, retrying with explicit negative
// feedback until enough items are accepted or attempts run out.
type Loop struct {
	provider llm.Provider
	embedder embedding.Embedder
	index    *similarity.Index
	items    store.ContentItemRepo
	events   store.EventRepo
	config   Config
}

// New creates a Loop with the given collaborators and config.
func New(provider llm.Provider, embedder embedding.Embedder, index *similarity.Index, items store.ContentItemRepo, events store.EventRepo, cfg Config) *Loop {
	return &Loop{
		provider: provider,
		embedder: embedder,
		index:    index,
		items:    items,
		events:   events,
		config:   cfg,
	}
}

// accepted is a candidate that survived validation and deduplication,
// together with its embedding.
type accepted struct {
	candidate Candidate
	text      string
	hash      string
	vector    []float32
	raw       string
}

// attemptState is the accumulator threaded through the loop. Each
// attempt receives the previous state and returns a new one, so a
// single attempt is testable in isolation.
type attemptState struct {
	accepted   []accepted
	rejections []string
}

// Generate produces exactly req.Count accepted items or fails with an
// ExhaustedError after the configured number of attempts. Accepted
// items are persisted and indexed before returning.
func (l *Loop) Generate(ctx context.Context, req Request) ([]*store.ContentItem, error) {
	if req.Count <= 0 {
		return nil, fmt.Errorf("item count must be positive, got %d", req.Count)
	}
	if req.ContentType != TypeQuiz && req.ContentType != TypeFlashcard {
		return nil, fmt.Errorf("unknown content type: %q", req.ContentType)
	}

	state := attemptState{}
	for attempt := 1; attempt <= l.config.MaxAttempts; attempt++ {
		final := attempt == l.config.MaxAttempts
		state = l.runAttempt(ctx, req, attempt, final, state)

		if len(state.accepted) >= req.Count {
			// Trim to exactly the requested count; excess candidates
			// are discarded unsaved.
			return l.persist(ctx, req, state.accepted[:req.Count])
		}
	}

	if len(state.accepted) > 0 {
		// Fewer than requested but not empty after the final attempt:
		// serve what exists rather than nothing.
		return l.persist(ctx, req, state.accepted)
	}

	return nil, &ExhaustedError{Attempts: l.config.MaxAttempts, Reasons: state.rejections}
}

// runAttempt executes one generation attempt and returns the next
// accumulator state. All failures become rejection reasons; the caller
// decides whether attempts remain.
func (l *Loop) runAttempt(ctx context.Context, req Request, attempt int, final bool, state attemptState) attemptState {
	started := time.Now()

	userMsg := buildUserMessage(req, state.rejections, l.config)
	llmReq := llm.Request{
		System: systemPromptFor(req.ContentType),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schemaFor(req.ContentType),
		MaxTokens:   l.config.MaxTokens,
		Temperature: l.config.Temperature,
	}
	ctx = llm.WithPurpose(ctx, req.ContentType+"-gen")

	event := store.GenerationEventData{
		UserID:            req.Profile.UserID,
		Week:              req.Week,
		ContentType:       req.ContentType,
		Attempt:           attempt,
		PromptFingerprint: ContentHash(userMsg),
	}

	resp, err := l.provider.Generate(ctx, llmReq)
	event.LatencyMs = time.Since(started).Milliseconds()
	if err != nil {
		state.rejections = append(state.rejections, fmt.Sprintf("attempt %d: generator call failed: %v", attempt, err))
		event.RejectionReasons = state.rejections
		l.audit(ctx, event)
		return state
	}
	event.RawResponse = string(resp.Content)

	candidates, err := parseBatch(req.ContentType, resp.Content)
	if err != nil {
		state.rejections = append(state.rejections, fmt.Sprintf("attempt %d: %v", attempt, err))
		event.RejectionReasons = state.rejections
		l.audit(ctx, event)
		return state
	}
	event.ParseOK = true

	scope := similarity.Scope{
		UserID:      req.Profile.UserID,
		Week:        req.Week,
		ContentType: req.ContentType,
	}

	var (
		duplicates int
		maxSim     float32
	)
	for _, cand := range candidates {
		if verr := l.validate(cand, req); verr != nil {
			state.rejections = append(state.rejections, fmt.Sprintf("attempt %d: %v", attempt, verr))
			continue
		}
		event.ValidCount++

		text := cand.Text(req.ContentType)
		hash := ContentHash(text)
		if l.alreadyAccepted(state.accepted, hash) {
			continue
		}

		vec, err := l.embedder.Embed(ctx, text)
		if err != nil {
			state.rejections = append(state.rejections, fmt.Sprintf("attempt %d: embedding failed: %v", attempt, err))
			continue
		}

		res := l.index.Check(ctx, vec, scope, l.config.Threshold)
		if res.MaxSimilarity > maxSim {
			maxSim = res.MaxSimilarity
		}
		batchSim := l.batchSimilarity(state.accepted, vec)
		if batchSim > maxSim {
			maxSim = batchSim
		}

		if res.IsDuplicate || batchSim >= l.config.Threshold {
			duplicates++
			// Final attempt keeps duplicates: availability wins over
			// novelty when retries are spent.
			if !final {
				continue
			}
		}

		state.accepted = append(state.accepted, accepted{
			candidate: cand,
			text:      text,
			hash:      hash,
			vector:    vec,
			raw:       string(resp.Content),
		})
	}

	event.DuplicateCount = duplicates
	event.MaxSimilarity = float64(maxSim)

	if len(state.accepted) < req.Count {
		switch {
		case duplicates > 0:
			state.rejections = append(state.rejections,
				fmt.Sprintf("attempt %d: %d duplicates at similarity %.2f", attempt, duplicates, maxSim))
		case event.ValidCount == 0:
			state.rejections = append(state.rejections,
				fmt.Sprintf("attempt %d: no valid candidates in response", attempt))
		default:
			state.rejections = append(state.rejections,
				fmt.Sprintf("attempt %d: only %d of %d items accepted", attempt, len(state.accepted), req.Count))
		}
	}

	event.Success = len(state.accepted) >= req.Count
	event.RejectionReasons = state.rejections
	l.audit(ctx, event)

	return state
}

func (l *Loop) validate(cand Candidate, req Request) *ValidationError {
	for _, v := range l.config.validatorsFor(req.ContentType) {
		if verr := v.Validate(&cand, req); verr != nil {
			return verr
		}
	}
	return nil
}

// alreadyAccepted rejects exact re-emissions within one request.
func (l *Loop) alreadyAccepted(acc []accepted, hash string) bool {
	for _, a := range acc {
		if a.hash == hash {
			return true
		}
	}
	return false
}

// batchSimilarity compares a vector against items accepted earlier in
// this request, which are not yet in the index.
func (l *Loop) batchSimilarity(acc []accepted, vec []float32) float32 {
	var max float32
	for _, a := range acc {
		if sim := similarity.Cosine(a.vector, vec); sim > max {
			max = sim
		}
	}
	return max
}

// persist saves accepted items and indexes their vectors, then applies
// the retention trim.
func (l *Loop) persist(ctx context.Context, req Request, acc []accepted) ([]*store.ContentItem, error) {
	now := time.Now().UTC()

	items := make([]*store.ContentItem, len(acc))
	for i, a := range acc {
		items[i] = &store.ContentItem{
			ID:          uuid.NewString(),
			UserID:      req.Profile.UserID,
			Week:        req.Week,
			ContentType: req.ContentType,
			Difficulty:  req.Difficulty,
			Question:    a.candidate.Question,
			Options:     a.candidate.Options,
			AnswerKey:   a.candidate.AnswerKey,
			Explanation: a.candidate.Explanation,
			Front:       a.candidate.Front,
			Back:        a.candidate.Back,
			Embedding:   a.vector,
			ContentHash: a.hash,
			RawResponse: a.raw,
			ContextIDs:  req.ContextIDs,
			CreatedAt:   now,
		}
	}

	if err := l.items.SaveAll(ctx, items); err != nil {
		return nil, fmt.Errorf("persist accepted items: %w", err)
	}

	scope := similarity.Scope{
		UserID:      req.Profile.UserID,
		Week:        req.Week,
		ContentType: req.ContentType,
	}
	for i, a := range acc {
		if err := l.index.Add(ctx, scope, items[i].ID, a.vector, a.hash); err != nil {
			return nil, fmt.Errorf("index accepted item: %w", err)
		}
	}

	if l.config.RetentionKeep > 0 {
		if _, err := l.index.Trim(ctx, req.Profile.UserID, req.ContentType, l.config.RetentionKeep); err != nil {
			fmt.Fprintf(os.Stderr, "warning: similarity retention trim failed: %v\n", err)
		}
	}

	return items, nil
}

// audit records one attempt. Logging must never fail the pipeline.
func (l *Loop) audit(ctx context.Context, event store.GenerationEventData) {
	if l.events == nil {
		return
	}
	if err := l.events.AppendGeneration(ctx, event); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation event: %v\n", err)
	}
}
