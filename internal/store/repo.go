package store

import (
	"context"
	"time"

	"github.com/bumpwise/bumpquiz/ent/schema"
	"github.com/bumpwise/bumpquiz/internal/profile"
)

// Question is one entry in a session's frozen question snapshot.
// The answer key is stored server-side only; outward views strip it.
type Question = schema.SessionQuestion

// Session is a quiz session as persisted. The question snapshot only
// grows, and only via retry insertion.
type Session struct {
	ID            string
	UserID        string
	Week          int
	Difficulty    string
	Status        string
	Questions     []Question
	CreatedAt     time.Time
	TimeoutAt     time.Time
	CompletedAt   *time.Time
	Score         int
	PointsAwarded int
}

// Attempt is one answer submission within a session.
type Attempt struct {
	Sequence       int64
	QuestionID     string
	SelectedOption string
	Correct        bool
	AttemptOrdinal int
	StartedAt      time.Time
	AnsweredAt     time.Time
}

// ContentItem is an accepted quiz question or flashcard.
type ContentItem struct {
	ID          string
	UserID      string
	Week        int
	ContentType string
	Difficulty  string
	Question    string
	Options     []string
	AnswerKey   string
	Explanation string
	Front       string
	Back        string
	Embedding   []float32
	ContentHash string
	RawResponse string
	ContextIDs  []string
	CreatedAt   time.Time
	ConsumedAt  *time.Time
}

// SimilarityRecord is the bookkeeping row for one indexed vector.
type SimilarityRecord struct {
	ItemID      string
	UserID      string
	Week        int
	ContentType string
	ContentHash string
	Embedding   []float32
	CreatedAt   time.Time
}

// Limits is a user's daily counters and point totals.
type Limits struct {
	UserID        string
	SessionsToday int
	FlipsToday    int
	PointsToday   int
	PointsTotal   int
	ResetAt       time.Time
}

// Streak is a user's consecutive-active-days state.
type Streak struct {
	UserID       string
	Current      int
	Longest      int
	LastActiveOn string // YYYY-MM-DD, empty if never active
}

// LLMRequestEventData captures one LLM API call for the audit trail.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// GenerationEventData captures one attempt of the generation pipeline.
type GenerationEventData struct {
	UserID            string
	Week              int
	ContentType       string
	Attempt           int
	PromptFingerprint string
	RawResponse       string
	LatencyMs         int64
	ParseOK           bool
	ValidCount        int
	DuplicateCount    int
	MaxSimilarity     float64
	RejectionReasons  []string
	Success           bool
}

// BadgeEventData captures one badge award.
type BadgeEventData struct {
	UserID    string
	Badge     string
	SessionID string
	Reason    string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMEventRecord is a persisted LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates LLM usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to the audit event tables.
// Appends must never fail the operation that triggered them; callers
// treat errors as warnings.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendGeneration(ctx context.Context, data GenerationEventData) error
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM request event, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// BadgeCodes returns the set of badge codes already awarded to a user,
	// for one-time badge checks.
	BadgeCodes(ctx context.Context, userID string) (map[string]bool, error)

	// GenerationCounts returns total and successful generation attempts
	// for a user (stats reporting).
	GenerationCounts(ctx context.Context, userID string) (total, success int, err error)
}

// ContentItemRepo manages accepted content items.
type ContentItemRepo interface {
	// SaveAll persists a batch of accepted items.
	SaveAll(ctx context.Context, items []*ContentItem) error

	// Get returns an item, or nil if it does not exist.
	Get(ctx context.Context, id string) (*ContentItem, error)

	// ForWeek returns a user's items for a week and content type,
	// oldest first.
	ForWeek(ctx context.Context, userID string, week int, contentType string) ([]*ContentItem, error)

	// MarkConsumed sets consumed_at if it is not already set.
	// Returns true if this call performed the set.
	MarkConsumed(ctx context.Context, id string, at time.Time) (bool, error)
}

// SessionRepo manages quiz sessions and their attempt log.
type SessionRepo interface {
	Create(ctx context.Context, s *Session) error

	// Get returns a session, or nil if it does not exist.
	Get(ctx context.Context, id string) (*Session, error)

	// UpdateStatus sets the session status.
	UpdateStatus(ctx context.Context, id, status string) error

	// UpdateQuestions replaces the question snapshot and sets the status.
	// Used for retry insertion and the started→in_progress transition.
	UpdateQuestions(ctx context.Context, id string, questions []Question, status string) error

	// Complete marks the session completed with its final score and points.
	Complete(ctx context.Context, id string, score, points int, at time.Time) error

	// AppendAttempt records one answer submission.
	AppendAttempt(ctx context.Context, sessionID string, a Attempt) error

	// Attempts returns a session's attempts in submission order.
	Attempts(ctx context.Context, sessionID string) ([]Attempt, error)

	// CountCompleted returns the number of completed sessions for a user.
	CountCompleted(ctx context.Context, userID string) (int, error)
}

// LimitsRepo is the sole mutator of the daily counters and point totals.
// Current performs the lazy watermark reset; the Add* methods are atomic
// single-statement increments, so concurrent requests for one user never
// lose updates.
type LimitsRepo interface {
	// Current ensures a row exists, lazily resets the daily counters when
	// the watermark is behind dayStart, and returns the current state.
	Current(ctx context.Context, userID string, dayStart time.Time) (*Limits, error)

	AddSessions(ctx context.Context, userID string, delta int) error
	AddFlips(ctx context.Context, userID string, delta int) error

	// AddPoints increments both the daily and lifetime totals.
	AddPoints(ctx context.Context, userID string, delta int) error
}

// SimilarityRepo manages the append-only similarity bookkeeping rows.
type SimilarityRepo interface {
	Append(ctx context.Context, rec *SimilarityRecord) error

	// ForScope returns all records in a (user, week, content type) scope.
	ForScope(ctx context.Context, userID string, week int, contentType string) ([]*SimilarityRecord, error)

	// ForUser returns all records for (user, content type) across weeks,
	// oldest first. Index rebuilds use this.
	ForUser(ctx context.Context, userID, contentType string) ([]*SimilarityRecord, error)

	// OverflowIDs returns the item IDs beyond the keep most recent records
	// for (user, content type), oldest first.
	OverflowIDs(ctx context.Context, userID, contentType string, keep int) ([]string, error)

	// Delete removes records by item ID. Only the retention trim calls this.
	Delete(ctx context.Context, itemIDs []string) error
}

// ProfileRepo manages user pregnancy profiles.
type ProfileRepo interface {
	// Get returns a user's profile, or nil if none is stored.
	Get(ctx context.Context, userID string) (*profile.Profile, error)

	Upsert(ctx context.Context, p *profile.Profile) error
}

// StreakRepo manages per-user streak state.
type StreakRepo interface {
	// Get returns a user's streak, or nil if none is recorded yet.
	Get(ctx context.Context, userID string) (*Streak, error)

	Upsert(ctx context.Context, s *Streak) error
}
