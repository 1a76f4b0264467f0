package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bumpwise/bumpquiz/internal/embedding"
	"github.com/bumpwise/bumpquiz/internal/llm"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/similarity"
	"github.com/bumpwise/bumpquiz/internal/store"
)

// fakeItemRepo is an in-memory store.ContentItemRepo.
type fakeItemRepo struct {
	mu    sync.Mutex
	items []*store.ContentItem
}

func (f *fakeItemRepo) SaveAll(_ context.Context, items []*store.ContentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeItemRepo) Get(_ context.Context, id string) (*store.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) ForWeek(_ context.Context, userID string, week int, contentType string) ([]*store.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.ContentItem
	for _, it := range f.items {
		if it.UserID == userID && it.Week == week && it.ContentType == contentType {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) MarkConsumed(_ context.Context, id string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id && it.ConsumedAt == nil {
			it.ConsumedAt = &at
			return true, nil
		}
	}
	return false, nil
}

// fakeEventRepo records generation events; the embedded interface covers
// the methods this package never calls.
type fakeEventRepo struct {
	store.EventRepo
	mu          sync.Mutex
	generations []store.GenerationEventData
}

func (f *fakeEventRepo) AppendGeneration(_ context.Context, data store.GenerationEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generations = append(f.generations, data)
	return nil
}

// fakeSimRepo is an in-memory store.SimilarityRepo.
type fakeSimRepo struct {
	mu   sync.Mutex
	recs []*store.SimilarityRecord
}

func (f *fakeSimRepo) Append(_ context.Context, rec *store.SimilarityRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeSimRepo) ForScope(_ context.Context, userID string, week int, contentType string) ([]*store.SimilarityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.SimilarityRecord
	for _, r := range f.recs {
		if r.UserID == userID && r.Week == week && r.ContentType == contentType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSimRepo) ForUser(_ context.Context, userID, contentType string) ([]*store.SimilarityRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*store.SimilarityRecord
	for _, r := range f.recs {
		if r.UserID == userID && r.ContentType == contentType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSimRepo) OverflowIDs(_ context.Context, userID, contentType string, keep int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var scoped []*store.SimilarityRecord
	for _, r := range f.recs {
		if r.UserID == userID && r.ContentType == contentType {
			scoped = append(scoped, r)
		}
	}
	sort.Slice(scoped, func(i, j int) bool {
		return scoped[i].CreatedAt.After(scoped[j].CreatedAt)
	})
	var ids []string
	for i := keep; i < len(scoped); i++ {
		ids = append(ids, scoped[i].ItemID)
	}
	return ids, nil
}

func (f *fakeSimRepo) Delete(_ context.Context, itemIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	drop := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = true
	}
	kept := f.recs[:0]
	for _, r := range f.recs {
		if !drop[r.ItemID] {
			kept = append(kept, r)
		}
	}
	f.recs = kept
	return nil
}

func quizBatchJSON(questions ...string) json.RawMessage {
	items := make([]string, len(questions))
	for i, q := range questions {
		items[i] = fmt.Sprintf(`{
			"question": %q,
			"options": ["Folic acid", "Vitamin C", "Calcium", "Iron"],
			"answer_key": "Folic acid",
			"explanation": "Folic acid supports early neural development."
		}`, q)
	}
	return json.RawMessage(`{"questions": [` + strings.Join(items, ",") + `]}`)
}

type loopFixture struct {
	provider *llm.MockProvider
	embedder *embedding.MockEmbedder
	index    *similarity.Index
	items    *fakeItemRepo
	events   *fakeEventRepo
	loop     *Loop
}

func newLoopFixture(dim int, responses ...llm.MockResponse) *loopFixture {
	provider := llm.NewMockProvider(responses...)
	embedder := embedding.NewMockEmbedder(dim)
	items := &fakeItemRepo{}
	events := &fakeEventRepo{}
	index := similarity.NewIndex(&fakeSimRepo{}, dim)
	cfg := DefaultConfig()
	return &loopFixture{
		provider: provider,
		embedder: embedder,
		index:    index,
		items:    items,
		events:   events,
		loop:     New(provider, embedder, index, items, events, cfg),
	}
}

func testRequest(count int) Request {
	return Request{
		Profile:     profile.Profile{UserID: "u1", Name: "Maya"},
		Week:        20,
		ContentType: TypeQuiz,
		Difficulty:  "medium",
		Count:       count,
	}
}

func TestGenerate_FirstAttemptSuccess(t *testing.T) {
	fx := newLoopFixture(32, llm.MockResponse{
		Content: quizBatchJSON(
			"Which nutrient supports neural tube development?",
			"Around which week can you usually first feel kicks?",
			"What does the anatomy scan check?",
		),
	})

	items, err := fx.loop.Generate(context.Background(), testRequest(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for _, it := range items {
		if it.ID == "" {
			t.Error("item has no ID")
		}
		if it.AnswerKey != "Folic acid" {
			t.Errorf("answer key = %q", it.AnswerKey)
		}
		if it.ContentHash == "" {
			t.Error("item has no content hash")
		}
		if len(it.Embedding) != 32 {
			t.Errorf("embedding length = %d, want 32", len(it.Embedding))
		}
	}

	if len(fx.items.items) != 3 {
		t.Errorf("persisted %d items, want 3", len(fx.items.items))
	}
	if n := len(fx.events.generations); n != 1 {
		t.Fatalf("logged %d generation events, want 1", n)
	}
	ev := fx.events.generations[0]
	if !ev.Success || !ev.ParseOK || ev.Attempt != 1 || ev.ValidCount != 3 {
		t.Errorf("unexpected event: %+v", ev)
	}
}

func TestGenerate_TrimsToRequestedCount(t *testing.T) {
	fx := newLoopFixture(32, llm.MockResponse{
		Content: quizBatchJSON("q one", "q two", "q three", "q four", "q five"),
	})

	items, err := fx.loop.Generate(context.Background(), testRequest(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want exactly 3", len(items))
	}
	if len(fx.items.items) != 3 {
		t.Errorf("persisted %d items, want 3 (excess must stay unsaved)", len(fx.items.items))
	}
}

func TestGenerate_DuplicatesRetriedWithFeedback(t *testing.T) {
	fx := newLoopFixture(8,
		llm.MockResponse{Content: quizBatchJSON("dup a", "dup b", "dup c")},
		llm.MockResponse{Content: quizBatchJSON("fresh a", "fresh b", "fresh c")},
	)
	ctx := context.Background()

	// The first batch embeds onto vectors already in the index; the
	// second lands on disjoint axes.
	fx.embedder.SetVector("dup a", []float32{1, 0, 0, 0, 0, 0, 0, 0})
	fx.embedder.SetVector("dup b", []float32{0, 1, 0, 0, 0, 0, 0, 0})
	fx.embedder.SetVector("dup c", []float32{0, 0, 1, 0, 0, 0, 0, 0})
	fx.embedder.SetVector("fresh a", []float32{0, 0, 0, 0, 1, 0, 0, 0})
	fx.embedder.SetVector("fresh b", []float32{0, 0, 0, 0, 0, 1, 0, 0})
	fx.embedder.SetVector("fresh c", []float32{0, 0, 0, 0, 0, 0, 1, 0})

	scope := similarity.Scope{UserID: "u1", Week: 20, ContentType: TypeQuiz}
	for i, vec := range [][]float32{
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
	} {
		id := fmt.Sprintf("existing-%d", i)
		if err := fx.index.Add(ctx, scope, id, vec, "hash-"+id); err != nil {
			t.Fatalf("seeding index: %v", err)
		}
	}

	items, err := fx.loop.Generate(ctx, testRequest(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	if n := len(fx.events.generations); n != 2 {
		t.Fatalf("logged %d generation events, want 2", n)
	}
	first, second := fx.events.generations[0], fx.events.generations[1]
	if first.Success {
		t.Error("all-duplicate attempt logged as success")
	}
	if first.DuplicateCount != 3 {
		t.Errorf("first attempt DuplicateCount = %d, want 3", first.DuplicateCount)
	}
	if !second.Success || second.Attempt != 2 {
		t.Errorf("unexpected second event: %+v", second)
	}

	// The retry prompt must carry explicit negative feedback.
	if len(fx.provider.Calls) != 2 {
		t.Fatalf("provider called %d times, want 2", len(fx.provider.Calls))
	}
	retryMsg := fx.provider.Calls[1].Messages[0].Content
	if !strings.Contains(retryMsg, "duplicates at similarity") {
		t.Errorf("retry prompt lacks rejection feedback:\n%s", retryMsg)
	}
}

func TestGenerate_ParseFailureRetried(t *testing.T) {
	fx := newLoopFixture(32,
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
		llm.MockResponse{Content: quizBatchJSON("q one", "q two")},
	)

	items, err := fx.loop.Generate(context.Background(), testRequest(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	if fx.events.generations[0].ParseOK {
		t.Error("malformed response logged as parsed")
	}
	retryMsg := fx.provider.Calls[1].Messages[0].Content
	if !strings.Contains(retryMsg, "attempt 1") {
		t.Errorf("retry prompt lacks parse rejection reason:\n%s", retryMsg)
	}
}

func TestGenerate_ExhaustsAfterThreeAttempts(t *testing.T) {
	fx := newLoopFixture(32,
		llm.MockResponse{Content: json.RawMessage(`bad`)},
		llm.MockResponse{Content: json.RawMessage(`worse`)},
		llm.MockResponse{Content: json.RawMessage(`still bad`)},
	)

	_, err := fx.loop.Generate(context.Background(), testRequest(3))
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error = %v, want ExhaustedError", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", exhausted.Attempts)
	}
	if len(exhausted.Reasons) == 0 {
		t.Error("ExhaustedError carries no reasons")
	}
	if fx.provider.CallCount() != 3 {
		t.Errorf("provider called %d times, want 3", fx.provider.CallCount())
	}
	if len(fx.items.items) != 0 {
		t.Error("failed run persisted items")
	}
}

func TestGenerate_FinalAttemptAcceptsDuplicates(t *testing.T) {
	batch := quizBatchJSON("same old question")
	fx := newLoopFixture(4,
		llm.MockResponse{Content: batch},
		llm.MockResponse{Content: batch},
		llm.MockResponse{Content: batch},
	)
	ctx := context.Background()

	fx.embedder.SetVector("same old question", []float32{1, 0, 0, 0})
	scope := similarity.Scope{UserID: "u1", Week: 20, ContentType: TypeQuiz}
	if err := fx.index.Add(ctx, scope, "existing", []float32{1, 0, 0, 0}, "hash-existing"); err != nil {
		t.Fatalf("seeding index: %v", err)
	}

	items, err := fx.loop.Generate(ctx, testRequest(1))
	if err != nil {
		t.Fatalf("final-attempt relaxation failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if fx.provider.CallCount() != 3 {
		t.Errorf("provider called %d times, want 3", fx.provider.CallCount())
	}
}

func TestGenerate_RejectsInvalidCandidates(t *testing.T) {
	// answer_key does not match any option.
	bad := json.RawMessage(`{"questions": [{
		"question": "Which vitamin?",
		"options": ["A", "B", "C", "D"],
		"answer_key": "E",
		"explanation": "x"
	}]}`)
	fx := newLoopFixture(32,
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: quizBatchJSON("good question")},
	)

	items, err := fx.loop.Generate(context.Background(), testRequest(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if fx.events.generations[0].ValidCount != 0 {
		t.Errorf("invalid candidate counted as valid")
	}
}

func TestGenerate_FlashcardBatch(t *testing.T) {
	cards := json.RawMessage(`{"cards": [
		{"front": "Colostrum", "back": "The first milk produced, rich in antibodies."},
		{"front": "Braxton Hicks", "back": "Irregular practice contractions, usually painless."}
	]}`)
	fx := newLoopFixture(32, llm.MockResponse{Content: cards})

	req := testRequest(2)
	req.ContentType = TypeFlashcard

	items, err := fx.loop.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Front != "Colostrum" {
		t.Errorf("front = %q", items[0].Front)
	}
	if items[0].Question != "" {
		t.Error("flashcard carries quiz fields")
	}
}

func TestGenerate_RejectsUnknownContentType(t *testing.T) {
	fx := newLoopFixture(32)
	req := testRequest(1)
	req.ContentType = "podcast"
	if _, err := fx.loop.Generate(context.Background(), req); err == nil {
		t.Error("unknown content type accepted")
	}
}
