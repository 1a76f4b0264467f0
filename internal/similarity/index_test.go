package similarity

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/bumpwise/bumpquiz/internal/store"
)

// fakeSimilarityRepo is an in-memory store.SimilarityRepo.
type fakeSimilarityRepo struct {
	mu   sync.Mutex
	recs []*store.SimilarityRecord
}

func (f *fakeSimilarityRepo) Append(_ context.Context, rec *store.SimilarityRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeSimilarityRepo) ForScope(_ context.Context, userID string, week int, contentType string) ([]*store.SimilarityRecord, error) {
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

func (f *fakeSimilarityRepo) ForUser(_ context.Context, userID, contentType string) ([]*store.SimilarityRecord, error) {
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

func (f *fakeSimilarityRepo) OverflowIDs(_ context.Context, userID, contentType string, keep int) ([]string, error) {
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

func (f *fakeSimilarityRepo) Delete(_ context.Context, itemIDs []string) error {
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

func TestCheckEmptyIndex(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	res := ix.Check(context.Background(), []float32{1, 0, 0}, scope, DefaultThreshold)
	if res.IsDuplicate {
		t.Error("empty index reported a duplicate")
	}
	if res.MaxSimilarity != 0 {
		t.Errorf("MaxSimilarity = %v, want 0", res.MaxSimilarity)
	}
}

func TestCheckFindsDuplicate(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	ctx := context.Background()
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	if err := ix.Add(ctx, scope, "item-1", []float32{1, 0, 0}, "hash-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	res := ix.Check(ctx, []float32{0.99, 0.01, 0}, scope, 0.85)
	if !res.IsDuplicate {
		t.Fatalf("near-identical vector not flagged, MaxSimilarity = %v", res.MaxSimilarity)
	}
	if res.NearestID != "item-1" {
		t.Errorf("NearestID = %q, want item-1", res.NearestID)
	}
	if res.DuplicateCount != 1 {
		t.Errorf("DuplicateCount = %d, want 1", res.DuplicateCount)
	}
	if res.Reason == "" {
		t.Error("duplicate result carries no reason")
	}

	if ix.IsDuplicate(ctx, []float32{0, 1, 0}, scope, 0.85) {
		t.Error("orthogonal vector flagged as duplicate")
	}
}

func TestCheckReportsAllScores(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	ctx := context.Background()
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	vectors := map[string][]float32{
		"item-1": {1, 0, 0},
		"item-2": {0.9, 0.1, 0},
		"item-3": {0, 1, 0},
	}
	for id, vec := range vectors {
		if err := ix.Add(ctx, scope, id, vec, "hash-"+id); err != nil {
			t.Fatalf("Add %s: %v", id, err)
		}
	}

	res := ix.Check(ctx, []float32{1, 0, 0}, scope, 0.85)
	if len(res.Scores) != len(vectors) {
		t.Fatalf("Scores has %d entries, want %d", len(res.Scores), len(vectors))
	}
	for i := 1; i < len(res.Scores); i++ {
		if res.Scores[i] > res.Scores[i-1] {
			t.Errorf("Scores not ordered highest first: %v", res.Scores)
		}
	}
	if res.Scores[0] != res.MaxSimilarity {
		t.Errorf("Scores[0] = %v, MaxSimilarity = %v", res.Scores[0], res.MaxSimilarity)
	}
	for _, s := range res.Scores {
		if s < 0 || s > 1 {
			t.Errorf("score %v outside [0, 1]", s)
		}
	}
}

func TestCheckClampsNegativeSimilarity(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	ctx := context.Background()
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	if err := ix.Add(ctx, scope, "item-1", []float32{1, 0, 0}, "hash-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Opposite vectors have raw cosine -1; reported scores stay in [0, 1].
	res := ix.Check(ctx, []float32{-1, 0, 0}, scope, 0.85)
	if res.IsDuplicate {
		t.Error("opposite vector flagged as duplicate")
	}
	if res.MaxSimilarity != 0 {
		t.Errorf("MaxSimilarity = %v, want 0", res.MaxSimilarity)
	}
	if len(res.Scores) != 1 || res.Scores[0] != 0 {
		t.Errorf("Scores = %v, want [0]", res.Scores)
	}
}

func TestCheckScopedByWeek(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	ctx := context.Background()

	week20 := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}
	week21 := Scope{UserID: "u1", Week: 21, ContentType: "quiz"}

	if err := ix.Add(ctx, week20, "item-1", []float32{1, 0, 0}, "hash-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if ix.IsDuplicate(ctx, []float32{1, 0, 0}, week21, 0.85) {
		t.Error("vector from another week flagged as duplicate")
	}
	if !ix.IsDuplicate(ctx, []float32{1, 0, 0}, week20, 0.85) {
		t.Error("identical vector in same week not flagged")
	}
}

func TestCheckScopedByUser(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	ctx := context.Background()

	alice := Scope{UserID: "alice", Week: 20, ContentType: "quiz"}
	bella := Scope{UserID: "bella", Week: 20, ContentType: "quiz"}

	if err := ix.Add(ctx, alice, "item-1", []float32{1, 0, 0}, "hash-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if ix.IsDuplicate(ctx, []float32{1, 0, 0}, bella, 0.85) {
		t.Error("another user's vector flagged as duplicate")
	}
}

func TestCheckDegenerateInputFailsClosed(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	ctx := context.Background()
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	if err := ix.Add(ctx, scope, "item-1", []float32{1, 0, 0}, "hash-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tests := []struct {
		name string
		vec  []float32
	}{
		{"empty", nil},
		{"zero norm", []float32{0, 0, 0}},
		{"wrong dimension", []float32{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ix.Check(ctx, tt.vec, scope, 0.85)
			if res.IsDuplicate {
				t.Error("degenerate input reported as duplicate")
			}
			if res.Reason == "" {
				t.Error("degraded check carries no reason")
			}
		})
	}
}

func TestAddRejectsDegenerate(t *testing.T) {
	ix := NewIndex(&fakeSimilarityRepo{}, 3)
	ctx := context.Background()
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	if err := ix.Add(ctx, scope, "item-1", []float32{0, 0, 0}, "hash-1"); err == nil {
		t.Error("Add accepted a zero-norm vector")
	}
	if err := ix.Add(ctx, scope, "item-2", []float32{1, 0}, "hash-2"); err == nil {
		t.Error("Add accepted a wrong-dimension vector")
	}
}

func TestRebuildFromRecords(t *testing.T) {
	repo := &fakeSimilarityRepo{}
	ctx := context.Background()
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	first := NewIndex(repo, 3)
	if err := first.Add(ctx, scope, "item-1", []float32{1, 0, 0}, "hash-1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// A fresh index over the same repo must see the durable records.
	second := NewIndex(repo, 3)
	if !second.IsDuplicate(ctx, []float32{1, 0, 0}, scope, 0.85) {
		t.Error("rebuilt index missed a recorded vector")
	}
}

func TestTrimKeepsMostRecent(t *testing.T) {
	repo := &fakeSimilarityRepo{}
	ix := NewIndex(repo, 3)
	ctx := context.Background()
	scope := Scope{UserID: "u1", Week: 20, ContentType: "quiz"}

	vecs := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	for i, vec := range vecs {
		id := string(rune('a' + i))
		if err := ix.Add(ctx, scope, id, vec, "hash-"+id); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	// Separate the timestamps so the retention order is unambiguous.
	repo.mu.Lock()
	for i := range repo.recs {
		repo.recs[i].CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
	}
	repo.mu.Unlock()

	removed, err := ix.Trim(ctx, "u1", "quiz", 2)
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}
	if removed != 1 {
		t.Fatalf("Trim removed %d, want 1", removed)
	}

	// Oldest vector is gone, newest two remain.
	if ix.IsDuplicate(ctx, []float32{1, 0, 0}, scope, 0.85) {
		t.Error("trimmed vector still matches")
	}
	if !ix.IsDuplicate(ctx, []float32{0, 0, 1}, scope, 0.85) {
		t.Error("retained vector no longer matches")
	}

	recs, err := repo.ForUser(ctx, "u1", "quiz")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("bookkeeping rows = %d, want 2", len(recs))
	}
}
