package similarity

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/bumpwise/bumpquiz/internal/store"
)

// DefaultThreshold is the similarity score at or above which a candidate
// counts as a duplicate.
const DefaultThreshold float32 = 0.92

// DefaultRetention is how many vectors to keep per (user, content type).
const DefaultRetention = 200

// Scope identifies the comparison window for a duplicate check. Only
// content the same user already has for the same week and content type
// is compared against.
type Scope struct {
	UserID      string
	Week        int
	ContentType string
}

// Result is the outcome of a duplicate check.
type Result struct {
	IsDuplicate   bool
	MaxSimilarity float32
	// Scores holds every per-comparison similarity in the scope,
	// highest first, for audit output.
	Scores         []float32
	DuplicateCount int
	// NearestID is the indexed item closest to the candidate, when any
	// comparison happened.
	NearestID string
	// Reason is a short human-readable explanation, set when IsDuplicate
	// is true or when the check degraded to a pass.
	Reason string
}

// Index is a per-user cosine similarity index backed by an in-memory
// chromem database, with durable bookkeeping rows in the store. One
// chromem collection holds all of a user's vectors for one content type;
// the week is a metadata filter at query time.
type Index struct {
	mu      sync.Mutex
	db      *chromem.DB
	records store.SimilarityRepo
	dim     int

	// rebuilt tracks which collections were already repopulated from the
	// bookkeeping rows after process start.
	rebuilt map[string]bool
}

// NewIndex creates an Index over an in-memory chromem database. dim is
// the expected embedding dimension; vectors of any other length fail
// closed at check time and are rejected at add time.
func NewIndex(records store.SimilarityRepo, dim int) *Index {
	return &Index{
		db:      chromem.NewDB(),
		records: records,
		dim:     dim,
		rebuilt: make(map[string]bool),
	}
}

func collectionName(userID, contentType string) string {
	return fmt.Sprintf("sim-%s-%s", userID, contentType)
}

// noEmbed satisfies chromem's embedding func requirement. All documents
// and queries carry precomputed vectors, so it must never be called.
func noEmbed(context.Context, string) ([]float32, error) {
	return nil, fmt.Errorf("similarity index received no precomputed embedding")
}

func (ix *Index) collection(ctx context.Context, userID, contentType string) (*chromem.Collection, error) {
	name := collectionName(userID, contentType)
	col, err := ix.db.GetOrCreateCollection(name, nil, noEmbed)
	if err != nil {
		return nil, fmt.Errorf("similarity collection %s: %w", name, err)
	}

	if !ix.rebuilt[name] {
		if err := ix.rebuild(ctx, col, userID, contentType); err != nil {
			return nil, err
		}
		ix.rebuilt[name] = true
	}
	return col, nil
}

// rebuild repopulates a collection from the bookkeeping rows. The chromem
// database is in-memory, so every collection starts empty each process.
func (ix *Index) rebuild(ctx context.Context, col *chromem.Collection, userID, contentType string) error {
	recs, err := ix.records.ForUser(ctx, userID, contentType)
	if err != nil {
		return fmt.Errorf("rebuild similarity index: %w", err)
	}

	docs := make([]chromem.Document, 0, len(recs))
	for _, rec := range recs {
		if len(rec.Embedding) != ix.dim || zeroNorm(rec.Embedding) {
			continue
		}
		docs = append(docs, chromem.Document{
			ID:        rec.ItemID,
			Embedding: rec.Embedding,
			Content:   rec.ContentHash,
			Metadata: map[string]string{
				"week": strconv.Itoa(rec.Week),
				"hash": rec.ContentHash,
			},
		})
	}
	if len(docs) == 0 {
		return nil
	}
	if err := col.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("rebuild similarity index: %w", err)
	}
	return nil
}

// Check compares vec against the scope's indexed vectors. Degenerate
// input (empty or zero-norm vector, dimension mismatch) and index faults
// fail closed: the candidate is reported as not a duplicate.
func (ix *Index) Check(ctx context.Context, vec []float32, scope Scope, threshold float32) Result {
	if len(vec) != ix.dim {
		return Result{Reason: fmt.Sprintf("embedding dimension %d, index expects %d", len(vec), ix.dim)}
	}
	if zeroNorm(vec) {
		return Result{Reason: "zero-norm embedding"}
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	col, err := ix.collection(ctx, scope.UserID, scope.ContentType)
	if err != nil {
		return Result{Reason: err.Error()}
	}

	n := col.Count()
	if n == 0 {
		return Result{}
	}

	where := map[string]string{"week": strconv.Itoa(scope.Week)}
	results, err := col.QueryEmbedding(ctx, vec, n, where, nil)
	if err != nil {
		return Result{Reason: fmt.Sprintf("similarity query: %v", err)}
	}
	if len(results) == 0 {
		return Result{}
	}

	// Results come back ordered by similarity, highest first. Chromem's
	// cosine can go negative; scores are clamped to [0, 1] like Cosine.
	out := Result{
		MaxSimilarity: clamp01(results[0].Similarity),
		NearestID:     results[0].ID,
		Scores:        make([]float32, 0, len(results)),
	}
	for _, r := range results {
		s := clamp01(r.Similarity)
		out.Scores = append(out.Scores, s)
		if s >= threshold {
			out.DuplicateCount++
		}
	}
	if out.MaxSimilarity >= threshold {
		out.IsDuplicate = true
		out.Reason = fmt.Sprintf("similarity %.2f to existing item %s", out.MaxSimilarity, out.NearestID)
	}
	return out
}

// IsDuplicate reports whether vec matches any indexed vector in scope at
// or above threshold.
func (ix *Index) IsDuplicate(ctx context.Context, vec []float32, scope Scope, threshold float32) bool {
	return ix.Check(ctx, vec, scope, threshold).IsDuplicate
}

// Add indexes an accepted item's vector and records it durably.
func (ix *Index) Add(ctx context.Context, scope Scope, itemID string, vec []float32, contentHash string) error {
	if len(vec) != ix.dim {
		return fmt.Errorf("embedding dimension %d, index expects %d", len(vec), ix.dim)
	}
	if zeroNorm(vec) {
		return fmt.Errorf("zero-norm embedding for item %s", itemID)
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	col, err := ix.collection(ctx, scope.UserID, scope.ContentType)
	if err != nil {
		return err
	}

	doc := chromem.Document{
		ID:        itemID,
		Embedding: vec,
		Content:   contentHash,
		Metadata: map[string]string{
			"week": strconv.Itoa(scope.Week),
			"hash": contentHash,
		},
	}
	if err := col.AddDocuments(ctx, []chromem.Document{doc}, 1); err != nil {
		return fmt.Errorf("index item %s: %w", itemID, err)
	}

	rec := &store.SimilarityRecord{
		ItemID:      itemID,
		UserID:      scope.UserID,
		Week:        scope.Week,
		ContentType: scope.ContentType,
		ContentHash: contentHash,
		Embedding:   vec,
		CreatedAt:   time.Now().UTC(),
	}
	if err := ix.records.Append(ctx, rec); err != nil {
		return err
	}
	return nil
}

// Trim drops everything but the keep most recent vectors for
// (user, content type), in both the chromem collection and the
// bookkeeping rows. It returns how many vectors were removed.
func (ix *Index) Trim(ctx context.Context, userID, contentType string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	overflow, err := ix.records.OverflowIDs(ctx, userID, contentType, keep)
	if err != nil {
		return 0, err
	}
	if len(overflow) == 0 {
		return 0, nil
	}

	col, err := ix.collection(ctx, userID, contentType)
	if err != nil {
		return 0, err
	}
	if err := col.Delete(ctx, nil, nil, overflow...); err != nil {
		return 0, fmt.Errorf("trim similarity index: %w", err)
	}
	if err := ix.records.Delete(ctx, overflow); err != nil {
		return 0, err
	}
	return len(overflow), nil
}
