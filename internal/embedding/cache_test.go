package embedding

import (
	"context"
	"testing"
	"time"
)

func TestCacheHit(t *testing.T) {
	mock := NewMockEmbedder(8)
	cache := WithCache(mock, time.Minute)
	ctx := context.Background()

	first, err := cache.Embed(ctx, "folic acid supports neural tube development")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	second, err := cache.Embed(ctx, "folic acid supports neural tube development")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Errorf("inner embedder called %d times, want 1", mock.CallCount())
	}
	if len(first) != len(second) {
		t.Fatalf("vector lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cached vector differs at index %d", i)
		}
	}
}

func TestCacheExpiry(t *testing.T) {
	mock := NewMockEmbedder(8)
	cache := WithCache(mock, time.Minute)

	base := time.Now()
	cache.now = func() time.Time { return base }

	ctx := context.Background()
	if _, err := cache.Embed(ctx, "second trimester"); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	cache.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := cache.Embed(ctx, "second trimester"); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Errorf("inner embedder called %d times after expiry, want 2", mock.CallCount())
	}
}

func TestCacheInvalidate(t *testing.T) {
	mock := NewMockEmbedder(8)
	cache := WithCache(mock, time.Minute)
	ctx := context.Background()

	if _, err := cache.Embed(ctx, "iron intake"); err != nil {
		t.Fatalf("Embed: %v", err)
	}
	cache.Invalidate("iron intake")
	if _, err := cache.Embed(ctx, "iron intake"); err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if mock.CallCount() != 2 {
		t.Errorf("inner embedder called %d times after invalidate, want 2", mock.CallCount())
	}
}

func TestMockEmbedderDeterministic(t *testing.T) {
	mock := NewMockEmbedder(16)
	ctx := context.Background()

	a, err := mock.Embed(ctx, "kick counts")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	b, err := mock.Embed(ctx, "kick counts")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}

	if len(a) != 16 {
		t.Fatalf("vector length = %d, want 16", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at index %d", i)
		}
	}

	c, err := mock.Embed(ctx, "glucose screening")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct texts produced identical vectors")
	}
}

func TestMockEmbedderEmptyInput(t *testing.T) {
	mock := NewMockEmbedder(8)
	if _, err := mock.Embed(context.Background(), ""); err != ErrEmptyInput {
		t.Errorf("Embed(\"\") error = %v, want ErrEmptyInput", err)
	}
}
