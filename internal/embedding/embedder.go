// Package embedding provides text embedding generation for the
// similarity index.
package embedding

import (
	"context"
	"errors"
)

// ErrEmptyInput is returned when the text to embed is empty.
var ErrEmptyInput = errors.New("embedding: empty input")

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	// Embed returns the embedding for text. Implementations must return
	// vectors of exactly Dimension() length.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the length of vectors produced by Embed.
	Dimension() int
}
