// Package similarity maintains per-user cosine similarity indexes used
// to reject near-duplicate generated content.
package similarity

import "math"

// Cosine returns the cosine similarity of a and b clamped to [0, 1].
// Mismatched lengths or a zero-norm vector yield 0.
func Cosine(a, b []float32) float32 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return clamp01(float32(dot / (math.Sqrt(normA) * math.Sqrt(normB))))
}

// clamp01 bounds a similarity score to [0, 1].
func clamp01(s float32) float32 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// zeroNorm reports whether vec has no magnitude.
func zeroNorm(vec []float32) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}
