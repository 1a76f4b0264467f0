package quizgen

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ContentHash returns a stable fingerprint for comparable text. Case and
// whitespace differences hash identically.
func ContentHash(text string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
