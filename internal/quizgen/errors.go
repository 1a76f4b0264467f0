package quizgen

import (
	"fmt"
	"strings"
)

// ExhaustedError is returned when the loop used all attempts without
// producing a single usable item.
type ExhaustedError struct {
	Attempts int
	Reasons  []string
}

func (e *ExhaustedError) Error() string {
	if len(e.Reasons) == 0 {
		return fmt.Sprintf("content generation exhausted after %d attempts", e.Attempts)
	}
	return fmt.Sprintf("content generation exhausted after %d attempts: %s",
		e.Attempts, strings.Join(e.Reasons, "; "))
}
