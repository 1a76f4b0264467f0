package quizgen

import "fmt"

// Validator checks a parsed candidate for structural correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in
	// rejection reasons and audit rows.
	Name() string

	// Validate returns nil if the candidate passes.
	Validate(c *Candidate, req Request) *ValidationError
}

// ValidationError describes why a candidate failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
