package quiz

import "fmt"

// ErrLimitExceeded is returned when the user is at the daily session
// cap. Recoverable after the daily reset.
type ErrLimitExceeded struct {
	UserID string
	Limit  int
}

func (e *ErrLimitExceeded) Error() string {
	return fmt.Sprintf("daily session limit of %d reached for user %s", e.Limit, e.UserID)
}

// ErrNotFound is returned for an unknown session, question, or item.
type ErrNotFound struct {
	Kind string // "session", "question", "item"
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ErrSessionTimeout is returned when a session's deadline has passed.
// Detecting it flips the session to timed_out.
type ErrSessionTimeout struct {
	SessionID string
}

func (e *ErrSessionTimeout) Error() string {
	return fmt.Sprintf("session %s timed out", e.SessionID)
}

// ErrInvalidRequest covers malformed input and generation that
// exhausted all attempts.
type ErrInvalidRequest struct {
	Err error
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid request: %v", e.Err)
}

func (e *ErrInvalidRequest) Unwrap() error {
	return e.Err
}
