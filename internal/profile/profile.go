// Package profile holds the user profile that personalizes generated
// content.
package profile

import (
	"time"
)

// Weeks of a full-term pregnancy. Content exists through week 42 for
// late deliveries.
const (
	TermWeeks = 40
	MinWeek   = 1
	MaxWeek   = 42
)

// Profile describes one expecting user.
type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	DueDate   time.Time `json:"due_date"`
	Interests []string  `json:"interests,omitempty"`
}

// Week returns the profile's current pregnancy week. An explicit
// override wins; otherwise the week is derived from the due date.
func (p Profile) Week(override int, now time.Time) int {
	if override > 0 {
		return ClampWeek(override)
	}
	return WeekFromDueDate(p.DueDate, now)
}

// WeekFromDueDate derives the current pregnancy week from the due date,
// clamped to [MinWeek, MaxWeek]. A due date 40 weeks out is week 1; a
// passed due date keeps advancing toward MaxWeek.
func WeekFromDueDate(dueDate, now time.Time) int {
	daysLeft := int(dueDate.Sub(now).Hours() / 24)
	weeksLeft := daysLeft / 7
	return ClampWeek(TermWeeks - weeksLeft)
}

// ClampWeek bounds a week number to the supported range.
func ClampWeek(week int) int {
	if week < MinWeek {
		return MinWeek
	}
	if week > MaxWeek {
		return MaxWeek
	}
	return week
}
