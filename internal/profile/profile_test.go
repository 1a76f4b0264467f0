package profile

import (
	"testing"
	"time"
)

func TestWeekFromDueDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		want    int
	}{
		{"forty weeks out", now.AddDate(0, 0, 40*7), 1},
		{"twenty weeks out", now.AddDate(0, 0, 20*7), 20},
		{"one week out", now.AddDate(0, 0, 7), 39},
		{"due today", now, 40},
		{"one week overdue", now.AddDate(0, 0, -7), 41},
		{"long overdue clamps", now.AddDate(0, 0, -10*7), 42},
		{"far future clamps", now.AddDate(0, 0, 80*7), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekFromDueDate(tt.dueDate, now)
			if got != tt.want {
				t.Errorf("WeekFromDueDate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekOverrideWins(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Profile{UserID: "u1", DueDate: now.AddDate(0, 0, 20*7)}

	if got := p.Week(8, now); got != 8 {
		t.Errorf("Week(8) = %d, want override 8", got)
	}
	if got := p.Week(0, now); got != 20 {
		t.Errorf("Week(0) = %d, want derived 20", got)
	}
	if got := p.Week(99, now); got != MaxWeek {
		t.Errorf("Week(99) = %d, want clamped %d", got, MaxWeek)
	}
}
