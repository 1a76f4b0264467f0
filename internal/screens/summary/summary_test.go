package summary

import (
	"strings"
	"testing"

	"github.com/bumpwise/bumpquiz/internal/quiz"
)

func TestViewShowsScoreAndPoints(t *testing.T) {
	s := New(&quiz.CompleteResponse{
		Score:          40,
		AwardedPoints:  40,
		CorrectCount:   4,
		TotalQuestions: 5,
	})

	view := s.View(80, 24)
	if !strings.Contains(view, "Correct: 4 of 5") {
		t.Errorf("view missing score line:\n%s", view)
	}
	if !strings.Contains(view, "Points earned: 40") {
		t.Errorf("view missing points line:\n%s", view)
	}
}

func TestViewListsBadges(t *testing.T) {
	s := New(&quiz.CompleteResponse{
		CorrectCount:   5,
		TotalQuestions: 5,
		BadgesAwarded:  []string{"perfect-score", "streak-3"},
	})

	view := s.View(80, 24)
	if !strings.Contains(view, "Perfect Score") {
		t.Errorf("view missing badge name:\n%s", view)
	}
	if !strings.Contains(view, "3-Day Streak") {
		t.Errorf("view missing streak badge:\n%s", view)
	}
}

func TestViewWithoutBadgesOmitsSection(t *testing.T) {
	s := New(&quiz.CompleteResponse{CorrectCount: 1, TotalQuestions: 5})
	if strings.Contains(s.View(80, 24), "New badges") {
		t.Error("badge section rendered with no badges")
	}
}

func TestEncouragement(t *testing.T) {
	cases := []struct {
		correct, total int
		want           string
	}{
		{5, 5, "perfect"},
		{3, 5, "Nice work"},
		{1, 5, "remember"},
	}
	for _, tc := range cases {
		got := encouragement(tc.correct, tc.total)
		if !strings.Contains(strings.ToLower(got), strings.ToLower(tc.want)) {
			t.Errorf("encouragement(%d, %d) = %q, want mention of %q", tc.correct, tc.total, got, tc.want)
		}
	}
}
