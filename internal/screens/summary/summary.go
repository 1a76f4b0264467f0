// Package summary shows the results of a completed quiz session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/quiz"
	"github.com/bumpwise/bumpquiz/internal/router"
	"github.com/bumpwise/bumpquiz/internal/screen"
	"github.com/bumpwise/bumpquiz/internal/streaks"
	"github.com/bumpwise/bumpquiz/internal/ui/layout"
	"github.com/bumpwise/bumpquiz/internal/ui/theme"
)

// SummaryScreen displays the final score, points, and any new badges.
type SummaryScreen struct {
	result *quiz.CompleteResponse
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *quiz.CompleteResponse) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop the summary and the quiz screen beneath it.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Sequence(pop, pop)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Correct: %d of %d        Points earned: %d",
		r.CorrectCount, r.TotalQuestions, r.AwardedPoints)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	verdict := encouragement(r.CorrectCount, r.TotalQuestions)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(verdict))
	b.WriteString("\n")

	if len(r.BadgesAwarded) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("New badges")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, code := range r.BadgesAwarded {
			badge := streaks.Badge(code)
			line := fmt.Sprintf("  %s %s", badge.Icon(), badge.DisplayName())
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func encouragement(correct, total int) string {
	switch {
	case total > 0 && correct == total:
		return "A perfect round. You know your stuff!"
	case total > 0 && correct*2 >= total:
		return "Nice work. A little more each week adds up."
	default:
		return "Every question you try is one you will remember."
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
