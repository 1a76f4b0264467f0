// Package badges displays earned badges, the active streak, and point
// totals.
package badges

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/screen"
	"github.com/bumpwise/bumpquiz/internal/store"
	"github.com/bumpwise/bumpquiz/internal/streaks"
	"github.com/bumpwise/bumpquiz/internal/ui/layout"
	"github.com/bumpwise/bumpquiz/internal/ui/theme"
)

type loadedMsg struct {
	Earned map[string]bool
	Streak *store.Streak
	Limits *store.Limits
	Err    error
}

// BadgeScreen shows the trophy cabinet.
type BadgeScreen struct {
	events  store.EventRepo
	streaks *streaks.Service
	limits  *limits.Service
	userID  string

	earned map[string]bool
	streak *store.Streak
	ledger *store.Limits
	loaded bool
	errMsg string
}

var _ screen.Screen = (*BadgeScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeScreen)(nil)

// New creates a new BadgeScreen.
func New(events store.EventRepo, str *streaks.Service, lim *limits.Service, userID string) *BadgeScreen {
	return &BadgeScreen{
		events:  events,
		streaks: str,
		limits:  lim,
		userID:  userID,
	}
}

func (s *BadgeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		earned, err := s.events.BadgeCodes(ctx, s.userID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		streak, err := s.streaks.Current(ctx, s.userID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		ledger, err := s.limits.Current(ctx, s.userID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Earned: earned, Streak: streak, Limits: ledger}
	}
}

func (s *BadgeScreen) Title() string {
	return "Badges"
}

func (s *BadgeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.earned = m.Earned
			s.streak = m.Streak
			s.ledger = m.Limits
		}
		s.loaded = true
	}
	return s, nil
}

func (s *BadgeScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Body.Render(s.errMsg))
	}

	var b strings.Builder

	current, longest := 0, 0
	if s.streak != nil {
		current, longest = s.streak.Current, s.streak.Longest
	}
	var today, total int
	if s.ledger != nil {
		today, total = s.ledger.PointsToday, s.ledger.PointsTotal
	}
	statsLine := fmt.Sprintf("★ %d-day streak (best %d)        ✿ %d points today, %d all time",
		current, longest, today, total)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, badge := range streaks.AllBadges() {
		has := s.earned[string(badge)]
		line := fmt.Sprintf("  %s  %-18s", badge.Icon(), badge.DisplayName())
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if has {
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
			line += "  earned"
		} else {
			line += "  locked"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
