// Package home is the landing screen with the main menu.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/flashcards"
	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/quiz"
	"github.com/bumpwise/bumpquiz/internal/router"
	"github.com/bumpwise/bumpquiz/internal/screen"
	"github.com/bumpwise/bumpquiz/internal/screens/badges"
	"github.com/bumpwise/bumpquiz/internal/screens/flashdeck"
	"github.com/bumpwise/bumpquiz/internal/screens/quizplay"
	"github.com/bumpwise/bumpquiz/internal/store"
	"github.com/bumpwise/bumpquiz/internal/streaks"
	"github.com/bumpwise/bumpquiz/internal/ui/components"
	"github.com/bumpwise/bumpquiz/internal/ui/theme"
)

// Deps bundles the services the home screen hands to child screens.
type Deps struct {
	UserID     string
	Difficulty string
	Quiz       *quiz.Service
	Flashcards *flashcards.Service
	Limits     *limits.Service
	Streaks    *streaks.Service
	Profiles   *profile.Resolver
	Events     store.EventRepo
}

// statsMsg refreshes the greeting numbers after returning from a child
// screen.
type statsMsg struct {
	week   int
	name   string
	points int
	streak int
}

// HomeScreen is the application's landing screen.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	stats statsMsg
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "WEEKLY QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizplay.New(deps.Quiz, deps.UserID, deps.Difficulty),
				}
			}
		}},
		{Label: "FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: flashdeck.New(deps.Flashcards, deps.UserID),
				}
			}
		}},
		{Label: "BADGES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: badges.New(deps.Events, deps.Streaks, deps.Limits, deps.UserID),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		ctx := context.Background()
		var stats statsMsg
		if prof, err := deps.Profiles.Get(ctx, deps.UserID); err == nil {
			stats.name = prof.Name
			stats.week = prof.Week(0, time.Now().UTC())
		}
		if ledger, err := deps.Limits.Current(ctx, deps.UserID); err == nil {
			stats.points = ledger.PointsTotal
		}
		if streak, err := deps.Streaks.Current(ctx, deps.UserID); err == nil && streak != nil {
			stats.streak = streak.Current
		}
		return stats
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsMsg); ok {
		h.stats = m
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	greeting := "Welcome back"
	if h.stats.name != "" {
		greeting = "Welcome back, " + h.stats.name
	}
	b.WriteString(theme.Title.Width(width).Render(greeting))
	b.WriteString("\n")
	if h.stats.week > 0 {
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("Week %d of your pregnancy", h.stats.week)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	statsLine := fmt.Sprintf("✿ %d points    ★ %d-day streak", h.stats.points, h.stats.streak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}
