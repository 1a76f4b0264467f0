// Package app assembles the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/flashcards"
	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/quiz"
	"github.com/bumpwise/bumpquiz/internal/router"
	"github.com/bumpwise/bumpquiz/internal/screen"
	"github.com/bumpwise/bumpquiz/internal/screens/home"
	"github.com/bumpwise/bumpquiz/internal/screens/profilesetup"
	"github.com/bumpwise/bumpquiz/internal/screens/welcome"
	"github.com/bumpwise/bumpquiz/internal/store"
	"github.com/bumpwise/bumpquiz/internal/streaks"
	"github.com/bumpwise/bumpquiz/internal/ui/layout"
)

// Options carries the services the TUI runs on.
type Options struct {
	UserID     string
	Difficulty string
	Quiz       *quiz.Service
	Flashcards *flashcards.Service
	Limits     *limits.Service
	Streaks    *streaks.Service
	Profiles   *profile.Resolver
	Events     store.EventRepo

	// SkipSplash starts directly on the home screen.
	SkipSplash bool

	// NeedsProfile routes through the profile form before home.
	NeedsProfile bool
}

// headerStatsMsg refreshes the points and streak shown in the header.
type headerStatsMsg struct {
	points int
	streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
	points int
	streak int
}

func newAppModel(opts Options) AppModel {
	deps := home.Deps{
		UserID:     opts.UserID,
		Difficulty: opts.Difficulty,
		Quiz:       opts.Quiz,
		Flashcards: opts.Flashcards,
		Limits:     opts.Limits,
		Streaks:    opts.Streaks,
		Profiles:   opts.Profiles,
		Events:     opts.Events,
	}

	mainFactory := func() screen.Screen { return home.New(deps) }
	if opts.NeedsProfile {
		homeFactory := mainFactory
		mainFactory = func() screen.Screen {
			return profilesetup.New(opts.Profiles, opts.UserID, homeFactory)
		}
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = mainFactory()
	} else {
		initial = welcome.New(mainFactory)
	}

	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.refreshStats())
}

func (m AppModel) refreshStats() tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		ctx := context.Background()
		var msg headerStatsMsg
		if ledger, err := opts.Limits.Current(ctx, opts.UserID); err == nil {
			msg.points = ledger.PointsTotal
		}
		if streak, err := opts.Streaks.Current(ctx, opts.UserID); err == nil && streak != nil {
			msg.streak = streak.Current
		}
		return msg
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case headerStatsMsg:
		m.points = msg.points
		m.streak = msg.streak
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		// Returning from a child screen; the totals may have moved.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.points, m.streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
