// Package profilesetup collects the profile that personalizes all
// generated content: name, due date, and optional interests.
package profilesetup

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/router"
	"github.com/bumpwise/bumpquiz/internal/screen"
	"github.com/bumpwise/bumpquiz/internal/ui/components"
	"github.com/bumpwise/bumpquiz/internal/ui/layout"
	"github.com/bumpwise/bumpquiz/internal/ui/theme"
)

const (
	fieldName = iota
	fieldDueDate
	fieldInterests
	fieldSave
)

type savedMsg struct {
	next screen.Screen
	err  error
}

// SetupScreen is the first-run profile form.
type SetupScreen struct {
	profiles    *profile.Resolver
	userID      string
	homeFactory func() screen.Screen

	name      components.TextInput
	dueDate   components.TextInput
	interests components.TextInput
	save      components.Button

	focused int
	errMsg  string
	saving  bool
}

var _ screen.Screen = (*SetupScreen)(nil)

// New creates the setup form. On save it replaces itself with the
// screen produced by homeFactory.
func New(profiles *profile.Resolver, userID string, homeFactory func() screen.Screen) *SetupScreen {
	s := &SetupScreen{
		profiles:    profiles,
		userID:      userID,
		homeFactory: homeFactory,
		name:        components.NewTextInput("Your name", false, 40),
		dueDate:     components.NewTextInput("YYYY-MM-DD", false, 10),
		interests:   components.NewTextInput("nutrition, sleep, exercise (optional)", false, 80),
	}
	s.save = components.NewButton("Save", false, s.submit)
	s.dueDate.Model.Blur()
	s.interests.Model.Blur()
	return s
}

func (s *SetupScreen) Title() string {
	return "Set Up Your Profile"
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saving = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		next := msg.next
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.focus(s.focused + 1)
		case "shift+tab", "up":
			return s, s.focus(s.focused - 1)
		case "enter":
			if s.focused < fieldSave {
				return s, s.focus(s.focused + 1)
			}
		}
	}

	var cmd tea.Cmd
	switch s.focused {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldDueDate:
		s.dueDate, cmd = s.dueDate.Update(msg)
	case fieldInterests:
		s.interests, cmd = s.interests.Update(msg)
	case fieldSave:
		s.save, cmd = s.save.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) focus(field int) tea.Cmd {
	if field < fieldName {
		field = fieldName
	}
	if field > fieldSave {
		field = fieldSave
	}
	s.focused = field
	s.errMsg = ""

	s.name.Model.Blur()
	s.dueDate.Model.Blur()
	s.interests.Model.Blur()
	s.save.Active = field == fieldSave

	switch field {
	case fieldName:
		return s.name.Model.Focus()
	case fieldDueDate:
		return s.dueDate.Model.Focus()
	case fieldInterests:
		return s.interests.Model.Focus()
	}
	return nil
}

func (s *SetupScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		s.errMsg = "Please enter your name."
		return nil
	}

	due, err := time.Parse("2006-01-02", strings.TrimSpace(s.dueDate.Value()))
	if err != nil {
		s.errMsg = "Due date must look like 2026-07-19."
		return nil
	}

	var interests []string
	for _, it := range strings.Split(s.interests.Value(), ",") {
		if it = strings.TrimSpace(it); it != "" {
			interests = append(interests, it)
		}
	}

	s.saving = true
	profiles := s.profiles
	userID := s.userID
	factory := s.homeFactory
	return func() tea.Msg {
		err := profiles.Save(context.Background(), profile.Profile{
			UserID:    userID,
			Name:      name,
			DueDate:   due,
			Interests: interests,
		})
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{next: factory()}
	}
}

func (s *SetupScreen) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	intro := lipgloss.NewStyle().Foreground(theme.Text).
		Render("Tell us a little about your pregnancy so every quiz fits your week.")

	sections := []string{
		intro,
		"",
		labelStyle.Render("Name"),
		s.name.View(),
		"",
		labelStyle.Render("Due date"),
		s.dueDate.View(),
		"",
		labelStyle.Render("Interests"),
		s.interests.View(),
		"",
		s.save.View(),
	}

	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	if s.saving {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saving..."))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
