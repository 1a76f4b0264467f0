// Package flashdeck is the flashcard browsing screen.
package flashdeck

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/flashcards"
	"github.com/bumpwise/bumpquiz/internal/screen"
	"github.com/bumpwise/bumpquiz/internal/ui/layout"
	"github.com/bumpwise/bumpquiz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// deckReadyMsg is sent when the week's deck has been loaded or generated.
type deckReadyMsg struct {
	Deck *flashcards.Deck
	Err  error
}

// flipDoneMsg is sent when a flip has been recorded.
type flipDoneMsg struct {
	Result *flashcards.FlipResult
	Err    error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// DeckScreen pages through the week's flashcards one at a time.
type DeckScreen struct {
	svc    *flashcards.Service
	userID string

	deck    *flashcards.Deck
	current int
	flipped map[string]*flashcards.FlipResult
	errMsg  string
	loading bool
	spinner int
}

var _ screen.Screen = (*DeckScreen)(nil)
var _ screen.KeyHintProvider = (*DeckScreen)(nil)

// New creates the flashcard screen. The deck loads on Init.
func New(svc *flashcards.Service, userID string) *DeckScreen {
	return &DeckScreen{
		svc:     svc,
		userID:  userID,
		flipped: make(map[string]*flashcards.FlipResult),
		loading: true,
	}
}

func (d *DeckScreen) Init() tea.Cmd {
	return tea.Batch(d.loadDeck(), d.spinnerTick())
}

func (d *DeckScreen) Title() string {
	if d.deck != nil {
		return fmt.Sprintf("Flashcards · Week %d", d.deck.Week)
	}
	return "Flashcards"
}

func (d *DeckScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DeckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckReadyMsg:
		d.loading = false
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.deck = msg.Deck
		return d, nil

	case flipDoneMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.flipped[msg.Result.CardID] = msg.Result
		return d, nil

	case spinnerTickMsg:
		if d.loading {
			d.spinner++
			return d, d.spinnerTick()
		}
		return d, nil

	case tea.KeyMsg:
		if d.deck == nil || len(d.deck.Cards) == 0 {
			return d, nil
		}
		switch msg.String() {
		case "left", "h":
			if d.current > 0 {
				d.current--
			}
		case "right", "l":
			if d.current < len(d.deck.Cards)-1 {
				d.current++
			}
		case "space", "enter":
			card := d.deck.Cards[d.current]
			if _, ok := d.flipped[card.ID]; !ok {
				return d, d.flip(card.ID)
			}
		}
	}
	return d, nil
}

func (d *DeckScreen) loadDeck() tea.Cmd {
	return func() tea.Msg {
		deck, err := d.svc.GetOrGenerate(context.Background(), d.userID, 0)
		return deckReadyMsg{Deck: deck, Err: err}
	}
}

func (d *DeckScreen) flip(cardID string) tea.Cmd {
	return func() tea.Msg {
		result, err := d.svc.Flip(context.Background(), d.userID, cardID)
		return flipDoneMsg{Result: result, Err: err}
	}
}

func (d *DeckScreen) spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (d *DeckScreen) View(width, height int) string {
	if d.loading {
		frame := spinnerFrames[d.spinner%len(spinnerFrames)]
		return center(width, height,
			theme.Hint.Render(frame+" Preparing this week's cards..."))
	}
	if d.errMsg != "" {
		return center(width, height, theme.Body.Render(d.errMsg))
	}
	if d.deck == nil || len(d.deck.Cards) == 0 {
		return center(width, height, theme.Hint.Render("No cards for this week yet."))
	}

	card := d.deck.Cards[d.current]
	result, isFlipped := d.flipped[card.ID]

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("Card %d of %d", d.current+1, len(d.deck.Cards))))
	b.WriteString("\n\n")

	face := theme.Body.Bold(true).Render(card.Front)
	if isFlipped {
		face += "\n\n" + theme.Body.Render(result.Back)
	} else {
		face += "\n\n" + theme.Hint.Render("press space to reveal")
	}
	b.WriteString(theme.Card.Width(min(width-8, 64)).Render(face))

	if isFlipped && result.AwardedPoints > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d points", result.AwardedPoints)))
	}

	return center(width, height, b.String())
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
