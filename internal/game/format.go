package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/warsim/internal/deck"
)

// EventStyles contains styling for formatted events
type EventStyles struct {
	Winner    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	War       lipgloss.Style
	Dim       lipgloss.Style
}

// NewEventStyles creates the default set of event styles
func NewEventStyles() *EventStyles {
	return &EventStyles{
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		War: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Describe formats an event into a human-readable line. The switch is
// exhaustive over the closed event set; an unknown variant is a defect.
func (s *EventStyles) Describe(e Event) string {
	switch ev := e.(type) {
	case ShortBattleEvent:
		return fmt.Sprintf("%s beats %s, %s takes the pot %s",
			s.card(ev.WinningCard),
			s.card(ev.LosingCard),
			s.Winner.Render(playerName(ev.Winner)),
			s.Dim.Render(s.cards(ev.Pot)))
	case WarStartEvent:
		return fmt.Sprintf("%s %s vs %s, each side banks %d cards",
			s.War.Render("WAR!"),
			s.card(ev.TopCards[0]),
			s.card(ev.TopCards[1]),
			ev.ExpectedLength)
	case WarShortenedEvent:
		return s.Dim.Render(fmt.Sprintf("%s ran out of cards, war cut to %d of %d",
			playerName(ev.ShortPlayer), ev.ActualLength, ev.ExpectedLength))
	case WarEndEvent:
		return fmt.Sprintf("war ends %s vs %s, %s takes the pot",
			s.card(ev.FinalTopCards[0]),
			s.card(ev.FinalTopCards[1]),
			s.Winner.Render(playerName(ev.Winner)))
	case GameOverEvent:
		return s.Winner.Render(fmt.Sprintf("game over, %s wins", playerName(ev.Winner)))
	default:
		panic(fmt.Sprintf("unhandled event type %s", e.Type()))
	}
}

func (s *EventStyles) card(c deck.Card) string {
	if c.IsRed() {
		return s.CardRed.Render(c.String())
	}
	return s.CardBlack.Render(c.String())
}

func (s *EventStyles) cards(cs []deck.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func playerName(id int) string {
	return fmt.Sprintf("player %d", id)
}
