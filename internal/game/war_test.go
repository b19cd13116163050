package game

import (
	"testing"

	"github.com/lox/warsim/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Piles in these tests are written bottom-first: the last card is the
// next one drawn.

func TestWarDrawsExpectedExtraCards(t *testing.T) {
	// Tied twos: war length 2, so each side banks two extra cards
	// before the deciding comparison.
	g := newFixedGame(
		[]deck.Card{
			deck.NewCard(deck.Spades, deck.Five),
			deck.NewCard(deck.Spades, deck.Nine),
			deck.NewCard(deck.Spades, deck.Two),
		},
		[]deck.Card{
			deck.NewCard(deck.Hearts, deck.Three),
			deck.NewCard(deck.Hearts, deck.King),
			deck.NewCard(deck.Hearts, deck.Two),
		},
		1,
	)

	events, ok := g.Step()
	require.True(t, ok)
	require.Len(t, events, 3)

	start := events[0].(WarStartEvent)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Two), start.TopCards[0])
	assert.Equal(t, deck.NewCard(deck.Hearts, deck.Two), start.TopCards[1])
	assert.Equal(t, 2, start.ExpectedLength)

	// Player 0's final top is the 5, player 1's the 3.
	end := events[1].(WarEndEvent)
	assert.Equal(t, 0, end.Winner)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Five), end.FinalTopCards[0])
	assert.Equal(t, deck.NewCard(deck.Hearts, deck.Three), end.FinalTopCards[1])

	over := events[2].(GameOverEvent)
	assert.Equal(t, 0, over.Winner)
	assert.Equal(t, 6, g.Player(0).CountCards(), "winner holds every card in play")
	assert.Equal(t, 0, g.Player(1).CountCards())
}

func TestWarShortenedMidWar(t *testing.T) {
	// Player 1 can bank only one of the two expected extra cards.
	g := newFixedGame(
		[]deck.Card{
			deck.NewCard(deck.Spades, deck.Nine),
			deck.NewCard(deck.Spades, deck.Eight),
			deck.NewCard(deck.Spades, deck.Two),
		},
		[]deck.Card{
			deck.NewCard(deck.Hearts, deck.King),
			deck.NewCard(deck.Hearts, deck.Two),
		},
		1,
	)

	events, ok := g.Step()
	require.True(t, ok)
	require.Len(t, events, 3)

	shortened := events[1].(WarShortenedEvent)
	assert.Equal(t, 1, shortened.ShortPlayer)
	assert.Equal(t, 1, shortened.ActualLength)
	assert.Equal(t, 2, shortened.ExpectedLength)

	// Final tops are 8 vs King: the shortened side still wins the
	// comparison and takes the four-card pot.
	end := events[2].(WarEndEvent)
	assert.Equal(t, 1, end.Winner)
	assert.Equal(t, 4, g.Player(1).CountCards())
	assert.Equal(t, 1, g.Player(0).CountCards())
}

func TestWarShortenedBeforeAnyExtraDraw(t *testing.T) {
	// Player 1 ties with their very last card. No extra cards can be
	// banked, the final tops still tie, and the dead side forfeits.
	g := newFixedGame(
		[]deck.Card{
			deck.NewCard(deck.Spades, deck.Eight),
			deck.NewCard(deck.Spades, deck.Nine),
			deck.NewCard(deck.Spades, deck.Two),
		},
		[]deck.Card{deck.NewCard(deck.Hearts, deck.Two)},
		1,
	)

	events, ok := g.Step()
	require.True(t, ok)
	require.Len(t, events, 4)

	shortened := events[1].(WarShortenedEvent)
	assert.Equal(t, 1, shortened.ShortPlayer)
	assert.Equal(t, 0, shortened.ActualLength)

	end := events[2].(WarEndEvent)
	assert.Equal(t, 0, end.Winner, "a tied comparison against an eliminated player goes to the survivor")

	over := events[3].(GameOverEvent)
	assert.Equal(t, 0, over.Winner)
	assert.Equal(t, 4, g.Player(0).CountCards())
}

func TestNestedWarKeepsGrowingPot(t *testing.T) {
	// First war on twos banks up to two cards each and the new tops tie
	// again (fives), escalating into a second war on the same pots.
	// Both players then run out together with tied aces on top, which
	// resolves in player 1's favor by policy.
	g := newFixedGame(
		[]deck.Card{
			deck.NewCard(deck.Spades, deck.Ace),
			deck.NewCard(deck.Spades, deck.Five),
			deck.NewCard(deck.Spades, deck.Six),
			deck.NewCard(deck.Spades, deck.Two),
		},
		[]deck.Card{
			deck.NewCard(deck.Hearts, deck.Ace),
			deck.NewCard(deck.Hearts, deck.Five),
			deck.NewCard(deck.Hearts, deck.Seven),
			deck.NewCard(deck.Hearts, deck.Two),
		},
		1,
	)

	events, ok := g.Step()
	require.True(t, ok)
	require.Len(t, events, 5)

	first := events[0].(WarStartEvent)
	assert.Equal(t, 2, first.ExpectedLength)

	second := events[1].(WarStartEvent)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Five), second.TopCards[0])
	assert.Equal(t, 5, second.ExpectedLength)

	shortened := events[2].(WarShortenedEvent)
	assert.Equal(t, 0, shortened.ShortPlayer)
	assert.Equal(t, 1, shortened.ActualLength)
	assert.Equal(t, 5, shortened.ExpectedLength)

	end := events[3].(WarEndEvent)
	assert.Equal(t, 1, end.Winner)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.Ace), end.FinalTopCards[0])
	assert.Equal(t, deck.NewCard(deck.Hearts, deck.Ace), end.FinalTopCards[1])

	over := events[4].(GameOverEvent)
	assert.Equal(t, 1, over.Winner)
	assert.Equal(t, 8, g.Player(1).CountCards())
	assert.Equal(t, 0, g.Player(0).CountCards())
}

func TestWarPanicsWithoutTiedTops(t *testing.T) {
	g := newFixedGame(nil, nil, 1)
	require.Panics(t, func() {
		g.resolveWar(
			[]deck.Card{deck.NewCard(deck.Spades, deck.Two)},
			[]deck.Card{deck.NewCard(deck.Hearts, deck.Three)},
		)
	})
}
