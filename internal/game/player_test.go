package game

import (
	"testing"

	"github.com/lox/warsim/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerDrawFromTop(t *testing.T) {
	p := Player{drawPile: []deck.Card{
		deck.NewCard(deck.Spades, deck.Two),
		deck.NewCard(deck.Spades, deck.King),
	}}

	card, ok := p.Draw()
	require.True(t, ok)
	assert.Equal(t, deck.NewCard(deck.Spades, deck.King), card)
	assert.Equal(t, 1, p.CountCards())
}

func TestPlayerDrawRotatesWinnings(t *testing.T) {
	p := Player{winningsPile: []deck.Card{
		deck.NewCard(deck.Hearts, deck.Three),
		deck.NewCard(deck.Hearts, deck.Nine),
	}}

	// Winnings become the draw pile in capture order; the last card
	// captured is the first one drawn.
	card, ok := p.Draw()
	require.True(t, ok)
	assert.Equal(t, deck.NewCard(deck.Hearts, deck.Nine), card)
	assert.Equal(t, 1, p.DrawPileSize())
	assert.Equal(t, 0, p.WinningsPileSize())
}

func TestPlayerDrawWhenEmpty(t *testing.T) {
	var p Player
	_, ok := p.Draw()
	assert.False(t, ok)
	assert.True(t, p.IsDead())
}

func TestPlayerStrength(t *testing.T) {
	p := Player{
		drawPile:     []deck.Card{deck.NewCard(deck.Spades, deck.Ace)},
		winningsPile: []deck.Card{deck.NewCard(deck.Clubs, deck.Two)},
	}
	// Ace counts 14 in battle strength, Two counts 2.
	assert.Equal(t, 16, p.Strength())
	assert.Equal(t, 2, p.CountCards())
	assert.False(t, p.IsDead())
	assert.False(t, p.IsWinner())
}
