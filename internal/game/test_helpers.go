package game

import (
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/randutil"
)

// newFixedGame builds a game with hand-picked draw piles for tests.
// Piles are given bottom-first: the last card of each slice is the next
// card drawn.
func newFixedGame(p0, p1 []deck.Card, seed int64) *Game {
	g := &Game{rng: randutil.New(seed)}
	g.players[0].drawPile = append([]deck.Card(nil), p0...)
	g.players[1].drawPile = append([]deck.Card(nil), p1...)
	return g
}
