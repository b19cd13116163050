package game

import "github.com/lox/warsim/internal/deck"

// Player owns two ordered piles of cards: the draw pile cards are
// played from, and the winnings pile captured pots are appended to.
// Cards only ever move between the two players' piles and a transient
// pot, so the combined count across both players is always 52 while a
// game is in progress.
type Player struct {
	drawPile     []deck.Card
	winningsPile []deck.Card
}

// Draw removes and returns the top card of the draw pile. If the draw
// pile is empty but the winnings pile is not, the piles are swapped
// first: the winnings become the new draw pile in capture order,
// without reshuffling. Returns false only when both piles are empty;
// callers are expected to check liveness before relying on a draw
// succeeding.
func (p *Player) Draw() (deck.Card, bool) {
	if len(p.drawPile) == 0 && len(p.winningsPile) != 0 {
		p.drawPile, p.winningsPile = p.winningsPile, p.drawPile
	}
	if len(p.drawPile) == 0 {
		return deck.Card{}, false
	}
	card := p.drawPile[len(p.drawPile)-1]
	p.drawPile = p.drawPile[:len(p.drawPile)-1]
	return card, true
}

// capture appends a won pot to the winnings pile.
func (p *Player) capture(pot []deck.Card) {
	p.winningsPile = append(p.winningsPile, pot...)
}

// CountCards returns the total number of cards the player holds.
func (p *Player) CountCards() int {
	return len(p.drawPile) + len(p.winningsPile)
}

// DrawPileSize returns the number of cards in the draw pile.
func (p *Player) DrawPileSize() int {
	return len(p.drawPile)
}

// WinningsPileSize returns the number of cards in the winnings pile.
func (p *Player) WinningsPileSize() int {
	return len(p.winningsPile)
}

// IsDead reports whether the player has no cards left.
func (p *Player) IsDead() bool {
	return p.CountCards() == 0
}

// IsWinner reports whether the player holds the entire deck.
func (p *Player) IsWinner() bool {
	return p.CountCards() == deck.Size
}

// Strength sums the battle strength of every card the player holds.
// Diagnostic only; game logic never consults it.
func (p *Player) Strength() int {
	total := 0
	for _, c := range p.drawPile {
		total += c.BattleStrength()
	}
	for _, c := range p.winningsPile {
		total += c.BattleStrength()
	}
	return total
}
