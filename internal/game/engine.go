package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/warsim/internal/deck"
)

// Game holds the full state of one game of War: two players, a turn
// counter and a private RNG used for the setup shuffle and the
// pot-ordering flips during play. A Game is not safe for concurrent
// use; independent games share nothing and can run in parallel freely.
type Game struct {
	players [2]Player
	turn    int
	rng     *rand.Rand
}

// New builds a fresh game: shuffles a standard deck with the supplied
// RNG and deals it alternately between the two players. The RNG is
// retained and owned by the game afterwards.
func New(rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	for i, card := range deck.Shuffled(rng) {
		g.players[i%2].drawPile = append(g.players[i%2].drawPile, card)
	}
	return g
}

// Turn returns the number of turns played so far.
func (g *Game) Turn() int {
	return g.turn
}

// Player returns a read handle on player 0 or 1.
func (g *Game) Player(id int) *Player {
	return &g.players[id]
}

// Winner returns the id of the player holding all 52 cards, or -1 if
// the game is still in progress.
func (g *Game) Winner() int {
	for id := range g.players {
		if g.players[id].IsWinner() {
			return id
		}
	}
	return -1
}

// Over reports whether the game has finished.
func (g *Game) Over() bool {
	return g.players[0].IsDead() || g.players[1].IsDead()
}

// Summary returns a one-line diagnostic description of the game state.
func (g *Game) Summary() string {
	return fmt.Sprintf(
		"turn %d [%d:%d cards, %d total, valued %d] [%d:%d cards, %d total, valued %d]",
		g.turn,
		g.players[0].DrawPileSize(), g.players[0].WinningsPileSize(),
		g.players[0].CountCards(), g.players[0].Strength(),
		g.players[1].DrawPileSize(), g.players[1].WinningsPileSize(),
		g.players[1].CountCards(), g.players[1].Strength(),
	)
}

// Step plays exactly one turn and returns the events it produced. The
// second return is false when the game was already over before the turn
// started; in that case no state is mutated and the caller must stop
// stepping. The winning GameOverEvent is emitted at the end of the turn
// that eliminates a player, so a completed game's final Step with
// ok=true carries it.
func (g *Game) Step() ([]Event, bool) {
	if g.Over() {
		return nil, false
	}
	g.turn++

	var events []Event

	a, okA := g.players[0].Draw()
	b, okB := g.players[1].Draw()
	switch {
	case !okA || !okB:
		// Both players were alive at entry so draws cannot fail; if
		// one somehow does, the turn is a no-op and the death checks
		// below settle it.
	case a.Rank != b.Rank:
		pot := []deck.Card{a, b}
		g.rng.Shuffle(len(pot), func(i, j int) {
			pot[i], pot[j] = pot[j], pot[i]
		})
		winner, winning, losing := 0, a, b
		if b.BattleStrength() > a.BattleStrength() {
			winner, winning, losing = 1, b, a
		}
		g.players[winner].capture(pot)
		events = append(events, ShortBattleEvent{
			Winner:      winner,
			WinningCard: winning,
			LosingCard:  losing,
			Pot:         pot,
		})
	default:
		events = append(events, g.resolveWar([]deck.Card{a}, []deck.Card{b})...)
	}

	if g.players[0].IsDead() {
		events = append(events, GameOverEvent{Winner: 1})
	}
	if g.players[1].IsDead() {
		events = append(events, GameOverEvent{Winner: 0})
	}

	return events, true
}
