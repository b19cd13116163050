package game

import "github.com/lox/warsim/internal/deck"

// resolveWar settles a tied turn. Each pot stack starts with one of the
// tied cards; every round banks up to WarLength extra cards per side,
// then compares the new top cards. Repeated ties loop with the same
// accumulating pots rather than recursing: each round consumes at least
// one card per surviving player from a 52-card universe, so the loop
// terminates.
func (g *Game) resolveWar(pot0, pot1 []deck.Card) []Event {
	var events []Event

	for {
		top0 := pot0[len(pot0)-1]
		top1 := pot1[len(pot1)-1]
		if top0.Rank != top1.Rank {
			panic("war entered without tied top cards")
		}

		expected := top0.WarLength()
		events = append(events, WarStartEvent{
			TopCards:       [2]deck.Card{top0, top1},
			ExpectedLength: expected,
		})

		for i := 1; i <= expected; i++ {
			if g.players[0].IsDead() || g.players[1].IsDead() {
				short := 0
				if !g.players[0].IsDead() {
					short = 1
				}
				events = append(events, WarShortenedEvent{
					ShortPlayer:    short,
					ActualLength:   i - 1,
					ExpectedLength: expected,
				})
				break
			}
			a, _ := g.players[0].Draw()
			b, _ := g.players[1].Draw()
			pot0 = append(pot0, a)
			pot1 = append(pot1, b)
		}

		final0 := pot0[len(pot0)-1]
		final1 := pot1[len(pot1)-1]

		// One coin flip per war round decides which side's stack goes
		// on top of the merged pot. Presentation only; the winner takes
		// everything either way.
		merged := make([]deck.Card, 0, len(pot0)+len(pot1))
		if g.rng.IntN(2) == 0 {
			merged = append(append(merged, pot0...), pot1...)
		} else {
			merged = append(append(merged, pot1...), pot0...)
		}

		s0, s1 := final0.BattleStrength(), final1.BattleStrength()
		switch {
		case s0 > s1:
			g.players[0].capture(merged)
			events = append(events, WarEndEvent{Winner: 0, FinalTopCards: [2]deck.Card{final0, final1}})
			return events
		case s0 < s1:
			g.players[1].capture(merged)
			events = append(events, WarEndEvent{Winner: 1, FinalTopCards: [2]deck.Card{final0, final1}})
			return events
		default:
			if !g.players[0].IsDead() && !g.players[1].IsDead() {
				// War within a war: the pots keep growing.
				continue
			}
			// An eliminated opponent cannot continue a war, so the
			// surviving side takes the pot despite the tie. If both
			// ran out together, player 1 takes it (player 0's
			// elimination is checked first), which rules out drawn
			// games.
			winner := 0
			if g.players[0].IsDead() {
				winner = 1
			}
			g.players[winner].capture(merged)
			events = append(events, WarEndEvent{Winner: winner, FinalTopCards: [2]deck.Card{final0, final1}})
			return events
		}
	}
}
