package deck

import rand "math/rand/v2"

// Size is the number of cards in a standard deck.
const Size = 52

// Standard returns a new standard 52-card deck, one card per
// (suit, rank) combination, in a fixed order.
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffled returns a uniform random permutation of the standard deck
// using the caller-supplied RNG.
func Shuffled(rng *rand.Rand) []Card {
	cards := Standard()
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}
