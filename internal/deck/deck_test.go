package deck

import (
	"testing"

	"github.com/lox/warsim/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardDeck(t *testing.T) {
	cards := Standard()
	require.Len(t, cards, Size)

	seen := make(map[Card]bool, Size)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestShuffledContainsEveryCard(t *testing.T) {
	rng := randutil.New(42)

	for trial := 0; trial < 20; trial++ {
		cards := Shuffled(rng)
		require.Len(t, cards, Size)

		seen := make(map[Card]bool, Size)
		for _, c := range cards {
			require.False(t, seen[c], "duplicate card %s in shuffle", c)
			seen[c] = true
		}
	}
}

// TestShuffleUniformity checks that a fixed card lands in each quarter
// of the deck roughly equally often. Statistical, not exact: with 4000
// trials each quarter expects 1000 hits, and a tolerance of 150 keeps
// the false-failure rate negligible.
func TestShuffleUniformity(t *testing.T) {
	rng := randutil.New(7)
	target := NewCard(Spades, Ace)

	const trials = 4000
	var quarters [4]int
	for i := 0; i < trials; i++ {
		cards := Shuffled(rng)
		for pos, c := range cards {
			if c == target {
				quarters[pos/(Size/4)]++
				break
			}
		}
	}

	const expected = trials / 4
	for q, count := range quarters {
		if count < expected-150 || count > expected+150 {
			t.Errorf("quarter %d: %d hits, expected around %d", q, count, expected)
		}
	}
}
