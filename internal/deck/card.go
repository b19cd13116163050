package deck

import "fmt"

// Suit represents a card suit. Suits are decorative in War and never
// affect comparisons.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// BattleStrength returns the rank's value when two cards are compared
// head to head. Number cards count face value, J=11, Q=12, K=13 and
// Ace is high at 14.
func (r Rank) BattleStrength() int {
	return int(r)
}

// WarLength returns how many extra face-down cards each side banks when
// this rank starts a war. The ordering differs from BattleStrength:
// Ace banks a single card while J=12, Q=13 and K=14. Game trivia, not a
// bug.
func (r Rank) WarLength() int {
	switch r {
	case Ace:
		return 1
	case Jack:
		return 12
	case Queen:
		return 13
	case King:
		return 14
	default:
		return int(r)
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// BattleStrength returns the card's head-to-head comparison value.
func (c Card) BattleStrength() int {
	return c.Rank.BattleStrength()
}

// WarLength returns the number of extra cards banked when this card
// starts a war.
func (c Card) WarLength() int {
	return c.Rank.WarLength()
}
