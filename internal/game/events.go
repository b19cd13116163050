package game

import "github.com/lox/warsim/internal/deck"

// EventType identifies an event variant with type safety
type EventType string

const (
	EventTypeGameOver     EventType = "game_over"
	EventTypeShortBattle  EventType = "short_battle"
	EventTypeWarStart     EventType = "war_start"
	EventTypeWarShortened EventType = "war_shortened"
	EventTypeWarEnd       EventType = "war_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is a record of something that happened during a turn. The set
// of variants is closed: the unexported marker method keeps outside
// packages from adding implementations, so consumers can switch
// exhaustively over the concrete types. Events are owned by the caller
// of Step and never mutated after creation.
type Event interface {
	Type() EventType
	isEvent()
}

// GameOverEvent is emitted when a player runs out of cards, naming the
// other player as winner.
type GameOverEvent struct {
	Winner int
}

func (GameOverEvent) Type() EventType { return EventTypeGameOver }
func (GameOverEvent) isEvent()        {}

// ShortBattleEvent records a turn where the two drawn cards had
// different ranks. Pot holds the two cards in the order they were
// awarded, which is randomized and only matters for presentation.
type ShortBattleEvent struct {
	Winner      int
	WinningCard deck.Card
	LosingCard  deck.Card
	Pot         []deck.Card
}

func (ShortBattleEvent) Type() EventType { return EventTypeShortBattle }
func (ShortBattleEvent) isEvent()        {}

// WarStartEvent records the beginning of a war round: the two tied top
// cards and how many extra cards each side expects to bank.
type WarStartEvent struct {
	TopCards       [2]deck.Card
	ExpectedLength int
}

func (WarStartEvent) Type() EventType { return EventTypeWarStart }
func (WarStartEvent) isEvent()        {}

// WarShortenedEvent is emitted when a player runs out of cards before
// the expected extra draws are exhausted. ActualLength is the number of
// extra cards each side actually banked.
type WarShortenedEvent struct {
	ShortPlayer    int
	ActualLength   int
	ExpectedLength int
}

func (WarShortenedEvent) Type() EventType { return EventTypeWarShortened }
func (WarShortenedEvent) isEvent()        {}

// WarEndEvent records the resolution of a war: the winner and the two
// cards whose comparison (or a player's elimination) decided it.
type WarEndEvent struct {
	Winner        int
	FinalTopCards [2]deck.Card
}

func (WarEndEvent) Type() EventType { return EventTypeWarEnd }
func (WarEndEvent) isEvent()        {}
