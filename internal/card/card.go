package card

import (
	"fmt"

	"github.com/google/uuid"
)

// Card represents a single playing card. Fields other than ID may be
// changed in place by whoever currently holds the card.
type Card struct {
	ID          uuid.UUID // Assigned once at creation
	Rank        Rank
	Suit        Suit
	Edition     Edition
	Enhancement Enhancement
	Seal        Seal
	MiscBonus   uint64 // Flat chips added on top of everything else
}

// New creates a plain card: base edition, no enhancement, no seal.
func New(rank Rank, suit Suit) *Card {
	return &Card{
		ID:          NewID(),
		Rank:        rank,
		Suit:        suit,
		Edition:     EditionBase,
		Enhancement: EnhancementNone,
		Seal:        SealNone,
	}
}

// NewID returns a fresh time-ordered identity for a card.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Breakdown itemizes where a card's chips come from.
type Breakdown struct {
	Rank        uint64
	Enhancement uint64
	Edition     uint64
	Misc        uint64
}

func (b Breakdown) Total() uint64 {
	return b.Rank + b.Enhancement + b.Edition + b.Misc
}

// Breakdown computes the chip contributions of the card's current attributes.
func (c *Card) Breakdown() Breakdown {
	b := Breakdown{
		Rank:    c.Rank.Chips(),
		Edition: c.Edition.Chips(),
		Misc:    c.MiscBonus,
	}

	switch c.Enhancement {
	case EnhancementBonus:
		b.Enhancement = 30
	case EnhancementStone:
		// Stone cards score a flat 50 in place of their rank.
		b.Rank = 0
		b.Enhancement = 50
	}

	return b
}

// ChipValue computes the chips this card scores with its current attributes.
func (c *Card) ChipValue() uint64 {
	return c.Breakdown().Total()
}

// String returns e.g. "Ace of Spades"
func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank.Title(), c.Suit.Title())
}

// Describe returns a one-line description including edition, enhancement and seal.
func (c *Card) Describe() string {
	return fmt.Sprintf("%s edition %s of %s, %s enhancement, %s seal",
		c.Edition.Title(), c.Rank.Title(), c.Suit.Title(), c.Enhancement.Title(), c.Seal.Title())
}
