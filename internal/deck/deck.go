package deck

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/arcanaland/chipdeck/internal/card"
	"github.com/arcanaland/chipdeck/internal/logs"
)

var (
	// ErrNotFound is returned by TakeSpecific when no card has the requested ID.
	ErrNotFound = errors.New("card not found in deck")
	// ErrEmpty is returned by TakeRandom when the deck has no cards.
	ErrEmpty = errors.New("deck is empty")
)

// Deck is an ordered pile of cards. The last card in the pile is the top.
// A Deck is not safe for concurrent use.
type Deck struct {
	cards  []*card.Card
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Deck
type Option func(*Deck)

// WithRand makes the deck draw its randomness from r, e.g. a seeded
// generator in tests.
func WithRand(r *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = r
	}
}

// WithLogger logs deck operations at debug level to l.
func WithLogger(l *log.Logger) Option {
	return func(d *Deck) {
		d.logger = l
	}
}

// New creates an empty deck
func New(opts ...Option) *Deck {
	d := &Deck{}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if d.logger == nil {
		d.logger = logs.Discard()
	}
	return d
}

// NewStandard creates a deck holding the 52 standard cards, ordered by suit
// (clubs, diamonds, hearts, spades) and then by rank from ace to king.
func NewStandard(opts ...Option) *Deck {
	d := New(opts...)
	d.cards = make([]*card.Card, 0, 52)

	for _, suit := range card.AllSuits() {
		for _, rank := range card.AllRanks() {
			d.cards = append(d.cards, card.New(rank, suit))
		}
	}

	d.logger.Debug("created standard deck", "cards", len(d.cards))
	return d
}

// Shuffle puts the cards into a uniformly random order.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.logger.Debug("shuffled deck", "cards", len(d.cards))
}

// AddCard puts c on top of the deck.
func (d *Deck) AddCard(c *card.Card) {
	d.cards = append(d.cards, c)
	d.logger.Debug("added card", "card", c, "id", c.ID)
}

// TakeTop removes and returns the top amount cards, keeping their order.
// Asking for more cards than the deck holds returns all of them.
func (d *Deck) TakeTop(amount int) []*card.Card {
	amount = d.clamp(amount)
	split := len(d.cards) - amount

	taken := slices.Clone(d.cards[split:])
	clear(d.cards[split:])
	d.cards = d.cards[:split]

	d.logger.Debug("took top cards", "taken", len(taken), "remaining", len(d.cards))
	return taken
}

// TakeSpecific removes and returns the card with the given ID.
func (d *Deck) TakeSpecific(id uuid.UUID) (*card.Card, error) {
	idx := slices.IndexFunc(d.cards, func(c *card.Card) bool {
		return c.ID == id
	})
	if idx < 0 {
		return nil, ErrNotFound
	}

	c := d.removeAt(idx)
	d.logger.Debug("took specific card", "card", c, "id", id)
	return c, nil
}

// TakeRandom removes and returns a card chosen uniformly at random.
func (d *Deck) TakeRandom() (*card.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmpty
	}

	c := d.removeAt(d.rng.IntN(len(d.cards)))
	d.logger.Debug("took random card", "card", c, "remaining", len(d.cards))
	return c, nil
}

// Peek returns the top amount cards without removing them, clamped like TakeTop.
func (d *Deck) Peek(amount int) []*card.Card {
	return slices.Clone(d.cards[len(d.cards)-d.clamp(amount):])
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether the deck has no cards
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns the cards from bottom to top. The returned slice is a copy,
// so changing it does not change which cards the deck holds.
func (d *Deck) Cards() []*card.Card {
	return slices.Clone(d.cards)
}

// ChipTotal sums the chip values of every card in the deck.
func (d *Deck) ChipTotal() uint64 {
	var total uint64
	for _, c := range d.cards {
		total += c.ChipValue()
	}
	return total
}

func (d *Deck) clamp(amount int) int {
	return max(0, min(amount, len(d.cards)))
}

func (d *Deck) removeAt(idx int) *card.Card {
	c := d.cards[idx]
	d.cards = slices.Delete(d.cards, idx, idx+1)
	return c
}
