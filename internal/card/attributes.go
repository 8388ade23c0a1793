package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAttribute is returned when a name cannot be parsed into a card attribute.
var ErrUnknownAttribute = errors.New("unknown card attribute")

// Suit of a card
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

// AllSuits returns the suits in standard deck order.
func AllSuits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string { return strings.ToLower(s.Title()) }

func (s Suit) Title() string { return nameOf(suitNames, int(s), "Suit") }

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// ParseSuit parses a suit name such as "hearts" (case-insensitive).
func ParseSuit(name string) (Suit, error) {
	i, err := parseName(suitNames, name, "suit")
	return Suit(i), err
}

// Rank of a card. Ace is the lowest for ordering purposes even though it
// scores the most chips.
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

var rankNames = []string{
	"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Jack", "Queen", "King",
}

var rankShort = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// AllRanks returns the ranks in ascending order.
func AllRanks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func (r Rank) String() string { return strings.ToLower(r.Title()) }

func (r Rank) Title() string { return nameOf(rankNames, int(r), "Rank") }

// Short returns the index label printed in the card corner (A, 2..10, J, Q, K).
func (r Rank) Short() string { return nameOf(rankShort, int(r), "?") }

// Chips returns the base chip value of the rank.
func (r Rank) Chips() uint64 {
	switch {
	case r == Ace:
		return 11
	case r >= Two && r <= Nine:
		return uint64(r)
	case r >= Ten && r <= King:
		return 10
	}
	return 0
}

// ParseRank parses a rank by name ("queen") or corner label ("Q", "10").
func ParseRank(name string) (Rank, error) {
	if i, err := parseName(rankShort, name, "rank"); err == nil {
		return Rank(i), nil
	}
	i, err := parseName(rankNames, name, "rank")
	return Rank(i), err
}

// Edition of a card; adds a flat chip bonus.
type Edition int

const (
	EditionBase Edition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
)

var editionNames = []string{"Base", "Foil", "Holographic", "Polychrome"}

func AllEditions() []Edition {
	return []Edition{EditionBase, EditionFoil, EditionHolographic, EditionPolychrome}
}

func (e Edition) String() string { return strings.ToLower(e.Title()) }

func (e Edition) Title() string { return nameOf(editionNames, int(e), "Edition") }

// Chips returns the edition's chip bonus.
func (e Edition) Chips() uint64 {
	switch e {
	case EditionFoil:
		return 50
	case EditionHolographic:
		return 10
	}
	return 0
}

func ParseEdition(name string) (Edition, error) {
	i, err := parseName(editionNames, name, "edition")
	return Edition(i), err
}

// Enhancement of a card. Only Bonus and Stone change chip value; the rest
// are carried for game rules built on top of this package.
type Enhancement int

const (
	EnhancementNone Enhancement = iota
	EnhancementBonus
	EnhancementMult
	EnhancementWild
	EnhancementGlass
	EnhancementSteel
	EnhancementStone
	EnhancementGold
	EnhancementLucky
)

var enhancementNames = []string{"None", "Bonus", "Mult", "Wild", "Glass", "Steel", "Stone", "Gold", "Lucky"}

func AllEnhancements() []Enhancement {
	all := make([]Enhancement, len(enhancementNames))
	for i := range all {
		all[i] = Enhancement(i)
	}
	return all
}

func (e Enhancement) String() string { return strings.ToLower(e.Title()) }

func (e Enhancement) Title() string { return nameOf(enhancementNames, int(e), "Enhancement") }

func ParseEnhancement(name string) (Enhancement, error) {
	i, err := parseName(enhancementNames, name, "enhancement")
	return Enhancement(i), err
}

// Seal of a card. No scoring effect.
type Seal int

const (
	SealNone Seal = iota
	SealRed
	SealBlue
	SealGold
	SealPurple
)

var sealNames = []string{"None", "Red", "Blue", "Gold", "Purple"}

func AllSeals() []Seal {
	return []Seal{SealNone, SealRed, SealBlue, SealGold, SealPurple}
}

func (s Seal) String() string { return strings.ToLower(s.Title()) }

func (s Seal) Title() string { return nameOf(sealNames, int(s), "Seal") }

func ParseSeal(name string) (Seal, error) {
	i, err := parseName(sealNames, name, "seal")
	return Seal(i), err
}

// nameOf looks up a display name, falling back to "<kind>(<n>)" when out of range.
func nameOf(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) || names[i] == "" {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

func parseName(names []string, name, kind string) (int, error) {
	name = strings.TrimSpace(name)
	for i, n := range names {
		if n != "" && strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownAttribute, kind, name)
}
