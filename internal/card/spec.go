package card

import "fmt"

// Spec describes a customized card by attribute names, as found in the
// config file or on the command line. Empty optional fields take the
// defaults of New.
type Spec struct {
	Rank        string `toml:"rank"`
	Suit        string `toml:"suit"`
	Edition     string `toml:"edition,omitempty"`
	Enhancement string `toml:"enhancement,omitempty"`
	Seal        string `toml:"seal,omitempty"`
	MiscBonus   uint64 `toml:"misc_bonus,omitempty"`
}

// Build parses the spec into a new card with a fresh identity.
func (s Spec) Build() (*Card, error) {
	rank, err := ParseRank(s.Rank)
	if err != nil {
		return nil, err
	}
	suit, err := ParseSuit(s.Suit)
	if err != nil {
		return nil, err
	}

	c := New(rank, suit)
	c.MiscBonus = s.MiscBonus

	if s.Edition != "" {
		if c.Edition, err = ParseEdition(s.Edition); err != nil {
			return nil, err
		}
	}
	if s.Enhancement != "" {
		if c.Enhancement, err = ParseEnhancement(s.Enhancement); err != nil {
			return nil, err
		}
	}
	if s.Seal != "" {
		if c.Seal, err = ParseSeal(s.Seal); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// String returns the spec in a compact form for error messages.
func (s Spec) String() string {
	return fmt.Sprintf("%s of %s", s.Rank, s.Suit)
}
