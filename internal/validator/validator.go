package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/chipdeck/internal/card"
	"github.com/arcanaland/chipdeck/internal/config"
)

// StandardDeckSize is the number of cards in a fresh standard deck.
const StandardDeckSize = 52

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config config.Config
	meta   toml.MetaData
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks the config file. A returned error means the file could not
// be read at all; problems with its contents are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decodeConfig(); err != nil {
		return v.Results, err
	}

	v.validateKeys()
	v.validateDrawCount()
	v.validateExtraCards()

	return v.Results, nil
}

func (v *Validator) decodeConfig() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	v.config = *config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, &v.config)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}
	v.meta = meta
	return nil
}

// validateKeys warns about keys the config does not know, usually typos
func (v *Validator) validateKeys() {
	for _, key := range v.meta.Undecoded() {
		v.warnf("unknown key: %s", key.String())
	}
}

func (v *Validator) validateDrawCount() {
	n := v.config.DrawCount
	available := StandardDeckSize + len(v.config.ExtraCards)

	switch {
	case n < 0:
		v.errorf("draw_count must not be negative (got %d)", n)
	case n == 0:
		v.warnf("draw_count is 0; draw will return no cards unless a count is given")
	case n > available:
		v.warnf("draw_count %d exceeds the %d cards in the deck; draws will return the whole deck", n, available)
	}
}

func (v *Validator) validateExtraCards() {
	seen := make(map[string]int)

	for i, spec := range v.config.ExtraCards {
		field := fmt.Sprintf("extra_cards[%d]", i)

		if spec.Rank == "" {
			v.errorf("%s.rank is required", field)
		}
		if spec.Suit == "" {
			v.errorf("%s.suit is required", field)
		}
		if spec.Rank == "" || spec.Suit == "" {
			continue
		}

		c, err := spec.Build()
		if err != nil {
			v.errorf("%s: %v", field, err)
			continue
		}

		// Stone replaces rank chips, so the rank only matters for display.
		if c.Enhancement == card.EnhancementStone {
			v.warnf("%s: stone enhancement ignores the chips of %s", field, c.Rank.Title())
		}

		key := strings.ToLower(fmt.Sprintf("%s/%s/%s/%s/%s/%d",
			c.Rank, c.Suit, c.Edition, c.Enhancement, c.Seal, c.MiscBonus))
		if prev, ok := seen[key]; ok {
			v.warnf("%s duplicates extra_cards[%d] (%s)", field, prev, c)
		} else {
			seen[key] = i
		}
	}
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
