package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/chipdeck/internal/card"
	"github.com/arcanaland/chipdeck/internal/config"
	"github.com/arcanaland/chipdeck/internal/deck"
	"github.com/arcanaland/chipdeck/internal/logs"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build a standard deck and draw from it",
	Long:  `Commands that build a standard 52-card deck (plus any extra cards from the config) and draw from it.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards of a fresh deck, top card last",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupColor(cmd)
		if err != nil {
			return err
		}

		d, err := buildDeck(cmd, cfg)
		if err != nil {
			return err
		}

		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			d.Shuffle()
		}

		w := cmd.OutOrStdout()
		for i, c := range d.Cards() {
			fmt.Fprintf(w, "%3d  ", i+1)
			printCardLine(w, c, false)
		}
		fmt.Fprintf(w, "\n%d cards, %d chips in total\n", d.Len(), d.ChipTotal())
		return nil
	},
}

// deckDrawCmd represents the deck draw command
var deckDrawCmd = &cobra.Command{
	Use:   "draw [count]",
	Short: "Shuffle a fresh deck and draw cards from the top",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupColor(cmd)
		if err != nil {
			return err
		}

		count := cfg.DrawCount
		if len(args) == 1 {
			count, err = strconv.Atoi(args[0])
			if err != nil || count < 0 {
				return fmt.Errorf("invalid card count: %s", args[0])
			}
		}

		d, err := buildDeck(cmd, cfg)
		if err != nil {
			return err
		}
		d.Shuffle()

		w := cmd.OutOrStdout()
		random, _ := cmd.Flags().GetBool("random")

		var hand []*card.Card
		if random {
			for i := 0; i < count; i++ {
				c, err := d.TakeRandom()
				if errors.Is(err, deck.ErrEmpty) {
					logs.Warn("deck ran out after %d cards", i)
					break
				}
				if err != nil {
					return err
				}
				hand = append(hand, c)
			}
		} else {
			hand = d.TakeTop(count)
		}

		if len(hand) < count {
			fmt.Fprintf(w, "Only %d cards left to draw.\n", len(hand))
		}

		var total uint64
		for _, c := range hand {
			printCardLine(w, c, false)
			total += c.ChipValue()
		}

		fmt.Fprintf(w, "\nHand: %d cards, %s chips\n", len(hand), colorize.HiYellowString("%d", total))
		fmt.Fprintf(w, "Deck now has %d cards\n", d.Len())
		return nil
	},
}

// deckDemoCmd represents the deck demo command
var deckDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every deck operation on a standard deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setupColor(cmd)
		if err != nil {
			return err
		}

		// Extra cards from the config are added later in the demo rather than up front.
		extra, err := cfg.BuildExtraCards()
		if err != nil {
			return err
		}
		cfg.ExtraCards = nil

		d, err := buildDeck(cmd, cfg)
		if err != nil {
			return err
		}

		return runDemo(cmd.OutOrStdout(), d, extra)
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckDrawCmd)
	deckCmd.AddCommand(deckDemoCmd)

	deckListCmd.Flags().Bool("shuffle", false, "Shuffle the deck before listing")
	deckDrawCmd.Flags().Bool("random", false, "Draw each card from a random position instead of the top")
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, colorize.HiCyanString("=== %s ===", title))
}

// runDemo exercises each deck operation in turn and reports what happened
func runDemo(w io.Writer, d *deck.Deck, extra []*card.Card) error {
	heading(w, "Creating a Standard Deck")
	fmt.Fprintf(w, "Deck has %d cards\n\n", d.Len())

	heading(w, "First 5 cards (before shuffle)")
	for _, c := range firstN(d.Cards(), 5) {
		printCardLine(w, c, false)
	}
	fmt.Fprintln(w)

	heading(w, "Shuffling the deck")
	d.Shuffle()
	fmt.Fprintf(w, "Deck shuffled!\n\n")

	heading(w, "First 5 cards (after shuffle)")
	for _, c := range firstN(d.Cards(), 5) {
		printCardLine(w, c, false)
	}
	fmt.Fprintln(w)

	heading(w, "Taking top 5 cards")
	hand := d.TakeTop(5)
	fmt.Fprintf(w, "Drew %d cards:\n", len(hand))
	for _, c := range hand {
		fmt.Fprint(w, "  ")
		printCardLine(w, c, true)
	}
	fmt.Fprintf(w, "Deck now has %d cards\n\n", d.Len())

	heading(w, "Taking a random card")
	if c, err := d.TakeRandom(); err == nil {
		fmt.Fprintf(w, "Random card: %s worth %d chips\n", c, c.ChipValue())
		fmt.Fprintf(w, "Deck now has %d cards\n\n", d.Len())
	} else {
		fmt.Fprintf(w, "No card available: %v\n\n", err)
	}

	heading(w, "Taking a specific card by ID")
	if !d.IsEmpty() {
		target := d.Cards()[0]
		c, err := d.TakeSpecific(target.ID)
		if err != nil {
			return fmt.Errorf("taking %s: %w", target, err)
		}
		fmt.Fprintf(w, "Removed specific card: %s\n", c)
		fmt.Fprintf(w, "ID was: %s\n", c.ID)
		fmt.Fprintf(w, "Deck now has %d cards\n\n", d.Len())
	}

	heading(w, "Adding a card back to the deck")
	added := card.New(card.Ace, card.Spades)
	added.Edition = card.EditionFoil
	added.Enhancement = card.EnhancementGold
	added.Seal = card.SealRed
	for _, c := range append([]*card.Card{added}, extra...) {
		fmt.Fprintf(w, "Adding: %s (%s, %s, %s seal)\n", c, c.Edition.Title(), c.Enhancement.Title(), c.Seal.Title())
		d.AddCard(c)
	}
	fmt.Fprintf(w, "Deck now has %d cards\n\n", d.Len())

	heading(w, "Last card in deck (the one we just added)")
	if top := d.Peek(1); len(top) == 1 {
		fmt.Fprintf(w, "  It is a %s\n", top[0].Describe())
		fmt.Fprintf(w, "  It scores %d chips\n", top[0].ChipValue())
	}

	fmt.Fprintln(w)
	heading(w, fmt.Sprintf("Final deck size: %d cards", d.Len()))
	return nil
}

// printCardLine prints one card with its attributes and chips
func printCardLine(w io.Writer, c *card.Card, withID bool) {
	label := cardLabel(c)
	pad := max(0, 4-len([]rune(stripAnsi(label))))
	line := label + strings.Repeat(" ", pad) + fmt.Sprintf(" %-18s", c.String())
	if c.Edition != card.EditionBase {
		line += " " + editionColor(c.Edition).Sprint(c.Edition.Title())
	}
	if c.Enhancement != card.EnhancementNone {
		line += " " + c.Enhancement.Title()
	}
	if c.Seal != card.SealNone {
		line += " " + c.Seal.Title() + " seal"
	}
	line += fmt.Sprintf(" (%d chips)", c.ChipValue())
	if withID {
		line += fmt.Sprintf(" [ID: %s]", c.ID)
	}
	fmt.Fprintln(w, line)
}

func firstN(cards []*card.Card, n int) []*card.Card {
	return cards[:min(n, len(cards))]
}

// setupColor loads the config and turns colored output on or off
func setupColor(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	colorize.NoColor = noColor || !cfg.Color || !term.IsTerminal(int(os.Stdout.Fd()))
	return cfg, nil
}

// buildDeck creates the standard deck plus any extra cards from the config,
// seeded from the --seed flag or the config when either is set
func buildDeck(cmd *cobra.Command, cfg *config.Config) (*deck.Deck, error) {
	opts := []deck.Option{deck.WithLogger(logs.Logger())}

	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed != 0 {
		logs.Debug("using seed %d", seed)
		opts = append(opts, deck.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}

	d := deck.NewStandard(opts...)

	extra, err := cfg.BuildExtraCards()
	if err != nil {
		return nil, err
	}
	for _, c := range extra {
		d.AddCard(c)
	}

	return d, nil
}
