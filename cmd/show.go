package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/chipdeck/internal/card"
	"github.com/arcanaland/chipdeck/internal/logs"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a card and the chips it scores",
	Long: `Show draws a card face in the terminal next to its attributes and a breakdown
of its chip value. Attributes are given by name; ranks also accept their corner
labels (A, 2-10, J, Q, K).

Examples:
  chipdeck show --rank ace --suit spades
  chipdeck show --rank 10 --suit hearts --enhancement bonus
  chipdeck show --rank K --suit diamonds --edition holographic --bonus 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := card.Spec{}
		spec.Rank, _ = cmd.Flags().GetString("rank")
		spec.Suit, _ = cmd.Flags().GetString("suit")
		spec.Edition, _ = cmd.Flags().GetString("edition")
		spec.Enhancement, _ = cmd.Flags().GetString("enhancement")
		spec.Seal, _ = cmd.Flags().GetString("seal")
		spec.MiscBonus, _ = cmd.Flags().GetUint64("bonus")

		c, err := spec.Build()
		if err != nil {
			return fmt.Errorf("invalid card: %w", err)
		}

		if _, err := setupColor(cmd); err != nil {
			return err
		}

		logs.Debug("showing card %s (%s)", c, c.ID)
		displayCard(cmd.OutOrStdout(), c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("rank", "r", "", "Card rank (ace, two, ..., king or A, 2-10, J, Q, K)")
	showCmd.Flags().StringP("suit", "s", "", "Card suit (clubs, diamonds, hearts, spades)")
	showCmd.Flags().StringP("edition", "e", "base", "Edition (base, foil, holographic, polychrome)")
	showCmd.Flags().String("enhancement", "none", "Enhancement (none, bonus, mult, wild, glass, steel, stone, gold, lucky)")
	showCmd.Flags().String("seal", "none", "Seal (none, red, blue, gold, purple)")
	showCmd.Flags().Uint64("bonus", 0, "Extra chips added to the card")
	_ = showCmd.MarkFlagRequired("rank")
	_ = showCmd.MarkFlagRequired("suit")
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// suitColor returns the color the suit's pips are printed in
func suitColor(s card.Suit) *colorize.Color {
	if s.IsRed() {
		return colorize.New(colorize.FgHiRed)
	}
	return colorize.New(colorize.FgHiWhite)
}

// editionColor returns the border color for a card's edition
func editionColor(e card.Edition) *colorize.Color {
	switch e {
	case card.EditionFoil:
		return colorize.New(colorize.FgCyan)
	case card.EditionHolographic:
		return colorize.New(colorize.FgMagenta)
	case card.EditionPolychrome:
		return colorize.New(colorize.FgYellow)
	}
	return colorize.New(colorize.FgWhite)
}

// cardLabel returns the short colored label for a card, e.g. "A♠"
func cardLabel(c *card.Card) string {
	return suitColor(c.Suit).Sprint(c.Rank.Short() + c.Suit.Symbol())
}

// cardFace renders a small card face as lines of text
func cardFace(c *card.Card) []string {
	const inner = 9

	border := editionColor(c.Edition)
	pips := suitColor(c.Suit)
	label := c.Rank.Short()

	row := func(content string, visible int) string {
		return border.Sprint("│") + content + strings.Repeat(" ", inner-visible) + border.Sprint("│")
	}
	centered := func(s string) string {
		pad := (inner - 1) / 2
		return strings.Repeat(" ", pad) + pips.Sprint(s)
	}

	middle := c.Suit.Symbol()
	if c.Enhancement == card.EnhancementStone {
		middle = "▓"
	}

	return []string{
		border.Sprint("┌" + strings.Repeat("─", inner) + "┐"),
		row(pips.Sprint(label), len(label)),
		row("", 0),
		row(centered(middle), (inner-1)/2+1),
		row("", 0),
		border.Sprint("│") + strings.Repeat(" ", inner-len(label)) + pips.Sprint(label) + border.Sprint("│"),
		border.Sprint("└" + strings.Repeat("─", inner) + "┘"),
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayCard prints the card face with its information to the right
func displayCard(w io.Writer, c *card.Card) {
	face := cardFace(c)
	faceWidth := 0
	for _, line := range face {
		faceWidth = max(faceWidth, len([]rune(stripAnsi(line))))
	}

	label := colorize.CyanString
	value := colorize.HiWhiteString

	b := c.Breakdown()
	infoLines := []string{
		label("Card:        ") + value("%s", c),
		label("ID:          ") + value("%s", c.ID),
		label("Suit:        ") + value("%s · ", c.Suit.Title()) + suitColor(c.Suit).Sprint(c.Suit.Symbol()),
		label("Edition:     ") + editionColor(c.Edition).Sprint(c.Edition.Title()),
		label("Enhancement: ") + value("%s", c.Enhancement.Title()),
		label("Seal:        ") + value("%s", c.Seal.Title()),
		"",
		label("Chips:       ") + value("%d", b.Total()),
		fmt.Sprintf("  rank %d + enhancement %d + edition %d + bonus %d", b.Rank, b.Enhancement, b.Edition, b.Misc),
	}

	spacing := 4
	infoStartCol := faceWidth + spacing

	infoWidth := terminalWidth() - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}
	infoLines = append(infoLines, "")
	infoLines = append(infoLines, wrapText(c.Describe(), infoWidth)...)

	fmt.Fprintln(w)

	maxLines := max(len(face), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(face) {
			fmt.Fprint(w, face[i])
			visibleWidth := len([]rune(stripAnsi(face[i])))
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
