package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/chipdeck/internal/logs"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "chipdeck",
	Short: "Tool for building, drawing from and scoring playing card decks",
	Long: `Chipdeck is a command-line tool for working with a 52-card deck whose cards carry
editions, enhancements and seals, and for computing the chips each card scores.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logs.Init(verbose)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().Uint64("seed", 0, "Seed for shuffles and random draws (0 uses the config seed, or a random one)")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
