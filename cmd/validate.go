package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/chipdeck/internal/config"
	"github.com/arcanaland/chipdeck/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a chipdeck config file",
	Long: `Validate checks a config file for unknown keys, out-of-range settings and extra
cards with unrecognized attributes. Without a path it checks your own config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigFilePath()
		if len(args) == 1 {
			configPath = args[0]
		}

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", configPath)
		}

		v := validator.NewValidator(configPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Validation Results:")
		fmt.Fprintln(w, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(w, "✅ Config '%s' is valid.\n", configPath)
		} else {
			fmt.Fprintf(w, "❌ Config '%s' has %d validation errors:\n", configPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(w, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(w, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(w, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
