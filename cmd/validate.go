package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <name>",
	Short: "Validate a candidate category name against the naming rules",
	Long: `Checks length bounds, allowed characters, title casing, and brand
agnosticism. All violations are reported at once so the name can be fixed
in a single pass. Exits non-zero when the name is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		result := appInstance.CategoryService.Validate(args[0])

		if result.Valid {
			color.Green("%q is a valid category name", args[0])
		} else {
			color.Red("%q is not a valid category name:", args[0])
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
		for _, suggestion := range result.Suggestions {
			color.Yellow("  suggestion: %s", suggestion)
		}

		if !result.Valid {
			// Silence cobra's usage dump; the errors above are the message.
			cmd.SilenceUsage = true
			return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
