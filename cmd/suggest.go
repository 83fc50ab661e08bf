package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestDescription string

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest <listing title>",
	Short: "Ask the configured AI provider for a category, then match it",
	Long: `Sends the listing title (and optional description) to the configured
suggestion provider, then runs the suggested name through the matcher to
decide whether it maps onto an existing category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if appInstance.Suggester == nil {
			return fmt.Errorf("no suggestion provider is configured (set suggestion.provider to openai or gemini)")
		}

		suggestion, match, err := appInstance.CategoryService.SuggestAndMatch(cmd.Context(), args[0], suggestDescription)
		if err != nil {
			return err
		}

		fmt.Printf("Suggested category: %s (model confidence %.2f)\n", suggestion.Category, suggestion.Confidence)
		printMatchResult(suggestion.Category, match)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestDescription, "description", "", "Listing description passed to the suggester")
}
