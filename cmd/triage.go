package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// triageCmd represents the triage command
var triageCmd = &cobra.Command{
	Use:   "triage <suggestion1> [suggestion2...]",
	Short: "Bucket category suggestions into create / reuse / review groups",
	Long: `Batch-matches the suggestions and partitions the results the way an
admin review dashboard would: reuse an existing category, create a new
one, or queue for human review.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		report, err := appInstance.CategoryService.TriageSuggestions(cmd.Context(), args)
		if err != nil {
			return fmt.Errorf("failed to triage suggestions: %w", err)
		}

		color.Green("Reuse existing (%d):", len(report.ShouldReuse))
		if len(report.ShouldReuse) > 0 {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Suggested", "Existing"})
			for _, pair := range report.ShouldReuse {
				table.Append([]string{pair.Suggested, pair.Existing})
			}
			table.Render()
		}

		color.Yellow("Needs review (%d):", len(report.NeedsReview))
		if len(report.NeedsReview) > 0 {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Suggested", "Confidence"})
			for _, item := range report.NeedsReview {
				table.Append([]string{item.Suggested, strconv.Itoa(item.Confidence) + "%"})
			}
			table.Render()
		}

		color.Cyan("Create new (%d):", len(report.ShouldCreateNew))
		for _, name := range report.ShouldCreateNew {
			fmt.Printf("  - %s\n", name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(triageCmd)
}
