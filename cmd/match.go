package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"taxo/pkg/matching"
)

var matchThreshold float64

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <suggestion>",
	Short: "Match a suggested category name against the taxonomy snapshot",
	Long: `Scores the suggestion against every existing category and reports the
best match, a confidence percentage, a create-vs-reuse recommendation,
and a shortlist of near matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		threshold := appInstance.CategoryService.Threshold()
		if cmd.Flags().Changed("threshold") {
			threshold = matchThreshold
		}

		candidates, err := appInstance.Taxonomy.Snapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load taxonomy snapshot: %w", err)
		}

		printMatchResult(args[0], matching.FindBestMatch(args[0], candidates, threshold))
		return nil
	},
}

func printMatchResult(suggestion string, result matching.MatchResult) {
	if result.Match != nil {
		fmt.Printf("Best match for %q: %s (confidence %d%%)\n", suggestion, result.Match.Name, result.Confidence)
	} else {
		fmt.Printf("No usable match for %q\n", suggestion)
	}

	if result.ShouldCreateNew {
		color.Yellow("Recommendation: create a new category")
	} else {
		color.Green("Recommendation: reuse %q", result.Match.Name)
	}

	if len(result.SimilarCategories) == 0 {
		return
	}

	fmt.Println("Similar categories:")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Similarity"})
	table.SetBorder(true)
	for _, similar := range result.SimilarCategories {
		table.Append([]string{similar.Name, strconv.Itoa(similar.Similarity) + "%"})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().Float64Var(&matchThreshold, "threshold", matching.DefaultThreshold, "Minimum similarity score to recommend reuse")
}
