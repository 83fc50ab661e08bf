package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <suggestion1> [suggestion2...]",
	Short: "Match multiple category suggestions in one pass",
	Long: `Matches every suggestion independently against the same taxonomy
snapshot and prints one row per suggestion. Duplicate suggestions yield
identical rows.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		results, err := appInstance.CategoryService.MatchBatch(cmd.Context(), args)
		if err != nil {
			return fmt.Errorf("failed to batch match: %w", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Suggestion", "Best Match", "Confidence", "Decision"})
		table.SetBorder(true)
		table.SetRowLine(true)

		for i, result := range results {
			matchName := "-"
			if result.Match != nil {
				matchName = result.Match.Name
			}
			decision := "reuse"
			if result.ShouldCreateNew {
				decision = "create new"
			}
			table.Append([]string{
				args[i],
				matchName,
				strconv.Itoa(result.Confidence) + "%",
				decision,
			})
		}

		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
