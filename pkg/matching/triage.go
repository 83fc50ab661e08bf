package matching

// reviewBar is the confidence below which a reuse recommendation is
// routed to a human instead of applied directly.
const reviewBar = 80

// Triage partitions match results into the three actions an operator
// dashboard cares about: create the category, reuse the match as-is, or
// queue it for human review. Results flagged ShouldCreateNew land in the
// create bucket under the matched name, or "Unknown" when no match was
// reported at all.
func Triage(results []MatchResult) TriageReport {
	report := TriageReport{
		ShouldCreateNew: []string{},
		ShouldReuse:     []ReusePair{},
		NeedsReview:     []ReviewItem{},
	}

	for _, result := range results {
		switch {
		case result.ShouldCreateNew:
			name := "Unknown"
			if result.Match != nil {
				name = result.Match.Name
			}
			report.ShouldCreateNew = append(report.ShouldCreateNew, name)
		case result.Match != nil && result.Confidence >= reviewBar:
			report.ShouldReuse = append(report.ShouldReuse, ReusePair{
				Suggested: result.Match.Name,
				Existing:  result.Match.Name,
			})
		case result.Match != nil:
			report.NeedsReview = append(report.NeedsReview, ReviewItem{
				Suggested:  result.Match.Name,
				Confidence: result.Confidence,
			})
		}
	}
	return report
}
