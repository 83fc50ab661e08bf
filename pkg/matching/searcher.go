package matching

import (
	"math"
	"sort"
	"strings"
)

// FindBestMatch scans candidates for the category closest to suggestion
// and converts the best score into a confidence percentage plus a binary
// create-vs-reuse recommendation against threshold.
//
// A blank suggestion or an empty candidate set yields a definitive
// "create new" result with no match — that is a normal outcome, not an
// error. An exact match (case-insensitive, ignoring surrounding
// whitespace) short-circuits the scan with confidence 100; if the
// snapshot contains duplicate names the first one in iteration order
// wins. The shortlist collects up to three candidates scoring at least
// 0.5, sorted by similarity descending, independent of the threshold
// decision.
func FindBestMatch(suggestion string, candidates []Category, threshold float64) MatchResult {
	if strings.TrimSpace(suggestion) == "" || len(candidates) == 0 {
		return MatchResult{Confidence: 0, ShouldCreateNew: true}
	}

	normalized := normalize(suggestion)

	var bestMatch *Category
	bestScore := 0.0
	var shortlist []SimilarCategory

	for i := range candidates {
		candidate := &candidates[i]

		if normalize(candidate.Name) == normalized {
			return MatchResult{
				Match:           candidate,
				Confidence:      100,
				ShouldCreateNew: false,
			}
		}

		score := Similarity(suggestion, candidate.Name)
		if score >= shortlistFloor {
			shortlist = append(shortlist, SimilarCategory{
				Name:       candidate.Name,
				Similarity: toPercent(score),
			})
		}
		// Strictly greater keeps the first-seen candidate on ties.
		if score > bestScore {
			bestScore = score
			bestMatch = candidate
		}
	}

	sort.SliceStable(shortlist, func(i, j int) bool {
		return shortlist[i].Similarity > shortlist[j].Similarity
	})
	if len(shortlist) > shortlistLimit {
		shortlist = shortlist[:shortlistLimit]
	}

	return MatchResult{
		Match:             bestMatch,
		Confidence:        toPercent(bestScore),
		ShouldCreateNew:   bestScore < threshold,
		SimilarCategories: shortlist,
	}
}

// BatchMatch runs FindBestMatch for each suggestion against the same
// candidate snapshot. Results correspond index-for-index to suggestions;
// duplicate suggestions yield identical results because nothing is
// mutated between items.
func BatchMatch(suggestions []string, candidates []Category, threshold float64) []MatchResult {
	results := make([]MatchResult, len(suggestions))
	for i, suggestion := range suggestions {
		results[i] = FindBestMatch(suggestion, candidates, threshold)
	}
	return results
}

func toPercent(score float64) int {
	return int(math.Round(score * 100))
}
