// Package suggester produces free-text category name suggestions for
// marketplace listings. Suggestions are raw upstream input for the
// matching engine, which decides whether they map onto an existing
// taxonomy entry.
package suggester

import "context"

// SuggestionRequest holds the listing text plus the current category
// names so the model can prefer existing vocabulary.
type SuggestionRequest struct {
	Title              string
	Description        string
	ExistingCategories []string
}

// SuggestionResult is the model's proposed category name.
type SuggestionResult struct {
	Category   string
	Confidence float64
}

// CategorySuggester proposes a category name for a listing.
type CategorySuggester interface {
	Suggest(ctx context.Context, req SuggestionRequest) (SuggestionResult, error)
}
