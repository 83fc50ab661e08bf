package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"taxo/internal/taxonomy"
	"taxo/pkg/matching"
	"taxo/pkg/suggester"
	"taxo/pkg/validation"
)

// CategoryService fronts the matching engine with snapshot loading,
// logging, and the optional AI suggestion pipeline. The engine itself
// stays pure; every fallible edge (snapshot read, suggester call) lives
// here.
type CategoryService struct {
	Snapshot  taxonomy.SnapshotProvider
	Validator *validation.Validator
	Suggester suggester.CategorySuggester // nil when no provider is configured

	threshold float64
}

func NewCategoryService(snapshot taxonomy.SnapshotProvider, validator *validation.Validator, sugg suggester.CategorySuggester, threshold float64) *CategoryService {
	if threshold <= 0 {
		threshold = matching.DefaultThreshold
	}
	return &CategoryService{
		Snapshot:  snapshot,
		Validator: validator,
		Suggester: sugg,
		threshold: threshold,
	}
}

// Threshold returns the configured reuse threshold.
func (s *CategoryService) Threshold() float64 { return s.threshold }

// Match finds the best existing category for one suggestion.
func (s *CategoryService) Match(ctx context.Context, suggestion string) (matching.MatchResult, error) {
	candidates, err := s.Snapshot.Snapshot(ctx)
	if err != nil {
		return matching.MatchResult{}, err
	}

	result := matching.FindBestMatch(suggestion, candidates, s.threshold)
	log.Debugf("Matched %q: confidence=%d createNew=%v shortlist=%d",
		suggestion, result.Confidence, result.ShouldCreateNew, len(result.SimilarCategories))
	return result, nil
}

// MatchBatch matches each suggestion independently against the same
// snapshot. Results correspond index-for-index to suggestions.
func (s *CategoryService) MatchBatch(ctx context.Context, suggestions []string) ([]matching.MatchResult, error) {
	candidates, err := s.Snapshot.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	log.Debugf("Batch matching %d suggestions against %d categories", len(suggestions), len(candidates))
	return matching.BatchMatch(suggestions, candidates, s.threshold), nil
}

// TriageSuggestions batch-matches the suggestions and buckets the
// results for an operator dashboard.
func (s *CategoryService) TriageSuggestions(ctx context.Context, suggestions []string) (matching.TriageReport, error) {
	results, err := s.MatchBatch(ctx, suggestions)
	if err != nil {
		return matching.TriageReport{}, err
	}
	return matching.Triage(results), nil
}

// Validate checks a candidate name against the configured naming rules.
func (s *CategoryService) Validate(name string) validation.Result {
	return s.Validator.ValidateName(name)
}

// SuggestAndMatch asks the configured AI suggester for a category name,
// then runs the suggestion through the matcher. The raw suggestion is
// returned alongside the match so callers can show both.
func (s *CategoryService) SuggestAndMatch(ctx context.Context, title, description string) (suggester.SuggestionResult, matching.MatchResult, error) {
	if s.Suggester == nil {
		return suggester.SuggestionResult{}, matching.MatchResult{}, fmt.Errorf("no suggestion provider is configured")
	}

	candidates, err := s.Snapshot.Snapshot(ctx)
	if err != nil {
		return suggester.SuggestionResult{}, matching.MatchResult{}, err
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	suggestion, err := s.Suggester.Suggest(ctx, suggester.SuggestionRequest{
		Title:              title,
		Description:        description,
		ExistingCategories: names,
	})
	if err != nil {
		return suggester.SuggestionResult{}, matching.MatchResult{}, fmt.Errorf("suggestion failed: %w", err)
	}

	log.Infof("Suggester proposed %q (confidence %.2f) for %q", suggestion.Category, suggestion.Confidence, title)
	return suggestion, matching.FindBestMatch(suggestion.Category, candidates, s.threshold), nil
}
