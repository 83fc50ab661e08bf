package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxo/internal/taxonomy"
	"taxo/pkg/matching"
	"taxo/pkg/suggester"
	"taxo/pkg/validation"
)

type mockSuggester struct {
	result suggester.SuggestionResult
	err    error
	gotReq suggester.SuggestionRequest
}

func (m *mockSuggester) Suggest(ctx context.Context, req suggester.SuggestionRequest) (suggester.SuggestionResult, error) {
	m.gotReq = req
	return m.result, m.err
}

type failingProvider struct{}

func (failingProvider) Snapshot(ctx context.Context) ([]matching.Category, error) {
	return nil, errors.New("snapshot unavailable")
}

func testService(sugg suggester.CategorySuggester) *CategoryService {
	snapshot := taxonomy.NewStaticProvider([]matching.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Smartphones", Slug: "smartphones", ParentID: "electronics"},
	})
	return NewCategoryService(snapshot, validation.NewValidator(validation.DefaultRules()), sugg, 0)
}

func TestCategoryService_Match(t *testing.T) {
	svc := testService(nil)

	result, err := svc.Match(context.Background(), "smartphone")
	require.NoError(t, err)
	require.NotNil(t, result.Match)
	assert.Equal(t, "Smartphones", result.Match.Name)
	assert.False(t, result.ShouldCreateNew)
}

func TestCategoryService_Match_SnapshotError(t *testing.T) {
	svc := NewCategoryService(failingProvider{}, validation.NewValidator(validation.DefaultRules()), nil, 0)

	_, err := svc.Match(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot unavailable")
}

func TestCategoryService_DefaultThreshold(t *testing.T) {
	svc := testService(nil)
	assert.Equal(t, matching.DefaultThreshold, svc.Threshold(), "zero threshold falls back to the default")
}

func TestCategoryService_TriageSuggestions(t *testing.T) {
	svc := testService(nil)

	report, err := svc.TriageSuggestions(context.Background(), []string{
		"Electronics",                // exact, reuse
		"Totally Different Category", // create new
	})
	require.NoError(t, err)
	assert.Len(t, report.ShouldReuse, 1)
	assert.Len(t, report.ShouldCreateNew, 1)
}

func TestCategoryService_Validate(t *testing.T) {
	svc := testService(nil)
	assert.True(t, svc.Validate("Electronics").Valid)
	assert.False(t, svc.Validate("iPhones").Valid)
}

func TestCategoryService_SuggestAndMatch(t *testing.T) {
	mock := &mockSuggester{
		result: suggester.SuggestionResult{Category: "Smartphone", Confidence: 0.9},
	}
	svc := testService(mock)

	suggestion, match, err := svc.SuggestAndMatch(context.Background(), "Used phone", "great camera")
	require.NoError(t, err)

	assert.Equal(t, "Smartphone", suggestion.Category)
	assert.Equal(t, []string{"Electronics", "Smartphones"}, mock.gotReq.ExistingCategories,
		"suggester sees the current category names")
	require.NotNil(t, match.Match)
	assert.Equal(t, "Smartphones", match.Match.Name)
}

func TestCategoryService_SuggestAndMatch_NoProvider(t *testing.T) {
	svc := testService(nil)

	_, _, err := svc.SuggestAndMatch(context.Background(), "Used phone", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suggestion provider is configured")
}

func TestCategoryService_SuggestAndMatch_SuggesterError(t *testing.T) {
	mock := &mockSuggester{err: errors.New("model overloaded")}
	svc := testService(mock)

	_, _, err := svc.SuggestAndMatch(context.Background(), "Used phone", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggestion failed")
}
