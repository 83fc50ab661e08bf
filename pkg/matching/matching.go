// Package matching decides whether a free-text category suggestion should
// be treated as an existing taxonomy entry or as a brand-new category.
// Every function in the package is a pure function of its inputs: nothing
// here persists data, calls out, or mutates the candidate snapshot, so all
// operations are safe to call concurrently.
package matching

// DefaultThreshold is the minimum similarity score required to recommend
// reusing an existing category instead of creating a new one. Callers can
// override it per invocation.
const DefaultThreshold = 0.8

const (
	// shortlistFloor is the minimum similarity for a candidate to appear
	// in MatchResult.SimilarCategories.
	shortlistFloor = 0.5
	// shortlistLimit caps the shortlist length.
	shortlistLimit = 3
)

// Category is a read-only snapshot entry supplied by the caller. Slug and
// ParentID travel with the record for the caller's benefit; matching only
// looks at Name.
type Category struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parentId,omitempty"`
}

// SimilarCategory is one shortlist entry: a candidate name with its
// similarity expressed as a rounded integer percentage.
type SimilarCategory struct {
	Name       string `json:"name"`
	Similarity int    `json:"similarity"`
}

// MatchResult is the outcome of matching one suggestion against a
// candidate snapshot.
//
// Match is nil only when the suggestion was blank, the candidate set was
// empty, or every candidate scored exactly zero; otherwise the best match
// is always reported, even below threshold, so ShouldCreateNew=true can
// co-occur with a non-nil Match.
type MatchResult struct {
	Match             *Category         `json:"match,omitempty"`
	Confidence        int               `json:"confidence"`
	ShouldCreateNew   bool              `json:"shouldCreateNew"`
	SimilarCategories []SimilarCategory `json:"similarCategories,omitempty"`
}

// ReusePair records a suggestion that should be attached to an existing
// category.
type ReusePair struct {
	Suggested string `json:"suggested"`
	Existing  string `json:"existing"`
}

// ReviewItem records a suggestion whose match cleared the caller's
// threshold but not the review bar, so an operator should look at it.
type ReviewItem struct {
	Suggested  string `json:"suggested"`
	Confidence int    `json:"confidence"`
}

// TriageReport buckets a batch of match results for operator dashboards.
type TriageReport struct {
	ShouldCreateNew []string     `json:"shouldCreateNew"`
	ShouldReuse     []ReusePair  `json:"shouldReuse"`
	NeedsReview     []ReviewItem `json:"needsReview"`
}
