// Package validation enforces naming-quality rules on candidate category
// names before they are admitted into the taxonomy. It is independent of
// the matching pipeline: callers typically validate right before actually
// creating a new category.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nameCharset is the only vocabulary a category name may use: letters,
// digits, whitespace, hyphen, and ampersand.
var nameCharset = regexp.MustCompile(`^[a-zA-Z0-9\s\-&]+$`)

// Rules holds the tunable parts of name validation so tests and callers
// can substitute alternate bounds or vocabularies without shared state.
type Rules struct {
	MinLength     int
	MaxLength     int
	BrandKeywords []string
}

// DefaultRules returns the production rule set: 3–50 characters and the
// stock brand vocabulary that category names must stay agnostic of.
func DefaultRules() Rules {
	return Rules{
		MinLength: 3,
		MaxLength: 50,
		BrandKeywords: []string{
			"iphone", "samsung", "nike", "adidas", "apple", "sony",
		},
	}
}

// Result reports every rule violation for one candidate name. Errors is
// non-empty exactly when Valid is false; Suggestions stays nil when there
// is nothing to suggest.
type Result struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Validator checks category names against a fixed rule set.
type Validator struct {
	rules Rules
}

// NewValidator builds a Validator from the given rules.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// ValidateName runs every rule against name and collects all violations,
// not just the first, so a caller can present a complete correction list
// in one pass. Length bounds count characters, not bytes.
func (v *Validator) ValidateName(name string) Result {
	var errs []string
	var suggestions []string

	length := utf8.RuneCountInString(name)
	if length < v.rules.MinLength {
		errs = append(errs, fmt.Sprintf("name must be at least %d characters long", v.rules.MinLength))
	}
	if length > v.rules.MaxLength {
		errs = append(errs, fmt.Sprintf("name must be at most %d characters long", v.rules.MaxLength))
	}

	if !nameCharset.MatchString(name) {
		errs = append(errs, "name can only contain letters, numbers, spaces, hyphens, and ampersands")
	}

	if titled := titleCase(name); titled != "" && titled != name {
		suggestions = append(suggestions, fmt.Sprintf("consider title case: %q", titled))
	}

	lower := strings.ToLower(name)
	for _, keyword := range v.rules.BrandKeywords {
		if strings.Contains(lower, keyword) {
			errs = append(errs, fmt.Sprintf("name should be brand-agnostic (found %q)", keyword))
			suggestions = append(suggestions, "use generic terms instead of brand names")
			break
		}
	}

	return Result{
		Valid:       len(errs) == 0,
		Errors:      errs,
		Suggestions: suggestions,
	}
}

// ValidateName checks name against DefaultRules.
func ValidateName(name string) Result {
	return NewValidator(DefaultRules()).ValidateName(name)
}

// titleCase uppercases each word's first letter and lowercases the rest,
// preserving the original spacing. It returns name unchanged when every
// word already starts with an uppercase letter, and "" when there are no
// words at all (whitespace-only input is left alone).
func titleCase(name string) string {
	words := strings.Split(name, " ")

	hasWord := false
	needsFix := false
	for _, w := range words {
		if w == "" {
			continue
		}
		hasWord = true
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			needsFix = true
		}
	}
	if !hasWord || !needsFix {
		return ""
	}

	fixed := make([]string, len(words))
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		fixed[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(fixed, " ")
}
