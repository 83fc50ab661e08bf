package matching

import "strings"

// Similarity returns a score in [0,1] for two category-style labels,
// 1.0 meaning "treat as identical". The score is a normalized Levenshtein
// base blended with word-level bonuses tuned for short labels, not prose:
//
//	+0.15 when the first words match
//	+0.10 when one label contains the other
//	+0.10 × (shared word ratio of the shorter label)
//
// Comparison is case-insensitive and ignores surrounding whitespace; the
// bonuses are symmetric, so Similarity(a, b) == Similarity(b, a).
func Similarity(a, b string) float64 {
	s1 := normalize(a)
	s2 := normalize(b)

	if s1 == s2 {
		return 1.0
	}
	if s1 == "" || s2 == "" {
		return 0.0
	}

	r1 := []rune(s1)
	r2 := []rune(s2)

	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}

	score := 1.0 - float64(levenshtein(r1, r2))/float64(maxLen)

	words1 := strings.Fields(s1)
	words2 := strings.Fields(s2)

	if len(words1) > 0 && len(words2) > 0 && words1[0] == words2[0] {
		score += 0.15
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		score += 0.10
	}
	score += 0.10 * wordOverlap(words1, words2)

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// EditDistance returns the Levenshtein distance between a and b, counted
// over runes, without any normalization.
func EditDistance(a, b string) int {
	return levenshtein([]rune(a), []rune(b))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// levenshtein computes the minimum number of single-rune insertions,
// deletions, and substitutions via the standard DP matrix.
func levenshtein(r1, r2 []rune) int {
	matrix := make([][]int, len(r1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(r2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(r2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(r1); i++ {
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			del := matrix[i-1][j] + 1
			ins := matrix[i][j-1] + 1
			sub := matrix[i-1][j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			matrix[i][j] = min
		}
	}
	return matrix[len(r1)][len(r2)]
}

// wordOverlap returns the fraction of the shorter word list (by word
// count) whose words also appear, verbatim, in the longer one.
func wordOverlap(words1, words2 []string) float64 {
	shorter, longer := words1, words2
	if len(words2) < len(words1) {
		shorter, longer = words2, words1
	}
	if len(shorter) == 0 {
		return 0.0
	}

	longerSet := make(map[string]bool, len(longer))
	for _, w := range longer {
		longerSet[w] = true
	}

	shared := 0
	for _, w := range shorter {
		if longerSet[w] {
			shared++
		}
	}
	return float64(shared) / float64(len(shorter))
}
