package wake

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Dvargas2332/yui/internal/config"
	"github.com/Dvargas2332/yui/internal/transcript"
)

// Strip removes the first whole-word occurrence of a wake candidate from the
// text and returns the normalized remainder for command parsing. A trailing
// colon or comma attached to the candidate is consumed with it. When no
// candidate occurs (or none is configured) the normalized text is returned
// unchanged.
func Strip(text string, cfg config.WakeConfig) string {
	normalized := transcript.Normalize(text)

	candidates := Candidates(cfg)
	if len(candidates) == 0 {
		return normalized
	}

	// Longest first, so "oye yui" wins over "yui" at the same position.
	sort.SliceStable(candidates, func(i, j int) bool {
		return utf8.RuneCountInString(candidates[i]) > utf8.RuneCountInString(candidates[j])
	})

	tokens := strings.Fields(normalized)
	for i := range tokens {
		for _, candidate := range candidates {
			words := strings.Fields(candidate)
			if len(words) == 0 || i+len(words) > len(tokens) {
				continue
			}
			if !candidateAt(tokens, i, words) {
				continue
			}
			remainder := make([]string, 0, len(tokens)-len(words))
			remainder = append(remainder, tokens[:i]...)
			remainder = append(remainder, tokens[i+len(words):]...)
			return strings.Join(remainder, " ")
		}
	}

	return normalized
}

// candidateAt reports whether the candidate words occupy tokens[i:]. The last
// candidate word may carry one trailing ':' or ',' in the token stream.
func candidateAt(tokens []string, i int, words []string) bool {
	for j, word := range words {
		token := tokens[i+j]
		if j == len(words)-1 {
			token = trimTrailingPunct(token)
		}
		if token != word {
			return false
		}
	}
	return true
}

// trimTrailingPunct removes at most one trailing ':' or ',' from a token.
func trimTrailingPunct(token string) string {
	if strings.HasSuffix(token, ":") || strings.HasSuffix(token, ",") {
		return token[:len(token)-1]
	}
	return token
}
