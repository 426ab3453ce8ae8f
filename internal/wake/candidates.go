// Package wake detects and strips the assistant wake word in transcripts.
package wake

import (
	"github.com/Dvargas2332/yui/internal/config"
	"github.com/Dvargas2332/yui/internal/transcript"
)

// Candidates derives the ordered wake-word candidate list: the normalized
// primary word first, then aliases in declared order. Alias entries may be
// comma/pipe/semicolon-delimited strings. Empty entries are dropped after
// normalization and duplicates keep their first-seen position.
//
// An empty result is valid and means wake-word gating is disabled.
func Candidates(cfg config.WakeConfig) []string {
	parts := make([]string, 0, 1+len(cfg.Aliases))
	parts = append(parts, cfg.Word)
	for _, alias := range cfg.Aliases {
		parts = append(parts, config.SplitList(alias)...)
	}

	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		word := transcript.Normalize(part)
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
