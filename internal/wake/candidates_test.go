package wake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dvargas2332/yui/internal/config"
)

func TestCandidatesPrimaryWordFirstThenAliases(t *testing.T) {
	t.Parallel()

	got := Candidates(config.WakeConfig{
		Word:    "yui",
		Aliases: []string{"yuhi", "iui"},
	})
	require.Equal(t, []string{"yui", "yuhi", "iui"}, got)
}

func TestCandidatesNormalizesEntries(t *testing.T) {
	t.Parallel()

	got := Candidates(config.WakeConfig{
		Word:    "  YUI  ",
		Aliases: []string{" Oye  YUI "},
	})
	require.Equal(t, []string{"yui", "oye yui"}, got)
}

func TestCandidatesSplitsDelimitedAliasEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alias string
	}{
		{name: "commas", alias: "yuhi, iui,louie"},
		{name: "pipes", alias: "yuhi|iui| louie"},
		{name: "semicolons", alias: "yuhi; iui;louie"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Candidates(config.WakeConfig{Word: "yui", Aliases: []string{tc.alias}})
			require.Equal(t, []string{"yui", "yuhi", "iui", "louie"}, got)
		})
	}
}

func TestCandidatesDeduplicatesPreservingFirstSeenOrder(t *testing.T) {
	t.Parallel()

	got := Candidates(config.WakeConfig{
		Word:    "yui",
		Aliases: []string{"YUI", "yuhi", "yuhi", "yui"},
	})
	require.Equal(t, []string{"yui", "yuhi"}, got)
}

func TestCandidatesDropsEmptyEntries(t *testing.T) {
	t.Parallel()

	got := Candidates(config.WakeConfig{
		Word:    "yui",
		Aliases: []string{"", "   ", ",,;;||"},
	})
	require.Equal(t, []string{"yui"}, got)
}

func TestCandidatesEmptyConfigYieldsEmptySet(t *testing.T) {
	t.Parallel()

	require.Empty(t, Candidates(config.WakeConfig{}))
	require.Empty(t, Candidates(config.WakeConfig{Word: "  ", Aliases: []string{" ", ""}}))
}
