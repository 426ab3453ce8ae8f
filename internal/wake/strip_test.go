package wake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dvargas2332/yui/internal/config"
)

func stripConfig(word string, aliases ...string) config.WakeConfig {
	return config.WakeConfig{Word: word, Aliases: aliases}
}

func TestStripRemovesWakeWordWithColon(t *testing.T) {
	t.Parallel()

	got := Strip("YUI: dime la hora", stripConfig("yui"))
	require.Equal(t, "dime la hora", got)
}

func TestStripRemovesWakeWordWithComma(t *testing.T) {
	t.Parallel()

	got := Strip("oye yui, apaga la luz", stripConfig("yui"))
	require.Equal(t, "oye apaga la luz", got)
}

func TestStripRemovesBareWakeWord(t *testing.T) {
	t.Parallel()

	got := Strip("yui enciende la tele", stripConfig("yui"))
	require.Equal(t, "enciende la tele", got)
}

func TestStripOnlyFirstOccurrence(t *testing.T) {
	t.Parallel()

	got := Strip("yui llama a yui", stripConfig("yui"))
	require.Equal(t, "llama a yui", got)
}

func TestStripDoesNotTouchEmbeddedSubstrings(t *testing.T) {
	t.Parallel()

	// "yuis" is not a whole-word occurrence of "yui".
	got := Strip("los yuis cantan", stripConfig("yui"))
	require.Equal(t, "los yuis cantan", got)
}

func TestStripPrefersLongerCandidateAtSamePosition(t *testing.T) {
	t.Parallel()

	got := Strip("oye yui dime la hora", stripConfig("yui", "oye yui"))
	require.Equal(t, "dime la hora", got)
}

func TestStripMultiWordAliasWithTrailingComma(t *testing.T) {
	t.Parallel()

	got := Strip("Oye YUI, pon música", stripConfig("yui", "oye yui"))
	require.Equal(t, "pon música", got)
}

func TestStripNoOccurrenceReturnsNormalizedText(t *testing.T) {
	t.Parallel()

	got := Strip("  Hola   Mundo ", stripConfig("yui"))
	require.Equal(t, "hola mundo", got)
}

func TestStripWithoutCandidatesReturnsNormalizedText(t *testing.T) {
	t.Parallel()

	got := Strip("  YUI   dime ", stripConfig(""))
	require.Equal(t, "yui dime", got)
}

func TestStripEmptyText(t *testing.T) {
	t.Parallel()

	require.Empty(t, Strip("", stripConfig("yui")))
	require.Empty(t, Strip("yui", stripConfig("yui")))
}
