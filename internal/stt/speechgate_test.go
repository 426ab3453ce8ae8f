package stt

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// pcmChunk builds one 20ms 16kHz mono s16 frame with a constant amplitude.
func pcmChunk(amplitude int16) []byte {
	const samples = 320
	out := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(amplitude))
	}
	return out
}

func TestRMSLevel(t *testing.T) {
	t.Parallel()

	require.Zero(t, rmsLevel(nil))
	require.Zero(t, rmsLevel(pcmChunk(0)))
	require.InDelta(t, 0.5, rmsLevel(pcmChunk(16384)), 0.01)
}

func TestSpeechGateOpensAfterSustainedEnergy(t *testing.T) {
	t.Parallel()

	gate := newSpeechGate()
	loud := pcmChunk(8000)

	require.False(t, gate.observe(loud))
	require.False(t, gate.observe(loud))
	require.True(t, gate.observe(loud))
}

func TestSpeechGateIgnoresShortBursts(t *testing.T) {
	t.Parallel()

	gate := newSpeechGate()
	loud := pcmChunk(8000)
	quiet := pcmChunk(0)

	require.False(t, gate.observe(loud))
	require.False(t, gate.observe(quiet))
	require.False(t, gate.observe(loud))
	require.False(t, gate.observe(quiet))
}

func TestSpeechGateClosesAfterSustainedSilence(t *testing.T) {
	t.Parallel()

	gate := newSpeechGate()
	loud := pcmChunk(8000)
	quiet := pcmChunk(0)

	for i := 0; i < 3; i++ {
		gate.observe(loud)
	}
	require.True(t, gate.inSpeech)

	for i := 0; i < 29; i++ {
		require.True(t, gate.observe(quiet))
	}
	require.False(t, gate.observe(quiet))
}

func TestCollectStopsWhenSpeechEnds(t *testing.T) {
	t.Parallel()

	chunks := make(chan []byte, 64)
	for i := 0; i < 5; i++ {
		chunks <- pcmChunk(8000)
	}
	for i := 0; i < 31; i++ {
		chunks <- pcmChunk(0)
	}

	pcm, speechSeen := collect(context.Background(), chunks, newSpeechGate(), time.Second, time.Minute)
	require.True(t, speechSeen)
	require.NotEmpty(t, pcm)
}

func TestCollectReportsSilenceAfterOnsetTimeout(t *testing.T) {
	t.Parallel()

	chunks := make(chan []byte, 16)
	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			select {
			case chunks <- pcmChunk(0):
			default:
				return
			}
		}
	}()

	_, speechSeen := collect(context.Background(), chunks, newSpeechGate(), 30*time.Millisecond, time.Minute)
	require.False(t, speechSeen)
}

func TestCollectStopsWhenChannelCloses(t *testing.T) {
	t.Parallel()

	chunks := make(chan []byte)
	close(chunks)

	pcm, speechSeen := collect(context.Background(), chunks, newSpeechGate(), time.Second, time.Second)
	require.False(t, speechSeen)
	require.Empty(t, pcm)
}
