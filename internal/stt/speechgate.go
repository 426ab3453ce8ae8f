package stt

import (
	"encoding/binary"
	"math"
)

// speechGate is an RMS energy detector over 20ms PCM frames. Hysteresis
// between the start and end thresholds keeps it from flickering on breath
// noise, so one listen attempt sees a clean onset and offset.
type speechGate struct {
	startThreshold float64
	endThreshold   float64
	startFrames    int
	endFrames      int

	inSpeech     bool
	speechCount  int
	silenceCount int
}

// newSpeechGate returns a gate tuned for 16kHz mono s16 20ms frames.
func newSpeechGate() *speechGate {
	return &speechGate{
		startThreshold: 0.015,
		endThreshold:   0.008,
		startFrames:    3,  // ~60ms to open
		endFrames:      30, // ~600ms of quiet to close
	}
}

// observe feeds one PCM chunk and reports whether the gate is open.
func (g *speechGate) observe(pcm []byte) bool {
	level := rmsLevel(pcm)

	if g.inSpeech {
		if level < g.endThreshold {
			g.silenceCount++
			g.speechCount = 0
			if g.silenceCount >= g.endFrames {
				g.inSpeech = false
				g.silenceCount = 0
			}
		} else {
			g.silenceCount = 0
		}
		return g.inSpeech
	}

	if level >= g.startThreshold {
		g.speechCount++
		g.silenceCount = 0
		if g.speechCount >= g.startFrames {
			g.inSpeech = true
			g.speechCount = 0
		}
	} else {
		g.speechCount = 0
	}
	return g.inSpeech
}

// rmsLevel computes normalized RMS energy of little-endian s16 samples.
func rmsLevel(pcm []byte) float64 {
	sampleCount := len(pcm) / 2
	if sampleCount == 0 {
		return 0
	}

	var sum float64
	for i := 0; i+1 < len(pcm); i += 2 {
		sample := int16(binary.LittleEndian.Uint16(pcm[i : i+2]))
		normalized := float64(sample) / math.MaxInt16
		sum += normalized * normalized
	}
	return math.Sqrt(sum / float64(sampleCount))
}
