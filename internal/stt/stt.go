// Package stt abstracts speech-to-text backends behind one listen contract.
package stt

import (
	"context"
	"errors"
	"time"
)

// ErrBackendUnavailable indicates runtime recognizer wiring is missing.
var ErrBackendUnavailable = errors.New("speech backend not available")

// Request carries per-attempt listen parameters. The wake layer forwards
// configuration values here without interpreting them.
type Request struct {
	Language         string
	Timeout          time.Duration
	PhraseTimeLimit  time.Duration
	MicrophoneIndex  int
	SounddeviceIndex int
}

// Recognizer performs one blocking listen attempt and returns recognized
// text. An empty string with a nil error means silence or timeout; callers
// that only care about presence may treat errors the same way.
type Recognizer interface {
	Name() string
	Listen(ctx context.Context, req Request) (string, error)
}

// Placeholder is a no-op recognizer used in tests and fallback wiring.
type Placeholder struct{}

func (Placeholder) Name() string {
	return "placeholder"
}

func (Placeholder) Listen(context.Context, Request) (string, error) {
	return "", ErrBackendUnavailable
}
