// Package config resolves, parses, validates, and defaults yui configuration.
package config

import "time"

// Config is the fully materialized runtime configuration used by yui.
type Config struct {
	Wake WakeConfig
	STT  STTConfig
}

// WakeConfig controls wake-word detection and stripping behavior.
type WakeConfig struct {
	Word            string
	Aliases         []string
	Fuzzy           bool
	ListenTimeout   time.Duration
	PhraseTimeLimit time.Duration
}

// STTConfig controls speech-to-text backend selection and request hints.
// The wake layer forwards these values opaquely; only the backend factory
// interprets them.
type STTConfig struct {
	Backend          string
	Language         string
	MicrophoneIndex  int
	SounddeviceIndex int
	Endpoint         string
	Input            string
	Fallback         string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
