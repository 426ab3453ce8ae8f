package config

import "time"

// BackendPulse captures speech from a PulseAudio source and sends it to the
// configured recognition endpoint.
const BackendPulse = "pulse"

// BackendText reads one line of text from the process input instead of audio.
const BackendText = "text"

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		Wake: WakeConfig{
			Word:            "yui",
			Aliases:         nil,
			Fuzzy:           true,
			ListenTimeout:   5 * time.Second,
			PhraseTimeLimit: 4 * time.Second,
		},
		STT: STTConfig{
			Backend:          BackendPulse,
			Language:         "es-ES",
			MicrophoneIndex:  -1,
			SounddeviceIndex: -1,
			Endpoint:         "http://127.0.0.1:9000/transcribe",
			Input:            "default",
			Fallback:         "default",
		},
	}
}
