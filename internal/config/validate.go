package config

import (
	"fmt"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	backend := strings.ToLower(strings.TrimSpace(cfg.STT.Backend))
	if backend == "" {
		return nil, fmt.Errorf("stt.backend must not be empty")
	}
	if backend != BackendPulse && backend != BackendText {
		return nil, fmt.Errorf("stt.backend must be one of: %s, %s", BackendPulse, BackendText)
	}
	if strings.TrimSpace(cfg.STT.Language) == "" {
		return nil, fmt.Errorf("stt.language must not be empty")
	}
	if backend == BackendPulse && strings.TrimSpace(cfg.STT.Endpoint) == "" {
		return nil, fmt.Errorf("stt.endpoint must not be empty when stt.backend=%s", BackendPulse)
	}
	if cfg.STT.MicrophoneIndex < -1 {
		return nil, fmt.Errorf("stt.microphone_index must be >= -1")
	}
	if cfg.STT.SounddeviceIndex < -1 {
		return nil, fmt.Errorf("stt.sounddevice_index must be >= -1")
	}
	if cfg.Wake.ListenTimeout < 0 {
		return nil, fmt.Errorf("wake.listen_timeout_s must be >= 0")
	}
	if cfg.Wake.PhraseTimeLimit < 0 {
		return nil, fmt.Errorf("wake.phrase_time_limit_s must be >= 0")
	}

	if wakeDisabled(cfg.Wake) {
		warnings = append(warnings, Warning{
			Message: "wake.word and wake.aliases are empty; wake-word gating is disabled",
		})
	}

	return warnings, nil
}

// wakeDisabled reports whether no usable wake candidate can come out of cfg.
func wakeDisabled(cfg WakeConfig) bool {
	if strings.TrimSpace(cfg.Word) != "" {
		return false
	}
	for _, alias := range cfg.Aliases {
		if strings.TrimSpace(alias) != "" {
			return false
		}
	}
	return true
}
