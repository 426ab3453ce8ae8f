package wake

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Dvargas2332/yui/internal/config"
	"github.com/Dvargas2332/yui/internal/stt"
	"github.com/Dvargas2332/yui/internal/transcript"
)

// Fuzzy matching only considers tokens of these rune lengths; very short and
// very long tokens produce too many false positives near short wake words.
const (
	fuzzyMinTokenLen = 2
	fuzzyMaxTokenLen = 6
)

// Result is the outcome of one detection attempt. Heard reports whether a
// wake candidate (or a fuzzy variant) was found; Transcript preserves the
// recognizer output as heard, and stays empty when nothing was captured.
type Result struct {
	Heard      bool
	Transcript string
}

// Detector runs single-shot wake-word detection attempts against an injected
// speech recognizer. It keeps no state between calls.
type Detector struct {
	cfg        config.Config
	recognizer stt.Recognizer
	logger     *slog.Logger
}

// NewDetector wires a detector from runtime config and a recognizer.
func NewDetector(cfg config.Config, recognizer stt.Recognizer, logger *slog.Logger) *Detector {
	return &Detector{cfg: cfg, recognizer: recognizer, logger: logger}
}

// WaitForWake blocks on one recognizer attempt and reports whether the wake
// word was heard.
//
// An empty candidate set means wake gating is disabled: the attempt succeeds
// immediately without invoking the recognizer. Recognizer failures are
// collapsed into "nothing captured"; they are logged but never surfaced.
func (d *Detector) WaitForWake(ctx context.Context) Result {
	candidates := Candidates(d.cfg.Wake)
	if len(candidates) == 0 {
		return Result{Heard: true}
	}

	text, err := d.recognizer.Listen(ctx, stt.Request{
		Language:         d.cfg.STT.Language,
		Timeout:          d.cfg.Wake.ListenTimeout,
		PhraseTimeLimit:  d.cfg.Wake.PhraseTimeLimit,
		MicrophoneIndex:  d.cfg.STT.MicrophoneIndex,
		SounddeviceIndex: d.cfg.STT.SounddeviceIndex,
	})
	if err != nil {
		d.logWarn("listen attempt failed", "backend", d.recognizer.Name(), "error", err.Error())
		return Result{}
	}
	if strings.TrimSpace(text) == "" {
		return Result{}
	}

	normalized := transcript.Normalize(text)
	words := strings.Fields(normalized)

	// Accept the wake word alone or inside a phrase: "yui", "oye yui, dime la hora".
	for _, candidate := range candidates {
		if slices.Contains(words, candidate) || strings.Contains(normalized, candidate) {
			return Result{Heard: true, Transcript: text}
		}
	}

	if d.cfg.Wake.Fuzzy {
		for _, word := range words {
			length := utf8.RuneCountInString(word)
			if length < fuzzyMinTokenLen || length > fuzzyMaxTokenLen {
				continue
			}
			for _, candidate := range candidates {
				if editDistanceAtMostOne(word, candidate) {
					return Result{Heard: true, Transcript: text}
				}
			}
		}
	}

	return Result{Heard: false, Transcript: text}
}

func (d *Detector) logWarn(message string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Warn(message, args...)
}
