package stt

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Dvargas2332/yui/internal/asr"
	"github.com/Dvargas2332/yui/internal/config"
)

// Options carries runtime collaborators for backend construction.
type Options struct {
	// TextInput feeds the text backend; defaults to stdin.
	TextInput io.Reader
	Logger    *slog.Logger
}

// New selects the configured recognizer backend. This is the only place
// backend identifiers are interpreted; everything downstream sees the
// Recognizer interface.
func New(cfg config.Config, opts Options) (Recognizer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.STT.Backend)) {
	case config.BackendText:
		input := opts.TextInput
		if input == nil {
			input = os.Stdin
		}
		return NewTextRecognizer(input), nil
	case config.BackendPulse:
		return NewMicRecognizer(cfg.STT, asr.New(cfg.STT.Endpoint), opts.Logger), nil
	default:
		return nil, fmt.Errorf("unknown stt backend %q", cfg.STT.Backend)
	}
}
