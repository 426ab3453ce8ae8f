package stt

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dvargas2332/yui/internal/asr"
	"github.com/Dvargas2332/yui/internal/audio"
	"github.com/Dvargas2332/yui/internal/config"
)

const (
	defaultOnsetTimeout = 5 * time.Second
	defaultPhraseLimit  = 4 * time.Second
)

// MicRecognizer captures one bounded attempt from a Pulse source and sends
// the audio to the recognition endpoint.
type MicRecognizer struct {
	cfg    config.STTConfig
	client *asr.Client
	logger *slog.Logger
}

// NewMicRecognizer wires a microphone-backed recognizer.
func NewMicRecognizer(cfg config.STTConfig, client *asr.Client, logger *slog.Logger) *MicRecognizer {
	return &MicRecognizer{cfg: cfg, client: client, logger: logger}
}

func (m *MicRecognizer) Name() string {
	return config.BackendPulse
}

// Listen resolves the capture source, records until the speech gate closes or
// the attempt limits expire, and recognizes the captured audio. Attempts with
// no detected speech return an empty transcript and no error.
func (m *MicRecognizer) Listen(ctx context.Context, req Request) (string, error) {
	index := req.MicrophoneIndex
	if index < 0 {
		index = req.SounddeviceIndex
	}

	selection, err := audio.SelectSource(ctx, audio.SourceQuery{
		Index:    index,
		Input:    m.cfg.Input,
		Fallback: m.cfg.Fallback,
	})
	if err != nil {
		return "", err
	}
	if selection.Warning != "" {
		m.logWarn(selection.Warning)
	}

	capture, err := audio.StartCapture(ctx, selection.Device)
	if err != nil {
		return "", err
	}
	defer capture.Close()

	pcm, speechSeen := collect(ctx, capture.Chunks(), newSpeechGate(), req.Timeout, req.PhraseTimeLimit)
	_ = capture.Stop()

	if !speechSeen || len(pcm) == 0 {
		return "", nil
	}
	return m.client.Recognize(ctx, pcm, req.Language)
}

// collect drains PCM chunks until speech ends, the phrase limit is reached,
// or the onset timeout expires without speech. It returns the captured PCM
// and whether speech was observed.
func collect(ctx context.Context, chunks <-chan []byte, gate *speechGate, onsetTimeout, phraseLimit time.Duration) ([]byte, bool) {
	if onsetTimeout <= 0 {
		onsetTimeout = defaultOnsetTimeout
	}
	if phraseLimit <= 0 {
		phraseLimit = defaultPhraseLimit
	}

	var (
		pcm            []byte
		speechSeen     bool
		phraseDeadline time.Time
	)
	onsetDeadline := time.Now().Add(onsetTimeout)

	for {
		select {
		case <-ctx.Done():
			return pcm, speechSeen
		case chunk, ok := <-chunks:
			if !ok {
				return pcm, speechSeen
			}
			pcm = append(pcm, chunk...)

			open := gate.observe(chunk)
			if open && !speechSeen {
				speechSeen = true
				phraseDeadline = time.Now().Add(phraseLimit)
			}
			if speechSeen && !open {
				return pcm, true
			}

			now := time.Now()
			if !speechSeen && now.After(onsetDeadline) {
				return pcm, false
			}
			if speechSeen && now.After(phraseDeadline) {
				return pcm, true
			}
		}
	}
}

func (m *MicRecognizer) logWarn(message string, args ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Warn(message, args...)
}
