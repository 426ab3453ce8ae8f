// Package asr sends captured PCM to a Whisper-style HTTP recognition endpoint.
package asr

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	maxAttempts    = 3
)

// Client posts WAV-framed audio to one recognition endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// New builds a client for the configured endpoint URL.
func New(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		http:     &http.Client{Timeout: defaultTimeout},
	}
}

// Recognize wraps 16kHz mono s16 PCM in a WAV container and posts it to the
// endpoint. Transient failures (transport errors, 5xx) are retried with
// backoff; an empty recognized text is a valid result.
func (c *Client) Recognize(ctx context.Context, pcm []byte, language string) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("recognition endpoint is empty")
	}
	if len(pcm) == 0 {
		return "", nil
	}

	target, err := c.requestURL(language)
	if err != nil {
		return "", err
	}

	wav := buildWAV(pcm, 16000, 1, 16)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		text, retryable, err := c.post(ctx, target, wav)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", fmt.Errorf("recognize after %d attempts: %w", maxAttempts, lastErr)
}

// post performs one request and reports whether a failure is retryable.
func (c *Client) post(ctx context.Context, target string, wav []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(wav))
	if err != nil {
		return "", false, fmt.Errorf("build recognize request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("post audio: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", true, fmt.Errorf("read recognize response: %w", err)
	}

	if resp.StatusCode >= 500 {
		return "", true, fmt.Errorf("recognize endpoint returned %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("recognize endpoint returned %s", resp.Status)
	}

	return parseTranscript(body), false, nil
}

// requestURL appends the language hint as a query parameter when set.
func (c *Client) requestURL(language string) (string, error) {
	parsed, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", c.endpoint, err)
	}
	language = strings.TrimSpace(language)
	if language != "" {
		query := parsed.Query()
		query.Set("language", language)
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

// parseTranscript accepts {"text": …} JSON or a plain-text body.
func parseTranscript(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var payload struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			return strings.TrimSpace(payload.Text)
		}
	}
	return strings.TrimSpace(string(body))
}

// buildWAV prepends a RIFF/WAVE header for raw little-endian PCM.
func buildWAV(pcm []byte, sampleRate, channels, bitsPerSample int) []byte {
	byteRate := uint32(sampleRate * channels * bitsPerSample / 8)
	blockAlign := uint16(channels * bitsPerSample / 8)
	dataLen := uint32(len(pcm))
	riffSize := uint32(4 + (8 + 16) + (8 + dataLen))

	buf := &bytes.Buffer{}
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataLen)
	buf.Write(pcm)
	return buf.Bytes()
}
