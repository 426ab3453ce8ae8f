package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

type jsoncConfig struct {
	Wake *jsoncWake `json:"wake"`
	STT  *jsoncSTT  `json:"stt"`
}

type jsoncWake struct {
	Word             *string          `json:"word"`
	Aliases          *jsoncStringList `json:"aliases"`
	Fuzzy            *jsoncFuzzy      `json:"fuzzy"`
	ListenTimeoutS   *float64         `json:"listen_timeout_s"`
	PhraseTimeLimitS *float64         `json:"phrase_time_limit_s"`
}

type jsoncSTT struct {
	Backend          *string `json:"backend"`
	Language         *string `json:"language"`
	MicrophoneIndex  *int    `json:"microphone_index"`
	SounddeviceIndex *int    `json:"sounddevice_index"`
	Endpoint         *string `json:"endpoint"`
	Input            *string `json:"input"`
	Fallback         *string `json:"fallback"`
}

// jsoncStringList accepts a JSON string array or one delimited string
// ("a, b" / "a|b" / "a; b").
type jsoncStringList []string

func (l *jsoncStringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = SplitList(single)
		return nil
	}

	return fmt.Errorf("expected string array or delimited string")
}

// jsoncFuzzy accepts a JSON bool or the historical string toggle, where "0",
// "false", and "False" (case-sensitive) disable fuzzy matching and any other
// value enables it.
type jsoncFuzzy bool

func (f *jsoncFuzzy) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = jsoncFuzzy(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = jsoncFuzzy(!FuzzyDisabled(s))
		return nil
	}

	return fmt.Errorf("expected bool or string toggle")
}

// SplitList splits a comma/pipe/semicolon-delimited string into trimmed,
// non-empty parts.
func SplitList(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '|' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// FuzzyDisabled reports whether a string toggle value disables fuzzy matching.
// Only "0" and a case-sensitive "false"/"False" disable; anything else,
// including the empty string, leaves it enabled.
func FuzzyDisabled(value string) bool {
	switch strings.TrimSpace(value) {
	case "0", "false", "False":
		return true
	default:
		return false
	}
}

func parseJSONC(content string, base Config) (Config, []Warning, error) {
	normalized, err := normalizeJSONC(content)
	if err != nil {
		return Config{}, nil, err
	}

	decoder := json.NewDecoder(strings.NewReader(normalized))
	decoder.DisallowUnknownFields()

	var payload jsoncConfig
	if err := decoder.Decode(&payload); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}
	if err := ensureSingleJSONValue(decoder); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}

	cfg := base
	if err := payload.applyTo(&cfg); err != nil {
		return Config{}, nil, err
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (payload jsoncConfig) applyTo(cfg *Config) error {
	if payload.Wake != nil {
		if payload.Wake.Word != nil {
			cfg.Wake.Word = *payload.Wake.Word
		}
		if payload.Wake.Aliases != nil {
			cfg.Wake.Aliases = append([]string(nil), *payload.Wake.Aliases...)
		}
		if payload.Wake.Fuzzy != nil {
			cfg.Wake.Fuzzy = bool(*payload.Wake.Fuzzy)
		}
		if payload.Wake.ListenTimeoutS != nil {
			d, err := secondsToDuration(*payload.Wake.ListenTimeoutS)
			if err != nil {
				return fmt.Errorf("wake.listen_timeout_s: %w", err)
			}
			cfg.Wake.ListenTimeout = d
		}
		if payload.Wake.PhraseTimeLimitS != nil {
			d, err := secondsToDuration(*payload.Wake.PhraseTimeLimitS)
			if err != nil {
				return fmt.Errorf("wake.phrase_time_limit_s: %w", err)
			}
			cfg.Wake.PhraseTimeLimit = d
		}
	}

	if payload.STT != nil {
		if payload.STT.Backend != nil {
			cfg.STT.Backend = strings.TrimSpace(*payload.STT.Backend)
		}
		if payload.STT.Language != nil {
			cfg.STT.Language = strings.TrimSpace(*payload.STT.Language)
		}
		if payload.STT.MicrophoneIndex != nil {
			cfg.STT.MicrophoneIndex = *payload.STT.MicrophoneIndex
		}
		if payload.STT.SounddeviceIndex != nil {
			cfg.STT.SounddeviceIndex = *payload.STT.SounddeviceIndex
		}
		if payload.STT.Endpoint != nil {
			cfg.STT.Endpoint = strings.TrimSpace(*payload.STT.Endpoint)
		}
		if payload.STT.Input != nil {
			cfg.STT.Input = strings.TrimSpace(*payload.STT.Input)
		}
		if payload.STT.Fallback != nil {
			cfg.STT.Fallback = strings.TrimSpace(*payload.STT.Fallback)
		}
	}

	return nil
}

func secondsToDuration(seconds float64) (time.Duration, error) {
	if seconds < 0 {
		return 0, fmt.Errorf("must be >= 0, got %v", seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func normalizeJSONC(content string) (string, error) {
	withoutComments, err := stripJSONCComments(content)
	if err != nil {
		return "", err
	}
	return stripJSONCTrailingCommas(withoutComments), nil
}

func stripJSONCComments(content string) (string, error) {
	var out strings.Builder
	out.Grow(len(content))

	inString := false
	escape := false
	lineComment := false
	blockComment := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if lineComment {
			if ch == '\n' || ch == '\r' {
				lineComment = false
				out.WriteByte(ch)
				continue
			}
			out.WriteByte(' ')
			continue
		}

		if blockComment {
			if ch == '*' && i+1 < len(content) && content[i+1] == '/' {
				blockComment = false
				out.WriteString("  ")
				i++
				continue
			}
			if ch == '\n' || ch == '\r' || ch == '\t' {
				out.WriteByte(ch)
			} else {
				out.WriteByte(' ')
			}
			continue
		}

		if inString {
			out.WriteByte(ch)
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		if ch == '"' {
			inString = true
			out.WriteByte(ch)
			continue
		}

		if ch == '/' && i+1 < len(content) {
			next := content[i+1]
			if next == '/' {
				lineComment = true
				out.WriteString("  ")
				i++
				continue
			}
			if next == '*' {
				blockComment = true
				out.WriteString("  ")
				i++
				continue
			}
		}

		out.WriteByte(ch)
	}

	if blockComment {
		return "", fmt.Errorf("unterminated block comment in JSONC")
	}

	return out.String(), nil
}

func stripJSONCTrailingCommas(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	inString := false
	escape := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if inString {
			out.WriteByte(ch)
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		if ch == '"' {
			inString = true
			out.WriteByte(ch)
			continue
		}

		if ch == ',' {
			j := i + 1
			for j < len(content) && isJSONWhitespace(content[j]) {
				j++
			}
			if j < len(content) && (content[j] == '}' || content[j] == ']') {
				continue
			}
		}

		out.WriteByte(ch)
	}

	return out.String()
}

func isJSONWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\n', '\r', '\t':
		return true
	default:
		return false
	}
}

func ensureSingleJSONValue(decoder *json.Decoder) error {
	var extra struct{}
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("multiple JSON values are not allowed")
	}
	return err
}

func wrapJSONDecodeError(content string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(content, syntaxErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(content, typeErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	return err
}

func offsetToLineCol(content string, offset int64) (int, int) {
	if offset <= 0 {
		return 1, 1
	}

	limit := int(offset)
	if limit > len(content) {
		limit = len(content)
	}

	line := 1
	col := 1
	for i := 0; i < limit-1; i++ {
		if content[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
