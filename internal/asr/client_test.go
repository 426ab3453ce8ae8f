package asr

import (
	"context"
	"encoding/binary"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecognizePostsWAVAndParsesJSON(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "audio/wav", r.Header.Get("Content-Type"))
		require.Equal(t, "es-ES", r.URL.Query().Get("language"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = body

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":" yui dime la hora "}`))
	}))
	defer server.Close()

	pcm := make([]byte, 640)
	text, err := New(server.URL).Recognize(context.Background(), pcm, "es-ES")
	require.NoError(t, err)
	require.Equal(t, "yui dime la hora", text)

	require.Len(t, gotBody, 44+len(pcm))
	require.Equal(t, "RIFF", string(gotBody[0:4]))
	require.Equal(t, "WAVE", string(gotBody[8:12]))
	require.Equal(t, uint32(16000), binary.LittleEndian.Uint32(gotBody[24:28]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(gotBody[22:24]))
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(gotBody[34:36]))
}

func TestRecognizeAcceptsPlainTextResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hola mundo\n"))
	}))
	defer server.Close()

	text, err := New(server.URL).Recognize(context.Background(), []byte{0, 0}, "")
	require.NoError(t, err)
	require.Equal(t, "hola mundo", text)
}

func TestRecognizeRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"text":"tercer intento"}`))
	}))
	defer server.Close()

	text, err := New(server.URL).Recognize(context.Background(), []byte{0, 0}, "")
	require.NoError(t, err)
	require.Equal(t, "tercer intento", text)
	require.Equal(t, int32(3), calls.Load())
}

func TestRecognizeDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := New(server.URL).Recognize(context.Background(), []byte{0, 0}, "")
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestRecognizeGivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).Recognize(context.Background(), []byte{0, 0}, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 3 attempts")
	require.Equal(t, int32(3), calls.Load())
}

func TestRecognizeEmptyPCMIsSilence(t *testing.T) {
	t.Parallel()

	text, err := New("http://127.0.0.1:1").Recognize(context.Background(), nil, "es-ES")
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestRecognizeEmptyEndpointFails(t *testing.T) {
	t.Parallel()

	_, err := New("  ").Recognize(context.Background(), []byte{0, 0}, "")
	require.Error(t, err)
}
