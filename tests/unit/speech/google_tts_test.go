package speech_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziebelle/move37/internal/config"
	"github.com/ziebelle/move37/internal/speech/google"
)

func testSpeechConfig() *config.SpeechConfig {
	return &config.SpeechConfig{
		Provider:     "google",
		APIKey:       "test-key",
		LanguageCode: "en-US",
		Voice:        "en-US-Standard-J",
		TimeoutSecs:  5,
	}
}

func TestGoogleSynthesizer_Success(t *testing.T) {
	audio := []byte("RIFF fake wav bytes")

	var gotReq map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString(audio),
		})
	}))
	defer server.Close()

	synth := google.NewSynthesizerWithEndpoint(testSpeechConfig(), server.URL)

	got, err := synth.Synthesize(context.Background(), "Step 1. rinse the bowl")
	require.NoError(t, err)
	assert.Equal(t, audio, got)

	input := gotReq["input"].(map[string]interface{})
	assert.Equal(t, "Step 1. rinse the bowl", input["text"])
	voice := gotReq["voice"].(map[string]interface{})
	assert.Equal(t, "en-US-Standard-J", voice["name"])
	audioConfig := gotReq["audioConfig"].(map[string]interface{})
	assert.Equal(t, "LINEAR16", audioConfig["audioEncoding"])
}

func TestGoogleSynthesizer_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer server.Close()

	synth := google.NewSynthesizerWithEndpoint(testSpeechConfig(), server.URL)

	_, err := synth.Synthesize(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestGoogleSynthesizer_EmptyAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	synth := google.NewSynthesizerWithEndpoint(testSpeechConfig(), server.URL)

	_, err := synth.Synthesize(context.Background(), "text")
	assert.Error(t, err)
}
