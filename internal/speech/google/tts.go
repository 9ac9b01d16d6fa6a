package google

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ziebelle/move37/internal/config"
)

const apiURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

// Synthesizer implements port.SpeechSynthesizer using the Google Cloud
// Text-to-Speech REST API. Output is LINEAR16 (WAV).
type Synthesizer struct {
	apiKey       string
	languageCode string
	voice        string
	endpoint     string
	client       *http.Client
}

// NewSynthesizer creates a Google Cloud TTS synthesizer.
func NewSynthesizer(cfg *config.SpeechConfig) *Synthesizer {
	return newSynthesizer(cfg, apiURL)
}

// NewSynthesizerWithEndpoint creates a synthesizer pointing at a custom API endpoint (for testing).
func NewSynthesizerWithEndpoint(cfg *config.SpeechConfig, endpoint string) *Synthesizer {
	return newSynthesizer(cfg, endpoint)
}

func newSynthesizer(cfg *config.SpeechConfig, endpoint string) *Synthesizer {
	languageCode := cfg.LanguageCode
	if languageCode == "" {
		languageCode = "en-US"
	}
	voice := cfg.Voice
	if voice == "" {
		voice = "en-US-Standard-J"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Synthesizer{
		apiKey:       cfg.APIKey,
		languageCode: languageCode,
		voice:        voice,
		endpoint:     endpoint,
		client:       &http.Client{Timeout: timeout},
	}
}

// Synthesize converts text into WAV audio bytes.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	reqBody := map[string]interface{}{
		"input": map[string]string{"text": text},
		"voice": map[string]string{
			"languageCode": s.languageCode,
			"name":         s.voice,
		},
		"audioConfig": map[string]string{"audioEncoding": "LINEAR16"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling text-to-speech API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("text-to-speech API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if parsed.AudioContent == "" {
		return nil, fmt.Errorf("empty audio content in response")
	}

	audio, err := base64.StdEncoding.DecodeString(parsed.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decoding audio content: %w", err)
	}
	return audio, nil
}
