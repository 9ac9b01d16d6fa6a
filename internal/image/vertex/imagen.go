package vertex

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

const apiURLTemplate = "https://generativelanguage.googleapis.com/v1beta/models/%s:predict"

const promptPrefix = "Technical illustration showing how to: "

// Generator implements port.ImageGenerator using the Imagen prediction API.
type Generator struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGenerator creates an Imagen image generator.
func NewGenerator(cfg *config.ImageConfig) *Generator {
	return newGenerator(cfg, fmt.Sprintf(apiURLTemplate, cfg.Model))
}

// NewGeneratorWithEndpoint creates a generator pointing at a custom API endpoint (for testing).
func NewGeneratorWithEndpoint(cfg *config.ImageConfig, endpoint string) *Generator {
	return newGenerator(cfg, endpoint)
}

func newGenerator(cfg *config.ImageConfig, endpoint string) *Generator {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Generator{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Generate produces PNG bytes for an instructional prompt. The subject text is
// wrapped in a fixed technical-illustration framing before being sent.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	reqBody := map[string]interface{}{
		"instances": []map[string]string{
			{"prompt": promptPrefix + prompt},
		},
		"parameters": map[string]interface{}{
			"sampleCount": 1,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling image API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Predictions []struct {
			BytesBase64Encoded string `json:"bytesBase64Encoded"`
		} `json:"predictions"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Predictions) == 0 || parsed.Predictions[0].BytesBase64Encoded == "" {
		return nil, fmt.Errorf("no image returned in response")
	}

	img, err := base64.StdEncoding.DecodeString(parsed.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding image content: %w", err)
	}
	return img, nil
}
