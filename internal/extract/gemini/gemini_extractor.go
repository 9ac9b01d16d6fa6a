package gemini

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
	"github.com/ziebelle/move37/internal/extract"
	"github.com/ziebelle/move37/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client implements port.Extractor and port.Answerer using Google's
// Gemini API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini-backed extraction client.
func NewClient(cfg *config.ExtractorConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.ExtractorConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.ExtractorConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Extract sends the source document to the model and decodes the
// structured manual from its JSON response.
func (c *Client) Extract(ctx context.Context, input port.ExtractInput) (*extract.RawManual, error) {
	prompt := extract.BuildManualPrompt(input.SourcePath)

	mimeType, err := toGeminiMimeType(input.ContentType)
	if err != nil {
		return nil, err
	}

	var parts []map[string]interface{}
	if mimeType == "text/plain" {
		parts = []map[string]interface{}{
			{"text": prompt + "\n\nManual Text:\n--- START TEXT ---\n" + string(input.Data) + "\n--- END TEXT ---\n\nGenerate the JSON object:"},
		}
	} else {
		encoded := base64.StdEncoding.EncodeToString(input.Data)
		parts = []map[string]interface{}{
			{
				"inline_data": map[string]interface{}{
					"mime_type": mimeType,
					"data":      encoded,
				},
			},
			{"text": prompt + "\n\nGenerate the JSON object based only on the provided document:"},
		}
	}

	text, err := c.generate(ctx, parts, true)
	if err != nil {
		return nil, err
	}

	var raw extract.RawManual
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parsing LLM JSON output: %w (raw: %s)", err, truncate(text, 500))
	}
	if raw.SourcePDFPath == "" {
		raw.SourcePDFPath = input.SourcePath
	}
	return &raw, nil
}

// Answer runs a grounded question-answering request over the serialized
// knowledge corpus.
func (c *Client) Answer(ctx context.Context, question, knowledge string) (string, error) {
	parts := []map[string]interface{}{
		{"text": extract.BuildAnswerPrompt(question, knowledge)},
	}
	return c.generate(ctx, parts, false)
}

func (c *Client) generate(ctx context.Context, parts []map[string]interface{}, jsonOutput bool) (string, error) {
	genConfig := map[string]interface{}{
		"maxOutputTokens": 8192,
		"temperature":     0.1,
	}
	if jsonOutput {
		genConfig["responseMimeType"] = "application/json"
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": parts,
			},
		},
		"generationConfig": genConfig,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return extractText(respBody)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func extractText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from API: no candidates")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from API: no parts")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func toGeminiMimeType(contentType string) (string, error) {
	switch contentType {
	case "application/pdf":
		return "application/pdf", nil
	case "text/plain", "":
		return "text/plain", nil
	default:
		return "", fmt.Errorf("unsupported content type for extraction: %s", contentType)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
