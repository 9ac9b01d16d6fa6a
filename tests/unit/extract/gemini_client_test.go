package extract_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziebelle/move37/internal/config"
	"github.com/ziebelle/move37/internal/extract/gemini"
	"github.com/ziebelle/move37/internal/port"
)

func geminiSuccessBody(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func testExtractorConfig() *config.ExtractorConfig {
	return &config.ExtractorConfig{
		Provider:    "gemini",
		APIKey:      "test-key",
		Model:       "gemini-2.0-flash",
		TimeoutSecs: 5,
	}
}

func TestGeminiClient_Extract_Success(t *testing.T) {
	manualJSON := `{"title":"Blender 3000","sourcePdfPath":"manuals/blender.pdf","tabs":[{"id":"usage","title":"Usage","type":"text","content":"Blend things."}]}`

	var gotAPIKey string
	var gotReq map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(geminiSuccessBody(manualJSON))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testExtractorConfig(), server.URL)

	raw, err := client.Extract(context.Background(), port.ExtractInput{
		SourcePath:  "manuals/blender.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 content"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Blender 3000", raw.Title)
	assert.Equal(t, "manuals/blender.pdf", raw.SourcePDFPath)
	require.Len(t, raw.Tabs, 1)
	assert.Equal(t, "usage", raw.Tabs[0].ID)

	assert.Equal(t, "test-key", gotAPIKey)
	genConfig := gotReq["generationConfig"].(map[string]interface{})
	assert.Equal(t, "application/json", genConfig["responseMimeType"])
}

func TestGeminiClient_Extract_FillsMissingSourcePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiSuccessBody(`{"title":"No Path","tabs":[]}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testExtractorConfig(), server.URL)

	raw, err := client.Extract(context.Background(), port.ExtractInput{
		SourcePath:  "manuals/nopath.txt",
		ContentType: "text/plain",
		Data:        []byte("manual text"),
	})
	require.NoError(t, err)
	assert.Equal(t, "manuals/nopath.txt", raw.SourcePDFPath)
}

func TestGeminiClient_Extract_UnsupportedContentType(t *testing.T) {
	client := gemini.NewClientWithEndpoint(testExtractorConfig(), "http://unused.invalid")

	_, err := client.Extract(context.Background(), port.ExtractInput{
		SourcePath:  "image.webp",
		ContentType: "image/webp",
		Data:        []byte("data"),
	})
	assert.Error(t, err)
}

func TestGeminiClient_Extract_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testExtractorConfig(), server.URL)

	_, err := client.Extract(context.Background(), port.ExtractInput{
		SourcePath:  "manuals/blender.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiClient_Extract_MalformedModelOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(geminiSuccessBody("this is not json"))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testExtractorConfig(), server.URL)

	_, err := client.Extract(context.Background(), port.ExtractInput{
		SourcePath:  "manuals/blender.pdf",
		ContentType: "text/plain",
		Data:        []byte("text"),
	})
	assert.Error(t, err)
}

func TestGeminiClient_Answer(t *testing.T) {
	var gotReq map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(geminiSuccessBody("Use the pulse button."))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testExtractorConfig(), server.URL)

	answer, err := client.Answer(context.Background(), "how do I blend?", `[{"title":"Blender 3000"}]`)
	require.NoError(t, err)
	assert.Equal(t, "Use the pulse button.", answer)

	// question answering asks for plain text, not JSON output
	genConfig := gotReq["generationConfig"].(map[string]interface{})
	_, hasMime := genConfig["responseMimeType"]
	assert.False(t, hasMime)
}

func TestGeminiClient_Answer_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := gemini.NewClientWithEndpoint(testExtractorConfig(), server.URL)

	_, err := client.Answer(context.Background(), "q", "[]")
	assert.Error(t, err)
}
