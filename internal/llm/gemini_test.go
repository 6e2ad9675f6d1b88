package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openpaws/synthfeedback/internal/model"
)

const geminiOK = `{
	"candidates": [{
		"content": {"role": "model", "parts": [{"text": "{\"rating_relevance\": 4}"}]},
		"finishReason": "STOP"
	}],
	"usageMetadata": {"promptTokenCount": 30, "candidatesTokenCount": 9, "totalTokenCount": 39},
	"modelVersion": "gemini-1.5-pro-002"
}`

func TestGeminiProvider_Generate_Success(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-1.5-pro:generateContent") {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiOK))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(context.Background(), Config{
		Provider: "gemini",
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Model:    "gemini-1.5-pro",
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	if provider.Name() != "gemini" {
		t.Errorf("Expected gemini backend, got %s", provider.Name())
	}

	resp, err := provider.Generate(context.Background(), Request{
		System: "system rules",
		Parts: []model.Fragment{
			model.TextFragment("evaluate"),
			model.ImageFragment("https://x/pic.webp", "image/webp"),
		},
		JSON: true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.Text != `{"rating_relevance": 4}` {
		t.Errorf("Unexpected text: %s", resp.Text)
	}
	if resp.Model != "gemini-1.5-pro-002" {
		t.Errorf("Expected model version from response, got %s", resp.Model)
	}
	if resp.InputTokens != 30 || resp.OutputTokens != 9 {
		t.Errorf("Unexpected usage: %d/%d", resp.InputTokens, resp.OutputTokens)
	}
	if resp.FinishReason != "STOP" {
		t.Errorf("Unexpected finish reason: %s", resp.FinishReason)
	}

	encoded, _ := json.Marshal(body)
	for _, want := range []string{`"system rules"`, `"fileUri":"https://x/pic.webp"`, `"application/json"`} {
		if !strings.Contains(string(encoded), want) {
			t.Errorf("Request body missing %s: %s", want, encoded)
		}
	}
}

func TestGeminiProvider_Generate_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	provider, err := NewGeminiProvider(context.Background(), Config{APIKey: "k", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	if _, err := provider.Generate(context.Background(), Request{Parts: []model.Fragment{model.TextFragment("x")}}); err != ErrEmptyResponse {
		t.Errorf("Expected ErrEmptyResponse, got %v", err)
	}
}

func TestNewGeminiProvider_RequiresCredentials(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), Config{Provider: "gemini"}); err == nil {
		t.Error("Expected error without API key or project")
	}
	if _, err := NewGeminiProvider(context.Background(), Config{Provider: "vertex"}); err == nil {
		t.Error("Expected error for vertex without project")
	}
}
