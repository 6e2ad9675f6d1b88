package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/openpaws/synthfeedback/internal/model"
)

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:      "chatcmpl-123",
		Object:  "chat.completion",
		Created: 1677652288,
		Model:   "gpt-4o-mini",
		Choices: []openai.ChatCompletionChoice{
			{
				Index: 0,
				Message: openai.ChatCompletionMessage{
					Role:    "assistant",
					Content: content,
				},
				FinishReason: "stop",
			},
		},
		Usage: openai.Usage{PromptTokens: 40, CompletionTokens: 12, TotalTokens: 52},
	}
}

func TestOpenAIProvider_Generate_Success(t *testing.T) {
	var got openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header Bearer test-key, got %s", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(chatResponse(`{"is_content_harmful_to_animals": "No"}`))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: server.URL, Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Generate(context.Background(), Request{
		System: "system rules",
		Parts:  []model.Fragment{model.TextFragment("persona"), model.TextFragment("hello")},
		JSON:   true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.Text != `{"is_content_harmful_to_animals": "No"}` {
		t.Errorf("Unexpected text: %s", resp.Text)
	}
	if resp.InputTokens != 40 || resp.OutputTokens != 12 {
		t.Errorf("Unexpected usage: %d/%d", resp.InputTokens, resp.OutputTokens)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("Expected system + user messages, got %+v", got.Messages)
	}
	if got.Messages[1].Content != "persona\n\nhello" {
		t.Errorf("Unexpected user content: %q", got.Messages[1].Content)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Errorf("Expected JSON response format, got %+v", got.ResponseFormat)
	}
}

func TestOpenAIProvider_Generate_ImagePartsUseMultiContent(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_ = json.NewEncoder(w).Encode(chatResponse("{}"))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Generate(context.Background(), Request{
		Parts: []model.Fragment{
			model.TextFragment("Please evaluate the following image"),
			model.ImageFragment("https://x/pic.png", "image/png"),
		},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	messages := raw["messages"].([]any)
	user := messages[len(messages)-1].(map[string]any)
	content, ok := user["content"].([]any)
	if !ok || len(content) != 2 {
		t.Fatalf("Expected 2 content parts, got %v", user["content"])
	}
	image := content[1].(map[string]any)
	if image["type"] != "image_url" {
		t.Errorf("Expected image_url part, got %v", image["type"])
	}
}

func TestOpenAIProvider_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "Internal Server Error", "type": "server_error"}}`))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.Generate(context.Background(), Request{Parts: []model.Fragment{model.TextFragment("x")}}); err == nil {
		t.Fatal("Expected error, got nil")
	}
}

func TestOpenAIProvider_Generate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := chatResponse("")
		resp.Choices = nil
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, _ := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := provider.Generate(context.Background(), Request{Parts: []model.Fragment{model.TextFragment("x")}})
	if err != ErrEmptyResponse {
		t.Errorf("Expected ErrEmptyResponse, got %v", err)
	}
}

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{Provider: "openai"}); err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestNewOpenAIProvider_OllamaDefaults(t *testing.T) {
	provider, err := NewOpenAIProvider(Config{Provider: "ollama"})
	if err != nil {
		t.Fatalf("Ollama needs no API key, got %v", err)
	}
	if provider.Name() != "ollama" {
		t.Errorf("Expected name ollama, got %s", provider.Name())
	}
	if provider.config.BaseURL != ollamaBaseURL {
		t.Errorf("Expected default base URL %s, got %s", ollamaBaseURL, provider.config.BaseURL)
	}
}
