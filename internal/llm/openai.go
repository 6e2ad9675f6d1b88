package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/openpaws/synthfeedback/internal/model"
)

const ollamaBaseURL = "http://localhost:11434/v1"

// OpenAIProvider implements Provider for the Chat Completions API. It also
// serves Ollama through its OpenAI-compatible endpoint.
type OpenAIProvider struct {
	client *openai.Client
	config Config
	name   string
}

// NewOpenAIProvider creates a new OpenAI (or Ollama) provider.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	name := strings.ToLower(config.Provider)
	if name == "" {
		name = "openai"
	}

	if name == "ollama" {
		if config.BaseURL == "" {
			config.BaseURL = ollamaBaseURL
		}
		if config.Model == "" {
			config.Model = "llava"
		}
	} else {
		if config.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		if config.Model == "" {
			config.Model = openai.GPT4oMini
		}
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
		name:   name,
	}, nil
}

// Name returns "openai" or "ollama".
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Model returns the model name.
func (p *OpenAIProvider) Model() string {
	return p.config.Model
}

// Generate sends the request as one system and one user message.
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := withTimeout(ctx, p.config.Timeout)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openAIUserMessage(req.Parts))

	chatReq := openai.ChatCompletionRequest{
		Model:     p.config.Model,
		Messages:  messages,
		MaxTokens: p.config.maxTokens(req),
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	out := &Response{
		Text:         text,
		Model:        resp.Model,
		InputTokens:  int64(resp.Usage.PromptTokens),
		OutputTokens: int64(resp.Usage.CompletionTokens),
		FinishReason: string(resp.Choices[0].FinishReason),
	}
	if out.Model == "" {
		out.Model = p.config.Model
	}
	return out, nil
}

// openAIUserMessage uses plain content for text-only prompts and multi-part
// content when images are present. The API rejects messages that set both.
func openAIUserMessage(parts []model.Fragment) openai.ChatCompletionMessage {
	if !hasImages(parts) {
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: flattenText(parts),
		}
	}

	multi := make([]openai.ChatMessagePart, 0, len(parts))
	for _, f := range parts {
		if f.Type == model.FragmentImage {
			multi = append(multi, openai.ChatMessagePart{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: f.URL},
			})
			continue
		}
		multi = append(multi, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: f.Text,
		})
	}
	return openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: multi,
	}
}
