package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/openpaws/synthfeedback/internal/model"
)

// AnthropicProvider implements Provider for Anthropic Claude models.
// Works with both the direct Anthropic API and Azure AI Foundry.
type AnthropicProvider struct {
	client anthropic.Client
	config Config
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(config Config) (*AnthropicProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}
	if config.Model == "" {
		config.Model = "claude-sonnet-4-5"
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		// Retries are owned by WithRetry.
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(opts...),
		config: config,
	}, nil
}

// Name returns "anthropic".
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Model returns the model name.
func (p *AnthropicProvider) Model() string {
	return p.config.Model
}

// Generate sends the request through the Messages API.
func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := withTimeout(ctx, p.config.Timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.config.Model),
		MaxTokens: int64(p.config.maxTokens(req)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropicBlocks(req.Parts)...),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic API call failed: %w", err)
	}

	var texts []string
	for _, block := range resp.Content {
		if block.Type == "text" {
			texts = append(texts, block.Text)
		}
	}
	text := strings.TrimSpace(strings.Join(texts, ""))
	if text == "" {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:         text,
		Model:        string(resp.Model),
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
		FinishReason: string(resp.StopReason),
	}, nil
}

func anthropicBlocks(parts []model.Fragment) []anthropic.ContentBlockParamUnion {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(parts))
	for _, f := range parts {
		if f.Type == model.FragmentImage {
			blocks = append(blocks, anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: f.URL}))
			continue
		}
		blocks = append(blocks, anthropic.NewTextBlock(f.Text))
	}
	return blocks
}
