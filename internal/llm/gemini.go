package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/openpaws/synthfeedback/internal/model"
)

// GeminiProvider implements Provider for Gemini models, through either the
// Gemini API (API key) or Vertex AI (project and location).
type GeminiProvider struct {
	client  *genai.Client
	config  Config
	backend string
}

// NewGeminiProvider creates a Gemini provider. Provider "vertex", or a project
// id without an API key, selects the Vertex AI backend with application
// default credentials.
func NewGeminiProvider(ctx context.Context, config Config) (*GeminiProvider, error) {
	if config.Model == "" {
		config.Model = "gemini-1.5-pro"
	}

	clientConfig := &genai.ClientConfig{}
	useVertex := strings.EqualFold(config.Provider, "vertex") || (config.APIKey == "" && config.ProjectID != "")

	switch {
	case useVertex:
		if config.ProjectID == "" {
			return nil, fmt.Errorf("vertex AI requires a project id")
		}
		clientConfig.Backend = genai.BackendVertexAI
		clientConfig.Project = config.ProjectID
		clientConfig.Location = config.Location
	case config.APIKey != "":
		clientConfig.Backend = genai.BackendGeminiAPI
		clientConfig.APIKey = config.APIKey
	default:
		return nil, fmt.Errorf("gemini requires an API key or a project id")
	}

	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	backend := "gemini"
	if useVertex {
		backend = "vertex"
	}
	return &GeminiProvider{client: client, config: config, backend: backend}, nil
}

// Name returns "gemini" or "vertex" depending on the backend.
func (p *GeminiProvider) Name() string {
	return p.backend
}

// Model returns the model name.
func (p *GeminiProvider) Model() string {
	return p.config.Model
}

// Generate sends the request through GenerateContent.
func (p *GeminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := withTimeout(ctx, p.config.Timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(p.config.maxTokens(req)),
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		genConfig.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(geminiParts(req.Parts), genai.RoleUser),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.config.Model, contents, genConfig)
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ErrEmptyResponse
	}

	out := &Response{Text: text, Model: p.config.Model}
	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}
	if len(resp.Candidates) > 0 {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if resp.UsageMetadata != nil {
		out.InputTokens = int64(resp.UsageMetadata.PromptTokenCount)
		out.OutputTokens = int64(resp.UsageMetadata.CandidatesTokenCount)
	}
	return out, nil
}

func geminiParts(fragments []model.Fragment) []*genai.Part {
	parts := make([]*genai.Part, 0, len(fragments))
	for _, f := range fragments {
		switch f.Type {
		case model.FragmentImage:
			parts = append(parts, genai.NewPartFromURI(f.URL, f.MIMEType))
		default:
			parts = append(parts, genai.NewPartFromText(f.Text))
		}
	}
	return parts
}
