package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/openpaws/synthfeedback/internal/model"
)

var (
	// ErrExtractionFailed marks a webpage task whose page could not be read.
	ErrExtractionFailed = errors.New("webpage extraction failed")

	// ErrMalformedTask marks a task whose recognised field has the wrong shape.
	ErrMalformedTask = errors.New("malformed task")
)

const (
	textPreamble     = "Please evaluate the following text and provide your feedback:"
	dialoguePreamble = "Please evaluate the following dialogue and provide your feedback. " +
		"Focus on the last speaker's message while considering the context of the conversation:"
	imagePreamble    = "Please evaluate the following image and provide your feedback:"
	webpagePreamble  = "Please evaluate the content of the following website and provide your feedback:"
	fallbackPreamble = "Please evaluate the following data and provide your feedback:"
)

// imageTypes maps recognised image extensions to MIME types.
var imageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",
}

// PageExtractor reads the main text of a webpage. WebExtractor implements it.
type PageExtractor interface {
	Extract(ctx context.Context, rawURL string, maxChars int) (string, error)
}

// Normalizer turns raw task payloads into prompt fragments.
type Normalizer struct {
	pages    PageExtractor
	maxChars int
	logger   *zap.Logger
}

// NewNormalizer creates a Normalizer that reads webpages through pages.
func NewNormalizer(pages PageExtractor, maxChars int, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{pages: pages, maxChars: maxChars, logger: logger}
}

// Normalize dispatches on the task shape in the order text, dialogue, url,
// then falls back to the raw payload. Each field is looked up at the top level
// first and then under "data".
func (n *Normalizer) Normalize(ctx context.Context, task model.Task, p model.Persona) (model.NormalizedContent, error) {
	fields := task.Fields()

	if v, ok := lookup(fields, "text"); ok {
		text, ok := v.(string)
		if !ok {
			return model.NormalizedContent{}, fmt.Errorf("%w: text is %T, not a string", ErrMalformedTask, v)
		}
		return content(model.KindText, model.TextFragment(textPreamble), model.TextFragment(text)), nil
	}

	if v, ok := lookup(fields, "dialogue"); ok {
		transcript, err := formatDialogue(v)
		if err != nil {
			return model.NormalizedContent{}, err
		}
		return content(model.KindChat, model.TextFragment(dialoguePreamble), model.TextFragment(transcript)), nil
	}

	if v, ok := lookup(fields, "url"); ok {
		raw, ok := v.(string)
		if !ok || strings.TrimSpace(raw) == "" {
			return model.NormalizedContent{}, fmt.Errorf("%w: url must be a non-empty string", ErrMalformedTask)
		}
		return n.normalizeURL(ctx, strings.TrimSpace(raw), p)
	}

	data, err := json.Marshal(task.Payload)
	if err != nil {
		return model.NormalizedContent{}, fmt.Errorf("%w: %v", ErrMalformedTask, err)
	}
	return content(model.KindText, model.TextFragment(fallbackPreamble+"\n\n"+string(data))), nil
}

func (n *Normalizer) normalizeURL(ctx context.Context, rawURL string, p model.Persona) (model.NormalizedContent, error) {
	if mimeType, ok := ImageMIMEType(rawURL); ok {
		return content(model.KindImage, model.TextFragment(imagePreamble), model.ImageFragment(rawURL, mimeType)), nil
	}

	n.logger.Debug("Extracting webpage", zap.String("url", rawURL), zap.Int("persona_id", p.ID))
	text, err := n.pages.Extract(ctx, rawURL, n.maxChars)
	if err != nil {
		return model.NormalizedContent{}, fmt.Errorf("%w: %s: %w", ErrExtractionFailed, rawURL, err)
	}
	return content(model.KindHTML, model.TextFragment(webpagePreamble), model.TextFragment(text)), nil
}

// ImageMIMEType reports whether rawURL's path ends in a recognised image
// extension, and the MIME type for it.
func ImageMIMEType(rawURL string) (string, bool) {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	mimeType, ok := imageTypes[strings.ToLower(path.Ext(p))]
	return mimeType, ok
}

func formatDialogue(v any) (string, error) {
	entries, ok := v.([]any)
	if !ok {
		return "", fmt.Errorf("%w: dialogue is %T, not an array", ErrMalformedTask, v)
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: dialogue entry %d is %T, not an object", ErrMalformedTask, i, e)
		}
		author, _ := entry["author"].(string)
		text, _ := entry["text"].(string)
		lines = append(lines, capitalize(author)+": "+text)
	}
	return strings.Join(lines, "\n"), nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func lookup(fields map[string]any, key string) (any, bool) {
	if v, ok := fields[key]; ok {
		return v, true
	}
	if data, ok := fields["data"].(map[string]any); ok {
		v, ok := data[key]
		return v, ok
	}
	return nil, false
}

func content(kind model.ContentKind, fragments ...model.Fragment) model.NormalizedContent {
	return model.NormalizedContent{Kind: kind, Fragments: fragments}
}
