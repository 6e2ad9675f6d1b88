package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpaws/synthfeedback/internal/model"
)

type stubPages struct {
	text  string
	err   error
	calls []string
}

func (s *stubPages) Extract(_ context.Context, rawURL string, _ int) (string, error) {
	s.calls = append(s.calls, rawURL)
	return s.text, s.err
}

func decode(t *testing.T, payload string) model.Task {
	t.Helper()
	task, err := model.DecodeTask("task.json", []byte(payload))
	require.NoError(t, err)
	return task
}

func joined(c model.NormalizedContent) string {
	var parts []string
	for _, f := range c.Fragments {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, "\n")
}

var testPersona = model.Persona{ID: 1, Species: "Cow", Role: "on a farm"}

func TestNormalize_Text(t *testing.T) {
	n := NewNormalizer(&stubPages{}, 100, nil)

	got, err := n.Normalize(context.Background(), decode(t, `{"text": "hello"}`), testPersona)
	require.NoError(t, err)
	assert.Equal(t, model.KindText, got.Kind)
	assert.Contains(t, joined(got), "hello")
}

func TestNormalize_Dialogue(t *testing.T) {
	n := NewNormalizer(&stubPages{}, 100, nil)

	got, err := n.Normalize(context.Background(),
		decode(t, `{"dialogue": [{"author": "cow", "text": "moo"}, {"author": "FARMER", "text": "hi"}]}`), testPersona)
	require.NoError(t, err)
	assert.Equal(t, model.KindChat, got.Kind)
	require.Len(t, got.Fragments, 2)
	assert.Equal(t, "Cow: moo\nFarmer: hi", got.Fragments[1].Text)
}

func TestNormalize_LabelStudioNesting(t *testing.T) {
	n := NewNormalizer(&stubPages{}, 100, nil)

	got, err := n.Normalize(context.Background(),
		decode(t, `{"id": 4, "data": {"dialogue": [{"author": "pig", "text": "oink"}]}}`), testPersona)
	require.NoError(t, err)
	assert.Equal(t, model.KindChat, got.Kind)
	assert.Contains(t, joined(got), "Pig: oink")
}

func TestNormalize_TopLevelWinsOverData(t *testing.T) {
	n := NewNormalizer(&stubPages{}, 100, nil)

	got, err := n.Normalize(context.Background(),
		decode(t, `{"text": "outer", "data": {"dialogue": []}}`), testPersona)
	require.NoError(t, err)
	assert.Equal(t, model.KindText, got.Kind)
}

func TestNormalize_Image(t *testing.T) {
	pages := &stubPages{}
	n := NewNormalizer(pages, 100, nil)

	got, err := n.Normalize(context.Background(), decode(t, `{"url": "http://x/pic.png"}`), testPersona)
	require.NoError(t, err)
	assert.Equal(t, model.KindImage, got.Kind)

	require.Len(t, got.Fragments, 2)
	img := got.Fragments[1]
	assert.Equal(t, model.FragmentImage, img.Type)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, "http://x/pic.png", img.URL)
	assert.Empty(t, pages.calls, "image URLs must not be fetched as webpages")
}

func TestNormalize_Webpage(t *testing.T) {
	pages := &stubPages{text: "Sanctuary news"}
	n := NewNormalizer(pages, 100, nil)

	got, err := n.Normalize(context.Background(), decode(t, `{"url": "https://example.com/news"}`), testPersona)
	require.NoError(t, err)
	assert.Equal(t, model.KindHTML, got.Kind)
	assert.Contains(t, joined(got), "Sanctuary news")
	assert.Equal(t, []string{"https://example.com/news"}, pages.calls)
}

func TestNormalize_WebpageFailure(t *testing.T) {
	n := NewNormalizer(&stubPages{err: errors.New("connection refused")}, 100, nil)

	_, err := n.Normalize(context.Background(), decode(t, `{"url": "http://x/page"}`), testPersona)
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.NotErrorIs(t, err, ErrMalformedTask)
}

func TestNormalize_Fallback(t *testing.T) {
	n := NewNormalizer(&stubPages{}, 100, nil)

	for _, payload := range []string{`{"image": "x", "n": 12}`, `[1, 2]`, `"just a string"`} {
		got, err := n.Normalize(context.Background(), decode(t, payload), testPersona)
		require.NoError(t, err, payload)
		assert.Equal(t, model.KindText, got.Kind)
		require.Len(t, got.Fragments, 1)
		assert.True(t, strings.HasPrefix(got.Fragments[0].Text, fallbackPreamble+"\n\n"), got.Fragments[0].Text)
	}

	got, err := n.Normalize(context.Background(), decode(t, `{"n": 12}`), testPersona)
	require.NoError(t, err)
	assert.Contains(t, got.Fragments[0].Text, `{"n":12}`)
}

func TestNormalize_Malformed(t *testing.T) {
	n := NewNormalizer(&stubPages{}, 100, nil)

	for _, payload := range []string{
		`{"text": 42}`,
		`{"dialogue": "not a list"}`,
		`{"dialogue": ["not an object"]}`,
		`{"url": ""}`,
		`{"url": 7}`,
	} {
		_, err := n.Normalize(context.Background(), decode(t, payload), testPersona)
		assert.ErrorIs(t, err, ErrMalformedTask, payload)
	}
}

func TestImageMIMEType(t *testing.T) {
	tests := []struct {
		url      string
		wantType string
		wantOK   bool
	}{
		{"http://x/a.png", "image/png", true},
		{"http://x/a.JPG", "image/jpeg", true},
		{"http://x/a.jpeg?size=large", "image/jpeg", true},
		{"http://x/a.webp", "image/webp", true},
		{"http://x/a.heic", "image/heic", true},
		{"http://x/a.tiff", "image/tiff", true},
		{"http://x/page.html", "", false},
		{"http://x/png", "", false},
		{"http://x/a.png/view", "", false},
	}

	for _, tt := range tests {
		gotType, gotOK := ImageMIMEType(tt.url)
		if gotType != tt.wantType || gotOK != tt.wantOK {
			t.Errorf("ImageMIMEType(%q) = %q, %v; want %q, %v", tt.url, gotType, gotOK, tt.wantType, tt.wantOK)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"cow":    "Cow",
		"FARMER": "Farmer",
		"":       "",
		"élan":   "Élan",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
