package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestMainText_ContentElementsInOrder(t *testing.T) {
	page := `
	<html>
	<head><title>Ignored title</title><style>p { color: red }</style></head>
	<body>
		<header><h1>Site banner</h1></header>
		<nav><ul><li>Home</li><li>About</li></ul></nav>
		<h1>Sanctuary   news</h1>
		<p>Forty hens were
		rescued this week.</p>
		<div>Loose div text is not content.</div>
		<ul><li>Food</li><li>Shelter</li></ul>
		<blockquote>They are thriving.</blockquote>
		<script>var tracking = true;</script>
		<aside><p>Related links</p></aside>
		<footer><p>Copyright</p></footer>
	</body>
	</html>
	`

	got, err := MainText(page, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "Sanctuary news Forty hens were rescued this week. Food Shelter They are thriving."
	if got != want {
		t.Errorf("MainText() =\n  %q\nwant:\n  %q", got, want)
	}
}

func TestMainText_NestedElementsRepeatText(t *testing.T) {
	page := `<ul><li><p>Nested</p></li></ul>`

	got, err := MainText(page, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "Nested Nested" {
		t.Errorf("MainText() = %q, want %q", got, "Nested Nested")
	}
}

func TestMainText_SkipsScriptInsideContent(t *testing.T) {
	page := `<p>Visible<script>hidden()</script> text</p>`

	got, err := MainText(page, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "Visible text" {
		t.Errorf("MainText() = %q, want %q", got, "Visible text")
	}
}

func TestMainText_NoContent(t *testing.T) {
	_, err := MainText(`<html><body><div>only divs</div><p>   </p></body></html>`, 0)
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("Expected ErrNoContent, got %v", err)
	}
}

func TestMainText_Truncates(t *testing.T) {
	page := "<p>" + strings.Repeat("a", 50) + "</p>"

	got, err := MainText(page, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got) != 10 {
		t.Errorf("Expected 10 characters, got %d", len(got))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello world", 5, "hello"},
		{"hello", 10, "hello"},
		{"hello", 0, "hello"},
		{"héllo wörld", 4, "héll"},
		{"日本語テキスト", 3, "日本語"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
