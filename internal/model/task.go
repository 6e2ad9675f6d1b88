package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Task is one input unit read from the input store.
type Task struct {
	Name    string // object name; the output record is written under the same name
	Payload any    // decoded JSON, numbers kept as json.Number
	Seq     int    // 1-based position in the processing order of this process
}

// DecodeTask parses a task file. Any JSON value is accepted; only malformed
// JSON is an error.
func DecodeTask(name string, data []byte) (Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return Task{}, fmt.Errorf("decode task %s: %w", name, err)
	}
	return Task{Name: name, Payload: payload}, nil
}

// Fields returns the payload as a JSON object, or nil when it is not one.
func (t Task) Fields() map[string]any {
	m, _ := t.Payload.(map[string]any)
	return m
}

// Echo returns the part of the payload copied into the output record:
// the "task" member when present, the whole payload otherwise.
func (t Task) Echo() any {
	if f := t.Fields(); f != nil {
		if v, ok := f["task"]; ok {
			return v
		}
	}
	return t.Payload
}

// ContentKind labels what a task contained once normalized.
type ContentKind string

const (
	KindText  ContentKind = "text"
	KindChat  ContentKind = "chat"
	KindImage ContentKind = "image"
	KindHTML  ContentKind = "html_content"
)

// FragmentType distinguishes prompt fragments.
type FragmentType string

const (
	FragmentText  FragmentType = "text"
	FragmentImage FragmentType = "image"
)

// Fragment is one piece of a model prompt: plain text or an image reference.
type Fragment struct {
	Type     FragmentType `json:"type"`
	Text     string       `json:"text,omitempty"`
	URL      string       `json:"url,omitempty"`
	MIMEType string       `json:"mime_type,omitempty"`
}

// TextFragment builds a text fragment.
func TextFragment(s string) Fragment {
	return Fragment{Type: FragmentText, Text: s}
}

// ImageFragment builds an image reference fragment.
func ImageFragment(url, mimeType string) Fragment {
	return Fragment{Type: FragmentImage, URL: url, MIMEType: mimeType}
}

// NormalizedContent is a task reduced to prompt fragments.
type NormalizedContent struct {
	Kind      ContentKind
	Fragments []Fragment
}
