package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"transcript/models"
)

func sampleTranscript() models.Transcript {
	segments := []models.Segment{
		{Start: 0, Duration: 3, Text: "alpha"},
		{Start: 3, Duration: 4, Text: "beta"},
		{Start: 7, Duration: 5, Text: "gamma"},
		{Start: 12, Duration: 2, Text: "delta"},
	}
	groups := []models.Group{
		{Start: "00:00:00", Text: "alpha beta gamma"},
		{Start: "00:00:12", Text: "delta"},
	}
	return NewTranscript(segments, groups)
}

func TestNewTranscript(t *testing.T) {
	tr := sampleTranscript()

	if tr.TotalDuration != "00:00:14" {
		t.Errorf("Expected total duration 00:00:14, got %s", tr.TotalDuration)
	}
	if tr.TotalDurationSeconds != 14 {
		t.Errorf("Expected 14 total seconds, got %.2f", tr.TotalDurationSeconds)
	}
	if len(tr.Groups) != 2 {
		t.Errorf("Expected 2 groups, got %d", len(tr.Groups))
	}
}

func TestNewTranscript_Empty(t *testing.T) {
	tr := NewTranscript(nil, nil)

	if tr.Groups == nil {
		t.Error("Groups should be an empty slice so JSON renders []")
	}
	if tr.TotalDuration != "00:00:00" {
		t.Errorf("Expected 00:00:00, got %s", tr.TotalDuration)
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTranscript(), FormatJSON); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}

	for _, key := range []string{"transcript", "total_duration", "total_duration_seconds"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Expected key %q in output", key)
		}
	}
	if decoded["total_duration"] != "00:00:14" {
		t.Errorf("Unexpected total_duration: %v", decoded["total_duration"])
	}

	groups, ok := decoded["transcript"].([]interface{})
	if !ok || len(groups) != 2 {
		t.Fatalf("Expected transcript array of 2, got %v", decoded["transcript"])
	}
	first := groups[0].(map[string]interface{})
	if first["start"] != "00:00:00" || first["text"] != "alpha beta gamma" {
		t.Errorf("Unexpected first group: %v", first)
	}
}

func TestRender_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, NewTranscript(nil, nil), FormatJSON); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"transcript": []`) {
		t.Errorf("Expected empty transcript array, got:\n%s", buf.String())
	}
}

func TestRender_JSONDoesNotEscapeHTML(t *testing.T) {
	tr := NewTranscript(nil, []models.Group{{Start: "00:00:00", Text: "Tom & <Jerry>"}})

	var buf bytes.Buffer
	if err := Render(&buf, tr, FormatJSON); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Tom & <Jerry>") {
		t.Errorf("Expected raw text in output, got:\n%s", buf.String())
	}
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTranscript(), FormatMarkdown); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Transcript", "- Duration: 00:00:14", "**[00:00:00]** alpha beta gamma", "**[00:00:12]** delta"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected markdown to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTranscript(), FormatText); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "[00:00:00] alpha beta gamma\n[00:00:12] delta\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTranscript(), Format("pdf")); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestExtension(t *testing.T) {
	tests := map[Format]string{
		FormatJSON:     ".json",
		FormatMarkdown: ".md",
		FormatText:     ".txt",
	}
	for format, ext := range tests {
		if got := Extension(format); got != ext {
			t.Errorf("Extension(%s) = %s; want %s", format, got, ext)
		}
	}
}
