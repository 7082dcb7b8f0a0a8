package source

import (
	"strings"
	"testing"

	"transcript/models"
)

func TestNewCueParser(t *testing.T) {
	parser := NewCueParser()

	if parser == nil {
		t.Fatal("NewCueParser returned nil")
	}
	if parser.timingRegex == nil {
		t.Error("timingRegex not initialized")
	}
	if parser.tagRegex == nil {
		t.Error("tagRegex not initialized")
	}
}

func TestCueParser_ParseTiming(t *testing.T) {
	parser := NewCueParser()

	tests := []struct {
		name      string
		line      string
		start     float64
		end       float64
		ok        bool
		wantError bool
	}{
		{name: "webvtt", line: "00:00:01.000 --> 00:00:04.500", start: 1, end: 4.5, ok: true},
		{name: "srt", line: "00:01:00,250 --> 00:01:02,750", start: 60.25, end: 62.75, ok: true},
		{name: "short webvtt", line: "01:02.000 --> 01:04.000", start: 62, end: 64, ok: true},
		{name: "with cue settings", line: "00:00:05.000 --> 00:00:06.000 align:start position:0%", start: 5, end: 6, ok: true},
		{name: "long hours", line: "100:00:00.000 --> 100:00:01.000", start: 360000, end: 360001, ok: true},
		{name: "text line", line: "hello there", ok: false},
		{name: "srt index", line: "12", ok: false},
		{name: "header", line: "WEBVTT", ok: false},
		{name: "end before start", line: "00:00:05.000 --> 00:00:01.000", ok: true, wantError: true},
		{name: "minutes out of range", line: "00:75:00.000 --> 00:76:00.000", ok: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok, err := parser.ParseTiming(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseTiming(%q) ok = %v; want %v", tt.line, ok, tt.ok)
			}
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseTiming(%q) expected error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTiming(%q) unexpected error: %v", tt.line, err)
			}
			if start != tt.start || end != tt.end {
				t.Errorf("ParseTiming(%q) = %.3f, %.3f; want %.3f, %.3f", tt.line, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestCueParser_CleanText(t *testing.T) {
	parser := NewCueParser()

	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"<i>italic</i> text", "italic text"},
		{"<c.colorE5E5E5>we<00:00:01.120><c> are</c>", "we are"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"  padded  ", "padded"},
		{"<v Roger>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parser.CleanText(tt.input); got != tt.expected {
				t.Errorf("CleanText(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCueParser_ParseWebVTT(t *testing.T) {
	input := "\ufeffWEBVTT\r\nKind: captions\r\n\r\n" +
		"NOTE this block is ignored\r\n00:00:00.000 is not a cue\r\n\r\n" +
		"intro\r\n00:00:00.000 --> 00:00:03.000\r\nalpha\r\n\r\n" +
		"00:00:03.000 --> 00:00:07.000 align:start\r\n<c>beta</c>\r\nsecond line\r\n\r\n" +
		"00:00:07.000 --> 00:00:08.000\r\n<c></c>\r\n\r\n" +
		"00:00:12.000 --> 00:00:14.000\r\ndelta"

	segments, err := NewCueParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assertSegments(t, segments, []models.Segment{
		{Start: 0, Duration: 3, Text: "alpha"},
		{Start: 3, Duration: 4, Text: "beta second line"},
		{Start: 12, Duration: 2, Text: "delta"},
	})
}

func TestCueParser_ParseSRT(t *testing.T) {
	input := `1
00:00:00,000 --> 00:00:02,500
Hello

2
00:00:02,500 --> 00:00:05,000
world
again
`
	segments, err := Decode(strings.NewReader(input), FormatSRT)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	assertSegments(t, segments, []models.Segment{
		{Start: 0, Duration: 2.5, Text: "Hello"},
		{Start: 2.5, Duration: 2.5, Text: "world again"},
	})
}

func TestCueParser_ParseErrors(t *testing.T) {
	input := "WEBVTT\n\n00:00:05.000 --> 00:00:01.000\nbackwards\n"

	_, err := NewCueParser().Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("Expected error for cue ending before it starts")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected error to name line 3, got: %v", err)
	}
}

func TestCueParser_ParseEmpty(t *testing.T) {
	segments, err := NewCueParser().Parse(strings.NewReader("WEBVTT\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if segments == nil || len(segments) != 0 {
		t.Errorf("Expected empty non-nil segments, got %#v", segments)
	}
}
