// Package source decodes transcript files into raw segments.
//
// Supported inputs are JSON segment lists (the shape caption providers
// return: objects with start, duration and text), WebVTT and SRT subtitle
// files. Decoding is the validation boundary for the formatter: every
// segment that leaves this package has a finite, non-negative start and
// duration.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"transcript/models"
)

// Format identifies a transcript file encoding.
type Format string

const (
	FormatAuto Format = "auto" // Pick by file extension
	FormatJSON Format = "json" // JSON segment list
	FormatVTT  Format = "vtt"  // WebVTT cues
	FormatSRT  Format = "srt"  // SubRip cues
)

// FormatValues returns valid input format values
func FormatValues() []string {
	return []string{string(FormatAuto), string(FormatJSON), string(FormatVTT), string(FormatSRT)}
}

// IsValidFormat checks if format is a known input format
func IsValidFormat(format string) bool {
	for _, valid := range FormatValues() {
		if format == valid {
			return true
		}
	}
	return false
}

// DetectFormat picks the input format from the file extension.
// Unknown extensions are read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt", ".webvtt":
		return FormatVTT
	case ".srt":
		return FormatSRT
	default:
		return FormatJSON
	}
}

// Load reads and decodes the transcript file at path.
//
// With FormatAuto (or an empty format) the encoding is detected from the
// file extension.
//
// Example:
//
//	segments, err := source.Load("talk.vtt", source.FormatAuto)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Load(path string, format Format) ([]models.Segment, error) {
	if path == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	segments, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return segments, nil
}

// Decode reads segments in the given format from r.
//
// FormatAuto is not accepted here since there is no file name to inspect.
func Decode(r io.Reader, format Format) ([]models.Segment, error) {
	var segments []models.Segment
	var err error

	switch format {
	case FormatJSON:
		segments, err = decodeJSON(r)
	case FormatVTT, FormatSRT:
		segments, err = NewCueParser().Parse(r)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateSegments(segments); err != nil {
		return nil, err
	}
	return segments, nil
}

// ValidateSegments validates every segment, naming the first bad one by
// its 1-based position.
func ValidateSegments(segments []models.Segment) error {
	for i := range segments {
		if err := segments[i].Validate(); err != nil {
			return fmt.Errorf("segment %d is invalid: %w", i+1, err)
		}
	}
	return nil
}
