// Package output renders aggregated transcripts for display or export.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"transcript/internal/timeutil"
	"transcript/models"
)

// Format identifies a rendering of the transcript document.
type Format string

const (
	FormatJSON     Format = "json"     // Response document, indented JSON
	FormatMarkdown Format = "markdown" // Markdown with a bold timestamp per group
	FormatText     Format = "text"     // One "[HH:MM:SS] text" line per group
)

// FormatValues returns valid output format values
func FormatValues() []string {
	return []string{string(FormatJSON), string(FormatMarkdown), string(FormatText)}
}

// IsValidFormat checks if format is a known output format
func IsValidFormat(format string) bool {
	for _, valid := range FormatValues() {
		if format == valid {
			return true
		}
	}
	return false
}

// Extension returns the file extension written for format.
func Extension(format Format) string {
	switch format {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return ".json"
	}
}

// NewTranscript assembles the response document for groups aggregated from
// segments. The total duration is the sum of every raw segment's duration.
func NewTranscript(segments []models.Segment, groups []models.Group) models.Transcript {
	if groups == nil {
		groups = []models.Group{}
	}
	total := models.TotalDuration(segments)
	return models.Transcript{
		Groups:               groups,
		TotalDuration:        timeutil.FormatSeconds(total),
		TotalDurationSeconds: total,
	}
}

// Render writes t to w in the requested format.
func Render(w io.Writer, t models.Transcript, format Format) error {
	switch format {
	case FormatJSON, "":
		return renderJSON(w, t)
	case FormatMarkdown:
		_, err := io.WriteString(w, RenderMarkdown(t))
		return err
	case FormatText:
		_, err := io.WriteString(w, RenderText(t))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderJSON(w io.Writer, t models.Transcript) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	return nil
}

// RenderMarkdown renders the transcript as a Markdown document.
func RenderMarkdown(t models.Transcript) string {
	var b strings.Builder
	b.WriteString("# Transcript\n\n")
	fmt.Fprintf(&b, "- Duration: %s\n", t.TotalDuration)
	fmt.Fprintf(&b, "- Groups: %d\n", len(t.Groups))
	b.WriteString("\n---\n\n")

	for _, g := range t.Groups {
		fmt.Fprintf(&b, "**[%s]** %s\n\n", g.Start, strings.TrimSpace(g.Text))
	}
	return b.String()
}

// RenderText renders one line per group.
func RenderText(t models.Transcript) string {
	var b strings.Builder
	for _, g := range t.Groups {
		fmt.Fprintf(&b, "[%s] %s\n", g.Start, strings.TrimSpace(g.Text))
	}
	return b.String()
}
