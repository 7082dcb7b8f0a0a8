package source

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"transcript/internal/timeutil"
	"transcript/models"
)

// CueParser parses WebVTT and SRT subtitle cues into segments.
//
// Both formats share the same block layout: an optional identifier line,
// a timing line ("start --> end", with optional cue settings after it) and
// one or more text lines terminated by a blank line. Anything outside a
// cue block (the WEBVTT header, NOTE and STYLE blocks, SRT indexes) is
// skipped.
type CueParser struct {
	timingRegex *regexp.Regexp
	tagRegex    *regexp.Regexp
}

// NewCueParser creates a new parser for subtitle cue files
func NewCueParser() *CueParser {
	return &CueParser{
		// Matches "00:00:01.000 --> 00:00:04.500", "01:02.000 --> 01:04.000"
		// and the SRT comma form "00:00:01,000 --> 00:00:04,500"
		timingRegex: regexp.MustCompile(`^((?:\d+:)?\d{2}:\d{2}[.,]\d{1,3})\s+-->\s+((?:\d+:)?\d{2}:\d{2}[.,]\d{1,3})`),
		// Inline markup: <c.color>, </c>, <i>, <00:00:01.000> karaoke stamps
		tagRegex: regexp.MustCompile(`<[^>]*>`),
	}
}

// ParseTiming parses a cue timing line into start and end seconds.
// ok is false when the line is not a timing line.
func (cp *CueParser) ParseTiming(line string) (start, end float64, ok bool, err error) {
	matches := cp.timingRegex.FindStringSubmatch(strings.TrimSpace(line))
	if len(matches) < 3 {
		return 0, 0, false, nil
	}

	start, err = timeutil.ParseTimestamp(matches[1])
	if err != nil {
		return 0, 0, true, err
	}
	end, err = timeutil.ParseTimestamp(matches[2])
	if err != nil {
		return 0, 0, true, err
	}
	if end < start {
		return 0, 0, true, fmt.Errorf("cue ends at %.3f before it starts at %.3f", end, start)
	}
	return start, end, true, nil
}

// CleanText strips inline markup and decodes HTML entities in cue text.
func (cp *CueParser) CleanText(line string) string {
	return strings.TrimSpace(html.UnescapeString(cp.tagRegex.ReplaceAllString(line, "")))
}

// Parse reads cues from r until EOF.
//
// Multi-line cue text is joined with single spaces. Cues whose text is
// empty once markup is removed are dropped.
func (cp *CueParser) Parse(r io.Reader) ([]models.Segment, error) {
	scanner := bufio.NewScanner(r)

	// Long karaoke-style cues can exceed the default 64KiB token size
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var segments []models.Segment
	var inCue bool
	var cueStart, cueEnd float64
	var textLines []string
	lineNo := 0

	flush := func() {
		if inCue && len(textLines) > 0 {
			segments = append(segments, models.Segment{
				Start:    cueStart,
				Duration: cueEnd - cueStart,
				Text:     strings.Join(textLines, " "),
			})
		}
		inCue = false
		textLines = nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimRight(line, "\r")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		start, end, ok, err := cp.ParseTiming(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if ok {
			flush()
			inCue = true
			cueStart, cueEnd = start, end
			continue
		}

		if inCue {
			if text := cp.CleanText(line); text != "" {
				textLines = append(textLines, text)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle cues: %w", err)
	}
	flush()

	if segments == nil {
		segments = []models.Segment{}
	}
	return segments, nil
}
