// Package models provides core data structures for the transcript formatter.
package models

import (
	"fmt"
	"math"
)

// Segment is a single timed unit of transcript text as delivered by a
// speech-to-text or captioning source.
//
// Segments are treated as immutable values. The formatter never re-sorts
// them; ordering by non-decreasing Start is the producer's responsibility.
//
// Note: Start and Duration use float64 to preserve fractional seconds, the
// same way caption sources report them (e.g. 12.48).
type Segment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// NewSegment creates a new Segment with validation.
//
// Example:
//
//	seg, err := models.NewSegment(12.5, 3.2, "hello there")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewSegment(start, duration float64, text string) (*Segment, error) {
	s := &Segment{
		Start:    start,
		Duration: duration,
		Text:     text,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segment: %w", err)
	}
	return s, nil
}

// Validate checks if the Segment carries well-formed timing.
//
// Returns an error if:
//   - Start or Duration is NaN or infinite
//   - Start is negative
//   - Duration is negative
//
// Empty text is allowed; caption sources emit blank cues for pauses.
func (s *Segment) Validate() error {
	if math.IsNaN(s.Start) || math.IsInf(s.Start, 0) {
		return fmt.Errorf("start must be a finite number")
	}
	if math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) {
		return fmt.Errorf("duration must be a finite number")
	}

	if s.Start < 0 {
		return fmt.Errorf("start cannot be negative")
	}

	if s.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}

	return nil
}

// End returns the offset at which the segment stops being spoken.
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// TotalDuration sums the Duration of every segment.
//
// This is the figure reported as the transcript's total duration: gaps
// between segments are not counted and overlaps are counted twice.
func TotalDuration(segments []Segment) float64 {
	total := 0.0
	for _, s := range segments {
		total += s.Duration
	}
	return total
}
