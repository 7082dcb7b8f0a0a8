// Package aggregator merges raw transcript segments into time-bucketed
// display groups.
package aggregator

import (
	"fmt"
	"strings"

	"transcript/internal/timeutil"
	"transcript/models"
)

// DefaultMinDuration is the accumulated duration, in seconds, a group must
// reach before it is closed.
const DefaultMinDuration = 10.0

// Aggregator groups consecutive segments until their summed duration
// reaches a threshold.
//
// An Aggregator holds no state between calls and is safe for concurrent use
// once configured.
type Aggregator struct {
	minDuration float64
}

// NewAggregator creates a new Aggregator with the default threshold
func NewAggregator() *Aggregator {
	return &Aggregator{
		minDuration: DefaultMinDuration,
	}
}

// SetMinDuration sets the threshold that closes a group.
//
// A threshold of zero or less closes a group after every segment.
func (a *Aggregator) SetMinDuration(seconds float64) *Aggregator {
	a.minDuration = seconds
	return a
}

// MinDuration returns the configured threshold in seconds.
func (a *Aggregator) MinDuration() float64 {
	return a.minDuration
}

// Aggregate merges segments into groups.
//
// Segments are consumed in input order. Each one is appended to the open
// group and its Duration added to a running sum; once the sum reaches the
// threshold the group is closed. Whatever remains open after the last
// segment becomes a final, possibly shorter, group. Gaps and overlaps
// between Start offsets play no part in the decision.
//
// Example:
//
//	groups := aggregator.NewAggregator().SetMinDuration(10).Aggregate(segments)
//	for _, g := range groups {
//	    fmt.Printf("[%s] %s\n", g.Start, g.Text)
//	}
func (a *Aggregator) Aggregate(segments []models.Segment) []models.Group {
	runs := a.Runs(segments)
	groups := make([]models.Group, 0, len(runs))
	for _, run := range runs {
		groups = append(groups, NewGroup(run))
	}
	return groups
}

// Runs partitions segments into the member runs behind each group.
//
// Concatenating the returned runs in order reproduces segments exactly.
func (a *Aggregator) Runs(segments []models.Segment) [][]models.Segment {
	if len(segments) == 0 {
		return [][]models.Segment{}
	}

	var runs [][]models.Segment
	var current []models.Segment
	accumulated := 0.0

	for _, seg := range segments {
		current = append(current, seg)
		accumulated += seg.Duration

		if accumulated >= a.minDuration {
			runs = append(runs, current)
			current = nil
			accumulated = 0
		}
	}

	// Trailing run never reached the threshold but must not be lost
	if len(current) > 0 {
		runs = append(runs, current)
	}

	return runs
}

// AggregateSegments merges segments into groups closed at minDuration.
//
// It is shorthand for NewAggregator().SetMinDuration(minDuration).Aggregate(segments).
func AggregateSegments(segments []models.Segment, minDuration float64) []models.Group {
	return NewAggregator().SetMinDuration(minDuration).Aggregate(segments)
}

// NewGroup builds the display group for a run of segments.
//
// The group starts at the first member's formatted start and its text is
// the members' text joined by single spaces. An empty run yields the zero
// Group.
func NewGroup(run []models.Segment) models.Group {
	if len(run) == 0 {
		return models.Group{}
	}

	texts := make([]string, len(run))
	for i, seg := range run {
		texts[i] = seg.Text
	}

	return models.Group{
		Start: timeutil.FormatSeconds(run[0].Start),
		Text:  strings.Join(texts, " "),
	}
}

// ValidateRuns checks that runs cover segments exactly: every segment
// appears once, in its original position, and no run is empty.
func ValidateRuns(segments []models.Segment, runs [][]models.Segment) error {
	next := 0
	for i, run := range runs {
		if len(run) == 0 {
			return fmt.Errorf("run %d is empty", i+1)
		}
		for j, seg := range run {
			if next >= len(segments) {
				return fmt.Errorf("run %d has extra segment at position %d", i+1, j+1)
			}
			if seg != segments[next] {
				return fmt.Errorf("run %d position %d does not match segment %d", i+1, j+1, next+1)
			}
			next++
		}
	}

	if next != len(segments) {
		return fmt.Errorf("runs cover %d of %d segments", next, len(segments))
	}

	return nil
}
