// Package timeutil provides time formatting utilities for transcript timestamps.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatSeconds converts seconds to an HH:MM:SS display timestamp.
//
// The value is rounded to the nearest whole second, with halves rounded
// away from zero, before being split into fields. Hours are not wrapped at
// 24 and grow past two digits when needed.
//
// Example:
//
//	FormatSeconds(0)      // "00:00:00"
//	FormatSeconds(1.4)    // "00:00:01"
//	FormatSeconds(1.6)    // "00:00:02"
//	FormatSeconds(60)     // "00:01:00"
//	FormatSeconds(3661)   // "01:01:01"
//	FormatSeconds(86400)  // "24:00:00"
func FormatSeconds(seconds float64) string {
	total := int64(math.Round(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// ParseTimestamp converts a cue timestamp to seconds.
//
// Accepted forms are HH:MM:SS.mmm (WebVTT), HH:MM:SS,mmm (SRT) and the
// short WebVTT form MM:SS.mmm.
func ParseTimestamp(timeStr string) (float64, error) {
	normalized := strings.Replace(strings.TrimSpace(timeStr), ",", ".", 1)
	parts := strings.Split(normalized, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q: expected HH:MM:SS.mmm or MM:SS.mmm", timeStr)
	}

	var hours, minutes float64
	var err error
	if len(parts) == 3 {
		if hours, err = strconv.ParseFloat(parts[0], 64); err != nil {
			return 0, fmt.Errorf("invalid hours in timestamp %q: %w", timeStr, err)
		}
		parts = parts[1:]
	}
	if minutes, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, fmt.Errorf("invalid minutes in timestamp %q: %w", timeStr, err)
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in timestamp %q: %w", timeStr, err)
	}
	if hours < 0 || minutes < 0 || minutes >= 60 || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("timestamp %q out of range", timeStr)
	}

	return hours*3600 + minutes*60 + seconds, nil
}
