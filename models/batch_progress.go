package models

import (
	"fmt"
	"time"
)

// BatchProgress tracks how far a batch of transcript files has progressed.
type BatchProgress struct {
	Total     int // Files submitted
	Completed int // Files finished, successful or not
	Failed    int // Files that failed
	Groups    int // Groups written so far

	Progress  float64   // Percentage complete (0-100)
	StartTime time.Time // When the batch started
	UpdatedAt time.Time // Last update timestamp
}

// NewBatchProgress creates a new progress tracker for total files.
func NewBatchProgress(total int) *BatchProgress {
	return &BatchProgress{
		Total:     total,
		StartTime: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Record folds a finished file into the progress totals.
func (bp *BatchProgress) Record(result *FileResult) {
	bp.Completed++
	if result != nil {
		if result.Success {
			bp.Groups += result.Groups
		} else {
			bp.Failed++
		}
	}
	if bp.Total > 0 {
		bp.Progress = float64(bp.Completed) / float64(bp.Total) * 100
		if bp.Progress > 100 {
			bp.Progress = 100
		}
	}
	bp.UpdatedAt = time.Now()
}

// EstimatedTimeRemaining extrapolates the time left from the elapsed time.
func (bp *BatchProgress) EstimatedTimeRemaining() time.Duration {
	if bp.Progress <= 0 {
		return 0
	}

	elapsed := time.Since(bp.StartTime)
	totalEstimated := time.Duration(float64(elapsed) / (bp.Progress / 100))
	remaining := totalEstimated - elapsed

	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatSummary returns a human-readable summary of the progress
func (bp *BatchProgress) FormatSummary() string {
	return fmt.Sprintf(
		"Progress: %.1f%% | Files: %d/%d | Failed: %d | Groups: %d | ETA: %s",
		bp.Progress,
		bp.Completed,
		bp.Total,
		bp.Failed,
		bp.Groups,
		formatDuration(bp.EstimatedTimeRemaining()),
	)
}

// formatDuration converts a duration to a human-readable string
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "calculating..."
	}

	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	seconds = seconds % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}
