package models

// Group is a contiguous run of segments merged into one display unit.
//
// Start is the first member's start offset formatted as HH:MM:SS and Text
// is the members' text joined by single spaces in input order.
type Group struct {
	Start string `json:"start"`
	Text  string `json:"text"`
}

// Transcript is the document handed to callers after aggregation: the
// groups plus the summed duration of every raw segment, both formatted and
// as raw seconds.
type Transcript struct {
	Groups               []Group `json:"transcript"`
	TotalDuration        string  `json:"total_duration"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
}
