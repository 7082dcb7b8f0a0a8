package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"transcript/models"
)

// jsonSegment is the wire form of a segment. Fields are pointers so a
// missing key can be told apart from a zero value.
type jsonSegment struct {
	Start    *float64 `json:"start"`
	Duration *float64 `json:"duration"`
	End      *float64 `json:"end"`
	Text     *string  `json:"text"`
}

// jsonDocument is the object form: a segment list under either key.
type jsonDocument struct {
	Segments   []jsonSegment `json:"segments"`
	Transcript []jsonSegment `json:"transcript"`
}

// decodeJSON accepts a bare segment array or an object carrying the array
// under "segments" or "transcript".
func decodeJSON(r io.Reader) ([]models.Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON transcript: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("JSON transcript is empty")
	}

	var raw []jsonSegment
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON transcript: %w", err)
		}
	case '{':
		var doc jsonDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON transcript: %w", err)
		}
		raw = doc.Segments
		if raw == nil {
			raw = doc.Transcript
		}
		if raw == nil {
			return nil, fmt.Errorf("JSON transcript object has no \"segments\" or \"transcript\" list")
		}
	default:
		return nil, fmt.Errorf("JSON transcript must be an array or an object")
	}

	segments := make([]models.Segment, 0, len(raw))
	for i, js := range raw {
		seg, err := js.toSegment()
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// toSegment resolves the duration from either "duration" or "end".
func (js jsonSegment) toSegment() (models.Segment, error) {
	if js.Start == nil {
		return models.Segment{}, fmt.Errorf("missing \"start\"")
	}
	if js.Text == nil {
		return models.Segment{}, fmt.Errorf("missing \"text\"")
	}

	var duration float64
	switch {
	case js.Duration != nil:
		duration = *js.Duration
	case js.End != nil:
		duration = *js.End - *js.Start
	default:
		return models.Segment{}, fmt.Errorf("missing \"duration\" or \"end\"")
	}

	return models.Segment{
		Start:    *js.Start,
		Duration: duration,
		Text:     *js.Text,
	}, nil
}
