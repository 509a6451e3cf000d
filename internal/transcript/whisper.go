package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type whisperPayload struct {
	Segments []Segment `json:"segments"`
}

// LoadWhisperJSON reads a WhisperX-style transcription payload
// ({"segments": [...]}) from disk.
func LoadWhisperJSON(path string) ([]Segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload whisperPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse whisper json: %w", err)
	}
	return payload.Segments, nil
}
