package timeline

import (
	"encoding/json"
	"fmt"
	"os"

	"karasync/internal/timing"
)

// Word is a timed word as the renderer consumes it. Times are seconds from
// the start of the audio.
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Line is a timed caption line carrying exactly the reference text.
type Line struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Word  `json:"words"`
}

// Timeline is the complete output of a synchronization run.
type Timeline struct {
	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	Lines  []Line `json:"lines"`
}

// FromResult converts engine output into the renderer-facing shape.
func FromResult(result timing.Result, title, artist string) Timeline {
	lines := make([]Line, len(result.Lines))
	for i, src := range result.Lines {
		words := make([]Word, len(src.Words))
		for j, w := range src.Words {
			words[j] = Word{Text: w.Text, Start: w.Start, End: w.End}
		}
		lines[i] = Line{Text: src.Text, Start: src.Start, End: src.End, Words: words}
	}
	return Timeline{Title: title, Artist: artist, Lines: lines}
}

// Write serializes the timeline as indented JSON to path.
func Write(path string, tl Timeline) error {
	data, err := json.MarshalIndent(tl, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write timeline: %w", err)
	}
	return nil
}

// Load reads a timeline JSON file.
func Load(path string) (Timeline, error) {
	var tl Timeline
	data, err := os.ReadFile(path)
	if err != nil {
		return tl, fmt.Errorf("read timeline: %w", err)
	}
	if err := json.Unmarshal(data, &tl); err != nil {
		return tl, fmt.Errorf("parse timeline: %w", err)
	}
	return tl, nil
}
