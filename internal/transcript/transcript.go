package transcript

import "strings"

// Word is a recognized word with accurate timing in seconds. End is never
// before Start. Words are immutable input to the timing engine.
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Segment is a recognizer utterance, optionally carrying word-level detail.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Word  `json:"words"`
}

// Flatten converts segments into a single ordered word stream. Segments
// without word-level timestamps get synthetic words: the segment text is
// split on whitespace and the segment duration divided evenly across the
// words.
func Flatten(segments []Segment) []Word {
	var words []Word
	for _, seg := range segments {
		if len(seg.Words) > 0 {
			words = append(words, seg.Words...)
			continue
		}
		fields := strings.Fields(seg.Text)
		if len(fields) == 0 {
			continue
		}
		wordDuration := (seg.End - seg.Start) / float64(len(fields))
		for i, field := range fields {
			words = append(words, Word{
				Text:  field,
				Start: seg.Start + float64(i)*wordDuration,
				End:   seg.Start + float64(i+1)*wordDuration,
			})
		}
	}
	return words
}
