package timing

// Options carries the tunable constants of the synchronization pipeline.
// All fields are pure parameters; the engine holds no global state.
type Options struct {
	// MinLineDuration is the minimum time a line stays visible, in seconds.
	MinLineDuration float64
	// GlobalOffsetThreshold is the smallest absolute bulk drift, in seconds,
	// that triggers a one-time correction of the reference timeline.
	GlobalOffsetThreshold float64
	// WindowMargin widens each line's candidate search window on both
	// sides, in seconds, to tolerate small residual drift.
	WindowMargin float64
	// MinTokenLength filters short tokens out of the global offset anchor
	// search; tokens below this length are too common to anchor on.
	MinTokenLength int
	// DefaultLineGap is the assumed line length, in seconds, when the next
	// line's start is unknown or the window collapses.
	DefaultLineGap float64
}

// DefaultOptions returns the standard pipeline constants.
func DefaultOptions() Options {
	return Options{
		MinLineDuration:       1.2,
		GlobalOffsetThreshold: 2.0,
		WindowMargin:          1.0,
		MinTokenLength:        3,
		DefaultLineGap:        5.0,
	}
}

// fallbackLineDuration is the assumed duration, in seconds, of the final
// line when distributing words without any recognizer anchor.
const fallbackLineDuration = 3.0

// Word is a reference word carrying recognizer-derived timing. Matched
// reports whether the timing came from a direct recognizer match;
// interpolated words carry valid timing but stay unmatched.
type Word struct {
	Text    string
	Start   float64
	End     float64
	Matched bool
}

// Line is a finished timeline line: exact reference text, recognizer-derived
// timing. Start equals the first word's start and End the last word's end
// once the pipeline completes.
type Line struct {
	Text  string
	Start float64
	End   float64
	Words []Word
}

// Duration returns the visible duration of the line in seconds.
func (l Line) Duration() float64 {
	return l.End - l.Start
}

// Result is the output of a synchronization run.
type Result struct {
	Lines []Line
	// GlobalOffset is the detected bulk drift between the reference and
	// recognizer timelines, in seconds.
	GlobalOffset float64
	// OffsetApplied reports whether the drift exceeded the threshold and
	// the reference timeline was shifted before alignment.
	OffsetApplied bool
	// MatchedWords counts reference words timed by a direct recognizer
	// match; TotalWords counts all reference words.
	MatchedWords int
	TotalWords   int
}
