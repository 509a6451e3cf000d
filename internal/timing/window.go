package timing

import (
	"strings"

	"karasync/internal/textutil"
	"karasync/internal/transcript"
)

// lineWindow is the time range within which a reference line may claim
// recognizer words.
type lineWindow struct {
	start float64
	end   float64
}

// windowFor computes the candidate search window for the line at index i.
// The window spans from just before the line's nominal start to just after
// the next line's nominal start (or a default gap for the last line). A
// degenerate window caused by malformed nominal timestamps is recovered by
// re-opening it to the default gap.
func windowFor(nominalStarts []float64, i int, opts Options) lineWindow {
	nominalEnd := nominalStarts[i] + opts.DefaultLineGap
	if i+1 < len(nominalStarts) {
		nominalEnd = nominalStarts[i+1]
	}

	w := lineWindow{
		start: nominalStarts[i] - opts.WindowMargin,
		end:   nominalEnd + opts.WindowMargin,
	}
	if w.start < 0 {
		w.start = 0
	}
	if w.end <= w.start {
		w.end = w.start + opts.DefaultLineGap
	}
	return w
}

// candidatesIn selects recognizer words whose interval overlaps the window,
// preserving recognizer order.
func candidatesIn(words []transcript.Word, w lineWindow) []transcript.Word {
	var pool []transcript.Word
	for _, word := range words {
		if word.Start < w.end && word.End > w.start {
			pool = append(pool, word)
		}
	}
	return pool
}

// newLineWords builds the mutable word list for a reference line, one entry
// per whitespace-separated word with the original surface text preserved.
func newLineWords(text string) []Word {
	fields := strings.Fields(text)
	words := make([]Word, len(fields))
	for i, field := range fields {
		words[i] = Word{Text: field}
	}
	return words
}

// alignLineWords runs a constrained sequence alignment between the line's
// normalized words and the candidate pool, copying start/end timestamps from
// each matched candidate onto the corresponding reference word. Words without
// a match keep zero timestamps and Matched false. An empty candidate pool is
// not an error; it simply yields no matches.
func alignLineWords(words []Word, pool []transcript.Word) {
	if len(words) == 0 || len(pool) == 0 {
		return
	}

	lineTokens := make([]string, len(words))
	for i, w := range words {
		lineTokens[i] = textutil.Normalize(w.Text)
	}
	poolTokens := make([]string, len(pool))
	for i, w := range pool {
		poolTokens[i] = textutil.Normalize(w.Text)
	}

	for _, op := range opcodes(lineTokens, poolTokens) {
		if op.tag != opEqual {
			continue
		}
		for k := 0; k < op.i2-op.i1; k++ {
			candidate := pool[op.j1+k]
			words[op.i1+k].Start = candidate.Start
			words[op.i1+k].End = candidate.End
			words[op.i1+k].Matched = true
		}
	}
}
