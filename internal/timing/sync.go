package timing

import (
	"io"
	"log/slog"
	"math"

	"karasync/internal/lyrics"
	"karasync/internal/transcript"
)

// Synchronize reconciles reference lyric lines with recognizer words into a
// render-ready timeline. The output always contains exactly one line per
// reference line, in reference order; empty or mismatched input degrades
// timing quality but never fails. Inputs are not mutated.
func Synchronize(refs []lyrics.Line, words []transcript.Word, opts Options, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	result := Result{Lines: make([]Line, 0, len(refs))}
	if len(refs) == 0 {
		return result
	}

	offset, found := estimateGlobalOffset(refs, words, opts.MinTokenLength)
	result.GlobalOffset = offset

	nominalStarts := make([]float64, len(refs))
	for i, line := range refs {
		nominalStarts[i] = line.Start
	}
	if found && math.Abs(offset) > opts.GlobalOffsetThreshold {
		result.OffsetApplied = true
		for i := range nominalStarts {
			nominalStarts[i] += offset
		}
		logger.Info("applying global offset",
			slog.Float64("offset_seconds", offset),
			slog.Int("reference_lines", len(refs)))
	} else {
		logger.Debug("global offset below threshold",
			slog.Float64("offset_seconds", offset),
			slog.Bool("block_found", found))
	}

	for i, ref := range refs {
		lineWords := newLineWords(ref.Text)
		window := windowFor(nominalStarts, i, opts)
		pool := candidatesIn(words, window)
		alignLineWords(lineWords, pool)

		nominalEnd := nominalStarts[i] + fallbackLineDuration
		if i+1 < len(nominalStarts) {
			nominalEnd = nominalStarts[i+1]
		}
		interpolateLineWords(lineWords, nominalStarts[i], nominalEnd)

		line := Line{Text: ref.Text, Words: lineWords}
		if len(lineWords) > 0 {
			line.Start = lineWords[0].Start
			line.End = lineWords[len(lineWords)-1].End
		} else {
			line.Start = nominalStarts[i]
			line.End = nominalEnd
		}

		for _, w := range lineWords {
			result.TotalWords++
			if w.Matched {
				result.MatchedWords++
			}
		}
		result.Lines = append(result.Lines, line)
	}

	resolveOverlaps(result.Lines, opts.MinLineDuration)

	logger.Debug("synchronization complete",
		slog.Int("lines", len(result.Lines)),
		slog.Int("matched_words", result.MatchedWords),
		slog.Int("total_words", result.TotalWords))
	return result
}
