package timing

import (
	"strings"

	"karasync/internal/lyrics"
	"karasync/internal/textutil"
	"karasync/internal/transcript"
)

// anchorToken pairs a normalized token with the timestamp of its source: the
// parent line's nominal start on the reference side, the word's own start on
// the recognizer side.
type anchorToken struct {
	token string
	start float64
}

// estimateGlobalOffset detects bulk drift between the reference and
// recognizer timelines. It builds noise-filtered token sequences from both
// sides, finds their longest contiguous shared block, and returns the time
// difference at the block start. Returns (0, false) when either side yields
// no tokens or no block is shared.
func estimateGlobalOffset(refs []lyrics.Line, words []transcript.Word, minTokenLength int) (float64, bool) {
	var refAnchors []anchorToken
	for _, line := range refs {
		for _, field := range strings.Fields(line.Text) {
			token := textutil.Normalize(field)
			if len(token) < minTokenLength {
				continue
			}
			refAnchors = append(refAnchors, anchorToken{token: token, start: line.Start})
		}
	}

	var recAnchors []anchorToken
	for _, word := range words {
		token := textutil.Normalize(word.Text)
		if len(token) < minTokenLength {
			continue
		}
		recAnchors = append(recAnchors, anchorToken{token: token, start: word.Start})
	}

	if len(refAnchors) == 0 || len(recAnchors) == 0 {
		return 0, false
	}

	refTokens := make([]string, len(refAnchors))
	for i, a := range refAnchors {
		refTokens[i] = a.token
	}
	recTokens := make([]string, len(recAnchors))
	for i, a := range recAnchors {
		recTokens[i] = a.token
	}

	match := longestMatch(refTokens, recTokens, 0, len(refTokens), 0, len(recTokens))
	if match.size == 0 {
		return 0, false
	}
	return recAnchors[match.bStart].start - refAnchors[match.aStart].start, true
}
