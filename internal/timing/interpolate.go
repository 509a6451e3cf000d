package timing

// minInterpolationGap keeps a gap between anchors from collapsing to zero
// width when reference timing is malformed.
const minInterpolationGap = 0.5

// interpolateLineWords fills timestamps for every unmatched word in a line.
//
// With no anchors at all, words are distributed evenly across the line's
// nominal interval. With at least one anchor, each unmatched word is placed
// inside the gap between the previous word's end and the next anchor's start
// (or the nominal line end when no anchor follows), the gap divided evenly
// across the remaining unmatched run.
func interpolateLineWords(words []Word, nominalStart, nominalEnd float64) {
	if len(words) == 0 {
		return
	}

	anchored := false
	for _, w := range words {
		if w.Matched {
			anchored = true
			break
		}
	}

	if !anchored {
		duration := nominalEnd - nominalStart
		if duration <= 0 {
			duration = fallbackLineDuration
		}
		wordDuration := duration / float64(len(words))
		for k := range words {
			words[k].Start = nominalStart + float64(k)*wordDuration
			words[k].End = nominalStart + float64(k+1)*wordDuration
		}
		return
	}

	lastEnd := nominalStart
	for k := range words {
		if words[k].Matched {
			lastEnd = words[k].End
			continue
		}

		// Find the next anchor and the size of the unmatched run ending
		// there (or at the line end).
		nextAnchor := -1
		for m := k + 1; m < len(words); m++ {
			if words[m].Matched {
				nextAnchor = m
				break
			}
		}

		gapStart := lastEnd
		gapEnd := nominalEnd
		runLength := len(words) - k
		if nextAnchor >= 0 {
			gapEnd = words[nextAnchor].Start
			runLength = nextAnchor - k
		}
		if gapEnd < gapStart+minInterpolationGap {
			gapEnd = gapStart + minInterpolationGap
		}

		wordDuration := (gapEnd - gapStart) / float64(runLength)
		words[k].Start = gapStart
		words[k].End = gapStart + wordDuration
		lastEnd = words[k].End
	}
}
