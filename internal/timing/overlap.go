package timing

// minPushedLineDuration keeps a line that was pushed forward from collapsing
// to zero width.
const minPushedLineDuration = 0.5

// pushedWordNudge separates a clamped word end from the new line start so
// the wipe still has a visible sliver to sweep.
const pushedWordNudge = 0.1

// resolveOverlaps walks the line list once, left to right, enforcing the
// minimum visible duration and pushing later lines forward until no two
// adjacent lines overlap. Later lines always yield to earlier ones: the
// earlier line has already started rendering. Cascading pushes propagate
// naturally because each line is finalized before its successor is touched;
// this is deliberately not a fixed-point iteration.
func resolveOverlaps(lines []Line, minLineDuration float64) {
	for i := 0; i < len(lines)-1; i++ {
		current := &lines[i]
		next := &lines[i+1]

		if current.End-current.Start < minLineDuration {
			current.End = current.Start + minLineDuration
		}

		if current.End > next.Start {
			next.Start = current.End
			if next.End < next.Start+minPushedLineDuration {
				next.End = next.Start + minPushedLineDuration
			}
			// Words cannot display before their line does.
			for w := range next.Words {
				if next.Words[w].Start < next.Start {
					next.Words[w].Start = next.Start
				}
				if next.Words[w].End < next.Start {
					next.Words[w].End = next.Start + pushedWordNudge
				}
			}
		}

		clampWords(current)
	}

	if n := len(lines); n > 0 {
		last := &lines[n-1]
		if last.End-last.Start < minLineDuration {
			last.End = last.Start + minLineDuration
		}
		clampWords(last)
	}
}

// clampWords confines every word interval to its parent line's interval.
func clampWords(line *Line) {
	for w := range line.Words {
		if line.Words[w].Start < line.Start {
			line.Words[w].Start = line.Start
		}
		if line.Words[w].Start > line.End {
			line.Words[w].Start = line.End
		}
		if line.Words[w].End > line.End {
			line.Words[w].End = line.End
		}
		if line.Words[w].End < line.Words[w].Start {
			line.Words[w].End = line.Words[w].Start
		}
	}
}
