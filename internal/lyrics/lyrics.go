package lyrics

import "sort"

// Line is one reference lyric line: correct text with an approximate start
// time in seconds. Lines are immutable input to the timing engine.
type Line struct {
	Text  string
	Start float64
}

// SortByStart orders lines by their nominal start time, preserving the
// relative order of lines with identical timestamps.
func SortByStart(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Start < lines[j].Start
	})
}
