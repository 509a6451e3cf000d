package timing

import (
	"math"
	"testing"
)

func makeLine(text string, start, end float64) Line {
	words := newLineWords(text)
	if len(words) > 0 {
		wordDuration := (end - start) / float64(len(words))
		for i := range words {
			words[i].Start = start + float64(i)*wordDuration
			words[i].End = start + float64(i+1)*wordDuration
		}
	}
	return Line{Text: text, Start: start, End: end, Words: words}
}

func TestResolveOverlapsExtendsShortLines(t *testing.T) {
	lines := []Line{
		makeLine("quick line", 0.0, 0.4),
		makeLine("next line", 5.0, 7.0),
	}
	resolveOverlaps(lines, 1.2)

	if math.Abs(lines[0].End-1.2) > 1e-9 {
		t.Errorf("line 0 end = %f, want 1.2", lines[0].End)
	}
	if lines[1].Start != 5.0 {
		t.Errorf("line 1 unexpectedly moved: start = %f", lines[1].Start)
	}
}

func TestResolveOverlapsPushesLaterLine(t *testing.T) {
	lines := []Line{
		makeLine("first line here", 0.0, 3.0),
		makeLine("second line", 2.0, 4.0),
	}
	resolveOverlaps(lines, 1.2)

	if math.Abs(lines[1].Start-3.0) > 1e-9 {
		t.Errorf("line 1 start = %f, want 3.0", lines[1].Start)
	}
	if lines[0].End > lines[1].Start {
		t.Error("overlap not resolved")
	}
	for i, w := range lines[1].Words {
		if w.Start < lines[1].Start {
			t.Errorf("line 1 word %d starts before line: %f < %f", i, w.Start, lines[1].Start)
		}
	}
}

func TestResolveOverlapsCascade(t *testing.T) {
	// Nominal starts 0.0, 0.5, 0.6: pushes must propagate through the list.
	lines := []Line{
		makeLine("aa bb", 0.0, 0.5),
		makeLine("cc dd", 0.5, 0.6),
		makeLine("ee ff", 0.6, 3.6),
	}
	resolveOverlaps(lines, 1.2)

	for i := 0; i < len(lines)-1; i++ {
		if lines[i].End > lines[i+1].Start {
			t.Errorf("lines %d and %d overlap: %f > %f", i, i+1, lines[i].End, lines[i+1].Start)
		}
	}
	for i, line := range lines {
		if line.End-line.Start < 1.2-1e-9 {
			t.Errorf("line %d duration = %f, want >= 1.2", i, line.End-line.Start)
		}
	}
	if math.Abs(lines[0].End-1.2) > 1e-9 || math.Abs(lines[1].Start-1.2) > 1e-9 {
		t.Errorf("cascade start: line 0 end = %f, line 1 start = %f", lines[0].End, lines[1].Start)
	}
}

func TestResolveOverlapsLastLineMinimumDuration(t *testing.T) {
	lines := []Line{makeLine("only line", 0.0, 0.3)}
	resolveOverlaps(lines, 1.2)
	if lines[0].End-lines[0].Start < 1.2-1e-9 {
		t.Errorf("last line duration = %f, want >= 1.2", lines[0].End-lines[0].Start)
	}
}

func TestResolveOverlapsWordContainment(t *testing.T) {
	lines := []Line{
		makeLine("one two three", 0.0, 2.0),
		makeLine("four five", 1.0, 1.4),
		makeLine("six seven", 1.5, 5.0),
	}
	resolveOverlaps(lines, 1.2)

	for i, line := range lines {
		for j, w := range line.Words {
			if w.Start < line.Start-1e-9 || w.End > line.End+1e-9 {
				t.Errorf("line %d word %d [%f, %f] outside line [%f, %f]",
					i, j, w.Start, w.End, line.Start, line.End)
			}
			if w.End < w.Start {
				t.Errorf("line %d word %d inverted: [%f, %f]", i, j, w.Start, w.End)
			}
		}
	}
}

func TestResolveOverlapsEmpty(t *testing.T) {
	// Must not panic.
	resolveOverlaps(nil, 1.2)
	resolveOverlaps([]Line{}, 1.2)
}
