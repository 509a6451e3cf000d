package timeline

import (
	"path/filepath"
	"testing"

	"karasync/internal/timing"
)

func TestFromResult(t *testing.T) {
	result := timing.Result{
		Lines: []timing.Line{
			{
				Text:  "hello world",
				Start: 0.1,
				End:   0.9,
				Words: []timing.Word{
					{Text: "hello", Start: 0.1, End: 0.4, Matched: true},
					{Text: "world", Start: 0.4, End: 0.9, Matched: true},
				},
			},
		},
	}

	tl := FromResult(result, "Test Song", "Test Artist")
	if tl.Title != "Test Song" || tl.Artist != "Test Artist" {
		t.Errorf("identity = %q / %q", tl.Title, tl.Artist)
	}
	if len(tl.Lines) != 1 || len(tl.Lines[0].Words) != 2 {
		t.Fatalf("unexpected shape: %+v", tl)
	}
	if tl.Lines[0].Words[1].Text != "world" {
		t.Errorf("word 1 = %q", tl.Lines[0].Words[1].Text)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	tl := Timeline{
		Title: "Song",
		Lines: []Line{
			{Text: "line one", Start: 1.0, End: 2.5, Words: []Word{
				{Text: "line", Start: 1.0, End: 1.7},
				{Text: "one", Start: 1.7, End: 2.5},
			}},
		},
	}

	path := filepath.Join(t.TempDir(), "timeline.json")
	if err := Write(path, tl); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Title != tl.Title || len(got.Lines) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Lines[0].Words[0].Text != "line" || got.Lines[0].End != 2.5 {
		t.Errorf("line mismatch: %+v", got.Lines[0])
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
