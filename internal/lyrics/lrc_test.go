package lyrics

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLRC(t *testing.T) {
	content := `[ar:Test Artist]
[ti:Test Song]

[00:12.50]First line here
[00:18.00]Second line
[01:02.25]Third line after a minute
[00:25.00]
`
	lines := ParseLRC(content)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Text != "First line here" {
		t.Errorf("line 0 text = %q", lines[0].Text)
	}
	if math.Abs(lines[0].Start-12.5) > 1e-9 {
		t.Errorf("line 0 start = %f, want 12.5", lines[0].Start)
	}
	if math.Abs(lines[2].Start-62.25) > 1e-9 {
		t.Errorf("line 2 start = %f, want 62.25", lines[2].Start)
	}
}

func TestParseLRCSortsByStart(t *testing.T) {
	content := "[00:30.00]later\n[00:10.00]earlier\n"
	lines := ParseLRC(content)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "earlier" || lines[1].Text != "later" {
		t.Errorf("lines not sorted: %q, %q", lines[0].Text, lines[1].Text)
	}
}

func TestParseLRCEmpty(t *testing.T) {
	if lines := ParseLRC(""); len(lines) != 0 {
		t.Errorf("expected no lines from empty content, got %d", len(lines))
	}
	if lines := ParseLRC("plain text without tags\n"); len(lines) != 0 {
		t.Errorf("expected no lines from untagged content, got %d", len(lines))
	}
}

func TestLoadLRC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.lrc")
	if err := os.WriteFile(path, []byte("[00:05.00]hello world\n"), 0o644); err != nil {
		t.Fatalf("write lrc: %v", err)
	}
	lines, err := LoadLRC(path)
	if err != nil {
		t.Fatalf("LoadLRC: %v", err)
	}
	if len(lines) != 1 || lines[0].Text != "hello world" {
		t.Fatalf("unexpected lines: %+v", lines)
	}

	if _, err := LoadLRC(filepath.Join(t.TempDir(), "missing.lrc")); err == nil {
		t.Error("expected error for missing file")
	}
}
