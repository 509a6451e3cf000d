package textutil

import "testing"

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("hello world"), 0},
		{"b nil", NewFingerprint("hello world"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	text := "Bohemian Rhapsody - Queen"
	got := CosineSimilarity(NewFingerprint(text), NewFingerprint(text))
	if got != 1.0 {
		t.Errorf("CosineSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestCosineSimilarityDisjoint(t *testing.T) {
	got := CosineSimilarity(NewFingerprint("apple banana cherry"), NewFingerprint("delta echo foxtrot"))
	if got != 0 {
		t.Errorf("CosineSimilarity(disjoint) = %v, want 0", got)
	}
}

func TestCosineSimilarityPartialOverlap(t *testing.T) {
	got := CosineSimilarity(NewFingerprint("shake it off taylor"), NewFingerprint("shake it up elvis"))
	if got <= 0 || got >= 1 {
		t.Errorf("CosineSimilarity(partial) = %v, want between 0 and 1", got)
	}
}

func TestNewFingerprintEmpty(t *testing.T) {
	if fp := NewFingerprint("a b -- !"); fp != nil {
		t.Errorf("expected nil fingerprint for noise-only text, got %d tokens", fp.TokenCount())
	}
}
