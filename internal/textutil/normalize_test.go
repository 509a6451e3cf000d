package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello!", "hello"},
		{"don't", "dont"},
		{"WORLD...", "world"},
		{"Café", "cafe"},
		{"naïve", "naive"},
		{"  ", ""},
		{"---", ""},
		{"'99", "99"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hello!", "Café-au-lait", "don't", "ROCK&ROLL", "über"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		minLength int
		want      []string
	}{
		{
			name:      "filters short tokens",
			text:      "I am on the road again",
			minLength: 3,
			want:      []string{"the", "road", "again"},
		},
		{
			name:      "zero min keeps everything",
			text:      "I am here",
			minLength: 0,
			want:      []string{"i", "am", "here"},
		},
		{
			name:      "punctuation only words vanish",
			text:      "hey -- you !!",
			minLength: 3,
			want:      []string{"hey", "you"},
		},
		{
			name:      "empty input",
			text:      "",
			minLength: 3,
			want:      []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text, tt.minLength)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q, %d) = %v, want %v", tt.text, tt.minLength, got, tt.want)
			}
		})
	}
}
