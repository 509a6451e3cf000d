package timing

import (
	"reflect"
	"testing"
)

func TestLongestMatch(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want blockMatch
	}{
		{
			name: "identical",
			a:    []string{"x", "y", "z"},
			b:    []string{"x", "y", "z"},
			want: blockMatch{0, 0, 3},
		},
		{
			name: "interior block",
			a:    []string{"a", "hello", "world", "b"},
			b:    []string{"c", "hello", "world"},
			want: blockMatch{1, 1, 2},
		},
		{
			name: "no common tokens",
			a:    []string{"a", "b"},
			b:    []string{"c", "d"},
			want: blockMatch{0, 0, 0},
		},
		{
			name: "prefers earliest of equal length",
			a:    []string{"x", "q", "x"},
			b:    []string{"x"},
			want: blockMatch{0, 0, 1},
		},
		{
			name: "empty side",
			a:    nil,
			b:    []string{"x"},
			want: blockMatch{0, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := longestMatch(tt.a, tt.b, 0, len(tt.a), 0, len(tt.b))
			if got != tt.want {
				t.Errorf("longestMatch = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOpcodesEqualRunsOnly(t *testing.T) {
	a := []string{"one", "two", "three"}
	b := []string{"one", "three"}

	var equalPairs [][2]int
	for _, op := range opcodes(a, b) {
		if op.tag != opEqual {
			continue
		}
		for k := 0; k < op.i2-op.i1; k++ {
			equalPairs = append(equalPairs, [2]int{op.i1 + k, op.j1 + k})
		}
	}
	want := [][2]int{{0, 0}, {2, 1}}
	if !reflect.DeepEqual(equalPairs, want) {
		t.Errorf("equal pairs = %v, want %v", equalPairs, want)
	}
}

func TestOpcodesCoverBothSequences(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
	}{
		{"replace in middle", []string{"a", "x", "c"}, []string{"a", "y", "c"}},
		{"insert", []string{"a", "c"}, []string{"a", "b", "c"}},
		{"delete", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"disjoint", []string{"a", "b"}, []string{"x", "y"}},
		{"both empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := opcodes(tt.a, tt.b)
			i, j := 0, 0
			for _, op := range ops {
				if op.i1 != i || op.j1 != j {
					t.Fatalf("opcode %+v does not continue from (%d, %d)", op, i, j)
				}
				if op.tag == opEqual && (op.i2-op.i1) != (op.j2-op.j1) {
					t.Fatalf("equal opcode with unequal spans: %+v", op)
				}
				i, j = op.i2, op.j2
			}
			if i != len(tt.a) || j != len(tt.b) {
				t.Errorf("opcodes end at (%d, %d), want (%d, %d)", i, j, len(tt.a), len(tt.b))
			}
		})
	}
}

func TestMatchingBlocksMergesAdjacent(t *testing.T) {
	a := []string{"a", "b", "c", "d"}
	b := []string{"a", "b", "c", "d"}
	blocks := matchingBlocks(a, b)
	// One merged block plus the sentinel terminator.
	if len(blocks) != 2 {
		t.Fatalf("expected merged block + sentinel, got %+v", blocks)
	}
	if blocks[0] != (blockMatch{0, 0, 4}) {
		t.Errorf("merged block = %+v", blocks[0])
	}
}
