package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"commas", "5,2,4", []int{5, 2, 4}},
		{"spaces after commas", "29, 10, 14", []int{29, 10, 14}},
		{"whitespace only", "3 1\t2\n9", []int{3, 1, 2, 9}},
		{"semicolons", "1;2;3", []int{1, 2, 3}},
		{"negatives", "-3, 4, -1", []int{-3, 4, -1}},
		{"discard junk", "4, x, 2.5, 7", []int{4, 7}},
		{"duplicate delimiters", "1,,2, ,3", []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sequence(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequenceEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "a, b, c", ",,,"} {
		_, err := Sequence(in)
		assert.ErrorIs(t, err, ErrNoSequence, "input %q", in)
	}
}

func TestSequenceWithRejects(t *testing.T) {
	seq, rejects := SequenceWithRejects("1, two, 3, 4x")
	assert.Equal(t, []int{1, 3}, seq)
	assert.Equal(t, []string{"two", "4x"}, rejects)
}

func TestSequenceOr(t *testing.T) {
	fallback := []int{29, 10, 14}
	got := SequenceOr("nothing here", fallback)
	assert.Equal(t, fallback, got)

	got[0] = 0
	assert.Equal(t, 29, fallback[0], "fallback must be copied")

	assert.Equal(t, []int{8}, SequenceOr("8", fallback))
}

func TestEdges(t *testing.T) {
	edges, err := Edges("0-1, 1-2 2-3")
	require.NoError(t, err)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}}, edges)

	_, err = Edges("0-1, 2")
	assert.ErrorIs(t, err, ErrBadEdge)

	_, err = Edges("a-1")
	assert.ErrorIs(t, err, ErrBadEdge)

	edges, err = Edges("")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestFormatRoundTrip(t *testing.T) {
	seq := []int{3, -1, 20}
	got, err := Sequence(Format(seq))
	require.NoError(t, err)
	assert.Equal(t, seq, got)
}
