package structures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBST(t *testing.T, vals ...int) *BST {
	t.Helper()
	tree := NewBST()
	for _, v := range vals {
		_, err := tree.Insert(v)
		require.NoError(t, err)
	}
	return tree
}

func TestBSTInsert(t *testing.T) {
	tree := NewBST()
	frames, err := tree.Insert(50)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "Inserted root 50", frames[0].Text)

	_, err = tree.Insert(30)
	require.NoError(t, err)
	frames, err = tree.Insert(40)
	require.NoError(t, err)

	// 50 -> 30 -> place
	require.Len(t, frames, 3)
	assert.Equal(t, "40 < 50, go left", frames[0].Text)
	assert.Equal(t, "40 > 30, go right", frames[1].Text)
	last := frames[2]
	assert.Equal(t, []int{30, 40, 50}, last.Items)
	assert.Equal(t, 1, last.Found)

	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 3, tree.Height())
}

func TestBSTDuplicate(t *testing.T) {
	tree := buildBST(t, 5, 3)
	frames, err := tree.Insert(3)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, "Value 3 already exists", frames[len(frames)-1].Text)
	assert.Equal(t, 2, tree.Len())
}

func TestBSTSearch(t *testing.T) {
	tree := buildBST(t, 50, 30, 70, 20, 40)

	frames, found := tree.Search(40)
	assert.True(t, found)
	assert.Equal(t, "Found 40", frames[len(frames)-1].Text)

	frames, found = tree.Search(65)
	assert.False(t, found)
	assert.Equal(t, "65 not found", frames[len(frames)-1].Text)

	_, found = NewBST().Search(1)
	assert.False(t, found)
}

func TestBSTTraversals(t *testing.T) {
	tree := buildBST(t, 50, 30, 70, 20, 40, 60, 80)

	cases := []struct {
		name string
		run  func() ([]Frame, error)
		want []int
	}{
		{"in", tree.InOrder, []int{20, 30, 40, 50, 60, 70, 80}},
		{"pre", tree.PreOrder, []int{50, 30, 20, 40, 70, 60, 80}},
		{"post", tree.PostOrder, []int{20, 40, 30, 60, 80, 70, 50}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frames, err := tc.run()
			require.NoError(t, err)
			assert.Equal(t, tc.want, frames[len(frames)-1].Output)
			// start + one per node + done
			assert.Len(t, frames, len(tc.want)+2)
		})
	}

	_, err := NewBST().InOrder()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBSTDOT(t *testing.T) {
	tree := buildBST(t, 2, 1, -3)
	dot := tree.DOT(1)
	assert.Contains(t, dot, "v2 -> v1;")
	assert.Contains(t, dot, "v1 -> vm3;")
	assert.Contains(t, dot, `v1 [label="1", fillcolor="#fde68a"]`)
}
