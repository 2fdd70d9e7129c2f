package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square: 0-1, 0-2, 1-3, 2-3
func square(t *testing.T) *Graph {
	t.Helper()
	g := WithNodes(4)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestAddEdge(t *testing.T) {
	g := WithNodes(3)
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(0, 2))
	assert.Equal(t, 1, g.EdgeCount(), "duplicate edges are ignored")
	assert.True(t, g.Adjacent(0, 2))
	assert.True(t, g.Adjacent(2, 0))

	assert.ErrorIs(t, g.AddEdge(1, 1), ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(0, 5), ErrUnknownNode)
	assert.ErrorIs(t, g.AddEdge(-1, 0), ErrUnknownNode)
}

func TestNeighborsSorted(t *testing.T) {
	g := WithNodes(5)
	for _, v := range []int{4, 1, 3, 2} {
		require.NoError(t, g.AddEdge(0, v))
	}
	assert.Equal(t, []int{1, 2, 3, 4}, g.Neighbors(0))
	assert.Nil(t, g.Neighbors(9))
}

func TestMatrixAndList(t *testing.T) {
	g := square(t)
	assert.Equal(t, [][]int{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	}, g.Matrix())
	assert.Equal(t, [][]int{{1, 2}, {0, 3}, {0, 3}, {1, 2}}, g.AdjacencyList())
}

func TestBFS(t *testing.T) {
	g := square(t)
	frames, err := g.BFS(0)
	require.NoError(t, err)

	first := frames[0]
	assert.Equal(t, []int{0}, first.Visited, "start is visited on enqueue")
	assert.Equal(t, []int{0}, first.Frontier)

	last := frames[len(frames)-1]
	assert.Equal(t, []int{0, 1, 2, 3}, last.Order)
	assert.Empty(t, last.Frontier)
	assert.Equal(t, NoCurrent, last.Current)

	// start, 4 dequeues, 3 enqueues, done
	assert.Len(t, frames, 9)
}

func TestDFS(t *testing.T) {
	g := square(t)
	frames, err := g.DFS(0)
	require.NoError(t, err)

	last := frames[len(frames)-1]
	assert.Equal(t, []int{0, 1, 3, 2}, last.Order)

	assert.Empty(t, frames[0].Visited, "dfs marks on pop")
	assert.Equal(t, []int{0}, frames[0].Frontier)

	// 2 is pushed by 0 and again by 3 before it is popped.
	pushes := 0
	for _, f := range frames {
		if f.Text == "Pushed neighbour 2" {
			pushes++
		}
	}
	assert.Equal(t, 2, pushes)
}

func TestTraversalDisconnected(t *testing.T) {
	g := WithNodes(3)
	require.NoError(t, g.AddEdge(0, 1))

	bfs, err := g.BFS(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, bfs[len(bfs)-1].Order)

	dfs, err := g.DFS(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, dfs[len(dfs)-1].Order)
}

func TestTraversalErrors(t *testing.T) {
	_, err := New().BFS(0)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = WithNodes(2).DFS(7)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestDOT(t *testing.T) {
	g := square(t)
	frames, err := g.BFS(0)
	require.NoError(t, err)

	dot := g.DOT(&frames[1])
	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.Contains(t, dot, "n0 -- n1;")
	assert.Contains(t, dot, "n2 -- n3;")
	assert.Contains(t, dot, `n0 [label="0", fillcolor="#f43f5e"]`)

	plain := g.DOT(nil)
	assert.NotContains(t, plain, colorCurrent)
}

func TestFrameString(t *testing.T) {
	f := Frame{Current: NoCurrent, Frontier: []int{1, 2}, Order: []int{0}, Text: "x"}
	s := f.String()
	assert.Contains(t, s, "current=-")
	assert.Contains(t, s, "frontier=[1 2]")
}
