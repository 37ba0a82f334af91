package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortedComponents(cs [][]int) [][]int {
	out := make([][]int, len(cs))
	for i, c := range cs {
		cp := append([]int(nil), c...)
		sort.Ints(cp)
		out[i] = cp
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i][0] < out[j][0]
	})
	return out
}

func Test_Graph_SCCs_acyclicYieldsSingletons(t *testing.T) {
	assert := assert.New(t)

	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	sccs := sortedComponents(g.SCCs())
	assert.Equal([][]int{{0}, {1}, {2}}, sccs)
}

func Test_Graph_SCCs_cycleCollapsesToOneComponent(t *testing.T) {
	assert := assert.New(t)

	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	sccs := g.SCCs()
	assert.Len(sccs, 1)

	got := append([]int(nil), sccs[0]...)
	sort.Ints(got)
	assert.Equal([]int{0, 1, 2}, got)
}

func Test_Graph_SCCs_mixedGraph(t *testing.T) {
	assert := assert.New(t)

	// 0 <-> 1 form a cycle; 2 is a separate, acyclic successor of 1.
	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(1, 2)

	sccs := sortedComponents(g.SCCs())
	assert.Equal([][]int{{0, 1}, {2}}, sccs)
}

func Test_Graph_HasSelfLoop(t *testing.T) {
	assert := assert.New(t)

	g := New(2)
	g.AddEdge(0, 0)
	g.AddEdge(0, 1)

	assert.True(g.HasSelfLoop(0))
	assert.False(g.HasSelfLoop(1))
}

func Test_Graph_UndirectedComponents(t *testing.T) {
	assert := assert.New(t)

	// 0-1 joined, 2 isolated, 3-4 joined via a one-directional edge (still
	// counts as connected once read undirected).
	g := New(5)
	g.AddEdge(0, 1)
	g.AddEdge(3, 4)

	got := sortedComponents(g.UndirectedComponents())
	assert.Equal([][]int{{0, 1}, {2}, {3, 4}}, got)
}
