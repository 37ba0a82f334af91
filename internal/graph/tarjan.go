// Package graph implements Tarjan's strongly-connected-components algorithm
// for the semantic analyzer's acyclicity checks (§4.3 pass A: struct
// type-dependency graph, model-inheritance graph), and a union-find
// connected-components pass on the same representation for the verifier's
// undirected link graph (§4.4.2, §4.4.4). Nodes are identified by small
// integers (callers map their own domain values to indices), the same
// indexed-collection discipline the rest of the IR uses instead of pointer
// graphs (§9).
//
// SCCs uses the recursive form of Tarjan's walk (see strongConnect);
// UndirectedComponents is iterative.
package graph

// Graph is a directed graph over node indices [0, N).
type Graph struct {
	n     int
	edges [][]int
}

// New returns an empty graph over n nodes.
func New(n int) *Graph {
	return &Graph{n: n, edges: make([][]int, n)}
}

// AddEdge adds a directed edge from -> to. Both must be valid node indices.
func (g *Graph) AddEdge(from, to int) {
	g.edges[from] = append(g.edges[from], to)
}

// SCCs returns the graph's strongly connected components, each as a slice
// of node indices, in Tarjan's discovery order. A component of size 1 is
// only a cycle if the node has a self-edge; callers distinguish trivial
// single-node components from real cycles via HasSelfLoop.
func (g *Graph) SCCs() [][]int {
	t := &tarjanState{
		g:       g,
		index:   make([]int, g.n),
		low:     make([]int, g.n),
		onStack: make([]bool, g.n),
		visited: make([]bool, g.n),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for v := 0; v < g.n; v++ {
		if !t.visited[v] {
			t.strongConnect(v)
		}
	}
	return t.sccs
}

// HasSelfLoop reports whether node v has an edge to itself.
func (g *Graph) HasSelfLoop(v int) bool {
	for _, to := range g.edges[v] {
		if to == v {
			return true
		}
	}
	return false
}

type tarjanState struct {
	g       *Graph
	counter int
	index   []int
	low     []int
	onStack []bool
	stack   []int
	visited []bool
	sccs    [][]int
}

// strongConnect is the textbook recursive Tarjan walk. Folidity's type and
// inheritance graphs are shallow (bounded by declaration count, not by
// expression depth), so recursion depth is never a practical concern the
// way it would be for, say, a deeply nested expression tree.
func (t *tarjanState) strongConnect(v int) {
	t.visited[v] = true
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.edges[v] {
		if !t.visited[w] {
			t.strongConnect(w)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.low[v] {
				t.low[v] = t.index[w]
			}
		}
	}

	if t.low[v] == t.index[v] {
		var component []int
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			component = append(component, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, component)
	}
}

// UndirectedComponents treats g as an undirected graph (every edge read in
// both directions) and returns its connected components, used by the
// verifier's joined-block pass (§4.4.4: "on the undirected graph built from
// link edges, compute connected components"). This is plain union-find,
// not Tarjan proper — Tarjan's SCC algorithm on a graph with every edge
// mirrored degenerates to exactly the connected components anyway, but
// union-find says so more directly and avoids recursion.
func (g *Graph) UndirectedComponents() [][]int {
	parent := make([]int, g.n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for v := 0; v < g.n; v++ {
		for _, w := range g.edges[v] {
			union(v, w)
		}
	}

	byRoot := map[int][]int{}
	for v := 0; v < g.n; v++ {
		r := find(v)
		byRoot[r] = append(byRoot[r], v)
	}
	out := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		out = append(out, members)
	}
	return out
}
