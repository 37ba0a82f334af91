package verify

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/internal/graph"
	"github.com/folidity/folidity/ir"
)

// linkGraph indexes the symbols carrying bounds records and exposes the
// undirected link graph §4.4.2/§4.4.4 describe, built over exactly those
// declarations (models and states with an `st` block).
type linkGraph struct {
	index map[ast.GlobalSymbol]int
	nodes []ast.GlobalSymbol
	g     *graph.Graph
}

// buildLinkGraph adds an edge whenever (§4.4.2):
//   - a model inherits another model,
//   - a state encapsulates or `from`-clauses another state or model,
//   - a function's transition clause mentions states.
func buildLinkGraph(c *ir.ContractDefinition, records []BoundsRecord) *linkGraph {
	lg := &linkGraph{index: map[ast.GlobalSymbol]int{}}
	// Symbols are matched by (kind, index) only: records, lookups and the
	// loops below each carry a different span for the same declaration.
	key := func(s ast.GlobalSymbol) ast.GlobalSymbol {
		return ast.GlobalSymbol{Kind: s.Kind, Index: s.Index}
	}
	for _, r := range records {
		lg.index[key(r.Sym)] = len(lg.nodes)
		lg.nodes = append(lg.nodes, r.Sym)
	}
	lg.g = graph.New(len(lg.nodes))

	connect := func(a, b ast.GlobalSymbol) {
		ai, aok := lg.index[key(a)]
		bi, bok := lg.index[key(b)]
		if aok && bok {
			lg.g.AddEdge(ai, bi)
			lg.g.AddEdge(bi, ai)
		}
	}

	for i, m := range c.Models {
		if m.HasParent() && m.ParentSym.Kind == ast.DeclModel {
			sym := ast.GlobalSymbol{Kind: ast.DeclModel, Index: i}
			connect(sym, m.ParentSym)
		}
	}
	for i, st := range c.States {
		sym := ast.GlobalSymbol{Kind: ast.DeclState, Index: i}
		if st.Body == ast.StateBodyModel && st.ModelSym.Kind == ast.DeclModel {
			connect(sym, st.ModelSym)
		}
		if st.HasFrom && st.FromSym.Kind == ast.DeclState {
			connect(sym, st.FromSym)
		}
	}
	for _, fn := range c.Functions {
		if !fn.Transition.Present {
			continue
		}
		var mentioned []ast.GlobalSymbol
		addIfState := func(b ast.StateBinder) {
			if sym, ok := c.Lookup(b.State.Name); ok && sym.Kind == ast.DeclState {
				mentioned = append(mentioned, sym)
			}
		}
		addIfState(fn.Transition.From)
		for _, to := range fn.Transition.To {
			addIfState(to)
		}
		for i := 0; i < len(mentioned); i++ {
			for j := i + 1; j < len(mentioned); j++ {
				connect(mentioned[i], mentioned[j])
			}
		}
	}

	return lg
}

// components returns the connected components of size >= 2, each as the
// set of BoundsRecord indices it covers, for joined-block verification
// (§4.4.4).
func (lg *linkGraph) components(records []BoundsRecord) [][]int {
	recByIndex := map[ast.GlobalSymbol]int{}
	for i, r := range records {
		recByIndex[r.Sym] = i
	}

	var out [][]int
	for _, comp := range lg.g.UndirectedComponents() {
		if len(comp) < 2 {
			continue
		}
		var recIdx []int
		for _, nodeIdx := range comp {
			if ri, ok := recByIndex[lg.nodes[nodeIdx]]; ok {
				recIdx = append(recIdx, ri)
			}
		}
		if len(recIdx) >= 2 {
			out = append(out, recIdx)
		}
	}
	return out
}
