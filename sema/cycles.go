package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/internal/graph"
)

// checkTypeCycles runs pass A step 3: Tarjan's SCC over the type-dependency
// graph induced by struct fields (§3: "the type graph induced by struct
// fields is acyclic"). A node is a struct index; an edge struct[i] ->
// struct[j] exists when struct i has a field whose resolved type names
// struct j directly (composite wrappers like list<Foo> do not themselves
// create a storage cycle the way a direct field does, so only direct
// TCustom fields contribute edges).
func (a *passA) checkTypeCycles() {
	g := graph.New(len(a.c.Structs))
	for i, s := range a.c.Structs {
		for _, f := range s.Fields {
			if f.Type.Kind == ast.TCustom && f.Type.Custom.Kind == ast.DeclStruct {
				g.AddEdge(i, f.Type.Custom.Index)
			}
		}
	}
	for _, scc := range g.SCCs() {
		if len(scc) > 1 || (len(scc) == 1 && g.HasSelfLoop(scc[0])) {
			a.reportCycle(scc, func(idx int) (string, ast.GlobalSymbol) {
				s := a.c.Structs[idx]
				return s.Name.Name, ast.GlobalSymbol{Kind: ast.DeclStruct, Index: idx, Span: s.Span}
			})
		}
	}
}

// checkInheritanceCycles runs pass A step 4: the same acyclicity check over
// the model-inheritance graph, plus the Open Question decision recorded in
// SPEC_FULL.md §9 that inheritance chains deeper than one level are
// rejected as a separate check (acyclicity alone permits arbitrarily long
// finite chains).
func (a *passA) checkInheritanceCycles() {
	g := graph.New(len(a.c.Models))
	for i, m := range a.c.Models {
		if m.HasParent() && m.ParentSym.Kind == ast.DeclModel {
			g.AddEdge(i, m.ParentSym.Index)
		}
	}
	for _, scc := range g.SCCs() {
		if len(scc) > 1 || (len(scc) == 1 && g.HasSelfLoop(scc[0])) {
			a.reportCycle(scc, func(idx int) (string, ast.GlobalSymbol) {
				m := a.c.Models[idx]
				return m.Name.Name, ast.GlobalSymbol{Kind: ast.DeclModel, Index: idx, Span: m.Span}
			})
		}
	}

	for i, m := range a.c.Models {
		if !m.HasParent() || m.ParentSym.Kind != ast.DeclModel {
			continue
		}
		parent := a.c.Models[m.ParentSym.Index]
		if parent.HasParent() {
			a.sink.Addf(diag.Error, diag.KindCycle, m.Parent.Span,
				"model %q inherits from %q, which itself has a parent; inheritance chains deeper than one level are not allowed",
				m.Name.Name, parent.Name.Name)
		}
		_ = i
	}
}

// reportCycle emits one semantic.cycle diagnostic naming every declaration
// in an SCC, anchored at the first member's span with the rest attached as
// related reports (§8: "at least one diagnostic of kind cycle names a
// declaration in that cycle").
func (a *passA) reportCycle(scc []int, describe func(int) (string, ast.GlobalSymbol)) {
	name0, sym0 := describe(scc[0])
	r := diag.Report{
		Primary:  sym0.Span,
		Kind:     diag.KindCycle,
		Severity: diag.Error,
		Message:  "cycle detected involving " + name0,
	}
	for _, idx := range scc[1:] {
		name, sym := describe(idx)
		r.Related = append(r.Related, diag.Report{
			Primary:  sym.Span,
			Kind:     diag.KindCycle,
			Severity: diag.Error,
			Message:  "...through " + name,
		})
	}
	a.sink.Add(r)
}
