package verify

import (
	"fmt"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/ir"
	"github.com/folidity/folidity/span"
)

// symbolScope maps a declaration's own field/parameter names to the fresh
// SMT constant standing in for each (§4.4.1 step 1). literal interns
// repeated string/hex/address/char literals so identical literals translate
// to the same constant within one declaration's formulas.
type symbolScope struct {
	vars    map[string]string
	literal map[string]string
	fresh   int
}

func newSymbolScope() *symbolScope {
	return &symbolScope{vars: map[string]string{}, literal: map[string]string{}}
}

func (s *symbolScope) freshName(prefix string) string {
	s.fresh++
	return fmt.Sprintf("%s_%d", prefix, s.fresh)
}

// Constraint is one tracked `st` expression (§4.4.1 step 3/4).
type Constraint struct {
	Span    span.Span
	Tracker string
	Formula string
}

// BoundsRecord is the per-declaration SMT translation output: its preamble
// (sort and constant declarations), its tracked constraints, and the other
// declarations it links to for joined-block verification (§4.4.1 step 4,
// §4.4.2).
type BoundsRecord struct {
	Sym         ast.GlobalSymbol
	Preamble    []string
	Constraints []Constraint
	Links       []ast.GlobalSymbol
}

// buildBounds lifts sym's flattened field/parameter scope into SMT
// constants and translates every expression in constraints into a tracked
// Constraint, implementing §4.4.1 in full.
func buildBounds(c *ir.ContractDefinition, sym ast.GlobalSymbol, fields []ast.Field, constraints []ast.Expression) BoundsRecord {
	scope := newSymbolScope()
	rec := BoundsRecord{Sym: sym}

	for _, f := range fields {
		name := fmt.Sprintf("%s_%s", declSortName(c, sym), f.Name.Name)
		scope.vars[f.Name.Name] = name
		rec.Preamble = append(rec.Preamble, fmt.Sprintf("(declare-const %s %s)", name, sortFor(c, f.Type)))
	}

	for i := range constraints {
		tracker := scope.freshName(fmt.Sprintf("tracker_%s", declSortName(c, sym)))
		rec.Preamble = append(rec.Preamble, fmt.Sprintf("(declare-const %s Bool)", tracker))
		formula := translate(c, scope, &constraints[i])
		rec.Constraints = append(rec.Constraints, Constraint{
			Span:    constraints[i].Span,
			Tracker: tracker,
			Formula: formula,
		})
	}
	return rec
}

// buildAllBounds runs buildBounds for every model and state carrying an
// `st` block. Function `st` blocks are not included.
func buildAllBounds(c *ir.ContractDefinition) []BoundsRecord {
	var out []BoundsRecord
	for i, m := range c.Models {
		if !m.St.Present {
			continue
		}
		sym := ast.GlobalSymbol{Kind: ast.DeclModel, Index: i, Span: m.Span}
		out = append(out, buildBounds(c, sym, flattenFieldsFor(c, sym), m.St.Constraints))
	}
	for i, st := range c.States {
		if !st.St.Present {
			continue
		}
		sym := ast.GlobalSymbol{Kind: ast.DeclState, Index: i, Span: st.Span}
		out = append(out, buildBounds(c, sym, flattenFieldsFor(c, sym), st.St.Constraints))
	}
	return out
}

// flattenFieldsFor re-derives the inherited-then-own field ordering the
// analyzer used to resolve `st`-block member access (§4.4.1, §9: "the
// verifier builds its own symbolic mapping directly from the flattened
// field list" — independent of sema's own copy, since nothing downstream
// of pass B needs to share state with the verifier).
func flattenFieldsFor(c *ir.ContractDefinition, sym ast.GlobalSymbol) []ast.Field {
	switch sym.Kind {
	case ast.DeclStruct:
		return c.Struct(sym).Fields
	case ast.DeclModel:
		m := c.Model(sym)
		var out []ast.Field
		if m.HasParent() && m.ParentSym.Kind == ast.DeclModel {
			out = append(out, flattenFieldsFor(c, m.ParentSym)...)
		}
		return append(out, m.Fields...)
	case ast.DeclState:
		st := c.State(sym)
		switch st.Body {
		case ast.StateBodyModel:
			if st.ModelSym.Kind == ast.DeclModel {
				return flattenFieldsFor(c, st.ModelSym)
			}
			return nil
		case ast.StateBodyFields:
			return st.Fields
		default:
			return nil
		}
	default:
		return nil
	}
}
