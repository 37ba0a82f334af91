package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/ir"
)

// flattenFields returns the full, inherited-then-own field list for a
// struct/model/state symbol (§4.3.1: "positional args must align with
// fields from the parent's inherited fields (flattened in declaration
// order) followed by the declaration's own fields"). Model inheritance is
// recursive (though capped at one level by the pass A check); state
// flattening substitutes the encapsulated model's own flattened fields
// when the state's body is StateBodyModel.
func flattenFields(c *ir.ContractDefinition, sym ast.GlobalSymbol) []ast.Field {
	switch sym.Kind {
	case ast.DeclStruct:
		return c.Struct(sym).Fields
	case ast.DeclModel:
		m := c.Model(sym)
		var out []ast.Field
		if m.HasParent() && m.ParentSym.Kind == ast.DeclModel {
			out = append(out, flattenFields(c, m.ParentSym)...)
		}
		return append(out, m.Fields...)
	case ast.DeclState:
		st := c.State(sym)
		switch st.Body {
		case ast.StateBodyModel:
			if st.ModelSym.Kind == ast.DeclModel {
				return flattenFields(c, st.ModelSym)
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

// findField looks up name among sym's flattened fields, returning its
// index within that flattened list.
func findField(c *ir.ContractDefinition, sym ast.GlobalSymbol, name string) (ast.Field, int, bool) {
	fields := flattenFields(c, sym)
	for i, f := range fields {
		if f.Name.Name == name {
			return f, i, true
		}
	}
	return ast.Field{}, -1, false
}
