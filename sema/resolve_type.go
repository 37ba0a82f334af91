package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
)

// resolveType fills in t.Custom for a TCustom type the parser left only
// carrying a Name (§4.3 pass A step 2), recursing into composite payloads
// so a `list<Foo>` or `mapping<Foo -> Bar>` resolves its element types too.
// A name that doesn't resolve to any top-level declaration gets an
// undeclared-identifier diagnostic and is left with a zero Custom, which
// downstream passes treat as "unresolved" rather than re-diagnosing.
func resolveType(c *ir.ContractDefinition, t ast.Type, sink *diag.Sink) ast.Type {
	switch t.Kind {
	case ast.TCustom:
		if !t.Custom.IsZero() {
			return t
		}
		sym, ok := c.Lookup(t.Name.Name)
		if !ok {
			sink.Addf(diag.Error, diag.KindUndeclaredIdent, t.Name.Span,
				"undeclared type %q", t.Name.Name)
			return t
		}
		t.Custom = sym
		return t
	case ast.TList, ast.TSet:
		if t.Elem != nil {
			resolved := resolveType(c, *t.Elem, sink)
			t.Elem = &resolved
		}
		return t
	case ast.TMapping:
		if t.Key != nil {
			resolved := resolveType(c, *t.Key, sink)
			t.Key = &resolved
		}
		if t.Value != nil {
			resolved := resolveType(c, *t.Value, sink)
			t.Value = &resolved
		}
		return t
	default:
		return t
	}
}

// rejectModelOrStateField reports whether t (already resolved) names a
// model or state declaration, which §3 forbids as a field type ("a field's
// type cannot be a model or state"), emitting the diagnostic if so.
func rejectModelOrStateField(sink *diag.Sink, field ast.Field, t ast.Type) bool {
	if t.Kind != ast.TCustom || t.Custom.IsZero() {
		return false
	}
	if t.Custom.Kind == ast.DeclModel || t.Custom.Kind == ast.DeclState {
		sink.Addf(diag.Error, diag.KindIllegalFieldType, field.Span,
			"field %q cannot have a %s type; models and states cannot be field types",
			field.Name.Name, t.Custom.Kind)
		return true
	}
	return false
}

// resolveFields resolves every field's type in place and flags illegal
// model/state field types, returning the resolved slice.
func resolveFields(c *ir.ContractDefinition, fields []ast.Field, sink *diag.Sink) []ast.Field {
	out := make([]ast.Field, len(fields))
	for i, f := range fields {
		f.Type = resolveType(c, f.Type, sink)
		rejectModelOrStateField(sink, f, f.Type)
		out[i] = f
	}
	return out
}
