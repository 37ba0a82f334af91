package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
)

// passA implements §4.3 pass A: declaration signatures.
type passA struct {
	c    *ir.ContractDefinition
	sink *diag.Sink
}

// run executes every pass A step in the order §4.3 lists them: register
// names, resolve field lists, check type/inheritance cycles, check
// state-encapsulates-model references, then resolve function signatures
// and seed their scopes.
func (a *passA) run(file ast.File) {
	syms := a.registerDeclarations(file)

	a.resolveFieldLists(syms)
	a.checkTypeCycles()
	a.checkInheritanceCycles()
	a.checkStateModelRefs(syms)
	a.resolveFunctionSignatures(syms)
}

// registerDeclarations runs pass A step 1: register each declaration's
// name, in source order, emitting a duplicate-name diagnostic at the later
// span for any collision. Returns the GlobalSymbol assigned to each parsed
// declaration in file order, so later steps can revisit a specific
// declaration without re-scanning by name.
func (a *passA) registerDeclarations(file ast.File) []ast.GlobalSymbol {
	syms := make([]ast.GlobalSymbol, 0, len(file.Declarations))
	for _, decl := range file.Declarations {
		var sym ast.GlobalSymbol
		var dup bool
		switch decl.Kind {
		case ast.DeclStruct:
			sym, dup = a.c.AddStruct(*decl.Struct)
		case ast.DeclEnum:
			sym, dup = a.c.AddEnum(*decl.Enum)
		case ast.DeclModel:
			sym, dup = a.c.AddModel(*decl.Model)
		case ast.DeclState:
			sym, dup = a.c.AddState(*decl.State)
		case ast.DeclFunction:
			sym, dup = a.c.AddFunction(*decl.Function)
		default:
			continue
		}
		if dup {
			a.sink.Addf(diag.Error, diag.KindDuplicateName, decl.Name().Span,
				"%q is already declared", decl.Name().Name)
		}
		syms = append(syms, sym)
	}
	return syms
}

// resolveFieldLists runs pass A steps 2: resolve every struct/model/state
// field type, rejecting model/state field types.
func (a *passA) resolveFieldLists(syms []ast.GlobalSymbol) {
	for i := range a.c.Structs {
		s := a.c.Structs[i]
		s.Fields = resolveFields(a.c, s.Fields, a.sink)
		a.c.Structs[i] = s
	}
	for i := range a.c.Models {
		m := a.c.Models[i]
		m.Fields = resolveFields(a.c, m.Fields, a.sink)
		if m.HasParent() {
			if sym, ok := a.c.Lookup(m.Parent.Name); ok {
				m.ParentSym = sym
			} else {
				a.sink.Addf(diag.Error, diag.KindUndeclaredIdent, m.Parent.Span,
					"undeclared model %q", m.Parent.Name)
			}
		}
		a.c.Models[i] = m
	}
	for i := range a.c.States {
		st := a.c.States[i]
		if st.Body == ast.StateBodyFields {
			st.Fields = resolveFields(a.c, st.Fields, a.sink)
		}
		if st.HasFrom {
			if sym, ok := a.c.Lookup(st.FromName.Name); ok {
				st.FromSym = sym
			} else {
				a.sink.Addf(diag.Error, diag.KindUndeclaredIdent, st.FromName.Span,
					"undeclared state or model %q", st.FromName.Name)
			}
		}
		a.c.States[i] = st
	}
}

// checkStateModelRefs runs pass A step 5: for every state whose body
// encapsulates a model by name, verify that name actually names a model.
func (a *passA) checkStateModelRefs(_ []ast.GlobalSymbol) {
	for i := range a.c.States {
		st := a.c.States[i]
		if st.Body != ast.StateBodyModel {
			continue
		}
		sym, ok := a.c.Lookup(st.ModelName.Name)
		if !ok {
			a.sink.Addf(diag.Error, diag.KindUndeclaredIdent, st.ModelName.Span,
				"undeclared model %q", st.ModelName.Name)
			continue
		}
		if sym.Kind != ast.DeclModel {
			a.sink.Addf(diag.Error, diag.KindUndeclaredIdent, st.ModelName.Span,
				"%q is not a model", st.ModelName.Name)
			continue
		}
		st.ModelSym = sym
		a.c.States[i] = st
	}
}
