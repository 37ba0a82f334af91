package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
)

// passB implements §4.3 pass B: st blocks and function bodies.
type passB struct {
	c    *ir.ContractDefinition
	sink *diag.Sink
}

func (b *passB) run() {
	for i, m := range b.c.Models {
		if m.St.Present {
			scope := b.fieldScope(ast.GlobalSymbol{Kind: ast.DeclModel, Index: i})
			b.resolveConstraints(scope, m.St.Constraints)
		}
	}
	for i, st := range b.c.States {
		if st.St.Present {
			scope := b.fieldScope(ast.GlobalSymbol{Kind: ast.DeclState, Index: i})
			b.resolveConstraints(scope, st.St.Constraints)
		}
	}
	for i := range b.c.Functions {
		b.resolveFunction(i)
	}
}

// fieldScope builds a transient scope binding sym's flattened fields as
// readable names, used to resolve a model/state's own `st` block (§4.3
// pass B step 1). This scope is never attached to b.c.Scopes: nothing
// downstream of sema needs to re-walk it, since the verifier builds its
// own symbolic mapping directly from the flattened field list (§4.4.1).
func (b *passB) fieldScope(sym ast.GlobalSymbol) *ir.Scope {
	scope := ir.NewScope(sym)
	scope.Push(ir.CtxFunctionBody)
	for _, f := range flattenFields(b.c, sym) {
		scope.Declare(&ast.VariableSym{
			ID:       b.c.FreshLocalID(),
			Name:     f.Name.Name,
			Type:     f.Type,
			Usage:    ast.UsageLetBinding,
			DeclSpan: f.Span,
		})
	}
	return scope
}

// resolveConstraints resolves each expression in an st block, requiring
// boolean (§4.3 pass B step 1: "each listed expression must resolve to
// boolean").
func (b *passB) resolveConstraints(scope *ir.Scope, constraints []ast.Expression) {
	r := &resolver{c: b.c, sink: b.sink, scope: scope, inStBlock: true}
	for i := range constraints {
		t := r.resolveExpr(&constraints[i], exBool())
		if t.Kind != ast.TBool && t.Kind != ast.TUnresolved {
			b.sink.Addf(diag.Error, diag.KindTypeMismatch, constraints[i].Span,
				"st block expression must be boolean, got %s", t)
		}
	}
}

// resolveFunction resolves a single function's access attributes, st
// block, and body, reusing the Scope pass A already seeded and stored.
func (b *passB) resolveFunction(index int) {
	fn := b.c.Functions[index]
	sym := ast.GlobalSymbol{Kind: ast.DeclFunction, Index: index, Span: fn.Span}
	scope, ok := b.c.Scopes[sym]
	if !ok {
		return
	}

	r := &resolver{c: b.c, sink: b.sink, scope: scope, fn: &fn}

	for i := range fn.Access {
		r.resolveExpr(&fn.Access[i].Expr, exBool())
	}

	if fn.St.Present {
		r.inStBlock = true
		for i := range fn.St.Constraints {
			t := r.resolveExpr(&fn.St.Constraints[i], exBool())
			if t.Kind != ast.TBool && t.Kind != ast.TUnresolved {
				b.sink.Addf(diag.Error, diag.KindTypeMismatch, fn.St.Constraints[i].Span,
					"st block expression must be boolean, got %s", t)
			}
		}
		r.inStBlock = false
	}

	if fn.BodyKind == ast.FuncBodyBlock {
		scope.Push(ir.CtxFunctionBody)
		fn.Body = r.resolveBlock(fn.Body)
		scope.Pop()
	} else if fn.BodyExpr != nil {
		r.resolveExpr(fn.BodyExpr, exConcrete(fn.Return.Type))
	}

	b.c.Functions[index] = fn
}
