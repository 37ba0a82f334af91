package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
)

// resolveFunctionSignatures runs pass A step 6: resolve every function's
// return type, parameter types, and transition clause, then register and
// seed its Scope in the order §4.3 specifies — return binder, then
// access-attribute binders, then incoming/outgoing state binders, then
// parameters — so pass B only ever has to push a function-body table on
// top of an already-complete signature scope.
func (a *passA) resolveFunctionSignatures(_ []ast.GlobalSymbol) {
	for i := range a.c.Functions {
		fn := a.c.Functions[i]

		fn.Return.Type = resolveType(a.c, fn.Return.Type, a.sink)
		for pi, p := range fn.Params {
			fn.Params[pi].Type = resolveType(a.c, p.Type, a.sink)
		}

		a.resolveStateBinder(&fn.ViewState, fn.HasView)
		if fn.Transition.Present {
			a.resolveStateBinder(&fn.Transition.From, true)
			for ti := range fn.Transition.To {
				a.resolveStateBinder(&fn.Transition.To[ti], true)
			}
		}

		sym := ast.GlobalSymbol{Kind: ast.DeclFunction, Index: i, Span: fn.Span}
		scope := ir.NewScope(sym)
		a.seedScope(scope, fn)
		a.c.Scopes[sym] = scope

		a.c.Functions[i] = fn
	}
}

// resolveStateBinder checks binder.State when present, diagnosing an
// unresolvable or non-state name, and widens binder.Span by the state's
// span; it does not store the resolved symbol.
func (a *passA) resolveStateBinder(binder *ast.StateBinder, expected bool) {
	if !expected || binder.State.Name == "" {
		return
	}
	sym, ok := a.c.Lookup(binder.State.Name)
	if !ok {
		a.sink.Addf(diag.Error, diag.KindUndeclaredIdent, binder.State.Span,
			"undeclared state %q", binder.State.Name)
		return
	}
	if sym.Kind != ast.DeclState {
		a.sink.Addf(diag.Error, diag.KindUndeclaredIdent, binder.State.Span,
			"%q is not a state", binder.State.Name)
		return
	}
	binder.Span = binder.Span.Join(sym.Span)
}

// seedScope declares every signature-level binder in the context tag order
// §4.3 pass A lists, so later visibility checks can rely on the invariant
// that a return-binder or state-binder is never visible from the plain
// function-body table pass B adds on top.
func (a *passA) seedScope(scope *ir.Scope, fn ast.FunctionDecl) {
	scope.Push(ir.CtxReturnBinder)
	if fn.Return.HasBinder() {
		scope.Declare(&ast.VariableSym{
			ID:       a.c.FreshLocalID(),
			Name:     fn.Return.Binder.Name,
			Type:     fn.Return.Type,
			Usage:    ast.UsageReturnBinder,
			DeclSpan: fn.Return.Binder.Span,
		})
	}

	scope.Push(ir.CtxAccessAttrBinder)

	scope.Push(ir.CtxStateBlock)
	if fn.Transition.Present {
		a.declareBinder(scope, fn.Transition.From)
		for _, to := range fn.Transition.To {
			a.declareBinder(scope, to)
		}
	}

	if fn.HasView {
		scope.Push(ir.CtxViewState)
		a.declareBinder(scope, fn.ViewState)
	}

	scope.Push(ir.CtxFunctionSignature)
	for _, p := range fn.Params {
		scope.Declare(&ast.VariableSym{
			ID:       a.c.FreshLocalID(),
			Name:     p.Name.Name,
			Type:     p.Type,
			Usage:    ast.UsageParameter,
			Mutable:  p.Mut,
			DeclSpan: p.Span,
		})
	}
}

func (a *passA) declareBinder(scope *ir.Scope, b ast.StateBinder) {
	if !b.HasName() {
		return
	}
	var t ast.Type
	if sym, ok := a.c.Lookup(b.State.Name); ok {
		t = ast.CustomType(sym, b.State.Span)
	}
	scope.Declare(&ast.VariableSym{
		ID:       a.c.FreshLocalID(),
		Name:     b.Name.Name,
		Type:     t,
		Usage:    ast.UsageStateBinder,
		DeclSpan: b.Span,
	})
}
