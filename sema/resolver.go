package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
	"github.com/folidity/folidity/span"
)

// resolver walks one function body (or one st block's expressions),
// threading the active Scope and a couple of ambient flags context-tag
// gating can't express on its own: whether we're currently inside an `st`
// block (return-binder/state-binder become visible) and how many loop
// levels deep we are (gates `skip`, §4.3.2).
type resolver struct {
	c         *ir.ContractDefinition
	sink      *diag.Sink
	scope     *ir.Scope
	fn        *ast.FunctionDecl // nil when resolving a model/state st block
	inStBlock bool
	loopDepth int
}

// lookupVar resolves name against the active scope, applying the
// visibility rule §4.3.1/§4.3.2 describe: a function body may see
// parameters and local bindings but not the return-binder or state-binder
// tables; those become visible only while resolving an `st` block.
func (r *resolver) lookupVar(name span.Identifier) (*ast.VariableSym, bool) {
	sym, ctx, ok := r.scope.Lookup(name.Name)
	if !ok {
		r.sink.Addf(diag.Error, diag.KindUndeclaredIdent, name.Span, "undeclared identifier %q", name.Name)
		return nil, false
	}
	if !r.inStBlock && (ctx == ir.CtxReturnBinder || ctx == ir.CtxStateBlock) {
		r.sink.Addf(diag.Error, diag.KindInvalidAccess, name.Span,
			"%q (%s) is not visible outside an st block", name.Name, sym.Usage)
		return sym, false
	}
	return sym, true
}
