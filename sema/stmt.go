package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
	"github.com/folidity/folidity/span"
)

// resolveBlock pushes a fresh function-body table, resolves each statement
// in order, and flags everything after the first terminal return as
// unreachable (§4.3.2: "marks the remainder of the current block
// unreachable").
func (r *resolver) resolveBlock(stmts []ast.Statement) []ast.Statement {
	r.scope.Push(ir.CtxFunctionBody)
	defer r.scope.Pop()

	terminated := false
	for i := range stmts {
		if terminated {
			r.sink.Addf(diag.Warning, diag.KindUnreachableCode, stmts[i].Span, "unreachable statement")
		}
		r.resolveStmt(&stmts[i])
		if stmts[i].Kind == ast.SReturn {
			terminated = true
		}
	}
	return stmts
}

func (r *resolver) resolveStmt(s *ast.Statement) {
	switch s.Kind {
	case ast.SLet:
		r.resolveLet(s)
	case ast.SAssign:
		r.resolveAssign(s)
	case ast.SIf:
		r.resolveIf(s)
	case ast.SFor:
		r.resolveFor(s)
	case ast.SIterator:
		r.resolveIterator(s)
	case ast.SReturn:
		r.resolveReturn(s)
	case ast.SExpr:
		r.resolveExpr(s.Expr, exEmpty())
	case ast.SMove:
		r.resolveMove(s)
	case ast.SSkip:
		if r.loopDepth == 0 {
			r.sink.Addf(diag.Error, diag.KindInvalidAccess, s.Span, "skip is only legal inside a loop")
		}
	case ast.SBlock:
		s.Body = r.resolveBlock(s.Body)
	case ast.SError:
		// already a placeholder; nothing to resolve.
	}
}

func (r *resolver) resolveLet(s *ast.Statement) {
	exp := exEmpty()
	if s.Annotation != nil {
		exp = exConcrete(*s.Annotation)
	}
	var initType ast.Type
	if s.Init != nil {
		initType = r.resolveExpr(s.Init, exp)
	} else if s.Annotation != nil {
		initType = *s.Annotation
	}

	if s.Pattern.Single {
		r.scope.Declare(&ast.VariableSym{
			ID:           r.c.FreshLocalID(),
			Name:         s.Pattern.Name.Name,
			Type:         initType,
			AssignedExpr: s.Init,
			Usage:        ast.UsageLetBinding,
			DeclSpan:     s.Pattern.Span,
		})
		return
	}

	// Destructuring binds by name against the initializer's resolved
	// struct-like type (Open Question decision, SPEC_FULL.md §9).
	if initType.Kind != ast.TCustom || initType.Custom.IsZero() {
		r.sink.Addf(diag.Error, diag.KindTypeMismatch, s.Pattern.Span,
			"destructuring initializer must be a struct, model, or state value")
		return
	}
	for _, fname := range s.Pattern.Fields {
		field, _, ok := findField(r.c, initType.Custom, fname.Name)
		if !ok {
			r.sink.Addf(diag.Error, diag.KindUndeclaredIdent, fname.Span,
				"%s has no field %q", r.c.DeclName(initType.Custom), fname.Name)
			continue
		}
		r.scope.Declare(&ast.VariableSym{
			ID:       r.c.FreshLocalID(),
			Name:     fname.Name,
			Type:     field.Type,
			Usage:    ast.UsageLetBinding,
			DeclSpan: fname.Span,
		})
	}
}

func (r *resolver) resolveAssign(s *ast.Statement) {
	targetType := r.resolveExpr(s.Target, exEmpty())
	r.resolveExpr(s.Value, exConcrete(targetType))

	root := s.Target
	for root.Kind == ast.EMemberAccess {
		root = root.Target
	}
	if root.Kind == ast.EVarRef && root.Var != nil && !root.Var.Mutable {
		r.sink.Addf(diag.Error, diag.KindInvalidAccess, s.Target.Span,
			"%q is not mutable", root.Var.Name)
	}
}

func (r *resolver) resolveIf(s *ast.Statement) {
	r.resolveExpr(s.Cond, exBool())
	s.Then = r.resolveBlock(s.Then)
	if len(s.Else) == 0 {
		return
	}
	if s.ElseIsIf {
		r.resolveStmt(&s.Else[0])
	} else {
		s.Else = r.resolveBlock(s.Else)
	}
}

func (r *resolver) resolveFor(s *ast.Statement) {
	r.scope.Push(ir.CtxLoop)
	defer r.scope.Pop()

	r.resolveStmt(s.ForInit)
	r.resolveExpr(s.ForCond, exBool())
	r.resolveExpr(s.ForStep, exEmpty())

	r.loopDepth++
	s.Body = r.resolveBlock(s.Body)
	r.loopDepth--
}

func (r *resolver) resolveIterator(s *ast.Statement) {
	containerType := r.resolveExpr(s.Iterable, exEmpty())

	r.scope.Push(ir.CtxLoop)
	defer r.scope.Pop()

	switch containerType.Kind {
	case ast.TList, ast.TSet:
		if len(s.Binders) >= 1 && containerType.Elem != nil {
			r.declareLoopVar(s.Binders[0], *containerType.Elem)
		}
	case ast.TMapping:
		if len(s.Binders) >= 1 && containerType.Key != nil {
			r.declareLoopVar(s.Binders[0], *containerType.Key)
		}
		if len(s.Binders) >= 2 && containerType.Value != nil {
			r.declareLoopVar(s.Binders[1], *containerType.Value)
		}
	default:
		if containerType.Kind != ast.TUnresolved {
			r.sink.Addf(diag.Error, diag.KindTypeMismatch, s.Iterable.Span,
				"for-in source must be a list, set, or mapping, got %s", containerType)
		}
	}

	r.loopDepth++
	s.Body = r.resolveBlock(s.Body)
	r.loopDepth--
}

func (r *resolver) declareLoopVar(name span.Identifier, t ast.Type) {
	r.scope.Declare(&ast.VariableSym{
		ID:       r.c.FreshLocalID(),
		Name:     name.Name,
		Type:     t,
		Usage:    ast.UsageLoopVar,
		DeclSpan: name.Span,
	})
}

func (r *resolver) resolveReturn(s *ast.Statement) {
	var retType ast.Type
	if r.fn != nil {
		retType = r.fn.Return.Type
	}
	if s.ReturnValue != nil {
		got := r.resolveExpr(s.ReturnValue, exConcrete(retType))
		if r.fn != nil && !got.Equal(retType) && retType.Kind != ast.TUnresolved {
			r.sink.Addf(diag.Error, diag.KindTypeMismatch, s.Span,
				"return type mismatch: function returns %s, got %s", retType, got)
		}
	} else if r.fn != nil && retType.Kind != ast.TUnit && retType.Kind != ast.TUnresolved {
		r.sink.Addf(diag.Error, diag.KindTypeMismatch, s.Span,
			"missing return value, function returns %s", retType)
	}
}

func (r *resolver) resolveMove(s *ast.Statement) {
	r.resolveExpr(s.MoveInit, exEmpty())

	if r.fn == nil {
		return
	}
	if r.fn.IsView() || r.fn.IsPure() || !r.fn.Transition.Present {
		r.sink.Addf(diag.Error, diag.KindInvalidTransition, s.Span,
			"move is only legal in a non-view, non-pure function with a state-transition clause")
		return
	}
	targetType := s.MoveInit.Resolved
	for _, to := range r.fn.Transition.To {
		if targetType.Kind == ast.TCustom && !targetType.Custom.IsZero() &&
			targetType.Custom.Kind == ast.DeclState && to.State.Name != "" {
			if sym, ok := r.c.Lookup(to.State.Name); ok && sym.Index == targetType.Custom.Index {
				return
			}
		}
	}
	r.sink.Addf(diag.Error, diag.KindInvalidMoveTarget, s.Span,
		"move target does not match any declared outgoing state")
}
