package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/span"
)

// resolveExpr resolves e in place under expectation exp, setting
// e.Resolved (and any analyzer-filled fields: Var, Func, InitSym,
// FieldIndex) and returning the resolved type. It implements §4.3.1 in
// full: the three-valued expected type, numeric-literal candidate
// narrowing, and every expression form's specific resolution rule.
func (r *resolver) resolveExpr(e *ast.Expression, exp expected) ast.Type {
	switch e.Kind {
	case ast.EError:
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved

	case ast.ENumberLit:
		t := chooseNumericType(exp)
		e.Resolved = t
		return t

	case ast.EFloatLit, ast.EBoolLit, ast.EStringLit, ast.EHexLit, ast.EAddressLit, ast.ECharLit:
		return e.Resolved

	case ast.EListLit:
		elemExp := elemExpected(exp)
		var elemType ast.Type
		for i := range e.Elements {
			t := r.resolveExpr(&e.Elements[i], elemExp)
			if i == 0 {
				elemType = t
			}
		}
		e.Resolved = ast.ListOf(elemType, e.Span)
		return e.Resolved

	case ast.EVarRef:
		sym, ok := r.lookupVar(e.Name)
		if !ok {
			e.Resolved = ast.Type{Kind: ast.TUnresolved}
			return e.Resolved
		}
		e.Var = sym
		e.Resolved = sym.Type
		return e.Resolved

	case ast.EMemberAccess:
		return r.resolveMemberAccess(e)

	case ast.ECall:
		return r.resolveCall(e)

	case ast.EInit:
		return r.resolveInit(e)

	case ast.EBinary:
		return r.resolveBinary(e, exp)

	case ast.EUnary:
		return r.resolveUnary(e, exp)

	default:
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved
	}
}

func chooseNumericType(exp expected) ast.Type {
	cands := exp.candidateTypes()
	if len(cands) == 0 {
		return ast.Primitive(ast.TSignedInt, span.Span{})
	}
	sawUnsigned := false
	for _, c := range cands {
		if c.Kind == ast.TSignedInt {
			return ast.Primitive(ast.TSignedInt, span.Span{})
		}
		if c.Kind == ast.TUnsignedInt {
			sawUnsigned = true
		}
	}
	if sawUnsigned {
		return ast.Primitive(ast.TUnsignedInt, span.Span{})
	}
	return ast.Primitive(ast.TSignedInt, span.Span{})
}

func elemExpected(exp expected) expected {
	if exp.kind == expConcrete && (exp.concrete.Kind == ast.TList || exp.concrete.Kind == ast.TSet) && exp.concrete.Elem != nil {
		return exConcrete(*exp.concrete.Elem)
	}
	return exEmpty()
}

func (r *resolver) resolveMemberAccess(e *ast.Expression) ast.Type {
	// An enum variant reference (`Color.Red`) looks exactly like a member
	// access whose target is a bare identifier, but the identifier names a
	// declaration, not a bound variable; try the variable scope first so
	// shadowing a type name with a local binding behaves as expected.
	if e.Target.Kind == ast.EVarRef {
		if _, _, ok := r.scope.Lookup(e.Target.Name.Name); !ok {
			if sym, ok := r.c.Lookup(e.Target.Name.Name); ok && sym.Kind == ast.DeclEnum {
				return r.resolveEnumVariant(e, sym)
			}
		}
	}

	targetType := r.resolveExpr(e.Target, exEmpty())
	if targetType.Kind != ast.TCustom || targetType.Custom.IsZero() {
		r.sink.Addf(diag.Error, diag.KindTypeMismatch, e.Target.Span,
			"member access target must be a struct, model, or state value")
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved
	}
	field, idx, ok := findField(r.c, targetType.Custom, e.Field.Name)
	if !ok {
		r.sink.Addf(diag.Error, diag.KindUndeclaredIdent, e.Field.Span,
			"%s has no field %q", r.c.DeclName(targetType.Custom), e.Field.Name)
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved
	}
	e.FieldIndex = idx
	e.Resolved = field.Type
	return e.Resolved
}

func (r *resolver) resolveEnumVariant(e *ast.Expression, enumSym ast.GlobalSymbol) ast.Type {
	enum := r.c.Enum(enumSym)
	for i, v := range enum.Variants {
		if v.Name == e.Field.Name {
			e.FieldIndex = i
			e.Target.Resolved = ast.CustomType(enumSym, e.Target.Span)
			e.Resolved = ast.CustomType(enumSym, e.Span)
			return e.Resolved
		}
	}
	r.sink.Addf(diag.Error, diag.KindUndeclaredIdent, e.Field.Span,
		"enum %q has no variant %q", enum.Name.Name, e.Field.Name)
	e.Resolved = ast.Type{Kind: ast.TUnresolved}
	return e.Resolved
}

// resolveCall resolves §4.3.1's function-call rule, plus the `range(lo to
// hi)` iterator-source builtin the grammar desugars into a call node named
// "range" with two arguments (§4.2 grammar notes): such a callee that
// doesn't resolve to any declared function is treated as that builtin
// rather than diagnosed.
func (r *resolver) resolveCall(e *ast.Expression) ast.Type {
	sym, ok := r.c.Lookup(e.Callee.Name)
	if !ok || sym.Kind != ast.DeclFunction {
		if e.Callee.Name == "range" && len(e.Args) == 2 {
			for i := range e.Args {
				r.resolveExpr(&e.Args[i], exNumeric())
			}
			e.Resolved = ast.ListOf(ast.Primitive(ast.TSignedInt, span.Span{}), e.Span)
			return e.Resolved
		}
		r.sink.Addf(diag.Error, diag.KindUndeclaredIdent, e.Callee.Span,
			"undeclared function %q", e.Callee.Name)
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved
	}
	fn := r.c.Function(sym)
	if len(e.Args) != len(fn.Params) {
		r.sink.Addf(diag.Error, diag.KindArityMismatch, e.Span,
			"%s expects %d argument(s), got %d", fn.Name.Name, len(fn.Params), len(e.Args))
	}
	for i := range e.Args {
		if i < len(fn.Params) {
			r.resolveExpr(&e.Args[i], exConcrete(fn.Params[i].Type))
		} else {
			r.resolveExpr(&e.Args[i], exEmpty())
		}
	}
	e.Func = sym
	e.Resolved = fn.Return.Type
	return e.Resolved
}

// resolveInit resolves §4.3.1's struct/state initializer rule.
func (r *resolver) resolveInit(e *ast.Expression) ast.Type {
	sym, ok := r.c.Lookup(e.InitDecl.Name)
	if !ok || (sym.Kind != ast.DeclStruct && sym.Kind != ast.DeclModel && sym.Kind != ast.DeclState) {
		r.sink.Addf(diag.Error, diag.KindUndeclaredIdent, e.InitDecl.Span,
			"%q does not name a struct, model, or state", e.InitDecl.Name)
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved
	}
	e.InitSym = sym
	fields := flattenFields(r.c, sym)

	if !e.Spread.Present && len(e.PositionArgs) != len(fields) {
		r.sink.Addf(diag.Error, diag.KindArityMismatch, e.Span,
			"%s has %d field(s), got %d initializer argument(s)", r.c.DeclName(sym), len(fields), len(e.PositionArgs))
	}
	for i := range e.PositionArgs {
		if i < len(fields) {
			r.resolveExpr(&e.PositionArgs[i], exConcrete(fields[i].Type))
		} else {
			r.resolveExpr(&e.PositionArgs[i], exEmpty())
		}
	}
	if e.Spread.Present && e.Spread.Value != nil {
		r.resolveExpr(e.Spread.Value, exConcrete(ast.CustomType(sym, e.Spread.Span)))
	}

	e.Resolved = ast.CustomType(sym, e.Span)
	return e.Resolved
}

func (r *resolver) resolveBinary(e *ast.Expression, exp expected) ast.Type {
	switch e.BinOp {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		var leftT ast.Type
		if exp.kind == expEmpty {
			leftT = r.resolveExpr(e.Left, exNumeric())
		} else {
			leftT = r.resolveExpr(e.Left, exp)
		}
		rightT := r.resolveExpr(e.Right, exConcrete(leftT))
		if !leftT.Equal(rightT) {
			r.sink.Addf(diag.Error, diag.KindTypeMismatch, e.Span,
				"operand type mismatch: %s vs %s", leftT, rightT)
		}
		e.Resolved = leftT
		return e.Resolved

	case ast.OpEq, ast.OpNotEq:
		leftT := r.resolveExpr(e.Left, exEmpty())
		rightT := r.resolveExpr(e.Right, exConcrete(leftT))
		if !leftT.Equal(rightT) {
			r.sink.Addf(diag.Error, diag.KindTypeMismatch, e.Span,
				"cannot compare %s with %s", leftT, rightT)
		}
		e.Resolved = ast.Primitive(ast.TBool, e.Span)
		return e.Resolved

	case ast.OpLt, ast.OpGt, ast.OpLtEq, ast.OpGtEq:
		leftT := r.resolveExpr(e.Left, exNumeric())
		r.resolveExpr(e.Right, exConcrete(leftT))
		e.Resolved = ast.Primitive(ast.TBool, e.Span)
		return e.Resolved

	case ast.OpAnd, ast.OpOr:
		r.resolveExpr(e.Left, exBool())
		r.resolveExpr(e.Right, exBool())
		e.Resolved = ast.Primitive(ast.TBool, e.Span)
		return e.Resolved

	case ast.OpIn:
		elemT := r.resolveExpr(e.Left, exEmpty())
		containerT := r.resolveExpr(e.Right, exEmpty())
		ok := false
		switch containerT.Kind {
		case ast.TSet, ast.TList:
			ok = containerT.Elem != nil && containerT.Elem.Equal(elemT)
		case ast.TMapping:
			ok = containerT.Key != nil && containerT.Key.Equal(elemT)
		}
		if !ok {
			r.sink.Addf(diag.Error, diag.KindTypeMismatch, e.Span,
				"%s is not a container of %s", containerT, elemT)
		}
		e.Resolved = ast.Primitive(ast.TBool, e.Span)
		return e.Resolved

	default:
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved
	}
}

func (r *resolver) resolveUnary(e *ast.Expression, exp expected) ast.Type {
	switch e.UnOp {
	case ast.OpNot:
		r.resolveExpr(e.Operand, exBool())
		e.Resolved = ast.Primitive(ast.TBool, e.Span)
		return e.Resolved

	case ast.OpNeg:
		if e.Operand.Kind == ast.ENumberLit {
			t := chooseNumericType(exDynamic(ast.Primitive(ast.TSignedInt, span.Span{})))
			e.Kind = ast.ENumberLit
			e.IntValue = -e.Operand.IntValue
			e.Operand = nil
			e.Resolved = t
			return t
		}
		numExp := exp
		if numExp.kind == expEmpty {
			numExp = exNumeric()
		}
		t := r.resolveExpr(e.Operand, numExp)
		if !t.IsNumeric() && t.Kind != ast.TUnresolved {
			r.sink.Addf(diag.Error, diag.KindTypeMismatch, e.Span, "unary - requires a numeric operand, got %s", t)
		}
		e.Resolved = t
		return e.Resolved

	default:
		e.Resolved = ast.Type{Kind: ast.TUnresolved}
		return e.Resolved
	}
}
