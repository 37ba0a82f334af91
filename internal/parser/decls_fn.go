package parser

import "github.com/folidity/folidity/ast"

// addFnRules realizes FunctionDeclaration (§3): the initializer flag, access
// attributes, view-state clause, return spec, parameter list, transition
// clause, `st` block and body, in that declared order.
func addFnRules(add func(string, []string, func([]any) any)) {
	add("FnDecl", []string{
		"InitOpt", "AccessOpt", "ViewOpt", "fn", "ident", "lparen", "ParamListOpt", "rparen",
		"ArrowReturnOpt", "TransitionOpt", "StOpt", "FnBody",
	}, func(c []any) any {
		f := ast.FunctionDecl{
			Init:       c[0] != nil,
			Access:     asAccess(c[1]),
			Name:       ident(asTok(c[4])),
			Params:     asFields(c[6]),
			St:         asConstraints(c[10]),
			Span:       asTok(c[3]).Span(),
		}
		if vb, ok := c[2].(ast.StateBinder); ok {
			f.HasView = true
			f.ViewState = vb
		}
		if rs, ok := c[8].(ast.ReturnSpec); ok {
			f.Return = rs
		}
		if tc, ok := c[9].(ast.TransitionClause); ok {
			f.Transition = tc
		}
		body := c[11].(ast.FunctionDecl)
		f.BodyKind = body.BodyKind
		f.Body = body.Body
		f.BodyExpr = body.BodyExpr
		f.Span = f.Span.Join(f.Name.Span)
		return ast.NewFunctionDecl(f)
	})

	add("InitOpt", []string{"@init"}, func(c []any) any { return c[0] })
	add("InitOpt", nil, func(c []any) any { return nil })

	add("AccessOpt", []string{"at", "lparen", "AccessExprList", "rparen"}, func(c []any) any {
		return c[2].([]ast.AccessAttr)
	})
	add("AccessOpt", nil, func(c []any) any { return nil })

	add("AccessExprList", []string{"AccessExprList", "pipe", "Expr"}, func(c []any) any {
		e := asExpr(c[2])
		return append(c[0].([]ast.AccessAttr), ast.AccessAttr{Expr: e, Span: e.Span})
	})
	add("AccessExprList", []string{"Expr"}, func(c []any) any {
		e := asExpr(c[0])
		return []ast.AccessAttr{{Expr: e, Span: e.Span}}
	})

	add("ViewOpt", []string{"view", "lparen", "StateBinder", "rparen"}, func(c []any) any {
		return asBinder(c[2])
	})
	add("ViewOpt", nil, func(c []any) any { return nil })

	add("StateBinder", []string{"ident"}, func(c []any) any {
		n := ident(asTok(c[0]))
		return ast.StateBinder{State: n, Span: n.Span}
	})
	add("StateBinder", []string{"ident", "ident"}, func(c []any) any {
		s, n := ident(asTok(c[0])), ident(asTok(c[1]))
		return ast.StateBinder{State: s, Name: n, Span: s.Span.Join(n.Span)}
	})

	add("TransitionOpt", []string{"when", "lparen", "StateBinder", "rparen", "arrow_fwd", "StateBinderList"}, func(c []any) any {
		from := asBinder(c[2])
		to := asBinders(c[5])
		sp := asTok(c[0]).Span()
		if len(to) > 0 {
			sp = sp.Join(to[len(to)-1].Span)
		}
		return ast.TransitionClause{Present: true, From: from, To: to, Span: sp}
	})
	add("TransitionOpt", nil, func(c []any) any { return nil })

	add("StateBinderList", []string{"StateBinderList", "comma", "lparen", "StateBinder", "rparen"}, func(c []any) any {
		return append(asBinders(c[0]), asBinder(c[3]))
	})
	add("StateBinderList", []string{"lparen", "StateBinder", "rparen"}, func(c []any) any {
		return []ast.StateBinder{asBinder(c[1])}
	})

	add("ArrowReturnOpt", []string{"arrow_fwd", "ReturnSpec"}, func(c []any) any { return c[1] })
	add("ArrowReturnOpt", nil, func(c []any) any { return nil })

	add("ReturnSpec", []string{"lparen", "ident", "colon", "TypeRef", "rparen"}, func(c []any) any {
		b := ident(asTok(c[1]))
		ty := asType(c[3])
		return ast.ReturnSpec{Type: ty, Binder: b, Span: asTok(c[0]).Span().Join(asTok(c[4]).Span())}
	})
	add("ReturnSpec", []string{"TypeRef"}, func(c []any) any {
		ty := asType(c[0])
		return ast.ReturnSpec{Type: ty, Span: ty.Span}
	})

	add("ParamListOpt", []string{"ParamList"}, passThrough)
	add("ParamListOpt", nil, func(c []any) any { return []ast.Field(nil) })

	add("ParamList", []string{"ParamList", "comma", "Param"}, func(c []any) any {
		return append(asFields(c[0]), asField(c[2]))
	})
	add("ParamList", []string{"Param"}, func(c []any) any { return []ast.Field{asField(c[0])} })
	add("ParamList", []string{"error"}, func(c []any) any { return []ast.Field{asField(c[0])} })

	add("Param", []string{"ident", "colon", "TypeRef"}, func(c []any) any {
		n := ident(asTok(c[0]))
		ty := asType(c[2])
		return ast.Field{Name: n, Type: ty, Span: n.Span.Join(ty.Span)}
	})
	add("Param", []string{"mut", "ident", "colon", "TypeRef"}, func(c []any) any {
		n := ident(asTok(c[1]))
		ty := asType(c[3])
		return ast.Field{Name: n, Type: ty, Mut: true, Span: asTok(c[0]).Span().Join(ty.Span)}
	})

	add("FnBody", []string{"lbrace", "StmtListOpt", "rbrace"}, func(c []any) any {
		return ast.FunctionDecl{BodyKind: ast.FuncBodyBlock, Body: asStmts(c[1])}
	})
	add("FnBody", []string{"assign", "Expr", "semicolon"}, func(c []any) any {
		e := asExpr(c[1])
		return ast.FunctionDecl{BodyKind: ast.FuncBodyExpr, BodyExpr: &e}
	})
}
