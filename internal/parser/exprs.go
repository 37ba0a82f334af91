package parser

import "github.com/folidity/folidity/ast"

// addExprRules realizes the Expression tagged variant (§3) and the
// precedence-layered grammar §4.2 documents: `||` lowest, then `&&`, then
// equality/relational/`in`, then `:>`, then `+ -`, then `* / %`, then unary
// `!`/`-`, then member access `.`, then primary. Each tier is its own
// left-recursive nonterminal, the standard way to encode left-associative
// binary precedence in an LR grammar.
func addExprRules(add func(string, []string, func([]any) any)) {
	add("Expr", []string{"OrExpr"}, passThrough)

	add("OrExpr", []string{"OrExpr", "or_or", "AndExpr"}, binaryAction(ast.OpOr))
	add("OrExpr", []string{"AndExpr"}, passThrough)

	add("AndExpr", []string{"AndExpr", "and_and", "EqRelExpr"}, binaryAction(ast.OpAnd))
	add("AndExpr", []string{"EqRelExpr"}, passThrough)

	add("EqRelExpr", []string{"EqRelExpr", "eq_eq", "PipeExpr"}, binaryAction(ast.OpEq))
	add("EqRelExpr", []string{"EqRelExpr", "not_eq", "PipeExpr"}, binaryAction(ast.OpNotEq))
	add("EqRelExpr", []string{"EqRelExpr", "lt", "PipeExpr"}, binaryAction(ast.OpLt))
	add("EqRelExpr", []string{"EqRelExpr", "gt", "PipeExpr"}, binaryAction(ast.OpGt))
	add("EqRelExpr", []string{"EqRelExpr", "lt_eq", "PipeExpr"}, binaryAction(ast.OpLtEq))
	add("EqRelExpr", []string{"EqRelExpr", "gt_eq", "PipeExpr"}, binaryAction(ast.OpGtEq))
	add("EqRelExpr", []string{"EqRelExpr", "in", "PipeExpr"}, binaryAction(ast.OpIn))
	add("EqRelExpr", []string{"PipeExpr"}, passThrough)

	// `a :> f(b, c)` desugars to `f(a, b, c)` (§4.2): the right side must
	// already be a call; its argument list gets the left side prepended.
	add("PipeExpr", []string{"PipeExpr", "pipe_op", "AddExpr"}, func(c []any) any {
		lhs, rhs := asExpr(c[0]), asExpr(c[2])
		if rhs.Kind != ast.ECall {
			return ast.Error(lhs.Span.Join(rhs.Span), "pipe target must be a call")
		}
		call := ast.Call(rhs.Callee, append([]ast.Expression{lhs}, rhs.Args...), lhs.Span.Join(rhs.Span))
		return call
	})
	add("PipeExpr", []string{"AddExpr"}, passThrough)

	add("AddExpr", []string{"AddExpr", "plus", "MulExpr"}, binaryAction(ast.OpAdd))
	add("AddExpr", []string{"AddExpr", "minus", "MulExpr"}, binaryAction(ast.OpSub))
	add("AddExpr", []string{"MulExpr"}, passThrough)

	add("MulExpr", []string{"MulExpr", "star", "UnaryExpr"}, binaryAction(ast.OpMul))
	add("MulExpr", []string{"MulExpr", "slash", "UnaryExpr"}, binaryAction(ast.OpDiv))
	add("MulExpr", []string{"MulExpr", "percent", "UnaryExpr"}, binaryAction(ast.OpMod))
	add("MulExpr", []string{"UnaryExpr"}, passThrough)

	add("UnaryExpr", []string{"bang", "UnaryExpr"}, func(c []any) any {
		o := asExpr(c[1])
		return ast.Unary(ast.OpNot, o, asTok(c[0]).Span().Join(o.Span))
	})
	add("UnaryExpr", []string{"minus", "UnaryExpr"}, func(c []any) any {
		o := asExpr(c[1])
		return ast.Unary(ast.OpNeg, o, asTok(c[0]).Span().Join(o.Span))
	})
	add("UnaryExpr", []string{"PostfixExpr"}, passThrough)

	add("PostfixExpr", []string{"PostfixExpr", "dot", "ident"}, func(c []any) any {
		target := asExpr(c[0])
		return ast.MemberAccess(target, ident(asTok(c[2])))
	})
	add("PostfixExpr", []string{"PrimaryExpr"}, passThrough)

	add("PrimaryExpr", []string{"ident"}, func(c []any) any { return ast.VarRef(ident(asTok(c[0]))) })
	add("PrimaryExpr", []string{"int_lit"}, func(c []any) any {
		t := asTok(c[0])
		return ast.NumberLit(t.Span(), parseIntLiteral(t.Lexeme()))
	})
	add("PrimaryExpr", []string{"float_lit"}, func(c []any) any {
		t := asTok(c[0])
		return ast.FloatLit(t.Span(), parseFloatLiteral(t.Lexeme()))
	})
	add("PrimaryExpr", []string{"true"}, func(c []any) any { return ast.BoolLit(asTok(c[0]).Span(), true) })
	add("PrimaryExpr", []string{"false"}, func(c []any) any { return ast.BoolLit(asTok(c[0]).Span(), false) })
	add("PrimaryExpr", []string{"str_lit"}, func(c []any) any {
		t := asTok(c[0])
		return ast.StringLit(t.Span(), decodeQuoted(t.Lexeme()))
	})
	add("PrimaryExpr", []string{"hex_lit"}, func(c []any) any {
		t := asTok(c[0])
		return ast.HexLit(t.Span(), []byte(decodeQuoted(t.Lexeme())))
	})
	add("PrimaryExpr", []string{"addr_lit"}, func(c []any) any {
		t := asTok(c[0])
		return ast.AddressLit(t.Span(), decodeQuoted(t.Lexeme()))
	})
	add("PrimaryExpr", []string{"char_lit"}, func(c []any) any {
		t := asTok(c[0])
		return ast.CharLit(t.Span(), decodeChar(t.Lexeme()))
	})
	add("PrimaryExpr", []string{"lparen", "Expr", "rparen"}, func(c []any) any { return asExpr(c[1]) })
	add("PrimaryExpr", []string{"lbracket", "ExprListOpt", "rbracket"}, func(c []any) any {
		return ast.ListLit(asExprs(c[1]), asTok(c[0]).Span().Join(asTok(c[2]).Span()))
	})
	// Recovery: a malformed list literal (§4.2, "bracketed list").
	add("PrimaryExpr", []string{"lbracket", "error", "rbracket"}, func(c []any) any {
		return ast.Error(asTok(c[0]).Span().Join(asTok(c[2]).Span()), "malformed list literal")
	})
	add("PrimaryExpr", []string{"InitExpr"}, passThrough)
	add("PrimaryExpr", []string{"CallExpr"}, passThrough)
	add("PrimaryExpr", []string{"RangeExpr"}, passThrough)

	add("CallExpr", []string{"ident", "lparen", "ArgListOpt", "rparen"}, func(c []any) any {
		callee := ident(asTok(c[0]))
		return ast.Call(callee, asExprs(c[2]), callee.Span.Join(asTok(c[3]).Span()))
	})

	add("ArgListOpt", []string{"ArgList"}, passThrough)
	add("ArgListOpt", nil, func(c []any) any { return []ast.Expression(nil) })

	add("ArgList", []string{"ArgList", "comma", "Expr"}, func(c []any) any {
		return append(asExprs(c[0]), asExpr(c[2]))
	})
	add("ArgList", []string{"Expr"}, func(c []any) any { return []ast.Expression{asExpr(c[0])} })

	add("InitExpr", []string{"ident", "colon", "lbrace", "ArgListOpt", "SpreadOpt", "rbrace"}, func(c []any) any {
		decl := ident(asTok(c[0]))
		spread, _ := c[4].(ast.SpreadSource)
		return ast.Init(decl, asExprs(c[3]), spread, decl.Span.Join(asTok(c[5]).Span()))
	})

	add("SpreadOpt", []string{"pipe", "dot", "dot", "Expr"}, func(c []any) any {
		e := asExpr(c[3])
		return ast.SpreadSource{Present: true, Value: &e, Span: asTok(c[0]).Span().Join(e.Span)}
	})
	add("SpreadOpt", nil, func(c []any) any { return nil })

	// RangeExpr surfaces §4.1's `range` keyword and the otherwise-unused `to`
	// keyword as an iterator-source builtin, `range(lo to hi)`, built as an
	// ordinary call to keep the IR's call-handling machinery uniform.
	add("RangeExpr", []string{"range", "lparen", "Expr", "to", "Expr", "rparen"}, func(c []any) any {
		lo, hi := asExpr(c[2]), asExpr(c[4])
		callee := identOf("range", asTok(c[0]).Span())
		return ast.Call(callee, []ast.Expression{lo, hi}, asTok(c[0]).Span().Join(asTok(c[5]).Span()))
	})
}

func binaryAction(op ast.BinOp) func([]any) any {
	return func(c []any) any {
		l, r := asExpr(c[0]), asExpr(c[2])
		return ast.Binary(op, l, r, l.Span.Join(r.Span))
	}
}
