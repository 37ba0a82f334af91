package parser

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/span"
)

// addStmtRules realizes the Statement tagged variant (§3): let, assignment,
// if/else, for, iterator, return, expression, move, skip and block forms.
func addStmtRules(add func(string, []string, func([]any) any)) {
	add("StmtListOpt", []string{"StmtList"}, passThrough)
	add("StmtListOpt", nil, func(c []any) any { return []ast.Statement(nil) })

	add("StmtList", []string{"StmtList", "Stmt"}, func(c []any) any {
		return append(asStmts(c[0]), asStmt(c[1]))
	})
	add("StmtList", []string{"Stmt"}, func(c []any) any { return []ast.Statement{asStmt(c[0])} })

	add("Stmt", []string{"LetStmt"}, passThrough)
	add("Stmt", []string{"AssignStmt"}, passThrough)
	add("Stmt", []string{"IfStmt"}, passThrough)
	add("Stmt", []string{"ForStmt"}, passThrough)
	add("Stmt", []string{"IteratorStmt"}, passThrough)
	add("Stmt", []string{"ReturnStmt"}, passThrough)
	add("Stmt", []string{"ExprStmt"}, passThrough)
	add("Stmt", []string{"MoveStmt"}, passThrough)
	add("Stmt", []string{"SkipStmt"}, passThrough)
	add("Stmt", []string{"BlockStmt"}, passThrough)
	// Recovery: a malformed statement is discarded up to its terminator
	// (§4.2: "resume at the closing delimiter or statement terminator").
	add("Stmt", []string{"error", "semicolon"}, func(c []any) any { return asStmt(c[0]) })

	add("LetStmt", []string{"let", "LetPattern", "AnnotationOpt", "assign", "Expr", "semicolon"}, func(c []any) any {
		pat := c[1].(ast.LetPattern)
		var ann *ast.Type
		if t, ok := c[2].(ast.Type); ok {
			ann = &t
		}
		init := asExpr(c[4])
		sp := asTok(c[0]).Span().Join(asTok(c[5]).Span())
		return ast.NewLet(pat, ann, &init, sp)
	})

	add("LetPattern", []string{"ident"}, func(c []any) any {
		n := ident(asTok(c[0]))
		return ast.LetPattern{Single: true, Name: n, Span: n.Span}
	})
	add("LetPattern", []string{"lbrace", "DestructFields", "rbrace"}, func(c []any) any {
		return ast.LetPattern{Fields: asIdents(c[1]), Span: asTok(c[0]).Span().Join(asTok(c[2]).Span())}
	})

	add("DestructFields", []string{"DestructFields", "comma", "ident"}, func(c []any) any {
		return append(asIdents(c[0]), ident(asTok(c[2])))
	})
	add("DestructFields", []string{"ident"}, func(c []any) any {
		return []span.Identifier{ident(asTok(c[0]))}
	})

	add("AnnotationOpt", []string{"colon", "TypeRef"}, func(c []any) any { return c[1] })
	add("AnnotationOpt", nil, func(c []any) any { return nil })

	add("AssignStmt", []string{"Expr", "assign", "Expr", "semicolon"}, func(c []any) any {
		target, value := asExpr(c[0]), asExpr(c[2])
		return ast.NewAssign(target, value, target.Span.Join(asTok(c[3]).Span()))
	})

	add("IfStmt", []string{"if", "lparen", "Expr", "rparen", "Block", "ElseOpt"}, func(c []any) any {
		cond := asExpr(c[2])
		then := asStmts(c[4])
		els, elseIsIf := []ast.Statement(nil), false
		if e, ok := c[5].(elseClause); ok {
			els, elseIsIf = e.stmts, e.isIf
		}
		sp := asTok(c[0]).Span().Join(cond.Span)
		return ast.NewIf(cond, then, els, elseIsIf, sp)
	})

	add("ElseOpt", []string{"else", "Block"}, func(c []any) any {
		return elseClause{stmts: asStmts(c[1])}
	})
	add("ElseOpt", []string{"else", "IfStmt"}, func(c []any) any {
		return elseClause{stmts: []ast.Statement{asStmt(c[1])}, isIf: true}
	})
	add("ElseOpt", nil, func(c []any) any { return nil })

	add("Block", []string{"lbrace", "StmtListOpt", "rbrace"}, func(c []any) any { return asStmts(c[1]) })

	add("BlockStmt", []string{"Block"}, func(c []any) any {
		stmts := asStmts(c[0])
		return ast.NewBlock(stmts, blockSpan(stmts))
	})

	add("ForStmt", []string{"for", "lparen", "LetStmt", "Expr", "semicolon", "Expr", "rparen", "Block"}, func(c []any) any {
		init := asStmt(c[2])
		cond := asExpr(c[3])
		step := asExpr(c[5])
		body := asStmts(c[7])
		sp := asTok(c[0]).Span().Join(blockSpan(body))
		return ast.NewFor(init, cond, step, body, sp)
	})

	add("IteratorStmt", []string{"for", "lparen", "BinderList", "in", "Expr", "rparen", "Block"}, func(c []any) any {
		binders := asIdents(c[2])
		iterable := asExpr(c[4])
		body := asStmts(c[6])
		return ast.NewIterator(binders, iterable, body, asTok(c[0]).Span().Join(iterable.Span))
	})

	add("BinderList", []string{"BinderList", "comma", "ident"}, func(c []any) any {
		return append(asIdents(c[0]), ident(asTok(c[2])))
	})
	add("BinderList", []string{"ident"}, func(c []any) any {
		return []span.Identifier{ident(asTok(c[0]))}
	})

	add("ReturnStmt", []string{"return", "ExprOpt", "semicolon"}, func(c []any) any {
		var v *ast.Expression
		if e, ok := c[1].(ast.Expression); ok {
			v = &e
		}
		return ast.NewReturn(v, asTok(c[0]).Span().Join(asTok(c[2]).Span()))
	})
	add("ExprOpt", []string{"Expr"}, func(c []any) any { return asExpr(c[0]) })
	add("ExprOpt", nil, func(c []any) any { return nil })

	add("ExprStmt", []string{"Expr", "semicolon"}, func(c []any) any {
		e := asExpr(c[0])
		return ast.NewExprStmt(e, e.Span.Join(asTok(c[1]).Span()))
	})

	add("MoveStmt", []string{"move", "InitExpr", "semicolon"}, func(c []any) any {
		e := asExpr(c[1])
		return ast.NewMove(e, asTok(c[0]).Span().Join(asTok(c[2]).Span()))
	})

	add("SkipStmt", []string{"skip", "semicolon"}, func(c []any) any {
		return ast.NewSkip(asTok(c[0]).Span().Join(asTok(c[1]).Span()))
	})
}

// elseClause carries ElseOpt's payload through to IfStmt's action.
type elseClause struct {
	stmts []ast.Statement
	isIf  bool
}

// blockSpan joins the spans of a statement list, yielding span.Zero for an
// empty block.
func blockSpan(stmts []ast.Statement) span.Span {
	var sp span.Span
	for _, s := range stmts {
		sp = sp.Join(s.Span)
	}
	return sp
}
