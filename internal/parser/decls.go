package parser

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/span"
)

// addStructEnumRules realizes StructDeclaration and EnumDeclaration from §3.
func addStructEnumRules(add func(string, []string, func([]any) any)) {
	// StructDecl -> struct ident lbrace FieldListOpt rbrace
	add("StructDecl", []string{"struct", "ident", "lbrace", "FieldListOpt", "rbrace"}, func(c []any) any {
		name := ident(asTok(c[1]))
		sp := asTok(c[0]).Span().Join(asTok(c[4]).Span())
		return ast.NewStructDecl(ast.StructDecl{Name: name, Fields: asFields(c[3]), Span: sp})
	})

	add("FieldListOpt", []string{"FieldList"}, passThrough)
	add("FieldListOpt", nil, func(c []any) any { return []ast.Field(nil) })

	add("FieldList", []string{"FieldList", "comma", "Field"}, func(c []any) any {
		return append(asFields(c[0]), asField(c[2]))
	})
	add("FieldList", []string{"Field"}, func(c []any) any { return []ast.Field{asField(c[0])} })
	// Recovery: a malformed field list inside `{ ... }` becomes a single
	// error field spanning the discarded tokens (§4.2 recovery strategy,
	// "braced field list").
	add("FieldList", []string{"error"}, func(c []any) any { return []ast.Field{asField(c[0])} })

	add("Field", []string{"ident", "colon", "TypeRef"}, func(c []any) any {
		name := ident(asTok(c[0]))
		ty := asType(c[2])
		return ast.Field{Name: name, Type: ty, Span: name.Span.Join(ty.Span)}
	})
	add("Field", []string{"mut", "ident", "colon", "TypeRef"}, func(c []any) any {
		name := ident(asTok(c[1]))
		ty := asType(c[3])
		return ast.Field{Name: name, Type: ty, Mut: true, Span: asTok(c[0]).Span().Join(ty.Span)}
	})

	// EnumDecl -> enum ident lbrace VariantListOpt rbrace
	add("EnumDecl", []string{"enum", "ident", "lbrace", "VariantListOpt", "rbrace"}, func(c []any) any {
		name := ident(asTok(c[1]))
		sp := asTok(c[0]).Span().Join(asTok(c[4]).Span())
		return ast.NewEnumDecl(ast.EnumDecl{Name: name, Variants: asIdents(c[3]), Span: sp})
	})

	add("VariantListOpt", []string{"VariantList"}, passThrough)
	add("VariantListOpt", nil, func(c []any) any { return []span.Identifier(nil) })

	add("VariantList", []string{"VariantList", "comma", "ident"}, func(c []any) any {
		return append(asIdents(c[0]), ident(asTok(c[2])))
	})
	add("VariantList", []string{"ident"}, func(c []any) any {
		return []span.Identifier{ident(asTok(c[0]))}
	})
}

// addModelStateRules realizes ModelDeclaration and StateDeclaration (§3),
// including the `st` constraint block shared by both.
func addModelStateRules(add func(string, []string, func([]any) any)) {
	// ModelDecl -> model ident ParentOpt lbrace FieldListOpt rbrace StOpt
	add("ModelDecl", []string{"model", "ident", "ParentOpt", "lbrace", "FieldListOpt", "rbrace", "StOpt"}, func(c []any) any {
		name := ident(asTok(c[1]))
		var parent span.Identifier
		if p, ok := c[2].(span.Identifier); ok {
			parent = p
		}
		st := asConstraints(c[6])
		sp := asTok(c[0]).Span().Join(asTok(c[5]).Span())
		return ast.NewModelDecl(ast.ModelDecl{
			Name: name, Fields: asFields(c[4]), Parent: parent, St: st, Span: sp,
		})
	})
	add("ParentOpt", []string{"colon", "ident"}, func(c []any) any { return ident(asTok(c[1])) })
	add("ParentOpt", nil, func(c []any) any { return nil })

	add("StOpt", []string{"st", "StBody"}, func(c []any) any {
		cons := c[1].([]ast.Expression)
		sp := asTok(c[0]).Span()
		if len(cons) > 0 {
			sp = sp.Join(cons[len(cons)-1].Span)
		}
		return ast.ConstraintBlock{Present: true, Constraints: cons, Span: sp}
	})
	add("StOpt", nil, func(c []any) any { return ast.ConstraintBlock{} })

	add("StBody", []string{"lbracket", "ExprListOpt", "rbracket"}, func(c []any) any { return asExprs(c[1]) })
	add("StBody", []string{"lbracket", "error", "rbracket"}, func(c []any) any { return []ast.Expression{asExpr(c[1])} })
	add("StBody", []string{"Expr"}, func(c []any) any { return []ast.Expression{asExpr(c[0])} })

	add("ExprListOpt", []string{"ExprList"}, passThrough)
	add("ExprListOpt", nil, func(c []any) any { return []ast.Expression(nil) })

	add("ExprList", []string{"ExprList", "comma", "Expr"}, func(c []any) any {
		return append(asExprs(c[0]), asExpr(c[2]))
	})
	add("ExprList", []string{"Expr"}, func(c []any) any { return []ast.Expression{asExpr(c[0])} })

	// StateDecl -> state ident StateBody FromOpt StOpt
	add("StateDecl", []string{"state", "ident", "StateBody", "FromOpt", "StOpt"}, func(c []any) any {
		name := ident(asTok(c[1]))
		body := c[2].(ast.StateDecl)
		body.Name = name
		if from, ok := c[3].(ast.StateDecl); ok {
			body.HasFrom = true
			body.FromName = from.FromName
			body.FromVar = from.FromVar
		}
		body.St = asConstraints(c[4])
		body.Span = asTok(c[0]).Span().Join(name.Span)
		return ast.NewStateDecl(body)
	})

	add("StateBody", []string{"unit_lit"}, func(c []any) any {
		return ast.StateDecl{Body: ast.StateBodyEmpty, Span: asTok(c[0]).Span()}
	})
	add("StateBody", []string{"lparen", "ident", "rparen"}, func(c []any) any {
		m := ident(asTok(c[1]))
		return ast.StateDecl{Body: ast.StateBodyModel, ModelName: m, Span: asTok(c[0]).Span().Join(asTok(c[2]).Span())}
	})
	add("StateBody", []string{"lparen", "FieldList", "rparen"}, func(c []any) any {
		return ast.StateDecl{Body: ast.StateBodyFields, Fields: asFields(c[1]), Span: asTok(c[0]).Span().Join(asTok(c[2]).Span())}
	})

	add("FromOpt", []string{"from", "ident"}, func(c []any) any {
		return ast.StateDecl{FromName: ident(asTok(c[1]))}
	})
	add("FromOpt", []string{"from", "ident", "lparen", "ident", "rparen"}, func(c []any) any {
		return ast.StateDecl{FromName: ident(asTok(c[1])), FromVar: ident(asTok(c[3]))}
	})
	add("FromOpt", nil, func(c []any) any { return nil })
}
