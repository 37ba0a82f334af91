package parser

import "github.com/folidity/folidity/ast"

// addTypeRules realizes the Type tagged variant (§3): every primitive kind,
// the three composite kinds, and a bare identifier standing for a
// not-yet-resolved custom (struct/enum/model/state) type.
func addTypeRules(add func(string, []string, func([]any) any)) {
	prim := func(kw string, kind ast.TypeKind) {
		add("TypeRef", []string{kw}, func(c []any) any {
			return ast.Primitive(kind, asTok(c[0]).Span())
		})
	}
	prim("int", ast.TSignedInt)
	prim("uint", ast.TUnsignedInt)
	prim("float", ast.TFloat)
	prim("bool", ast.TBool)
	prim("char", ast.TChar)
	prim("string", ast.TString)
	prim("hex", ast.THex)
	prim("address", ast.TAddress)
	prim("unit_lit", ast.TUnit)

	add("TypeRef", []string{"set", "lt", "TypeRef", "gt"}, func(c []any) any {
		elem := asType(c[2])
		return ast.SetOf(elem, asTok(c[0]).Span().Join(asTok(c[3]).Span()))
	})
	add("TypeRef", []string{"list", "lt", "TypeRef", "gt"}, func(c []any) any {
		elem := asType(c[2])
		return ast.ListOf(elem, asTok(c[0]).Span().Join(asTok(c[3]).Span()))
	})
	add("TypeRef", []string{"mapping", "lt", "TypeRef", "RelArrow", "TypeRef", "gt"}, func(c []any) any {
		key, val := asType(c[2]), asType(c[4])
		rel := c[3].(ast.Relation)
		return ast.MappingOf(key, rel, val, asTok(c[0]).Span().Join(asTok(c[5]).Span()))
	})
	add("TypeRef", []string{"ident"}, func(c []any) any {
		return ast.UnresolvedCustomType(ident(asTok(c[0])))
	})

	relArrow := func(sym string, flags ast.RelationFlag) {
		add("RelArrow", []string{sym}, func(c []any) any {
			return ast.Relation{Flags: flags, Span: asTok(c[0]).Span()}
		})
	}
	relArrow("arrow_fwd", 0)
	relArrow("arrow_part", ast.Partial)
	relArrow("arrow_inj", ast.Injective)
	relArrow("arrow_surj", ast.Surjective)
	relArrow("arrow_bij", ast.Injective|ast.Surjective)
}
