package parser

import (
	"strconv"
	"strings"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/span"
	"github.com/folidity/folidity/token"
)

// recovered is the placeholder value lrtab.Hooks.RecoverValue produces for an
// `error`-terminal symbol; every as* accessor below substitutes the
// appropriate zero-ish ast node when it encounters one instead of panicking,
// so a single recovery event doesn't cascade into a crash while building the
// rest of the tree.
type recovered struct{ span span.Span }

func asTok(v any) token.Token { return v.(token.Token) }

func ident(tok token.Token) span.Identifier {
	return span.Identifier{Span: tok.Span(), Name: tok.Lexeme()}
}

func identOf(name string, sp span.Span) span.Identifier {
	return span.Identifier{Span: sp, Name: name}
}

func asExpr(v any) ast.Expression {
	if r, ok := v.(recovered); ok {
		return ast.Error(r.span, "syntax error")
	}
	return v.(ast.Expression)
}

func asExprs(v any) []ast.Expression {
	if v == nil {
		return nil
	}
	return v.([]ast.Expression)
}

func asStmt(v any) ast.Statement {
	if r, ok := v.(recovered); ok {
		return ast.NewErrorStmt(r.span, "syntax error")
	}
	return v.(ast.Statement)
}

func asStmts(v any) []ast.Statement {
	if v == nil {
		return nil
	}
	return v.([]ast.Statement)
}

func asDecl(v any) ast.Declaration { return v.(ast.Declaration) }

func asType(v any) ast.Type {
	if r, ok := v.(recovered); ok {
		return ast.Type{Kind: ast.TUnresolved, Span: r.span}
	}
	return v.(ast.Type)
}

func asField(v any) ast.Field {
	if r, ok := v.(recovered); ok {
		return ast.Field{Span: r.span, Type: ast.Type{Kind: ast.TUnresolved, Span: r.span}}
	}
	return v.(ast.Field)
}

func asFields(v any) []ast.Field {
	if v == nil {
		return nil
	}
	return v.([]ast.Field)
}

func asIdents(v any) []span.Identifier {
	if v == nil {
		return nil
	}
	return v.([]span.Identifier)
}

func asBinder(v any) ast.StateBinder {
	if r, ok := v.(recovered); ok {
		return ast.StateBinder{Span: r.span}
	}
	return v.(ast.StateBinder)
}

func asBinders(v any) []ast.StateBinder {
	if v == nil {
		return nil
	}
	return v.([]ast.StateBinder)
}

func asAccess(v any) []ast.AccessAttr {
	if v == nil {
		return nil
	}
	return v.([]ast.AccessAttr)
}

func asConstraints(v any) ast.ConstraintBlock {
	return v.(ast.ConstraintBlock)
}

// parseIntLiteral strips folidity's `_` digit-group separators (§4.1) before
// delegating to strconv.
func parseIntLiteral(lexeme string) int64 {
	clean := strings.ReplaceAll(lexeme, "_", "")
	n, _ := strconv.ParseInt(clean, 10, 64)
	return n
}

func parseFloatLiteral(lexeme string) float64 {
	clean := strings.ReplaceAll(lexeme, "_", "")
	f, _ := strconv.ParseFloat(clean, 64)
	return f
}

// decodeQuoted strips the leading type-sigil (s/h/a) and surrounding quotes
// a string/hex/address literal's lexeme carries, e.g. `s"hi"` -> `hi`.
func decodeQuoted(lexeme string) string {
	i := strings.IndexByte(lexeme, '"')
	j := strings.LastIndexByte(lexeme, '"')
	if i < 0 || j <= i {
		return lexeme
	}
	return lexeme[i+1 : j]
}

func decodeChar(lexeme string) rune {
	inner := strings.Trim(lexeme, "'")
	for _, r := range inner {
		return r
	}
	return 0
}
