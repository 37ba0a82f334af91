package parser

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/lexer"
	"github.com/folidity/folidity/lrtab"
	"github.com/folidity/folidity/span"
	"github.com/folidity/folidity/token"
)

// classOf maps a lexed token to the grammar terminal symbol its class
// carries. Folidity reuses the lexer's own Error pseudo-class as the LR
// recovery terminal (both are named "error"): a lexical error and a syntax
// error are handled by exactly the same panic-mode recovery path once a
// token reaches the parser.
func classOf(tok token.Token) string {
	return tok.Class().ID()
}

// Parse lexes and parses a full source file, returning a syntax tree whose
// root is the declaration sequence plus whatever error-recovery nodes fired
// along the way (§4.2). It never aborts: a best-effort File is always
// returned, for callers to feed into the semantic analyzer, which runs both
// of its passes over whatever declarations survived.
func Parse(file, src string) ast.File {
	toks, lexErrs := lexer.Lex(file, src)
	eot := toks[len(toks)-1]
	stream := token.NewSliceStream(toks, eot)

	var errs []ast.ErrorNode
	hooks := lrtab.Hooks{
		Shift: func(tok token.Token) any {
			// A lexical error token shifted on an error-terminal action
			// becomes the same placeholder recovery produces.
			if tok.Class().ID() == lrtab.ErrorTerminal {
				return recovered{span: tok.Span()}
			}
			return tok
		},
		Reduce: func(prod lrtab.Production, children []any) any {
			return reduceFns[prod.Action](children)
		},
		RecoverValue: func(sp span.Span) any {
			return recovered{span: sp}
		},
		OnError: func(sp span.Span, msg string) {
			errs = append(errs, ast.ErrorNode{Span: sp, Message: msg})
		},
	}

	p := lrtab.NewParser(Tables, classOf, hooks)
	result := p.Parse(stream)

	decls, _ := result.([]ast.Declaration)

	for _, le := range lexErrs {
		errs = append(errs, ast.ErrorNode{Span: le.Span, Message: le.Message})
	}

	return ast.File{Declarations: decls, Errors: errs}
}
