package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/token"
)

func Test_Lex_classSequence(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []token.Class
	}{
		{name: "empty", input: "", expect: []token.Class{token.EndOfText}},
		{name: "int literal", input: "42", expect: []token.Class{token.IntLit, token.EndOfText}},
		{name: "int literal with separators", input: "1_000_000", expect: []token.Class{token.IntLit, token.EndOfText}},
		{name: "float literal", input: "1.5", expect: []token.Class{token.FloatLit, token.EndOfText}},
		{name: "char literal", input: "'c'", expect: []token.Class{token.CharLit, token.EndOfText}},
		{name: "string literal", input: `s"hello"`, expect: []token.Class{token.StrLit, token.EndOfText}},
		{name: "hex literal", input: `h"AB12"`, expect: []token.Class{token.HexLit, token.EndOfText}},
		{name: "address literal", input: `a"xyz"`, expect: []token.Class{token.AddrLit, token.EndOfText}},
		{name: "identifier", input: "myVar", expect: []token.Class{token.Ident, token.EndOfText}},
		{name: "struct keyword wins over identifier", input: "struct", expect: []token.Class{token.KwStruct, token.EndOfText}},
		{name: "init attribute", input: "@init", expect: []token.Class{token.KwInit, token.EndOfText}},
		{name: "comment discarded", input: "# a comment\nlet", expect: []token.Class{token.KwLet, token.EndOfText}},
		{name: "bijective arrow longest match", input: ">->>", expect: []token.Class{token.ArrowBij, token.EndOfText}},
		{name: "injective arrow not confused with bijective", input: ">->", expect: []token.Class{token.ArrowInj, token.EndOfText}},
		{name: "partial arrow", input: "-/>", expect: []token.Class{token.ArrowPart, token.EndOfText}},
		{name: "pipe op vs colon then gt", input: ":>", expect: []token.Class{token.PipeOp, token.EndOfText}},
		{name: "struct field decl", input: "struct Foo { x: int }", expect: []token.Class{
			token.KwStruct, token.Ident, token.LBrace, token.Ident, token.Colon, token.KwInt, token.RBrace, token.EndOfText,
		}},
		{name: "function signature", input: "fn add(a: int, b: int) -> int { return a + b; }", expect: []token.Class{
			token.KwFn, token.Ident, token.LParen, token.Ident, token.Colon, token.KwInt, token.Comma,
			token.Ident, token.Colon, token.KwInt, token.RParen, token.ArrowFwd, token.KwInt, token.LBrace,
			token.KwReturn, token.Ident, token.Plus, token.Ident, token.Semicolon, token.RBrace, token.EndOfText,
		}},
		{name: "unit literal", input: "()", expect: []token.Class{token.UnitLit, token.EndOfText}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			toks, errs := Lex("test.fol", tc.input)
			assert.Empty(errs)

			var classIDs, expectIDs []string
			for _, tok := range toks {
				classIDs = append(classIDs, tok.Class().ID())
			}
			for _, c := range tc.expect {
				expectIDs = append(expectIDs, c.ID())
			}
			assert.Equal(strings.Join(expectIDs, " "), strings.Join(classIDs, " "))
		})
	}
}

func Test_Lex_unknownCharacterRecovers(t *testing.T) {
	assert := assert.New(t)

	toks, errs := Lex("test.fol", "let x = 1 ` 2;")
	assert.NotEmpty(errs)

	// panic-mode recovery must still find the remaining tokens past the
	// unrecognized rune, rather than aborting the whole scan.
	var classIDs []string
	for _, tok := range toks {
		classIDs = append(classIDs, tok.Class().ID())
	}
	assert.Contains(classIDs, token.Semicolon.ID())
	assert.Contains(classIDs, token.EndOfText.ID())
}

func Test_Lex_spansAreByteAccurate(t *testing.T) {
	assert := assert.New(t)

	toks, errs := Lex("test.fol", "let x = 42;")
	assert.Empty(errs)

	for _, tok := range toks {
		if tok.Class() == token.IntLit {
			sp := tok.Span()
			assert.Equal("42", "let x = 42;"[sp.Start:sp.End])
		}
	}
}
