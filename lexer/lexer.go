// Package lexer turns folidity source text into a token.Stream.
//
// Grounded on internal/ictiobus/lex/lazy.go: one ordered set of regex
// patterns, longest-match-wins with ties broken by definition order (GNU
// lex style), panic-mode recovery on unrecognized input that discards runes
// until a pattern matches again instead of aborting. Unlike the teacher's
// lazyLex (which streams from an io.Reader because tqi's REPL reads from an
// open stdin), folidity lexes a fully-buffered source file eagerly: there is
// no interactive input to stream, and an eager []token.Token slice lets the
// parser's error recovery re-scan/peek freely.
package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/folidity/folidity/span"
	"github.com/folidity/folidity/token"
)

// pattern is one lexical rule: a compiled, anchored regex and the class to
// emit when it wins, or nil class to mean "discard" (whitespace, comments).
type pattern struct {
	name  string
	re    *regexp.Regexp
	class token.Class // nil => discard
}

// order matters only for tie-breaking equal-length matches; longest match
// always wins regardless of order (see selectLongest).
var patterns = []pattern{
	{name: "ws", re: regexp.MustCompile(`^[ \t\r\n]+`), class: nil},
	{name: "comment", re: regexp.MustCompile(`^#[^\n]*`), class: nil},

	{name: "arrow_bij", re: regexp.MustCompile(`^>->>`), class: token.ArrowBij},
	{name: "arrow_surj", re: regexp.MustCompile(`^->>`), class: token.ArrowSurj},
	{name: "arrow_inj", re: regexp.MustCompile(`^>->`), class: token.ArrowInj},
	{name: "arrow_part", re: regexp.MustCompile(`^-/>`), class: token.ArrowPart},
	{name: "pipe_op", re: regexp.MustCompile(`^:>`), class: token.PipeOp},
	{name: "arrow_fwd", re: regexp.MustCompile(`^->`), class: token.ArrowFwd},
	{name: "and_and", re: regexp.MustCompile(`^&&`), class: token.AndAnd},
	{name: "or_or", re: regexp.MustCompile(`^\|\|`), class: token.OrOr},
	{name: "eq_eq", re: regexp.MustCompile(`^==`), class: token.EqEq},
	{name: "not_eq", re: regexp.MustCompile(`^!=`), class: token.NotEq},
	{name: "lt_eq", re: regexp.MustCompile(`^<=`), class: token.LtEq},
	{name: "gt_eq", re: regexp.MustCompile(`^>=`), class: token.GtEq},
	{name: "unit_lit", re: regexp.MustCompile(`^\(\)`), class: token.UnitLit},

	{name: "addr_lit", re: regexp.MustCompile(`^a"(?:[^"\\]|\\.)*"`), class: token.AddrLit},
	{name: "str_lit", re: regexp.MustCompile(`^s"(?:[^"\\]|\\.)*"`), class: token.StrLit},
	{name: "hex_lit", re: regexp.MustCompile(`^h"[0-9a-fA-F_]*"`), class: token.HexLit},
	{name: "char_lit", re: regexp.MustCompile(`^'(?:[^'\\]|\\.)'`), class: token.CharLit},
	{name: "float_lit", re: regexp.MustCompile(`^[0-9][0-9_]*\.[0-9][0-9_]*`), class: token.FloatLit},
	{name: "int_lit", re: regexp.MustCompile(`^[0-9][0-9_]*`), class: token.IntLit},

	{name: "ident", re: regexp.MustCompile(`^@?[A-Za-z_][A-Za-z0-9_]*`), class: token.Ident},

	{name: "lbrace", re: regexp.MustCompile(`^\{`), class: token.LBrace},
	{name: "rbrace", re: regexp.MustCompile(`^\}`), class: token.RBrace},
	{name: "lparen", re: regexp.MustCompile(`^\(`), class: token.LParen},
	{name: "rparen", re: regexp.MustCompile(`^\)`), class: token.RParen},
	{name: "lbracket", re: regexp.MustCompile(`^\[`), class: token.LBracket},
	{name: "rbracket", re: regexp.MustCompile(`^\]`), class: token.RBracket},
	{name: "comma", re: regexp.MustCompile(`^,`), class: token.Comma},
	{name: "colon", re: regexp.MustCompile(`^:`), class: token.Colon},
	{name: "semicolon", re: regexp.MustCompile(`^;`), class: token.Semicolon},
	{name: "dot", re: regexp.MustCompile(`^\.`), class: token.Dot},
	{name: "plus", re: regexp.MustCompile(`^\+`), class: token.Plus},
	{name: "minus", re: regexp.MustCompile(`^-`), class: token.Minus},
	{name: "star", re: regexp.MustCompile(`^\*`), class: token.Star},
	{name: "slash", re: regexp.MustCompile(`^/`), class: token.Slash},
	{name: "percent", re: regexp.MustCompile(`^%`), class: token.Percent},
	{name: "lt", re: regexp.MustCompile(`^<`), class: token.Lt},
	{name: "gt", re: regexp.MustCompile(`^>`), class: token.Gt},
	{name: "assign", re: regexp.MustCompile(`^=`), class: token.Assign},
	{name: "bang", re: regexp.MustCompile(`^!`), class: token.Bang},
	{name: "pipe", re: regexp.MustCompile(`^\|`), class: token.Pipe},
	{name: "at", re: regexp.MustCompile(`^@`), class: token.At},
}

// Lex tokenizes the full UTF-8 source buffer, returning every token plus a
// list of lexical-error diagnostics recorded along the way. An error never
// aborts lexing (§4.1): the offending byte is skipped and scanning resumes,
// exactly as the teacher's panic-mode recovery does, except recovery here
// discards one rune rather than scanning forward to the next match, since
// single-rune classes (punctuation) make "next match" trivially the next
// position in almost all cases and discarding one rune at a time keeps
// error spans tight.
func Lex(file, src string) ([]token.Token, []LexError) {
	var toks []token.Token
	var errs []LexError

	pos := 0
	line, col := 1, 1
	remaining := src

	advance := func(n int) {
		for i := 0; i < n; {
			r, size := utf8.DecodeRuneInString(remaining[i:])
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i += size
		}
		pos += n
		remaining = remaining[n:]
	}

	for len(remaining) > 0 {
		idx, matched := selectLongest(remaining)
		if matched == "" {
			// nothing matched: lexical error, discard one rune and continue
			r, size := utf8.DecodeRuneInString(remaining)
			sp := span.Span{Start: pos, End: pos + size, Line: line, Col: col, File: file}
			errs = append(errs, LexError{Span: sp, Message: "unrecognized character " + strings.TrimSpace(string(r))})
			toks = append(toks, token.New(token.Error, string(r), sp))
			advance(size)
			continue
		}

		start := pos
		startLine, startCol := line, col
		advance(len(matched))

		pat := patterns[idx]
		if pat.class == nil {
			continue // whitespace / comment: discarded per §4.1
		}

		sp := span.Span{Start: start, End: pos, Line: startLine, Col: startCol, File: file}
		lexeme := matched
		class := pat.class
		if class == token.Ident {
			if kw, ok := token.Keywords[lexeme]; ok {
				class = kw
			} else if lexeme == "@init" {
				class = token.KwInit
			}
		}
		toks = append(toks, token.New(class, lexeme, sp))
	}

	eotSp := span.Span{Start: pos, End: pos, Line: line, Col: col, File: file}
	toks = append(toks, token.New(token.EndOfText, "", eotSp))

	return toks, errs
}

// selectLongest finds, among every pattern anchored at the start of s, the
// longest match; ties are broken by picking the earliest-defined pattern,
// matching the teacher's GNU-lex-style selectMatch resolution.
func selectLongest(s string) (int, string) {
	bestIdx := -1
	bestLen := -1
	for i, p := range patterns {
		m := p.re.FindString(s)
		if m == "" {
			continue
		}
		if len(m) > bestLen {
			bestLen = len(m)
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return -1, ""
	}
	return bestIdx, patterns[bestIdx].re.FindString(s)
}

// LexError is a lexical diagnostic raised during Lex, independent of
// diag.Report so the lexer has no dependency on the diag package; callers
// fold these into the shared sink themselves (internal/parser.Parse appends
// them to ast.File.Errors).
type LexError struct {
	Span    span.Span
	Message string
}
