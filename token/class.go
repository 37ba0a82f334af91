// Package token defines the lexical vocabulary of folidity: token classes,
// the Token and Stream contracts the parser consumes, and the concrete
// simpleToken/simpleClass implementations of them. The shape is taken
// directly from the teacher's ictiobus/types package (TokenClass/Token/
// TokenStream as small interfaces so the lexer and parser never need to
// agree on a concrete struct), generalized from tunascript's token set to
// folidity's.
package token

import "strings"

// Class identifies the lexical category of a Token. IDs must be unique
// across all terminals of the grammar; Human is used only in diagnostics.
type Class interface {
	ID() string
	Human() string
	Equal(o any) bool
}

type simpleClass string

func (c simpleClass) ID() string     { return strings.ToLower(string(c)) }
func (c simpleClass) Human() string  { return string(c) }
func (c simpleClass) Equal(o any) bool {
	other, ok := o.(Class)
	if !ok {
		return false
	}
	return other.ID() == c.ID()
}

// MakeClass returns a Class whose ID is the lower-cased form of s and whose
// Human-readable name is s unmodified.
func MakeClass(s string) Class {
	return simpleClass(s)
}

// Fixed classes every lexer instance needs regardless of grammar: the
// end-of-text sentinel returned once the input is exhausted, and the error
// pseudo-class used to carry a lexical-error message as a token instead of
// aborting (§4.1: "on unrecognized input emits a lexical error token...and
// continues").
const (
	Undefined = simpleClass("undefined")
	EndOfText = simpleClass("$")
	Error     = simpleClass("error")
)

// Terminal classes for the folidity grammar (§4.1, §6).
var (
	Ident    = MakeClass("ident")
	IntLit   = MakeClass("int_lit")
	FloatLit = MakeClass("float_lit")
	CharLit  = MakeClass("char_lit")
	StrLit   = MakeClass("str_lit")
	HexLit   = MakeClass("hex_lit")
	AddrLit  = MakeClass("addr_lit")

	// keywords
	KwStruct = MakeClass("struct")
	KwEnum   = MakeClass("enum")
	KwModel  = MakeClass("model")
	KwState  = MakeClass("state")
	KwFn     = MakeClass("fn")
	KwFrom   = MakeClass("from")
	KwReturn = MakeClass("return")
	KwFor    = MakeClass("for")
	KwTo     = MakeClass("to")
	KwIf     = MakeClass("if")
	KwElse   = MakeClass("else")
	KwSt     = MakeClass("st")
	KwWhen   = MakeClass("when")
	KwView   = MakeClass("view")
	KwInit   = MakeClass("@init")
	KwLet    = MakeClass("let")
	KwMut    = MakeClass("mut")
	KwSkip   = MakeClass("skip")
	KwMove   = MakeClass("move")
	KwIn     = MakeClass("in")
	KwRange  = MakeClass("range")
	KwTrue   = MakeClass("true")
	KwFalse  = MakeClass("false")
	KwPub    = MakeClass("pub")

	// primitive type keywords
	KwInt     = MakeClass("int")
	KwUint    = MakeClass("uint")
	KwFloat   = MakeClass("float")
	KwBool    = MakeClass("bool")
	KwChar    = MakeClass("char")
	KwString  = MakeClass("string")
	KwHex     = MakeClass("hex")
	KwAddress = MakeClass("address")
	KwUnit    = MakeClass("unit") // spelled "()" in source, see lexer

	// composite type keywords
	KwSet     = MakeClass("set")
	KwList    = MakeClass("list")
	KwMapping = MakeClass("mapping")

	// punctuation / operators, longest-match-first order matters in lexer.go
	PipeOp     = MakeClass("pipe_op")      // :>
	ArrowFwd   = MakeClass("arrow_fwd")    // ->
	ArrowPart  = MakeClass("arrow_part")   // -/>
	ArrowInj   = MakeClass("arrow_inj")    // >->
	ArrowSurj  = MakeClass("arrow_surj")   // ->>
	ArrowBij   = MakeClass("arrow_bij")    // >->>
	AndAnd     = MakeClass("and_and")      // &&
	OrOr       = MakeClass("or_or")        // ||
	EqEq       = MakeClass("eq_eq")        // ==
	NotEq      = MakeClass("not_eq")       // !=
	LtEq       = MakeClass("lt_eq")        // <=
	GtEq       = MakeClass("gt_eq")        // >=
	UnitLit    = MakeClass("unit_lit")     // ()
	LBrace     = MakeClass("lbrace")
	RBrace     = MakeClass("rbrace")
	LParen     = MakeClass("lparen")
	RParen     = MakeClass("rparen")
	LBracket   = MakeClass("lbracket")
	RBracket   = MakeClass("rbracket")
	Comma      = MakeClass("comma")
	Colon      = MakeClass("colon")
	Semicolon  = MakeClass("semicolon")
	Dot        = MakeClass("dot")
	Plus       = MakeClass("plus")
	Minus      = MakeClass("minus")
	Star       = MakeClass("star")
	Slash      = MakeClass("slash")
	Percent    = MakeClass("percent")
	Lt         = MakeClass("lt")
	Gt         = MakeClass("gt")
	Assign     = MakeClass("assign")
	Bang       = MakeClass("bang")
	Pipe       = MakeClass("pipe")
	At         = MakeClass("at")
)

// Keywords maps the exact source spelling of a reserved word to its class.
// Built once; used by the lexer to distinguish keywords from identifiers
// after a word-shaped lexeme is matched.
var Keywords = map[string]Class{
	"struct": KwStruct, "enum": KwEnum, "model": KwModel, "state": KwState,
	"fn": KwFn, "from": KwFrom, "return": KwReturn, "for": KwFor, "to": KwTo,
	"if": KwIf, "else": KwElse, "st": KwSt, "when": KwWhen, "view": KwView,
	"let": KwLet, "mut": KwMut, "skip": KwSkip, "move": KwMove, "in": KwIn,
	"range": KwRange, "true": KwTrue, "false": KwFalse, "pub": KwPub,
	"int": KwInt, "uint": KwUint, "float": KwFloat, "bool": KwBool,
	"char": KwChar, "string": KwString, "hex": KwHex, "address": KwAddress,
	"set": KwSet, "list": KwList, "mapping": KwMapping,
}
