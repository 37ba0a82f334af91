package token

import (
	"fmt"

	"github.com/folidity/folidity/span"
)

// Token is a lexeme read from source text together with the class it was
// lexed as and the span it occupies, matching ictiobus's Token contract.
type Token interface {
	Class() Class
	Lexeme() string
	Span() span.Span
	String() string
}

// Stream is a (possibly lazily produced) sequence of Tokens, matching
// ictiobus's TokenStream contract. The lexer returns one eagerly (folidity
// source files are small enough that eager tokenization costs nothing,
// unlike tunaq's stdin-driven REPL use case which motivated laziness there)
// but the parser only ever depends on this interface.
type Stream interface {
	Next() Token
	Peek() Token
	HasNext() bool
}

type simpleToken struct {
	class Class
	text  string
	sp    span.Span
}

func New(class Class, text string, sp span.Span) Token {
	return simpleToken{class: class, text: text, sp: sp}
}

func (t simpleToken) Class() Class      { return t.class }
func (t simpleToken) Lexeme() string    { return t.text }
func (t simpleToken) Span() span.Span   { return t.sp }
func (t simpleToken) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.class.ID(), t.text, t.sp)
}

// sliceStream is an eager, random-access Stream over a pre-lexed slice.
type sliceStream struct {
	toks []Token
	pos  int
	eot  Token
}

// NewSliceStream wraps a pre-lexed token slice as a Stream. eot is returned
// once pos runs past the end, matching the lazy lexer's end-of-text
// behavior so the parser never needs to special-case eager vs lazy sources.
func NewSliceStream(toks []Token, eot Token) Stream {
	return &sliceStream{toks: toks, eot: eot}
}

func (s *sliceStream) Next() Token {
	if s.pos >= len(s.toks) {
		return s.eot
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func (s *sliceStream) Peek() Token {
	if s.pos >= len(s.toks) {
		return s.eot
	}
	return s.toks[s.pos]
}

func (s *sliceStream) HasNext() bool {
	return s.pos < len(s.toks)
}
