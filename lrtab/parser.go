package lrtab

import (
	"fmt"

	"github.com/folidity/folidity/span"
	"github.com/folidity/folidity/token"
)

// ErrorTerminal is the reserved grammar symbol a folidity production can use
// to declare itself recoverable, e.g. `ParamList -> LPAREN error RPAREN`.
// This is the standard yacc/bison error-recovery idiom: the grammar author
// marks exactly the delimited constructs the spec calls out (§4.2:
// "parenthesized param list, braced field list, bracketed list, statement")
// as recoverable by writing an alternative production that shifts
// ErrorTerminal where the normal content would go.
const ErrorTerminal = "error"

// ClassMapper turns a lexed token's class into the grammar terminal symbol
// name used in Production.Body, since lrtab's grammar is defined purely in
// terms of strings and doesn't know about token.Class directly.
type ClassMapper func(token.Token) string

// Hooks bundles the callbacks Parser needs to turn a bare shift/reduce trace
// into actual AST values, keeping lrtab itself free of any dependency on
// the ast package.
type Hooks struct {
	// Shift wraps a terminal token into a stack value.
	Shift func(tok token.Token) any

	// Reduce builds the value for production prod from the values of its
	// Body symbols (len(children) == len(prod.Body)).
	Reduce func(prod Production, children []any) any

	// RecoverValue builds the placeholder value substituted for the
	// ErrorTerminal symbol when recovery fires, given the span of the
	// discarded input.
	RecoverValue func(sp span.Span) any

	// OnError is invoked once per recovery event, for collecting
	// diagnostics; sp is the discarded span.
	OnError func(sp span.Span, msg string)
}

// Parser drives Tables over a token.Stream, invoking Hooks to build AST
// values as it shifts and reduces.
type Parser struct {
	tables  *Tables
	classOf ClassMapper
	hooks   Hooks
}

func NewParser(tables *Tables, classOf ClassMapper, hooks Hooks) *Parser {
	return &Parser{tables: tables, classOf: classOf, hooks: hooks}
}

type stackEntry struct {
	state int
	value any
	span  span.Span
}

// Parse runs the shift-reduce loop to completion, returning the value built
// for the grammar's start symbol. The parser never aborts on a syntax error
// (§4.2): it recovers via the ErrorTerminal productions compiled into the
// grammar (see Build/ErrorTerminal) and continues, so Parse always returns a
// best-effort value once the token stream reaches end of input, even if
// recovery events were recorded along the way.
func (p *Parser) Parse(stream token.Stream) any {
	stack := []stackEntry{{state: 0}}

	cur := stream.Next()
	curSym := p.classOf(cur)

	for {
		state := stack[len(stack)-1].state
		act, ok := p.tables.Action[state][curSym]
		if !ok {
			if curSym == EndOfInput {
				// cannot recover past end of input: give up with whatever's
				// on the stack.
				if len(stack) > 1 {
					return stack[len(stack)-1].value
				}
				return nil
			}
			recovered := p.recover(&stack, &cur, &curSym, stream)
			if !recovered {
				// Recovery exhausted the stack; nothing more can be done.
				if len(stack) > 0 {
					return stack[len(stack)-1].value
				}
				return nil
			}
			continue
		}

		switch act.Kind {
		case ActShift:
			val := p.hooks.Shift(cur)
			stack = append(stack, stackEntry{state: act.State, value: val, span: cur.Span()})
			cur = stream.Next()
			curSym = p.classOf(cur)

		case ActReduce:
			prod := p.tables.Grammar.Productions[act.Prod]
			n := len(prod.Body)
			children := make([]any, n)
			var sp span.Span
			if n > 0 {
				base := len(stack) - n
				for i := 0; i < n; i++ {
					children[i] = stack[base+i].value
					sp = sp.Join(stack[base+i].span)
				}
				stack = stack[:base]
			}
			val := p.hooks.Reduce(prod, children)
			fromState := stack[len(stack)-1].state
			toState, ok := p.tables.Goto[fromState][prod.Head]
			if !ok {
				// Grammar bug: no GOTO for a just-reduced nonterminal. Treat
				// as an internal fatal condition rather than panicking the
				// whole compiler.
				p.hooks.OnError(sp, fmt.Sprintf("internal: no GOTO(%d, %s)", fromState, prod.Head))
				return val
			}
			stack = append(stack, stackEntry{state: toState, value: val, span: sp})

		case ActAccept:
			return stack[len(stack)-1].value
		}
	}
}

// recover implements yacc-style error recovery: pop the stack until a state
// with a valid shift on ErrorTerminal is found, shift it with a synthesized
// placeholder value, then discard real input tokens until one has a valid
// action in the resulting state. Returns false if the stack was exhausted
// without finding a recoverable state (caller should give up).
func (p *Parser) recover(stack *[]stackEntry, cur *token.Token, curSym *string, stream token.Stream) bool {
	discardStart := (*cur).Span()
	discardEnd := discardStart

	for len(*stack) > 0 {
		state := (*stack)[len(*stack)-1].state
		act, ok := p.tables.Action[state][ErrorTerminal]
		if ok && act.Kind == ActShift {
			errVal := p.hooks.RecoverValue(discardStart.Join(discardEnd))
			*stack = append(*stack, stackEntry{state: act.State, value: errVal, span: discardStart.Join(discardEnd)})

			// discard real tokens until the resulting state accepts the
			// lookahead, or we hit end of input.
			for {
				resumeState := (*stack)[len(*stack)-1].state
				if _, ok := p.tables.Action[resumeState][*curSym]; ok {
					break
				}
				if *curSym == EndOfInput {
					break
				}
				discardEnd = (*cur).Span()
				*cur = stream.Next()
				*curSym = p.classOf(*cur)
			}

			p.hooks.OnError(discardStart.Join(discardEnd), "syntax error; recovered")
			return true
		}

		*stack = (*stack)[:len(*stack)-1]
	}

	p.hooks.OnError(discardStart, "syntax error; unrecoverable")
	return false
}
