package ast

import (
	"fmt"
	"strings"

	"github.com/folidity/folidity/span"
)

// StmtKind discriminates the tagged Statement variant (§3).
type StmtKind int

const (
	SLet StmtKind = iota
	SAssign
	SIf
	SFor
	SIterator
	SReturn
	SExpr
	SMove
	SSkip
	SBlock
	SError
)

// LetPattern is either a single bound name or a destructuring pattern
// `{x, y, ...}`. Per the Open Question decision recorded in SPEC_FULL.md §9,
// destructuring binds by name against the initializer's resolved struct-like
// type, not positionally.
type LetPattern struct {
	Single bool
	Name   span.Identifier   // Single
	Fields []span.Identifier // !Single
	Span   span.Span
}

// Statement is the tagged variant over every statement kind (§3). As with
// Declaration, payload lives directly on the struct rather than behind
// panicking accessors.
type Statement struct {
	Kind StmtKind
	Span span.Span

	// SLet
	Pattern    LetPattern
	Annotation *Type // nil if omitted
	Init       *Expression

	// SAssign
	Target *Expression // must resolve to a mutable EVarRef or EMemberAccess
	Value  *Expression

	// SIf
	Cond       *Expression
	Then       []Statement
	Else       []Statement
	ElseIsIf   bool

	// SFor
	ForInit *Statement // always an SLet
	ForCond *Expression
	ForStep *Expression
	Body    []Statement

	// SIterator
	Binders  []span.Identifier
	Iterable *Expression

	// SReturn
	ReturnValue *Expression // nil for unit return

	// SExpr
	Expr *Expression

	// SMove
	MoveInit *Expression // always an EInit

	// SError
	ErrorMessage string
}

func NewLet(pattern LetPattern, annotation *Type, init *Expression, sp span.Span) Statement {
	return Statement{Kind: SLet, Span: sp, Pattern: pattern, Annotation: annotation, Init: init}
}

func NewAssign(target, value Expression, sp span.Span) Statement {
	return Statement{Kind: SAssign, Span: sp, Target: &target, Value: &value}
}

func NewIf(cond Expression, then, els []Statement, elseIsIf bool, sp span.Span) Statement {
	return Statement{Kind: SIf, Span: sp, Cond: &cond, Then: then, Else: els, ElseIsIf: elseIsIf}
}

func NewFor(init Statement, cond, step Expression, body []Statement, sp span.Span) Statement {
	return Statement{Kind: SFor, Span: sp, ForInit: &init, ForCond: &cond, ForStep: &step, Body: body}
}

func NewIterator(binders []span.Identifier, iterable Expression, body []Statement, sp span.Span) Statement {
	return Statement{Kind: SIterator, Span: sp, Binders: binders, Iterable: &iterable, Body: body}
}

func NewReturn(value *Expression, sp span.Span) Statement {
	return Statement{Kind: SReturn, Span: sp, ReturnValue: value}
}

func NewExprStmt(e Expression, sp span.Span) Statement {
	return Statement{Kind: SExpr, Span: sp, Expr: &e}
}

func NewMove(initExpr Expression, sp span.Span) Statement {
	return Statement{Kind: SMove, Span: sp, MoveInit: &initExpr}
}

func NewSkip(sp span.Span) Statement {
	return Statement{Kind: SSkip, Span: sp}
}

func NewBlock(body []Statement, sp span.Span) Statement {
	return Statement{Kind: SBlock, Span: sp, Body: body}
}

func NewErrorStmt(sp span.Span, msg string) Statement {
	return Statement{Kind: SError, Span: sp, ErrorMessage: msg}
}

func blockString(stmts []Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (s Statement) String() string {
	switch s.Kind {
	case SLet:
		name := s.Pattern.Name.Name
		if !s.Pattern.Single {
			idents := make([]string, len(s.Pattern.Fields))
			for i, f := range s.Pattern.Fields {
				idents[i] = f.Name
			}
			name = "{" + strings.Join(idents, ", ") + "}"
		}
		return fmt.Sprintf("let %s = %s;", name, s.Init)
	case SAssign:
		return fmt.Sprintf("%s = %s;", s.Target, s.Value)
	case SIf:
		out := fmt.Sprintf("if %s %s", s.Cond, blockString(s.Then))
		if len(s.Else) > 0 {
			if s.ElseIsIf {
				out += " else " + s.Else[0].String()
			} else {
				out += " else " + blockString(s.Else)
			}
		}
		return out
	case SFor:
		return fmt.Sprintf("for (%s %s; %s) %s", s.ForInit, s.ForCond, s.ForStep, blockString(s.Body))
	case SIterator:
		idents := make([]string, len(s.Binders))
		for i, b := range s.Binders {
			idents[i] = b.Name
		}
		return fmt.Sprintf("for (%s in %s) %s", strings.Join(idents, ", "), s.Iterable, blockString(s.Body))
	case SReturn:
		if s.ReturnValue == nil {
			return "return;"
		}
		return fmt.Sprintf("return %s;", s.ReturnValue)
	case SExpr:
		return fmt.Sprintf("%s;", s.Expr)
	case SMove:
		return fmt.Sprintf("move %s;", s.MoveInit)
	case SSkip:
		return "skip;"
	case SBlock:
		return blockString(s.Body)
	case SError:
		return "<error: " + s.ErrorMessage + ">"
	default:
		return "<unknown-stmt>"
	}
}

// Equal reports whether two statements are tree-equivalent up to spans, the
// same property Expression.Equal offers for parser round-trip testing (§8,
// SPEC_FULL.md §3: "every declaration and statement additionally exposes an
// Equal(any) bool method").
func (s Statement) Equal(o any) bool {
	other, ok := o.(Statement)
	if !ok {
		return false
	}
	return s.String() == other.String()
}
