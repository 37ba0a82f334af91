package ast

import (
	"fmt"
	"strings"

	"github.com/folidity/folidity/span"
)

// ExprKind discriminates the tagged Expression variant (§3).
type ExprKind int

const (
	EError ExprKind = iota // parse-error placeholder, never semantically valid
	ENumberLit
	EFloatLit
	EBoolLit
	EStringLit
	EHexLit
	EAddressLit
	ECharLit
	EListLit
	EVarRef
	EMemberAccess
	ECall
	EInit // struct/state/model initializer
	EBinary
	EUnary
)

// BinOp enumerates every binary operator in §3/§4.2, including the
// otherwise-special `in` and `:>` (pipe, already desugared to ECall by the
// time the analyzer sees it — see resolvePipe in the sema package — but
// named here since the parser builds it before desugaring).
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNotEq
	OpLt
	OpGt
	OpLtEq
	OpGtEq
	OpAnd
	OpOr
	OpIn
	OpPipe
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLtEq:
		return "<="
	case OpGtEq:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpIn:
		return "in"
	case OpPipe:
		return ":>"
	default:
		return "?"
	}
}

// UnOp enumerates folidity's only unary operator, logical/bitwise negation,
// plus unary minus which the lexer/analyzer otherwise fold directly into
// numeric literals (§4.3.1: "negative literals force signed-int and fold -
// into the literal"); UnOp exists for the non-literal case (`!x`, `-x` where
// x is not itself a literal).
type UnOp int

const (
	OpNot UnOp = iota
	OpNeg
)

func (op UnOp) String() string {
	if op == OpNeg {
		return "-"
	}
	return "!"
}

// SpreadSource is the optional `| .. x` clause on a struct/state initializer
// supplying defaults for fields not given positionally (§4.3.1).
type SpreadSource struct {
	Present bool
	Value   *Expression
	Span    span.Span
}

// Expression is the tagged variant over every expression form in §3. Every
// expression carries a span and, once pass B of the semantic analyzer has
// run, a resolved Type. Every kind, including Init and Call, exposes its
// payload as plain fields read directly; there are no As*() accessors.
type Expression struct {
	Kind     ExprKind
	Span     span.Span
	Resolved Type

	// ENumberLit / EFloatLit
	IntValue   int64 // valid when Resolved.Kind == TSignedInt or TUnsignedInt after folding
	FloatValue float64

	// EBoolLit
	BoolValue bool

	// EStringLit / EHexLit / EAddressLit / ECharLit: raw decoded payload.
	StringValue string
	ByteValue   []byte
	CharValue   rune

	// EListLit
	Elements []Expression

	// EVarRef
	Name span.Identifier
	// Var is populated by the analyzer once the reference resolves.
	Var *VariableSym

	// EMemberAccess
	Target *Expression
	Field  span.Identifier
	// FieldIndex is the resolved field/variant index within the owning
	// struct/state/model/enum declaration, set during pass B.
	FieldIndex int

	// ECall
	Callee span.Identifier
	Args   []Expression
	// Func is the resolved callee's GlobalSymbol, set during pass B.
	Func GlobalSymbol

	// EInit
	InitDecl     span.Identifier
	PositionArgs []Expression
	Spread       SpreadSource
	// InitSym is the resolved struct/state/model symbol, set during pass B.
	InitSym GlobalSymbol

	// EBinary
	BinOp BinOp
	Left  *Expression
	Right *Expression

	// EUnary
	UnOp    UnOp
	Operand *Expression

	// EError
	ErrorMessage string
}

func Error(sp span.Span, msg string) Expression {
	return Expression{Kind: EError, Span: sp, ErrorMessage: msg, Resolved: Type{Kind: TUnresolved}}
}

func NumberLit(sp span.Span, v int64) Expression {
	return Expression{Kind: ENumberLit, Span: sp, IntValue: v}
}

func FloatLit(sp span.Span, v float64) Expression {
	return Expression{Kind: EFloatLit, Span: sp, FloatValue: v, Resolved: Type{Kind: TFloat}}
}

func BoolLit(sp span.Span, v bool) Expression {
	return Expression{Kind: EBoolLit, Span: sp, BoolValue: v, Resolved: Type{Kind: TBool}}
}

func StringLit(sp span.Span, v string) Expression {
	return Expression{Kind: EStringLit, Span: sp, StringValue: v, Resolved: Type{Kind: TString}}
}

func HexLit(sp span.Span, v []byte) Expression {
	return Expression{Kind: EHexLit, Span: sp, ByteValue: v, Resolved: Type{Kind: THex}}
}

func AddressLit(sp span.Span, v string) Expression {
	return Expression{Kind: EAddressLit, Span: sp, StringValue: v, Resolved: Type{Kind: TAddress}}
}

func CharLit(sp span.Span, v rune) Expression {
	return Expression{Kind: ECharLit, Span: sp, CharValue: v, Resolved: Type{Kind: TChar}}
}

func ListLit(elements []Expression, sp span.Span) Expression {
	return Expression{Kind: EListLit, Span: sp, Elements: elements}
}

func VarRef(name span.Identifier) Expression {
	return Expression{Kind: EVarRef, Span: name.Span, Name: name}
}

func MemberAccess(target Expression, field span.Identifier) Expression {
	return Expression{
		Kind:   EMemberAccess,
		Span:   target.Span.Join(field.Span),
		Target: &target,
		Field:  field,
	}
}

func Call(callee span.Identifier, args []Expression, sp span.Span) Expression {
	return Expression{Kind: ECall, Span: sp, Callee: callee, Args: args}
}

func Init(decl span.Identifier, positional []Expression, spread SpreadSource, sp span.Span) Expression {
	return Expression{Kind: EInit, Span: sp, InitDecl: decl, PositionArgs: positional, Spread: spread}
}

func Binary(op BinOp, l, r Expression, sp span.Span) Expression {
	return Expression{Kind: EBinary, Span: sp, BinOp: op, Left: &l, Right: &r}
}

func Unary(op UnOp, operand Expression, sp span.Span) Expression {
	return Expression{Kind: EUnary, Span: sp, UnOp: op, Operand: &operand}
}

// IsBooleanResult reports whether op always yields a boolean expression
// (§4.3.1: "result is boolean" for comparisons, logical ops, and `in`).
func (op BinOp) IsBooleanResult() bool {
	switch op {
	case OpEq, OpNotEq, OpLt, OpGt, OpLtEq, OpGtEq, OpAnd, OpOr, OpIn:
		return true
	default:
		return false
	}
}

// String renders a compact, parenthesized form suitable for diagnostics and
// for the parser round-trip test property (§8): two expressions with the
// same String() output are considered tree-equivalent up to spans.
func (e Expression) String() string {
	switch e.Kind {
	case EError:
		return "<error: " + e.ErrorMessage + ">"
	case ENumberLit:
		return fmt.Sprintf("%d", e.IntValue)
	case EFloatLit:
		return fmt.Sprintf("%g", e.FloatValue)
	case EBoolLit:
		return fmt.Sprintf("%t", e.BoolValue)
	case EStringLit:
		return fmt.Sprintf("s%q", e.StringValue)
	case EHexLit:
		return fmt.Sprintf("h%x", e.ByteValue)
	case EAddressLit:
		return fmt.Sprintf("a%q", e.StringValue)
	case ECharLit:
		return fmt.Sprintf("'%c'", e.CharValue)
	case EListLit:
		parts := make([]string, len(e.Elements))
		for i, el := range e.Elements {
			parts[i] = el.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case EVarRef:
		return e.Name.Name
	case EMemberAccess:
		return fmt.Sprintf("%s.%s", e.Target, e.Field.Name)
	case ECall:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", e.Callee.Name, strings.Join(parts, ", "))
	case EInit:
		parts := make([]string, len(e.PositionArgs))
		for i, a := range e.PositionArgs {
			parts[i] = a.String()
		}
		spread := ""
		if e.Spread.Present {
			spread = fmt.Sprintf(" | .. %s", e.Spread.Value)
		}
		return fmt.Sprintf("%s : { %s%s }", e.InitDecl.Name, strings.Join(parts, ", "), spread)
	case EBinary:
		return fmt.Sprintf("(%s %s %s)", e.Left, e.BinOp, e.Right)
	case EUnary:
		return fmt.Sprintf("(%s%s)", e.UnOp, e.Operand)
	default:
		return "<unknown-expr>"
	}
}

// Equal reports whether two expressions are tree-equivalent up to spans, the
// property used for parser round-trip testing (§8).
func (e Expression) Equal(o Expression) bool {
	return e.String() == o.String()
}
