package ast

import (
	"fmt"
	"strings"

	"github.com/folidity/folidity/span"
)

// Field is a single `name: Type` entry in a struct/model/state field list or
// function parameter list.
type Field struct {
	Name span.Identifier
	Type Type
	Span span.Span

	// Mut is only meaningful for function parameters (§3).
	Mut bool
}

// ConstraintBlock is an `st [ expr, ... ]` or `st expr` clause attached to a
// model, state, or function declaration (§3, glossary "st block").
type ConstraintBlock struct {
	Present     bool
	Constraints []Expression
	Span        span.Span
}

// StateBinder is the `(STATE name)` form appearing in a `from` clause or a
// function's `when` transition clause.
type StateBinder struct {
	State span.Identifier
	Name  span.Identifier // may be zero-value if unbound
	Span  span.Span
}

func (b StateBinder) HasName() bool { return b.Name.Name != "" }

// StructDecl (§3).
type StructDecl struct {
	Name   span.Identifier
	Fields []Field
	Span   span.Span
}

// EnumDecl (§3).
type EnumDecl struct {
	Name     span.Identifier
	Variants []span.Identifier
	Span     span.Span
}

// ModelDecl (§3). Parent is the zero Identifier when there is no `: PARENT`
// clause.
type ModelDecl struct {
	Name   span.Identifier
	Fields []Field
	Parent span.Identifier
	St     ConstraintBlock
	Span   span.Span

	// ParentSym is resolved during pass A.
	ParentSym GlobalSymbol
}

func (m ModelDecl) HasParent() bool { return m.Parent.Name != "" }

// StateBodyKind discriminates a state declaration's body form (§3).
type StateBodyKind int

const (
	StateBodyEmpty StateBodyKind = iota
	StateBodyModel
	StateBodyFields
)

// StateDecl (§3).
type StateDecl struct {
	Name span.Identifier
	Body StateBodyKind

	// StateBodyModel
	ModelName span.Identifier
	ModelSym  GlobalSymbol

	// StateBodyFields
	Fields []Field

	// From clause: optional.
	HasFrom  bool
	FromName span.Identifier
	FromSym  GlobalSymbol
	FromVar  span.Identifier // binder name, may be unbound

	St   ConstraintBlock
	Span span.Span
}

// AccessAttr is one `expr` in a function's `@( expr | expr | ... )` access
// control clause (glossary "Access attribute").
type AccessAttr struct {
	Expr Expression
	Span span.Span
}

// ReturnSpec is a function's declared return type, with an optional
// post-condition binder name (`(ret: T)`), used only inside `st` blocks.
type ReturnSpec struct {
	Type    Type
	Binder  span.Identifier // zero if unbound
	Span    span.Span
}

func (r ReturnSpec) HasBinder() bool { return r.Binder.Name != "" }

// TransitionClause is the `when (from binder) -> (to binder), ...` clause on
// a function declaration (§3, glossary "Transition clause").
type TransitionClause struct {
	Present bool
	From    StateBinder
	To      []StateBinder
	Span    span.Span
}

// FunctionBodyKind discriminates `{ statements }` from `= expr;` bodies.
type FunctionBodyKind int

const (
	FuncBodyBlock FunctionBodyKind = iota
	FuncBodyExpr
)

// FunctionDecl (§3).
type FunctionDecl struct {
	Init       bool // @init
	Access     []AccessAttr
	ViewState  StateBinder
	HasView    bool
	Return     ReturnSpec
	Name       span.Identifier
	Params     []Field
	Transition TransitionClause
	St         ConstraintBlock

	BodyKind FunctionBodyKind
	Body     []Statement   // FuncBodyBlock
	BodyExpr *Expression   // FuncBodyExpr

	Span span.Span
}

func (f FunctionDecl) IsPublic() bool { return len(f.Access) > 0 }
func (f FunctionDecl) IsView() bool   { return f.HasView }
func (f FunctionDecl) IsPure() bool   { return !f.HasView && !f.Transition.Present }

// Declaration is the tagged variant over every top-level declaration kind
// (§3). Exactly one of the payload pointers is non-nil, selected by Kind;
// this mirrors the Expression tagged variant's layout rather than the
// teacher's interface-plus-panicking-accessor style because declarations
// are large, heterogeneous and constructed once by the parser, then only
// ever read — there is no benefit to hiding the fields behind methods here.
type Declaration struct {
	Kind DeclKind
	Span span.Span

	Struct   *StructDecl
	Enum     *EnumDecl
	Model    *ModelDecl
	State    *StateDecl
	Function *FunctionDecl
}

func (d Declaration) Name() span.Identifier {
	switch d.Kind {
	case DeclStruct:
		return d.Struct.Name
	case DeclEnum:
		return d.Enum.Name
	case DeclModel:
		return d.Model.Name
	case DeclState:
		return d.State.Name
	case DeclFunction:
		return d.Function.Name
	default:
		return span.Identifier{}
	}
}

func NewStructDecl(s StructDecl) Declaration {
	return Declaration{Kind: DeclStruct, Span: s.Span, Struct: &s}
}

func NewEnumDecl(e EnumDecl) Declaration {
	return Declaration{Kind: DeclEnum, Span: e.Span, Enum: &e}
}

func NewModelDecl(m ModelDecl) Declaration {
	return Declaration{Kind: DeclModel, Span: m.Span, Model: &m}
}

func NewStateDecl(s StateDecl) Declaration {
	return Declaration{Kind: DeclState, Span: s.Span, State: &s}
}

func NewFunctionDecl(f FunctionDecl) Declaration {
	return Declaration{Kind: DeclFunction, Span: f.Span, Function: &f}
}

func fieldListString(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		mut := ""
		if f.Mut {
			mut = "mut "
		}
		parts[i] = fmt.Sprintf("%s%s: %s", mut, f.Name.Name, f.Type)
	}
	return strings.Join(parts, ", ")
}

func stateBinderString(b StateBinder) string {
	if b.State.Name == "" {
		return "_"
	}
	if b.HasName() {
		return fmt.Sprintf("(%s %s)", b.State.Name, b.Name.Name)
	}
	return fmt.Sprintf("(%s)", b.State.Name)
}

// String renders a canonical, span-independent textual form of d, used by
// Equal for declaration-tree comparison.
func (d Declaration) String() string {
	switch d.Kind {
	case DeclStruct:
		s := d.Struct
		return fmt.Sprintf("struct %s { %s }", s.Name.Name, fieldListString(s.Fields))

	case DeclEnum:
		e := d.Enum
		names := make([]string, len(e.Variants))
		for i, v := range e.Variants {
			names[i] = v.Name
		}
		return fmt.Sprintf("enum %s { %s }", e.Name.Name, strings.Join(names, ", "))

	case DeclModel:
		m := d.Model
		parent := ""
		if m.HasParent() {
			parent = ": " + m.Parent.Name
		}
		st := ""
		if m.St.Present {
			parts := make([]string, len(m.St.Constraints))
			for i, c := range m.St.Constraints {
				parts[i] = c.String()
			}
			st = " st [" + strings.Join(parts, ", ") + "]"
		}
		return fmt.Sprintf("model %s%s { %s }%s", m.Name.Name, parent, fieldListString(m.Fields), st)

	case DeclState:
		st := d.State
		body := ""
		switch st.Body {
		case StateBodyModel:
			body = st.ModelName.Name
		case StateBodyFields:
			body = "{ " + fieldListString(st.Fields) + " }"
		}
		from := ""
		if st.HasFrom {
			from = " from " + st.FromName.Name
		}
		constraints := ""
		if st.St.Present {
			parts := make([]string, len(st.St.Constraints))
			for i, c := range st.St.Constraints {
				parts[i] = c.String()
			}
			constraints = " st [" + strings.Join(parts, ", ") + "]"
		}
		return fmt.Sprintf("state %s %s%s%s", st.Name.Name, body, from, constraints)

	case DeclFunction:
		f := d.Function
		access := make([]string, len(f.Access))
		for i, a := range f.Access {
			access[i] = a.Expr.String()
		}
		accessStr := ""
		if len(access) > 0 {
			accessStr = " @(" + strings.Join(access, " | ") + ")"
		}
		view := ""
		if f.HasView {
			view = " view " + stateBinderString(f.ViewState)
		}
		when := ""
		if f.Transition.Present {
			to := make([]string, len(f.Transition.To))
			for i, t := range f.Transition.To {
				to[i] = stateBinderString(t)
			}
			when = fmt.Sprintf(" when %s -> %s", stateBinderString(f.Transition.From), strings.Join(to, ", "))
		}
		body := ""
		if f.BodyKind == FuncBodyBlock {
			body = blockString(f.Body)
		} else if f.BodyExpr != nil {
			body = fmt.Sprintf("= %s;", f.BodyExpr)
		}
		return fmt.Sprintf("fn %s(%s) -> %s%s%s%s %s", f.Name.Name, fieldListString(f.Params), f.Return.Type, accessStr, view, when, body)

	default:
		return "<unknown-decl>"
	}
}

// Equal reports whether two declarations are tree-equivalent up to spans
// (SPEC_FULL.md §3 NEW: "every declaration and statement additionally
// exposes an Equal(any) bool method"), mirroring Expression.Equal's
// string-comparison approach.
func (d Declaration) Equal(o any) bool {
	other, ok := o.(Declaration)
	if !ok {
		return false
	}
	return d.String() == other.String()
}

// File is the parser's output root: a sequence of declarations plus any
// error-recovery nodes recorded while parsing them (§4.2: "returns a syntax
// tree whose root is a sequence of declarations, plus an error-recovery
// list").
type File struct {
	Declarations []Declaration
	Errors       []ErrorNode
}

// ErrorNode records one error-recovery event: the span of the discarded
// input and a short description, used both for diagnostics and for the
// parser round-trip test property.
type ErrorNode struct {
	Span    span.Span
	Message string
}
