package ir

import "github.com/folidity/folidity/ast"

// ContextTag gates which VariableSym.Usage kinds a table makes visible
// (§3: "Scope: a stack of symbol tables. Each table carries a context tag
// ... that gates which variables are visible").
type ContextTag int

const (
	CtxFunctionSignature ContextTag = iota
	CtxFunctionBody
	// CtxStateBlock is the tag §3 names "state-block" and §4.3 pass A calls
	// "state-binder" in the same breath; both describe the same table, the
	// one holding the `when` clause's incoming/outgoing state binders.
	CtxStateBlock
	CtxReturnBinder
	CtxViewState
	CtxLoop
	// CtxAccessAttrBinder holds a function's `@( expr | expr )` binders.
	// §3's enumerated tag list omits it, but §4.3 pass A's seeding steps
	// name it explicitly as its own context; it is added here rather than
	// folded into CtxFunctionSignature so an access-attribute expression
	// can be told apart from an ordinary parameter reference.
	CtxAccessAttrBinder
)

func (c ContextTag) String() string {
	switch c {
	case CtxFunctionSignature:
		return "function-signature"
	case CtxFunctionBody:
		return "function-body"
	case CtxStateBlock:
		return "state-block"
	case CtxReturnBinder:
		return "return-binder"
	case CtxViewState:
		return "view-state"
	case CtxLoop:
		return "loop"
	case CtxAccessAttrBinder:
		return "access-attr-binder"
	default:
		return "unknown"
	}
}

// Table is one symbol table in a Scope's stack, holding every VariableSym
// bound at this nesting level under the given context tag.
type Table struct {
	Context ContextTag
	Symbols map[string]*ast.VariableSym
}

func newTable(ctx ContextTag) *Table {
	return &Table{Context: ctx, Symbols: map[string]*ast.VariableSym{}}
}

// Scope is the stack of Tables attached to one declaration's GlobalSymbol
// (§3, §9: "attached to the symbol it describes and owned by its
// declaration"). Only DeclFunction symbols carry a Scope in this language:
// struct/enum/model/state declarations have no executable body.
type Scope struct {
	Owner  ast.GlobalSymbol
	tables []*Table
}

// NewScope returns an empty Scope owned by sym.
func NewScope(sym ast.GlobalSymbol) *Scope {
	return &Scope{Owner: sym}
}

// Push opens a new table with context ctx, the innermost visible table
// until the matching Pop.
func (s *Scope) Push(ctx ContextTag) *Table {
	t := newTable(ctx)
	s.tables = append(s.tables, t)
	return t
}

// Pop closes the innermost table. Popping an empty Scope is a no-op; it
// should never happen in correctly nested resolution code, but a stray Pop
// silently doing nothing is safer than a panic mid-diagnostic-collection.
func (s *Scope) Pop() {
	if len(s.tables) == 0 {
		return
	}
	s.tables = s.tables[:len(s.tables)-1]
}

// Declare binds sym in the innermost table. Shadowing an outer binding of
// the same name is allowed; only top-level names must be unique (§3).
func (s *Scope) Declare(sym *ast.VariableSym) {
	if len(s.tables) == 0 {
		s.Push(CtxFunctionBody)
	}
	top := s.tables[len(s.tables)-1]
	top.Symbols[sym.Name] = sym
}

// Lookup walks the table stack top-down, returning the first binding for
// name and the context tag of the table it was found in (§4.3.1: "lookup
// walks tables in the active scope top-down").
func (s *Scope) Lookup(name string) (*ast.VariableSym, ContextTag, bool) {
	for i := len(s.tables) - 1; i >= 0; i-- {
		if sym, ok := s.tables[i].Symbols[name]; ok {
			return sym, s.tables[i].Context, true
		}
	}
	return nil, 0, false
}

// ActiveContexts reports which context tags currently have an open table,
// used to enforce the "only one state-block active at a time" invariant
// (§3) and to check whether the current point of resolution is inside a
// loop (for `skip`, §4.3.2) or inside an `st` block (for return-binder and
// state-binder visibility, §4.3.2).
func (s *Scope) ActiveContexts() map[ContextTag]bool {
	out := map[ContextTag]bool{}
	for _, t := range s.tables {
		out[t.Context] = true
	}
	return out
}

// Depth returns the number of currently open tables.
func (s *Scope) Depth() int { return len(s.tables) }
