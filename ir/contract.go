// Package ir holds the intermediate representation the semantic analyzer
// builds and the verifier/emitter only read afterward (§3, §9:
// "cross-pass symbol identity must be preserved without shared ownership").
// Declarations live in append-only per-kind collections and are referred to
// everywhere else by (kind, index) GlobalSymbol handles rather than
// pointers, generalizing the teacher's habit of keeping world state in
// indexed collections addressed by label (tunaq's `game.World` keeps
// rooms/items/NPCs in maps/slices, never sharing pointers across systems)
// to folidity's five declaration kinds.
package ir

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/span"
)

// ContractDefinition is the semantic analyzer's output IR (§3). It is built
// incrementally during pass A and pass B and is immutable once semantic
// analysis completes; the verifier and emitter only ever read it.
type ContractDefinition struct {
	Structs   []ast.StructDecl
	Enums     []ast.EnumDecl
	Models    []ast.ModelDecl
	States    []ast.StateDecl
	Functions []ast.FunctionDecl

	// Scopes holds, for each GlobalSymbol with scope-bearing behavior (only
	// DeclFunction in this language), the stack of context-tagged tables
	// seeded and resolved during pass A/B.
	Scopes map[ast.GlobalSymbol]*Scope

	names map[string]ast.GlobalSymbol

	nextLocalID int

	Diagnostics *diag.Sink
}

// NewContractDefinition returns an empty IR ready for pass A to populate.
func NewContractDefinition(sink *diag.Sink) *ContractDefinition {
	return &ContractDefinition{
		Scopes:      map[ast.GlobalSymbol]*Scope{},
		names:       map[string]ast.GlobalSymbol{},
		Diagnostics: sink,
	}
}

// register records name against sym in the top-level name map (§3
// invariant: "names declared at top level are unique across all
// declaration kinds"), reporting whether name was already taken. The first
// registrant always keeps the mapping; a later duplicate's own symbol is
// still valid and usable for pass A field resolution, it just never
// becomes what other declarations resolve the name to.
func (c *ContractDefinition) register(name span.Identifier, sym ast.GlobalSymbol) (duplicate bool) {
	if _, ok := c.names[name.Name]; ok {
		return true
	}
	c.names[name.Name] = sym
	return false
}

// AddStruct appends decl to the IR and registers its name, returning the
// assigned symbol and whether the name collided with a prior declaration.
func (c *ContractDefinition) AddStruct(decl ast.StructDecl) (ast.GlobalSymbol, bool) {
	sym := ast.GlobalSymbol{Kind: ast.DeclStruct, Index: len(c.Structs), Span: decl.Name.Span}
	c.Structs = append(c.Structs, decl)
	return sym, c.register(decl.Name, sym)
}

// AddEnum appends decl to the IR and registers its name.
func (c *ContractDefinition) AddEnum(decl ast.EnumDecl) (ast.GlobalSymbol, bool) {
	sym := ast.GlobalSymbol{Kind: ast.DeclEnum, Index: len(c.Enums), Span: decl.Name.Span}
	c.Enums = append(c.Enums, decl)
	return sym, c.register(decl.Name, sym)
}

// AddModel appends decl to the IR and registers its name.
func (c *ContractDefinition) AddModel(decl ast.ModelDecl) (ast.GlobalSymbol, bool) {
	sym := ast.GlobalSymbol{Kind: ast.DeclModel, Index: len(c.Models), Span: decl.Name.Span}
	c.Models = append(c.Models, decl)
	return sym, c.register(decl.Name, sym)
}

// AddState appends decl to the IR and registers its name.
func (c *ContractDefinition) AddState(decl ast.StateDecl) (ast.GlobalSymbol, bool) {
	sym := ast.GlobalSymbol{Kind: ast.DeclState, Index: len(c.States), Span: decl.Name.Span}
	c.States = append(c.States, decl)
	return sym, c.register(decl.Name, sym)
}

// AddFunction appends decl to the IR and registers its name.
func (c *ContractDefinition) AddFunction(decl ast.FunctionDecl) (ast.GlobalSymbol, bool) {
	sym := ast.GlobalSymbol{Kind: ast.DeclFunction, Index: len(c.Functions), Span: decl.Name.Span}
	c.Functions = append(c.Functions, decl)
	return sym, c.register(decl.Name, sym)
}

// SetStruct overwrites the declaration at sym.Index, used by pass A after
// field-type resolution fills in details the parser could not.
func (c *ContractDefinition) SetStruct(sym ast.GlobalSymbol, decl ast.StructDecl) { c.Structs[sym.Index] = decl }

// SetModel overwrites the declaration at sym.Index.
func (c *ContractDefinition) SetModel(sym ast.GlobalSymbol, decl ast.ModelDecl) { c.Models[sym.Index] = decl }

// SetState overwrites the declaration at sym.Index.
func (c *ContractDefinition) SetState(sym ast.GlobalSymbol, decl ast.StateDecl) { c.States[sym.Index] = decl }

// SetFunction overwrites the declaration at sym.Index.
func (c *ContractDefinition) SetFunction(sym ast.GlobalSymbol, decl ast.FunctionDecl) {
	c.Functions[sym.Index] = decl
}

// Lookup resolves a top-level name to the GlobalSymbol registered for it.
func (c *ContractDefinition) Lookup(name string) (ast.GlobalSymbol, bool) {
	sym, ok := c.names[name]
	return sym, ok
}

// FreshLocalID returns a monotonically increasing id for a new VariableSym,
// unique within this ContractDefinition (§3: "a monotonic counter for fresh
// local variable ids").
func (c *ContractDefinition) FreshLocalID() int {
	id := c.nextLocalID
	c.nextLocalID++
	return id
}

// Struct dereferences sym, which must be a DeclStruct symbol.
func (c *ContractDefinition) Struct(sym ast.GlobalSymbol) *ast.StructDecl { return &c.Structs[sym.Index] }

// Enum dereferences sym, which must be a DeclEnum symbol.
func (c *ContractDefinition) Enum(sym ast.GlobalSymbol) *ast.EnumDecl { return &c.Enums[sym.Index] }

// Model dereferences sym, which must be a DeclModel symbol.
func (c *ContractDefinition) Model(sym ast.GlobalSymbol) *ast.ModelDecl { return &c.Models[sym.Index] }

// State dereferences sym, which must be a DeclState symbol.
func (c *ContractDefinition) State(sym ast.GlobalSymbol) *ast.StateDecl { return &c.States[sym.Index] }

// Function dereferences sym, which must be a DeclFunction symbol.
func (c *ContractDefinition) Function(sym ast.GlobalSymbol) *ast.FunctionDecl {
	return &c.Functions[sym.Index]
}

// DeclName returns the source name of whatever sym refers to, used for
// diagnostics and for emitter subroutine labels.
func (c *ContractDefinition) DeclName(sym ast.GlobalSymbol) string {
	switch sym.Kind {
	case ast.DeclStruct:
		return c.Struct(sym).Name.Name
	case ast.DeclEnum:
		return c.Enum(sym).Name.Name
	case ast.DeclModel:
		return c.Model(sym).Name.Name
	case ast.DeclState:
		return c.State(sym).Name.Name
	case ast.DeclFunction:
		return c.Function(sym).Name.Name
	default:
		return "<unknown>"
	}
}

// AllSymbols enumerates every registered top-level symbol in declaration
// order within each kind, structs first. Used by acyclicity checks and by
// tests asserting the "names form a function" universal property (§8).
func (c *ContractDefinition) AllSymbols() []ast.GlobalSymbol {
	out := make([]ast.GlobalSymbol, 0, len(c.Structs)+len(c.Enums)+len(c.Models)+len(c.States)+len(c.Functions))
	for i := range c.Structs {
		out = append(out, ast.GlobalSymbol{Kind: ast.DeclStruct, Index: i, Span: c.Structs[i].Span})
	}
	for i := range c.Enums {
		out = append(out, ast.GlobalSymbol{Kind: ast.DeclEnum, Index: i, Span: c.Enums[i].Span})
	}
	for i := range c.Models {
		out = append(out, ast.GlobalSymbol{Kind: ast.DeclModel, Index: i, Span: c.Models[i].Span})
	}
	for i := range c.States {
		out = append(out, ast.GlobalSymbol{Kind: ast.DeclState, Index: i, Span: c.States[i].Span})
	}
	for i := range c.Functions {
		out = append(out, ast.GlobalSymbol{Kind: ast.DeclFunction, Index: i, Span: c.Functions[i].Span})
	}
	return out
}
