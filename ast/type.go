// Package ast is the syntax tree folidity's parser produces and its semantic
// analyzer enriches in place (types are resolved onto Expression nodes
// during pass B rather than rebuilt into a separate tree). Every node kind
// follows the teacher's tagged-variant shape from tunascript/syntax/ast.go:
// a Kind discriminator plus payload fields read directly, so a single
// recursive switch over Kind is always the right way to walk the tree (§9
// design note: "no virtual dispatch is required").
package ast

import (
	"fmt"

	"github.com/folidity/folidity/span"
)

// TypeKind discriminates the tagged Type variant (§3).
type TypeKind int

const (
	TSignedInt TypeKind = iota
	TUnsignedInt
	TFloat
	TChar
	TString
	THex
	TAddress
	TUnit
	TBool
	TList
	TSet
	TMapping
	TCustom
	// TUnresolved marks a type the analyzer could not assign. It is not the
	// zero value (TSignedInt is), so it is always set explicitly.
	TUnresolved
)

func (k TypeKind) String() string {
	switch k {
	case TSignedInt:
		return "int"
	case TUnsignedInt:
		return "uint"
	case TFloat:
		return "float"
	case TChar:
		return "char"
	case TString:
		return "string"
	case THex:
		return "hex"
	case TAddress:
		return "address"
	case TUnit:
		return "()"
	case TBool:
		return "bool"
	case TList:
		return "list"
	case TSet:
		return "set"
	case TMapping:
		return "mapping"
	case TCustom:
		return "custom"
	default:
		return "unresolved"
	}
}

// RelationFlag describes one constraint on a mapping's key/value relation.
type RelationFlag int

const (
	Injective RelationFlag = 1 << iota
	Partial
	Surjective
)

// Relation is the R in mapping<K, R, V>: a set of flags describing how keys
// relate to values. The four arrow spellings in §6 (->, -/>, >->, >->>)
// correspond to {none}, {Partial}, {Injective}, {Injective|Surjective}.
type Relation struct {
	Flags RelationFlag
	Span  span.Span
}

func (r Relation) Has(f RelationFlag) bool { return r.Flags&f != 0 }

func (r Relation) String() string {
	switch {
	case r.Has(Injective) && r.Has(Surjective):
		return ">->>"
	case r.Has(Injective):
		return ">->"
	case r.Has(Partial):
		return "-/>"
	default:
		return "->"
	}
}

// DeclKind discriminates the tagged Declaration variant (§3) and doubles as
// the Kind tag on GlobalSymbol.
type DeclKind int

const (
	DeclNone DeclKind = iota
	DeclStruct
	DeclEnum
	DeclModel
	DeclState
	DeclFunction
)

func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclModel:
		return "model"
	case DeclState:
		return "state"
	case DeclFunction:
		return "fn"
	default:
		return "none"
	}
}

// GlobalSymbol is a stable (kind, index) handle into one of a
// ContractDefinition's declaration collections, never a pointer (§9:
// "Represent declarations as an append-only indexed collection per kind and
// refer to them by (kind, index) handles; all later passes dereference
// through those indices").
type GlobalSymbol struct {
	Kind  DeclKind
	Index int
	Span  span.Span
}

func (g GlobalSymbol) IsZero() bool { return g.Kind == DeclNone }

func (g GlobalSymbol) String() string {
	return fmt.Sprintf("%s#%d", g.Kind, g.Index)
}

// Type is the tagged variant over folidity's primitive and composite types
// (§3). Only the fields relevant to Kind are meaningful for a given value;
// Type is a small value copied freely through expression resolution, so
// fields are exported directly rather than hidden behind panicking
// accessors the way Expression's payload is.
type Type struct {
	Kind TypeKind

	// TList, TSet: element type.
	Elem *Type

	// TMapping: key, relation, and value types.
	Key   *Type
	Rel   Relation
	Value *Type

	// TCustom: the declaration this type names. Name is what the parser can
	// fill in; Custom is filled in by the semantic analyzer once the name is
	// resolved against the contract's symbol table (§4.3 pass A).
	Name   span.Identifier
	Custom GlobalSymbol

	Span span.Span
}

func Primitive(k TypeKind, sp span.Span) Type {
	return Type{Kind: k, Span: sp}
}

func ListOf(elem Type, sp span.Span) Type {
	e := elem
	return Type{Kind: TList, Elem: &e, Span: sp}
}

func SetOf(elem Type, sp span.Span) Type {
	e := elem
	return Type{Kind: TSet, Elem: &e, Span: sp}
}

func MappingOf(key Type, rel Relation, value Type, sp span.Span) Type {
	k, v := key, value
	return Type{Kind: TMapping, Key: &k, Rel: rel, Value: &v, Span: sp}
}

func CustomType(sym GlobalSymbol, sp span.Span) Type {
	return Type{Kind: TCustom, Custom: sym, Span: sp}
}

// UnresolvedCustomType is what the parser produces for a bare identifier
// used in type position; Custom stays zero until the semantic analyzer
// resolves name against the contract's symbol table.
func UnresolvedCustomType(name span.Identifier) Type {
	return Type{Kind: TCustom, Name: name, Span: name.Span}
}

// IsNumeric reports whether t is a signed int, an unsigned int, or a float.
func (t Type) IsNumeric() bool {
	return t.Kind == TSignedInt || t.Kind == TUnsignedInt || t.Kind == TFloat
}

// Equal reports structural equality, recursing into composite payloads.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TList, TSet:
		if t.Elem == nil || o.Elem == nil {
			return t.Elem == o.Elem
		}
		return t.Elem.Equal(*o.Elem)
	case TMapping:
		if t.Key == nil || o.Key == nil || t.Value == nil || o.Value == nil {
			return false
		}
		return t.Key.Equal(*o.Key) && t.Rel.Flags == o.Rel.Flags && t.Value.Equal(*o.Value)
	case TCustom:
		return t.Custom.Kind == o.Custom.Kind && t.Custom.Index == o.Custom.Index
	default:
		return true
	}
}

func (t Type) String() string {
	switch t.Kind {
	case TList:
		if t.Elem == nil {
			return "list<?>"
		}
		return fmt.Sprintf("list<%s>", *t.Elem)
	case TSet:
		if t.Elem == nil {
			return "set<?>"
		}
		return fmt.Sprintf("set<%s>", *t.Elem)
	case TMapping:
		if t.Key == nil || t.Value == nil {
			return "mapping<?>"
		}
		return fmt.Sprintf("mapping<%s %s %s>", *t.Key, t.Rel, *t.Value)
	case TCustom:
		return t.Custom.String()
	default:
		return t.Kind.String()
	}
}
