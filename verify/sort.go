package verify

import (
	"fmt"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/ir"
)

// sharedSorts are the uninterpreted sorts §4.4.1 says are "shared globally"
// rather than allocated per declaration: every string, hex blob, address,
// and char value in the whole contract lives in one of these four sorts.
var sharedSorts = []string{"StringSort", "HexSort", "AddressSort", "CharSort"}

// declSortName returns the uninterpreted sort name standing in for one
// struct/model/state declaration (§4.4.1: "structs/states/models →
// uninterpreted sorts per declaration").
func declSortName(c *ir.ContractDefinition, sym ast.GlobalSymbol) string {
	return fmt.Sprintf("%s_%s", declKindLabel(sym.Kind), c.DeclName(sym))
}

func declKindLabel(k ast.DeclKind) string {
	switch k {
	case ast.DeclStruct:
		return "Struct"
	case ast.DeclEnum:
		return "Enum"
	case ast.DeclModel:
		return "Model"
	case ast.DeclState:
		return "State"
	default:
		return "Decl"
	}
}

// sortFor derives a type's SMT-LIB2 sort expression per §4.4.1's rules.
func sortFor(c *ir.ContractDefinition, t ast.Type) string {
	switch t.Kind {
	case ast.TSignedInt, ast.TUnsignedInt:
		return "Int"
	case ast.TFloat:
		return "Real"
	case ast.TBool:
		return "Bool"
	case ast.TString:
		return "StringSort"
	case ast.THex:
		return "HexSort"
	case ast.TAddress:
		return "AddressSort"
	case ast.TChar:
		return "CharSort"
	case ast.TList, ast.TSet:
		if t.Elem == nil {
			return "(Array Int Bool)"
		}
		return fmt.Sprintf("(Array %s Bool)", sortFor(c, *t.Elem))
	case ast.TMapping:
		key, val := "Int", "Int"
		if t.Key != nil {
			key = sortFor(c, *t.Key)
		}
		if t.Value != nil {
			val = sortFor(c, *t.Value)
		}
		return fmt.Sprintf("(Array %s %s)", key, val)
	case ast.TCustom:
		if t.Custom.IsZero() {
			return "UnresolvedSort"
		}
		return declSortName(c, t.Custom)
	default:
		return "UnresolvedSort"
	}
}
