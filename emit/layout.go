package emit

import (
	"fmt"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/ir"
)

// Fixed field sizes per §4.5.2: "Lists/sets are byte arrays of fixed
// capacity (512 bytes) with a length prefix." Primitive scalars are fixed
// per their type; signed integers use the 16-byte sign-magnitude encoding
// (§4.5.2), everything else native AVM width (8 bytes) or a length-prefixed
// blob.
const (
	wordSize       = 8
	signedIntSize  = 16 // 8-byte sign flag + 8-byte magnitude
	lengthPrefix   = 8
	listSetCap     = 512
	listSetSize    = lengthPrefix + listSetCap
	mappingKeySize = 8
)

// FieldLayout is one field's position within its owning declaration's byte
// array (§4.5.3).
type FieldLayout struct {
	Name   string
	Offset int
	Size   int
	Type   ast.Type
}

// Layout is the full storage layout for one struct/model/state declaration:
// its flattened field list (parent fields first, depth-first, then the
// declaration's own) with offsets assigned in order, and the total byte
// size of its backing array.
type Layout struct {
	Fields []FieldLayout
	Size   int
}

// sizeOf returns the fixed byte width a value of type t occupies in a
// struct/state byte array (§4.5.2/§4.5.3).
func sizeOf(c *ir.ContractDefinition, t ast.Type) int {
	switch t.Kind {
	case ast.TSignedInt:
		return signedIntSize
	case ast.TUnsignedInt, ast.TFloat, ast.TBool, ast.TChar:
		return wordSize
	case ast.THex, ast.TAddress, ast.TString:
		return listSetSize
	case ast.TList, ast.TSet:
		return listSetSize
	case ast.TMapping:
		return mappingKeySize
	case ast.TCustom:
		if t.Custom.IsZero() {
			return wordSize
		}
		return layoutFor(c, t.Custom).Size
	default:
		return wordSize
	}
}

// flattenFields re-derives the inherited-then-own field ordering
// independently of sema's and the verifier's own copies (§9: cross-stage
// consumers never share field-resolution state; each derives it fresh from
// the IR's own parent links). See verify.flattenFieldsFor for the sibling
// copy this mirrors.
func flattenFields(c *ir.ContractDefinition, sym ast.GlobalSymbol) []ast.Field {
	switch sym.Kind {
	case ast.DeclStruct:
		return c.Struct(sym).Fields
	case ast.DeclModel:
		m := c.Model(sym)
		var out []ast.Field
		if m.HasParent() && m.ParentSym.Kind == ast.DeclModel {
			out = append(out, flattenFields(c, m.ParentSym)...)
		}
		return append(out, m.Fields...)
	case ast.DeclState:
		st := c.State(sym)
		switch st.Body {
		case ast.StateBodyModel:
			if st.ModelSym.Kind == ast.DeclModel {
				return flattenFields(c, st.ModelSym)
			}
			return nil
		case ast.StateBodyFields:
			return st.Fields
		}
	}
	return nil
}

// layoutFor computes sym's Layout, assigning offsets in flattened field
// order (§4.5.3: "concatenation of, in order: parent-model fields
// (recursively, depth-first), then the state's own fields").
func layoutFor(c *ir.ContractDefinition, sym ast.GlobalSymbol) Layout {
	fields := flattenFields(c, sym)
	var out Layout
	offset := 0
	for _, f := range fields {
		size := sizeOf(c, f.Type)
		out.Fields = append(out.Fields, FieldLayout{
			Name:   f.Name.Name,
			Offset: offset,
			Size:   size,
			Type:   f.Type,
		})
		offset += size
	}
	out.Size = offset
	return out
}

// fieldLayout finds name within layout, panicking if absent — by the time
// the emitter runs, the semantic analyzer has already validated every
// member access against its declared type, so a missing field here is an
// internal invariant violation, not a user-facing error.
func (l Layout) fieldLayout(name string) FieldLayout {
	for _, f := range l.Fields {
		if f.Name == name {
			return f
		}
	}
	panic(fmt.Sprintf("emit: no such field %q in layout", name))
}

// boxName returns the storage box identifier for a state declaration,
// prefixed per §6 ("Storage: one box per state declaration, named by the
// state's canonical identifier (prefixed with __")) and configurably via
// config.Config.BoxNamePrefix.
func boxName(prefix, stateName string) string {
	return prefix + stateName
}
