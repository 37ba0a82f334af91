package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/span"
)

func Test_Expression_Equal_ignoresSpans(t *testing.T) {
	assert := assert.New(t)

	a := NumberLit(span.Span{Line: 1}, 5)
	b := NumberLit(span.Span{Line: 99}, 5)
	assert.True(a.Equal(b))

	c := NumberLit(span.Zero, 6)
	assert.False(a.Equal(c))
}

func Test_Expression_Equal_distinguishesStructure(t *testing.T) {
	assert := assert.New(t)

	left := VarRef(span.Identifier{Name: "x"})
	right := NumberLit(span.Zero, 0)

	lt := Binary(OpLt, left, right, span.Zero)
	gt := Binary(OpGt, left, right, span.Zero)
	assert.False(lt.Equal(gt), "different operators must not compare equal")

	lt2 := Binary(OpLt, left, right, span.Zero)
	assert.True(lt.Equal(lt2))
}

func Test_Expression_String_rendersBinaryWithParens(t *testing.T) {
	assert := assert.New(t)

	e := Binary(OpAdd, VarRef(span.Identifier{Name: "a"}), NumberLit(span.Zero, 1), span.Zero)
	assert.Equal("(a + 1)", e.String())
}

func Test_BinOp_String(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("+", OpAdd.String())
	assert.Equal("==", OpEq.String())
	assert.Equal("in", OpIn.String())
}

func Test_TypeKind_String(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("int", TSignedInt.String())
	assert.Equal("unresolved", TUnresolved.String())
}

func Test_Relation_String(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("->", Relation{}.String())
	assert.Equal("-/>", Relation{Flags: Partial}.String())
	assert.Equal(">->", Relation{Flags: Injective}.String())
	assert.Equal(">->>", Relation{Flags: Injective | Surjective}.String())
}

func Test_ListOf_copiesElementByValue(t *testing.T) {
	assert := assert.New(t)

	elem := Primitive(TBool, span.Zero)
	lst := ListOf(elem, span.Zero)
	elem.Kind = TString // mutating the original must not affect the copy stored in lst

	assert.Equal(TBool, lst.Elem.Kind)
}

func Test_GlobalSymbol_IsZero(t *testing.T) {
	assert := assert.New(t)
	assert.True(GlobalSymbol{}.IsZero())
	assert.False(GlobalSymbol{Kind: DeclStruct}.IsZero())
	assert.Equal("struct#3", GlobalSymbol{Kind: DeclStruct, Index: 3}.String())
}
