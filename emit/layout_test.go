package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
	"github.com/folidity/folidity/span"
)

func Test_layoutFor_assignsOffsetsInFieldOrder(t *testing.T) {
	assert := assert.New(t)

	c := ir.NewContractDefinition(diag.NewSink())
	sym, _ := c.AddStruct(ast.StructDecl{
		Name: span.Identifier{Name: "Point"},
		Fields: []ast.Field{
			{Name: span.Identifier{Name: "x"}, Type: ast.Type{Kind: ast.TSignedInt}},
			{Name: span.Identifier{Name: "y"}, Type: ast.Type{Kind: ast.TBool}},
		},
	})

	l := layoutFor(c, sym)
	assert.Equal(signedIntSize+wordSize, l.Size)

	x := l.fieldLayout("x")
	assert.Equal(0, x.Offset)
	assert.Equal(signedIntSize, x.Size)

	y := l.fieldLayout("y")
	assert.Equal(signedIntSize, y.Offset)
	assert.Equal(wordSize, y.Size)
}

func Test_layoutFor_flattensParentFieldsFirst(t *testing.T) {
	assert := assert.New(t)

	c := ir.NewContractDefinition(diag.NewSink())
	parentSym, _ := c.AddModel(ast.ModelDecl{
		Name:   span.Identifier{Name: "Base"},
		Fields: []ast.Field{{Name: span.Identifier{Name: "owner"}, Type: ast.Type{Kind: ast.TAddress}}},
	})
	childSym, _ := c.AddModel(ast.ModelDecl{
		Name:      span.Identifier{Name: "Child"},
		ParentSym: parentSym,
		Parent:    span.Identifier{Name: "Base"},
		Fields:    []ast.Field{{Name: span.Identifier{Name: "balance"}, Type: ast.Type{Kind: ast.TUnsignedInt}}},
	})

	l := layoutFor(c, childSym)
	if assert.Len(l.Fields, 2) {
		assert.Equal("owner", l.Fields[0].Name)
		assert.Equal("balance", l.Fields[1].Name)
	}
}

func Test_boxName_prependsPrefix(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("__Active", boxName("__", "Active"))
}
