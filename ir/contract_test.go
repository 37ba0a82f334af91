package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/span"
)

func Test_ContractDefinition_AddAndLookup(t *testing.T) {
	assert := assert.New(t)

	c := NewContractDefinition(diag.NewSink())

	sym, dup := c.AddStruct(ast.StructDecl{Name: span.Identifier{Name: "Foo"}})
	assert.False(dup)
	assert.Equal(ast.DeclStruct, sym.Kind)
	assert.Equal(0, sym.Index)

	got, ok := c.Lookup("Foo")
	assert.True(ok)
	assert.Equal(sym, got)
}

func Test_ContractDefinition_duplicateNameAcrossKinds(t *testing.T) {
	assert := assert.New(t)

	c := NewContractDefinition(diag.NewSink())

	_, dup1 := c.AddStruct(ast.StructDecl{Name: span.Identifier{Name: "X"}})
	assert.False(dup1)

	_, dup2 := c.AddModel(ast.ModelDecl{Name: span.Identifier{Name: "X"}})
	assert.True(dup2, "a later declaration reusing a top-level name must be reported as a duplicate")

	// The first registrant still wins the name mapping.
	got, ok := c.Lookup("X")
	assert.True(ok)
	assert.Equal(ast.DeclStruct, got.Kind)
}

func Test_ContractDefinition_FreshLocalIDIsMonotonic(t *testing.T) {
	assert := assert.New(t)

	c := NewContractDefinition(diag.NewSink())
	a := c.FreshLocalID()
	b := c.FreshLocalID()
	assert.NotEqual(a, b)
	assert.Less(a, b)
}

func Test_ContractDefinition_AllSymbolsOrdersByKindThenIndex(t *testing.T) {
	assert := assert.New(t)

	c := NewContractDefinition(diag.NewSink())
	c.AddFunction(ast.FunctionDecl{Name: span.Identifier{Name: "f"}})
	c.AddStruct(ast.StructDecl{Name: span.Identifier{Name: "S"}})

	all := c.AllSymbols()
	if assert.Len(all, 2) {
		assert.Equal(ast.DeclStruct, all[0].Kind)
		assert.Equal(ast.DeclFunction, all[1].Kind)
	}
}

func Test_Scope_LookupRespectsShadowingAndDepth(t *testing.T) {
	assert := assert.New(t)

	s := NewScope(ast.GlobalSymbol{Kind: ast.DeclFunction, Index: 0})
	s.Push(CtxFunctionSignature)
	s.Declare(&ast.VariableSym{Name: "x", Usage: ast.UsageKind(0)})

	s.Push(CtxFunctionBody)
	s.Declare(&ast.VariableSym{Name: "x", Usage: ast.UsageKind(0)})

	sym, ctx, ok := s.Lookup("x")
	assert.True(ok)
	assert.Equal(CtxFunctionBody, ctx)
	assert.NotNil(sym)
	assert.Equal(2, s.Depth())

	s.Pop()
	_, ctx, ok = s.Lookup("x")
	assert.True(ok)
	assert.Equal(CtxFunctionSignature, ctx)

	s.Pop()
	_, _, ok = s.Lookup("x")
	assert.False(ok)

	// Popping past empty is a no-op, not a panic.
	s.Pop()
	assert.Equal(0, s.Depth())
}
