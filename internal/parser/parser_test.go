package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/ast"
)

func Test_Parse_declarationKinds(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect ast.DeclKind
	}{
		{name: "struct", input: "struct Foo { x: int }", expect: ast.DeclStruct},
		{name: "enum", input: "enum Color { Red, Green, Blue }", expect: ast.DeclEnum},
		{name: "model", input: "model Foo { x: int }", expect: ast.DeclModel},
		{name: "function", input: "fn add(a: int, b: int) -> int { return a + b; }", expect: ast.DeclFunction},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tree := Parse("test.fol", tc.input)
			assert.Empty(tree.Errors)
			if assert.Len(tree.Declarations, 1) {
				assert.Equal(tc.expect, tree.Declarations[0].Kind)
			}
		})
	}
}

// Test_Parse_roundTripsThroughString exercises the parser round-trip
// property (SPEC_FULL.md §8): re-parsing a declaration's own canonical
// String() form must produce a tree-equivalent declaration.
func Test_Parse_roundTripsThroughString(t *testing.T) {
	assert := assert.New(t)

	sources := []string{
		"struct Foo { x: int, y: string }",
		"enum Color { Red, Green, Blue }",
		"fn add(a: int, b: int) -> int { return a + b; }",
	}

	for _, src := range sources {
		tree := Parse("test.fol", src)
		if !assert.Len(tree.Declarations, 1, "source: %s", src) {
			continue
		}
		original := tree.Declarations[0]

		reparsed := Parse("test.fol", original.String())
		assert.Empty(reparsed.Errors, "source: %s", src)
		if assert.Len(reparsed.Declarations, 1, "source: %s", src) {
			assert.True(original.Equal(reparsed.Declarations[0]), "round trip mismatch for %q: got %q", src, reparsed.Declarations[0].String())
		}
	}
}

func Test_Parse_recoversFromSyntaxError(t *testing.T) {
	assert := assert.New(t)

	tree := Parse("test.fol", "struct Foo { x: } fn ok() -> int { return 1; }")
	assert.NotEmpty(tree.Errors)
}
