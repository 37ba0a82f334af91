package verify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
	"github.com/folidity/folidity/span"
)

func Test_FakeOracle_unsatOnAssertFalse(t *testing.T) {
	assert := assert.New(t)

	o := NewFakeOracle()
	ctx := context.Background()
	assert.NoError(o.Assert(ctx, "(assert false)"))

	result, err := o.CheckSat(ctx)
	assert.NoError(err)
	assert.Equal(Unsat, result)
}

func Test_FakeOracle_satByDefault(t *testing.T) {
	assert := assert.New(t)

	o := NewFakeOracle()
	ctx := context.Background()
	assert.NoError(o.Assert(ctx, "(declare-const x Int)"))

	result, err := o.CheckSat(ctx)
	assert.NoError(err)
	assert.Equal(Sat, result)
}

func Test_FakeOracle_unsatOnDirectContradiction(t *testing.T) {
	assert := assert.New(t)

	o := NewFakeOracle()
	ctx := context.Background()
	assert.NoError(o.Assert(ctx, "(assert (< Model_Foo_x 0))"))
	assert.NoError(o.Assert(ctx, "(assert (> Model_Foo_x 0))"))

	result, err := o.CheckSat(ctx)
	assert.NoError(err)
	assert.Equal(Unsat, result)
}

func Test_FakeOracle_ResetClearsState(t *testing.T) {
	assert := assert.New(t)

	o := NewFakeOracle()
	ctx := context.Background()
	assert.NoError(o.Assert(ctx, "(assert false)"))
	assert.NoError(o.Reset(ctx))

	result, err := o.CheckSat(ctx)
	assert.NoError(err)
	assert.Equal(Sat, result)
}

// intField builds a st-block-bearing model with one signed-int field named
// x and the given st constraints over it, used to drive Run end-to-end
// against a FakeOracle without a real solver process.
func intField(constraints ...ast.Expression) *ir.ContractDefinition {
	c := ir.NewContractDefinition(diag.NewSink())
	c.AddModel(ast.ModelDecl{
		Name:   span.Identifier{Name: "Foo"},
		Fields: []ast.Field{{Name: span.Identifier{Name: "x"}, Type: ast.Type{Kind: ast.TSignedInt}}},
		St:     ast.ConstraintBlock{Present: true, Constraints: constraints},
	})
	return c
}

func ltZero() ast.Expression {
	zero := ast.NumberLit(span.Zero, 0)
	x := ast.Expression{Kind: ast.EVarRef, Name: span.Identifier{Name: "x"}}
	return ast.Expression{Kind: ast.EBinary, BinOp: ast.OpLt, Left: &x, Right: &zero}
}

func gtZero() ast.Expression {
	zero := ast.NumberLit(span.Zero, 0)
	x := ast.Expression{Kind: ast.EVarRef, Name: span.Identifier{Name: "x"}}
	return ast.Expression{Kind: ast.EBinary, BinOp: ast.OpGt, Left: &x, Right: &zero}
}

func Test_Run_reportsUnsatisfiableContradictoryBounds(t *testing.T) {
	assert := assert.New(t)

	c := intField(ltZero(), gtZero())
	sink := diag.NewSink()

	Run(context.Background(), c, func() (Oracle, error) { return NewFakeOracle(), nil }, sink, 1)

	found := false
	for _, r := range sink.Reports() {
		if r.Kind == diag.KindUnsatisfiable {
			found = true
		}
	}
	assert.True(found, "expected an unsatisfiable-bounds diagnostic, got: %v", sink.Reports())
}

func Test_Run_satisfiableBoundsProduceNoDiagnostics(t *testing.T) {
	assert := assert.New(t)

	c := intField(gtZero())
	sink := diag.NewSink()

	Run(context.Background(), c, func() (Oracle, error) { return NewFakeOracle(), nil }, sink, 1)

	assert.Empty(sink.Reports())
}

func Test_Run_noStBlocksProducesNoDiagnostics(t *testing.T) {
	assert := assert.New(t)

	c := ir.NewContractDefinition(diag.NewSink())
	c.AddModel(ast.ModelDecl{Name: span.Identifier{Name: "Bare"}})
	sink := diag.NewSink()

	Run(context.Background(), c, func() (Oracle, error) { return NewFakeOracle(), nil }, sink, 1)

	assert.Empty(sink.Reports())
}
