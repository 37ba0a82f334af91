package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/internal/parser"
	"github.com/folidity/folidity/sema"
)

func analyze(t *testing.T, src string) (*diag.Sink, []diag.Report) {
	t.Helper()
	tree := parser.Parse("test.fol", src)
	if len(tree.Errors) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, tree.Errors)
	}
	sink := diag.NewSink()
	sema.Analyze(tree, sink)
	return sink, sink.Reports()
}

func Test_Analyze_duplicateTopLevelNameIsReported(t *testing.T) {
	assert := assert.New(t)

	_, reports := analyze(t, "struct Foo { x: int } struct Foo { y: int }")

	found := false
	for _, r := range reports {
		if r.Kind == diag.KindDuplicateName {
			found = true
		}
	}
	assert.True(found, "expected a duplicate-name diagnostic, got: %v", reports)
}

func Test_Analyze_structFieldCycleIsReported(t *testing.T) {
	assert := assert.New(t)

	_, reports := analyze(t, "struct A { b: B } struct B { a: A }")

	found := false
	for _, r := range reports {
		if r.Kind == diag.KindCycle {
			found = true
		}
	}
	assert.True(found, "expected a cycle diagnostic for A <-> B, got: %v", reports)
}

func Test_Analyze_acyclicStructsProduceNoCycleDiagnostic(t *testing.T) {
	assert := assert.New(t)

	_, reports := analyze(t, "struct A { x: int } struct B { a: A }")

	for _, r := range reports {
		assert.NotEqual(diag.KindCycle, r.Kind)
	}
}

func Test_Analyze_undeclaredFieldTypeIsReported(t *testing.T) {
	assert := assert.New(t)

	_, reports := analyze(t, "struct A { b: NoSuchType }")

	found := false
	for _, r := range reports {
		if r.Kind == diag.KindUndeclaredIdent {
			found = true
		}
	}
	assert.True(found, "expected an undeclared-identifier diagnostic, got: %v", reports)
}

func Test_Analyze_validFunctionBodyProducesNoDiagnostics(t *testing.T) {
	sink, reports := analyze(t, "fn add(a: int, b: int) -> int { return a + b; }")
	assert.New(t).False(sink.HasSeverity(diag.Error), "unexpected diagnostics: %v", reports)
}
