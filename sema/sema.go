// Package sema is folidity's two-pass semantic analyzer (§4.3). Pass A
// registers declaration signatures and checks the structural invariants
// that don't require walking expressions (duplicate names, field-type
// legality, type/inheritance cycles); pass B resolves `st` blocks and
// function bodies against the scopes pass A seeded. The resolution style
// — a recursive-descent walk switching over a tagged node's Kind, pushing
// and popping context onto a stack as blocks are entered and left — is
// grounded on the teacher's tunascript expression/statement resolvers
// (`tunascript/syntax/expast.go`, `operators.go`), generalized from
// tunascript's single dynamic-typed value to folidity's richer static
// Type lattice.
package sema

import (
	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
)

// Analyze runs both passes over file, returning the resulting IR. The IR is
// returned even when diagnostics were emitted; callers decide whether to
// continue per §7's propagation policy ("no stage aborts on a recoverable
// error ... the driver checks severity at stage boundaries").
func Analyze(file ast.File, sink *diag.Sink) *ir.ContractDefinition {
	c := ir.NewContractDefinition(sink)

	a := &passA{c: c, sink: sink}
	a.run(file)

	b := &passB{c: c, sink: sink}
	b.run()

	return c
}
