package sema

import "github.com/folidity/folidity/ast"

// expectedKind discriminates the three-valued expected type §4.3.1
// specifies: Empty (no constraint), Concrete(T) (exactly one type), and
// Dynamic(S) (a non-empty candidate set, narrowed as resolution proceeds).
type expectedKind int

const (
	expEmpty expectedKind = iota
	expConcrete
	expDynamic
)

// expected is the expected-type value threaded into every resolveExpr
// call.
type expected struct {
	kind       expectedKind
	concrete   ast.Type
	candidates []ast.Type
}

func exEmpty() expected { return expected{kind: expEmpty} }

func exConcrete(t ast.Type) expected { return expected{kind: expConcrete, concrete: t} }

func exDynamic(candidates ...ast.Type) expected {
	return expected{kind: expDynamic, candidates: candidates}
}

var numericCandidates = []ast.Type{
	ast.Primitive(ast.TSignedInt, ast.Type{}.Span),
	ast.Primitive(ast.TUnsignedInt, ast.Type{}.Span),
}

// exNumeric is the Dynamic expectation over {signed-int, unsigned-int} used
// when resolving the left operand of an arithmetic expression under an
// otherwise-Empty expectation (§4.3.1: "if Empty, first resolve left under
// Dynamic over numeric types").
func exNumeric() expected { return exDynamic(numericCandidates...) }

// candidateTypes returns the concrete types this expectation would accept,
// collapsing Empty to "anything" (nil, meaning unconstrained).
func (e expected) candidateTypes() []ast.Type {
	switch e.kind {
	case expConcrete:
		return []ast.Type{e.concrete}
	case expDynamic:
		return e.candidates
	default:
		return nil
	}
}

// accepts reports whether t satisfies this expectation.
func (e expected) accepts(t ast.Type) bool {
	switch e.kind {
	case expEmpty:
		return true
	case expConcrete:
		return e.concrete.Equal(t)
	case expDynamic:
		for _, c := range e.candidates {
			if c.Equal(t) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// withoutCandidate returns a Dynamic expectation with bad removed, used
// when "a chosen candidate fails inside a Dynamic expectation" and the
// analyzer retries with it excluded (§4.3.1).
func (e expected) withoutCandidate(bad ast.Type) expected {
	if e.kind != expDynamic {
		return e
	}
	out := make([]ast.Type, 0, len(e.candidates))
	for _, c := range e.candidates {
		if !c.Equal(bad) {
			out = append(out, c)
		}
	}
	return expected{kind: expDynamic, candidates: out}
}

func exBool() expected {
	return exConcrete(ast.Primitive(ast.TBool, ast.Type{}.Span))
}
