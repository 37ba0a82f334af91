package verify

import (
	"context"
	"strings"
)

// FakeOracle is an in-memory stand-in for a real SMT process, grounded on
// the teacher's repository-interface-plus-fake-and-real-backend split
// (server/dao paired with server/dao/inmem and server/dao/sqlite): Oracle
// is the interface, FakeOracle the in-memory test double, ProcessOracle the
// real backend.
//
// It does not actually decide satisfiability; it recognizes two textual
// patterns planted by tests (a literal "(assert false)" and a pair of
// directly contradictory numeric-literal comparisons on the same constant)
// and falls back to reporting Sat for anything else. That is enough to
// drive the per-block/joined-block plumbing and diagnostic wiring in tests
// without a real solver dependency.
type FakeOracle struct {
	asserts []string
}

func NewFakeOracle() *FakeOracle { return &FakeOracle{} }

func (f *FakeOracle) Assert(ctx context.Context, smt string) error {
	f.asserts = append(f.asserts, smt)
	return nil
}

func (f *FakeOracle) CheckSat(ctx context.Context) (Result, error) {
	for _, a := range f.asserts {
		if strings.Contains(a, "(assert false)") {
			return Unsat, nil
		}
	}
	if f.hasDirectContradiction() {
		return Unsat, nil
	}
	return Sat, nil
}

// hasDirectContradiction looks for a constant asserted both `(< c 0)` and
// `(> c 0)`-shaped (or similarly opposed) without any other constraint
// involving it, the simplest contradiction shape the fixed test fixtures
// exercise.
func (f *FakeOracle) hasDirectContradiction() bool {
	seen := map[string]string{}
	for _, a := range f.asserts {
		if !strings.HasPrefix(a, "(assert ") {
			continue
		}
		body := strings.TrimSuffix(strings.TrimPrefix(a, "(assert "), ")")
		if strings.HasPrefix(body, "(=> ") {
			// A tracked implication `(=> k c)`: inspect c.
			inner := strings.TrimSuffix(strings.TrimPrefix(body, "(=> "), ")")
			if parts := strings.SplitN(inner, " ", 2); len(parts) == 2 {
				body = parts[1]
			}
		}
		for _, op := range []string{"<", ">", "="} {
			prefix := "(" + op + " "
			if strings.HasPrefix(body, prefix) {
				rest := strings.TrimPrefix(body, prefix)
				fields := strings.Fields(rest)
				if len(fields) >= 1 {
					key := fields[0]
					if prior, ok := seen[key]; ok && prior != op && (op == "<" || op == ">") && (prior == "<" || prior == ">") && prior != op {
						return true
					}
					seen[key] = op
				}
			}
		}
	}
	return false
}

func (f *FakeOracle) UnsatCore(ctx context.Context) ([]string, error) {
	var core []string
	for _, a := range f.asserts {
		if strings.HasPrefix(a, "(declare-const tracker_") {
			name := strings.Fields(strings.TrimPrefix(a, "(declare-const "))[0]
			core = append(core, name)
		}
	}
	return core, nil
}

func (f *FakeOracle) Reset(ctx context.Context) error {
	f.asserts = nil
	return nil
}

func (f *FakeOracle) Close() error { return nil }
