package verify

import (
	"context"
	"fmt"
	"sync"

	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/ir"
)

// OracleFactory returns a fresh Oracle session, one per worker, since an
// Oracle's asserted state is not safe to share across concurrent queries.
type OracleFactory func() (Oracle, error)

// Run performs per-block verification (§4.4.3) followed by joined-block
// verification over the link graph's multi-node components (§4.4.4),
// funneling diagnostics through sink. Up to workers blocks are checked
// concurrently; workers <= 1 runs strictly sequentially.
func Run(ctx context.Context, c *ir.ContractDefinition, newOracle OracleFactory, sink *diag.Sink, workers int) {
	records := buildAllBounds(c)
	if len(records) == 0 {
		return
	}

	runPool(ctx, records, newOracle, sink, workers, func(o Oracle, r BoundsRecord) {
		verifyOne(ctx, o, sink, r.Preamble, []BoundsRecord{r})
	})

	lg := buildLinkGraph(c, records)
	comps := lg.components(records)
	if len(comps) == 0 {
		return
	}

	groups := make([][]BoundsRecord, len(comps))
	for i, comp := range comps {
		for _, idx := range comp {
			groups[i] = append(groups[i], records[idx])
		}
	}
	runPool(ctx, groups, newOracle, sink, workers, func(o Oracle, group []BoundsRecord) {
		var preamble []string
		for _, r := range group {
			preamble = append(preamble, r.Preamble...)
		}
		verifyOne(ctx, o, sink, preamble, group)
	})
}

// verifyOne runs one satisfiability query over preamble plus every
// `k_i -> c_i` implication drawn from records (§4.4.3: "assert k_i for
// every k_i, assert each k_i -> c_i"), reporting an unsat or timeout
// diagnostic per contradicting constraint.
func verifyOne(ctx context.Context, o Oracle, sink *diag.Sink, preamble []string, records []BoundsRecord) {
	if err := o.Reset(ctx); err != nil {
		return
	}
	for _, p := range preamble {
		_ = o.Assert(ctx, p)
	}
	for _, r := range records {
		for _, k := range r.Constraints {
			_ = o.Assert(ctx, fmt.Sprintf("(assert %s)", k.Tracker))
			_ = o.Assert(ctx, fmt.Sprintf("(assert (=> %s %s))", k.Tracker, k.Formula))
		}
	}

	result, err := o.CheckSat(ctx)
	if err != nil {
		reportSolverFailure(sink, records)
		return
	}

	switch result {
	case Sat:
		return
	case Timeout:
		for _, r := range records {
			sink.Addf(diag.Warning, diag.KindSolverTimeout, r.Sym.Span,
				"%s: bounds check timed out", r.Sym)
		}
	case Unsat:
		core, _ := o.UnsatCore(ctx)
		reportUnsatCore(sink, records, core, len(records) > 1)
	}
}

func reportUnsatCore(sink *diag.Sink, records []BoundsRecord, core []string, linked bool) {
	inCore := map[string]bool{}
	for _, t := range core {
		inCore[t] = true
	}
	kind := diag.KindUnsatisfiable
	if linked {
		kind = diag.KindLinkedUnsatisfiable
	}
	reported := false
	for _, r := range records {
		for _, cst := range r.Constraints {
			if len(core) == 0 || inCore[cst.Tracker] {
				sink.Addf(diag.Error, kind, cst.Span, "unsatisfiable bound in %s", r.Sym)
				reported = true
			}
		}
	}
	if !reported {
		for _, r := range records {
			sink.Addf(diag.Error, kind, r.Sym.Span, "unsatisfiable bounds in %s", r.Sym)
		}
	}
}

func reportSolverFailure(sink *diag.Sink, records []BoundsRecord) {
	for _, r := range records {
		sink.Addf(diag.Error, diag.KindSolverTimeout, r.Sym.Span, "solver query failed for %s", r.Sym)
	}
}

// runPool funnels items through n workers (n<=1 runs sequentially on the
// calling goroutine), each with its own Oracle session; sink's own mutex is
// what makes concurrent diagnostic production safe (§5 NEW, §7 NEW).
func runPool[T any](ctx context.Context, items []T, newOracle OracleFactory, sink *diag.Sink, n int, fn func(Oracle, T)) {
	if n <= 1 || len(items) <= 1 {
		o, err := newOracle()
		if err != nil {
			return
		}
		defer o.Close()
		for _, item := range items {
			fn(o, item)
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, n)
	for _, item := range items {
		item := item
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			o, err := newOracle()
			if err != nil {
				return
			}
			defer o.Close()
			fn(o, item)
		}()
	}
	wg.Wait()
}
