// Package folidity glues the compiler's six stages together behind one
// entry point, grounded on the teacher's top-level Engine (engine.go):
// a small struct holding the shared configuration a whole run needs, with
// one method per externally useful unit of work rather than a free
// function per stage.
package folidity

import (
	"context"
	"fmt"

	"github.com/folidity/folidity/ast"
	"github.com/folidity/folidity/cache"
	"github.com/folidity/folidity/config"
	"github.com/folidity/folidity/diag"
	"github.com/folidity/folidity/emit"
	"github.com/folidity/folidity/internal/parser"
	"github.com/folidity/folidity/ir"
	"github.com/folidity/folidity/sema"
	"github.com/folidity/folidity/verify"
)

// Pipeline runs the compiler's stages over a source file (§2 NEW: "the one
// exported struct gluing stages 1-6 together"). A zero Pipeline is usable;
// Config and Cache are optional and default to FillDefaults()/no caching
// respectively.
type Pipeline struct {
	Config config.Config
	Cache  cache.Store

	// NewOracle builds a fresh verify.Oracle per worker. A nil factory
	// skips stage 4 and reports no verification diagnostics, for callers
	// with no solver available.
	NewOracle verify.OracleFactory
}

// Result is everything one Pipeline.Run invocation produced.
type Result struct {
	File      ast.File
	Contract  *ir.ContractDefinition
	Program   emit.Program
	Sink      *diag.Sink
	FromCache bool
}

// Stage bounds how far Run advances, mirroring the CLI's check/verify/
// compile split (§6).
type Stage int

const (
	StageCheck Stage = iota // 1-3
	StageVerify              // 1-4
	StageCompile             // 1-5
)

// Run lexes, parses, and semantically analyzes source, then optionally
// verifies and emits, depending on stage. file is used only for diagnostic
// spans; the cache key is derived from source and cfg alone.
func (p Pipeline) Run(ctx context.Context, file, source string, stage Stage) (Result, error) {
	cfg := p.Config.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("folidity: %w", err)
	}

	sink := diag.NewSink()

	if p.Cache != nil {
		if res, ok, err := p.lookupCache(ctx, source, cfg, stage); err == nil && ok {
			return res, nil
		}
	}

	tree := parser.Parse(file, source)
	for _, e := range tree.Errors {
		sink.Addf(diag.Error, diag.KindUnexpectedToken, e.Span, "%s", e.Message)
	}

	contract := sema.Analyze(tree, sink)

	result := Result{File: tree, Contract: contract, Sink: sink}

	if stage == StageCheck {
		return result, nil
	}

	if p.NewOracle != nil {
		verify.Run(ctx, contract, p.NewOracle, sink, cfg.Workers)
	}

	if stage == StageVerify {
		return result, nil
	}

	if sink.HasSeverity(diag.Error) {
		return result, nil
	}

	program, err := emit.Emit(contract, sink, cfg)
	if err != nil {
		return result, err
	}
	result.Program = program

	if p.Cache != nil {
		p.storeCache(ctx, source, cfg, program)
	}

	return result, nil
}

func (p Pipeline) cacheKey(source string, cfg config.Config) (string, error) {
	fingerprint := fmt.Sprintf("%d|%v|%v|%s", cfg.SolverTimeoutMS, cfg.ProveLinked, cfg.EmitVerboseDiagnostics, cfg.BoxNamePrefix)
	return cache.Key([]byte(source), fingerprint)
}

func (p Pipeline) lookupCache(ctx context.Context, source string, cfg config.Config, stage Stage) (Result, bool, error) {
	if stage != StageCompile {
		// Only full-compile results are worth short-circuiting: check/
		// verify runs still need the semantic IR the cache doesn't keep.
		return Result{}, false, nil
	}
	key, err := p.cacheKey(source, cfg)
	if err != nil {
		return Result{}, false, err
	}
	entry, ok, err := p.Cache.Get(ctx, key)
	if err != nil || !ok {
		return Result{}, false, err
	}
	return Result{
		Program:   emit.Program{Approval: string(entry.Bytecode), Manifest: string(entry.Manifest)},
		Sink:      diag.NewSink(),
		FromCache: true,
	}, true, nil
}

func (p Pipeline) storeCache(ctx context.Context, source string, cfg config.Config, program emit.Program) {
	key, err := p.cacheKey(source, cfg)
	if err != nil {
		return
	}
	_ = p.Cache.Put(ctx, cache.Entry{
		Key:      key,
		Bytecode: []byte(program.Approval),
		Manifest: []byte(program.Manifest),
	})
}
