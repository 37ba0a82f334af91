// Package diag is the cross-cutting diagnostic sink shared by every stage of
// the folidity pipeline (lexer, parser, semantic analyzer, verifier,
// emitter). It collects structured reports in deterministic order so that
// the same invocation always produces the same diagnostic output, even when
// the verifier's per-declaration SMT queries run concurrently.
package diag

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dekarrin/rosed"
	"github.com/folidity/folidity/span"
)

// Severity is how serious a Report is.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Kind identifies which stage and rule produced a Report. The taxonomy
// matches §7 of the specification exactly: lexical, syntactic, semantic,
// verification, and emission kinds, plus a single internal kind reserved for
// the one fatal invariant violation the pipeline is allowed to abort on.
type Kind string

const (
	// Lexical
	KindUnknownChar        Kind = "lexical.unknown-char"
	KindUnterminatedLiteral Kind = "lexical.unterminated-literal"

	// Syntactic
	KindUnexpectedToken Kind = "syntactic.unexpected-token"

	// Semantic
	KindDuplicateName       Kind = "semantic.duplicate-name"
	KindUndeclaredIdent     Kind = "semantic.undeclared-identifier"
	KindTypeMismatch        Kind = "semantic.type-mismatch"
	KindIllegalFieldType    Kind = "semantic.illegal-field-type"
	KindCycle               Kind = "semantic.cycle"
	KindInvalidAccess       Kind = "semantic.invalid-variable-access"
	KindArityMismatch       Kind = "semantic.arity-mismatch"
	KindUnreachableCode     Kind = "semantic.unreachable-code"
	KindInvalidTransition   Kind = "semantic.invalid-state-transition"
	KindInvalidMoveTarget   Kind = "semantic.invalid-move-target"
	KindAmbiguousPattern    Kind = "semantic.ambiguous-destructure"

	// Verification
	KindUnsatisfiable      Kind = "verification.unsatisfiable"
	KindLinkedUnsatisfiable Kind = "verification.linked-unsatisfiable"
	KindSolverTimeout      Kind = "verification.solver-timeout"
	KindUnsupportedSMT     Kind = "verification.unsupported-expression"

	// Emission
	KindLayoutTooLarge      Kind = "emission.layout-too-large"
	KindUnsupportedOperation Kind = "emission.unsupported-operation"

	// Internal
	KindInternal Kind = "internal.fatal"
)

// Report is a single structured diagnostic. It carries everything needed to
// render a message and to trace it back to the expressions or declarations
// that produced it, including secondary reports for related spans (e.g. the
// other half of an unsat core, or the earlier declaration a duplicate name
// collides with).
type Report struct {
	Primary  span.Span
	Kind     Kind
	Severity Severity
	Message  string
	Note     string
	Related  []Report
}

// String renders a plain-text, non-colored representation of the report.
// Pretty-printing/coloring is a driver concern (§1); this exists only so a
// report is legible without one. Long notes are wrapped to a conservative
// terminal width using the same text-editing library the AST's own
// pretty-printer depends on.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %s", r.Primary, r.Severity, r.Message)
	if r.Note != "" {
		note := rosed.Edit(r.Note).Wrap(76).String()
		for _, line := range strings.Split(note, "\n") {
			fmt.Fprintf(&sb, "\n  note: %s", line)
		}
	}
	for _, rel := range r.Related {
		fmt.Fprintf(&sb, "\n  also: %s", rel.String())
	}
	return sb.String()
}

// Sink accumulates Reports across a single pipeline invocation. It is safe
// for concurrent use only via its Add method, which is the sole place
// mutation happens; every stage other than the verifier's worker pool
// appends in deterministic program order and never needs the lock.
type Sink struct {
	mu      sync.Mutex
	reports []Report
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends a report to the sink. Safe for concurrent use.
func (s *Sink) Add(r Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
}

// Addf is a convenience wrapper that builds a Report from a format string.
func (s *Sink) Addf(sev Severity, kind Kind, at span.Span, format string, args ...any) {
	s.Add(Report{
		Primary:  at,
		Kind:     kind,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Reports returns all accumulated reports sorted by primary span, breaking
// ties by kind then message. Sorting by span makes output deterministic
// regardless of the order concurrent verifier queries completed in.
func (s *Sink) Reports() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Primary.Start != b.Primary.Start {
			return a.Primary.Start < b.Primary.Start
		}
		if a.Primary.End != b.Primary.End {
			return a.Primary.End < b.Primary.End
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Message < b.Message
	})
	return out
}

// HasSeverity reports whether any accumulated report is at least as severe
// as min.
func (s *Sink) HasSeverity(min Severity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reports {
		if r.Severity >= min {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated reports.
func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}
