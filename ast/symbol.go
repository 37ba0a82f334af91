package ast

import "github.com/folidity/folidity/span"

// UsageKind classifies how a VariableSym came to exist (§3), gating which
// scope contexts may reference it.
type UsageKind int

const (
	UsageParameter UsageKind = iota
	UsageLetBinding
	UsageLoopVar
	UsageStateBinder
	UsageReturnBinder
	UsageAccessAttrBinder
)

func (u UsageKind) String() string {
	switch u {
	case UsageParameter:
		return "parameter"
	case UsageLetBinding:
		return "let-binding"
	case UsageLoopVar:
		return "loop-var"
	case UsageStateBinder:
		return "state-binder"
	case UsageReturnBinder:
		return "return-binder"
	case UsageAccessAttrBinder:
		return "access-attr-binder"
	default:
		return "unknown"
	}
}

// VariableSym is a declared name visible in some scope (§3). AssignedExpr is
// nil for declarations with no initializer (e.g. a bare parameter).
type VariableSym struct {
	ID           int
	Name         string
	Type         Type
	AssignedExpr *Expression
	Usage        UsageKind
	Mutable      bool
	DeclSpan     span.Span
}
