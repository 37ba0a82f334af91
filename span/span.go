// Package span gives every syntactic and semantic entity in folidity a
// traceable location in source text.
package span

import "fmt"

// Span is a half-open byte range [Start, End) in a source buffer, plus the
// 1-indexed line/column of Start computed by the lexer for human-readable
// reporting. Byte offsets remain the source of truth for equality; the
// line/column fields exist only to make diagnostics readable.
type Span struct {
	Start, End     int
	Line, Col      int
	File           string
}

// Zero is the span used for synthesized nodes that have no source location
// (e.g. an implicit default value).
var Zero = Span{}

// IsZero reports whether s carries no real source location.
func (s Span) IsZero() bool {
	return s == Zero
}

// Join returns the smallest span covering both s and o. If either is zero,
// the other is returned unchanged.
func (s Span) Join(o Span) Span {
	if s.IsZero() {
		return o
	}
	if o.IsZero() {
		return s
	}
	joined := s
	if o.Start < joined.Start {
		joined.Start = o.Start
		joined.Line = o.Line
		joined.Col = o.Col
	}
	if o.End > joined.End {
		joined.End = o.End
	}
	return joined
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

func (s Span) String() string {
	if s.File == "" {
		return fmt.Sprintf("%d:%d", s.Line, s.Col)
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Col)
}

// Identifier is a name together with the span it was spelled at.
type Identifier struct {
	Span Span
	Name string
}

func (id Identifier) String() string {
	return id.Name
}

func (id Identifier) Equal(o Identifier) bool {
	return id.Name == o.Name
}
