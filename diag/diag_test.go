package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/span"
)

func Test_Sink_ReportsAreSortedBySpanThenKindThenMessage(t *testing.T) {
	assert := assert.New(t)

	s := NewSink()
	s.Addf(Error, KindTypeMismatch, span.Span{Start: 10, End: 12}, "b")
	s.Addf(Error, KindCycle, span.Span{Start: 5, End: 6}, "a")
	s.Addf(Warning, KindDuplicateName, span.Span{Start: 10, End: 12}, "a")

	reports := s.Reports()
	if assert.Len(reports, 3) {
		assert.Equal(span.Span{Start: 5, End: 6}, reports[0].Primary)
		assert.Equal(KindDuplicateName, reports[1].Kind)
		assert.Equal(KindTypeMismatch, reports[2].Kind)
	}
}

func Test_Sink_HasSeverity(t *testing.T) {
	assert := assert.New(t)

	s := NewSink()
	assert.False(s.HasSeverity(Info))

	s.Addf(Warning, KindUnreachableCode, span.Zero, "heads up")
	assert.True(s.HasSeverity(Info))
	assert.True(s.HasSeverity(Warning))
	assert.False(s.HasSeverity(Error))

	s.Addf(Error, KindCycle, span.Zero, "broken")
	assert.True(s.HasSeverity(Error))
}

func Test_Sink_Len(t *testing.T) {
	assert := assert.New(t)

	s := NewSink()
	assert.Equal(0, s.Len())
	s.Addf(Info, KindCycle, span.Zero, "x")
	assert.Equal(1, s.Len())
}

func Test_Report_StringIncludesNoteAndRelated(t *testing.T) {
	assert := assert.New(t)

	r := Report{
		Primary:  span.Span{Start: 1, End: 2},
		Kind:     KindCycle,
		Severity: Error,
		Message:  "cycle detected",
		Note:     "see the other declaration",
		Related: []Report{
			{Primary: span.Span{Start: 3, End: 4}, Kind: KindCycle, Severity: Error, Message: "here"},
		},
	}

	out := r.String()
	assert.Contains(out, "cycle detected")
	assert.Contains(out, "note:")
	assert.Contains(out, "also:")
}
