package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Span_Join(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   Span
		expect Span
	}{
		{name: "zero a returns b", a: Zero, b: Span{Start: 1, End: 2}, expect: Span{Start: 1, End: 2}},
		{name: "zero b returns a", a: Span{Start: 1, End: 2}, b: Zero, expect: Span{Start: 1, End: 2}},
		{name: "a entirely before b", a: Span{Start: 0, End: 3}, b: Span{Start: 5, End: 8}, expect: Span{Start: 0, End: 8}},
		{name: "overlapping", a: Span{Start: 2, End: 6}, b: Span{Start: 4, End: 9}, expect: Span{Start: 2, End: 9}},
		{name: "b entirely within a", a: Span{Start: 0, End: 10}, b: Span{Start: 3, End: 5}, expect: Span{Start: 0, End: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			got := tc.a.Join(tc.b)
			assert.Equal(tc.expect.Start, got.Start)
			assert.Equal(tc.expect.End, got.End)
		})
	}
}

func Test_Span_Len(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, Span{Start: 2, End: 7}.Len())
	assert.Equal(0, Span{Start: 7, End: 2}.Len())
	assert.Equal(0, Zero.Len())
}

func Test_Span_IsZero(t *testing.T) {
	assert := assert.New(t)
	assert.True(Zero.IsZero())
	assert.False(Span{Start: 1, End: 1}.IsZero())
}

func Test_Identifier_Equal(t *testing.T) {
	assert := assert.New(t)
	a := Identifier{Name: "x", Span: Span{Start: 0, End: 1}}
	b := Identifier{Name: "x", Span: Span{Start: 10, End: 11}}
	c := Identifier{Name: "y"}

	assert.True(a.Equal(b), "equality ignores span, only compares the name")
	assert.False(a.Equal(c))
}
