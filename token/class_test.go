package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Class_Equal(t *testing.T) {
	assert := assert.New(t)

	assert.True(KwStruct.Equal(KwStruct))
	assert.True(KwStruct.Equal(MakeClass("struct")))
	assert.False(KwStruct.Equal(KwEnum))
	assert.False(KwStruct.Equal("struct"), "a bare string is not a Class")
}

func Test_Class_IDIsLowerCased(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("struct", KwStruct.ID())
	assert.Equal("@init", KwInit.ID())
}

func Test_Keywords_mapsEverySpellingToItsClass(t *testing.T) {
	assert := assert.New(t)

	for spelling, class := range Keywords {
		got, ok := Keywords[spelling]
		if assert.True(ok) {
			assert.True(class.Equal(MakeClass(spelling)), "keyword %q maps to class %q", spelling, got.ID())
		}
	}
}
