package inmem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/cache"
)

func Test_Store_PutGetRoundTrip(t *testing.T) {
	assert := assert.New(t)

	s := NewStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	assert.NoError(err)
	assert.False(ok)

	entry := cache.Entry{Key: "k1", Bytecode: []byte("approval bytes"), Manifest: []byte("manifest")}
	assert.NoError(s.Put(ctx, entry))

	got, ok, err := s.Get(ctx, "k1")
	assert.NoError(err)
	if assert.True(ok) {
		assert.Equal(entry, got)
	}
}

func Test_Store_PutOverwritesSameKey(t *testing.T) {
	assert := assert.New(t)

	s := NewStore()
	ctx := context.Background()

	assert.NoError(s.Put(ctx, cache.Entry{Key: "k1", Bytecode: []byte("v1")}))
	assert.NoError(s.Put(ctx, cache.Entry{Key: "k1", Bytecode: []byte("v2")}))

	got, ok, err := s.Get(ctx, "k1")
	assert.NoError(err)
	if assert.True(ok) {
		assert.Equal([]byte("v2"), got.Bytecode)
	}
}

func Test_Store_Close(t *testing.T) {
	assert := assert.New(t)

	s := NewStore()
	ctx := context.Background()
	assert.NoError(s.Put(ctx, cache.Entry{Key: "k1", Bytecode: []byte("v1")}))
	assert.NoError(s.Close())

	_, ok, err := s.Get(ctx, "k1")
	assert.NoError(err)
	assert.False(ok)
}
