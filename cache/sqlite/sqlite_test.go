package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folidity/folidity/cache"
)

func Test_Store_PutGetRoundTrip(t *testing.T) {
	assert := assert.New(t)

	s, err := NewStore(t.TempDir())
	assert.NoError(err)
	defer s.Close()

	ctx := context.Background()
	_, ok, err := s.Get(ctx, "missing")
	assert.NoError(err)
	assert.False(ok)

	entry := cache.Entry{Key: "k1", Bytecode: []byte("approval program text"), Manifest: []byte("signed manifest")}
	assert.NoError(s.Put(ctx, entry))

	got, ok, err := s.Get(ctx, "k1")
	assert.NoError(err)
	if assert.True(ok) {
		assert.Equal(entry, got)
	}
}

func Test_Store_PutUpsertsOnConflict(t *testing.T) {
	assert := assert.New(t)

	s, err := NewStore(t.TempDir())
	assert.NoError(err)
	defer s.Close()

	ctx := context.Background()
	assert.NoError(s.Put(ctx, cache.Entry{Key: "k1", Bytecode: []byte("v1")}))
	assert.NoError(s.Put(ctx, cache.Entry{Key: "k1", Bytecode: []byte("v2")}))

	got, ok, err := s.Get(ctx, "k1")
	assert.NoError(err)
	if assert.True(ok) {
		assert.Equal([]byte("v2"), got.Bytecode)
	}
}

func Test_NewStore_reopensExistingDatabase(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	ctx := context.Background()

	s1, err := NewStore(dir)
	assert.NoError(err)
	assert.NoError(s1.Put(ctx, cache.Entry{Key: "k1", Bytecode: []byte("persisted")}))
	assert.NoError(s1.Close())

	s2, err := NewStore(dir)
	assert.NoError(err)
	defer s2.Close()

	got, ok, err := s2.Get(ctx, "k1")
	assert.NoError(err)
	if assert.True(ok) {
		assert.Equal([]byte("persisted"), got.Bytecode)
	}
}
