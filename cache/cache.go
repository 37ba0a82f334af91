// Package cache implements the compilation cache (SPEC_FULL.md §4.6 NEW):
// a compiled program's bytecode and manifest are stored keyed by a content
// hash of its source plus the config that produced it, so an unchanged
// source/config pair can skip straight to the emitter's output instead of
// re-running the pipeline. Store is the repository interface, inmem and
// sqlite its two backends, grounded on the teacher's dao.Store split
// across server/dao, server/dao/inmem, and server/dao/sqlite.
package cache

import (
	"context"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Entry is one cached compilation result.
type Entry struct {
	Key      string
	Bytecode []byte
	Manifest []byte
}

// Store holds cached Entry values keyed by content hash.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, entry Entry) error
	Close() error
}

// Key hashes source together with a config fingerprint into the cache key,
// using BLAKE2b (§4.5's content-addressing hash, reused here so the cache
// key and the emitted manifest's content address are computed the same
// way).
func Key(source []byte, configFingerprint string) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	h.Write(source)
	h.Write([]byte{0})
	h.Write([]byte(configFingerprint))
	return hex.EncodeToString(h.Sum(nil)), nil
}
