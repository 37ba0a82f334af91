// Package sqlite is a cache.Store backed by a single SQLite table, grounded
// on the teacher's server/dao/sqlite package: the same sql.Open("sqlite", ...)
// driver setup, the same init()-as-migration convention, and the same
// sqlite.Error/ErrorCodeString translation for driver errors.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dekarrin/rezi"
	"github.com/folidity/folidity/cache"
	"modernc.org/sqlite"
)

type store struct {
	db *sql.DB
}

// NewStore opens (creating if necessary) a cache database file under dataDir.
func NewStore(dataDir string) (cache.Store, error) {
	fileName := filepath.Join(dataDir, "cache.db")

	db, err := sql.Open("sqlite", fileName)
	if err != nil {
		return nil, wrapDBError(err)
	}

	st := &store{db: db}
	if err := st.init(); err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

func (s *store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		key TEXT NOT NULL PRIMARY KEY,
		bytecode BLOB NOT NULL,
		manifest BLOB NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (s *store) Get(ctx context.Context, key string) (cache.Entry, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT bytecode, manifest FROM entries WHERE key = ?;`, key)

	var encoded []byte
	var manifest []byte
	if err := row.Scan(&encoded, &manifest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cache.Entry{}, false, nil
		}
		return cache.Entry{}, false, wrapDBError(err)
	}

	var bytecode []byte
	n, err := rezi.DecBinary(encoded, &bytecode)
	if err != nil {
		return cache.Entry{}, false, fmt.Errorf("cache: decode entry %s: %w", key, err)
	}
	if n != len(encoded) {
		return cache.Entry{}, false, fmt.Errorf("cache: decode entry %s: consumed %d/%d bytes", key, n, len(encoded))
	}

	return cache.Entry{Key: key, Bytecode: bytecode, Manifest: manifest}, true, nil
}

func (s *store) Put(ctx context.Context, entry cache.Entry) error {
	encoded := rezi.EncBinary(entry.Bytecode)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (key, bytecode, manifest) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET bytecode = excluded.bytecode, manifest = excluded.manifest;`,
		entry.Key, encoded, entry.Manifest,
	)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 {
			return fmt.Errorf("cache: constraint violation: %w", err)
		}
		return fmt.Errorf("cache: %s", sqlite.ErrorCodeString[sqliteErr.Code()])
	}
	return err
}
