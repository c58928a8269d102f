package kv

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is the keyed-record repository every feature persists through.
// Values are whole JSON documents stored under plain string keys, which
// keeps the backend swappable (per-key files, embedded SQLite) without
// touching feature logic. A value of unexpected shape surfaces as an
// error from Get; callers fall back to their seed data and overwrite.
type Store interface {
	Get(key string, into any) error
	Put(key string, value any) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

// Open selects a backend by name: "sqlite" opens an embedded database at
// path, anything else uses the per-key JSON file layout under path.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case "sqlite", "sqlite3":
		return OpenSQLite(path)
	default:
		return NewFileStore(path)
	}
}
