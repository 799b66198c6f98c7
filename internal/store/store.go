// Package store persists compiled models by key.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/blockmodels/pkg/formats"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// Store errors.
var (
	ErrNotFound    = errors.New("model not found")
	ErrInvalidKey  = errors.New("invalid model key")
	ErrUnknownKind = errors.New("unknown store kind")
)

// Store is a keyed collection of models.
type Store interface {
	Save(key string, m *mesh.Model) error
	Load(key string) (*mesh.Model, error)
	// List returns every key, sorted.
	List() ([]string, error)
	Close() error
}

// Store kinds accepted by Open.
const (
	KindDir    = "dir"
	KindSQLite = "sqlite"
)

// Open opens a store of the given kind. A directory store writes one
// file per model in path using codec; a SQLite store keeps every model
// in the database file at path and always uses the binary codec.
func Open(kind, path string, codec formats.Codec) (Store, error) {
	switch kind {
	case KindDir:
		return NewDirStore(path, codec)
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// checkKey rejects keys that cannot be used as a file stem.
func checkKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
