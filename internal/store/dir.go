package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Faultbox/blockmodels/pkg/formats"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// DirStore keeps one file per model in a directory, named
// <key><codec extension>.
type DirStore struct {
	dir   string
	codec formats.Codec
}

// NewDirStore creates dir if needed and returns a store writing with
// codec.
func NewDirStore(dir string, codec formats.Codec) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating model directory: %w", err)
	}
	return &DirStore{dir: dir, codec: codec}, nil
}

// Dir returns the store's directory.
func (s *DirStore) Dir() string { return s.dir }

// Path returns the file a key is stored in.
func (s *DirStore) Path(key string) string {
	return filepath.Join(s.dir, key+s.codec.Ext())
}

// Save encodes m and writes it under key, replacing any existing file.
func (s *DirStore) Save(key string, m *mesh.Model) error {
	if err := checkKey(key); err != nil {
		return err
	}
	data, err := s.codec.Encode(m)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := os.WriteFile(s.Path(key), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Load reads and decodes the model stored under key.
func (s *DirStore) Load(key string) (*mesh.Model, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	m, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return m, nil
}

// List returns the stems of the files with the codec's extension.
func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}
	ext := s.codec.Ext()
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(keys)
	return keys, nil
}

// Close does nothing.
func (s *DirStore) Close() error { return nil }
