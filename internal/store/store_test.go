package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/blockmodels/internal/models"
	"github.com/Faultbox/blockmodels/internal/rig"
	"github.com/Faultbox/blockmodels/pkg/formats"
	"github.com/Faultbox/blockmodels/pkg/mesh"
)

func compiled(t *testing.T, name string) *mesh.Model {
	t.Helper()
	e, ok := models.Find(name)
	require.True(t, ok, name)
	src, err := e.Build()
	require.NoError(t, err)
	m, err := rig.Compile(src, e.Name, e.Scale)
	require.NoError(t, err)
	return m
}

type opener func(t *testing.T) Store

func stores() map[string]opener {
	out := map[string]opener{
		"sqlite": func(t *testing.T) Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "models.db"))
			require.NoError(t, err)
			return s
		},
		"sqlite-memory": func(t *testing.T) Store {
			s, err := OpenSQLite("")
			require.NoError(t, err)
			return s
		},
	}
	for _, c := range formats.Codecs() {
		c := c
		out["dir-"+c.Name()] = func(t *testing.T) Store {
			s, err := NewDirStore(filepath.Join(t.TempDir(), "models"), c)
			require.NoError(t, err)
			return s
		}
	}
	return out
}

func TestStoreRoundTrip(t *testing.T) {
	pig := compiled(t, "Pig")
	slime := compiled(t, "HugeSlime")

	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			keys, err := s.List()
			require.NoError(t, err)
			assert.Empty(t, keys)

			require.NoError(t, s.Save("Pig", pig))
			require.NoError(t, s.Save("HugeSlime", slime))

			keys, err = s.List()
			require.NoError(t, err)
			assert.Equal(t, []string{"HugeSlime", "Pig"}, keys)

			got, err := s.Load("HugeSlime")
			require.NoError(t, err)
			assert.Equal(t, "Huge Slime", got.Name)
			assert.Equal(t, slime.FaceCount(), got.FaceCount())
			assert.Equal(t, slime.Meshes[0].Faces[0], got.Meshes[0].Faces[0])
			assert.Equal(t, slime.Meshes[4].Pivot, got.Meshes[4].Pivot)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	pig := compiled(t, "Pig")
	cow := compiled(t, "Cow")

	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			require.NoError(t, s.Save("Farm", pig))
			require.NoError(t, s.Save("Farm", cow))

			got, err := s.Load("Farm")
			require.NoError(t, err)
			assert.Equal(t, "Cow", got.Name)

			keys, err := s.List()
			require.NoError(t, err)
			assert.Equal(t, []string{"Farm"}, keys)
		})
	}
}

func TestStoreErrors(t *testing.T) {
	pig := compiled(t, "Pig")

	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, err := s.Load("Dragon")
			assert.ErrorIs(t, err, ErrNotFound)

			for _, key := range []string{"", "..", "a/b", `a\b`} {
				assert.ErrorIs(t, s.Save(key, pig), ErrInvalidKey, key)
				_, err := s.Load(key)
				assert.ErrorIs(t, err, ErrInvalidKey, key)
			}
		})
	}
}

func TestDirStoreFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "models")
	s, err := NewDirStore(dir, formats.YAML{})
	require.NoError(t, err)

	require.NoError(t, s.Save("Sheep Fur", compiled(t, "Sheep Fur")))
	assert.Equal(t, filepath.Join(dir, "Sheep Fur.yaml"), s.Path("Sheep Fur"))

	info, err := os.Stat(s.Path("Sheep Fur"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm()&0644)

	// Files of other formats and subdirectories are not listed.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Pig.toml"), []byte("name = 'Pig'"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Cow.yaml"), 0755))

	keys, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheep Fur"}, keys)
}

func TestDirStoreCorruptFile(t *testing.T) {
	s, err := NewDirStore(t.TempDir(), formats.Binary{})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path("Broken"), []byte("GRSM\x01\x05"), 0644))

	_, err = s.Load("Broken")
	assert.ErrorIs(t, err, formats.ErrInvalidModelMagic)
}

func TestSQLiteStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("Ghast", compiled(t, "Ghast")))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	m, err := reopened.Load("Ghast")
	require.NoError(t, err)
	assert.Len(t, m.Meshes, 10)
}

func TestOpen(t *testing.T) {
	s, err := Open(KindDir, t.TempDir(), formats.TOML{})
	require.NoError(t, err)
	assert.IsType(t, &DirStore{}, s)

	s, err = Open(KindSQLite, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open("s3", "", nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
