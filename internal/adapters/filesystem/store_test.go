package filesystem

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Exists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	path := filepath.Join(dir, "dictionary_de.db")
	exists, err := store.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("db"), 0644))
	exists, err = store.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.Exists(dir)
	assert.Error(t, err)
}

func TestStore_WriteFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()
	path := filepath.Join(dir, "nested", "dictionary_de.db")

	n, err := store.WriteFile(path, strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	// Overwrite replaces the content
	_, err = store.WriteFile(path, strings.NewReader("bye"))
	require.NoError(t, err)
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bye", string(got))

	assertNoTempFiles(t, filepath.Dir(path))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broken")
}

func TestStore_WriteFile_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()
	path := filepath.Join(dir, "dictionary_de.db")

	_, err := store.WriteFile(path, io.MultiReader(strings.NewReader("partial"), failingReader{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream broken")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	assertNoTempFiles(t, dir)
}

func TestPack(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dictionary_de.db")
	content := bytes.Repeat([]byte("SQLite format 3\x00"), 4096)
	require.NoError(t, os.WriteFile(src, content, 0644))

	dst := filepath.Join(dir, "out", "dictionary_de.db.gz")
	n, err := Pack(src, dst)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), n)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	got, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestPack_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Pack(filepath.Join(dir, "missing.db"), filepath.Join(dir, "missing.db.gz"))
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "missing.db.gz"))
	assert.True(t, os.IsNotExist(statErr))
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}
