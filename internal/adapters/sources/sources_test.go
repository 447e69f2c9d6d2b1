package sources

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSSource_Candidates(t *testing.T) {
	tests := []struct {
		name     string
		prefixes []string
		expected []string
	}{
		{
			name:     "root only by default",
			expected: []string{"dictionary_de.db.gz"},
		},
		{
			name:     "packaging layouts in order",
			prefixes: []string{"", "_up_/public", "public"},
			expected: []string{"dictionary_de.db.gz", "_up_/public/dictionary_de.db.gz", "public/dictionary_de.db.gz"},
		},
		{
			name:     "duplicates collapse",
			prefixes: []string{"public", "public/", "./public"},
			expected: []string{"public/dictionary_de.db.gz"},
		},
		{
			name:     "escaping prefixes are dropped",
			prefixes: []string{"../outside", "public"},
			expected: []string{"public/dictionary_de.db.gz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewFSSource("bundle", fstest.MapFS{}, tt.prefixes...)
			if diff := cmp.Diff(tt.expected, src.Candidates("dictionary_de.db.gz")); diff != "" {
				t.Fatalf("Candidates (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFSSource_ReadAsset(t *testing.T) {
	fsys := fstest.MapFS{
		"public/dictionary_de.db.gz": {Data: []byte("blob")},
	}
	src := NewFSSource("bundle", fsys, "", "public")

	got, err := src.ReadAsset("public/dictionary_de.db.gz")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), got)

	_, err = src.ReadAsset("dictionary_de.db.gz")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "bundle", src.Label())
}

func TestDirSource(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "public"), 0755))
	blobPath := filepath.Join(base, "public", "dictionary_fr.db.gz")
	require.NoError(t, os.WriteFile(blobPath, []byte("gz"), 0644))

	src := NewDirSource("dev", base, "public", "../public")

	candidates := src.Candidates("dictionary_fr.db.gz")
	require.Len(t, candidates, 2)
	assert.Equal(t, blobPath, candidates[0])
	assert.Equal(t, filepath.Join(filepath.Dir(base), "public", "dictionary_fr.db.gz"), candidates[1])

	got, err := src.ReadAsset(candidates[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("gz"), got)

	_, err = src.ReadAsset(candidates[1])
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDirSource_UnresolvableBase(t *testing.T) {
	src := newDirSource("dev", func() (string, error) {
		return "", errors.New("no executable")
	}, []string{"../public"})

	assert.Empty(t, src.Candidates("dictionary_fr.db.gz"))
}

func TestExecutableSource(t *testing.T) {
	src := NewExecutableSource("dev", "../public")
	exe, err := os.Executable()
	require.NoError(t, err)

	candidates := src.Candidates("dictionary_fr.db.gz")
	require.Len(t, candidates, 1)
	assert.Equal(t, filepath.Join(filepath.Dir(exe), "..", "public", "dictionary_fr.db.gz"), candidates[0])
}
