package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wortkiste/internal/adapters/filesystem"
	"wortkiste/internal/application"
)

type fakeDownloader struct {
	blobs map[string][]byte
	calls []string
}

func (d *fakeDownloader) Open(_ context.Context, name string) (io.ReadCloser, error) {
	d.calls = append(d.calls, name)
	blob, ok := d.blobs[name]
	if !ok {
		return nil, errors.New("404 Not Found")
	}
	return io.NopCloser(bytes.NewReader(blob)), nil
}

func TestFetchCommand(t *testing.T) {
	t.Run("writes blob into data directory", func(t *testing.T) {
		dir := t.TempDir()
		dl := &fakeDownloader{blobs: map[string][]byte{"dictionary_de.db.gz": []byte("blob")}}
		cmd := NewFetchCommand(dl, filesystem.NewStore(), fixedDir(dir), "de")

		result, err := cmd.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "dictionary_de.db.gz"), result.Path)
		assert.Equal(t, int64(4), result.BytesWritten)
		assert.Equal(t, "Downloaded dictionary_de.db.gz (4 bytes)", result.Message)

		content, err := os.ReadFile(result.Path)
		require.NoError(t, err)
		assert.Equal(t, "blob", string(content))
	})

	t.Run("download failure", func(t *testing.T) {
		dir := t.TempDir()
		cmd := NewFetchCommand(&fakeDownloader{}, filesystem.NewStore(), fixedDir(dir), "xx")

		_, err := cmd.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.NoFileExists(t, filepath.Join(dir, "dictionary_xx.db.gz"))
	})

	t.Run("no downloader configured", func(t *testing.T) {
		cmd := NewFetchCommand(nil, filesystem.NewStore(), fixedDir(t.TempDir()), "de")
		err := cmd.Validate()

		var ve *application.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "baseURL", ve.Field)
	})

	t.Run("invalid language", func(t *testing.T) {
		cmd := NewFetchCommand(&fakeDownloader{}, filesystem.NewStore(), fixedDir(t.TempDir()), "../etc")
		assert.Error(t, cmd.Validate())
	})
}

func TestEnsureOrFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("downloads when nothing is local", func(t *testing.T) {
		dir := t.TempDir()
		payload := []byte("sqlite bytes")
		dl := &fakeDownloader{blobs: map[string][]byte{"dictionary_de.db.gz": gzipBytes(t, payload)}}
		m, _ := newTestMaterializer(t, dir)

		status, err := EnsureOrFetch(ctx, m, NewFetchCommand(dl, filesystem.NewStore(), fixedDir(dir), "de"))
		require.NoError(t, err)
		assert.True(t, status.Exists)
		assert.Equal(t, int64(len(payload)), status.BytesWritten)
		assert.Contains(t, status.Logs, "dictionary_de.db.gz not found in any location")
		assert.Contains(t, status.Logs, fmt.Sprintf("Downloaded dictionary_de.db.gz (%d bytes)", len(dl.blobs["dictionary_de.db.gz"])))
		assert.Equal(t, "Dictionary ready", status.Logs[len(status.Logs)-1])
	})

	t.Run("skips download when present", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dictionary_de.db"), []byte("x"), 0644))
		dl := &fakeDownloader{}
		m, _ := newTestMaterializer(t, dir)

		status, err := EnsureOrFetch(ctx, m, NewFetchCommand(dl, filesystem.NewStore(), fixedDir(dir), "de"))
		require.NoError(t, err)
		assert.True(t, status.Exists)
		assert.Empty(t, dl.calls)
	})
}
