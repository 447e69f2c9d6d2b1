package commands

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"wortkiste/internal/application"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// DataDirFunc resolves the writable application data directory
type DataDirFunc func() (string, error)

// Materializer ensures decompressed dictionary databases exist in the data
// directory. It is safe for concurrent use: calls for the same language
// share one materialization.
type Materializer struct {
	sources []ports.AssetSource
	store   ports.DictionaryStore
	dataDir DataDirFunc
	logger  logrus.FieldLogger

	group singleflight.Group
}

// NewMaterializer creates a Materializer. Sources are tried in order; the
// data directory is always checked last for a previously downloaded blob.
func NewMaterializer(store ports.DictionaryStore, dataDir DataDirFunc, logger logrus.FieldLogger, sources ...ports.AssetSource) *Materializer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Materializer{
		sources: sources,
		store:   store,
		dataDir: dataDir,
		logger:  logger,
	}
}

// Ensure makes sure dictionary_<language>.db exists. A dictionary that cannot
// be found anywhere is reported with Exists false and no error, so callers
// can download the blob and retry.
func (m *Materializer) Ensure(ctx context.Context, language string) (*domain.DictionaryStatus, error) {
	if err := application.ValidateLanguage(language); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, err, _ := m.group.Do(language, func() (any, error) {
		return m.ensure(language)
	})
	if err != nil {
		return nil, err
	}

	// Shared results must not alias the trace slice
	status := *v.(*domain.DictionaryStatus)
	status.Logs = append([]string(nil), status.Logs...)
	return &status, nil
}

func (m *Materializer) ensure(language string) (*domain.DictionaryStatus, error) {
	tr := newTrace(m.logger.WithField("language", language))

	dir, err := m.dataDir()
	if err != nil {
		tr.addf("ERROR: failed to get app data dir: %v", err)
		return nil, tr.fail(language, "resolve data directory", err)
	}
	dbPath := filepath.Join(dir, domain.DatabaseFileName(language))

	exists, err := m.store.Exists(dbPath)
	if err != nil {
		tr.addf("ERROR: failed to check %s: %v", dbPath, err)
		return nil, tr.fail(language, "check dictionary", err)
	}
	if exists {
		tr.addf("Dictionary already exists at %s, using cached version", dbPath)
		return tr.status(dbPath, 0), nil
	}

	blobName := domain.BlobFileName(language)
	tr.addf("Dictionary not found at %s, searching for %s", dbPath, blobName)

	blob, found := m.findBlob(tr, dir, blobName)
	if !found {
		tr.addf("%s not found in any location", blobName)
		return &domain.DictionaryStatus{Logs: tr.lines}, nil
	}
	tr.addf("Loaded %d bytes (%d MB)", len(blob), len(blob)/1_000_000)

	tr.addf("Decompressing...")
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		tr.addf("ERROR: failed to decompress: %v", err)
		return nil, tr.fail(language, "decompress dictionary", err)
	}
	defer gz.Close()

	src := &streamReader{r: gz}
	n, err := m.store.WriteFile(dbPath, src)
	if src.err != nil {
		tr.addf("ERROR: failed to decompress: %v", src.err)
		return nil, tr.fail(language, "decompress dictionary", src.err)
	}
	if err != nil {
		tr.addf("ERROR: failed to write dictionary: %v", err)
		return nil, tr.fail(language, "write dictionary", err)
	}

	tr.addf("Successfully decompressed %d bytes (%d MB)", n, n/1_000_000)
	tr.addf("Dictionary saved to %s", dbPath)
	tr.addf("Dictionary ready")
	return tr.status(dbPath, n), nil
}

// findBlob walks the configured sources, then the data directory, and stops
// at the first readable candidate
func (m *Materializer) findBlob(tr *trace, dataDir, blobName string) ([]byte, bool) {
	for _, src := range m.sources {
		candidates := src.Candidates(blobName)
		if len(candidates) == 0 {
			tr.addf("No candidates from %s", src.Label())
			continue
		}
		for _, path := range candidates {
			tr.addf("Trying %s: %s", src.Label(), path)
			blob, err := src.ReadAsset(path)
			if found, ok := tr.checkRead(src.Label(), path, blob, err); ok {
				return found, true
			}
		}
	}

	path := filepath.Join(dataDir, blobName)
	tr.addf("Trying downloaded: %s", path)
	blob, err := m.store.ReadFile(path)
	return tr.checkRead("downloaded", path, blob, err)
}

// streamReader remembers the first read error of the decompressed stream so
// it can be told apart from write errors on the destination
type streamReader struct {
	r   io.Reader
	err error
}

func (s *streamReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	return n, err
}

// trace collects the human-readable steps of one Ensure call and mirrors
// each to the logger at debug level
type trace struct {
	lines  []string
	logger logrus.FieldLogger
}

func newTrace(logger logrus.FieldLogger) *trace {
	return &trace{logger: logger}
}

func (t *trace) addf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	t.lines = append(t.lines, line)
	t.logger.Debug(line)
}

func (t *trace) checkRead(label, path string, blob []byte, err error) ([]byte, bool) {
	switch {
	case err == nil:
		t.addf("Found via %s: %s", label, path)
		return blob, true
	case errors.Is(err, fs.ErrNotExist):
		t.addf("Not found: %s", path)
	default:
		t.addf("Error reading %s: %v", path, err)
	}
	return nil, false
}

func (t *trace) status(path string, written int64) *domain.DictionaryStatus {
	return &domain.DictionaryStatus{
		Version:      domain.DictionaryVersion,
		Path:         path,
		Exists:       true,
		Logs:         t.lines,
		BytesWritten: written,
	}
}

func (t *trace) fail(language, op string, err error) error {
	return &application.MaterializeError{
		Language: language,
		Op:       op,
		Logs:     t.lines,
		Err:      err,
	}
}
