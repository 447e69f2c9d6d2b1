package sources

import (
	"io/fs"
	"path"

	"github.com/samber/lo"
)

// FSSource reads blobs from an fs.FS such as the embedded asset bundle.
// Prefixes cover packaging layouts that nest assets differently.
type FSSource struct {
	label    string
	fsys     fs.FS
	prefixes []string
}

// NewFSSource creates a source over fsys. With no prefixes only the root is
// searched.
func NewFSSource(label string, fsys fs.FS, prefixes ...string) *FSSource {
	if len(prefixes) == 0 {
		prefixes = []string{""}
	}
	return &FSSource{
		label:    label,
		fsys:     fsys,
		prefixes: prefixes,
	}
}

// Label returns the source name used in traces
func (s *FSSource) Label() string {
	return s.label
}

// Candidates returns the blob path under every prefix, in order
func (s *FSSource) Candidates(blob string) []string {
	paths := lo.Map(s.prefixes, func(prefix string, _ int) string {
		return path.Join(prefix, blob)
	})
	return lo.Filter(lo.Uniq(paths), func(p string, _ int) bool {
		return fs.ValidPath(p)
	})
}

// ReadAsset reads the whole asset
func (s *FSSource) ReadAsset(name string) ([]byte, error) {
	return fs.ReadFile(s.fsys, name)
}
