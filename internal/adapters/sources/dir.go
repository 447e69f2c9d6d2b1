package sources

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

// DirSource reads blobs from directories relative to a base directory on
// disk. The base is resolved lazily on every lookup.
type DirSource struct {
	label    string
	base     func() (string, error)
	prefixes []string
}

// NewDirSource creates a source rooted at a fixed directory
func NewDirSource(label, base string, prefixes ...string) *DirSource {
	return newDirSource(label, func() (string, error) { return base, nil }, prefixes)
}

// NewExecutableSource creates a source relative to the running binary. It
// covers development layouts where assets sit next to the build output
// instead of being bundled.
func NewExecutableSource(label string, prefixes ...string) *DirSource {
	return newDirSource(label, func() (string, error) {
		exe, err := os.Executable()
		if err != nil {
			return "", err
		}
		return filepath.Dir(exe), nil
	}, prefixes)
}

func newDirSource(label string, base func() (string, error), prefixes []string) *DirSource {
	if len(prefixes) == 0 {
		prefixes = []string{"."}
	}
	return &DirSource{
		label:    label,
		base:     base,
		prefixes: prefixes,
	}
}

// Label returns the source name used in traces
func (s *DirSource) Label() string {
	return s.label
}

// Candidates returns the blob path under every prefix. An unresolvable base
// yields no candidates.
func (s *DirSource) Candidates(blob string) []string {
	base, err := s.base()
	if err != nil || base == "" {
		return nil
	}
	return lo.Uniq(lo.Map(s.prefixes, func(prefix string, _ int) string {
		return filepath.Join(base, prefix, blob)
	}))
}

// ReadAsset reads the whole file
func (s *DirSource) ReadAsset(path string) ([]byte, error) {
	return os.ReadFile(path)
}
