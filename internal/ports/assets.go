package ports

import "io"

// AssetSource is one place a compressed dictionary blob may live
type AssetSource interface {
	// Label names the source in trace output (e.g. "bundle", "dev")
	Label() string

	// Candidates lists the paths to try for a blob, in order
	Candidates(blob string) []string

	// ReadAsset returns the full contents at path. A missing asset yields
	// an error wrapping fs.ErrNotExist.
	ReadAsset(path string) ([]byte, error)
}

// DictionaryStore is the writable data directory holding materialized files
type DictionaryStore interface {
	Exists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)

	// WriteFile atomically replaces path with everything read from r and
	// returns the number of bytes written
	WriteFile(path string, r io.Reader) (int64, error)
}
