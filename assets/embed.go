// Package assets provides the dictionary blobs bundled into the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:dictionaries
var bundle embed.FS

// Bundle returns the bundled assets rooted at the dictionaries directory.
// Packaging drops dictionary_<lang>.db.gz files there before building.
func Bundle() fs.FS {
	sub, err := fs.Sub(bundle, "dictionaries")
	if err != nil {
		// fs.Sub only fails on an invalid path literal
		panic(err)
	}
	return sub
}
