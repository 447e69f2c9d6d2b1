package ports

import (
	"context"
	"io"
)

// BlobDownloader fetches compressed dictionary blobs from a remote origin
type BlobDownloader interface {
	// Open starts downloading the named blob. The caller closes the body.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
