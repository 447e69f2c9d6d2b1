package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-dictzip"
)

// Pack compresses the file at src into a dictzip blob at dst. Dictzip output
// is plain gzip with a random-access index in the header, so the
// materializer can read it like any other blob.
func Pack(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	n, err := compress(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return n, fmt.Errorf("failed to pack %s: %w", src, err)
	}
	return n, nil
}

func compress(out *os.File, in io.Reader) (int64, error) {
	z, err := dictzip.NewWriter(out)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(z, in)
	if cerr := z.Close(); err == nil {
		err = cerr
	}
	return n, err
}
