package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"wortkiste/internal/application"
	"wortkiste/internal/domain"
	"wortkiste/internal/ports"
)

// FetchResult contains the result of downloading a dictionary blob
type FetchResult struct {
	Path         string
	BytesWritten int64
	Message      string
}

// FetchCommand downloads a dictionary blob into the data directory, where
// the materializer picks it up as its last candidate
type FetchCommand struct {
	downloader ports.BlobDownloader
	store      ports.DictionaryStore
	dataDir    DataDirFunc
	Language   string
}

// NewFetchCommand creates a new FetchCommand
func NewFetchCommand(downloader ports.BlobDownloader, store ports.DictionaryStore, dataDir DataDirFunc, language string) *FetchCommand {
	return &FetchCommand{
		downloader: downloader,
		store:      store,
		dataDir:    dataDir,
		Language:   language,
	}
}

// Validate checks if the fetch operation is valid
func (c *FetchCommand) Validate() error {
	if err := application.ValidateLanguage(c.Language); err != nil {
		return err
	}
	if c.downloader == nil {
		return &application.ValidationError{
			Field:   "baseURL",
			Message: fmt.Sprintf("download %v: set download.base_url", application.ErrNotConfigured),
		}
	}
	return nil
}

// Execute runs the fetch command
func (c *FetchCommand) Execute(ctx context.Context) (*FetchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.dataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get app data dir: %w", err)
	}

	name := domain.BlobFileName(c.Language)
	body, err := c.downloader.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", name, err)
	}
	defer body.Close()

	path := filepath.Join(dir, name)
	n, err := c.store.WriteFile(path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", name, err)
	}

	return &FetchResult{
		Path:         path,
		BytesWritten: n,
		Message:      fmt.Sprintf("Downloaded %s (%d bytes)", name, n),
	}, nil
}

// EnsureOrFetch materializes the dictionary, downloading the blob first when
// no local candidate exists
func EnsureOrFetch(ctx context.Context, m *Materializer, fetch *FetchCommand) (*domain.DictionaryStatus, error) {
	status, err := m.Ensure(ctx, fetch.Language)
	if err != nil || status.Exists {
		return status, err
	}

	fetched, err := fetch.Execute(ctx)
	if err != nil {
		return nil, err
	}

	retry, err := m.Ensure(ctx, fetch.Language)
	if err != nil {
		return nil, err
	}
	logs := append(status.Logs, fetched.Message)
	retry.Logs = append(logs, retry.Logs...)
	return retry, nil
}
