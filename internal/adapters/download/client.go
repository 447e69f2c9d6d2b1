package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"wortkiste/internal/ports"
)

var _ ports.BlobDownloader = (*Client)(nil)

// Client fetches compressed dictionaries from a static file server
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a Client for blobs published under baseURL
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid download base URL %q", baseURL)
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	client.SetHeader("Accept", "application/gzip, application/octet-stream")

	return &Client{httpClient: client}, nil
}

// Open starts downloading name. The caller must close the returned body.
func (c *Client) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}

	body := res.RawBody()
	if res.StatusCode() != http.StatusOK {
		if body != nil {
			body.Close()
		}
		return nil, fmt.Errorf("status code: %d", res.StatusCode())
	}
	return body, nil
}
