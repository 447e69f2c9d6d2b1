package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"wortkiste/internal/ports"
)

var _ ports.Translator = (*Client)(nil)

// Client talks to a LibreTranslate compatible server
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type response struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// NewClient creates a Client for the server at baseURL. apiKey may be empty
// for servers that do not require one.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid translate base URL %q", baseURL)
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	client.SetHeader("Accept", "application/json")

	return &Client{httpClient: client, apiKey: apiKey}, nil
}

// Translate translates text from source to target. Use "auto" as source to
// let the server detect the language.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request{
			Q:      text,
			Source: source,
			Target: target,
			Format: "text",
			APIKey: c.apiKey,
		}).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("client.R.Post > %w", err)
	}

	var resp response
	decodeErr := json.Unmarshal(res.Body(), &resp)
	if res.StatusCode() != http.StatusOK {
		if resp.Error != "" {
			return "", fmt.Errorf("status code: %d, error: %s", res.StatusCode(), resp.Error)
		}
		return "", fmt.Errorf("status code: %d", res.StatusCode())
	}
	if decodeErr != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", decodeErr)
	}

	translated := strings.TrimSpace(resp.TranslatedText)
	if translated == "" {
		return "", errors.New("empty translation in response")
	}
	return translated, nil
}
