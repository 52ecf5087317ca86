// Package fetch retrieves a single HTML document over HTTP for the analyze
// CLI. It is deliberately not a crawler: one URL in, one document out, with
// transport-level retries.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultTimeout = 30 * time.Second
	maxRetries     = 3
	userAgent      = "pagelift-analyze/0.3"
)

// Client fetches individual documents.
type Client struct {
	rest *resty.Client
}

// New creates a fetcher with retrying transport.
func New() *Client {
	retrying := retryablehttp.NewClient()
	retrying.RetryMax = maxRetries
	retrying.Logger = nil

	rest := resty.NewWithClient(retrying.StandardClient()).
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	return &Client{rest: rest}
}

// Document fetches one URL and returns its HTML body.
func (c *Client) Document(ctx context.Context, url string) (string, error) {
	resp, err := c.rest.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "html") && !strings.Contains(contentType, "xml") {
		return "", fmt.Errorf("fetch %s: unexpected content type %q", url, contentType)
	}
	return string(resp.Body()), nil
}
