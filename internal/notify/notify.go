// Package notify posts intake trails to an external form-inbox endpoint.
//
// The channel is advisory only: callers treat every error as non-fatal and
// the job-creation transaction never waits on it.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const httpTimeout = 15 * time.Second

// Client posts flat string-keyed field sets to a fixed endpoint. The body is
// an open field list, not a fixed schema — new fields can be appended
// without breaking the receiver.
//
// If the endpoint is empty, Send returns nil gracefully — the service simply
// runs without an email trail.
type Client struct {
	endpoint string
	client   *http.Client
}

// New constructs a Client with a shared HTTP client.
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: httpTimeout},
	}
}

// Send posts the fields form-encoded. A non-2xx response is an error so the
// caller can log it, nothing more.
func (c *Client) Send(ctx context.Context, fields map[string]string) error {
	if c.endpoint == "" {
		return nil
	}

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("notify endpoint returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
