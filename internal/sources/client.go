package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/capitolwatch/backend/internal/util"
)

const (
	requestTimeout = 30 * time.Second
	maxFetchTries  = 3
	retryDelay     = 2 * time.Second
)

// Client is the shared HTTP plumbing for the upstream data APIs. Each
// source wraps it with typed fetch methods; the records come back as-is
// and normalization happens downstream.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func newClient(baseURL, apiKey string) Client {
	return Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// getJSON fetches url and decodes the response body into out, retrying
// transient failures. Non-2xx responses count as failures.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	return util.RetryErrWithContext(ctx, maxFetchTries, retryDelay, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("X-Api-Key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to fetch %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			// Drain so the connection can be reused across retries.
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", url, err)
		}
		return nil
	})
}
