// Package cfbdata downloads season datasets from the CollegeFootballData API.
// Endpoint paths drift between API versions, so each dataset carries a list of
// candidate paths that are tried in order until one answers.
package cfbdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the API host queried when no override is configured.
const DefaultBaseURL = "https://apinext.collegefootballdata.com"

// retryBackoff is the pause before the single transport-level retry.
const retryBackoff = 600 * time.Millisecond

// DoRequest performs one authorized GET and returns the response status and
// body. Transport errors are retried once after a short backoff; HTTP error
// statuses are returned to the caller, not retried.
func DoRequest(ctx context.Context, client *http.Client, key string, url string) (int, []byte, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to build request: %v", err)
		}
		req.Header.Add("accept", "application/json")
		req.Header.Add("Authorization", "Bearer "+key)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return 0, nil, fmt.Errorf("failed to read response body: %v", err)
		}
		return resp.StatusCode, body, nil
	}
	return 0, nil, fmt.Errorf("failed to do request: %v", lastErr)
}

// Fetch tries an endpoint's candidate paths in order until one returns 200,
// returning the body and the path that answered.
func Fetch(ctx context.Context, client *http.Client, baseURL, key string, ep Endpoint, year int) ([]byte, string, error) {
	var lastStatus int
	var lastPath string
	for _, tmpl := range ep.Candidates {
		path := expandPath(tmpl, year)
		status, body, err := DoRequest(ctx, client, key, baseURL+path)
		if err != nil {
			return nil, path, fmt.Errorf("failed to fetch %s: %w", ep.Slug, err)
		}
		if status == http.StatusOK {
			return body, path, nil
		}
		lastStatus = status
		lastPath = path
	}
	return nil, lastPath, fmt.Errorf("failed to fetch %s: no candidate path succeeded (last status %d from %s)", ep.Slug, lastStatus, lastPath)
}
