package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultClient is shared by the catalog and artwork fetchers.
var DefaultClient = &http.Client{Timeout: 12 * time.Second}

// GetBytes fetches url and returns the full response body.
func GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
