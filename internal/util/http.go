package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GetBytes fetches url and returns the body. Non-200 responses are errors.
func GetBytes(ctx context.Context, url string) ([]byte, error) {
	client := http.Client{Timeout: 12 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
