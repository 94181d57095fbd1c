// Package revalidate signals the leads listing view that its cached
// data is stale after a successful import.
package revalidate

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTPRevalidator POSTs to a configured webhook after an import. With
// no URL configured it is a no-op, which keeps the pipeline usable in
// deployments without a cached listing view.
type HTTPRevalidator struct {
	url    string
	client *http.Client
}

func NewHTTPRevalidator(url string) *HTTPRevalidator {
	return &HTTPRevalidator{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *HTTPRevalidator) RevalidateLeads(ctx context.Context) error {
	if r.url == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, nil)
	if err != nil {
		return fmt.Errorf("build revalidate request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("revalidate leads list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("revalidate leads list: unexpected status %d", resp.StatusCode)
	}
	return nil
}
