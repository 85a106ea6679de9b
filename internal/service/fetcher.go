package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"carrosusados/internal/config"
)

// HTTPPageFetcher retrieves third-party listing pages with browser-like
// headers. Target sites serve their Portuguese variant when asked.
type HTTPPageFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPPageFetcher creates a page fetcher with a bounded timeout.
func NewHTTPPageFetcher(cfg *config.ImportConfig) *HTTPPageFetcher {
	return &HTTPPageFetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeout) * time.Second,
		},
		userAgent: cfg.UserAgent,
	}
}

// Fetch retrieves the raw markup at url. Non-2xx responses are errors; no
// retry is attempted.
func (f *HTTPPageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-PT,pt;q=0.9,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("page fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}
	return string(body), nil
}

var _ PageFetcher = (*HTTPPageFetcher)(nil)
