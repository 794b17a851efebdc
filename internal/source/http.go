package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"todoview/internal/logging"
	"todoview/internal/todos"
	"todoview/internal/version"
)

// HTTP fetches the collection with a single GET.
type HTTP struct {
	url       string
	userAgent string
	timeout   time.Duration
	client    *http.Client
	validator *Validator
}

// NewHTTP builds an HTTP source. A nil validator skips schema checks.
func NewHTTP(url string, opts Options, v *Validator) *HTTP {
	ua := opts.UserAgent
	if ua == "" {
		ua = "todoview/" + version.Version
	}
	return &HTTP{url: url, userAgent: ua, timeout: opts.Timeout, client: &http.Client{}, validator: v}
}

// Load performs the request. Non-200 responses are errors; there are no retries.
func (h *HTTP) Load(ctx context.Context) ([]todos.Record, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	ctx, cancel := withTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")

	logging.Debug("fetching todos", "url", h.url)
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch todos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	records, err := decode(b, h.validator)
	if err != nil {
		return nil, err
	}
	logging.Info("fetched todos", "url", h.url, "count", len(records))
	return records, nil
}
