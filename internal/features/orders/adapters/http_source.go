package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"recovery-dashboard/internal/core/httpclient"
)

// HTTPPayloadSource implements ports.PayloadSource by downloading the export over HTTP.
type HTTPPayloadSource struct {
	// client is the HTTP client used for downloads.
	client *http.Client
	// maxBytes caps the payload size.
	maxBytes int64
}

// NewHTTPPayloadSource creates a new HTTPPayloadSource. Unless allowPrivate is
// set, loopback, private and link-local destinations are refused.
func NewHTTPPayloadSource(timeout time.Duration, maxBytes int64, allowPrivate bool) *HTTPPayloadSource {
	var opts []httpclient.Option
	if !allowPrivate {
		opts = append(opts, httpclient.PublicOnly())
	}
	return &HTTPPayloadSource{
		client:   httpclient.NewClient("payload-source", timeout, opts...),
		maxBytes: maxBytes,
	}
}

// Fetch downloads the payload at location. Only http and https URLs are accepted.
func (s *HTTPPayloadSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid payload URL: %q", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/tab-separated-values, text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payload source returned status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("payload exceeds %d bytes", s.maxBytes)
	}

	return data, nil
}
