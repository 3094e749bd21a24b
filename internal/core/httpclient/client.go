package httpclient

import (
	"net/http"
	"time"

	"recovery-dashboard/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs outbound requests under a component name.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Component tags every log entry.
	Component string
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	l := logger.Named(lrt.Component)
	start := time.Now()

	l.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
	)

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("host", req.URL.Host),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	l.Debug("HTTP request completed",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.Int("status_code", resp.StatusCode),
		zap.Int64("content_length", resp.ContentLength),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Option configures NewClient.
type Option func(*clientOptions)

type clientOptions struct {
	publicOnly bool
}

// NewClient returns an http.Client whose requests are logged as component.
func NewClient(component string, timeout time.Duration, opts ...Option) *http.Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	var base http.RoundTripper = http.DefaultTransport
	if o.publicOnly {
		base = publicOnlyTransport()
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied:   base,
			Component: component,
		},
		Timeout: timeout,
	}
}
