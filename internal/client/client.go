package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"

	"github.com/davidvr/animeta/internal/config"
)

// New builds the shared HTTP client used by every provider fetcher and the
// image proxy. The transport chain is: cloned DefaultTransport (optionally
// routed through an outbound proxy) → response decompression → failsafe
// retries for transient failures (network errors, 429 and 5xx responses).
func New(cfg *config.Config) *http.Client {
	// Parse timeout duration
	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve all its settings (timeouts,
	// connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			// Log error but continue without proxy
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	retryPolicy := failsafehttp.NewRetryPolicyBuilder().
		WithBackoff(500*time.Millisecond, 5*time.Second).
		WithMaxRetries(2).
		Build()

	return &http.Client{
		Timeout:   timeout,
		Transport: failsafehttp.NewRoundTripper(newDecodingTransport(baseTransport), retryPolicy),
	}
}

// GetJSON performs a GET request and decodes the JSON response into out.
// A non-2xx status is an error; the body is drained either way.
func GetJSON(ctx context.Context, hc *http.Client, rawURL string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return doJSON(hc, req, header, out)
}

// PostJSON performs a POST with a JSON body and decodes the JSON response
// into out.
func PostJSON(ctx context.Context, hc *http.Client, rawURL string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(hc, req, header, out)
}

func doJSON(hc *http.Client, req *http.Request, header http.Header, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.GetUserAgent())
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
