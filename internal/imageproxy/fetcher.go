package imageproxy

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/davidvr/animeta/internal/apperrors"
	"github.com/davidvr/animeta/internal/cache"
	"github.com/davidvr/animeta/internal/config"
)

// Fetcher downloads provider artwork on behalf of browser clients and keeps
// the assets in an LRU cache for the duration of an editing session. Provider
// CDNs do not send CORS headers, so previews and exports both go through it.
type Fetcher struct {
	hc    *http.Client
	cache cache.Cache
}

// NewFetcher wraps an HTTP client with a cache. A nil cache disables caching.
func NewFetcher(hc *http.Client, c cache.Cache) *Fetcher {
	return &Fetcher{hc: hc, cache: c}
}

// Fetch returns the image bytes and content type for a URL, from cache when
// possible. Only http and https URLs are accepted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", &apperrors.ErrAssetFetch{URL: rawURL, Cause: err}
	}

	if f.cache != nil {
		if asset, ok := f.cache.Get(rawURL); ok {
			return asset.Body, asset.ContentType, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", &apperrors.ErrAssetFetch{URL: rawURL, Cause: err}
	}
	req.Header.Set("User-Agent", config.GetUserAgent())

	resp, err := f.hc.Do(req)
	if err != nil {
		return nil, "", &apperrors.ErrAssetFetch{URL: rawURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, "", &apperrors.ErrAssetFetch{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &apperrors.ErrAssetFetch{URL: rawURL, Cause: err}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if f.cache != nil {
		f.cache.Set(rawURL, cache.Asset{ContentType: contentType, Body: body})
	}
	return body, contentType, nil
}
