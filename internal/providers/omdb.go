package providers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/davidvr/animeta/internal/client"
	"github.com/davidvr/animeta/internal/models"
)

const omdbEndpoint = "https://www.omdbapi.com/"

// OMDBClient looks titles up on the OMDB API.
type OMDBClient struct {
	hc     *http.Client
	apiKey string
	base   string
}

// NewOMDBClient returns a client using the given API key.
func NewOMDBClient(hc *http.Client, apiKey string) *OMDBClient {
	return &OMDBClient{hc: hc, apiKey: apiKey, base: omdbEndpoint}
}

// Lookup fetches the title record with the full plot. OMDB reports a miss
// with HTTP 200 and Response="False"; that is returned as a payload whose
// Found() is false, not as an error.
func (c *OMDBClient) Lookup(ctx context.Context, title string) (*models.OMDBAnime, error) {
	q := url.Values{}
	q.Set("t", title)
	q.Set("plot", "full")
	q.Set("apikey", c.apiKey)

	var out models.OMDBAnime
	err := client.GetJSON(ctx, c.hc, c.base+"?"+q.Encode(), nil, &out)
	record("omdb", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
