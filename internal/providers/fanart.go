package providers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/davidvr/animeta/internal/client"
	"github.com/davidvr/animeta/internal/models"
)

const fanartEndpoint = "https://webservice.fanart.tv/v3"

// FanartClient fetches show artwork from fanart.tv, keyed by TVDB id.
type FanartClient struct {
	hc     *http.Client
	apiKey string
	base   string
}

// NewFanartClient returns a client using the given API key.
func NewFanartClient(hc *http.Client, apiKey string) *FanartClient {
	return &FanartClient{hc: hc, apiKey: apiKey, base: fanartEndpoint}
}

// Lookup fetches every artwork kind fanart.tv has for the series.
func (c *FanartClient) Lookup(ctx context.Context, tvdbID int) (*models.FanartAnime, error) {
	var out models.FanartAnime
	url := fmt.Sprintf("%s/tv/%d?api_key=%s", c.base, tvdbID, c.apiKey)
	err := client.GetJSON(ctx, c.hc, url, nil, &out)
	record("fanart", err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
