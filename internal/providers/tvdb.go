package providers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/davidvr/animeta/internal/client"
	"github.com/davidvr/animeta/internal/models"
)

const tvdbEndpoint = "https://api4.thetvdb.com/v4"

// TVDBClient fetches extended series records from the TVDB v4 API, which
// requires a bearer token obtained through a login call.
type TVDBClient struct {
	hc     *http.Client
	apiKey string
	base   string
}

// NewTVDBClient returns a client using the given project API key.
func NewTVDBClient(hc *http.Client, apiKey string) *TVDBClient {
	return &TVDBClient{hc: hc, apiKey: apiKey, base: tvdbEndpoint}
}

type tvdbLoginResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token string `json:"token"`
	} `json:"data"`
}

func (c *TVDBClient) login(ctx context.Context) (string, error) {
	var resp tvdbLoginResponse
	body := map[string]string{"apikey": c.apiKey}
	if err := client.PostJSON(ctx, c.hc, c.base+"/login", nil, body, &resp); err != nil {
		return "", fmt.Errorf("tvdb login: %w", err)
	}
	if resp.Data.Token == "" {
		return "", fmt.Errorf("tvdb login: empty token (status %q)", resp.Status)
	}
	return resp.Data.Token, nil
}

// Lookup fetches the extended series record, including seasons, episodes and
// the typed artwork list.
func (c *TVDBClient) Lookup(ctx context.Context, id int) (*models.TVDBAnime, error) {
	anime, err := c.lookup(ctx, id)
	record("tvdb", err)
	return anime, err
}

func (c *TVDBClient) lookup(ctx context.Context, id int) (*models.TVDBAnime, error) {
	token, err := c.login(ctx)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Status string           `json:"status"`
		Data   models.TVDBAnime `json:"data"`
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	url := fmt.Sprintf("%s/series/%d/extended?meta=episodes", c.base, id)
	if err := client.GetJSON(ctx, c.hc, url, header, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
