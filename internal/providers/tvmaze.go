package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/davidvr/animeta/internal/client"
	"github.com/davidvr/animeta/internal/models"
)

const tvmazeEndpoint = "https://api.tvmaze.com"

// TVMazeClient assembles the TVMaze payload for a show located through its
// IMDB or TVDB id. TVMaze has no API key.
type TVMazeClient struct {
	hc   *http.Client
	base string
}

// NewTVMazeClient returns a client using the shared HTTP client.
func NewTVMazeClient(hc *http.Client) *TVMazeClient {
	return &TVMazeClient{hc: hc, base: tvmazeEndpoint}
}

// lookupID resolves an external id to a TVMaze show id, trying IMDB first.
func (c *TVMazeClient) lookupID(ctx context.Context, imdbID string, tvdbID int) (int, error) {
	var show struct {
		ID int `json:"id"`
	}
	if imdbID != "" {
		u := c.base + "/lookup/shows?imdb=" + url.QueryEscape(imdbID)
		if err := client.GetJSON(ctx, c.hc, u, nil, &show); err == nil {
			return show.ID, nil
		} else if !client.NotFound(err) {
			return 0, err
		}
	}
	if tvdbID != 0 {
		u := fmt.Sprintf("%s/lookup/shows?thetvdb=%d", c.base, tvdbID)
		if err := client.GetJSON(ctx, c.hc, u, nil, &show); err != nil {
			return 0, err
		}
		return show.ID, nil
	}
	return 0, fmt.Errorf("tvmaze: show not found (imdb=%q tvdb=%d)", imdbID, tvdbID)
}

// Lookup resolves the show through its external ids and fetches the detail,
// season, cast and episode endpoints concurrently. Episodes are grouped into
// their seasons on the way out.
func (c *TVMazeClient) Lookup(ctx context.Context, imdbID string, tvdbID int) (*models.TVMazeAnime, error) {
	anime, err := c.lookup(ctx, imdbID, tvdbID)
	record("tvmaze", err)
	return anime, err
}

func (c *TVMazeClient) lookup(ctx context.Context, imdbID string, tvdbID int) (*models.TVMazeAnime, error) {
	id, err := c.lookupID(ctx, imdbID, tvdbID)
	if err != nil {
		return nil, err
	}

	var (
		anime models.TVMazeAnime
		wg    sync.WaitGroup
		errs  [4]error
	)
	fetch := func(i int, path string, out any) {
		defer wg.Done()
		errs[i] = client.GetJSON(ctx, c.hc, fmt.Sprintf("%s/shows/%d%s", c.base, id, path), nil, out)
	}
	wg.Add(4)
	go fetch(0, "", &anime.Show)
	go fetch(1, "/seasons", &anime.Seasons)
	go fetch(2, "/cast", &anime.Cast)
	go fetch(3, "/episodes", &anime.Episodes)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	bySeason := make(map[int][]models.TVMazeEpisode)
	for _, ep := range anime.Episodes {
		bySeason[ep.Season] = append(bySeason[ep.Season], ep)
	}
	for i := range anime.Seasons {
		anime.Seasons[i].Episodes = bySeason[anime.Seasons[i].Number]
	}
	return &anime, nil
}
