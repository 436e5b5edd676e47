package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/davidvr/animeta/internal/client"
	"github.com/davidvr/animeta/internal/models"
)

const (
	tmdbEndpoint  = "https://api.themoviedb.org/3"
	tmdbImageBase = "https://image.tmdb.org/t/p"
)

// TMDBClient assembles the full TMDB series payload: the detail record with
// external ids and videos, the show-level image pools, and every season with
// its episodes and season posters.
type TMDBClient struct {
	hc       *http.Client
	apiKey   string
	language string
	base     string
}

// NewTMDBClient returns a client requesting metadata in the given language
// (IETF tag, e.g. "es-ES").
func NewTMDBClient(hc *http.Client, apiKey, language string) *TMDBClient {
	if language == "" {
		language = "es-ES"
	}
	return &TMDBClient{hc: hc, apiKey: apiKey, language: language, base: tmdbEndpoint}
}

func (c *TMDBClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	return client.GetJSON(ctx, c.hc, c.base+path+"?"+params.Encode(), nil, out)
}

type tmdbSearchResponse struct {
	Results []struct {
		ID int `json:"id"`
	} `json:"results"`
}

// searchID resolves a query to a series id. When the full query matches
// nothing the first word is tried, which copes with long romaji titles that
// TMDB indexes under the base name.
func (c *TMDBClient) searchID(ctx context.Context, query string) (int, error) {
	attempts := []string{query}
	if first, _, found := strings.Cut(query, " "); found {
		attempts = append(attempts, first)
	}
	for _, attempt := range attempts {
		params := url.Values{}
		params.Set("language", c.language)
		params.Set("query", attempt)

		var resp tmdbSearchResponse
		if err := c.get(ctx, "/search/tv", params, &resp); err != nil {
			return 0, err
		}
		if len(resp.Results) > 0 {
			return resp.Results[0].ID, nil
		}
	}
	return 0, fmt.Errorf("tmdb: no results for %q", query)
}

// Lookup searches for the query and assembles the complete series payload.
func (c *TMDBClient) Lookup(ctx context.Context, query string) (*models.TMDBAnime, error) {
	anime, err := c.lookup(ctx, query)
	record("tmdb", err)
	return anime, err
}

func (c *TMDBClient) lookup(ctx context.Context, query string) (*models.TMDBAnime, error) {
	id, err := c.searchID(ctx, query)
	if err != nil {
		return nil, err
	}

	detailParams := url.Values{}
	detailParams.Set("language", c.language)
	detailParams.Set("append_to_response", "videos,external_ids")

	var anime models.TMDBAnime
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), detailParams, &anime); err != nil {
		return nil, err
	}

	short, _, _ := strings.Cut(c.language, "-")
	imageParams := url.Values{}
	imageParams.Set("include_image_language", "en,null,"+short)

	var images models.TMDBImageSet
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/images", id), imageParams, &images); err != nil {
		return nil, err
	}
	expandImages(images.Posters)
	expandImages(images.Backdrops)
	expandImages(images.Logos)
	sortByVotes(images.Posters)
	sortByVotes(images.Backdrops)
	anime.Images = images

	if err := c.fetchSeasons(ctx, id, &anime); err != nil {
		return nil, err
	}

	for i := range anime.Videos.Results {
		if anime.Videos.Results[i].Site == "YouTube" {
			anime.Videos.Results[i].URL = "https://www.youtube.com/watch?v=" + anime.Videos.Results[i].Key
		}
	}
	if anime.PosterPath != "" {
		anime.PosterPath = tmdbImageBase + "/original" + anime.PosterPath
	}
	if anime.BackdropPath != "" {
		anime.BackdropPath = tmdbImageBase + "/original" + anime.BackdropPath
	}
	return &anime, nil
}

// fetchSeasons replaces the season stubs of the detail record with the full
// per-season payloads, fetched concurrently.
func (c *TMDBClient) fetchSeasons(ctx context.Context, id int, anime *models.TMDBAnime) error {
	var wg sync.WaitGroup
	errs := make([]error, len(anime.Seasons))
	for i := range anime.Seasons {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.fetchSeason(ctx, id, &anime.Seasons[i])
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *TMDBClient) fetchSeason(ctx context.Context, id int, season *models.TMDBSeason) error {
	number := season.SeasonNumber

	detailParams := url.Values{}
	detailParams.Set("language", c.language)
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", id, number), detailParams, season); err != nil {
		return err
	}

	var images struct {
		Posters []models.TMDBImage `json:"posters"`
	}
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d/images", id, number), nil, &images); err != nil {
		return err
	}
	expandImages(images.Posters)
	season.Images.Posters = images.Posters

	if season.PosterPath != "" {
		season.PosterPath = tmdbImageBase + "/original" + season.PosterPath
	}
	return nil
}

// expandImages fills in absolute URLs for the common TMDB render sizes.
func expandImages(images []models.TMDBImage) {
	for i := range images {
		p := images[i].FilePath
		if p == "" {
			continue
		}
		images[i].URLs = models.TMDBImageURLs{
			Original: tmdbImageBase + "/original" + p,
			W500:     tmdbImageBase + "/w500" + p,
			W780:     tmdbImageBase + "/w780" + p,
			W342:     tmdbImageBase + "/w342" + p,
		}
	}
}

func sortByVotes(images []models.TMDBImage) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].VoteAverage > images[j].VoteAverage
	})
}
