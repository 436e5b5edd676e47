package providers

import (
	"context"
	"net/http"
	"sync"

	"github.com/davidvr/animeta/internal/config"
	"github.com/davidvr/animeta/internal/models"
)

// Aggregator runs the secondary provider lookups for one title in dependency
// order: OMDB and TMDB are independent and go first; TVDB and fanart.tv need
// the TVDB id TMDB reports; TVMaze needs both the IMDB id from OMDB and the
// TVDB id. A failed or skipped provider leaves its slot nil and is never
// fatal, the merge session simply offers fewer candidates.
type Aggregator struct {
	omdb   *OMDBClient
	tmdb   *TMDBClient
	tvdb   *TVDBClient
	tvmaze *TVMazeClient
	fanart *FanartClient
}

// NewAggregator wires the five secondary clients onto the shared HTTP client.
func NewAggregator(hc *http.Client, cfg *config.Config) *Aggregator {
	return &Aggregator{
		omdb:   NewOMDBClient(hc, cfg.Keys.OMDB),
		tmdb:   NewTMDBClient(hc, cfg.Keys.TMDB, cfg.Language),
		tvdb:   NewTVDBClient(hc, cfg.Keys.TVDB),
		tvmaze: NewTVMazeClient(hc),
		fanart: NewFanartClient(hc, cfg.Keys.Fanart),
	}
}

// Fetch looks the title up on every reachable provider and returns whatever
// loaded.
func (a *Aggregator) Fetch(ctx context.Context, title string) *models.ProviderData {
	logger := config.GetLogger()
	data := &models.ProviderData{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		omdb, err := a.omdb.Lookup(ctx, title)
		if err != nil {
			logger.Warn().Err(err).Str("title", title).Msg("omdb lookup failed")
			return
		}
		data.OMDB = omdb
	}()
	go func() {
		defer wg.Done()
		tmdb, err := a.tmdb.Lookup(ctx, title)
		if err != nil {
			logger.Warn().Err(err).Str("title", title).Msg("tmdb lookup failed")
			return
		}
		data.TMDB = tmdb
	}()
	wg.Wait()

	tvdbID := 0
	if data.TMDB != nil {
		tvdbID = data.TMDB.ExternalIDs.TVDBID
	}
	if tvdbID != 0 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tvdb, err := a.tvdb.Lookup(ctx, tvdbID)
			if err != nil {
				logger.Warn().Err(err).Int("tvdb_id", tvdbID).Msg("tvdb lookup failed")
				return
			}
			data.TVDB = tvdb
		}()
		go func() {
			defer wg.Done()
			fanart, err := a.fanart.Lookup(ctx, tvdbID)
			if err != nil {
				logger.Warn().Err(err).Int("tvdb_id", tvdbID).Msg("fanart lookup failed")
				return
			}
			data.Fanart = fanart
		}()
		wg.Wait()
	} else {
		logger.Debug().Str("title", title).Msg("no tvdb id, skipping tvdb and fanart")
	}

	imdbID := ""
	if data.OMDB.Found() && data.OMDB.IMDBID != "N/A" {
		imdbID = data.OMDB.IMDBID
	}
	if imdbID != "" && data.TVDB != nil {
		tvmaze, err := a.tvmaze.Lookup(ctx, imdbID, data.TVDB.ID)
		if err != nil {
			logger.Warn().Err(err).Str("imdb_id", imdbID).Msg("tvmaze lookup failed")
		} else {
			data.TVMaze = tvmaze
		}
	} else {
		logger.Debug().Str("title", title).Msg("missing imdb or tvdb id, skipping tvmaze")
	}

	return data
}
