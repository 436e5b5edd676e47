package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestAggregator(t *testing.T, tmdbKnowsTVDB bool) (*Aggregator, func()) {
	t.Helper()

	omdbSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Title": "Attack on Titan", "imdbID": "tt2560140", "totalSeasons": "4", "Response": "True"}`))
	}))

	var tmdbSrv *httptest.Server
	if tmdbKnowsTVDB {
		tmdbSrv = httptest.NewServer(tmdbHandler(t, true))
	} else {
		tmdbSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/search/tv":
				w.Write([]byte(`{"results": [{"id": 99}]}`))
			case "/tv/99":
				w.Write([]byte(`{"id": 99, "original_name": "Obscure", "external_ids": {"tvdb_id": 0}}`))
			case "/tv/99/images":
				w.Write([]byte(`{}`))
			default:
				http.NotFound(w, r)
			}
		}))
	}

	tvdbSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/login" {
			w.Write([]byte(`{"data": {"token": "tok"}}`))
			return
		}
		w.Write([]byte(`{"data": {"id": 267440, "name": "Attack on Titan"}}`))
	}))

	tvmazeSrv := httptest.NewServer(tvmazeHandler(t, true))

	fanartSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "Attack on Titan", "hdtvlogo": [{"url": "https://fanart/logo.png", "lang": "en"}]}`))
	}))

	agg := &Aggregator{
		omdb:   &OMDBClient{hc: omdbSrv.Client(), apiKey: "k", base: omdbSrv.URL},
		tmdb:   &TMDBClient{hc: tmdbSrv.Client(), apiKey: "tmdb-key", language: "es-ES", base: tmdbSrv.URL},
		tvdb:   &TVDBClient{hc: tvdbSrv.Client(), apiKey: "k", base: tvdbSrv.URL},
		tvmaze: &TVMazeClient{hc: tvmazeSrv.Client(), base: tvmazeSrv.URL},
		fanart: &FanartClient{hc: fanartSrv.Client(), apiKey: "k", base: fanartSrv.URL},
	}
	cleanup := func() {
		omdbSrv.Close()
		tmdbSrv.Close()
		tvdbSrv.Close()
		tvmazeSrv.Close()
		fanartSrv.Close()
	}
	return agg, cleanup
}

func TestAggregatorFetchesFullChain(t *testing.T) {
	agg, cleanup := newTestAggregator(t, true)
	defer cleanup()

	data := agg.Fetch(context.Background(), "Attack on Titan")
	if !data.OMDB.Found() {
		t.Fatal("Expected omdb payload")
	}
	if data.TMDB == nil || data.TMDB.ExternalIDs.TVDBID != 267440 {
		t.Fatalf("Expected tmdb payload with tvdb id, got %+v", data.TMDB)
	}
	if data.TVDB == nil || data.TVDB.ID != 267440 {
		t.Fatalf("Expected tvdb payload, got %+v", data.TVDB)
	}
	if data.Fanart == nil || len(data.Fanart.HDTVLogo) != 1 {
		t.Fatalf("Expected fanart payload, got %+v", data.Fanart)
	}
	if data.TVMaze == nil || data.TVMaze.Show.ID != 1850 {
		t.Fatalf("Expected tvmaze payload, got %+v", data.TVMaze)
	}
}

func TestAggregatorSkipsDependentsWithoutTVDBID(t *testing.T) {
	agg, cleanup := newTestAggregator(t, false)
	defer cleanup()

	data := agg.Fetch(context.Background(), "Obscure")
	if data.TMDB == nil {
		t.Fatal("Expected tmdb payload")
	}
	if data.TVDB != nil || data.Fanart != nil {
		t.Fatal("TVDB and fanart must be skipped without a tvdb id")
	}
	if data.TVMaze != nil {
		t.Fatal("TVMaze must be skipped without tvdb data")
	}
}

func TestAggregatorToleratesProviderFailures(t *testing.T) {
	agg, cleanup := newTestAggregator(t, true)
	defer cleanup()

	// Break OMDB: the rest of the chain still loads.
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer broken.Close()
	agg.omdb = &OMDBClient{hc: broken.Client(), apiKey: "k", base: broken.URL}

	data := agg.Fetch(context.Background(), "Attack on Titan")
	if data.OMDB != nil {
		t.Fatal("Expected nil omdb payload after failure")
	}
	if data.TMDB == nil || data.TVDB == nil || data.Fanart == nil {
		t.Fatal("Remaining providers must still load")
	}
	if data.TVMaze != nil {
		t.Fatal("TVMaze needs the omdb imdb id and must be skipped")
	}
}
