// Package api exposes the JSON endpoints the metadata editor frontend talks
// to: AniList search, aggregated provider lookups, the image proxy and the
// archive export.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/davidvr/animeta/internal/config"
	"github.com/davidvr/animeta/internal/export"
	"github.com/davidvr/animeta/internal/models"
	"github.com/davidvr/animeta/internal/nfo"
)

type searcher interface {
	Search(ctx context.Context, query, mediaType string, formats []string) ([]models.AniListAnime, error)
}

type aggregator interface {
	Fetch(ctx context.Context, title string) *models.ProviderData
}

type assetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

type archiver interface {
	Build(ctx context.Context, nfoText string, rec *models.CanonicalRecord) (*export.Archive, error)
}

// Server bundles the handler dependencies.
type Server struct {
	search   searcher
	agg      aggregator
	assets   assetFetcher
	packager archiver
	nfo      *nfo.Builder
}

// New assembles the API server from its collaborators.
func New(search searcher, agg aggregator, assets assetFetcher, packager archiver) *Server {
	return &Server{
		search:   search,
		agg:      agg,
		assets:   assets,
		packager: packager,
		nfo:      nfo.NewBuilder(),
	}
}

// Handler returns the routed handler with logging and panic recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/show", s.handleShow)
	mux.HandleFunc("POST /api/export", s.handleExport)
	mux.HandleFunc("GET /api/proxy", s.handleProxy)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.middleware(mux)
}

// middleware logs each request and turns panics into 500s, reporting them to
// Sentry when a DSN is configured.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				sentry.CurrentHub().Recover(rec)
				config.GetLogger().Error().Any("panic", rec).
					Str("method", r.Method).Str("path", r.URL.Path).
					Msg("handler panicked")
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			config.GetLogger().Debug().
				Str("method", r.Method).Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("request handled")
		}()
		next.ServeHTTP(w, r)
	})
}

// NewHTTPServer wraps the handler in an http.Server bound per config.
func NewHTTPServer(cfg *config.Config, s *Server) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		config.GetLogger().Error().Err(err).Msg("encoding response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
