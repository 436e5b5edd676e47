package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/davidvr/animeta/internal/apperrors"
	"github.com/davidvr/animeta/internal/artwork"
	"github.com/davidvr/animeta/internal/config"
	"github.com/davidvr/animeta/internal/models"
	"github.com/davidvr/animeta/internal/resolve"
)

// handleSearch proxies an AniList search: ?query=...&type=ANIME&formats=TV,OVA.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	mediaType := r.URL.Query().Get("type")
	if mediaType == "" {
		mediaType = "ANIME"
	}
	var formats []string
	if raw := r.URL.Query().Get("formats"); raw != "" {
		formats = strings.Split(raw, ",")
	}

	results, err := s.search.Search(r.Context(), query, mediaType, formats)
	if err != nil {
		config.GetLogger().Error().Err(err).Str("query", query).Msg("anilist search failed")
		writeError(w, http.StatusBadGateway, "search failed")
		return
	}
	if results == nil {
		results = []models.AniListAnime{}
	}
	writeJSON(w, http.StatusOK, results)
}

// showResponse is the GET /api/show payload: the matched AniList record, the
// raw secondary payloads and the default merge the editor starts from.
type showResponse struct {
	Primary    *models.AniListAnime                 `json:"primary"`
	Providers  *models.ProviderData                 `json:"providers"`
	Fields     map[resolve.Field]models.FieldValue  `json:"fields"`
	Candidates map[resolve.Field][]models.Candidate `json:"candidates"`
	Seasons    []models.SeasonRecord                `json:"seasons"`
	Artwork    models.ArtworkSet                    `json:"artwork"`
}

// handleShow resolves a title to its AniList record, aggregates the secondary
// providers and returns the merged default field set next to the raw payloads.
// Providers that failed or were skipped are simply absent from the response.
func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	results, err := s.search.Search(r.Context(), query, "ANIME", nil)
	if err != nil {
		config.GetLogger().Error().Err(err).Str("query", query).Msg("anilist lookup failed")
		writeError(w, http.StatusBadGateway, "lookup failed")
		return
	}
	if len(results) == 0 {
		writeError(w, http.StatusNotFound, "no show matched the query")
		return
	}
	primary := results[0]

	data := s.agg.Fetch(r.Context(), query)
	sess := resolve.NewSession(&primary, data)
	candidates := make(map[resolve.Field][]models.Candidate, len(resolve.Fields))
	for _, f := range resolve.Fields {
		candidates[f] = sess.Candidates(f)
	}

	col := artwork.NewCollector(&primary, data)
	if providers := col.SeasonProviders(); len(providers) > 0 {
		if _, err := col.InitSeasons(providers[0]); err != nil {
			config.GetLogger().Warn().Err(err).Str("query", query).Msg("season scaffold failed")
		}
	}

	writeJSON(w, http.StatusOK, showResponse{
		Primary:    &primary,
		Providers:  data,
		Fields:     sess.Snapshot(),
		Candidates: candidates,
		Seasons:    col.Seasons(),
		Artwork:    col.Artwork(),
	})
}

// handleExport packages a merged record into the metadata archive and streams
// it back as a zip download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var rec models.CanonicalRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid record payload")
		return
	}
	if rec.Title == "" {
		writeError(w, http.StatusBadRequest, "record title is required")
		return
	}

	archive, err := s.packager.Build(r.Context(), s.nfo.Generate(&rec), &rec)
	if err != nil {
		if errors.Is(err, &apperrors.ErrExportInFlight{}) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		config.GetLogger().Error().Err(err).Str("title", rec.Title).Msg("archive build failed")
		writeError(w, http.StatusInternalServerError, "archive build failed")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+archive.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(archive.Content); err != nil {
		config.GetLogger().Error().Err(err).Msg("writing archive response failed")
	}
}

// handleProxy fetches a provider image server-side and relays it with a CORS
// header, since provider CDNs do not allow cross-origin reads.
func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "url parameter is required")
		return
	}

	body, contentType, err := s.assets.Fetch(r.Context(), rawURL)
	if err != nil {
		config.GetLogger().Warn().Err(err).Str("url", rawURL).Msg("proxy fetch failed")
		writeError(w, http.StatusBadGateway, "failed to fetch the resource")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		config.GetLogger().Error().Err(err).Msg("writing proxy response failed")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
