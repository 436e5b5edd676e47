package resolve

import (
	"strings"

	"github.com/davidvr/animeta/internal/apperrors"
	"github.com/davidvr/animeta/internal/models"
)

// Session tracks the per-field merge state for one show: which provider each
// field is currently taken from, which fields the user overrode by hand, and
// the provider acting as the primary record. A Session is not safe for
// concurrent use.
type Session struct {
	anime   *models.AniListAnime
	data    *models.ProviderData
	primary models.Provider

	fields     map[Field]models.FieldValue
	overridden map[Field]bool
}

// NewSession starts a merge session anchored on the given AniList record.
// Every field defaults to the AniList value, even when that value is empty.
func NewSession(anime *models.AniListAnime, data *models.ProviderData) *Session {
	s := &Session{
		anime:      anime,
		data:       data,
		primary:    models.ProviderAniList,
		fields:     make(map[Field]models.FieldValue, len(Fields)),
		overridden: make(map[Field]bool),
	}
	s.resetAll()
	return s
}

// Primary returns the provider currently acting as the primary record.
func (s *Session) Primary() models.Provider {
	return s.primary
}

// Anime returns the AniList record the session is anchored on.
func (s *Session) Anime() *models.AniListAnime {
	return s.anime
}

// Data returns the secondary provider payloads.
func (s *Session) Data() *models.ProviderData {
	return s.data
}

// extract resolves one provider's value for a field through the static
// mapping tables. Providers without a loaded payload, and fields a provider
// does not carry, yield an empty value.
func (s *Session) extract(p models.Provider, f Field) models.Value {
	switch p {
	case models.ProviderAniList:
		if s.anime == nil {
			return models.Value{}
		}
		if fn, ok := anilistFields[f]; ok {
			return fn(s.anime)
		}
	case models.ProviderOMDB:
		if s.data == nil || !s.data.OMDB.Found() {
			return models.Value{}
		}
		if fn, ok := omdbFields[f]; ok {
			return fn(s.data.OMDB)
		}
	case models.ProviderTMDB:
		if s.data == nil || s.data.TMDB == nil {
			return models.Value{}
		}
		if fn, ok := tmdbFields[f]; ok {
			return fn(s.data.TMDB)
		}
	case models.ProviderTVDB:
		if s.data == nil || s.data.TVDB == nil {
			return models.Value{}
		}
		if fn, ok := tvdbFields[f]; ok {
			return fn(s.data.TVDB)
		}
	}
	return models.Value{}
}

// Candidates returns the selectable values for a field. The primary
// provider's value comes first, followed by the remaining field providers in
// fixed order. Empty values are never offered.
func (s *Session) Candidates(f Field) []models.Candidate {
	out := make([]models.Candidate, 0, len(fieldProviders))
	if v := s.extract(s.primary, f); !v.IsEmpty() {
		out = append(out, models.Candidate{Source: s.primary, Value: v})
	}
	for _, p := range fieldProviders {
		if p == s.primary {
			continue
		}
		if v := s.extract(p, f); !v.IsEmpty() {
			out = append(out, models.Candidate{Source: p, Value: v})
		}
	}
	return out
}

// Field returns the currently selected value for a field.
func (s *Session) Field(f Field) models.FieldValue {
	return s.fields[f]
}

// Snapshot returns a copy of the full field state.
func (s *Session) Snapshot() map[Field]models.FieldValue {
	out := make(map[Field]models.FieldValue, len(s.fields))
	for f, v := range s.fields {
		out[f] = v
	}
	return out
}

// Select overrides a field with the value offered by the given source. The
// source must be in the field's current candidate set; otherwise the prior
// value is kept and ErrInvalidSelection is returned.
func (s *Session) Select(f Field, src models.Provider) error {
	for _, c := range s.Candidates(f) {
		if c.Source == src {
			s.fields[f] = models.FieldValue{Value: c.Value, Source: src}
			s.overridden[f] = true
			return nil
		}
	}
	return &apperrors.ErrInvalidSelection{Field: string(f), Source: string(src)}
}

// SetCustom overrides a field with a user-typed value.
func (s *Session) SetCustom(f Field, v models.Value) {
	s.fields[f] = models.FieldValue{Value: v, Source: models.ProviderCustom}
	s.overridden[f] = true
}

// SwitchPrimary changes the primary provider and re-derives the defaults.
// Fields the user overrode keep their selection only while the overriding
// source is still in the field's candidate set under the new primary; every
// other field reverts to the new primary's value.
func (s *Session) SwitchPrimary(p models.Provider) error {
	valid := false
	for _, fp := range fieldProviders {
		if fp == p {
			valid = true
			break
		}
	}
	if !valid || (p != models.ProviderAniList && !s.data.Has(p)) {
		return &apperrors.ErrInvalidSelection{Field: "primaryProvider", Source: string(p)}
	}
	s.primary = p
	s.rederive()
	return nil
}

// SetProviderData swaps in freshly fetched payloads. Overridden fields
// survive the refresh as long as their source still offers a value.
func (s *Session) SetProviderData(data *models.ProviderData) {
	s.data = data
	s.rederive()
}

// resetAll discards all state and rebuilds every field from the primary.
func (s *Session) resetAll() {
	s.overridden = make(map[Field]bool)
	for _, f := range Fields {
		s.fields[f] = models.FieldValue{Value: s.extract(s.primary, f), Source: s.primary}
	}
}

// rederive rebuilds field defaults from the current primary, keeping only
// the overrides whose source is still offered for that field.
func (s *Session) rederive() {
	for _, f := range Fields {
		if s.overridden[f] && s.sourceOffered(f, s.fields[f].Source) {
			continue
		}
		s.fields[f] = models.FieldValue{Value: s.extract(s.primary, f), Source: s.primary}
		delete(s.overridden, f)
	}
}

func (s *Session) sourceOffered(f Field, src models.Provider) bool {
	for _, c := range s.Candidates(f) {
		if c.Source == src {
			return true
		}
	}
	return false
}

// Canonical assembles the merged record from the current field state, the
// curated seasons and the artwork selection. External ids are harvested from
// whichever payloads loaded. Premiered and year always come from the AniList
// date parts so partial dates survive the round trip.
func (s *Session) Canonical(seasons []models.SeasonRecord, artwork models.ArtworkSet) *models.CanonicalRecord {
	rec := &models.CanonicalRecord{
		Primary:       s.anime,
		Title:         s.fields[FieldTitle].Value.String(),
		OriginalTitle: s.fields[FieldOriginalTitle].Value.String(),
		Status:        s.fields[FieldStatus].Value.String(),
		Duration:      s.fields[FieldDuration].Value.String(),
		Score:         s.fields[FieldScore].Value.String(),
		Trailer:       s.fields[FieldTrailer].Value.String(),
		Plot:          s.fields[FieldPlot].Value.String(),
		Studios:       splitList(s.fields[FieldStudio].Value),
		Genres:        splitList(s.fields[FieldGenres].Value),
		Seasons:       seasons,
		Artwork:       artwork,
	}
	if s.anime != nil {
		rec.StartDate = s.anime.StartDate
		rec.EndDate = s.anime.EndDate
	}
	if s.data != nil {
		if s.data.OMDB.Found() {
			rec.IMDBID = s.data.OMDB.IMDBID
			rec.IMDBRating = s.data.OMDB.IMDBRating
			rec.IMDBVotes = strings.ReplaceAll(s.data.OMDB.IMDBVotes, ",", "")
		}
		if s.data.TMDB != nil {
			rec.TMDBID = s.data.TMDB.ID
			rec.TVDBID = s.data.TMDB.ExternalIDs.TVDBID
		}
		if s.data.TVDB != nil {
			rec.TVDBID = s.data.TVDB.ID
		}
		if s.data.TVMaze != nil {
			rec.TVMazeID = s.data.TVMaze.Show.ID
		}
	}
	return rec
}

// splitList flattens a field value to a string slice: list values pass
// through, scalar values are split on commas. Blank entries are dropped.
func splitList(v models.Value) []string {
	var parts []string
	if len(v.List) > 0 {
		parts = v.List
	} else if v.Text != "" {
		parts = strings.Split(v.Text, ",")
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
