package models

// ProviderData aggregates every secondary provider payload fetched for one
// title. A nil member means the provider was unavailable or skipped because
// a lookup dependency (e.g. a TVDB id) was missing; callers treat both the
// same way and simply offer fewer candidates.
type ProviderData struct {
	OMDB   *OMDBAnime   `json:"omdb,omitempty"`
	TMDB   *TMDBAnime   `json:"tmdb,omitempty"`
	TVDB   *TVDBAnime   `json:"tvdb,omitempty"`
	TVMaze *TVMazeAnime `json:"tvmaze,omitempty"`
	Fanart *FanartAnime `json:"fanart,omitempty"`
}

// Has reports whether a payload is loaded for the given provider.
// AniList is the primary record and is tracked outside ProviderData.
func (d *ProviderData) Has(p Provider) bool {
	if d == nil {
		return false
	}
	switch p {
	case ProviderOMDB:
		return d.OMDB.Found()
	case ProviderTMDB:
		return d.TMDB != nil
	case ProviderTVDB:
		return d.TVDB != nil
	case ProviderTVMaze:
		return d.TVMaze != nil
	case ProviderFanart:
		return d.Fanart != nil
	default:
		return false
	}
}
