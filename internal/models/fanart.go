package models

// FanartImage is one asset from fanart.tv. Season is only set for
// season-scoped asset kinds and is a string in the upstream API.
type FanartImage struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Lang   string `json:"lang"`
	Season string `json:"season,omitempty"`
}

// FanartAnime is the /v3/tv/{tvdbID} response from fanart.tv.
type FanartAnime struct {
	Name           string        `json:"name"`
	ID             string        `json:"thetvdb_id"`
	HDTVLogo       []FanartImage `json:"hdtvlogo"`
	ClearLogo      []FanartImage `json:"clearlogo"`
	HDClearArt     []FanartImage `json:"hdclearart"`
	ClearArt       []FanartImage `json:"clearart"`
	TVPoster       []FanartImage `json:"tvposter"`
	MoviePoster    []FanartImage `json:"movieposter"`
	TVBanner       []FanartImage `json:"tvbanner"`
	ShowBackground []FanartImage `json:"showbackground"`
	CharacterArt   []FanartImage `json:"characterart"`
	SeasonPoster   []FanartImage `json:"seasonposter"`
}
