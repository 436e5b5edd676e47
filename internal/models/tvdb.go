package models

// TVDBStatus is the nested status object of a TVDB series.
type TVDBStatus struct {
	Name string `json:"name"`
}

// TVDBGenre is a genre entry.
type TVDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TVDBAlias is a localized alternative title.
type TVDBAlias struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// TVDBSeason is one season of the extended series record.
type TVDBSeason struct {
	ID       int    `json:"id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Image    string `json:"image"`
}

// TVDBEpisode is one episode of the extended series record.
type TVDBEpisode struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"seasonNumber"`
	Number       int    `json:"number"`
	Aired        string `json:"aired"`
}

// TVDB artwork type codes used by the v4 API.
const (
	TVDBArtBanner       = 1
	TVDBArtPoster       = 2
	TVDBArtBackground   = 3
	TVDBArtIcon         = 5
	TVDBArtSeasonPoster = 7
	TVDBArtClearArt     = 22
	TVDBArtClearLogo    = 23
)

// TVDBArtwork is one artwork asset. Type is a TVDBArt* code; fanart and
// backgrounds share code 3 and are told apart by their URL path.
type TVDBArtwork struct {
	ID        int    `json:"id"`
	Image     string `json:"image"`
	Thumbnail string `json:"thumbnail"`
	Type      int    `json:"type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// TVDBAnime is the /series/{id}/extended response of the TVDB v4 API.
type TVDBAnime struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Overview       string        `json:"overview"`
	Image          string        `json:"image"`
	FirstAired     string        `json:"firstAired"`
	LastAired      string        `json:"lastAired"`
	Score          float64       `json:"score"`
	AverageRuntime int           `json:"averageRuntime"`
	Status         TVDBStatus    `json:"status"`
	Genres         []TVDBGenre   `json:"genres"`
	Aliases        []TVDBAlias   `json:"aliases"`
	Seasons        []TVDBSeason  `json:"seasons"`
	Episodes       []TVDBEpisode `json:"episodes"`
	Artworks       []TVDBArtwork `json:"artworks"`
}
