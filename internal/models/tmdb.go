package models

// TMDBImageURLs carries pre-expanded absolute URLs for one TMDB image asset.
type TMDBImageURLs struct {
	Original string `json:"original"`
	W500     string `json:"w500"`
	W780     string `json:"w780"`
	W342     string `json:"w342,omitempty"`
}

// TMDBImage is one image asset from the TMDB images endpoints.
type TMDBImage struct {
	FilePath    string        `json:"file_path"`
	VoteAverage float64       `json:"vote_average"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	URLs        TMDBImageURLs `json:"urls"`
}

// TMDBImageSet groups the show-level image assets by kind.
type TMDBImageSet struct {
	Posters   []TMDBImage `json:"posters"`
	Backdrops []TMDBImage `json:"backdrops"`
	Logos     []TMDBImage `json:"logos"`
}

// TMDBGenre is a genre entry.
type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TMDBEpisode is one episode of a season detail response.
type TMDBEpisode struct {
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	AirDate       string `json:"air_date"`
}

// TMDBSeason is one season with its episodes and season-level images.
type TMDBSeason struct {
	SeasonNumber int           `json:"season_number"`
	Name         string        `json:"name"`
	Overview     string        `json:"overview"`
	PosterPath   string        `json:"poster_path"`
	VoteAverage  float64       `json:"vote_average"`
	Episodes     []TMDBEpisode `json:"episodes"`
	Images       struct {
		Posters []TMDBImage `json:"posters"`
	} `json:"images"`
}

// TMDBVideo is one trailer/clip entry; URL is pre-built for YouTube videos.
type TMDBVideo struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// TMDBExternalIDs holds cross-provider identifiers TMDB knows about.
type TMDBExternalIDs struct {
	IMDBID string `json:"imdb_id"`
	TVDBID int    `json:"tvdb_id"`
}

// TMDBAnime is the assembled TMDB series payload: the /tv/{id} detail
// response joined with its image and per-season lookups.
type TMDBAnime struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	OriginalName     string          `json:"original_name"`
	Overview         string          `json:"overview"`
	Status           string          `json:"status"`
	FirstAirDate     string          `json:"first_air_date"`
	LastAirDate      string          `json:"last_air_date"`
	Genres           []TMDBGenre     `json:"genres"`
	NumberOfSeasons  int             `json:"number_of_seasons"`
	NumberOfEpisodes int             `json:"number_of_episodes"`
	EpisodeRunTime   []int           `json:"episode_run_time"`
	VoteAverage      float64         `json:"vote_average"`
	PosterPath       string          `json:"poster_path"`
	BackdropPath     string          `json:"backdrop_path"`
	Seasons          []TMDBSeason    `json:"seasons"`
	Images           TMDBImageSet    `json:"images"`
	ExternalIDs      TMDBExternalIDs `json:"external_ids"`
	Videos           struct {
		Results []TMDBVideo `json:"results"`
	} `json:"videos"`
}
