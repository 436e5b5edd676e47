package models

// TVMazeImage is an image reference in TVMaze's medium/original pair form.
type TVMazeImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// TVMazeShow is the core show object.
type TVMazeShow struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Genres         []string `json:"genres"`
	Status         string   `json:"status"`
	Premiered      string   `json:"premiered"`
	Ended          string   `json:"ended"`
	AverageRuntime int      `json:"averageRuntime"`
	Summary        string   `json:"summary"`
	Rating         struct {
		Average float64 `json:"average"`
	} `json:"rating"`
	Image *TVMazeImage `json:"image"`
}

// TVMazeEpisode is one episode entry.
type TVMazeEpisode struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Season  int    `json:"season"`
	Number  int    `json:"number"`
	Airdate string `json:"airdate"`
}

// TVMazeSeason is one season, with its episodes grouped in by the fetcher.
type TVMazeSeason struct {
	ID           int             `json:"id"`
	Number       int             `json:"number"`
	Name         string          `json:"name"`
	EpisodeOrder int             `json:"episodeOrder"`
	Image        *TVMazeImage    `json:"image"`
	Episodes     []TVMazeEpisode `json:"episodes"`
}

// TVMazeCastMember pairs a person with the character they play.
type TVMazeCastMember struct {
	Person struct {
		Name  string       `json:"name"`
		Image *TVMazeImage `json:"image"`
	} `json:"person"`
	Character struct {
		Name  string       `json:"name"`
		Image *TVMazeImage `json:"image"`
	} `json:"character"`
}

// TVMazeAnime is the assembled TVMaze payload: show detail plus seasons,
// cast and the full episode list.
type TVMazeAnime struct {
	Show     TVMazeShow         `json:"show"`
	Seasons  []TVMazeSeason     `json:"seasons"`
	Cast     []TVMazeCastMember `json:"cast"`
	Episodes []TVMazeEpisode    `json:"episodes"`
}
