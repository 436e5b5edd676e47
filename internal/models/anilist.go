package models

// DateParts is a possibly-incomplete calendar date as AniList reports it.
// A zero Year means the date is unknown.
type DateParts struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// IsZero reports whether no usable date is present.
func (d DateParts) IsZero() bool {
	return d.Year == 0
}

// AniListTitle holds the title variants AniList tracks for a media entry.
type AniListTitle struct {
	Romaji  string `json:"romaji"`
	English string `json:"english"`
	Native  string `json:"native"`
}

// AniListImage is a sized image reference.
type AniListImage struct {
	Medium     string `json:"medium"`
	ExtraLarge string `json:"extraLarge"`
}

// AniListName is a person or character name.
type AniListName struct {
	Full   string `json:"full"`
	Native string `json:"native"`
}

// AniListStudio is an animation studio node.
type AniListStudio struct {
	Name string `json:"name"`
}

// AniListTag is a content tag node.
type AniListTag struct {
	Name string `json:"name"`
}

// AniListTrailer references a trailer video on an external site.
type AniListTrailer struct {
	ID   string `json:"id"`
	Site string `json:"site"`
}

// AniListCharacter is one node of the characters connection.
type AniListCharacter struct {
	Name  AniListName  `json:"name"`
	Image AniListImage `json:"image"`
}

// AniListVoiceActor voices a character in a given language.
type AniListVoiceActor struct {
	Name  AniListName  `json:"name"`
	Image AniListImage `json:"image"`
}

// CharacterEdge pairs a character with its voice actors.
type CharacterEdge struct {
	Node        AniListCharacter    `json:"node"`
	VoiceActors []AniListVoiceActor `json:"voiceActors"`
}

// AniListAnime is the media entry shape returned by the AniList GraphQL API.
// It is the primary record the whole merge session is anchored on.
type AniListAnime struct {
	ID          int          `json:"id"`
	IDMal       int          `json:"idMal"`
	Title       AniListTitle `json:"title"`
	CoverImage  AniListImage `json:"coverImage"`
	BannerImage string       `json:"bannerImage"`
	StartDate   DateParts    `json:"startDate"`
	EndDate     DateParts    `json:"endDate"`
	Description string       `json:"description"`
	Season      string       `json:"season"`
	SeasonYear  int          `json:"seasonYear"`
	Type        string       `json:"type"`
	Format      string       `json:"format"`
	Status      string       `json:"status"`
	Episodes    int          `json:"episodes"`
	Duration    int          `json:"duration"`
	Chapters    int          `json:"chapters"`
	Volumes     int          `json:"volumes"`
	Genres      []string     `json:"genres"`
	IsAdult     bool         `json:"isAdult"`
	AverageScore int         `json:"averageScore"`
	Popularity  int          `json:"popularity"`
	Studios     struct {
		Nodes []AniListStudio `json:"nodes"`
	} `json:"studios"`
	Tags    []AniListTag    `json:"tags"`
	Trailer *AniListTrailer `json:"trailer"`
	Characters struct {
		Edges []CharacterEdge `json:"edges"`
	} `json:"characters"`
}
