package models

import "strings"

// Value is a single candidate or selected field value. Scalar fields use
// Text; list fields (genres) use List. Exactly one side is populated.
type Value struct {
	Text string   `json:"text,omitempty"`
	List []string `json:"list,omitempty"`
}

// TextValue wraps a scalar string.
func TextValue(s string) Value {
	return Value{Text: s}
}

// ListValue wraps a string list.
func ListValue(items []string) Value {
	return Value{List: items}
}

// IsEmpty reports whether the value carries no data. Empty values are never
// offered as candidates.
func (v Value) IsEmpty() bool {
	return v.Text == "" && len(v.List) == 0
}

// String renders the value for display; lists are comma-joined.
func (v Value) String() string {
	if len(v.List) > 0 {
		return strings.Join(v.List, ", ")
	}
	return v.Text
}

// FieldValue is one canonical metadata field: the currently selected value
// and the provider it came from. Source "custom" marks a user-typed value.
type FieldValue struct {
	Value  Value    `json:"value"`
	Source Provider `json:"source"`
}

// Candidate is a read-only view of one provider's offering for a field.
type Candidate struct {
	Source Provider `json:"source"`
	Value  Value    `json:"value"`
}

// SeasonRecord holds the user-curated metadata for one season.
// Image and PosterPath mirror the provider-suggested artwork references.
type SeasonRecord struct {
	Name       string `json:"name"`
	Poster     string `json:"poster"`
	Fanart     string `json:"fanart"`
	Banner     string `json:"banner"`
	Background string `json:"background"`
	Image      string `json:"image"`
	PosterPath string `json:"posterPath"`
}

// ArtworkSet holds one selected image URL per top-level artwork type.
type ArtworkSet struct {
	Poster       string `json:"poster"`
	Logo         string `json:"logo"`
	ClearArt     string `json:"clearart"`
	Fanart       string `json:"fanart"`
	Background   string `json:"background"`
	CharacterArt string `json:"characterart"`
	Banner       string `json:"banner"`
}

// CanonicalRecord is the fully merged show record: the resolved field values,
// external ids harvested from whichever providers loaded, the curated season
// list and the artwork selection. It is assembled fresh at export time and is
// the sole input to the NFO builder.
type CanonicalRecord struct {
	Primary *AniListAnime `json:"primary"`

	Title         string    `json:"title"`
	OriginalTitle string    `json:"originalTitle"`
	Status        string    `json:"status"`
	Duration      string    `json:"duration"`
	Score         string    `json:"score"`
	Trailer       string    `json:"trailer"`
	Plot          string    `json:"plot"`
	Studios       []string  `json:"studios"`
	Genres        []string  `json:"genres"`
	StartDate     DateParts `json:"startDate"`
	EndDate       DateParts `json:"endDate"`

	IMDBID     string `json:"imdbId"`
	IMDBRating string `json:"imdbRating"`
	IMDBVotes  string `json:"imdbVotes"`
	TMDBID     int    `json:"tmdbId"`
	TVDBID     int    `json:"tvdbId"`
	TVMazeID   int    `json:"tvmazeId"`

	Seasons []SeasonRecord `json:"seasons"`
	Artwork ArtworkSet     `json:"artwork"`
}
