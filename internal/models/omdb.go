package models

// OMDBRating is one entry of OMDB's ratings list, e.g. {"Internet Movie Database", "8.6/10"}.
type OMDBRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// OMDBAnime is the title lookup response from the OMDB API.
// OMDB reports nearly everything as strings, including numbers.
type OMDBAnime struct {
	Title        string       `json:"Title"`
	Year         string       `json:"Year"`
	Rated        string       `json:"Rated"`
	Released     string       `json:"Released"`
	Runtime      string       `json:"Runtime"`
	Genre        string       `json:"Genre"`
	Plot         string       `json:"Plot"`
	Poster       string       `json:"Poster"`
	Ratings      []OMDBRating `json:"Ratings"`
	TotalSeasons string       `json:"totalSeasons"`
	IMDBID       string       `json:"imdbID"`
	IMDBRating   string       `json:"imdbRating"`
	IMDBVotes    string       `json:"imdbVotes"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

// Found reports whether the lookup matched a title. OMDB signals misses with
// HTTP 200 and Response="False".
func (o *OMDBAnime) Found() bool {
	return o != nil && o.Response != "False"
}
