package resolve

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davidvr/animeta/internal/models"
	"github.com/davidvr/animeta/internal/sanitize"
)

// Field identifies one mergeable metadata field of a show record.
type Field string

const (
	FieldTitle         Field = "title"
	FieldOriginalTitle Field = "originalTitle"
	FieldEnglishTitle  Field = "englishTitle"
	FieldStartDate     Field = "startDate"
	FieldEndDate       Field = "endDate"
	FieldStatus        Field = "status"
	FieldDuration      Field = "duration"
	FieldScore         Field = "score"
	FieldStudio        Field = "studio"
	FieldPlot          Field = "plot"
	FieldGenres        Field = "genres"
	FieldTrailer       Field = "trailer"
)

// Fields lists every mergeable field in canonical order.
var Fields = []Field{
	FieldTitle,
	FieldOriginalTitle,
	FieldEnglishTitle,
	FieldStartDate,
	FieldEndDate,
	FieldStatus,
	FieldDuration,
	FieldScore,
	FieldStudio,
	FieldPlot,
	FieldGenres,
	FieldTrailer,
}

// fieldProviders lists the providers that contribute field values, in the
// order their candidates are offered. TVMaze and fanart.tv only contribute
// artwork and ids, never field text.
var fieldProviders = []models.Provider{
	models.ProviderAniList,
	models.ProviderOMDB,
	models.ProviderTMDB,
	models.ProviderTVDB,
}

func formatDateParts(d models.DateParts) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// parseLooseDate normalizes the date formats providers report ("12 Oct 2022"
// from OMDB, "2022-10-12" from TMDB/TVDB) to ISO form. Unparseable input,
// including OMDB's "N/A", yields an empty string.
func parseLooseDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", "2 Jan 2006", "Jan 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

var anilistFields = map[Field]func(*models.AniListAnime) models.Value{
	FieldTitle:         func(a *models.AniListAnime) models.Value { return models.TextValue(a.Title.Romaji) },
	FieldOriginalTitle: func(a *models.AniListAnime) models.Value { return models.TextValue(a.Title.Native) },
	FieldEnglishTitle:  func(a *models.AniListAnime) models.Value { return models.TextValue(a.Title.English) },
	FieldStartDate: func(a *models.AniListAnime) models.Value {
		return models.TextValue(formatDateParts(a.StartDate))
	},
	FieldEndDate: func(a *models.AniListAnime) models.Value {
		return models.TextValue(formatDateParts(a.EndDate))
	},
	FieldStatus: func(a *models.AniListAnime) models.Value { return models.TextValue(a.Status) },
	FieldDuration: func(a *models.AniListAnime) models.Value {
		if a.Duration == 0 {
			return models.Value{}
		}
		return models.TextValue(strconv.Itoa(a.Duration))
	},
	FieldScore: func(a *models.AniListAnime) models.Value {
		if a.AverageScore == 0 {
			return models.Value{}
		}
		return models.TextValue(strconv.Itoa(a.AverageScore))
	},
	FieldStudio: func(a *models.AniListAnime) models.Value {
		names := make([]string, 0, len(a.Studios.Nodes))
		for _, s := range a.Studios.Nodes {
			names = append(names, s.Name)
		}
		return models.TextValue(strings.Join(names, ", "))
	},
	FieldPlot: func(a *models.AniListAnime) models.Value {
		return models.TextValue(sanitize.StripTags(a.Description))
	},
	FieldGenres: func(a *models.AniListAnime) models.Value { return models.ListValue(a.Genres) },
	FieldTrailer: func(a *models.AniListAnime) models.Value {
		if a.Trailer == nil || a.Trailer.Site != "youtube" || a.Trailer.ID == "" {
			return models.Value{}
		}
		return models.TextValue("plugin://plugin.video.youtube/play/?video_id=" + a.Trailer.ID)
	},
}

// omdbText filters OMDB's "N/A" placeholder, which marks absent data.
func omdbText(s string) models.Value {
	if s == "N/A" {
		return models.Value{}
	}
	return models.TextValue(s)
}

var omdbFields = map[Field]func(*models.OMDBAnime) models.Value{
	FieldTitle:        func(o *models.OMDBAnime) models.Value { return omdbText(o.Title) },
	FieldEnglishTitle: func(o *models.OMDBAnime) models.Value { return omdbText(o.Title) },
	FieldStartDate: func(o *models.OMDBAnime) models.Value {
		return models.TextValue(parseLooseDate(o.Released))
	},
	FieldScore: func(o *models.OMDBAnime) models.Value {
		if len(o.Ratings) == 0 {
			return models.Value{}
		}
		return models.TextValue(o.Ratings[0].Value)
	},
	FieldPlot: func(o *models.OMDBAnime) models.Value { return omdbText(o.Plot) },
	FieldGenres: func(o *models.OMDBAnime) models.Value {
		if o.Genre == "" || o.Genre == "N/A" {
			return models.Value{}
		}
		return models.ListValue(strings.Split(o.Genre, ", "))
	},
}

var tmdbFields = map[Field]func(*models.TMDBAnime) models.Value{
	FieldTitle: func(t *models.TMDBAnime) models.Value { return models.TextValue(t.OriginalName) },
	FieldStartDate: func(t *models.TMDBAnime) models.Value {
		return models.TextValue(parseLooseDate(t.FirstAirDate))
	},
	FieldEndDate: func(t *models.TMDBAnime) models.Value {
		return models.TextValue(parseLooseDate(t.LastAirDate))
	},
	FieldStatus: func(t *models.TMDBAnime) models.Value { return models.TextValue(t.Status) },
	FieldDuration: func(t *models.TMDBAnime) models.Value {
		if len(t.EpisodeRunTime) == 0 {
			return models.Value{}
		}
		return models.TextValue(strconv.Itoa(t.EpisodeRunTime[0]))
	},
	FieldScore: func(t *models.TMDBAnime) models.Value {
		if t.VoteAverage == 0 {
			return models.Value{}
		}
		return models.TextValue(strconv.FormatFloat(t.VoteAverage, 'f', -1, 64) + " /10")
	},
	FieldPlot: func(t *models.TMDBAnime) models.Value { return models.TextValue(t.Overview) },
	FieldGenres: func(t *models.TMDBAnime) models.Value {
		if len(t.Genres) == 0 {
			return models.Value{}
		}
		names := make([]string, 0, len(t.Genres))
		for _, g := range t.Genres {
			names = append(names, g.Name)
		}
		return models.ListValue(names)
	},
	FieldTrailer: func(t *models.TMDBAnime) models.Value {
		for _, v := range t.Videos.Results {
			if v.Type == "Trailer" && v.URL != "" {
				return models.TextValue(v.URL)
			}
		}
		return models.Value{}
	},
}

var tvdbFields = map[Field]func(*models.TVDBAnime) models.Value{
	FieldTitle: func(t *models.TVDBAnime) models.Value { return models.TextValue(t.Name) },
	FieldStartDate: func(t *models.TVDBAnime) models.Value {
		return models.TextValue(parseLooseDate(t.FirstAired))
	},
	FieldEndDate: func(t *models.TVDBAnime) models.Value {
		return models.TextValue(parseLooseDate(t.LastAired))
	},
	FieldStatus: func(t *models.TVDBAnime) models.Value { return models.TextValue(t.Status.Name) },
	FieldDuration: func(t *models.TVDBAnime) models.Value {
		if t.AverageRuntime == 0 {
			return models.Value{}
		}
		return models.TextValue(strconv.Itoa(t.AverageRuntime))
	},
	FieldScore: func(t *models.TVDBAnime) models.Value {
		if t.Score == 0 {
			return models.Value{}
		}
		return models.TextValue(strconv.FormatFloat(t.Score, 'f', -1, 64))
	},
	FieldPlot: func(t *models.TVDBAnime) models.Value { return models.TextValue(t.Overview) },
	FieldGenres: func(t *models.TVDBAnime) models.Value {
		if len(t.Genres) == 0 {
			return models.Value{}
		}
		names := make([]string, 0, len(t.Genres))
		for _, g := range t.Genres {
			names = append(names, g.Name)
		}
		return models.ListValue(names)
	},
}
