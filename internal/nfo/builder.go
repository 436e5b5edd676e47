package nfo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davidvr/animeta/internal/models"
	"github.com/davidvr/animeta/internal/sanitize"
)

// Builder renders a CanonicalRecord as a Jellyfin/Kodi tvshow.nfo document.
// The element order, indentation and blank-line grouping are fixed so the
// output is byte-for-byte reproducible for a given record and clock.
type Builder struct {
	// Now supplies the dateadded stamp. Tests pin it to a fixed instant.
	Now func() time.Time
}

// NewBuilder returns a Builder using the wall clock.
func NewBuilder() *Builder {
	return &Builder{Now: time.Now}
}

// Generate renders the tvshow.nfo document for a merged record.
func Generate(rec *models.CanonicalRecord) string {
	return NewBuilder().Generate(rec)
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func esc(s string) string  { return textEscaper.Replace(s) }
func escA(s string) string { return attrEscaper.Replace(s) }

// intOrEmpty renders external ids: zero means the provider never loaded and
// the element is left empty rather than claiming id 0.
func intOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// isoDate renders possibly-partial date parts with a zero-padded month and
// day, or an empty string when the date is unknown.
func isoDate(d models.DateParts) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Generate renders the tvshow.nfo document for a merged record.
func (b *Builder) Generate(rec *models.CanonicalRecord) string {
	primary := rec.Primary
	if primary == nil {
		primary = &models.AniListAnime{}
	}

	plot := esc(sanitize.StripTags(rec.Plot))

	trailer := esc(rec.Trailer)
	if trailer == "" && primary.Trailer != nil && primary.Trailer.Site == "youtube" {
		trailer = "plugin://plugin.video.youtube/play/?video_id=" + esc(primary.Trailer.ID)
	}

	mpaa := "NR"
	if primary.IsAdult {
		mpaa = "R18+"
	}

	year := ""
	if rec.StartDate.Year != 0 {
		year = strconv.Itoa(rec.StartDate.Year)
	}

	var w strings.Builder
	line := func(depth int, format string, args ...any) {
		w.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&w, format, args...)
		w.WriteByte('\n')
	}

	w.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n")
	w.WriteString("<tvshow>\n")
	line(1, "<plot>%s</plot>", plot)
	line(1, "<outline>%s</outline>", plot)
	line(1, "<lockdata>false</lockdata>")
	line(1, "<dateadded>%s</dateadded>", b.Now().Format("2006-01-02"))
	line(1, "<title>%s</title>", esc(rec.Title))
	line(1, "<originaltitle>%s</originaltitle>", esc(rec.OriginalTitle))
	line(1, "<trailer>%s</trailer>", trailer)
	line(1, "<rating>%s</rating>", esc(rec.Score))
	line(1, "<year>%s</year>", year)
	line(1, "<sorttitle>%s</sorttitle>", esc(rec.Title))
	line(1, "<runtime>%s</runtime>", esc(rec.Duration))
	line(1, "<mpaa>%s</mpaa>", mpaa)
	w.WriteByte('\n')
	line(1, "<imdb_id>%s</imdb_id>", esc(rec.IMDBID))
	line(1, "<tmdbid>%s</tmdbid>", intOrEmpty(rec.TMDBID))
	line(1, "<anilistid>%d</anilistid>", primary.ID)
	line(1, "<tvmazeid>%s</tvmazeid>", intOrEmpty(rec.TVMazeID))
	line(1, "<tvdbid>%s</tvdbid>", intOrEmpty(rec.TVDBID))
	w.WriteByte('\n')
	line(1, "<language>es</language>")
	line(1, "<countrycode>ES</countrycode>")
	line(1, "<premiered>%s</premiered>", isoDate(rec.StartDate))
	line(1, "<releasedate>%s</releasedate>", isoDate(rec.StartDate))
	line(1, "<enddate>%s</enddate>", isoDate(rec.EndDate))

	for _, genre := range rec.Genres {
		line(1, "<genre>%s</genre>", esc(genre))
	}
	for _, studio := range rec.Studios {
		line(1, "<studio>%s</studio>", esc(studio))
	}
	for _, tag := range primary.Tags {
		line(1, "<tag>%s</tag>", esc(tag.Name))
	}

	for i, edge := range primary.Characters.Edges {
		name, thumb := "N/A", ""
		if len(edge.VoiceActors) > 0 {
			if full := edge.VoiceActors[0].Name.Full; full != "" {
				name = full
			}
			thumb = edge.VoiceActors[0].Image.Medium
		}
		role := edge.Node.Name.Full
		if role == "" {
			role = "N/A"
		}
		line(1, "<actor>")
		line(2, "<name>%s</name>", esc(name))
		line(2, "<role>%s</role>", esc(role))
		line(2, "<type>Actor</type>")
		line(2, "<sortorder>%d</sortorder>", i)
		line(2, "<thumb>%s</thumb>", esc(thumb))
		line(1, "</actor>")
	}

	line(1, "<status>%s</status>", esc(rec.Status))
	w.WriteByte('\n')
	line(1, "<uniqueid default=\"true\" type=\"tmdb\">%s</uniqueid>", intOrEmpty(rec.TMDBID))
	line(1, "<uniqueid type=\"imdb\">%s</uniqueid>", esc(rec.IMDBID))
	line(1, "<uniqueid type=\"tvmaze\">%s</uniqueid>", intOrEmpty(rec.TVMazeID))
	line(1, "<uniqueid type=\"tvdb\">%s</uniqueid>", intOrEmpty(rec.TVDBID))
	w.WriteByte('\n')
	line(1, "<ratings>")
	line(2, "<rating name=\"imdb\" default=\"true\" max=\"10\">")
	line(3, "<value>%s</value>", esc(rec.IMDBRating))
	line(3, "<votes>%s</votes>", esc(rec.IMDBVotes))
	line(2, "</rating>")
	line(1, "</ratings>")

	for i, season := range rec.Seasons {
		line(1, "<namedseason number=\"%d\">%s</namedseason>", i, esc(season.Name))
	}

	line(1, "<thumb aspect=\"poster\" preview=\"%s\">%s</thumb>",
		escA(primary.CoverImage.Medium), esc(primary.CoverImage.Medium))
	if rec.Artwork.Fanart != "" {
		line(1, "<thumb aspect=\"fanart\" preview=\"%s\">%s</thumb>",
			escA(rec.Artwork.Fanart), esc(rec.Artwork.Fanart))
	}
	if rec.Artwork.Banner != "" {
		line(1, "<thumb aspect=\"banner\" preview=\"%s\">%s</thumb>",
			escA(rec.Artwork.Banner), esc(rec.Artwork.Banner))
	}
	w.WriteString("</tvshow>")

	return w.String()
}
