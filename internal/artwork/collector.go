package artwork

import (
	"strconv"
	"strings"

	"github.com/davidvr/animeta/internal/apperrors"
	"github.com/davidvr/animeta/internal/models"
)

// ImageType identifies one artwork slot of a show or season.
type ImageType string

const (
	ImagePoster       ImageType = "poster"
	ImageLogo         ImageType = "logo"
	ImageClearArt     ImageType = "clearart"
	ImageFanart       ImageType = "fanart"
	ImageBackground   ImageType = "background"
	ImageCharacterArt ImageType = "characterart"
	ImageBanner       ImageType = "banner"
)

// Types lists every show-level artwork slot in canonical order.
var Types = []ImageType{
	ImagePoster,
	ImageLogo,
	ImageClearArt,
	ImageFanart,
	ImageBackground,
	ImageCharacterArt,
	ImageBanner,
}

// SeasonTypes lists the artwork slots a season carries.
var SeasonTypes = []ImageType{
	ImagePoster,
	ImageFanart,
	ImageBanner,
	ImageBackground,
}

// tvdbTypeCodes maps artwork slots to the TVDB v4 artwork type codes.
// Fanart and backgrounds share code 3 and are told apart by URL path.
var tvdbTypeCodes = map[ImageType]int{
	ImageBanner:     models.TVDBArtBanner,
	ImagePoster:     models.TVDBArtPoster,
	ImageFanart:     models.TVDBArtBackground,
	ImageBackground: models.TVDBArtBackground,
	ImageLogo:       models.TVDBArtClearLogo,
	ImageClearArt:   models.TVDBArtClearArt,
}

// Collector accumulates the season list and artwork selection for one show.
// Like Session it is single-user state and not safe for concurrent use.
type Collector struct {
	anime *models.AniListAnime
	data  *models.ProviderData

	seasons        []models.SeasonRecord
	seasonProvider models.Provider
	artwork        models.ArtworkSet
}

// NewCollector starts a collector seeded with the AniList cover and banner,
// so an export without any explicit selection still carries artwork.
func NewCollector(anime *models.AniListAnime, data *models.ProviderData) *Collector {
	c := &Collector{anime: anime, data: data}
	if anime != nil {
		c.artwork.Poster = anime.CoverImage.ExtraLarge
		c.artwork.Banner = anime.BannerImage
	}
	return c
}

// Seasons returns the current season records.
func (c *Collector) Seasons() []models.SeasonRecord {
	return c.seasons
}

// SeasonProvider returns the provider the season scaffold was built from.
func (c *Collector) SeasonProvider() models.Provider {
	return c.seasonProvider
}

// Artwork returns the current show-level artwork selection.
func (c *Collector) Artwork() models.ArtworkSet {
	return c.artwork
}

// SeasonProviders lists the providers that can scaffold a season list for
// this show.
func (c *Collector) SeasonProviders() []models.Provider {
	var out []models.Provider
	for _, p := range []models.Provider{models.ProviderOMDB, models.ProviderTMDB, models.ProviderTVDB} {
		if c.seasonCount(p) > 0 {
			out = append(out, p)
		}
	}
	return out
}

func (c *Collector) seasonCount(p models.Provider) int {
	if c.data == nil {
		return 0
	}
	switch p {
	case models.ProviderOMDB:
		if !c.data.OMDB.Found() {
			return 0
		}
		n, err := strconv.Atoi(c.data.OMDB.TotalSeasons)
		if err != nil {
			return 0
		}
		return n
	case models.ProviderTMDB:
		if c.data.TMDB == nil {
			return 0
		}
		return len(c.data.TMDB.Seasons)
	case models.ProviderTVDB:
		if c.data.TVDB == nil {
			return 0
		}
		return len(c.data.TVDB.Seasons)
	}
	return 0
}

// InitSeasons replaces the season list with a scaffold sized from the given
// provider's data: OMDB contributes only a count, TMDB and TVDB contribute
// names and suggested poster references as well. Any curated season state is
// discarded.
func (c *Collector) InitSeasons(p models.Provider) ([]models.SeasonRecord, error) {
	n := c.seasonCount(p)
	if n == 0 {
		return nil, &apperrors.ErrMissingDependency{Provider: string(p), Dependency: "season data"}
	}

	seasons := make([]models.SeasonRecord, n)
	switch p {
	case models.ProviderTMDB:
		for i, s := range c.data.TMDB.Seasons {
			seasons[i].Name = s.Name
			seasons[i].PosterPath = s.PosterPath
			if len(s.Images.Posters) > 0 {
				seasons[i].Poster = s.Images.Posters[0].URLs.Original
			}
		}
	case models.ProviderTVDB:
		for i, s := range c.data.TVDB.Seasons {
			seasons[i].Name = s.Name
			seasons[i].Image = s.Image
			seasons[i].Poster = s.Image
		}
	}
	c.seasons = seasons
	c.seasonProvider = p
	return seasons, nil
}

// SetSeasonName renames one season.
func (c *Collector) SetSeasonName(index int, name string) error {
	if index < 0 || index >= len(c.seasons) {
		return &apperrors.ErrSeasonIndexOutOfRange{Index: index, Count: len(c.seasons)}
	}
	c.seasons[index].Name = name
	return nil
}

// SetSeasonImage assigns an image URL to one slot of one season.
func (c *Collector) SetSeasonImage(index int, t ImageType, url string) error {
	if index < 0 || index >= len(c.seasons) {
		return &apperrors.ErrSeasonIndexOutOfRange{Index: index, Count: len(c.seasons)}
	}
	switch t {
	case ImagePoster:
		c.seasons[index].Poster = url
	case ImageFanart:
		c.seasons[index].Fanart = url
	case ImageBanner:
		c.seasons[index].Banner = url
	case ImageBackground:
		c.seasons[index].Background = url
	default:
		return &apperrors.ErrInvalidSelection{Field: "season image type", Source: string(t)}
	}
	return nil
}

// SetArtwork assigns an image URL to one show-level slot.
func (c *Collector) SetArtwork(t ImageType, url string) error {
	switch t {
	case ImagePoster:
		c.artwork.Poster = url
	case ImageLogo:
		c.artwork.Logo = url
	case ImageClearArt:
		c.artwork.ClearArt = url
	case ImageFanart:
		c.artwork.Fanart = url
	case ImageBackground:
		c.artwork.Background = url
	case ImageCharacterArt:
		c.artwork.CharacterArt = url
	case ImageBanner:
		c.artwork.Banner = url
	default:
		return &apperrors.ErrInvalidSelection{Field: "artwork type", Source: string(t)}
	}
	return nil
}

// ImageProviders lists the providers with at least one candidate image for
// the given slot.
func (c *Collector) ImageProviders(t ImageType) []models.Provider {
	var out []models.Provider
	for _, p := range []models.Provider{models.ProviderOMDB, models.ProviderTMDB, models.ProviderTVDB, models.ProviderFanart} {
		if len(c.CandidateImages(p, t)) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// CandidateImages enumerates a provider's image URLs for one artwork slot.
// The mapping per provider is fixed: OMDB offers only its poster, TMDB its
// posters/logos/backdrops, TVDB its typed artwork list, and fanart.tv its
// per-kind asset lists with HD kinds preferred over their SD fallbacks.
func (c *Collector) CandidateImages(p models.Provider, t ImageType) []string {
	if c.data == nil {
		return nil
	}
	switch p {
	case models.ProviderOMDB:
		if t == ImagePoster && c.data.OMDB.Found() && c.data.OMDB.Poster != "" && c.data.OMDB.Poster != "N/A" {
			return []string{c.data.OMDB.Poster}
		}
	case models.ProviderTMDB:
		if c.data.TMDB == nil {
			return nil
		}
		switch t {
		case ImagePoster:
			return tmdbURLs(c.data.TMDB.Images.Posters)
		case ImageLogo:
			return tmdbURLs(c.data.TMDB.Images.Logos)
		case ImageBackground, ImageFanart:
			return tmdbURLs(c.data.TMDB.Images.Backdrops)
		}
	case models.ProviderTVDB:
		return c.tvdbImages(t)
	case models.ProviderFanart:
		return c.fanartImages(t)
	}
	return nil
}

func tmdbURLs(images []models.TMDBImage) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img.URLs.Original != "" {
			out = append(out, img.URLs.Original)
		}
	}
	return out
}

func (c *Collector) tvdbImages(t ImageType) []string {
	if c.data.TVDB == nil {
		return nil
	}
	code, ok := tvdbTypeCodes[t]
	if !ok {
		return nil
	}
	var out []string
	for _, a := range c.data.TVDB.Artworks {
		if a.Type != code || a.Image == "" {
			continue
		}
		if a.Type == models.TVDBArtBackground && !tvdbBackgroundMatches(t, a.Image) {
			continue
		}
		out = append(out, a.Image)
	}
	return out
}

// tvdbBackgroundMatches splits TVDB's shared type-3 pool: legacy fanart
// lives under /banners/fanart/original/, the v4 series backgrounds under
// /banners/v4/series/.../backgrounds/.
func tvdbBackgroundMatches(t ImageType, url string) bool {
	switch t {
	case ImageFanart:
		return strings.Contains(url, "/banners/fanart/original/")
	case ImageBackground:
		return strings.Contains(url, "/banners/v4/series/") && strings.Contains(url, "/backgrounds/")
	}
	return false
}

func (c *Collector) fanartImages(t ImageType) []string {
	f := c.data.Fanart
	if f == nil {
		return nil
	}
	pick := func(primary, fallback []models.FanartImage) []string {
		src := primary
		if len(src) == 0 {
			src = fallback
		}
		out := make([]string, 0, len(src))
		for _, img := range src {
			if img.URL != "" {
				out = append(out, img.URL)
			}
		}
		return out
	}
	switch t {
	case ImagePoster:
		return pick(f.MoviePoster, f.TVPoster)
	case ImageLogo:
		return pick(f.HDTVLogo, f.ClearLogo)
	case ImageClearArt:
		return pick(f.HDClearArt, f.ClearArt)
	case ImageBackground:
		return pick(f.ShowBackground, nil)
	case ImageCharacterArt:
		return pick(f.CharacterArt, nil)
	case ImageBanner:
		return pick(f.TVBanner, nil)
	}
	return nil
}

// SeasonCandidateImages enumerates provider images for one season slot:
// TMDB season posters, TVDB season posters (type 7), and fanart.tv season
// posters matching the 1-based season number.
func (c *Collector) SeasonCandidateImages(p models.Provider, index int, t ImageType) []string {
	if c.data == nil || index < 0 {
		return nil
	}
	switch p {
	case models.ProviderTMDB:
		if t != ImagePoster || c.data.TMDB == nil || index >= len(c.data.TMDB.Seasons) {
			return nil
		}
		return tmdbURLs(c.data.TMDB.Seasons[index].Images.Posters)
	case models.ProviderTVDB:
		if t != ImagePoster || c.data.TVDB == nil {
			return nil
		}
		var out []string
		for _, a := range c.data.TVDB.Artworks {
			if a.Type == models.TVDBArtSeasonPoster && a.Image != "" {
				out = append(out, a.Image)
			}
		}
		return out
	case models.ProviderFanart:
		if t != ImagePoster || c.data.Fanart == nil {
			return nil
		}
		want := strconv.Itoa(index + 1)
		var out []string
		for _, img := range c.data.Fanart.SeasonPoster {
			if img.Season == want && img.URL != "" {
				out = append(out, img.URL)
			}
		}
		return out
	}
	return nil
}
