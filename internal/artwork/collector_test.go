package artwork

import (
	"errors"
	"testing"

	"github.com/davidvr/animeta/internal/apperrors"
	"github.com/davidvr/animeta/internal/models"
)

func testData() *models.ProviderData {
	tmdb := &models.TMDBAnime{ID: 1429}
	tmdb.Seasons = []models.TMDBSeason{
		{SeasonNumber: 1, Name: "Temporada 1", PosterPath: "https://tmdb/original/s1.jpg"},
		{SeasonNumber: 2, Name: "Temporada 2"},
	}
	tmdb.Seasons[0].Images.Posters = []models.TMDBImage{
		{FilePath: "/s1a.jpg", URLs: models.TMDBImageURLs{Original: "https://tmdb/original/s1a.jpg"}},
	}
	tmdb.Images = models.TMDBImageSet{
		Posters: []models.TMDBImage{
			{URLs: models.TMDBImageURLs{Original: "https://tmdb/original/p1.jpg"}},
			{URLs: models.TMDBImageURLs{Original: "https://tmdb/original/p2.jpg"}},
		},
		Backdrops: []models.TMDBImage{
			{URLs: models.TMDBImageURLs{Original: "https://tmdb/original/b1.jpg"}},
		},
		Logos: []models.TMDBImage{
			{URLs: models.TMDBImageURLs{Original: "https://tmdb/original/l1.jpg"}},
		},
	}

	tvdb := &models.TVDBAnime{
		ID: 267440,
		Seasons: []models.TVDBSeason{
			{Number: 1, Name: "Season 1", Image: "https://tvdb/seasons/1.jpg"},
		},
		Artworks: []models.TVDBArtwork{
			{Type: models.TVDBArtPoster, Image: "https://artworks.thetvdb.com/banners/posters/p.jpg"},
			{Type: models.TVDBArtBanner, Image: "https://artworks.thetvdb.com/banners/graphical/g.jpg"},
			{Type: models.TVDBArtBackground, Image: "https://artworks.thetvdb.com/banners/fanart/original/f.jpg"},
			{Type: models.TVDBArtBackground, Image: "https://artworks.thetvdb.com/banners/v4/series/267440/backgrounds/bg.jpg"},
			{Type: models.TVDBArtClearLogo, Image: "https://artworks.thetvdb.com/banners/v4/series/267440/clearlogo/cl.jpg"},
			{Type: models.TVDBArtSeasonPoster, Image: "https://artworks.thetvdb.com/banners/seasons/sp.jpg"},
		},
	}

	return &models.ProviderData{
		OMDB: &models.OMDBAnime{
			Poster:       "https://omdb/poster.jpg",
			TotalSeasons: "3",
			Response:     "True",
		},
		TMDB: tmdb,
		TVDB: tvdb,
		Fanart: &models.FanartAnime{
			HDTVLogo:       []models.FanartImage{{URL: "https://fanart/hdtvlogo.png"}},
			ClearLogo:      []models.FanartImage{{URL: "https://fanart/clearlogo.png"}},
			ClearArt:       []models.FanartImage{{URL: "https://fanart/clearart.png"}},
			TVPoster:       []models.FanartImage{{URL: "https://fanart/tvposter.jpg"}},
			TVBanner:       []models.FanartImage{{URL: "https://fanart/tvbanner.jpg"}},
			ShowBackground: []models.FanartImage{{URL: "https://fanart/bg.jpg"}},
			SeasonPoster: []models.FanartImage{
				{URL: "https://fanart/s1.jpg", Season: "1"},
				{URL: "https://fanart/s2.jpg", Season: "2"},
			},
		},
	}
}

func testCollector() *Collector {
	anime := &models.AniListAnime{BannerImage: "https://anilist/banner.jpg"}
	anime.CoverImage.ExtraLarge = "https://anilist/cover-xl.jpg"
	return NewCollector(anime, testData())
}

func TestNewCollectorSeedsAniListArtwork(t *testing.T) {
	c := testCollector()
	art := c.Artwork()
	if art.Poster != "https://anilist/cover-xl.jpg" {
		t.Fatalf("Expected anilist cover as initial poster, got %q", art.Poster)
	}
	if art.Banner != "https://anilist/banner.jpg" {
		t.Fatalf("Expected anilist banner, got %q", art.Banner)
	}
}

func TestSeasonProviders(t *testing.T) {
	c := testCollector()
	got := c.SeasonProviders()
	want := []models.Provider{models.ProviderOMDB, models.ProviderTMDB, models.ProviderTVDB}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestInitSeasons(t *testing.T) {
	t.Run("omdb count only", func(t *testing.T) {
		c := testCollector()
		seasons, err := c.InitSeasons(models.ProviderOMDB)
		if err != nil {
			t.Fatalf("InitSeasons: %v", err)
		}
		if len(seasons) != 3 {
			t.Fatalf("Expected 3 seasons, got %d", len(seasons))
		}
		if seasons[0].Name != "" || seasons[0].Poster != "" {
			t.Fatalf("OMDB scaffold must be empty, got %+v", seasons[0])
		}
	})

	t.Run("tmdb names and posters", func(t *testing.T) {
		c := testCollector()
		seasons, err := c.InitSeasons(models.ProviderTMDB)
		if err != nil {
			t.Fatalf("InitSeasons: %v", err)
		}
		if len(seasons) != 2 {
			t.Fatalf("Expected 2 seasons, got %d", len(seasons))
		}
		if seasons[0].Name != "Temporada 1" {
			t.Fatalf("Unexpected season name: %q", seasons[0].Name)
		}
		if seasons[0].Poster != "https://tmdb/original/s1a.jpg" {
			t.Fatalf("Unexpected suggested poster: %q", seasons[0].Poster)
		}
		if c.SeasonProvider() != models.ProviderTMDB {
			t.Fatalf("Expected tmdb season provider, got %s", c.SeasonProvider())
		}
	})

	t.Run("tvdb names and images", func(t *testing.T) {
		c := testCollector()
		seasons, err := c.InitSeasons(models.ProviderTVDB)
		if err != nil {
			t.Fatalf("InitSeasons: %v", err)
		}
		if len(seasons) != 1 || seasons[0].Poster != "https://tvdb/seasons/1.jpg" {
			t.Fatalf("Unexpected tvdb scaffold: %+v", seasons)
		}
	})

	t.Run("unparsable omdb count", func(t *testing.T) {
		data := testData()
		data.OMDB.TotalSeasons = "N/A"
		c := NewCollector(&models.AniListAnime{}, data)
		if _, err := c.InitSeasons(models.ProviderOMDB); !errors.Is(err, &apperrors.ErrMissingDependency{}) {
			t.Fatalf("Expected ErrMissingDependency, got %v", err)
		}
	})
}

func TestSetSeasonImageBounds(t *testing.T) {
	c := testCollector()
	if _, err := c.InitSeasons(models.ProviderTMDB); err != nil {
		t.Fatalf("InitSeasons: %v", err)
	}

	if err := c.SetSeasonImage(1, ImageFanart, "https://img/f.jpg"); err != nil {
		t.Fatalf("SetSeasonImage: %v", err)
	}
	if got := c.Seasons()[1].Fanart; got != "https://img/f.jpg" {
		t.Fatalf("Fanart not set: %q", got)
	}

	err := c.SetSeasonImage(5, ImagePoster, "https://img/p.jpg")
	if !errors.Is(err, &apperrors.ErrSeasonIndexOutOfRange{}) {
		t.Fatalf("Expected ErrSeasonIndexOutOfRange, got %v", err)
	}

	if err := c.SetSeasonImage(0, ImageLogo, "x"); !errors.Is(err, &apperrors.ErrInvalidSelection{}) {
		t.Fatalf("Expected ErrInvalidSelection for logo season slot, got %v", err)
	}
}

func TestCandidateImagesTVDB(t *testing.T) {
	c := testCollector()

	tests := []struct {
		name string
		t    ImageType
		want []string
	}{
		{"poster", ImagePoster, []string{"https://artworks.thetvdb.com/banners/posters/p.jpg"}},
		{"banner", ImageBanner, []string{"https://artworks.thetvdb.com/banners/graphical/g.jpg"}},
		{"fanart legacy path", ImageFanart, []string{"https://artworks.thetvdb.com/banners/fanart/original/f.jpg"}},
		{"background v4 path", ImageBackground, []string{"https://artworks.thetvdb.com/banners/v4/series/267440/backgrounds/bg.jpg"}},
		{"logo", ImageLogo, []string{"https://artworks.thetvdb.com/banners/v4/series/267440/clearlogo/cl.jpg"}},
		{"characterart unsupported", ImageCharacterArt, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CandidateImages(models.ProviderTVDB, tt.t)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestCandidateImagesFanartFallback(t *testing.T) {
	c := testCollector()

	// HD logo present: the SD clearlogo list is ignored.
	logos := c.CandidateImages(models.ProviderFanart, ImageLogo)
	if len(logos) != 1 || logos[0] != "https://fanart/hdtvlogo.png" {
		t.Fatalf("Expected hdtvlogo, got %v", logos)
	}

	// No HD clearart: falls back to clearart.
	arts := c.CandidateImages(models.ProviderFanart, ImageClearArt)
	if len(arts) != 1 || arts[0] != "https://fanart/clearart.png" {
		t.Fatalf("Expected clearart fallback, got %v", arts)
	}

	// No movieposter: falls back to tvposter.
	posters := c.CandidateImages(models.ProviderFanart, ImagePoster)
	if len(posters) != 1 || posters[0] != "https://fanart/tvposter.jpg" {
		t.Fatalf("Expected tvposter fallback, got %v", posters)
	}
}

func TestCandidateImagesOMDBAndTMDB(t *testing.T) {
	c := testCollector()

	if got := c.CandidateImages(models.ProviderOMDB, ImagePoster); len(got) != 1 || got[0] != "https://omdb/poster.jpg" {
		t.Fatalf("Unexpected omdb poster: %v", got)
	}
	if got := c.CandidateImages(models.ProviderOMDB, ImageBanner); got != nil {
		t.Fatalf("OMDB must only offer posters, got %v", got)
	}
	if got := c.CandidateImages(models.ProviderTMDB, ImagePoster); len(got) != 2 {
		t.Fatalf("Expected 2 tmdb posters, got %v", got)
	}
	if got := c.CandidateImages(models.ProviderTMDB, ImageFanart); len(got) != 1 {
		t.Fatalf("Expected tmdb backdrops for fanart, got %v", got)
	}

	data := testData()
	data.OMDB.Poster = "N/A"
	c2 := NewCollector(&models.AniListAnime{}, data)
	if got := c2.CandidateImages(models.ProviderOMDB, ImagePoster); got != nil {
		t.Fatalf("N/A poster must not be offered, got %v", got)
	}
}

func TestSeasonCandidateImages(t *testing.T) {
	c := testCollector()

	got := c.SeasonCandidateImages(models.ProviderFanart, 0, ImagePoster)
	if len(got) != 1 || got[0] != "https://fanart/s1.jpg" {
		t.Fatalf("Expected fanart season 1 poster, got %v", got)
	}
	got = c.SeasonCandidateImages(models.ProviderFanart, 2, ImagePoster)
	if got != nil {
		t.Fatalf("Expected no posters for season 3, got %v", got)
	}
	got = c.SeasonCandidateImages(models.ProviderTMDB, 0, ImagePoster)
	if len(got) != 1 || got[0] != "https://tmdb/original/s1a.jpg" {
		t.Fatalf("Expected tmdb season poster, got %v", got)
	}
	got = c.SeasonCandidateImages(models.ProviderTVDB, 0, ImagePoster)
	if len(got) != 1 || got[0] != "https://artworks.thetvdb.com/banners/seasons/sp.jpg" {
		t.Fatalf("Expected tvdb season poster, got %v", got)
	}
}

func TestImageProviders(t *testing.T) {
	c := testCollector()

	got := c.ImageProviders(ImagePoster)
	want := []models.Provider{models.ProviderOMDB, models.ProviderTMDB, models.ProviderTVDB, models.ProviderFanart}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	if got := c.ImageProviders(ImageCharacterArt); len(got) != 0 {
		t.Fatalf("Expected no characterart providers, got %v", got)
	}
}
