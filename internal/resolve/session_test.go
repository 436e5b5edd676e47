package resolve

import (
	"errors"
	"testing"

	"github.com/davidvr/animeta/internal/apperrors"
	"github.com/davidvr/animeta/internal/models"
)

func testAnime() *models.AniListAnime {
	a := &models.AniListAnime{
		ID: 101,
		Title: models.AniListTitle{
			Romaji:  "Shingeki no Kyojin",
			English: "Attack on Titan",
			Native:  "進撃の巨人",
		},
		StartDate:    models.DateParts{Year: 2013, Month: 4, Day: 7},
		EndDate:      models.DateParts{Year: 2013, Month: 9, Day: 28},
		Description:  "Humanity fights <i>titans</i>.",
		Status:       "FINISHED",
		Duration:     24,
		Genres:       []string{"Action", "Drama"},
		AverageScore: 84,
	}
	a.Studios.Nodes = []models.AniListStudio{{Name: "Wit Studio"}, {Name: "Production I.G"}}
	return a
}

func testData() *models.ProviderData {
	return &models.ProviderData{
		OMDB: &models.OMDBAnime{
			Title:      "Attack on Titan",
			Released:   "07 Apr 2013",
			Genre:      "Animation, Action, Adventure",
			Plot:       "Giant humanoids menace the last city.",
			Ratings:    []models.OMDBRating{{Source: "Internet Movie Database", Value: "9.1/10"}},
			IMDBID:     "tt2560140",
			IMDBRating: "9.1",
			IMDBVotes:  "563,402",
			Response:   "True",
		},
		TMDB: &models.TMDBAnime{
			ID:             1429,
			OriginalName:   "進撃の巨人",
			Overview:       "Tras su helada ciudad...",
			Status:         "Ended",
			FirstAirDate:   "2013-04-07",
			LastAirDate:    "2023-11-04",
			EpisodeRunTime: []int{25},
			VoteAverage:    8.7,
			Genres:         []models.TMDBGenre{{ID: 16, Name: "Animación"}},
			ExternalIDs:    models.TMDBExternalIDs{IMDBID: "tt2560140", TVDBID: 267440},
		},
		TVDB: &models.TVDBAnime{
			ID:             267440,
			Name:           "Attack on Titan",
			FirstAired:     "2013-04-07",
			Score:          8.9,
			AverageRuntime: 24,
			Status:         models.TVDBStatus{Name: "Ended"},
		},
		TVMaze: &models.TVMazeAnime{Show: models.TVMazeShow{ID: 1850}},
	}
}

func TestNewSessionDefaultsToPrimary(t *testing.T) {
	s := NewSession(testAnime(), testData())

	if s.Primary() != models.ProviderAniList {
		t.Fatalf("Expected anilist primary, got %s", s.Primary())
	}
	title := s.Field(FieldTitle)
	if title.Source != models.ProviderAniList || title.Value.Text != "Shingeki no Kyojin" {
		t.Fatalf("Unexpected default title: %+v", title)
	}
	plot := s.Field(FieldPlot)
	if plot.Value.Text != "Humanity fights titans." {
		t.Fatalf("Expected stripped plot, got %q", plot.Value.Text)
	}
}

func TestCandidatesOrderAndFiltering(t *testing.T) {
	s := NewSession(testAnime(), testData())

	cands := s.Candidates(FieldScore)
	if len(cands) != 4 {
		t.Fatalf("Expected 4 score candidates, got %d", len(cands))
	}
	if cands[0].Source != models.ProviderAniList {
		t.Fatalf("Expected primary candidate first, got %s", cands[0].Source)
	}
	if cands[2].Source != models.ProviderTMDB || cands[2].Value.Text != "8.7 /10" {
		t.Fatalf("Unexpected tmdb score candidate: %+v", cands[2])
	}
	for _, c := range cands {
		if c.Value.IsEmpty() {
			t.Fatalf("Candidate from %s is empty", c.Source)
		}
	}

	// endDate: OMDB and TVDB offer nothing, so only anilist and tmdb remain.
	ends := s.Candidates(FieldEndDate)
	if len(ends) != 2 {
		t.Fatalf("Expected 2 endDate candidates, got %d", len(ends))
	}
}

func TestSelectAndInvalidSelection(t *testing.T) {
	s := NewSession(testAnime(), testData())

	if err := s.Select(FieldPlot, models.ProviderOMDB); err != nil {
		t.Fatalf("Select omdb plot: %v", err)
	}
	got := s.Field(FieldPlot)
	if got.Source != models.ProviderOMDB || got.Value.Text != "Giant humanoids menace the last city." {
		t.Fatalf("Unexpected plot after select: %+v", got)
	}

	// TVMaze never offers field values.
	err := s.Select(FieldPlot, models.ProviderTVMaze)
	if !errors.Is(err, &apperrors.ErrInvalidSelection{}) {
		t.Fatalf("Expected ErrInvalidSelection, got %v", err)
	}
	if after := s.Field(FieldPlot); after.Source != models.ProviderOMDB {
		t.Fatalf("Failed selection must keep prior value, got %+v", after)
	}
}

func TestSetCustom(t *testing.T) {
	s := NewSession(testAnime(), testData())

	s.SetCustom(FieldTitle, models.TextValue("My Custom Title"))
	got := s.Field(FieldTitle)
	if got.Source != models.ProviderCustom || got.Value.Text != "My Custom Title" {
		t.Fatalf("Unexpected custom field: %+v", got)
	}
}

func TestSwitchPrimaryRederivesDefaults(t *testing.T) {
	s := NewSession(testAnime(), testData())

	if err := s.SwitchPrimary(models.ProviderTMDB); err != nil {
		t.Fatalf("SwitchPrimary: %v", err)
	}
	title := s.Field(FieldTitle)
	if title.Source != models.ProviderTMDB || title.Value.Text != "進撃の巨人" {
		t.Fatalf("Expected tmdb title default, got %+v", title)
	}
	cands := s.Candidates(FieldTitle)
	if cands[0].Source != models.ProviderTMDB {
		t.Fatalf("Expected tmdb candidate first after switch, got %s", cands[0].Source)
	}
}

func TestSwitchPrimaryKeepsSurvivingOverrides(t *testing.T) {
	data := testData()
	// TMDB carries no status, so a TMDB status override cannot survive.
	data.TMDB.Status = ""

	s := NewSession(testAnime(), data)
	if err := s.Select(FieldScore, models.ProviderOMDB); err != nil {
		t.Fatalf("Select omdb score: %v", err)
	}
	if err := s.Select(FieldStatus, models.ProviderTVDB); err != nil {
		t.Fatalf("Select tvdb status: %v", err)
	}

	if err := s.SwitchPrimary(models.ProviderTMDB); err != nil {
		t.Fatalf("SwitchPrimary: %v", err)
	}

	// OMDB still offers a score: the override stays.
	if got := s.Field(FieldScore); got.Source != models.ProviderOMDB {
		t.Fatalf("Expected omdb score override to survive, got %+v", got)
	}
	// TVDB still offers status too: it stays.
	if got := s.Field(FieldStatus); got.Source != models.ProviderTVDB {
		t.Fatalf("Expected tvdb status override to survive, got %+v", got)
	}

	// Drop TVDB entirely and refresh: the status override source is gone, so
	// the field reverts to the primary default.
	data2 := testData()
	data2.TMDB.Status = ""
	data2.TVDB = nil
	s.SetProviderData(data2)
	if got := s.Field(FieldStatus); got.Source != models.ProviderTMDB {
		t.Fatalf("Expected status to revert to primary, got %+v", got)
	}
	if got := s.Field(FieldScore); got.Source != models.ProviderOMDB {
		t.Fatalf("Expected omdb score override to survive refresh, got %+v", got)
	}
}

func TestSwitchPrimaryRejectsNonFieldProviders(t *testing.T) {
	s := NewSession(testAnime(), testData())

	for _, p := range []models.Provider{models.ProviderTVMaze, models.ProviderFanart, models.ProviderCustom} {
		if err := s.SwitchPrimary(p); !errors.Is(err, &apperrors.ErrInvalidSelection{}) {
			t.Fatalf("Expected ErrInvalidSelection for %s, got %v", p, err)
		}
	}
	if s.Primary() != models.ProviderAniList {
		t.Fatalf("Primary must be unchanged after rejected switch, got %s", s.Primary())
	}
}

func TestSwitchPrimaryRejectsUnloadedProvider(t *testing.T) {
	data := testData()
	data.TVDB = nil
	s := NewSession(testAnime(), data)

	if err := s.SwitchPrimary(models.ProviderTVDB); !errors.Is(err, &apperrors.ErrInvalidSelection{}) {
		t.Fatalf("Expected ErrInvalidSelection, got %v", err)
	}
}

func TestCanonicalAssembly(t *testing.T) {
	s := NewSession(testAnime(), testData())
	if err := s.Select(FieldScore, models.ProviderTMDB); err != nil {
		t.Fatalf("Select: %v", err)
	}

	seasons := []models.SeasonRecord{{Name: "Season 1"}}
	artwork := models.ArtworkSet{Poster: "https://img/poster.jpg"}
	rec := s.Canonical(seasons, artwork)

	if rec.Title != "Shingeki no Kyojin" {
		t.Fatalf("Unexpected title: %q", rec.Title)
	}
	if rec.Score != "8.7 /10" {
		t.Fatalf("Unexpected score: %q", rec.Score)
	}
	if rec.IMDBID != "tt2560140" || rec.IMDBRating != "9.1" {
		t.Fatalf("Unexpected imdb fields: %q %q", rec.IMDBID, rec.IMDBRating)
	}
	if rec.IMDBVotes != "563402" {
		t.Fatalf("Expected comma-stripped votes, got %q", rec.IMDBVotes)
	}
	if rec.TMDBID != 1429 || rec.TVDBID != 267440 || rec.TVMazeID != 1850 {
		t.Fatalf("Unexpected ids: %d %d %d", rec.TMDBID, rec.TVDBID, rec.TVMazeID)
	}
	if len(rec.Studios) != 2 || rec.Studios[0] != "Wit Studio" {
		t.Fatalf("Unexpected studios: %v", rec.Studios)
	}
	if len(rec.Genres) != 2 || rec.Genres[1] != "Drama" {
		t.Fatalf("Unexpected genres: %v", rec.Genres)
	}
	if rec.StartDate != (models.DateParts{Year: 2013, Month: 4, Day: 7}) {
		t.Fatalf("Unexpected start date: %+v", rec.StartDate)
	}
	if len(rec.Seasons) != 1 || rec.Artwork.Poster != "https://img/poster.jpg" {
		t.Fatalf("Seasons/artwork not carried through")
	}
}

func TestCanonicalWithoutSecondaryData(t *testing.T) {
	s := NewSession(testAnime(), nil)
	rec := s.Canonical(nil, models.ArtworkSet{})

	if rec.IMDBID != "" || rec.TMDBID != 0 || rec.TVDBID != 0 || rec.TVMazeID != 0 {
		t.Fatalf("Expected empty external ids, got %+v", rec)
	}
	if rec.Title != "Shingeki no Kyojin" {
		t.Fatalf("Unexpected title: %q", rec.Title)
	}
}
