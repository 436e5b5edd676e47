package export

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"

	"github.com/klauspost/compress/zip"

	"github.com/davidvr/animeta/internal/apperrors"
	"github.com/davidvr/animeta/internal/config"
	"github.com/davidvr/animeta/internal/metrics"
	"github.com/davidvr/animeta/internal/models"
	"github.com/davidvr/animeta/internal/sanitize"
)

// Fetcher downloads one asset URL, returning the bytes and content type.
// The image proxy fetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// Archive is a finished metadata package.
type Archive struct {
	Filename string
	Content  []byte
}

// Packager assembles the downloadable metadata archive: the NFO document
// plus every selected image, fetched one at a time. At most one build runs
// at a time; a second request while one is in flight is rejected.
type Packager struct {
	fetcher  Fetcher
	building atomic.Bool
}

// NewPackager returns a Packager downloading assets through the fetcher.
func NewPackager(f Fetcher) *Packager {
	return &Packager{fetcher: f}
}

// Build packages the NFO text and the record's artwork into a zip archive.
// A single failed image download is logged and skipped; the archive is still
// produced with the remaining entries.
func (p *Packager) Build(ctx context.Context, nfoText string, rec *models.CanonicalRecord) (*Archive, error) {
	if !p.building.CompareAndSwap(false, true) {
		return nil, &apperrors.ErrExportInFlight{}
	}
	defer p.building.Store(false)

	archive, err := p.build(ctx, nfoText, rec)
	if err != nil {
		metrics.ExportArchivesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ExportArchivesTotal.WithLabelValues("success").Inc()
	return archive, nil
}

func (p *Packager) build(ctx context.Context, nfoText string, rec *models.CanonicalRecord) (*Archive, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("tvshow.nfo")
	if err != nil {
		return nil, fmt.Errorf("creating nfo entry: %w", err)
	}
	if _, err := w.Write([]byte(nfoText)); err != nil {
		return nil, fmt.Errorf("writing nfo entry: %w", err)
	}

	// Season slots map to Jellyfin's seasonNN-* naming; NN is 1-based.
	for i, season := range rec.Seasons {
		slots := []struct{ url, kind string }{
			{season.Poster, "poster"},
			{season.Fanart, "fanart"},
			{season.Banner, "banner"},
			{season.Background, "landscape"},
		}
		for _, slot := range slots {
			name := fmt.Sprintf("season%02d-%s.jpg", i+1, slot.kind)
			if err := p.addImage(ctx, zw, slot.url, name); err != nil {
				return nil, err
			}
		}
	}

	shows := []struct{ url, name string }{
		{rec.Artwork.Poster, "poster.jpg"},
		{rec.Artwork.Logo, "logo.jpg"},
		{rec.Artwork.ClearArt, "clearart.jpg"},
		{rec.Artwork.Fanart, "fanart.jpg"},
		{rec.Artwork.Background, "background.jpg"},
		{rec.Artwork.CharacterArt, "characterart.jpg"},
		{rec.Artwork.Banner, "banner.jpg"},
	}
	for _, img := range shows {
		if err := p.addImage(ctx, zw, img.url, img.name); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}

	return &Archive{
		Filename: sanitize.FileSlug(rec.Title) + "_metadata.zip",
		Content:  buf.Bytes(),
	}, nil
}

// addImage downloads one asset and stores it in the archive. An empty URL is
// an unselected slot and is skipped silently; a download failure is logged
// and skipped so one dead link never sinks the whole export. Archive write
// errors are fatal.
func (p *Packager) addImage(ctx context.Context, zw *zip.Writer, url, name string) error {
	if url == "" {
		return nil
	}
	body, _, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		metrics.ExportAssetsTotal.WithLabelValues("error").Inc()
		config.GetLogger().Warn().Err(err).Str("url", url).Str("entry", name).
			Msg("skipping artwork download")
		return nil
	}
	metrics.ExportAssetsTotal.WithLabelValues("success").Inc()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing archive entry %s: %w", name, err)
	}
	return nil
}
