package sanitize

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripTags removes all HTML markup from a synopsis, keeping only the text
// content. AniList and TVMaze ship descriptions with inline tags (<i>, <br>)
// that must not leak into NFO text nodes. Stripping already-plain text is a
// no-op, so the pass is safe to apply more than once.
func StripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

// slugFolder strips combining marks left behind by NFD decomposition,
// turning "Pokémon" into "Pokemon" before the slug pass.
var slugFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FileSlug turns a show title into a safe archive file stem: diacritics are
// folded to ASCII, every remaining non-alphanumeric rune becomes "_", and the
// result is lowercased.
func FileSlug(title string) string {
	folded, _, err := transform.String(slugFolder, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
