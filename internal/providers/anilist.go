package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/davidvr/animeta/internal/client"
	"github.com/davidvr/animeta/internal/models"
)

const anilistEndpoint = "https://graphql.anilist.co/"

// animeQuery fetches everything the merge session needs in one round trip:
// titles, dates, artwork references, main studios, tags, the trailer and the
// top characters with their Japanese voice actors.
const animeQuery = `
query ($search: String, $type: MediaType!, $formats: [MediaFormat]) {
  Page(page: 1, perPage: 10) {
    media(search: $search, type: $type, format_in: $formats) {
      id
      idMal
      title {
        romaji
        english
        native
      }
      coverImage {
        medium
        extraLarge
      }
      bannerImage
      startDate {
        year
        month
        day
      }
      endDate {
        year
        month
        day
      }
      description
      season
      seasonYear
      type
      format
      status(version: 2)
      episodes
      duration
      chapters
      volumes
      genres
      isAdult
      averageScore
      popularity
      studios(isMain: true) {
        nodes {
          name
        }
      }
      tags {
        name
      }
      trailer {
        id
        site
      }
      characters(sort: ROLE, perPage: 10) {
        edges {
          node {
            name {
              full
              native
            }
            image {
              medium
            }
          }
          voiceActors(language: JAPANESE) {
            name {
              full
              native
            }
            image {
              medium
            }
          }
        }
      }
    }
  }
}`

// AniListClient searches the AniList GraphQL API.
type AniListClient struct {
	hc   *http.Client
	base string
}

// NewAniListClient returns a client using the shared HTTP client.
func NewAniListClient(hc *http.Client) *AniListClient {
	return &AniListClient{hc: hc, base: anilistEndpoint}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type animeQueryResponse struct {
	Data struct {
		Page struct {
			Media []models.AniListAnime `json:"media"`
		} `json:"Page"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// Search returns up to ten media entries matching the query. mediaType is
// "ANIME" or "MANGA"; formats optionally narrows by media format (TV, OVA,
// MOVIE, ...).
func (c *AniListClient) Search(ctx context.Context, query, mediaType string, formats []string) ([]models.AniListAnime, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	vars := map[string]any{
		"search": query,
		"type":   strings.ToUpper(mediaType),
	}
	if len(formats) > 0 {
		vars["formats"] = formats
	}

	var resp animeQueryResponse
	err := client.PostJSON(ctx, c.hc, c.base, nil, graphqlRequest{Query: animeQuery, Variables: vars}, &resp)
	if err == nil && len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		err = fmt.Errorf("anilist query failed: %s", strings.Join(msgs, ", "))
	}
	record("anilist", err)
	if err != nil {
		return nil, err
	}
	return resp.Data.Page.Media, nil
}
