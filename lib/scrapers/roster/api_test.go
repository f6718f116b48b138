package roster

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveOASURL(t *testing.T) {
	base := "https://goxavier.com/sports/womens-soccer"

	t.Run("rooted path", func(t *testing.T) {
		resolved, err := resolveOASURL("/website-api/player-rosters?sport=wsoc", base)
		require.NoError(t, err)

		parsed, err := url.Parse(resolved)
		require.NoError(t, err)
		require.Equal(t, "https", parsed.Scheme)
		require.Equal(t, "goxavier.com", parsed.Host)
		require.Equal(t, "/website-api/player-rosters", parsed.Path)

		query := parsed.Query()
		require.Equal(t, "wsoc", query.Get("sport"))
		require.Equal(t, "200", query.Get("per_page"))
		require.Equal(t, "1", query.Get("page"))
		require.Contains(t, query.Get("include"), "player")
		require.Contains(t, query.Get("include"), "roster.season")
	})

	t.Run("placeholder host swapped", func(t *testing.T) {
		resolved, err := resolveOASURL("https://oas-backend/website-api/player-rosters", base)
		require.NoError(t, err)

		parsed, err := url.Parse(resolved)
		require.NoError(t, err)
		require.Equal(t, "goxavier.com", parsed.Host)
		require.Equal(t, "https", parsed.Scheme)
	})

	t.Run("existing parameters preserved", func(t *testing.T) {
		resolved, err := resolveOASURL(
			"https://goxavier.com/website-api/player-rosters?include=player&per_page=50", base)
		require.NoError(t, err)

		parsed, err := url.Parse(resolved)
		require.NoError(t, err)
		query := parsed.Query()
		require.Equal(t, "50", query.Get("per_page"))

		includes := strings.Split(query.Get("include"), ",")
		require.Equal(t, "player", includes[0])
		require.Contains(t, includes, "classLevel")
		// no duplicate for the include already present
		count := 0
		for _, inc := range includes {
			if inc == "player" {
				count++
			}
		}
		require.Equal(t, 1, count)
	})
}

func TestOASDetect(t *testing.T) {
	withAPI := Page{Raw: `<script>fetch("https://goxavier.com/website-api/player-rosters?page=1")</script>`}
	require.True(t, oasAPI{}.Detect(withAPI))

	plain := Page{Raw: `<html><body><p>roster</p></body></html>`}
	require.False(t, oasAPI{}.Detect(plain))
}

const oasPayloadBody = `{
  "data": [
    {
      "jersey_number_label": "10",
      "player_position": {"name": "Forward", "abbreviation": "F"},
      "class_level": {"name": "Junior", "abbreviation": "Jr."},
      "player": {
        "full_name": "Ivy Nolan",
        "height_feet": 5,
        "height_inches": 7,
        "major": "Finance",
        "hometown": "Dayton, Ohio",
        "high_school": "Oakwood",
        "slug": "ivy-nolan"
      }
    },
    {
      "jersey_number": 3,
      "player": {
        "first_name": "Amy",
        "last_name": "Lo",
        "height_feet": 5
      }
    },
    {
      "player": {}
    }
  ]
}`

func TestParseOASPayload(t *testing.T) {
	players := parseOASPayload(context.Background(), []byte(oasPayloadBody), testTeam)
	require.Len(t, players, 2)

	ivy := players[0]
	require.Equal(t, "Ivy Nolan", ivy.Name)
	require.Equal(t, "10", ivy.Jersey)
	require.Equal(t, "F", ivy.Position)
	require.Equal(t, "5-7", ivy.Height)
	require.Equal(t, "Junior", ivy.Year)
	require.Equal(t, "Finance", ivy.Major)
	require.Equal(t, "Dayton, Ohio", ivy.Hometown)
	require.Equal(t, "Oakwood", ivy.HighSchool)
	require.Equal(t, "https://goheels.com/sports/womens-soccer/roster/ivy-nolan", ivy.URL)

	amy := players[1]
	require.Equal(t, "Amy Lo", amy.Name)
	require.Equal(t, "3", amy.Jersey)
	require.Equal(t, "", amy.Position)
	require.Equal(t, "5", amy.Height)
	require.Equal(t, "", amy.URL)
}

func TestOASThroughDispatcher(t *testing.T) {
	apiRef := "https://goheels.com/website-api/player-rosters?sport=wsoc"
	resolved, err := resolveOASURL(apiRef, testTeam.BaseURL)
	require.NoError(t, err)

	fetcher := &stubFetcher{responses: map[string]stubResponse{
		resolved: {status: 200, body: oasPayloadBody},
	}}
	d := NewDispatcher(fetcher)

	markup := `<html><body><script>fetch("` + apiRef + `")</script></body></html>`
	page := makePage(t, markup)

	outcome := d.Dispatch(context.Background(), page, testTeam)
	require.Equal(t, "oas-api", outcome.Format)
	require.Len(t, outcome.Players, 2)
	require.Equal(t, []string{resolved}, fetcher.requested())
}
