package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const bioPage = `
<div class="player-info">
  <ul>
    <li><span class="player-info__label">Position</span><span class="player-info__value">Midfielder</span></li>
    <li><span class="player-info__label">Class</span><span class="player-info__value">So.</span></li>
    <li><span class="player-info__label">Height</span><span class="player-info__value">5'6"</span></li>
    <li><span class="player-info__label">Hometown</span><span class="player-info__value">Tulsa, Okla.</span></li>
    <li><span class="player-info__label">High School</span><span class="player-info__value">Union</span></li>
  </ul>
</div>`

func TestShouldEnrich(t *testing.T) {
	e := NewEnricher(nil)

	require.False(t, e.ShouldEnrich(nil, SiteProfile{}))
	require.True(t, e.ShouldEnrich([]Player{{Name: "A"}}, SiteProfile{EnrichBio: true}))

	// 3 of 10 missing a position while carrying a URL is over threshold
	players := make([]Player, 10)
	for i := range players {
		players[i].URL = "https://x.edu/p"
		players[i].Position = "M"
	}
	players[0].Position = ""
	players[1].Position = ""
	require.False(t, e.ShouldEnrich(players, SiteProfile{}))
	players[2].Position = ""
	require.True(t, e.ShouldEnrich(players, SiteProfile{}))

	// missing position without a URL cannot be enriched, so it doesn't count
	players[2].URL = ""
	require.False(t, e.ShouldEnrich(players, SiteProfile{}))
}

func TestApplyFillsOnlyMissingFields(t *testing.T) {
	fetcher := &stubFetcher{responses: map[string]stubResponse{
		"https://x.edu/roster/a": {status: 200, body: bioPage},
	}}
	e := NewEnricher(fetcher)

	players := []Player{
		{Name: "A", URL: "https://x.edu/roster/a", Year: "Senior"},
		{Name: "B"},
	}
	out := e.Apply(context.Background(), players, SiteProfile{})
	require.Len(t, out, 2)

	a := out[0]
	require.Equal(t, "A", a.Name)
	require.Equal(t, "M", a.Position)
	require.Equal(t, "5'6\"", a.Height)
	require.Equal(t, "Tulsa, Okla.", a.Hometown)
	require.Equal(t, "Union", a.HighSchool)
	// value from the roster page wins over the bio page
	require.Equal(t, "Senior", a.Year)

	// no URL, untouched
	require.Equal(t, Player{Name: "B"}, out[1])
}

func TestApplySkipsCompleteRecords(t *testing.T) {
	fetcher := &stubFetcher{responses: map[string]stubResponse{}}
	e := NewEnricher(fetcher)

	players := []Player{
		{Name: "A", URL: "https://x.edu/roster/a", Position: "F"},
	}
	e.Apply(context.Background(), players, SiteProfile{})
	require.Empty(t, fetcher.requested())

	// enrich_bio teams fetch even when a position is present
	e.Apply(context.Background(), players, SiteProfile{EnrichBio: true})
	require.Equal(t, []string{"https://x.edu/roster/a"}, fetcher.requested())
}

func TestApplyFetchFailureLeavesRecord(t *testing.T) {
	fetcher := &stubFetcher{responses: map[string]stubResponse{}}
	e := NewEnricher(fetcher)

	players := []Player{{Name: "A", URL: "https://x.edu/roster/missing"}}
	out := e.Apply(context.Background(), players, SiteProfile{})
	require.Equal(t, Player{Name: "A", URL: "https://x.edu/roster/missing"}, out[0])
}

func TestEnrichSidearmLabelFamily(t *testing.T) {
	fetcher := &stubFetcher{responses: map[string]stubResponse{
		"https://x.edu/roster/a": {status: 200, body: `
<div>
  <div><span class="sidearm-roster-player-field-label">Position</span><span>Forward</span></div>
  <div><span class="sidearm-roster-player-field-label">Hometown</span><span>Boise, Idaho</span></div>
</div>`},
	}}
	e := NewEnricher(fetcher)

	players := []Player{{Name: "A", URL: "https://x.edu/roster/a"}}
	out := e.Apply(context.Background(), players, SiteProfile{})
	require.Equal(t, "F", out[0].Position)
	require.Equal(t, "Boise, Idaho", out[0].Hometown)
}

func TestApplyPreservesOrder(t *testing.T) {
	fetcher := &stubFetcher{responses: map[string]stubResponse{}}
	for i := 0; i < 12; i++ {
		fetcher.responses["https://x.edu/roster/p"+string(rune('a'+i))] = stubResponse{status: 200, body: bioPage}
	}
	e := NewEnricher(fetcher)

	players := make([]Player, 12)
	for i := range players {
		players[i].Name = string(rune('a' + i))
		players[i].URL = "https://x.edu/roster/p" + string(rune('a'+i))
	}
	out := e.Apply(context.Background(), players, SiteProfile{})
	for i := range out {
		require.Equal(t, string(rune('a'+i)), out[i].Name)
		require.Equal(t, "M", out[i].Position)
	}
}
