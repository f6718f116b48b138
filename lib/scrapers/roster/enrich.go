package roster

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"

	"rosterharvest/lib/htmlutil"
	"rosterharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Enricher backfills missing fields from individual player bio pages.
// It runs only after a roster has been accepted: enrichment adds
// fields, it never decides acceptance and never overwrites a value the
// roster page already supplied.
type Enricher struct {
	fetcher Fetcher
	// Limit bounds concurrent bio-page fetches per team.
	Limit int
}

func NewEnricher(fetcher Fetcher) *Enricher {
	return &Enricher{fetcher: fetcher, Limit: 4}
}

// ShouldEnrich reports whether a team's accepted roster qualifies:
// either the site profile marks it, or more than 20% of records are
// missing a position while carrying a profile URL.
func (e *Enricher) ShouldEnrich(players []Player, profile SiteProfile) bool {
	if len(players) == 0 {
		return false
	}
	if profile.EnrichBio {
		return true
	}
	missing := 0
	for _, p := range players {
		if p.Position == "" && p.URL != "" {
			missing++
		}
	}
	return float64(missing)/float64(len(players)) > 0.2
}

// Apply fetches bio pages for records with a profile URL and fills in
// missing position, year, hometown and high school. Record order is
// preserved; a failed fetch leaves that record untouched.
func (e *Enricher) Apply(ctx context.Context, players []Player, profile SiteProfile) []Player {
	ctx, span := tracer.Start(ctx, "EnrichFromBios")
	defer span.End()

	limit := e.Limit
	if limit <= 0 {
		limit = 4
	}
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := range players {
		if players[i].URL == "" {
			continue
		}
		if !profile.EnrichBio && players[i].Position != "" {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(p *Player) {
			defer wg.Done()
			defer func() { <-sem }()
			e.enrichOne(ctx, p)
		}(&players[i])
	}
	wg.Wait()
	return players
}

func (e *Enricher) enrichOne(ctx context.Context, p *Player) {
	status, body, err := e.fetcher.Fetch(ctx, p.URL)
	if err != nil || status != 200 {
		slog.DebugContext(ctx, "bio page fetch failed",
			"player", p.Name, "url", p.URL, "status", status, "err", err)
		return
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return
	}

	pairs := htmlutil.LabelledPairs(doc, "span.player-info__label", "span.player-info__value")
	pairs = append(pairs, htmlutil.LabelledPairs(doc, "span.sidearm-roster-player-field-label", "")...)

	for _, pair := range pairs {
		switch {
		case strings.Contains(pair.Label, "position"):
			if p.Position == "" {
				p.Position = textutil.Position(pair.Value)
			}
		case strings.Contains(pair.Label, "hometown"):
			if p.Hometown == "" {
				p.Hometown = textutil.Clean(pair.Value)
			}
		case strings.Contains(pair.Label, "high school"):
			if p.HighSchool == "" {
				p.HighSchool = textutil.Clean(pair.Value)
			}
		case strings.Contains(pair.Label, "class"):
			if p.Year == "" {
				p.Year = textutil.AcademicYear(textutil.Clean(pair.Value))
			}
		case strings.Contains(pair.Label, "height"):
			if p.Height == "" {
				p.Height = textutil.Height(pair.Value)
			}
		}
	}
}
