package roster

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"rosterharvest/lib/htmlutil"
	"rosterharvest/lib/rosterurl"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Orchestrator walks the fetch / extract / validate ladder for one
// team: primary URL first, then the alternate URL forms, optionally
// through the script renderer for teams that need it. Exhausting the
// ladder is not an error; the team is simply zero-yield.
type Orchestrator struct {
	fetcher    Fetcher
	renderer   Renderer
	dispatcher *Dispatcher
	enricher   *Enricher
	profiles   map[int]SiteProfile

	// RenderWait is how long rendered pages are given to settle after
	// load before their markup is captured.
	RenderWait time.Duration
}

func NewOrchestrator(fetcher Fetcher, renderer Renderer, profiles map[int]SiteProfile) *Orchestrator {
	return &Orchestrator{
		fetcher:    fetcher,
		renderer:   renderer,
		dispatcher: NewDispatcher(fetcher),
		enricher:   NewEnricher(fetcher),
		profiles:   profiles,
		RenderWait: 5 * time.Second,
	}
}

// Scrape runs the full ladder for one team. A nil error with an empty
// outcome means every candidate URL was exhausted; errors are reserved
// for context cancellation.
func (o *Orchestrator) Scrape(ctx context.Context, team Team) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()
	span.SetAttributes(
		attribute.String("team", team.Name),
		attribute.String("season", team.Season),
	)

	profile := o.profiles[team.ID]

	family := profile.URLFormat
	if family == "" {
		family = rosterurl.DetectFamily(team.BaseURL)
	}
	primary := rosterurl.Build(team.BaseURL, team.Season, family)

	candidates := []string{primary}
	for _, alt := range rosterurl.Alternates(team.BaseURL, team.Season) {
		if !contains(candidates, alt) {
			candidates = append(candidates, alt)
		}
	}

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scrape aborted")
			return Outcome{}, err
		}

		page, rendered, ok := o.fetchPage(ctx, candidate, profile, team)
		if !ok {
			continue
		}

		if !htmlutil.SeasonOnPage(page.Doc, team.Season) {
			slog.DebugContext(ctx, "season heading not found on page",
				"team", team.Name, "url", candidate, "season", team.Season)
		}

		outcome := o.dispatcher.Dispatch(ctx, page, team)
		if !Validate(ctx, outcome.Players, team.Name) {
			slog.InfoContext(ctx, "attempt rejected, trying next candidate",
				"team", team.Name, "url", candidate, "players", len(outcome.Players))
			continue
		}

		outcome.URL = candidate
		outcome.Rendered = rendered
		if o.enricher.ShouldEnrich(outcome.Players, profile) {
			outcome.Players = o.enricher.Apply(ctx, outcome.Players, profile)
		}
		span.SetAttributes(
			attribute.String("url", candidate),
			attribute.String("format", outcome.Format),
			attribute.Int("players", len(outcome.Players)),
		)
		return outcome, nil
	}

	slog.WarnContext(ctx, "all candidate urls exhausted",
		"team", team.Name, "candidates", len(candidates))
	return Outcome{}, nil
}

// fetchPage retrieves one candidate URL, through the renderer for
// requires_js teams with a plain-transport fallback when rendering
// fails.
func (o *Orchestrator) fetchPage(ctx context.Context, url string, profile SiteProfile, team Team) (Page, bool, bool) {
	if profile.RequiresJS && o.renderer != nil {
		body, err := o.renderer.Render(ctx, url, o.RenderWait)
		if err == nil {
			if page, ok := parsePage(body, url); ok {
				return page, true, true
			}
		} else {
			slog.WarnContext(ctx, "render failed, falling back to plain fetch",
				"team", team.Name, "url", url, "err", err)
		}
	}

	status, body, err := o.fetcher.Fetch(ctx, url)
	if err != nil {
		slog.WarnContext(ctx, "fetch failed",
			"team", team.Name, "url", url, "err", err)
		return Page{}, false, false
	}
	if status != 200 {
		slog.InfoContext(ctx, "non-success status",
			"team", team.Name, "url", url, "status", status)
		return Page{}, false, false
	}
	page, ok := parsePage(body, url)
	return page, false, ok
}

func parsePage(body []byte, url string) (Page, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Page{}, false
	}
	return Page{Doc: doc, Raw: string(body), URL: url}, true
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
