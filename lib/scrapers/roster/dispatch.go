package roster

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("lib/scrapers/roster")

// Dispatcher runs the layout strategies in priority order against one
// fetched page. The first strategy whose Detect fires owns the page;
// the generic table strategy runs last and unconditionally, so a page
// no strategy recognizes simply yields zero records.
type Dispatcher struct {
	formats []Format
	tail    Format
}

// NewDispatcher builds the standard cascade. The fetcher is handed to
// the API strategy, which needs a second request for the roster JSON.
func NewDispatcher(fetcher Fetcher) *Dispatcher {
	return &Dispatcher{
		formats: []Format{
			sidearmList{},
			sidearmListItem{},
			sidearmCardItem{},
			oasAPI{fetcher: fetcher},
			dataFieldTable{},
			modRosterTable{},
			playersTable{},
			prestoTable{},
			personCard{},
			playerCard{},
			wmtRoster{},
			wordpressRoster{},
		},
		tail: genericTable{},
	}
}

// Dispatch extracts players from a page and stamps team identity onto
// every record.
func (d *Dispatcher) Dispatch(ctx context.Context, p Page, team Team) Outcome {
	ctx, span := tracer.Start(ctx, "Dispatch")
	defer span.End()

	outcome := Outcome{URL: p.URL}
	for _, format := range d.formats {
		if !format.Detect(p) {
			continue
		}
		outcome.Format = format.Name()
		outcome.Players = format.Extract(ctx, p, team)
		break
	}
	if outcome.Format == "" {
		outcome.Format = d.tail.Name()
		outcome.Players = d.tail.Extract(ctx, p, team)
	}

	for i := range outcome.Players {
		outcome.Players[i].TeamID = team.ID
		outcome.Players[i].Team = team.Name
		outcome.Players[i].Season = team.Season
		outcome.Players[i].Division = team.Division
	}

	span.SetAttributes(
		attribute.String("format", outcome.Format),
		attribute.Int("players", len(outcome.Players)),
	)
	if len(outcome.Players) == 0 {
		slog.WarnContext(ctx, "no players extracted",
			"team", team.Name, "url", p.URL, "format", outcome.Format)
	}
	return outcome
}
