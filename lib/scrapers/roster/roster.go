// Package roster extracts structured player records from the
// heterogeneous page layouts athletic sites use for team rosters.
// Detection and extraction strategies for each known layout family
// are run in priority order by the Dispatcher; the Orchestrator walks
// the fetch / extract / validate / retry ladder for one team.
package roster

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Player is one extracted roster record. Records are identified by
// (TeamID, Season, Name) but are not globally unique: the same player
// can be extracted from several alternate-URL attempts, and the
// orchestrator keeps only the accepted one.
type Player struct {
	TeamID         int    `json:"ncaa_id"`
	Team           string `json:"team"`
	Season         string `json:"season"`
	Division       string `json:"division,omitempty"`
	PlayerID       string `json:"-"`
	Name           string `json:"name"`
	Jersey         string `json:"jersey"`
	Position       string `json:"position"`
	Height         string `json:"height"`
	Year           string `json:"class"`
	Major          string `json:"major"`
	Hometown       string `json:"hometown"`
	HighSchool     string `json:"high_school"`
	PreviousSchool string `json:"previous_school"`
	URL            string `json:"url"`
}

// Team identifies one extraction run. Its fields are stamped onto
// every record by the dispatcher, never by individual extractors.
type Team struct {
	ID       int
	Name     string
	BaseURL  string
	Season   string
	Division string
}

// SiteProfile is the per-team override table, loaded from config and
// never mutated by the engine. A missing entry means the URL family
// is auto-detected and no script rendering is used.
type SiteProfile struct {
	URLFormat  string `json:"url_format"`
	RequiresJS bool   `json:"requires_js"`
	// EnrichBio marks teams whose list pages are known to omit
	// hometown / high school / class entirely but do link bio pages.
	EnrichBio bool   `json:"enrich_bio"`
	Notes     string `json:"notes"`
}

// Outcome is the transient result of one team's extraction.
type Outcome struct {
	Players  []Player
	Format   string
	URL      string
	Rendered bool
}

// Page is one fetched roster page handed to format strategies. Raw
// holds the undecoded markup text for formats whose signature lives
// outside the DOM (embedded API references).
type Page struct {
	Doc *goquery.Document
	Raw string
	URL string
}

// Fetcher is the transport collaborator. It carries no retry logic of
// its own; retries belong to the orchestrator.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (status int, body []byte, err error)
}

// Renderer is the script-execution collaborator, used only for teams
// flagged as requiring it.
type Renderer interface {
	Render(ctx context.Context, url string, wait time.Duration) ([]byte, error)
}

// Format is one "detect + extract" strategy for a single layout
// family. Extract never emits a record without a resolvable name.
type Format interface {
	Name() string
	Detect(p Page) bool
	Extract(ctx context.Context, p Page, team Team) []Player
}
