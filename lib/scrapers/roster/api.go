package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"rosterharvest/lib/textutil"
)

var oasURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`https?://[^"\s]*?/website-api/player-rosters[^"\s]*`),
	regexp.MustCompile(`/website-api/player-rosters[^"\s]*`),
	regexp.MustCompile(`website-api/player-rosters[^"\s]*`),
}

// oasIncludes are the relation expansions the player-rosters endpoint
// needs to return a complete record.
var oasIncludes = []string{
	"player",
	"photo",
	"classLevel",
	"playerPosition",
	"profileFieldValues.profileField",
	"profileFieldValues",
	"roster.sport",
	"roster.season",
}

// oasAPI handles Nuxt-built sites that render the roster client-side
// from an embedded "website-api/player-rosters" JSON endpoint. The
// page markup carries the API URL; the roster itself comes from a
// second fetch.
type oasAPI struct {
	fetcher Fetcher
}

func (oasAPI) Name() string { return "oas-api" }

func (oasAPI) Detect(p Page) bool {
	for _, pattern := range oasURLPatterns {
		if pattern.MatchString(p.Raw) {
			return true
		}
	}
	return false
}

func (f oasAPI) Extract(ctx context.Context, p Page, team Team) []Player {
	apiURL := ""
	for _, pattern := range oasURLPatterns {
		if m := pattern.FindString(p.Raw); m != "" {
			apiURL = m
			break
		}
	}
	if apiURL == "" || f.fetcher == nil {
		return nil
	}

	resolved, err := resolveOASURL(apiURL, team.BaseURL)
	if err != nil {
		slog.WarnContext(ctx, "could not resolve roster api url",
			"team", team.Name, "url", apiURL, "err", err)
		return nil
	}

	status, body, err := f.fetcher.Fetch(ctx, resolved)
	if err != nil || status != 200 {
		slog.WarnContext(ctx, "roster api request failed",
			"team", team.Name, "url", resolved, "status", status, "err", err)
		return nil
	}

	return parseOASPayload(ctx, body, team)
}

// resolveOASURL normalizes an API URL lifted from page markup: makes
// it absolute against the team's origin, swaps the "oas-backend"
// placeholder host for the real one, and forces the include and
// pagination parameters the full record set needs.
func resolveOASURL(apiURL, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	scheme := base.Scheme
	if scheme == "" {
		scheme = "https"
	}

	if !strings.HasPrefix(apiURL, "http") {
		apiURL = scheme + "://" + base.Host + "/" + strings.TrimPrefix(apiURL, "/")
	}
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Host == "oas-backend" {
		parsed.Host = base.Host
		parsed.Scheme = scheme
	}

	query := parsed.Query()
	includes := []string{}
	if raw := query.Get("include"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part != "" {
				includes = append(includes, part)
			}
		}
	}
	for _, inc := range oasIncludes {
		found := false
		for _, existing := range includes {
			if existing == inc {
				found = true
				break
			}
		}
		if !found {
			includes = append(includes, inc)
		}
	}
	query.Set("include", strings.Join(includes, ","))
	if query.Get("per_page") == "" {
		query.Set("per_page", "200")
	}
	if query.Get("page") == "" {
		query.Set("page", "1")
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

type oasPayload struct {
	Data []oasItem `json:"data"`
}

type oasItem struct {
	Player            oasPlayer   `json:"player"`
	JerseyNumberLabel string      `json:"jersey_number_label"`
	JerseyNumber      json.Number `json:"jersey_number"`
	PlayerPosition    *oasRef     `json:"player_position"`
	ClassLevel        *oasRef     `json:"class_level"`
}

type oasPlayer struct {
	FullName          string      `json:"full_name"`
	FirstName         string      `json:"first_name"`
	LastName          string      `json:"last_name"`
	JerseyNumberLabel string      `json:"jersey_number_label"`
	JerseyNumber      json.Number `json:"jersey_number"`
	HeightFeet        *int        `json:"height_feet"`
	HeightInches      *int        `json:"height_inches"`
	Major             string      `json:"major"`
	Hometown          string      `json:"hometown"`
	HighSchool        string      `json:"high_school"`
	PreviousSchool    string      `json:"previous_school"`
	Slug              string      `json:"slug"`
}

type oasRef struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

func parseOASPayload(ctx context.Context, body []byte, team Team) []Player {
	var payload oasPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.WarnContext(ctx, "could not decode roster api payload",
			"team", team.Name, "err", err)
		return nil
	}

	origin := profileOrigin(team)
	var players []Player
	for _, item := range payload.Data {
		info := item.Player

		name := info.FullName
		if name == "" {
			name = strings.TrimSpace(info.FirstName + " " + info.LastName)
		}
		if name == "" {
			continue
		}

		jersey := firstNonEmpty(
			info.JerseyNumberLabel,
			item.JerseyNumberLabel,
			info.JerseyNumber.String(),
			item.JerseyNumber.String(),
		)

		position := ""
		if item.PlayerPosition != nil {
			position = textutil.Position(firstNonEmpty(
				item.PlayerPosition.Abbreviation, item.PlayerPosition.Name))
		}

		height := ""
		if info.HeightFeet != nil && info.HeightInches != nil {
			height = fmt.Sprintf("%d-%d", *info.HeightFeet, *info.HeightInches)
		} else if info.HeightFeet != nil {
			height = fmt.Sprintf("%d", *info.HeightFeet)
		}

		year := ""
		if item.ClassLevel != nil {
			year = textutil.AcademicYear(firstNonEmpty(
				item.ClassLevel.Name, item.ClassLevel.Abbreviation))
		}

		profileURL := ""
		if info.Slug != "" && origin != "" {
			profileURL = origin + "/sports/womens-soccer/roster/" + info.Slug
		}

		players = append(players, Player{
			Name:           name,
			Jersey:         jersey,
			Position:       position,
			Height:         height,
			Year:           year,
			Major:          info.Major,
			Hometown:       info.Hometown,
			HighSchool:     info.HighSchool,
			PreviousSchool: info.PreviousSchool,
			URL:            profileURL,
		})
	}
	return players
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
