// Package rosterurl builds roster page URLs for the handful of URL
// pattern families athletic sites use, and produces the ordered list
// of alternate URLs tried when the primary form fails.
package rosterurl

import (
	"fmt"
	"strconv"
	"strings"
)

// URL pattern families. A team is mapped to a family through its site
// profile, or auto-detected from its base URL path.
const (
	FamilyDefault     = "default"          // {base}/roster/{season}
	FamilyIndex       = "wsoc_index"       // /index suffix rewritten to /roster/{season}
	FamilyPlain       = "wsoc_plain"       // same as default, distinct for auto-detection
	FamilyTableView   = "ucf_table"        // {base}/roster/season/{season}?view=table
	FamilySeasonSlash = "virginia_season"  // {base}/roster/season/{range}/
	FamilyYearTable   = "clemson_roster"   // {base}/roster/season/{year}/?view=table
	FamilyYearSlash   = "kentucky_season"  // {base}/roster/season/{year}/
	FamilyRangeFirst  = "wsoc_season_range" // {base}/{range}/roster
)

// SeasonRange converts a single year to the two-year range form,
// "2025" -> "2025-26". Input already in range form passes through.
func SeasonRange(season string) string {
	year, err := strconv.Atoi(season)
	if err != nil {
		return season
	}
	next := strconv.Itoa(year + 1)
	return fmt.Sprintf("%d-%s", year, next[len(next)-2:])
}

// TrailingYear reduces a hyphenated season to its trailing year,
// zero-padded to four digits: "2024-25" -> "2025".
func TrailingYear(season string) string {
	if !strings.Contains(season, "-") {
		return season
	}
	parts := strings.SplitN(season, "-", 2)
	year := parts[1]
	if len(year) == 2 {
		year = "20" + year
	}
	return year
}

// Build produces the primary roster URL for a base URL, season and
// pattern family. A base that already embeds a full roster path is
// returned unchanged.
func Build(base, season, family string) string {
	base = strings.TrimSuffix(base, "/")

	if strings.Contains(base, "/roster/") {
		return base
	}

	switch family {
	case FamilyIndex:
		if strings.Contains(base, "/index") {
			return strings.Replace(base, "/index", "/roster/"+season, 1)
		}
		return base + "/roster/" + season
	case FamilyTableView:
		return base + "/roster/season/" + season + "?view=table"
	case FamilySeasonSlash:
		return base + "/roster/season/" + SeasonRange(season) + "/"
	case FamilyYearTable:
		return base + "/roster/season/" + TrailingYear(season) + "/?view=table"
	case FamilyYearSlash:
		return base + "/roster/season/" + TrailingYear(season) + "/"
	case FamilyRangeFirst:
		clean := strings.Replace(base, "/index", "", 1)
		return clean + "/" + SeasonRange(season) + "/roster"
	default:
		return base + "/roster/" + season
	}
}

// DetectFamily guesses the pattern family from path segments of an
// unconfigured team's URL.
func DetectFamily(teamURL string) string {
	switch {
	case strings.Contains(teamURL, "/sports/wsoc/index"),
		strings.Contains(teamURL, "/Sports/wsoc"):
		return FamilyIndex
	case strings.Contains(teamURL, "/sports/wsoc"):
		return FamilyPlain
	default:
		return FamilyDefault
	}
}

// Alternates returns the fallback URLs tried, in order, after the
// primary form fails: the season-range form, then a bare /roster/
// with no season segment at all.
func Alternates(base, season string) []string {
	base = strings.TrimSuffix(base, "/")
	clean := strings.TrimSuffix(base, "/index")
	return []string{
		clean + "/" + SeasonRange(season) + "/roster",
		base + "/roster/",
	}
}
