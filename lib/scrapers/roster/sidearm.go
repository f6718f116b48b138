package roster

import (
	"context"
	"strings"

	"rosterharvest/lib/htmlutil"
	"rosterharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

func profileOrigin(team Team) string {
	origin, err := htmlutil.Origin(team.BaseURL)
	if err != nil {
		return ""
	}
	return origin
}

// nameAndLink resolves the player name and absolute profile URL from a
// container that holds the name either as a direct link or as plain
// text.
func nameAndLink(sel *goquery.Selection, origin string) (name, profileURL string) {
	link := sel.Find("a[href]").First()
	if link.Length() > 0 {
		name = textutil.Clean(link.Text())
		if name != "" {
			return name, htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
		}
	}
	return textutil.Clean(sel.Text()), ""
}

// classKeywordText finds the first span or div whose class name
// contains any of the keywords and whose text survives the given
// normalizer. Used as the fallback when a layout's canonical
// selectors miss.
func classKeywordText(item *goquery.Selection, keywords []string, normalize func(string) string) string {
	out := ""
	item.Find("span, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class := strings.ToLower(s.AttrOr("class", ""))
		for _, kw := range keywords {
			if strings.Contains(class, kw) {
				if v := normalize(s.Text()); v != "" {
					out = v
					return false
				}
			}
		}
		return true
	})
	return out
}

// sidearmList handles the most common layout family:
// <li class="sidearm-roster-player"> items with one span per field.
type sidearmList struct{}

func (sidearmList) Name() string { return "sidearm-list" }

func (sidearmList) Detect(p Page) bool {
	return p.Doc.Find("li.sidearm-roster-player").Length() > 0
}

func (sidearmList) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("li.sidearm-roster-player").Each(func(_ int, item *goquery.Selection) {
		// some schools put the name link in an h2 instead of h3
		nameElem := item.Find("h3").First()
		if nameElem.Length() == 0 {
			nameElem = item.Find("h2").First()
		}
		if nameElem.Length() == 0 {
			return
		}
		name, profileURL := nameAndLink(nameElem, origin)
		if name == "" {
			return
		}

		jersey := textutil.Clean(item.Find("span.sidearm-roster-player-jersey-number").First().Text())

		position := textutil.Position(item.Find("span.sidearm-roster-player-position-long-short").First().Text())
		if position == "" {
			position = textutil.Position(item.Find("div.sidearm-roster-player-position span.text-bold").First().Text())
		}
		if position == "" {
			position = classKeywordText(item, []string{"position", "pos"}, textutil.Position)
		}

		height := textutil.Height(item.Find("span.sidearm-roster-player-height").First().Text())
		year := textutil.AcademicYear(strings.TrimSpace(item.Find("span.sidearm-roster-player-academic-year").First().Text()))
		major := textutil.Clean(item.Find("span.sidearm-roster-player-major").First().Text())

		hometown := firstText(item,
			"span.sidearm-roster-player-hometown",
			"span.sidearm-roster-player-custom2")
		highSchool := firstText(item,
			"span.sidearm-roster-player-highschool",
			"span.sidearm-roster-player-custom3")
		previousSchool := firstText(item,
			"span.sidearm-roster-player-previous-school",
			"span.sidearm-roster-player-custom1")

		players = append(players, Player{
			Name:           name,
			Jersey:         jersey,
			Position:       position,
			Height:         height,
			Year:           year,
			Major:          major,
			Hometown:       hometown,
			HighSchool:     highSchool,
			PreviousSchool: previousSchool,
			URL:            profileURL,
		})
	})
	return players
}

func firstText(item *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		s := item.Find(sel).First()
		if s.Length() > 0 {
			if text := textutil.Clean(s.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// sidearmListItem is the alternate list variant: different structural
// classes, same semantic roles.
type sidearmListItem struct{}

func (sidearmListItem) Name() string { return "sidearm-list-item" }

func (sidearmListItem) Detect(p Page) bool {
	return p.Doc.Find("li.sidearm-roster-list-item").Length() > 0
}

func (sidearmListItem) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("li.sidearm-roster-list-item").Each(func(_ int, item *goquery.Selection) {
		jersey := ""
		if box := item.Find("div.sidearm-roster-list-item-number").First(); box.Length() > 0 {
			jersey = textutil.JerseyNumber(box.Text())
		}
		if photo := item.Find("div.sidearm-roster-list-item-photo-number").First(); photo.Length() > 0 {
			if span := photo.Find("span").First(); span.Length() > 0 {
				jersey = textutil.Clean(span.Text())
			} else {
				jersey = textutil.Clean(photo.Text())
			}
		}
		if jersey == "" {
			jersey = classKeywordText(item, []string{"number", "jersey"}, textutil.JerseyNumber)
		}

		name := ""
		profileURL := ""
		if nameDiv := item.Find("div.sidearm-roster-list-item-name").First(); nameDiv.Length() > 0 {
			name, profileURL = nameAndLink(nameDiv, origin)
		}
		if name == "" {
			// any anchor with visible text
			item.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
				if text := textutil.Clean(link.Text()); text != "" {
					name = text
					profileURL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
					return false
				}
				return true
			})
		}
		if name == "" {
			return
		}

		position := textutil.Position(item.Find("span.sidearm-roster-list-item-position").First().Text())
		if position == "" {
			position = classKeywordText(item, []string{"position", "pos"}, textutil.Position)
		}

		year := textutil.AcademicYear(strings.TrimSpace(item.Find("span.sidearm-roster-list-item-year").First().Text()))
		height := textutil.Height(item.Find("span.sidearm-roster-list-item-height").First().Text())
		hometown := textutil.Clean(item.Find("div.sidearm-roster-list-item-hometown").First().Text())

		highSchool := ""
		previousSchool := ""
		if hs := textutil.Clean(item.Find("span.sidearm-roster-list-item-highschool").First().Text()); hs != "" {
			highSchool, previousSchool = textutil.SplitParenSchool(hs)
		}
		if prev := textutil.Clean(item.Find("span.sidearm-roster-list-item-previous-school").First().Text()); prev != "" {
			previousSchool = prev
		}

		players = append(players, Player{
			Name:           name,
			Jersey:         jersey,
			Position:       position,
			Height:         height,
			Year:           year,
			Hometown:       hometown,
			HighSchool:     highSchool,
			PreviousSchool: previousSchool,
			URL:            profileURL,
		})
	})
	return players
}

// sidearmCardItem handles <li class="sidearm-list-card-item"> rosters,
// where height and year share one details div and hometown/school
// share another.
type sidearmCardItem struct{}

func (sidearmCardItem) Name() string { return "sidearm-card-item" }

func (sidearmCardItem) Detect(p Page) bool {
	return p.Doc.Find("li.sidearm-list-card-item").Length() > 0
}

func (sidearmCardItem) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("li.sidearm-list-card-item").Each(func(_ int, item *goquery.Selection) {
		nameLink := item.Find("a.sidearm-roster-player-name").First()
		if nameLink.Length() == 0 {
			return
		}
		name := textutil.Clean(nameLink.Text())
		if name == "" {
			return
		}
		profileURL := htmlutil.AbsoluteURL(origin, nameLink.AttrOr("href", ""))

		jersey := ""
		if j := item.Find("span.sidearm-roster-player-jersey span").First(); j.Length() > 0 {
			jersey = textutil.JerseyNumber(j.Text())
		}

		position := textutil.Position(item.Find("div.sidearm-roster-player-position-short").First().Text())

		height := ""
		year := ""
		if details := item.Find("div.sidearm-roster-details-height-weight-year-custom").First(); details.Length() > 0 {
			text := details.Text()
			height = textutil.Height(text)
			for _, part := range strings.Split(text, "/") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if y := textutil.AcademicYear(part); y != part || textutil.IsAcademicYear(part) {
					year = y
					break
				}
			}
		}

		hometown := ""
		highSchool := ""
		if loc := item.Find("div.sidearm-roster-details-hometown-schools").First(); loc.Length() > 0 {
			text := textutil.Clean(loc.Text())
			if idx := strings.Index(text, "/"); idx >= 0 {
				hometown = strings.TrimSpace(text[:idx])
				highSchool = strings.TrimSpace(text[idx+1:])
			} else {
				hometown = text
			}
		}

		players = append(players, Player{
			Name:       name,
			Jersey:     jersey,
			Position:   position,
			Height:     height,
			Year:       year,
			Hometown:   hometown,
			HighSchool: highSchool,
			URL:        profileURL,
		})
	})
	return players
}
