package roster

import (
	"context"
	"regexp"
	"strings"

	"rosterharvest/lib/htmlutil"
	"rosterharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

var socialHandleRegex = regexp.MustCompile(`@\w+.*$`)

// wmtRoster handles the WMT Digital platform: div.roster__item cards
// with a schema.org itemprop name span. Two sub-shapes exist: one puts
// jersey and profile link inside roster__image and details in
// roster__description paragraphs, the other uses roster-item__number
// and a single "Position - 6'4 ..." info line.
type wmtRoster struct{}

func (wmtRoster) Name() string { return "wmt" }

func (wmtRoster) Detect(p Page) bool {
	return p.Doc.Find("div.roster__item").Length() > 0
}

func (wmtRoster) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("div.roster__item").Each(func(_ int, item *goquery.Selection) {
		name := strings.TrimSpace(item.Find(`span[itemprop="name"]`).First().AttrOr("content", ""))
		if name == "" {
			return
		}

		jersey := ""
		profileURL := ""
		if image := item.Find("div.roster__image").First(); image.Length() > 0 {
			jersey = strings.TrimSpace(image.Find("span").First().Text())
			if link := image.Find("a[href]").First(); link.Length() > 0 {
				profileURL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
			}
		}
		if jersey == "" {
			jersey = strings.TrimSpace(item.Find("span.roster-item__number").First().Text())
		}
		if profileURL == "" {
			if link := item.Find("a[href]").First(); link.Length() > 0 {
				profileURL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
			}
		}

		position := textutil.Position(item.Find("div.roster__title").First().Text())

		height := ""
		year := ""
		hometown := ""
		highSchool := ""
		previousSchool := ""

		if info := item.Find("p.roster-item__info").First(); info.Length() > 0 {
			// single line: "Goalkeeper - 6'4" 185 lbs"
			text := textutil.Clean(info.Text())
			if idx := strings.Index(text, "-"); idx >= 0 {
				if position == "" {
					position = textutil.Position(text[:idx])
				}
				height = textutil.Height(text[idx+1:])
			}
		} else if desc := item.Find("div.roster__description").First(); desc.Length() > 0 {
			paragraphs := desc.Find("p")

			// first paragraph: height / weight / year
			if paragraphs.Length() > 0 {
				parts := strings.Split(textutil.Clean(paragraphs.Eq(0).Text()), "/")
				if len(parts) >= 1 {
					height = textutil.Height(parts[0])
				}
				if len(parts) >= 3 {
					year = textutil.AcademicYear(strings.TrimSpace(parts[2]))
				}
			}

			// second paragraph: hometown / high school / previous school
			if paragraphs.Length() > 1 {
				text := textutil.Clean(paragraphs.Eq(1).Text())
				text = strings.TrimSpace(socialHandleRegex.ReplaceAllString(text, ""))
				var parts []string
				for _, part := range strings.Split(text, "/") {
					if part = strings.TrimSpace(part); part != "" {
						parts = append(parts, part)
					}
				}
				if len(parts) >= 1 {
					hometown = parts[0]
				}
				if len(parts) >= 2 {
					highSchool = parts[1]
				}
				if len(parts) >= 3 {
					previousSchool = parts[2]
				}
			}
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
