package roster

import (
	"context"
	"regexp"
	"strings"

	"rosterharvest/lib/htmlutil"
	"rosterharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

var nonDigitRegex = regexp.MustCompile(`[^\d]`)

var newWindowRegex = regexp.MustCompile(`\s*Opens in a new window.*$`)

// wordpressRoster handles custom WordPress rosters built from
// li.person__item blocks. The "#7"-style person__number span is the
// player marker: items without one are coaching staff and skipped.
type wordpressRoster struct{}

func (wordpressRoster) Name() string { return "person-item" }

func (wordpressRoster) Detect(p Page) bool {
	return p.Doc.Find("li.person__item").Length() > 0
}

func (wordpressRoster) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("li.person__item").Each(func(_ int, item *goquery.Selection) {
		numberSpan := item.Find("span.person__number").First()
		if numberSpan.Length() == 0 {
			return
		}
		// the badge must actually be a number; staff entries sometimes
		// carry a lettered one
		jersey := nonDigitRegex.ReplaceAllString(numberSpan.Text(), "")
		if jersey == "" {
			return
		}

		nameLink := item.Find("a.custom-value").First()
		name := strings.TrimSpace(nameLink.AttrOr("data-custom-value", ""))
		if name == "" {
			return
		}
		profileURL := ""
		if href := nameLink.AttrOr("href", ""); href != "" {
			profileURL = htmlutil.AbsoluteURL(origin, href)
		}

		height := ""
		if subtitle := item.Find("div.person__subtitle").First(); subtitle.Length() > 0 {
			values := subtitle.Find("span.person__value")
			if values.Length() > 0 {
				height = textutil.Height(values.Eq(0).Text())
			}
			// second value span is weight, which we don't carry
		}

		position := ""
		year := ""
		hometown := ""
		major := ""
		item.Find("div.person__meta div.meta__row").Each(func(_ int, row *goquery.Selection) {
			label := strings.ToLower(strings.TrimSpace(row.Find("div.meta__name").First().Text()))
			label = strings.TrimSuffix(label, ":")
			value := strings.TrimSpace(row.Find("div.meta__value").First().Text())
			value = strings.TrimSpace(newWindowRegex.ReplaceAllString(value, ""))
			if value == "" {
				return
			}
			switch label {
			case "position":
				position = textutil.Position(value)
			case "year":
				year = textutil.AcademicYear(value)
			case "hometown":
				hometown = value
			case "major":
				major = value
			}
		})

		players = append(players, Player{
			Name:     name,
			Jersey:   jersey,
			Position: position,
			Height:   height,
			Year:     year,
			Major:    major,
			Hometown: hometown,
			URL:      profileURL,
		})
	})
	return players
}
