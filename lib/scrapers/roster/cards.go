package roster

import (
	"context"
	"strings"

	"rosterharvest/lib/htmlutil"
	"rosterharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// personCard handles the newer card grid used on rebuilt athletic
// sites, where every field is a prefixed stat item ("Position Forward",
// "Academic Year Junior"). Coaching staff share the same card markup
// but carry no jersey number, which is how they get filtered out.
type personCard struct{}

func (personCard) Name() string { return "person-card" }

func (personCard) Detect(p Page) bool {
	return p.Doc.Find("div.s-person-card").Length() > 0
}

func (personCard) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("div.s-person-card").Each(func(_ int, card *goquery.Selection) {
		name := textutil.Clean(card.Find("div.s-person-details__personal-single-line").First().Text())
		if name == "" {
			return
		}

		profileURL := ""
		if link := card.Find("a[href]").First(); link.Length() > 0 {
			profileURL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
		}

		jersey := ""
		if thumb := card.Find("div.s-person-details__thumbnail").First(); thumb.Length() > 0 {
			jersey = textutil.JerseyNumber(thumb.Text())
		}
		// no jersey means staff, not a player
		if jersey == "" {
			return
		}

		position := ""
		year := ""
		height := ""
		card.Find("span.s-person-details__bio-stats-item").Each(func(_ int, stat *goquery.Selection) {
			text := textutil.Clean(stat.Text())
			switch {
			case strings.HasPrefix(text, "Position"):
				position = textutil.Position(strings.TrimSpace(strings.TrimPrefix(text, "Position")))
			case strings.HasPrefix(text, "Academic Year"):
				year = textutil.AcademicYear(strings.TrimSpace(strings.TrimPrefix(text, "Academic Year")))
			case strings.HasPrefix(text, "Height"):
				height = textutil.Height(text)
			}
		})

		hometown := ""
		highSchool := ""
		card.Find("span.s-person-card__content__person__location-item").Each(func(_ int, loc *goquery.Selection) {
			text := textutil.Clean(loc.Text())
			switch {
			case strings.HasPrefix(text, "Hometown"):
				hometown = strings.TrimSpace(strings.TrimPrefix(text, "Hometown"))
			case strings.HasPrefix(text, "Last School"):
				highSchool = strings.TrimSpace(strings.TrimPrefix(text, "Last School"))
			}
		})

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

// playerCard handles the bootstrap-flavored card layout where the name
// is split across firstname/lastname spans and the short bio block
// holds position, class and height as three muted spans in that order.
type playerCard struct{}

func (playerCard) Name() string { return "player-card" }

func (playerCard) Detect(p Page) bool {
	return p.Doc.Find("div.player-card").Length() > 0
}

func (playerCard) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("div.player-card").Each(func(_ int, card *goquery.Selection) {
		first := textutil.Clean(card.Find("span.firstname").First().Text())
		last := textutil.Clean(card.Find("span.lastname").First().Text())
		name := strings.TrimSpace(first + " " + last)
		if name == "" {
			return
		}

		profileURL := ""
		if link := card.Find("a[href]").First(); link.Length() > 0 {
			profileURL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
		}

		jersey := textutil.JerseyNumber(card.Find("span.number").First().Text())

		position := ""
		year := ""
		height := ""
		attrs := card.Find("div.bio-attr-short span.text-muted")
		if attrs.Length() >= 3 {
			position = textutil.Position(attrs.Eq(0).Text())
			year = textutil.AcademicYear(textutil.Clean(attrs.Eq(1).Text()))
			height = textutil.Height(attrs.Eq(2).Text())
		} else {
			position = classKeywordText(card, []string{"position", "pos"}, textutil.Position)
		}

		hometown := ""
		highSchool := ""
		previousSchool := ""
		card.Find("div.bio-data li").Each(func(_ int, li *goquery.Selection) {
			label := strings.ToLower(textutil.Clean(li.Find("span.fw-bold").First().Text()))
			value := li.Clone()
			value.Find("span.fw-bold").Remove()
			text := textutil.Clean(value.Text())
			switch {
			case strings.Contains(label, "hometown"):
				hometown = text
			case strings.Contains(label, "highschool"), strings.Contains(label, "high school"):
				highSchool = text
			case strings.Contains(label, "previous"):
				previousSchool = text
			}
		})

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
