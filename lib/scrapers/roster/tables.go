package roster

import (
	"context"
	"strings"

	"rosterharvest/lib/htmlutil"
	"rosterharvest/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
)

// Column roles shared by every table-shaped format.
const (
	colName           = "name"
	colJersey         = "jersey"
	colPosition       = "position"
	colHeight         = "height"
	colYear           = "year"
	colHometown       = "hometown"
	colHighSchool     = "high_school"
	colPreviousSchool = "previous_school"
)

type columnMap map[string]int

// canonicalHeaders backs the fuzzy fallback: header cells that miss
// every keyword rule are matched against these by edit distance, which
// rescues typo'd or slightly renamed columns ("Postion", "Hometwon").
var canonicalHeaders = map[string]string{
	"name":            colName,
	"number":          colJersey,
	"jersey":          colJersey,
	"position":        colPosition,
	"height":          colHeight,
	"class":           colYear,
	"year":            colYear,
	"hometown":        colHometown,
	"high school":     colHighSchool,
	"previous school": colPreviousSchool,
}

// mapHeaderText classifies one header cell by its visible text.
func mapHeaderText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}
	switch {
	case strings.Contains(text, "name") && !strings.Contains(text, "first"):
		return colName
	case containsAny(text, "no", "#", "jersey", "number", "num"):
		return colJersey
	case strings.Contains(text, "pos"):
		return colPosition
	case containsAny(text, "ht", "height"):
		return colHeight
	case containsAny(text, "yr", "year", "class", "cl."):
		return colYear
	case containsAny(text, "hometown", "home"):
		return colHometown
	case containsAny(text, "high school", "highschool"):
		return colHighSchool
	case strings.Contains(text, "previous"):
		return colPreviousSchool
	}
	if len(text) >= 4 {
		for canonical, field := range canonicalHeaders {
			if matchr.JaroWinkler(text, canonical, true) >= 0.9 {
				return field
			}
		}
	}
	return ""
}

func containsAny(text string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

// rowPlayer maps one table row's cells through a column map. Returns a
// zero Player when no name resolves.
func rowPlayer(cells []*goquery.Selection, cols columnMap, origin string) Player {
	var p Player

	if i, ok := cols[colName]; ok && i < len(cells) {
		cell := cells[i]
		link := firstLinkWithText(cell)
		if link != nil {
			p.Name = textutil.Clean(link.Text())
			p.URL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
		} else {
			p.Name = htmlutil.CellText(cell)
		}
	}
	if p.Name == "" || strings.EqualFold(p.Name, "null") {
		return Player{}
	}

	if i, ok := cols[colJersey]; ok && i < len(cells) {
		p.Jersey = htmlutil.CellText(cells[i])
	}
	if i, ok := cols[colPosition]; ok && i < len(cells) {
		p.Position = textutil.Position(htmlutil.CellText(cells[i]))
	}
	if i, ok := cols[colHeight]; ok && i < len(cells) {
		p.Height = textutil.Height(htmlutil.CellText(cells[i]))
	}
	if i, ok := cols[colYear]; ok && i < len(cells) {
		p.Year = textutil.AcademicYear(htmlutil.CellText(cells[i]))
	}
	if i, ok := cols[colHometown]; ok && i < len(cells) {
		combined := htmlutil.CellText(cells[i])
		if before, after, found := strings.Cut(combined, " / "); found {
			p.Hometown = strings.TrimSpace(before)
			p.HighSchool = strings.TrimSpace(after)
		} else {
			p.Hometown = combined
		}
	}
	if i, ok := cols[colHighSchool]; ok && i < len(cells) {
		if text := htmlutil.CellText(cells[i]); text != "" {
			p.HighSchool = text
		}
	}
	if i, ok := cols[colPreviousSchool]; ok && i < len(cells) {
		p.PreviousSchool = htmlutil.CellText(cells[i])
	}
	return p
}

// firstLinkWithText returns the first anchor in the cell whose text
// content is a plausible name, skipping bare image links.
func firstLinkWithText(cell *goquery.Selection) *goquery.Selection {
	var found *goquery.Selection
	cell.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if len(strings.TrimSpace(link.Text())) > 2 {
			found = link
			return false
		}
		return true
	})
	return found
}

func rowCells(row *goquery.Selection, skipHidden bool) []*goquery.Selection {
	var cells []*goquery.Selection
	row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
		if skipHidden && strings.Contains(cell.AttrOr("class", ""), "d-md-none") {
			return
		}
		cells = append(cells, cell)
	})
	return cells
}

func bodyRows(table *goquery.Selection) *goquery.Selection {
	if tbody := table.Find("tbody").First(); tbody.Length() > 0 {
		return tbody.Find("tr")
	}
	// no tbody: skip the header row, but an empty shell table has no
	// rows to slice at all
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return rows
	}
	return rows.Slice(1, goquery.ToEnd)
}

// dataFieldTable handles tables that annotate every header with a
// data-field-label attribute.
type dataFieldTable struct{}

func (dataFieldTable) Name() string { return "data-field-table" }

func (dataFieldTable) Detect(p Page) bool {
	return p.Doc.Find("th[data-field-label]").Length() > 0
}

func (dataFieldTable) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)

	var table *goquery.Selection
	p.Doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if t.Find("th[data-field-label]").Length() > 0 {
			table = t
			return false
		}
		return true
	})
	if table == nil {
		return nil
	}

	cols := columnMap{}
	table.Find("th[data-field-label]").Each(func(i int, th *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(th.AttrOr("data-field-label", "")))
		switch {
		case containsAny(label, "no.", "number"):
			cols[colJersey] = i
		case strings.Contains(label, "name"):
			cols[colName] = i
		case strings.Contains(label, "pos"):
			cols[colPosition] = i
		case containsAny(label, "cl.", "class", "year", "yr"):
			cols[colYear] = i
		case containsAny(label, "ht.", "height"):
			cols[colHeight] = i
		case containsAny(label, "hometown", "home"):
			cols[colHometown] = i
		case strings.Contains(label, "high") && strings.Contains(label, "school"):
			cols[colHighSchool] = i
		case strings.Contains(label, "previous") &&
			(strings.Contains(label, "college") || strings.Contains(label, "school")):
			cols[colPreviousSchool] = i
		}
	})

	var players []Player
	bodyRows(table).Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row, false)
		if len(cells) < 2 {
			return
		}
		if player := rowPlayer(cells, cols, origin); player.Name != "" {
			players = append(players, player)
		}
	})
	return players
}

// playersTable handles DataTables-style tables whose id starts with
// "players-table". Unlike the other table shapes this one carries the
// full column set, including separate high school and previous school.
type playersTable struct{}

func (playersTable) Name() string { return "players-table" }

func (playersTable) Detect(p Page) bool {
	return findPlayersTable(p.Doc) != nil
}

func findPlayersTable(doc *goquery.Document) *goquery.Selection {
	var table *goquery.Selection
	doc.Find("table[id]").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if strings.HasPrefix(t.AttrOr("id", ""), "players-table") {
			table = t
			return false
		}
		return true
	})
	return table
}

func (playersTable) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	table := findPlayersTable(p.Doc)
	if table == nil {
		return nil
	}

	headers := table.Find("thead th")
	if headers.Length() == 0 {
		headers = table.Find("th")
	}
	cols := columnMap{}
	headers.Each(func(i int, th *goquery.Selection) {
		if field := mapHeaderText(th.Text()); field != "" {
			if _, taken := cols[field]; !taken {
				cols[field] = i
			}
		}
	})

	var players []Player
	bodyRows(table).Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row, false)
		if len(cells) < 2 {
			return
		}
		if player := rowPlayer(cells, cols, origin); player.Name != "" {
			players = append(players, player)
		}
	})
	return players
}

// modRosterTable handles plain tables wrapped in div.mod-roster whose
// headers are sort buttons; the column name lives in the button's
// aria-label.
type modRosterTable struct{}

func (modRosterTable) Name() string { return "mod-roster" }

func (modRosterTable) Detect(p Page) bool {
	return p.Doc.Find("div.mod-roster table").Length() > 0
}

func (modRosterTable) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	table := p.Doc.Find("div.mod-roster table").First()

	cols := columnMap{}
	table.Find("thead tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
		text := ""
		if button := th.Find("button").First(); button.Length() > 0 {
			text = button.AttrOr("aria-label", "")
			if text == "" {
				text = button.Text()
			}
		} else {
			text = th.Text()
		}
		if field := mapHeaderText(text); field != "" {
			if _, taken := cols[field]; !taken {
				cols[field] = i
			}
		}
	})
	if len(cols) == 0 {
		return nil
	}

	var players []Player
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row, false)
		if len(cells) < 2 {
			return
		}
		if player := rowPlayer(cells, cols, origin); player.Name != "" {
			players = append(players, player)
		}
	})
	return players
}

// prestoTable handles PrestoSports rosters, which label every data
// cell with a data-label attribute instead of relying on column order.
type prestoTable struct{}

func (prestoTable) Name() string { return "presto-table" }

func (prestoTable) Detect(p Page) bool {
	return p.Doc.Find("td[data-label]").Length() >= 3
}

func (prestoTable) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	var players []Player

	p.Doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		labelled := row.Find("td[data-label]")
		if labelled.Length() < 3 {
			return
		}

		data := map[string]string{}
		labelled.Each(func(_ int, cell *goquery.Selection) {
			label := strings.ToLower(strings.TrimSpace(cell.AttrOr("data-label", "")))
			data[label] = htmlutil.CellText(cell)
		})

		// name often sits in a th rather than td
		profileURL := ""
		if th := row.Find("th[data-label]").First(); th.Length() > 0 {
			label := strings.ToLower(strings.TrimSpace(th.AttrOr("data-label", "")))
			if link := firstLinkWithText(th); link != nil {
				data[label] = textutil.Clean(link.Text())
				profileURL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
			} else {
				data[label] = htmlutil.CellText(th)
			}
		}

		name := data["name"]
		if name == "" {
			return
		}
		if profileURL == "" {
			labelled.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
				if htmlutil.CellText(cell) != name {
					return true
				}
				if link := cell.Find("a[href]").First(); link.Length() > 0 {
					profileURL = htmlutil.AbsoluteURL(origin, link.AttrOr("href", ""))
				}
				return false
			})
		}

		hometown := lookup(data, "hometown/last school", "hometown", "hometown/high school")
		highSchool := lookup(data, "high school", "last school")
		if strings.Contains(hometown, "/") {
			parts := strings.SplitN(hometown, "/", 2)
			hometown = strings.TrimSpace(parts[0])
			if highSchool == "" {
				highSchool = strings.TrimSpace(parts[1])
			}
		}

		players = append(players, Player{
			Name:           name,
			Jersey:         lookup(data, "no.", "no", "#"),
			Position:       textutil.Position(lookup(data, "pos.", "pos", "position")),
			Height:         textutil.Height(lookup(data, "ht.", "ht", "height")),
			Year:           textutil.AcademicYear(lookup(data, "cl.", "class", "year")),
			Hometown:       hometown,
			HighSchool:     highSchool,
			PreviousSchool: lookup(data, "previous school", "last school"),
			URL:            profileURL,
		})
	})
	return players
}

func lookup(data map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := data[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// genericTable is the last-resort table strategy: Sidearm
// s-table-body__row rows when present, otherwise any table whose
// header row names both a name and a position column.
type genericTable struct{}

func (genericTable) Name() string { return "generic-table" }

func (genericTable) Detect(p Page) bool {
	if p.Doc.Find("tr.s-table-body__row").Length() > 0 {
		return true
	}
	table, _ := findGenericRosterTable(p.Doc)
	return table != nil
}

func findGenericRosterTable(doc *goquery.Document) (table *goquery.Selection, sidearm bool) {
	if row := doc.Find("tr.s-table-body__row").First(); row.Length() > 0 {
		if parent := row.ParentsFiltered("table").First(); parent.Length() > 0 {
			return parent, true
		}
	}
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		headerRow := t.Find("thead tr").First()
		if headerRow.Length() == 0 {
			headerRow = t.Find("tr").First()
		}
		if headerRow.Length() == 0 {
			return true
		}
		var texts []string
		headerRow.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.ToLower(strings.TrimSpace(cell.Text())))
		})
		joined := strings.Join(texts, " ")
		if strings.Contains(joined, "name") &&
			(strings.Contains(joined, "position") || strings.Contains(joined, "pos")) {
			table = t
			return false
		}
		return true
	})
	return table, false
}

func (genericTable) Extract(ctx context.Context, p Page, team Team) []Player {
	origin := profileOrigin(team)
	table, sidearm := findGenericRosterTable(p.Doc)
	if table == nil {
		return nil
	}

	var headers *goquery.Selection
	if sidearm {
		headers = table.Find("th.s-table-header__column")
	} else {
		headerRow := table.Find("thead tr").First()
		if headerRow.Length() == 0 {
			headerRow = table.Find("tr").First()
		}
		headers = headerRow.Find("th, td")
	}
	if headers.Length() == 0 {
		return nil
	}

	cols := columnMap{}
	headers.Each(func(i int, cell *goquery.Selection) {
		if field := mapHeaderText(cell.Text()); field != "" {
			if _, taken := cols[field]; !taken {
				cols[field] = i
			}
		}
	})

	var rows *goquery.Selection
	if sidearm {
		rows = table.Find("tr.s-table-body__row")
	} else {
		rows = bodyRows(table)
	}

	var players []Player
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row, true)
		if len(cells) < 3 {
			return
		}
		if player := rowPlayer(cells, cols, origin); player.Name != "" {
			players = append(players, player)
		}
	})
	return players
}
