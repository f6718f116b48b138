package rosters

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"rosterharvest/lib/scrapers/roster"
)

// csvHeader matches the long-standing output schema: the academic year
// column is called "class" and the team identifier "ncaa_id".
var csvHeader = []string{
	"ncaa_id", "team", "season", "division", "name", "jersey", "position",
	"height", "class", "major", "hometown", "high_school", "previous_school", "url",
}

// WriteCSV writes players in the export schema.
func WriteCSV(w io.Writer, players []roster.Player) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range players {
		row := []string{
			strconv.Itoa(p.TeamID),
			p.Team,
			p.Season,
			p.Division,
			p.Name,
			p.Jersey,
			p.Position,
			p.Height,
			p.Year,
			p.Major,
			p.Hometown,
			p.HighSchool,
			p.PreviousSchool,
			p.URL,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteJSON writes players as an indented JSON array. Field naming is
// carried by the Player struct tags, which already follow the export
// schema.
func WriteJSON(w io.Writer, players []roster.Player) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(players)
}
