package rosters

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"rosterharvest/lib/scrapers/roster"
)

// LoadTeams reads the teams CSV. The id column may be named either
// "team_id" or "ncaa_id"; the "division" column is optional. Teams are
// optionally filtered by division.
func LoadTeams(path, season, division string) ([]roster.Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTeams(f, season, division)
}

func ReadTeams(r io.Reader, season, division string) ([]roster.Team, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read teams header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	idCol, ok := cols["team_id"]
	if !ok {
		idCol, ok = cols["ncaa_id"]
	}
	nameCol, nameOK := cols["team"]
	urlCol, urlOK := cols["url"]
	if !ok || !nameOK || !urlOK {
		return nil, fmt.Errorf("teams csv needs team_id/ncaa_id, team and url columns")
	}
	divCol, hasDiv := cols["division"]

	var teams []roster.Team
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read teams row: %w", err)
		}

		id, err := strconv.Atoi(row[idCol])
		if err != nil {
			return nil, fmt.Errorf("bad team id %q: %w", row[idCol], err)
		}
		teamDivision := ""
		if hasDiv {
			teamDivision = row[divCol]
		}
		if division != "" && teamDivision != division {
			continue
		}
		teams = append(teams, roster.Team{
			ID:       id,
			Name:     row[nameCol],
			BaseURL:  row[urlCol],
			Season:   season,
			Division: teamDivision,
		})
	}
	return teams, nil
}
