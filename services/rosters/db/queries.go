package db

import (
	"context"
)

type Player struct {
	TeamID         int64
	Team           string
	Season         string
	Division       string
	Name           string
	Jersey         string
	Position       string
	Height         string
	Class          string
	Major          string
	Hometown       string
	HighSchool     string
	PreviousSchool string
	Url            string
}

const createPlayer = `
INSERT INTO players (
    team_id, team, season, division, name, jersey, position, height,
    class, major, hometown, high_school, previous_school, url
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func (q *Queries) CreatePlayer(ctx context.Context, arg Player) error {
	_, err := q.db.ExecContext(ctx, createPlayer,
		arg.TeamID,
		arg.Team,
		arg.Season,
		arg.Division,
		arg.Name,
		arg.Jersey,
		arg.Position,
		arg.Height,
		arg.Class,
		arg.Major,
		arg.Hometown,
		arg.HighSchool,
		arg.PreviousSchool,
		arg.Url,
	)
	return err
}

const deletePlayersForTeamSeason = `
DELETE FROM players WHERE team_id = ? AND season = ?
`

type DeletePlayersForTeamSeasonParams struct {
	TeamID int64
	Season string
}

func (q *Queries) DeletePlayersForTeamSeason(ctx context.Context, arg DeletePlayersForTeamSeasonParams) error {
	_, err := q.db.ExecContext(ctx, deletePlayersForTeamSeason, arg.TeamID, arg.Season)
	return err
}

const listPlayersBySeason = `
SELECT team_id, team, season, division, name, jersey, position, height,
    class, major, hometown, high_school, previous_school, url
FROM players WHERE season = ? ORDER BY team_id, name
`

func (q *Queries) ListPlayersBySeason(ctx context.Context, season string) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersBySeason, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.TeamID,
			&i.Team,
			&i.Season,
			&i.Division,
			&i.Name,
			&i.Jersey,
			&i.Position,
			&i.Height,
			&i.Class,
			&i.Major,
			&i.Hometown,
			&i.HighSchool,
			&i.PreviousSchool,
			&i.Url,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countPlayersForTeamSeason = `
SELECT COUNT(*) FROM players WHERE team_id = ? AND season = ?
`

type CountPlayersForTeamSeasonParams struct {
	TeamID int64
	Season string
}

func (q *Queries) CountPlayersForTeamSeason(ctx context.Context, arg CountPlayersForTeamSeasonParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countPlayersForTeamSeason, arg.TeamID, arg.Season)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createRun = `
INSERT INTO runs (team_id, team, season, url, format, rendered, player_count, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateRunParams struct {
	TeamID      int64
	Team        string
	Season      string
	Url         string
	Format      string
	Rendered    bool
	PlayerCount int64
	CreatedAt   int64
}

func (q *Queries) CreateRun(ctx context.Context, arg CreateRunParams) error {
	_, err := q.db.ExecContext(ctx, createRun,
		arg.TeamID,
		arg.Team,
		arg.Season,
		arg.Url,
		arg.Format,
		arg.Rendered,
		arg.PlayerCount,
		arg.CreatedAt,
	)
	return err
}
