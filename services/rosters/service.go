// Package rosters runs roster extraction across many teams and owns
// the persistence of accepted results.
package rosters

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"rosterharvest/lib/scrapers/roster"
	"rosterharvest/services/rosters/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/rosters")

type Service struct {
	orchestrator *roster.Orchestrator
	db           *sql.DB
	qry          *db.Queries
	// Concurrency bounds the number of teams scraped at once.
	Concurrency int
}

// NewService wires the batch layer. The database is optional; pass nil
// to skip persistence and only collect in-memory results.
func NewService(orchestrator *roster.Orchestrator, database *sql.DB) Service {
	s := Service{
		orchestrator: orchestrator,
		db:           database,
		Concurrency:  4,
	}
	if database != nil {
		s.qry = db.New(database)
	}
	return s
}

// TeamOutcome pairs a team with its accepted extraction result.
type TeamOutcome struct {
	Team    roster.Team
	Outcome roster.Outcome
}

// TeamFailure records a team whose run errored (as opposed to merely
// yielding zero players).
type TeamFailure struct {
	Team roster.Team
	Err  error
}

// Report is the explicit result of a batch run. Zero-yield teams are
// data, not errors: every candidate URL was tried and none validated.
type Report struct {
	Succeeded []TeamOutcome
	ZeroYield []roster.Team
	Failed    []TeamFailure
}

// Players flattens all accepted records in report order.
func (r Report) Players() []roster.Player {
	var all []roster.Player
	for _, s := range r.Succeeded {
		all = append(all, s.Outcome.Players...)
	}
	return all
}

// ScrapeTeams runs the orchestrator for every team through a bounded
// worker pool and returns the merged report. Accepted rosters are
// persisted as they arrive.
func (s Service) ScrapeTeams(ctx context.Context, teams []roster.Team) Report {
	ctx, span := tracer.Start(ctx, "ScrapeTeams")
	defer span.End()
	span.SetAttributes(attribute.Int("teams", len(teams)))

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var (
		report Report
		mutex  sync.Mutex
		wg     sync.WaitGroup
		sem    = make(chan struct{}, concurrency)
	)

	for _, team := range teams {
		wg.Add(1)
		sem <- struct{}{}
		go func(team roster.Team) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome, err := s.orchestrator.Scrape(ctx, team)
			if err == nil && len(outcome.Players) > 0 {
				if persistErr := s.persist(ctx, team, outcome); persistErr != nil {
					err = fmt.Errorf("persist roster: %w", persistErr)
				}
			}

			mutex.Lock()
			defer mutex.Unlock()
			switch {
			case err != nil:
				slog.ErrorContext(ctx, "team failed", "team", team.Name, "err", err)
				report.Failed = append(report.Failed, TeamFailure{Team: team, Err: err})
			case len(outcome.Players) == 0:
				report.ZeroYield = append(report.ZeroYield, team)
			default:
				slog.InfoContext(ctx, "team scraped",
					"team", team.Name, "players", len(outcome.Players),
					"format", outcome.Format, "rendered", outcome.Rendered)
				report.Succeeded = append(report.Succeeded, TeamOutcome{Team: team, Outcome: outcome})
			}
		}(team)
	}
	wg.Wait()

	span.SetAttributes(
		attribute.Int("succeeded", len(report.Succeeded)),
		attribute.Int("zero_yield", len(report.ZeroYield)),
		attribute.Int("failed", len(report.Failed)),
	)
	return report
}

// persist replaces a team's roster for the season and records run
// metadata, in one transaction.
func (s Service) persist(ctx context.Context, team roster.Team, outcome roster.Outcome) error {
	if s.db == nil {
		return nil
	}
	ctx, span := tracer.Start(ctx, "persist")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	err = txqry.DeletePlayersForTeamSeason(ctx, db.DeletePlayersForTeamSeasonParams{
		TeamID: int64(team.ID),
		Season: team.Season,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, p := range outcome.Players {
		err := txqry.CreatePlayer(ctx, db.Player{
			TeamID:         int64(p.TeamID),
			Team:           p.Team,
			Season:         p.Season,
			Division:       p.Division,
			Name:           p.Name,
			Jersey:         p.Jersey,
			Position:       p.Position,
			Height:         p.Height,
			Class:          p.Year,
			Major:          p.Major,
			Hometown:       p.Hometown,
			HighSchool:     p.HighSchool,
			PreviousSchool: p.PreviousSchool,
			Url:            p.URL,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = txqry.CreateRun(ctx, db.CreateRunParams{
		TeamID:      int64(team.ID),
		Team:        team.Name,
		Season:      team.Season,
		Url:         outcome.URL,
		Format:      outcome.Format,
		Rendered:    outcome.Rendered,
		PlayerCount: int64(len(outcome.Players)),
		CreatedAt:   time.Now().Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return tx.Commit()
}
