package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"rosterharvest/lib/configutil"
	"rosterharvest/lib/fetch"
	"rosterharvest/lib/render"
	"rosterharvest/lib/scrapers/roster"
	"rosterharvest/lib/serviceutil"
	"rosterharvest/lib/sqliteutil"
	"rosterharvest/lib/telemetry"
	"rosterharvest/services/rosters"
	rostersdb "rosterharvest/services/rosters/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var flags struct {
	season      string
	division    string
	team        string
	limit       int
	teamsPath   string
	profiles    string
	output      string
	dbPath      string
	concurrency int
	renderWait  time.Duration
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.season, "season", "2025", "season to scrape, e.g. 2025 or 2024-25")
	f.StringVar(&flags.division, "division", "", "filter teams by division (1, 2, 3)")
	f.StringVar(&flags.team, "team", "", "scrape only the named team")
	f.IntVar(&flags.limit, "limit", 0, "scrape at most this many teams (0 = all)")
	f.StringVar(&flags.teamsPath, "teams", "data/teams_wsoc.csv", "teams csv")
	f.StringVar(&flags.profiles, "profiles", "profiles.json5", "site profile config")
	f.StringVar(&flags.output, "output", "output", "directory for csv/json exports")
	f.StringVar(&flags.dbPath, "db", "", "sqlite database path (empty = no persistence)")
	f.IntVar(&flags.concurrency, "concurrency", 4, "teams scraped in parallel")
	f.DurationVar(&flags.renderWait, "render-wait", 5*time.Second, "settle time after page load when rendering")
}

type profileConfig struct {
	Telemetry telemetry.Config              `json:"telemetry"`
	Profiles  map[string]roster.SiteProfile `json:"profiles"`
}

var rootCmd = &cobra.Command{
	Use:   "rosterscrape",
	Short: "Scrapes NCAA women's soccer rosters into csv/json and sqlite.",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd.Context())
	},
}

func run(ctx context.Context) {
	cfg, err := configutil.ReadConfig[profileConfig](flags.profiles)
	if err != nil {
		serviceutil.Fatal("failed to read profile config", err)
	}

	t, err := telemetry.Setup(ctx, "rosterscrape", cfg.Telemetry)
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())

	profiles := map[int]roster.SiteProfile{}
	for key, profile := range cfg.Profiles {
		id, err := strconv.Atoi(key)
		if err != nil {
			serviceutil.Fatal(fmt.Sprintf("bad team id %q in profile config", key), err)
		}
		profiles[id] = profile
	}

	teams, err := rosters.LoadTeams(flags.teamsPath, flags.season, flags.division)
	if err != nil {
		serviceutil.Fatal("failed to load teams", err)
	}
	if flags.team != "" {
		var filtered []roster.Team
		for _, team := range teams {
			if team.Name == flags.team {
				filtered = append(filtered, team)
			}
		}
		if len(filtered) == 0 {
			serviceutil.Fatal("team not found", fmt.Errorf("%q is not in %s", flags.team, flags.teamsPath))
		}
		teams = filtered
	}
	if flags.limit > 0 && len(teams) > flags.limit {
		teams = teams[:flags.limit]
	}

	fetcher := fetch.NewClient()

	var renderer roster.Renderer
	if needsRenderer(teams, profiles) {
		browser, err := render.NewBrowser()
		if err != nil {
			serviceutil.Fatal("failed to launch browser", err)
		}
		defer browser.Close()
		renderer = browser
	}

	orchestrator := roster.NewOrchestrator(fetcher, renderer, profiles)
	orchestrator.RenderWait = flags.renderWait

	service := rosters.NewService(orchestrator, nil)
	if flags.dbPath != "" {
		db, err := sqliteutil.OpenDB(rostersdb.Schema, flags.dbPath)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer db.Close()
		service = rosters.NewService(orchestrator, db)
	}
	service.Concurrency = flags.concurrency

	report := service.ScrapeTeams(ctx, teams)

	if err := writeExports(report); err != nil {
		serviceutil.Fatal("failed to write exports", err)
	}
	printSummary(report)
}

func needsRenderer(teams []roster.Team, profiles map[int]roster.SiteProfile) bool {
	for _, team := range teams {
		if profiles[team.ID].RequiresJS {
			return true
		}
	}
	return false
}

func writeExports(report rosters.Report) error {
	players := report.Players()
	if len(players) == 0 {
		return nil
	}
	if err := os.MkdirAll(flags.output, 0o755); err != nil {
		return err
	}

	base := fmt.Sprintf("rosters_wsoc_%s", flags.season)
	if flags.division != "" {
		base += "_" + flags.division
	}

	csvFile, err := os.Create(filepath.Join(flags.output, base+".csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()
	if err := rosters.WriteCSV(csvFile, players); err != nil {
		return err
	}

	jsonFile, err := os.Create(filepath.Join(flags.output, base+".json"))
	if err != nil {
		return err
	}
	defer jsonFile.Close()
	return rosters.WriteJSON(jsonFile, players)
}

func printSummary(report rosters.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Team", "Players", "Format", "URL"})

	for _, s := range report.Succeeded {
		t.AppendRow(table.Row{
			s.Team.Name, len(s.Outcome.Players), s.Outcome.Format, s.Outcome.URL,
		})
	}
	for _, team := range report.ZeroYield {
		t.AppendRow(table.Row{team.Name, 0, "-", "-"})
	}
	for _, f := range report.Failed {
		t.AppendRow(table.Row{f.Team.Name, "error", f.Err.Error(), "-"})
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("%d succeeded / %d zero-yield / %d failed",
			len(report.Succeeded), len(report.ZeroYield), len(report.Failed)),
		len(report.Players()), "", "",
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func main() {
	ctx := serviceutil.SignalContext()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
