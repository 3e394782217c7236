package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kegelclub/club-stats/internal/config"
	"github.com/kegelclub/club-stats/internal/export"
	"github.com/kegelclub/club-stats/internal/logic"
	"github.com/kegelclub/club-stats/internal/models"
	"github.com/kegelclub/club-stats/internal/store"
)

// session carries what every subcommand needs.
type session struct {
	reports logic.ReportService
	league  *config.League
	window  models.Window
	pool    *pgxpool.Pool
}

func main() {
	app := &cli.App{
		Name:  "clubstats",
		Usage: "print club standings and grids from the records database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "postgres", Usage: "postgres connection url", EnvVars: []string{"POSTGRES_URL"}, Required: true},
			&cli.StringFlag{Name: "league", Usage: "league definition file", EnvVars: []string{"LEAGUE_FILE"}},
			&cli.StringFlag{Name: "window", Usage: "current, previous, range or all", Value: string(models.WindowCurrent)},
			&cli.StringFlag{Name: "from", Usage: "range start, YYYY-MM-DD"},
			&cli.StringFlag{Name: "to", Usage: "range end (inclusive), YYYY-MM-DD"},
			&cli.IntFlag{Name: "season-start", Usage: "season start month", EnvVars: []string{"SEASON_START_MONTH"}, Value: 8},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log report builds"},
		},
		Commands: []*cli.Command{
			{
				Name:      "standings",
				Usage:     "ranked standings of one format",
				ArgsUsage: "<format>",
				Flags:     []cli.Flag{&cli.PathFlag{Name: "xlsx", Usage: "write the table to a workbook instead"}},
				Action: withSession(func(c *cli.Context, s *session) error {
					format, err := models.ParseFormat(c.Args().First())
					if err != nil {
						return fmt.Errorf("%w: %q", err, c.Args().First())
					}
					standings, err := s.reports.Standings(c.Context, format, s.window)
					if err != nil {
						return err
					}
					if path := c.Path("xlsx"); path != "" {
						return writeFile(path, func(f *os.File) error {
							return export.WriteStandings(f, standings, s.league.Label(format))
						})
					}
					return printStandings(c.App.Writer, standings, s.league.Label(format))
				}),
			},
			{
				Name:      "crosstab",
				Usage:     "round-robin grid of a pairwise format",
				ArgsUsage: "<format>",
				Flags:     []cli.Flag{&cli.PathFlag{Name: "xlsx", Usage: "write the grid to a workbook instead"}},
				Action: withSession(func(c *cli.Context, s *session) error {
					format, err := models.ParseFormat(c.Args().First())
					if err != nil {
						return fmt.Errorf("%w: %q", err, c.Args().First())
					}
					grid, err := s.reports.CrossTab(c.Context, format, s.window)
					if err != nil {
						return err
					}
					if path := c.Path("xlsx"); path != "" {
						return writeFile(path, func(f *os.File) error {
							return export.WriteCrossTab(f, grid, s.league.Label(format))
						})
					}
					return printCrossTab(c.App.Writer, grid)
				}),
			},
			{
				Name:      "placements",
				Usage:     "relay placements per matchday with individual and team tallies",
				ArgsUsage: "[participant id]",
				Action: withSession(func(c *cli.Context, s *session) error {
					tables, err := s.reports.Placements(c.Context, s.window)
					if err != nil {
						return err
					}
					if c.Args().Present() {
						id, err := strconv.ParseInt(c.Args().First(), 10, 64)
						if err != nil {
							return fmt.Errorf("invalid participant id %q", c.Args().First())
						}
						return printTeams(c.App.Writer, tables.TeamsOf(models.ParticipantID(id)), tables.Slots)
					}
					return printPlacements(c.App.Writer, tables)
				}),
			},
			{
				Name:  "champions",
				Usage: "best nines and rats score of every matchday",
				Action: withSession(func(c *cli.Context, s *session) error {
					champions, err := s.reports.Champions(c.Context, s.window)
					if err != nil {
						return err
					}
					return printChampions(c.App.Writer, champions, s.league)
				}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.Must(zap.NewDevelopment()).Sugar().Fatalw("clubstats failed", "error", err)
	}
}

func withSession(action func(c *cli.Context, s *session) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		s, err := openSession(c)
		if err != nil {
			return err
		}
		defer s.pool.Close()
		return action(c, s)
	}
}

func openSession(c *cli.Context) (*session, error) {
	league, err := config.LoadLeague(c.String("league"))
	if err != nil {
		return nil, err
	}

	window, err := logic.ResolveWindow(models.WindowRequest{
		Window: c.String("window"),
		From:   c.String("from"),
		To:     c.String("to"),
	}, time.Now(), league.SeasonStart(c.Int("season-start")))
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if c.Bool("verbose") {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	pool, err := pgxpool.New(c.Context, c.String("postgres"))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return &session{
		reports: logic.NewReportService(store.NewPostgres(pool), nil, league.ReportOptions(), logger),
		league:  league,
		window:  window,
		pool:    pool,
	}, nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
