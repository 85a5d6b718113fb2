package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/golf-scoring/internal/app"
	"github.com/riskibarqy/golf-scoring/internal/config"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cliApp := &cli.App{
		Name:  "golfadmin",
		Usage: "maintenance tasks for the golf scoring store",
		Commands: []*cli.Command{
			{
				Name:  "repair-layouts",
				Usage: "rewrite every event so its par layout matches its hole count",
				Action: func(c *cli.Context) error {
					return withRepositories(c, func(repos app.Repositories, _ app.Services) error {
						rewritten, err := repairLayouts(c.Context, repos.Events)
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "rewrote %d event(s) in normalized form\n", rewritten)
						return nil
					})
				},
			},
			{
				Name:  "leaderboard",
				Usage: "print the ranked leaderboard of an event",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "event", Usage: "event id", Required: true},
					&cli.StringFlag{Name: "xlsx", Usage: "also write the board as a workbook to this path"},
				},
				Action: func(c *cli.Context) error {
					return withRepositories(c, func(_ app.Repositories, services app.Services) error {
						board, err := services.Leaderboard.Build(c.Context, c.Int64("event"))
						if err != nil {
							return err
						}
						if err := printBoard(c.App.Writer, board); err != nil {
							return err
						}

						path := c.String("xlsx")
						if path == "" {
							return nil
						}
						f, err := os.Create(path)
						if err != nil {
							return fmt.Errorf("create %s: %w", path, err)
						}
						if err := services.Leaderboard.ExportXLSX(c.Context, board.Event.ID, f); err != nil {
							_ = f.Close()
							return err
						}
						return f.Close()
					})
				},
			},
			{
				Name:  "share-code",
				Usage: "print a fresh public share code",
				Action: func(c *cli.Context) error {
					code, err := event.NewShareCode()
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, code)
					return nil
				},
			},
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "golfadmin:", err)
		os.Exit(1)
	}
}

func withRepositories(c *cli.Context, fn func(app.Repositories, app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSONWriter(os.Stderr, cfg.LogLevel).Named("golfadmin")
	defer func() { _ = logger.Sync() }()

	repos, closeRepos, err := app.OpenRepositories(c.Context, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepos(); err != nil {
			logger.Error("close repositories", "error", err)
		}
	}()

	return fn(repos, app.NewServices(cfg, repos, logger))
}
