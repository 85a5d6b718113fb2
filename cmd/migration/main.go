package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/golf-scoring/db/migrations"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := logging.NewJSON(logging.ParseLevel(os.Getenv("APP_LOG_LEVEL")))
	defer func() { _ = logger.Sync() }()

	cliApp := &cli.App{
		Name:  "migration",
		Usage: "apply the embedded golf-scoring schema migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db-url",
				Usage:    "postgres connection URL",
				EnvVars:  []string{"DB_URL"},
				Required: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrate) error {
						if err := ignoreNoChange(m.Up()); err != nil {
							return fmt.Errorf("migrate up: %w", err)
						}
						logger.Info("migrations applied")
						return nil
					})
				},
			},
			{
				Name:      "down",
				Usage:     "roll back migrations",
				ArgsUsage: "[steps]",
				Action: func(c *cli.Context) error {
					steps, err := parseSteps(c.Args().First())
					if err != nil {
						return err
					}
					return withMigrator(c, func(m *migrate.Migrate) error {
						if err := ignoreNoChange(m.Steps(-steps)); err != nil {
							return fmt.Errorf("migrate down: %w", err)
						}
						logger.Info("migrations rolled back", "steps", steps)
						return nil
					})
				},
			},
			{
				Name:  "version",
				Usage: "print the applied version",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrate) error {
						version, dirty, err := m.Version()
						if errors.Is(err, migrate.ErrNilVersion) {
							fmt.Fprintln(c.App.Writer, "version: none")
							fmt.Fprintln(c.App.Writer, "dirty: false")
							return nil
						}
						if err != nil {
							return fmt.Errorf("read version: %w", err)
						}
						fmt.Fprintf(c.App.Writer, "version: %d\n", version)
						fmt.Fprintf(c.App.Writer, "dirty: %t\n", dirty)
						return nil
					})
				},
			},
			{
				Name:      "force",
				Usage:     "set the version without running migrations",
				ArgsUsage: "<version>",
				Action: func(c *cli.Context) error {
					version, err := parseVersion(c.Args().First(), -1)
					if err != nil {
						return err
					}
					return withMigrator(c, func(m *migrate.Migrate) error {
						if err := m.Force(version); err != nil {
							return fmt.Errorf("force version %d: %w", version, err)
						}
						logger.Info("version forced", "version", version)
						return nil
					})
				},
			},
			{
				Name:      "goto",
				Aliases:   []string{"migrate"},
				Usage:     "migrate up or down to a version",
				ArgsUsage: "<version>",
				Action: func(c *cli.Context) error {
					target, err := parseVersion(c.Args().First(), 0)
					if err != nil {
						return err
					}
					return withMigrator(c, func(m *migrate.Migrate) error {
						if err := ignoreNoChange(m.Migrate(uint(target))); err != nil {
							return fmt.Errorf("migrate to %d: %w", target, err)
						}
						logger.Info("migrated", "version", target)
						return nil
					})
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func withMigrator(c *cli.Context, fn func(*migrate.Migrate) error) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, strings.TrimSpace(c.String("db-url")))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			fmt.Fprintf(c.App.ErrWriter, "close migrator: source=%v db=%v\n", srcErr, dbErr)
		}
	}()

	return fn(m)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func parseSteps(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", raw, err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

// parseVersion reads a migration version no lower than floor. force accepts
// -1 to mark the schema as empty.
func parseVersion(raw string, floor int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("a version argument is required")
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < floor {
		return 0, fmt.Errorf("version must be >= %d", floor)
	}
	return value, nil
}
