package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"circlecheck/config"
	logs "circlecheck/internal/infra/log"
	"circlecheck/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:   apply every pending migration
// - down: roll back the given number of steps

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], upCmd, downCmd, downSteps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, upCmd, downCmd *flag.FlagSet, downSteps *int) error {
	switch command {
	case "up":
		if err := upCmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}
	case "down":
		if err := downCmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}
		if *downSteps < 1 {
			return errors.New("steps must be at least 1")
		}
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Postgres == nil {
		return errors.New("postgres connection is not configured")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if command == "up" {
		return migrations.Up(db, logger)
	}

	for step := 0; step < *downSteps; step++ {
		if err := migrations.Down(db, logger); err != nil {
			return err
		}
	}

	logger.Info("Rollback finished", slog.Int("steps", *downSteps))

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                 Apply every pending migration")
	fmt.Println("  down [-steps N]    Roll back N migrations (default 1)")
}
