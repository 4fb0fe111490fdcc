package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logging"
)

// errUsage marks bad command-line input; it exits with status 2.
var errUsage = errors.New("usage")

// Usage:
//
//	migrate            apply pending migrations
//	migrate down       roll every migration back
//	migrate force <v>  mark version v as clean
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log, os.Args[1:]); err != nil {
		log.Error("migration failed", slog.Any("err", err))
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger, args []string) error {
	cmd := "up"
	if len(args) >= 1 {
		cmd = args[0]
	}

	var version int
	switch cmd {
	case "up", "down":
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("%w: force requires a version", errUsage)
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: invalid version %q", errUsage, args[1])
		}
		version = v
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	mg, err := db.NewMigrator(cfg.DBUrl, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := mg.Close(); err != nil {
			log.Warn("migrator close failed", slog.Any("err", err))
		}
	}()

	switch cmd {
	case "up":
		err = mg.Up()
	case "down":
		err = mg.Down()
	case "force":
		err = mg.Force(version)
	}
	if err != nil {
		return err
	}

	log.Info("migrations complete", slog.String("cmd", cmd))
	return nil
}
