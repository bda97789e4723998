package main

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"member-rewards/internal/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://migrations", cfg.DB.BuildDSN())
	if err != nil {
		slog.Error("failed to create migrate instance", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied")

	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			slog.Error("failed to roll back migration", "error", err)
			os.Exit(1)
		}
		slog.Info("migration rolled back")

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			slog.Error("failed to get migration version", "error", err)
			os.Exit(1)
		}
		slog.Info("migration version", "version", version, "dirty", dirty)

	case "force":
		if len(os.Args) < 3 {
			slog.Error("usage: migrate force <version>")
			os.Exit(1)
		}
		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			slog.Error("invalid version", "error", err)
			os.Exit(1)
		}
		if err := m.Force(version); err != nil {
			slog.Error("failed to force version", "error", err)
			os.Exit(1)
		}
		slog.Info("forced migration version", "version", version)

	default:
		slog.Error("unknown command", "command", command)
		os.Exit(1)
	}
}
