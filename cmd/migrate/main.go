package main

import (
	"errors"
	"flag"
	"log"

	"tripcost/cfg"
	"tripcost/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	source := flag.String("source", "file://db/migrations", "migration source URL")
	direction := flag.String("direction", "up", "up or down")
	steps := flag.Int("steps", 0, "number of migrations to apply, 0 for all")
	flag.Parse()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}
	if config.StoreBackend != cfg.StorePostgres {
		log.Fatalf("STORE_BACKEND is %q, migrations only apply to postgres", config.StoreBackend)
	}

	zlogger := logger.NewZeroLog(config.AppEnv)

	// =========
	// Migrate
	// =========
	m, err := migrate.New(*source, config.Postgres.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	if err := apply(m, *direction, *steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal(err)
	}
	zlogger.Info("Migrations applied",
		logger.Field{Key: "direction", Value: *direction},
		logger.Field{Key: "version", Value: int64(version)},
		logger.Field{Key: "dirty", Value: dirty},
	)
}

type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
}

func apply(m migrator, direction string, steps int) error {
	switch direction {
	case "up":
		if steps > 0 {
			return m.Steps(steps)
		}
		return m.Up()
	case "down":
		if steps > 0 {
			return m.Steps(-steps)
		}
		return m.Down()
	default:
		return errors.New("direction must be up or down")
	}
}
