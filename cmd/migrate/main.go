package main

import (
	"flag"
	"os"

	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/database"
	"github.com/blog-api/pkg/logger"
)

func main() {
	direction := flag.String("direction", "up", "up, down or goto")
	version := flag.Uint("version", 0, "target version for -direction=goto")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "json")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	path := cfg.Database.MigrationsPath
	switch *direction {
	case "up":
		err = db.RunMigrations(path)
	case "down":
		err = db.MigrateDown(path)
	case "goto":
		err = db.MigrateToVersion(path, *version)
	default:
		log.Error().Str("direction", *direction).Msg("Unknown migration direction")
		flag.Usage()
		db.Close()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Str("direction", *direction).Msg("Migration failed")
		db.Close()
		os.Exit(1)
	}
	log.Info().Str("direction", *direction).Msg("Migration finished")
}
