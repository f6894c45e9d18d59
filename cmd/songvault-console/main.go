// Command songvault-console runs the interactive catalog menu against a
// local SQLite database.
package main

import (
	"context"
	"flag"
	"os"

	"songvault/internal/app/playlists"
	"songvault/internal/app/songs"
	"songvault/internal/app/users"
	"songvault/internal/console"
	"songvault/internal/demo"
	"songvault/internal/logging"
	"songvault/internal/store/sqlite"
)

func main() {
	configPath := flag.String("config", "songvault.toml", "path to the TOML config file")
	seed := flag.Bool("seed", false, "load demo data into an empty database")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	dataStore, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("open database")
	}
	defer dataStore.Close()

	ctx := context.Background()

	if *seed || cfg.Seed.DemoData {
		if err := demo.Seed(ctx, dataStore, logger); err != nil {
			logger.Fatal().Err(err).Msg("demo data seeding failed")
		}
	}

	userSvc := users.New(dataStore, logger)
	songSvc := songs.New(dataStore, logger)
	playlistSvc := playlists.New(dataStore, logger)

	console.New(userSvc, songSvc, playlistSvc).Run(ctx)
}
