package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"bookmanager/internal/config"
	"bookmanager/internal/infrastructure/database"
	"bookmanager/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, status")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(database.MigrateCommand(*command)); err != nil {
		log.Fatal().Err(err).Msg("❌ Migration failed")
	}
}

func run(command database.MigrateCommand) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	defer db.Close()

	return database.Migrate(ctx, db.Pool, command)
}
