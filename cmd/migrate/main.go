package main

import (
	"flag"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/migrations"
)

func main() {
	flag.Usage = func() {
		log.Printf("usage: migrate [up|down|status|version]")
		flag.PrintDefaults()
	}
	flag.Parse()

	command := migrations.CommandUp
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host, "dbname", cfg.Postgres.DBName)
	db, err := sqlx.Connect("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	logger.Infow("Running database migrations", "command", command)
	if err := migrations.Run(db.DB, command, logger); err != nil {
		logger.Fatalw("Migration failed", "command", command, "error", err)
	}
	logger.Info("Migration completed successfully")
}
