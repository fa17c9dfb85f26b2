package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kselvam/pulseboard/internal/adapters/repository"
	"github.com/kselvam/pulseboard/internal/seed"
	"github.com/kselvam/pulseboard/pkg/logger"
)

func main() {
	dbPath := flag.String("db", "pulse.db", "SQLite database file to create or fill")
	fromYear := flag.Int("from", 2019, "first year to generate")
	toYear := flag.Int("to", 2024, "last year to generate")
	rngSeed := flag.Int64("seed", 1, "RNG seed; the same seed reproduces the same data")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.NewSQLiteStore(ctx, *dbPath)
	if err != nil {
		log.Error(ctx, "failed to open database", logger.String("db_path", *dbPath), logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	log.Info(ctx, "seeding datasets",
		logger.String("db_path", *dbPath),
		logger.Int("from_year", *fromYear),
		logger.Int("to_year", *toYear),
	)

	s := seed.New(seed.WithYears(*fromYear, *toYear), seed.WithSeed(*rngSeed))
	if err := s.Run(ctx, store.DB()); err != nil {
		log.Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "seeding complete")
}
