package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/CatoAkay/cf-benchmark/internal/config"
	"github.com/CatoAkay/cf-benchmark/internal/seed"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	planPath := flag.String("plan", "", "path to benchmark plan YAML (required)")
	dryRun := flag.Bool("dry-run", false, "validate the plan and report counts without writing to the database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *planPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: cfbench-seed -config config.yaml -plan plan.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load and validate the plan before touching the database, so a broken
	// plan fails fast.
	plan, err := seed.Load(*planPath)
	if err != nil {
		log.Error("failed to load plan", "path", *planPath, "error", err)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, cfg.Database.MigrationsPath); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode, no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Run seed
	seeder := seed.New(db, log, *dryRun)
	stats, err := seeder.Seed(ctx, plan)
	if err != nil {
		log.Error("seeding failed", "error", err)
		printStats(log, stats)
		os.Exit(1)
	}

	printStats(log, stats)
	log.Info("seeding complete")
}

func printStats(log *slog.Logger, stats *seed.Stats) {
	log.Info("seed stats",
		"workouts_created", stats.WorkoutsCreated,
		"workouts_existing", stats.WorkoutsExisting,
		"benchmark_rows", stats.BenchmarkRows,
	)
}
