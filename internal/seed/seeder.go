package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
	"github.com/CatoAkay/cf-benchmark/internal/storage"
)

// Stats tracks seeding progress.
type Stats struct {
	WorkoutsCreated  int
	WorkoutsExisting int
	BenchmarkRows    int64
}

// Seeder loads a benchmark plan into the database.
type Seeder struct {
	db     *storage.DB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Seeder.
func New(db *storage.DB, log *slog.Logger, dryRun bool) *Seeder {
	return &Seeder{db: db, log: log, dryRun: dryRun}
}

// Seed creates every workout in the plan and replaces its benchmark
// population. Existing workouts keep their identity and stored results;
// their populations are replaced wholesale so a corrected plan converges.
func (sd *Seeder) Seed(ctx context.Context, plan *Plan) (*Stats, error) {
	for _, season := range plan.Seasons {
		for _, comp := range season.Competitions {
			for _, div := range comp.Divisions {
				for _, w := range div.Workouts {
					if err := sd.seedWorkout(ctx, season.Season, comp.Competition, div.Division, w); err != nil {
						return &sd.stats, err
					}
				}
			}
		}
	}
	return &sd.stats, nil
}

func (sd *Seeder) seedWorkout(ctx context.Context, season int, competition, division string, plan WorkoutPlan) error {
	d, ok := scoring.ParseDiscipline(plan.Discipline)
	if !ok {
		return fmt.Errorf("workout %s: unknown discipline %q", plan.Slug, plan.Discipline)
	}
	if plan.Population != scoring.TopPopulation {
		sd.log.Warn("population differs from the nominal top list size",
			"slug", plan.Slug, "population", plan.Population, "nominal", scoring.TopPopulation)
	}

	if sd.dryRun {
		sd.log.Info("dry-run: would seed workout",
			"season", season, "competition", competition, "division", division,
			"slug", plan.Slug, "discipline", d, "rows", plan.Population)
		return nil
	}

	row := models.WorkoutRow{
		ID:          uuid.New(),
		Season:      season,
		Competition: competition,
		Division:    division,
		Slug:        plan.Slug,
		Name:        plan.Name,
		Discipline:  d,
		Description: plan.Description,
	}
	inserted, err := sd.db.InsertWorkout(ctx, row)
	if err != nil {
		return fmt.Errorf("inserting workout %s: %w", plan.Slug, err)
	}

	workoutID := row.ID
	if inserted {
		sd.stats.WorkoutsCreated++
	} else {
		existing, err := sd.db.FindWorkout(ctx, season, competition, division, plan.Slug)
		if err != nil {
			return fmt.Errorf("finding workout %s: %w", plan.Slug, err)
		}
		// The discipline is immutable: results already logged against it
		// would become incomparable under a different rule.
		if existing.Discipline != d {
			return fmt.Errorf("workout %s exists with discipline %s, plan says %s",
				plan.Slug, existing.Discipline, d)
		}
		workoutID = existing.ID
		sd.stats.WorkoutsExisting++
	}

	written, err := sd.db.ReplaceBenchmark(ctx, workoutID, Population(plan, d))
	if err != nil {
		return fmt.Errorf("seeding benchmark for %s: %w", plan.Slug, err)
	}
	sd.stats.BenchmarkRows += written

	sd.log.Info("seeded workout",
		"season", season, "competition", competition, "division", division,
		"slug", plan.Slug, "discipline", d, "rows", written)
	return nil
}
